package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	authDomain "github.com/lifelog-app/lifelog/internal/auth/domain"
	authUseCase "github.com/lifelog-app/lifelog/internal/auth/usecase"
)

// RunCreateDevice registers a new device and prints its credential.
//
// The plain secret is shown exactly once in the command output; only its hash
// is persisted and the secret is never written to the log.
//
// Requirements: Database must be migrated and accessible.
func RunCreateDevice(
	ctx context.Context,
	deviceUseCase authUseCase.DeviceUseCase,
	logger *slog.Logger,
	writer io.Writer,
	name string,
	format string,
) error {
	if name == "" {
		return fmt.Errorf("device name is required")
	}

	logger.Info("creating new device", slog.String("name", name))

	output, err := deviceUseCase.Create(ctx, &authDomain.CreateDeviceInput{Name: name})
	if err != nil {
		return fmt.Errorf("failed to create device: %w", err)
	}

	if format == "json" {
		outputDeviceJSON(output, writer)
	} else {
		outputDeviceText(output, writer)
	}

	logger.Info("device created successfully",
		slog.String("device_id", output.ID.String()),
		slog.String("name", name),
	)

	return nil
}

// outputDeviceText outputs the result in human-readable text format.
func outputDeviceText(output *authDomain.CreateDeviceOutput, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, "\nDevice created successfully!")
	_, _ = fmt.Fprintf(writer, "Device ID: %s\n", output.ID.String())
	_, _ = fmt.Fprintf(writer, "Secret: %s\n", output.PlainSecret)
	_, _ = fmt.Fprintln(writer, "\nIMPORTANT: The secret is shown only once. Store it securely.")
}

// outputDeviceJSON outputs the result in JSON format for machine consumption.
func outputDeviceJSON(output *authDomain.CreateDeviceOutput, writer io.Writer) {
	result := map[string]string{
		"device_id": output.ID.String(),
		"secret":    output.PlainSecret,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
