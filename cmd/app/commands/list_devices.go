package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	authUseCase "github.com/lifelog-app/lifelog/internal/auth/usecase"
)

// RunListDevices prints the registered devices ordered by creation time
// descending. Only metadata is printed; hashed secrets never leave the store.
func RunListDevices(
	ctx context.Context,
	deviceUseCase authUseCase.DeviceUseCase,
	logger *slog.Logger,
	writer io.Writer,
	offset int,
	limit int,
) error {
	devices, err := deviceUseCase.List(ctx, offset, limit)
	if err != nil {
		return fmt.Errorf("failed to list devices: %w", err)
	}

	if len(devices) == 0 {
		_, _ = fmt.Fprintln(writer, "No devices registered.")
		return nil
	}

	for _, device := range devices {
		status := "active"
		if !device.IsActive {
			status = "inactive"
		}

		lastSeen := "never"
		if device.LastSeenAt != nil {
			lastSeen = device.LastSeenAt.Format("2006-01-02 15:04:05")
		}

		_, _ = fmt.Fprintf(
			writer,
			"%s  %-10s  created=%s  last_seen=%s  %s\n",
			device.ID.String(),
			status,
			device.CreatedAt.Format("2006-01-02"),
			lastSeen,
			device.Name,
		)
	}

	logger.Info("listed devices", slog.Int("count", len(devices)))
	return nil
}
