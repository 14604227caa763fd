package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	authUseCase "github.com/lifelog-app/lifelog/internal/auth/usecase"
)

// RunDeactivateDevice deactivates a device so it can no longer authenticate.
// The device record and its data are preserved.
func RunDeactivateDevice(
	ctx context.Context,
	deviceUseCase authUseCase.DeviceUseCase,
	logger *slog.Logger,
	writer io.Writer,
	id string,
) error {
	deviceID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid device ID: %w", err)
	}

	if err := deviceUseCase.Deactivate(ctx, deviceID); err != nil {
		return fmt.Errorf("failed to deactivate device: %w", err)
	}

	_, _ = fmt.Fprintf(writer, "Device %s deactivated.\n", deviceID.String())

	logger.Info("device deactivated", slog.String("device_id", deviceID.String()))
	return nil
}
