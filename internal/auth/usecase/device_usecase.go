package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/lifelog-app/lifelog/internal/auth/domain"
	authService "github.com/lifelog-app/lifelog/internal/auth/service"
	apperrors "github.com/lifelog-app/lifelog/internal/errors"
)

// deviceUseCase implements the DeviceUseCase interface.
type deviceUseCase struct {
	deviceRepo    DeviceRepository
	secretService authService.SecretService
}

// Create registers a new device with a generated secret. The plain secret is
// returned once; only the Argon2id hash reaches the repository.
func (d *deviceUseCase) Create(
	ctx context.Context,
	input *authDomain.CreateDeviceInput,
) (*authDomain.CreateDeviceOutput, error) {
	plainSecret, hashedSecret, err := d.secretService.GenerateSecret()
	if err != nil {
		return nil, err
	}

	device := &authDomain.Device{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      input.Name,
		Secret:    hashedSecret,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}

	if err := d.deviceRepo.Create(ctx, device); err != nil {
		return nil, err
	}

	return &authDomain.CreateDeviceOutput{
		ID:          device.ID,
		PlainSecret: plainSecret,
	}, nil
}

// Get retrieves a device by ID.
func (d *deviceUseCase) Get(ctx context.Context, id uuid.UUID) (*authDomain.Device, error) {
	return d.deviceRepo.Get(ctx, id)
}

// List retrieves devices ordered by creation time descending.
func (d *deviceUseCase) List(ctx context.Context, offset, limit int) ([]*authDomain.Device, error) {
	return d.deviceRepo.List(ctx, offset, limit)
}

// Deactivate performs a soft delete by setting IsActive to false.
func (d *deviceUseCase) Deactivate(ctx context.Context, id uuid.UUID) error {
	device, err := d.deviceRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	device.IsActive = false

	return d.deviceRepo.Update(ctx, device)
}

// Authenticate verifies a device ID and plain secret pair.
//
// An unknown device and a wrong secret both map to ErrUnauthorized so the
// response does not reveal whether the device ID exists. The secret check
// runs before the active check, so a deactivated device still needs a valid
// credential to learn it is deactivated.
func (d *deviceUseCase) Authenticate(
	ctx context.Context,
	deviceID uuid.UUID,
	plainSecret string,
) (*authDomain.Device, error) {
	device, err := d.deviceRepo.Get(ctx, deviceID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	if !d.secretService.CompareSecret(plainSecret, device.Secret) {
		return nil, apperrors.ErrUnauthorized
	}

	if !device.IsActive {
		return nil, authDomain.ErrDeviceInactive
	}

	now := time.Now().UTC()
	if err := d.deviceRepo.UpdateLastSeen(ctx, deviceID, now); err != nil {
		return nil, err
	}
	device.LastSeenAt = &now

	return device, nil
}

// NewDeviceUseCase creates a new DeviceUseCase with the provided dependencies.
func NewDeviceUseCase(
	deviceRepo DeviceRepository,
	secretService authService.SecretService,
) DeviceUseCase {
	return &deviceUseCase{
		deviceRepo:    deviceRepo,
		secretService: secretService,
	}
}
