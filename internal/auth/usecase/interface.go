// Package usecase implements business logic for device registration and authentication.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/lifelog-app/lifelog/internal/auth/domain"
)

// DeviceRepository defines persistence operations for registered devices.
// Implementations must support transaction-aware operations via context propagation.
type DeviceRepository interface {
	// Create stores a new device in the repository.
	Create(ctx context.Context, device *authDomain.Device) error

	// Update modifies a device's name and active status.
	Update(ctx context.Context, device *authDomain.Device) error

	// Get retrieves a device by ID. Returns ErrDeviceNotFound if not found.
	Get(ctx context.Context, id uuid.UUID) (*authDomain.Device, error)

	// UpdateLastSeen records the time of a successful authentication.
	UpdateLastSeen(ctx context.Context, id uuid.UUID, seenAt time.Time) error

	// List retrieves devices ordered by creation time descending.
	List(ctx context.Context, offset, limit int) ([]*authDomain.Device, error)
}

// DeviceUseCase defines business logic operations for device lifecycle and
// request authentication.
type DeviceUseCase interface {
	// Create registers a new device with a server-generated secret.
	//
	// The returned PlainSecret is shown exactly once and must be transmitted
	// securely to the device. Only its Argon2id hash is persisted; the plain
	// text is never retrievable again and must never be logged.
	Create(ctx context.Context, input *authDomain.CreateDeviceInput) (*authDomain.CreateDeviceOutput, error)

	// Get retrieves a device by ID. The returned device carries the hashed
	// secret, never the plain text.
	Get(ctx context.Context, id uuid.UUID) (*authDomain.Device, error)

	// List retrieves devices ordered by creation time descending.
	List(ctx context.Context, offset, limit int) ([]*authDomain.Device, error)

	// Deactivate prevents a device from authenticating while preserving its
	// record. Returns ErrDeviceNotFound if the device doesn't exist.
	Deactivate(ctx context.Context, id uuid.UUID) error

	// Authenticate verifies a device credential pair.
	//
	// Returns ErrUnauthorized for an unknown device or a secret mismatch
	// (indistinguishable to the caller), and ErrDeviceInactive for a valid
	// credential on a deactivated device. On success the device's
	// last_seen_at is updated and the device is returned.
	Authenticate(ctx context.Context, deviceID uuid.UUID, plainSecret string) (*authDomain.Device, error)
}
