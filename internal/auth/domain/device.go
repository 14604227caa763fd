// Package domain defines the device authentication domain models.
//
// A device is a mobile client installation. It authenticates with a
// device-scoped secret that is generated once at registration time and stored
// only as an Argon2id hash.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/lifelog-app/lifelog/internal/errors"
)

var (
	// ErrDeviceNotFound indicates the requested device does not exist.
	ErrDeviceNotFound = errors.Wrap(errors.ErrNotFound, "device not found")

	// ErrDeviceInactive indicates the device exists but has been deactivated.
	ErrDeviceInactive = errors.Wrap(errors.ErrForbidden, "device is inactive")
)

// Device represents a registered mobile client installation.
type Device struct {
	ID uuid.UUID
	// Name is a human-readable label (e.g., "Ana's phone").
	Name string
	// Secret is the Argon2id hash of the device secret, never the plaintext.
	Secret string
	// IsActive controls whether the device can authenticate.
	IsActive bool
	CreatedAt time.Time
	// LastSeenAt is the time of the last successful authentication (nil if never).
	LastSeenAt *time.Time
}

// CreateDeviceInput contains the parameters for registering a new device.
// The device secret is always generated server-side.
type CreateDeviceInput struct {
	Name string
}

// CreateDeviceOutput contains the result of registering a device.
// PlainSecret is returned exactly once and is never retrievable again;
// only its hash is persisted.
type CreateDeviceOutput struct {
	ID          uuid.UUID
	PlainSecret string
}
