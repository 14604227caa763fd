// Package http provides HTTP middleware and utilities for device authentication.
package http

import (
	"context"

	authDomain "github.com/lifelog-app/lifelog/internal/auth/domain"
)

// deviceKey is a context key type for storing authenticated devices.
type deviceKey struct{}

// WithDevice stores an authenticated device in the context.
// Called by the authentication middleware after successful credential verification.
func WithDevice(ctx context.Context, device *authDomain.Device) context.Context {
	return context.WithValue(ctx, deviceKey{}, device)
}

// GetDevice retrieves an authenticated device from the context.
// Returns (device, true) if a device is present, or (nil, false) if none was set.
func GetDevice(ctx context.Context) (*authDomain.Device, bool) {
	device, ok := ctx.Value(deviceKey{}).(*authDomain.Device)
	return device, ok
}
