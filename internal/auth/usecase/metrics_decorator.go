package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/lifelog-app/lifelog/internal/auth/domain"
	"github.com/lifelog-app/lifelog/internal/metrics"
)

// deviceUseCaseWithMetrics decorates DeviceUseCase with metrics instrumentation.
type deviceUseCaseWithMetrics struct {
	next    DeviceUseCase
	metrics metrics.BusinessMetrics
}

// NewDeviceUseCaseWithMetrics wraps a DeviceUseCase with metrics recording.
func NewDeviceUseCaseWithMetrics(useCase DeviceUseCase, m metrics.BusinessMetrics) DeviceUseCase {
	return &deviceUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for device registration.
func (d *deviceUseCaseWithMetrics) Create(
	ctx context.Context,
	input *authDomain.CreateDeviceInput,
) (*authDomain.CreateDeviceOutput, error) {
	start := time.Now()
	output, err := d.next.Create(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	d.metrics.RecordOperation(ctx, "auth", "device_create", status)
	d.metrics.RecordDuration(ctx, "auth", "device_create", time.Since(start), status)

	return output, err
}

// Get records metrics for device retrieval.
func (d *deviceUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (*authDomain.Device, error) {
	start := time.Now()
	device, err := d.next.Get(ctx, id)

	status := "success"
	if err != nil {
		status = "error"
	}

	d.metrics.RecordOperation(ctx, "auth", "device_get", status)
	d.metrics.RecordDuration(ctx, "auth", "device_get", time.Since(start), status)

	return device, err
}

// List records metrics for device listing.
func (d *deviceUseCaseWithMetrics) List(ctx context.Context, offset, limit int) ([]*authDomain.Device, error) {
	start := time.Now()
	devices, err := d.next.List(ctx, offset, limit)

	status := "success"
	if err != nil {
		status = "error"
	}

	d.metrics.RecordOperation(ctx, "auth", "device_list", status)
	d.metrics.RecordDuration(ctx, "auth", "device_list", time.Since(start), status)

	return devices, err
}

// Deactivate records metrics for device deactivation.
func (d *deviceUseCaseWithMetrics) Deactivate(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := d.next.Deactivate(ctx, id)

	status := "success"
	if err != nil {
		status = "error"
	}

	d.metrics.RecordOperation(ctx, "auth", "device_deactivate", status)
	d.metrics.RecordDuration(ctx, "auth", "device_deactivate", time.Since(start), status)

	return err
}

// Authenticate records metrics for device authentication.
func (d *deviceUseCaseWithMetrics) Authenticate(
	ctx context.Context,
	deviceID uuid.UUID,
	plainSecret string,
) (*authDomain.Device, error) {
	start := time.Now()
	device, err := d.next.Authenticate(ctx, deviceID, plainSecret)

	status := "success"
	if err != nil {
		status = "error"
	}

	d.metrics.RecordOperation(ctx, "auth", "device_authenticate", status)
	d.metrics.RecordDuration(ctx, "auth", "device_authenticate", time.Since(start), status)

	return device, err
}
