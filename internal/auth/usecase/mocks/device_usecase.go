package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/lifelog-app/lifelog/internal/auth/domain"
)

// MockDeviceUseCase is a mock implementation of usecase.DeviceUseCase for testing.
type MockDeviceUseCase struct {
	mock.Mock
}

// Create mocks the Create method of DeviceUseCase.
func (m *MockDeviceUseCase) Create(
	ctx context.Context,
	input *authDomain.CreateDeviceInput,
) (*authDomain.CreateDeviceOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.CreateDeviceOutput), args.Error(1)
}

// Get mocks the Get method of DeviceUseCase.
func (m *MockDeviceUseCase) Get(ctx context.Context, id uuid.UUID) (*authDomain.Device, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Device), args.Error(1)
}

// List mocks the List method of DeviceUseCase.
func (m *MockDeviceUseCase) List(ctx context.Context, offset, limit int) ([]*authDomain.Device, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*authDomain.Device), args.Error(1)
}

// Deactivate mocks the Deactivate method of DeviceUseCase.
func (m *MockDeviceUseCase) Deactivate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Authenticate mocks the Authenticate method of DeviceUseCase.
func (m *MockDeviceUseCase) Authenticate(
	ctx context.Context,
	deviceID uuid.UUID,
	plainSecret string,
) (*authDomain.Device, error) {
	args := m.Called(ctx, deviceID, plainSecret)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Device), args.Error(1)
}
