// Package mocks provides mock implementations for auth usecase dependencies.
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/lifelog-app/lifelog/internal/auth/domain"
)

// MockDeviceRepository is a mock implementation of usecase.DeviceRepository for testing.
type MockDeviceRepository struct {
	mock.Mock
}

// Create mocks the Create method of DeviceRepository.
func (m *MockDeviceRepository) Create(ctx context.Context, device *authDomain.Device) error {
	args := m.Called(ctx, device)
	return args.Error(0)
}

// Update mocks the Update method of DeviceRepository.
func (m *MockDeviceRepository) Update(ctx context.Context, device *authDomain.Device) error {
	args := m.Called(ctx, device)
	return args.Error(0)
}

// Get mocks the Get method of DeviceRepository.
func (m *MockDeviceRepository) Get(ctx context.Context, id uuid.UUID) (*authDomain.Device, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Device), args.Error(1)
}

// UpdateLastSeen mocks the UpdateLastSeen method of DeviceRepository.
func (m *MockDeviceRepository) UpdateLastSeen(ctx context.Context, id uuid.UUID, seenAt time.Time) error {
	args := m.Called(ctx, id, seenAt)
	return args.Error(0)
}

// List mocks the List method of DeviceRepository.
func (m *MockDeviceRepository) List(ctx context.Context, offset, limit int) ([]*authDomain.Device, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*authDomain.Device), args.Error(1)
}

// MockSecretService is a mock implementation of service.SecretService for testing.
type MockSecretService struct {
	mock.Mock
}

// GenerateSecret mocks the GenerateSecret method of SecretService.
func (m *MockSecretService) GenerateSecret() (string, string, error) {
	args := m.Called()
	return args.String(0), args.String(1), args.Error(2)
}

// HashSecret mocks the HashSecret method of SecretService.
func (m *MockSecretService) HashSecret(plainSecret string) (string, error) {
	args := m.Called(plainSecret)
	return args.String(0), args.Error(1)
}

// CompareSecret mocks the CompareSecret method of SecretService.
func (m *MockSecretService) CompareSecret(plainSecret string, hashedSecret string) bool {
	args := m.Called(plainSecret, hashedSecret)
	return args.Bool(0)
}
