// Package mocks provides mock implementations for testing crypto service consumers.
package mocks

import (
	"github.com/stretchr/testify/mock"

	cryptoDomain "github.com/lifelog-app/lifelog/internal/crypto/domain"
)

// MockSealer is a mock implementation of service.Sealer for testing.
type MockSealer struct {
	mock.Mock
}

// Seal mocks the Seal method of Sealer.
func (m *MockSealer) Seal(value any) (*cryptoDomain.SealedEnvelope, error) {
	args := m.Called(value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cryptoDomain.SealedEnvelope), args.Error(1)
}

// Unseal mocks the Unseal method of Sealer.
func (m *MockSealer) Unseal(envelope *cryptoDomain.SealedEnvelope, out any) error {
	args := m.Called(envelope, out)
	return args.Error(0)
}

// UnsealRaw mocks the UnsealRaw method of Sealer.
func (m *MockSealer) UnsealRaw(envelope *cryptoDomain.SealedEnvelope) ([]byte, error) {
	args := m.Called(envelope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
