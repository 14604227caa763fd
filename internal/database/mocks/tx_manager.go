// Package mocks provides mock implementations for testing database consumers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTxManager is a mock implementation of database.TxManager for testing.
//
// By default tests want the transactional function to actually run, so wire
// it with PassthroughTx unless the transaction itself should fail.
type MockTxManager struct {
	mock.Mock
}

// WithTx mocks the WithTx method of TxManager.
func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

// PassthroughTx returns a Run function that executes the transactional
// callback with the given context, mimicking a committed transaction.
func PassthroughTx() func(args mock.Arguments) {
	return func(args mock.Arguments) {
		ctx := args.Get(0).(context.Context)
		fn := args.Get(1).(func(ctx context.Context) error)
		_ = fn(ctx)
	}
}
