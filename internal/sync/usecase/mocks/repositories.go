// Package mocks provides mock implementations for testing sync use cases.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	chatDomain "github.com/lifelog-app/lifelog/internal/chat/domain"
	journalDomain "github.com/lifelog-app/lifelog/internal/journal/domain"
	syncDomain "github.com/lifelog-app/lifelog/internal/sync/domain"
)

// MockChangeRepository is a mock implementation of usecase.ChangeRepository for testing.
type MockChangeRepository struct {
	mock.Mock
}

// Create mocks the Create method of ChangeRepository.
func (m *MockChangeRepository) Create(ctx context.Context, change *syncDomain.Change) error {
	args := m.Called(ctx, change)
	return args.Error(0)
}

// ListAfter mocks the ListAfter method of ChangeRepository.
func (m *MockChangeRepository) ListAfter(
	ctx context.Context,
	cursor int64,
	limit int,
) ([]*syncDomain.Change, error) {
	args := m.Called(ctx, cursor, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*syncDomain.Change), args.Error(1)
}

// MockEntryReader is a mock implementation of usecase.EntryReader for testing.
type MockEntryReader struct {
	mock.Mock
}

// Get mocks the Get method of EntryReader.
func (m *MockEntryReader) Get(ctx context.Context, id uuid.UUID) (*journalDomain.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*journalDomain.Entry), args.Error(1)
}

// MockMessageReader is a mock implementation of usecase.MessageReader for testing.
type MockMessageReader struct {
	mock.Mock
}

// Get mocks the Get method of MessageReader.
func (m *MockMessageReader) Get(ctx context.Context, id uuid.UUID) (*chatDomain.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chatDomain.Message), args.Error(1)
}
