// Package mocks provides mock implementations for testing journal use cases.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	journalDomain "github.com/lifelog-app/lifelog/internal/journal/domain"
	syncDomain "github.com/lifelog-app/lifelog/internal/sync/domain"
)

// MockEntryRepository is a mock implementation of usecase.EntryRepository for testing.
type MockEntryRepository struct {
	mock.Mock
}

// Create mocks the Create method of EntryRepository.
func (m *MockEntryRepository) Create(ctx context.Context, entry *journalDomain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// Get mocks the Get method of EntryRepository.
func (m *MockEntryRepository) Get(ctx context.Context, id uuid.UUID) (*journalDomain.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*journalDomain.Entry), args.Error(1)
}

// List mocks the List method of EntryRepository.
func (m *MockEntryRepository) List(ctx context.Context, offset, limit int) ([]*journalDomain.Entry, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*journalDomain.Entry), args.Error(1)
}

// Update mocks the Update method of EntryRepository.
func (m *MockEntryRepository) Update(ctx context.Context, entry *journalDomain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// Delete mocks the Delete method of EntryRepository.
func (m *MockEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockChangeRecorder is a mock implementation of usecase.ChangeRecorder for testing.
type MockChangeRecorder struct {
	mock.Mock
}

// Create mocks the Create method of ChangeRecorder.
func (m *MockChangeRecorder) Create(ctx context.Context, change *syncDomain.Change) error {
	args := m.Called(ctx, change)
	return args.Error(0)
}
