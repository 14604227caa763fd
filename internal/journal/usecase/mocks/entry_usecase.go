package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	journalDomain "github.com/lifelog-app/lifelog/internal/journal/domain"
)

// MockEntryUseCase is a mock implementation of usecase.EntryUseCase for testing.
type MockEntryUseCase struct {
	mock.Mock
}

// Create mocks the Create method of EntryUseCase.
func (m *MockEntryUseCase) Create(
	ctx context.Context,
	entryDate string,
	payload *journalDomain.EntryPayload,
) (*journalDomain.Entry, error) {
	args := m.Called(ctx, entryDate, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*journalDomain.Entry), args.Error(1)
}

// Get mocks the Get method of EntryUseCase.
func (m *MockEntryUseCase) Get(ctx context.Context, id uuid.UUID) (*journalDomain.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*journalDomain.Entry), args.Error(1)
}

// List mocks the List method of EntryUseCase.
func (m *MockEntryUseCase) List(ctx context.Context, offset, limit int) ([]*journalDomain.Entry, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*journalDomain.Entry), args.Error(1)
}

// Update mocks the Update method of EntryUseCase.
func (m *MockEntryUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	payload *journalDomain.EntryPayload,
) (*journalDomain.Entry, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*journalDomain.Entry), args.Error(1)
}

// Delete mocks the Delete method of EntryUseCase.
func (m *MockEntryUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
