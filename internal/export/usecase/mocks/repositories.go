// Package mocks provides mock implementations for export usecase dependencies.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	chatDomain "github.com/lifelog-app/lifelog/internal/chat/domain"
	exportDomain "github.com/lifelog-app/lifelog/internal/export/domain"
	journalDomain "github.com/lifelog-app/lifelog/internal/journal/domain"
)

// MockEntryLister is a mock implementation of usecase.EntryLister for testing.
type MockEntryLister struct {
	mock.Mock
}

// List mocks the List method of EntryLister.
func (m *MockEntryLister) List(ctx context.Context, offset, limit int) ([]*journalDomain.Entry, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*journalDomain.Entry), args.Error(1)
}

// MockMessageLister is a mock implementation of usecase.MessageLister for testing.
type MockMessageLister struct {
	mock.Mock
}

// List mocks the List method of MessageLister.
func (m *MockMessageLister) List(ctx context.Context, offset, limit int) ([]*chatDomain.Message, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*chatDomain.Message), args.Error(1)
}

// MockExportUseCase is a mock implementation of usecase.ExportUseCase for testing.
type MockExportUseCase struct {
	mock.Mock
}

// Export mocks the Export method of ExportUseCase.
func (m *MockExportUseCase) Export(ctx context.Context) (*exportDomain.Export, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*exportDomain.Export), args.Error(1)
}
