// Package mocks provides mock implementations for testing chat use cases.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	chatDomain "github.com/lifelog-app/lifelog/internal/chat/domain"
	syncDomain "github.com/lifelog-app/lifelog/internal/sync/domain"
)

// MockMessageRepository is a mock implementation of usecase.MessageRepository for testing.
type MockMessageRepository struct {
	mock.Mock
}

// Create mocks the Create method of MessageRepository.
func (m *MockMessageRepository) Create(ctx context.Context, message *chatDomain.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

// Get mocks the Get method of MessageRepository.
func (m *MockMessageRepository) Get(ctx context.Context, id uuid.UUID) (*chatDomain.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chatDomain.Message), args.Error(1)
}

// ListByConversation mocks the ListByConversation method of MessageRepository.
func (m *MockMessageRepository) ListByConversation(
	ctx context.Context,
	conversationID uuid.UUID,
	offset, limit int,
) ([]*chatDomain.Message, error) {
	args := m.Called(ctx, conversationID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*chatDomain.Message), args.Error(1)
}

// List mocks the List method of MessageRepository.
func (m *MockMessageRepository) List(ctx context.Context, offset, limit int) ([]*chatDomain.Message, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*chatDomain.Message), args.Error(1)
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

// MockMessageUseCase is a mock implementation of usecase.MessageUseCase for testing.
type MockMessageUseCase struct {
	mock.Mock
}

// Append mocks the Append method of MessageUseCase.
func (m *MockMessageUseCase) Append(
	ctx context.Context,
	conversationID uuid.UUID,
	payload *chatDomain.MessagePayload,
) (*chatDomain.Message, error) {
	args := m.Called(ctx, conversationID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chatDomain.Message), args.Error(1)
}

// ListByConversation mocks the ListByConversation method of MessageUseCase.
func (m *MockMessageUseCase) ListByConversation(
	ctx context.Context,
	conversationID uuid.UUID,
	offset, limit int,
) ([]*chatDomain.Message, error) {
	args := m.Called(ctx, conversationID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*chatDomain.Message), args.Error(1)
}
