// Package usecase implements business logic for chat message persistence.
// Message content is sealed before it reaches a repository and unsealed on
// the way out.
package usecase

import (
	"context"

	"github.com/google/uuid"

	chatDomain "github.com/lifelog-app/lifelog/internal/chat/domain"
	syncDomain "github.com/lifelog-app/lifelog/internal/sync/domain"
)

// MessageRepository defines the interface for Message persistence operations.
type MessageRepository interface {
	Create(ctx context.Context, message *chatDomain.Message) error
	Get(ctx context.Context, id uuid.UUID) (*chatDomain.Message, error)
	ListByConversation(ctx context.Context, conversationID uuid.UUID, offset, limit int) ([]*chatDomain.Message, error)
	// List walks messages across all conversations in chronological order.
	List(ctx context.Context, offset, limit int) ([]*chatDomain.Message, error)
}

// ChangeRecorder appends change feed rows inside the caller's transaction.
type ChangeRecorder interface {
	Create(ctx context.Context, change *syncDomain.Change) error
}

// MessageUseCase defines the interface for chat message business logic.
type MessageUseCase interface {
	// Append seals the payload and persists a new message in a conversation.
	Append(ctx context.Context, conversationID uuid.UUID, payload *chatDomain.MessagePayload) (*chatDomain.Message, error)
	// ListByConversation retrieves messages with unsealed payloads in chronological order.
	ListByConversation(ctx context.Context, conversationID uuid.UUID, offset, limit int) ([]*chatDomain.Message, error)
}
