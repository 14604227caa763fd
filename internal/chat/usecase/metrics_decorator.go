package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	chatDomain "github.com/lifelog-app/lifelog/internal/chat/domain"
	"github.com/lifelog-app/lifelog/internal/metrics"
)

// messageUseCaseWithMetrics decorates MessageUseCase with metrics instrumentation.
type messageUseCaseWithMetrics struct {
	next    MessageUseCase
	metrics metrics.BusinessMetrics
}

// NewMessageUseCaseWithMetrics wraps a MessageUseCase with metrics recording.
func NewMessageUseCaseWithMetrics(useCase MessageUseCase, m metrics.BusinessMetrics) MessageUseCase {
	return &messageUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Append records metrics for message append operations.
func (m *messageUseCaseWithMetrics) Append(
	ctx context.Context,
	conversationID uuid.UUID,
	payload *chatDomain.MessagePayload,
) (*chatDomain.Message, error) {
	start := time.Now()
	message, err := m.next.Append(ctx, conversationID, payload)

	status := "success"
	if err != nil {
		status = "error"
	}

	m.metrics.RecordOperation(ctx, "chat", "message_append", status)
	m.metrics.RecordDuration(ctx, "chat", "message_append", time.Since(start), status)

	return message, err
}

// ListByConversation records metrics for message list operations.
func (m *messageUseCaseWithMetrics) ListByConversation(
	ctx context.Context,
	conversationID uuid.UUID,
	offset, limit int,
) ([]*chatDomain.Message, error) {
	start := time.Now()
	messages, err := m.next.ListByConversation(ctx, conversationID, offset, limit)

	status := "success"
	if err != nil {
		status = "error"
	}

	m.metrics.RecordOperation(ctx, "chat", "message_list", status)
	m.metrics.RecordDuration(ctx, "chat", "message_list", time.Since(start), status)

	return messages, err
}
