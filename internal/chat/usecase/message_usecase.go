package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	chatDomain "github.com/lifelog-app/lifelog/internal/chat/domain"
	cryptoDomain "github.com/lifelog-app/lifelog/internal/crypto/domain"
	cryptoService "github.com/lifelog-app/lifelog/internal/crypto/service"
	"github.com/lifelog-app/lifelog/internal/database"
	apperrors "github.com/lifelog-app/lifelog/internal/errors"
	syncDomain "github.com/lifelog-app/lifelog/internal/sync/domain"
)

// messageUseCase implements the MessageUseCase interface.
type messageUseCase struct {
	txManager   database.TxManager
	messageRepo MessageRepository
	changes     ChangeRecorder
	sealer      cryptoService.Sealer
}

// Append seals the payload and persists a new message, appending an upsert
// change row in the same transaction.
func (m *messageUseCase) Append(
	ctx context.Context,
	conversationID uuid.UUID,
	payload *chatDomain.MessagePayload,
) (*chatDomain.Message, error) {
	if payload.Role != chatDomain.RoleUser && payload.Role != chatDomain.RoleAssistant {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "role must be user or assistant")
	}

	envelope, err := m.sealer.Seal(payload)
	if err != nil {
		return nil, err
	}

	envelopeJSON, err := envelope.Marshal()
	if err != nil {
		return nil, err
	}

	message := &chatDomain.Message{
		ID:             uuid.Must(uuid.NewV7()),
		ConversationID: conversationID,
		Sealed:         string(envelopeJSON),
		Payload:        payload,
		CreatedAt:      time.Now().UTC(),
	}

	err = m.txManager.WithTx(ctx, func(txCtx context.Context) error {
		if err := m.messageRepo.Create(txCtx, message); err != nil {
			return err
		}
		return m.changes.Create(txCtx, syncDomain.NewChange(message.ID, syncDomain.RecordTypeMessage, syncDomain.OpUpsert))
	})
	if err != nil {
		return nil, err
	}

	return message, nil
}

// ListByConversation retrieves messages with unsealed payloads in chronological order.
func (m *messageUseCase) ListByConversation(
	ctx context.Context,
	conversationID uuid.UUID,
	offset, limit int,
) ([]*chatDomain.Message, error) {
	messages, err := m.messageRepo.ListByConversation(ctx, conversationID, offset, limit)
	if err != nil {
		return nil, err
	}

	for _, message := range messages {
		envelope, err := cryptoDomain.ParseSealedEnvelope([]byte(message.Sealed))
		if err != nil {
			return nil, err
		}

		var payload chatDomain.MessagePayload
		if err := m.sealer.Unseal(envelope, &payload); err != nil {
			return nil, err
		}
		message.Payload = &payload
	}

	return messages, nil
}

// NewMessageUseCase creates a new message use case instance with the provided dependencies.
func NewMessageUseCase(
	txManager database.TxManager,
	messageRepo MessageRepository,
	changes ChangeRecorder,
	sealer cryptoService.Sealer,
) MessageUseCase {
	return &messageUseCase{
		txManager:   txManager,
		messageRepo: messageRepo,
		changes:     changes,
		sealer:      sealer,
	}
}
