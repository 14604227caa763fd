// Package repository implements data persistence for chat messages.
package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	chatDomain "github.com/lifelog-app/lifelog/internal/chat/domain"
	"github.com/lifelog-app/lifelog/internal/database"
	apperrors "github.com/lifelog-app/lifelog/internal/errors"
)

// PostgreSQLMessageRepository implements Message persistence for PostgreSQL databases.
type PostgreSQLMessageRepository struct {
	db *sql.DB
}

// Create inserts a new message.
func (p *PostgreSQLMessageRepository) Create(ctx context.Context, message *chatDomain.Message) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO messages (id, conversation_id, payload, created_at)
			  VALUES ($1, $2, $3, $4)`

	_, err := querier.ExecContext(
		ctx,
		query,
		message.ID,
		message.ConversationID,
		message.Sealed,
		message.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create message")
	}
	return nil
}

// Get retrieves a message by its ID.
func (p *PostgreSQLMessageRepository) Get(ctx context.Context, id uuid.UUID) (*chatDomain.Message, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, conversation_id, payload, created_at
			  FROM messages
			  WHERE id = $1
			  LIMIT 1`

	var message chatDomain.Message
	err := querier.QueryRowContext(ctx, query, id).Scan(
		&message.ID,
		&message.ConversationID,
		&message.Sealed,
		&message.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, chatDomain.ErrMessageNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get message")
	}

	return &message, nil
}

// List retrieves messages across all conversations in chronological order.
// Used by the export path to walk the full message history.
func (p *PostgreSQLMessageRepository) List(ctx context.Context, offset, limit int) ([]*chatDomain.Message, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, conversation_id, payload, created_at
			  FROM messages
			  ORDER BY created_at ASC, id ASC
			  OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list messages")
	}
	defer func() { _ = rows.Close() }()

	return scanMessages(rows)
}

// ListByConversation retrieves messages for a conversation in chronological order.
func (p *PostgreSQLMessageRepository) ListByConversation(
	ctx context.Context,
	conversationID uuid.UUID,
	offset, limit int,
) ([]*chatDomain.Message, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, conversation_id, payload, created_at
			  FROM messages
			  WHERE conversation_id = $1
			  ORDER BY created_at ASC
			  OFFSET $2 LIMIT $3`

	rows, err := querier.QueryContext(ctx, query, conversationID, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list messages")
	}
	defer func() { _ = rows.Close() }()

	return scanMessages(rows)
}

func scanMessages(rows *sql.Rows) ([]*chatDomain.Message, error) {
	var messages []*chatDomain.Message
	for rows.Next() {
		var message chatDomain.Message
		if err := rows.Scan(
			&message.ID,
			&message.ConversationID,
			&message.Sealed,
			&message.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan message")
		}
		messages = append(messages, &message)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate messages")
	}
	return messages, nil
}

// NewPostgreSQLMessageRepository creates a new PostgreSQL Message repository instance.
func NewPostgreSQLMessageRepository(db *sql.DB) *PostgreSQLMessageRepository {
	return &PostgreSQLMessageRepository{db: db}
}
