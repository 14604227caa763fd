package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	chatDomain "github.com/lifelog-app/lifelog/internal/chat/domain"
	"github.com/lifelog-app/lifelog/internal/database"
	apperrors "github.com/lifelog-app/lifelog/internal/errors"
)

// MySQLMessageRepository implements Message persistence for MySQL databases.
type MySQLMessageRepository struct {
	db *sql.DB
}

// Create inserts a new message.
func (m *MySQLMessageRepository) Create(ctx context.Context, message *chatDomain.Message) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO messages (id, conversation_id, payload, created_at)
			  VALUES (?, ?, ?, ?)`

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
func (m *MySQLMessageRepository) Get(ctx context.Context, id uuid.UUID) (*chatDomain.Message, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, conversation_id, payload, created_at
			  FROM messages
			  WHERE id = ?
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
func (m *MySQLMessageRepository) List(ctx context.Context, offset, limit int) ([]*chatDomain.Message, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, conversation_id, payload, created_at
			  FROM messages
			  ORDER BY created_at ASC, id ASC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list messages")
	}
	defer func() { _ = rows.Close() }()

	return scanMessages(rows)
}

// ListByConversation retrieves messages for a conversation in chronological order.
func (m *MySQLMessageRepository) ListByConversation(
	ctx context.Context,
	conversationID uuid.UUID,
	offset, limit int,
) ([]*chatDomain.Message, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, conversation_id, payload, created_at
			  FROM messages
			  WHERE conversation_id = ?
			  ORDER BY created_at ASC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, conversationID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list messages")
	}
	defer func() { _ = rows.Close() }()

	return scanMessages(rows)
}

// NewMySQLMessageRepository creates a new MySQL Message repository instance.
func NewMySQLMessageRepository(db *sql.DB) *MySQLMessageRepository {
	return &MySQLMessageRepository{db: db}
}
