package repository

import (
	"context"
	"database/sql"

	"github.com/lifelog-app/lifelog/internal/database"
	apperrors "github.com/lifelog-app/lifelog/internal/errors"
	syncDomain "github.com/lifelog-app/lifelog/internal/sync/domain"
)

// MySQLChangeRepository implements Change persistence for MySQL databases.
type MySQLChangeRepository struct {
	db *sql.DB
}

// Create appends a change row. The database assigns the sequence number,
// which is written back into the change.
func (m *MySQLChangeRepository) Create(ctx context.Context, change *syncDomain.Change) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO changes (record_id, record_type, op, created_at)
			  VALUES (?, ?, ?, ?)`

	result, err := querier.ExecContext(
		ctx,
		query,
		change.RecordID,
		change.RecordType,
		change.Op,
		change.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create change")
	}

	seq, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to read change sequence")
	}
	change.Seq = seq

	return nil
}

// ListAfter retrieves changes with a sequence number greater than cursor,
// in sequence order.
func (m *MySQLChangeRepository) ListAfter(
	ctx context.Context,
	cursor int64,
	limit int,
) ([]*syncDomain.Change, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT seq, record_id, record_type, op, created_at
			  FROM changes
			  WHERE seq > ?
			  ORDER BY seq ASC
			  LIMIT ?`

	rows, err := querier.QueryContext(ctx, query, cursor, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list changes")
	}
	defer func() { _ = rows.Close() }()

	return scanChanges(rows)
}

// NewMySQLChangeRepository creates a new MySQL Change repository instance.
func NewMySQLChangeRepository(db *sql.DB) *MySQLChangeRepository {
	return &MySQLChangeRepository{db: db}
}
