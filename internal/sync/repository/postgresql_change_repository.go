// Package repository implements persistence for the sync change feed.
package repository

import (
	"context"
	"database/sql"

	"github.com/lifelog-app/lifelog/internal/database"
	apperrors "github.com/lifelog-app/lifelog/internal/errors"
	syncDomain "github.com/lifelog-app/lifelog/internal/sync/domain"
)

// PostgreSQLChangeRepository implements Change persistence for PostgreSQL databases.
type PostgreSQLChangeRepository struct {
	db *sql.DB
}

// Create appends a change row. The database assigns the sequence number,
// which is written back into the change.
func (p *PostgreSQLChangeRepository) Create(ctx context.Context, change *syncDomain.Change) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO changes (record_id, record_type, op, created_at)
			  VALUES ($1, $2, $3, $4)
			  RETURNING seq`

	err := querier.QueryRowContext(
		ctx,
		query,
		change.RecordID,
		change.RecordType,
		change.Op,
		change.CreatedAt,
	).Scan(&change.Seq)
	if err != nil {
		return apperrors.Wrap(err, "failed to create change")
	}
	return nil
}

// ListAfter retrieves changes with a sequence number greater than cursor,
// in sequence order.
func (p *PostgreSQLChangeRepository) ListAfter(
	ctx context.Context,
	cursor int64,
	limit int,
) ([]*syncDomain.Change, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT seq, record_id, record_type, op, created_at
			  FROM changes
			  WHERE seq > $1
			  ORDER BY seq ASC
			  LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, cursor, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list changes")
	}
	defer func() { _ = rows.Close() }()

	return scanChanges(rows)
}

func scanChanges(rows *sql.Rows) ([]*syncDomain.Change, error) {
	var changes []*syncDomain.Change
	for rows.Next() {
		var change syncDomain.Change
		if err := rows.Scan(
			&change.Seq,
			&change.RecordID,
			&change.RecordType,
			&change.Op,
			&change.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan change")
		}
		changes = append(changes, &change)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate changes")
	}
	return changes, nil
}

// NewPostgreSQLChangeRepository creates a new PostgreSQL Change repository instance.
func NewPostgreSQLChangeRepository(db *sql.DB) *PostgreSQLChangeRepository {
	return &PostgreSQLChangeRepository{db: db}
}
