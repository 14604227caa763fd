package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/lifelog-app/lifelog/internal/database"
	apperrors "github.com/lifelog-app/lifelog/internal/errors"
	journalDomain "github.com/lifelog-app/lifelog/internal/journal/domain"
)

// MySQLEntryRepository implements Entry persistence for MySQL databases.
type MySQLEntryRepository struct {
	db *sql.DB
}

// Create inserts a new entry into the MySQL database.
func (m *MySQLEntryRepository) Create(ctx context.Context, entry *journalDomain.Entry) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO entries (id, entry_date, payload, created_at, updated_at, deleted_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(
		ctx,
		query,
		entry.ID,
		entry.EntryDate,
		entry.Sealed,
		entry.CreatedAt,
		entry.UpdatedAt,
		entry.DeletedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create entry")
	}
	return nil
}

// Get retrieves a non-deleted entry by its ID.
func (m *MySQLEntryRepository) Get(ctx context.Context, id uuid.UUID) (*journalDomain.Entry, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, entry_date, payload, created_at, updated_at, deleted_at
			  FROM entries
			  WHERE id = ? AND deleted_at IS NULL
			  LIMIT 1`

	var entry journalDomain.Entry
	err := querier.QueryRowContext(ctx, query, id).Scan(
		&entry.ID,
		&entry.EntryDate,
		&entry.Sealed,
		&entry.CreatedAt,
		&entry.UpdatedAt,
		&entry.DeletedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, journalDomain.ErrEntryNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get entry")
	}

	return &entry, nil
}

// List retrieves non-deleted entries ordered by entry date descending with pagination.
func (m *MySQLEntryRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*journalDomain.Entry, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, entry_date, payload, created_at, updated_at, deleted_at
			  FROM entries
			  WHERE deleted_at IS NULL
			  ORDER BY entry_date DESC, created_at DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list entries")
	}
	defer func() { _ = rows.Close() }()

	return scanEntries(rows)
}

// Update replaces the sealed payload and update timestamp of an existing entry.
func (m *MySQLEntryRepository) Update(ctx context.Context, entry *journalDomain.Entry) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE entries
			  SET payload = ?, updated_at = ?
			  WHERE id = ? AND deleted_at IS NULL`

	result, err := querier.ExecContext(ctx, query, entry.Sealed, entry.UpdatedAt, entry.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update entry")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check update result")
	}
	if affected == 0 {
		return journalDomain.ErrEntryNotFound
	}

	return nil
}

// Delete performs a soft delete on an entry by setting the DeletedAt timestamp.
func (m *MySQLEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE entries
			  SET deleted_at = ?
			  WHERE id = ? AND deleted_at IS NULL`

	result, err := querier.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete entry")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check delete result")
	}
	if affected == 0 {
		return journalDomain.ErrEntryNotFound
	}

	return nil
}

// NewMySQLEntryRepository creates a new MySQL Entry repository instance.
func NewMySQLEntryRepository(db *sql.DB) *MySQLEntryRepository {
	return &MySQLEntryRepository{db: db}
}
