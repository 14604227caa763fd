// Package repository implements data persistence for journal entries.
// Repositories support both PostgreSQL and MySQL; payloads arrive already
// sealed, so the database only ever sees envelope JSON.
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

// PostgreSQLEntryRepository implements Entry persistence for PostgreSQL databases.
type PostgreSQLEntryRepository struct {
	db *sql.DB
}

// Create inserts a new entry into the PostgreSQL database.
func (p *PostgreSQLEntryRepository) Create(ctx context.Context, entry *journalDomain.Entry) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO entries (id, entry_date, payload, created_at, updated_at, deleted_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

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
func (p *PostgreSQLEntryRepository) Get(ctx context.Context, id uuid.UUID) (*journalDomain.Entry, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, entry_date, payload, created_at, updated_at, deleted_at
			  FROM entries
			  WHERE id = $1 AND deleted_at IS NULL
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
func (p *PostgreSQLEntryRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*journalDomain.Entry, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, entry_date, payload, created_at, updated_at, deleted_at
			  FROM entries
			  WHERE deleted_at IS NULL
			  ORDER BY entry_date DESC, created_at DESC
			  OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list entries")
	}
	defer func() { _ = rows.Close() }()

	return scanEntries(rows)
}

// Update replaces the sealed payload and update timestamp of an existing entry.
func (p *PostgreSQLEntryRepository) Update(ctx context.Context, entry *journalDomain.Entry) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE entries
			  SET payload = $1, updated_at = $2
			  WHERE id = $3 AND deleted_at IS NULL`

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
func (p *PostgreSQLEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE entries
			  SET deleted_at = $1
			  WHERE id = $2 AND deleted_at IS NULL`

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

// scanEntries reads entry rows into domain objects.
func scanEntries(rows *sql.Rows) ([]*journalDomain.Entry, error) {
	var entries []*journalDomain.Entry
	for rows.Next() {
		var entry journalDomain.Entry
		if err := rows.Scan(
			&entry.ID,
			&entry.EntryDate,
			&entry.Sealed,
			&entry.CreatedAt,
			&entry.UpdatedAt,
			&entry.DeletedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan entry")
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate entries")
	}
	return entries, nil
}

// NewPostgreSQLEntryRepository creates a new PostgreSQL Entry repository instance.
func NewPostgreSQLEntryRepository(db *sql.DB) *PostgreSQLEntryRepository {
	return &PostgreSQLEntryRepository{db: db}
}
