// Package repository implements data persistence for registered devices.
// Repositories support both PostgreSQL and MySQL; only hashed secrets ever
// reach the database.
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/lifelog-app/lifelog/internal/auth/domain"
	"github.com/lifelog-app/lifelog/internal/database"
	apperrors "github.com/lifelog-app/lifelog/internal/errors"
)

// PostgreSQLDeviceRepository implements device persistence for PostgreSQL databases.
type PostgreSQLDeviceRepository struct {
	db *sql.DB
}

// Create inserts a new device into the PostgreSQL database.
func (p *PostgreSQLDeviceRepository) Create(ctx context.Context, device *authDomain.Device) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO devices (id, name, secret, is_active, created_at, last_seen_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := querier.ExecContext(
		ctx,
		query,
		device.ID,
		device.Name,
		device.Secret,
		device.IsActive,
		device.CreatedAt,
		device.LastSeenAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create device")
	}
	return nil
}

// Get retrieves a device by its ID.
func (p *PostgreSQLDeviceRepository) Get(ctx context.Context, id uuid.UUID) (*authDomain.Device, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, secret, is_active, created_at, last_seen_at
			  FROM devices
			  WHERE id = $1
			  LIMIT 1`

	var device authDomain.Device
	err := querier.QueryRowContext(ctx, query, id).Scan(
		&device.ID,
		&device.Name,
		&device.Secret,
		&device.IsActive,
		&device.CreatedAt,
		&device.LastSeenAt,
	)
	if err != nil {
		if apperrors.Is(err, sql.ErrNoRows) {
			return nil, authDomain.ErrDeviceNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get device")
	}
	return &device, nil
}

// Update modifies a device's name and active status.
func (p *PostgreSQLDeviceRepository) Update(ctx context.Context, device *authDomain.Device) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE devices SET name = $1, is_active = $2 WHERE id = $3`

	result, err := querier.ExecContext(ctx, query, device.Name, device.IsActive, device.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update device")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return authDomain.ErrDeviceNotFound
	}
	return nil
}

// UpdateLastSeen records the time of a successful authentication.
func (p *PostgreSQLDeviceRepository) UpdateLastSeen(ctx context.Context, id uuid.UUID, seenAt time.Time) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE devices SET last_seen_at = $1 WHERE id = $2`

	if _, err := querier.ExecContext(ctx, query, seenAt, id); err != nil {
		return apperrors.Wrap(err, "failed to update device last seen")
	}
	return nil
}

// List retrieves devices ordered by creation time descending with pagination.
func (p *PostgreSQLDeviceRepository) List(ctx context.Context, offset, limit int) ([]*authDomain.Device, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, secret, is_active, created_at, last_seen_at
			  FROM devices
			  ORDER BY created_at DESC
			  OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list devices")
	}
	defer func() { _ = rows.Close() }()

	return scanDevices(rows)
}

// scanDevices reads device rows into domain objects. Shared by the
// PostgreSQL and MySQL repositories since the column set is identical.
func scanDevices(rows *sql.Rows) ([]*authDomain.Device, error) {
	var devices []*authDomain.Device
	for rows.Next() {
		var device authDomain.Device
		if err := rows.Scan(
			&device.ID,
			&device.Name,
			&device.Secret,
			&device.IsActive,
			&device.CreatedAt,
			&device.LastSeenAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan device")
		}
		devices = append(devices, &device)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate devices")
	}
	return devices, nil
}

// NewPostgreSQLDeviceRepository creates a new PostgreSQL device repository.
func NewPostgreSQLDeviceRepository(db *sql.DB) *PostgreSQLDeviceRepository {
	return &PostgreSQLDeviceRepository{db: db}
}
