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

// MySQLDeviceRepository implements device persistence for MySQL databases.
type MySQLDeviceRepository struct {
	db *sql.DB
}

// Create inserts a new device into the MySQL database.
func (m *MySQLDeviceRepository) Create(ctx context.Context, device *authDomain.Device) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO devices (id, name, secret, is_active, created_at, last_seen_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

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
func (m *MySQLDeviceRepository) Get(ctx context.Context, id uuid.UUID) (*authDomain.Device, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, secret, is_active, created_at, last_seen_at
			  FROM devices
			  WHERE id = ?
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
func (m *MySQLDeviceRepository) Update(ctx context.Context, device *authDomain.Device) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE devices SET name = ?, is_active = ? WHERE id = ?`

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
func (m *MySQLDeviceRepository) UpdateLastSeen(ctx context.Context, id uuid.UUID, seenAt time.Time) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE devices SET last_seen_at = ? WHERE id = ?`

	if _, err := querier.ExecContext(ctx, query, seenAt, id); err != nil {
		return apperrors.Wrap(err, "failed to update device last seen")
	}
	return nil
}

// List retrieves devices ordered by creation time descending with pagination.
func (m *MySQLDeviceRepository) List(ctx context.Context, offset, limit int) ([]*authDomain.Device, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, secret, is_active, created_at, last_seen_at
			  FROM devices
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list devices")
	}
	defer func() { _ = rows.Close() }()

	return scanDevices(rows)
}

// NewMySQLDeviceRepository creates a new MySQL device repository.
func NewMySQLDeviceRepository(db *sql.DB) *MySQLDeviceRepository {
	return &MySQLDeviceRepository{db: db}
}
