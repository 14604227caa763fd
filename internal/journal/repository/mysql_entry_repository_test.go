package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/lifelog-app/lifelog/internal/errors"
	"github.com/lifelog-app/lifelog/internal/testutil"
)

func TestMySQLEntryRepository_CreateAndGet(t *testing.T) {
	testutil.SkipIfNoMySQL(t)
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLEntryRepository(db)
	ctx := context.Background()

	entry := newTestEntry()
	err := repo.Create(ctx, entry)
	require.NoError(t, err)

	read, err := repo.Get(ctx, entry.ID)
	require.NoError(t, err)

	assert.Equal(t, entry.ID, read.ID)
	assert.Equal(t, entry.Sealed, read.Sealed)
	assert.True(t, entry.EntryDate.Equal(read.EntryDate.UTC()))
	assert.WithinDuration(t, entry.CreatedAt, read.CreatedAt, time.Second)
	assert.Nil(t, read.Payload, "repository must never populate plaintext")
}

func TestMySQLEntryRepository_Get_NotFound(t *testing.T) {
	testutil.SkipIfNoMySQL(t)
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLEntryRepository(db)

	entry, err := repo.Get(context.Background(), uuid.Must(uuid.NewV7()))
	assert.Nil(t, entry)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMySQLEntryRepository_List(t *testing.T) {
	testutil.SkipIfNoMySQL(t)
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLEntryRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		entry := newTestEntry()
		entry.EntryDate = base.AddDate(0, 0, i)
		require.NoError(t, repo.Create(ctx, entry))
		ids = append(ids, entry.ID)
	}

	entries, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Newest entry date first
	assert.Equal(t, ids[2], entries[0].ID)
	assert.Equal(t, ids[0], entries[2].ID)

	page, err := repo.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, ids[1], page[0].ID)
}

func TestMySQLEntryRepository_Update(t *testing.T) {
	testutil.SkipIfNoMySQL(t)
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLEntryRepository(db)
	ctx := context.Background()

	entry := newTestEntry()
	require.NoError(t, repo.Create(ctx, entry))

	entry.Sealed = `{"encryptedData":"cafef00d","iv":"11111111111111111111111111111111","authTag":"11111111111111111111111111111111"}`
	entry.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, entry))

	read, err := repo.Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.Sealed, read.Sealed)
}

func TestMySQLEntryRepository_Delete(t *testing.T) {
	testutil.SkipIfNoMySQL(t)
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLEntryRepository(db)
	ctx := context.Background()

	entry := newTestEntry()
	require.NoError(t, repo.Create(ctx, entry))

	require.NoError(t, repo.Delete(ctx, entry.ID))

	// Soft deleted entries are invisible to Get
	read, err := repo.Get(ctx, entry.ID)
	assert.Nil(t, read)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// The row still exists with deleted_at set
	var deletedAt *time.Time
	err = db.QueryRowContext(ctx, `SELECT deleted_at FROM entries WHERE id = ?`, entry.ID).Scan(&deletedAt)
	require.NoError(t, err)
	assert.NotNil(t, deletedAt)

	// Deleting again reports not found
	err = repo.Delete(ctx, entry.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
