package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifelog-app/lifelog/internal/database"
	syncDomain "github.com/lifelog-app/lifelog/internal/sync/domain"
	"github.com/lifelog-app/lifelog/internal/testutil"
)

func newTestChange(recordType syncDomain.RecordType, op syncDomain.Op) *syncDomain.Change {
	return &syncDomain.Change{
		RecordID:   uuid.Must(uuid.NewV7()),
		RecordType: recordType,
		Op:         op,
		CreatedAt:  time.Now().UTC(),
	}
}

func TestPostgreSQLChangeRepository_Create_AssignsSeq(t *testing.T) {
	testutil.SkipIfNoPostgres(t)
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLChangeRepository(db)
	ctx := context.Background()

	first := newTestChange(syncDomain.RecordTypeEntry, syncDomain.OpUpsert)
	require.NoError(t, repo.Create(ctx, first))
	assert.Greater(t, first.Seq, int64(0))

	second := newTestChange(syncDomain.RecordTypeMessage, syncDomain.OpDelete)
	require.NoError(t, repo.Create(ctx, second))
	assert.Greater(t, second.Seq, first.Seq, "sequence numbers must increase")
}

func TestPostgreSQLChangeRepository_ListAfter(t *testing.T) {
	testutil.SkipIfNoPostgres(t)
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLChangeRepository(db)
	ctx := context.Background()

	var created []*syncDomain.Change
	for i := 0; i < 3; i++ {
		change := newTestChange(syncDomain.RecordTypeEntry, syncDomain.OpUpsert)
		require.NoError(t, repo.Create(ctx, change))
		created = append(created, change)
	}

	// Cursor zero returns the full feed in sequence order
	changes, err := repo.ListAfter(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, changes, 3)
	assert.Equal(t, created[0].Seq, changes[0].Seq)
	assert.Equal(t, created[2].Seq, changes[2].Seq)

	// A cursor at the first change skips it
	changes, err = repo.ListAfter(ctx, created[0].Seq, 10)
	require.NoError(t, err)
	require.Len(t, changes, 2)
	assert.Equal(t, created[1].Seq, changes[0].Seq)

	// Limit bounds the page
	changes, err = repo.ListAfter(ctx, 0, 2)
	require.NoError(t, err)
	require.Len(t, changes, 2)

	// A cursor past the end returns nothing
	changes, err = repo.ListAfter(ctx, created[2].Seq, 10)
	require.NoError(t, err)
	assert.Empty(t, changes)
}

func TestPostgreSQLChangeRepository_RoundTrip(t *testing.T) {
	testutil.SkipIfNoPostgres(t)
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLChangeRepository(db)
	ctx := context.Background()

	change := newTestChange(syncDomain.RecordTypeMessage, syncDomain.OpDelete)
	require.NoError(t, repo.Create(ctx, change))

	changes, err := repo.ListAfter(ctx, change.Seq-1, 1)
	require.NoError(t, err)
	require.Len(t, changes, 1)

	read := changes[0]
	assert.Equal(t, change.Seq, read.Seq)
	assert.Equal(t, change.RecordID, read.RecordID)
	assert.Equal(t, syncDomain.RecordTypeMessage, read.RecordType)
	assert.Equal(t, syncDomain.OpDelete, read.Op)
	assert.WithinDuration(t, change.CreatedAt, read.CreatedAt, time.Second)
}

func TestPostgreSQLChangeRepository_WithTransaction(t *testing.T) {
	testutil.SkipIfNoPostgres(t)
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLChangeRepository(db)
	ctx := context.Background()
	txManager := database.NewTxManager(db)

	// A failing transaction must roll the change row back
	err := txManager.WithTx(ctx, func(txCtx context.Context) error {
		if err := repo.Create(txCtx, newTestChange(syncDomain.RecordTypeEntry, syncDomain.OpUpsert)); err != nil {
			return err
		}
		return assert.AnError
	})
	require.Error(t, err)

	changes, err := repo.ListAfter(ctx, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, changes)
}
