package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/lifelog-app/lifelog/internal/auth/domain"
	"github.com/lifelog-app/lifelog/internal/testutil"
)

// hashedSecretFixture stands in for an Argon2id hash. The repository treats
// the secret as an opaque string.
const hashedSecretFixture = "$argon2id$v=19$m=65536,t=1,p=2$c29tZXNhbHQ$aGFzaGVkc2VjcmV0"

func newTestDevice(name string, createdAt time.Time) *authDomain.Device {
	return &authDomain.Device{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      name,
		Secret:    hashedSecretFixture,
		IsActive:  true,
		CreatedAt: createdAt,
	}
}

func TestPostgreSQLDeviceRepository_CreateAndGet(t *testing.T) {
	testutil.SkipIfNoPostgres(t)
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLDeviceRepository(db)
	ctx := context.Background()

	device := newTestDevice("pixel-9", time.Now().UTC())
	require.NoError(t, repo.Create(ctx, device))

	read, err := repo.Get(ctx, device.ID)
	require.NoError(t, err)

	assert.Equal(t, device.ID, read.ID)
	assert.Equal(t, device.Name, read.Name)
	assert.Equal(t, device.Secret, read.Secret)
	assert.True(t, read.IsActive)
	assert.WithinDuration(t, device.CreatedAt, read.CreatedAt, time.Second)
	assert.Nil(t, read.LastSeenAt, "a new device has never authenticated")
}

func TestPostgreSQLDeviceRepository_Get_NotFound(t *testing.T) {
	testutil.SkipIfNoPostgres(t)
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLDeviceRepository(db)

	device, err := repo.Get(context.Background(), uuid.Must(uuid.NewV7()))
	assert.Nil(t, device)
	assert.ErrorIs(t, err, authDomain.ErrDeviceNotFound)
}

func TestPostgreSQLDeviceRepository_Update(t *testing.T) {
	testutil.SkipIfNoPostgres(t)
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLDeviceRepository(db)
	ctx := context.Background()

	device := newTestDevice("pixel-9", time.Now().UTC())
	require.NoError(t, repo.Create(ctx, device))

	device.Name = "pixel-9-renamed"
	device.IsActive = false
	require.NoError(t, repo.Update(ctx, device))

	read, err := repo.Get(ctx, device.ID)
	require.NoError(t, err)
	assert.Equal(t, "pixel-9-renamed", read.Name)
	assert.False(t, read.IsActive)
}

func TestPostgreSQLDeviceRepository_Update_NotFound(t *testing.T) {
	testutil.SkipIfNoPostgres(t)
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLDeviceRepository(db)

	device := newTestDevice("ghost", time.Now().UTC())
	err := repo.Update(context.Background(), device)
	assert.ErrorIs(t, err, authDomain.ErrDeviceNotFound)
}

func TestPostgreSQLDeviceRepository_UpdateLastSeen(t *testing.T) {
	testutil.SkipIfNoPostgres(t)
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLDeviceRepository(db)
	ctx := context.Background()

	device := newTestDevice("pixel-9", time.Now().UTC())
	require.NoError(t, repo.Create(ctx, device))

	seenAt := time.Now().UTC()
	require.NoError(t, repo.UpdateLastSeen(ctx, device.ID, seenAt))

	read, err := repo.Get(ctx, device.ID)
	require.NoError(t, err)
	require.NotNil(t, read.LastSeenAt)
	assert.WithinDuration(t, seenAt, *read.LastSeenAt, time.Second)
}

func TestPostgreSQLDeviceRepository_List(t *testing.T) {
	testutil.SkipIfNoPostgres(t)
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLDeviceRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		device := newTestDevice("device", base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, repo.Create(ctx, device))
		ids = append(ids, device.ID)
	}

	devices, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, devices, 3)

	// Newest registration first
	assert.Equal(t, ids[2], devices[0].ID)
	assert.Equal(t, ids[0], devices[2].ID)

	page, err := repo.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, ids[1], page[0].ID)
}
