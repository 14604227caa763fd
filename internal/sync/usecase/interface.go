// Package usecase implements the device sync pull operation. A device sends
// its last seen cursor and receives the changes recorded since, with record
// payloads unsealed server-side.
package usecase

import (
	"context"

	"github.com/google/uuid"

	chatDomain "github.com/lifelog-app/lifelog/internal/chat/domain"
	journalDomain "github.com/lifelog-app/lifelog/internal/journal/domain"
	syncDomain "github.com/lifelog-app/lifelog/internal/sync/domain"
)

// ChangeRepository defines the interface for change feed persistence operations.
type ChangeRepository interface {
	Create(ctx context.Context, change *syncDomain.Change) error
	ListAfter(ctx context.Context, cursor int64, limit int) ([]*syncDomain.Change, error)
}

// EntryReader loads journal entries referenced by change rows.
type EntryReader interface {
	Get(ctx context.Context, id uuid.UUID) (*journalDomain.Entry, error)
}

// MessageReader loads chat messages referenced by change rows.
type MessageReader interface {
	Get(ctx context.Context, id uuid.UUID) (*chatDomain.Message, error)
}

// SyncUseCase defines the interface for device sync business logic.
type SyncUseCase interface {
	// Pull returns the changes recorded after cursor, at most limit of them.
	// Records that cannot be decrypted are skipped and logged rather than
	// failing the whole batch.
	Pull(ctx context.Context, cursor int64, limit int) (*syncDomain.PullResult, error)
}
