// Package usecase defines the interfaces and implementations for journal entry
// management. Use cases seal entry payloads before they reach a repository and
// unseal them on the way out, so plaintext never crosses the persistence boundary.
package usecase

import (
	"context"

	"github.com/google/uuid"

	journalDomain "github.com/lifelog-app/lifelog/internal/journal/domain"
	syncDomain "github.com/lifelog-app/lifelog/internal/sync/domain"
)

// EntryRepository defines the interface for Entry persistence operations.
type EntryRepository interface {
	Create(ctx context.Context, entry *journalDomain.Entry) error
	Get(ctx context.Context, id uuid.UUID) (*journalDomain.Entry, error)
	List(ctx context.Context, offset, limit int) ([]*journalDomain.Entry, error)
	Update(ctx context.Context, entry *journalDomain.Entry) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ChangeRecorder appends change feed rows. Implementations must be safe to
// call inside a transaction context so the change row commits atomically
// with the record mutation it describes.
type ChangeRecorder interface {
	Create(ctx context.Context, change *syncDomain.Change) error
}

// EntryUseCase defines the interface for journal entry business logic.
type EntryUseCase interface {
	// Create seals the payload and persists a new entry.
	Create(ctx context.Context, entryDate string, payload *journalDomain.EntryPayload) (*journalDomain.Entry, error)
	// Get retrieves an entry and unseals its payload.
	//
	// Security Note: The returned Entry contains plaintext data in the Payload
	// field. It must never be logged or persisted.
	Get(ctx context.Context, id uuid.UUID) (*journalDomain.Entry, error)
	// List retrieves entries with unsealed payloads, newest entry date first.
	List(ctx context.Context, offset, limit int) ([]*journalDomain.Entry, error)
	// Update replaces the payload of an existing entry.
	Update(ctx context.Context, id uuid.UUID, payload *journalDomain.EntryPayload) (*journalDomain.Entry, error)
	// Delete soft deletes an entry.
	Delete(ctx context.Context, id uuid.UUID) error
}
