package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/lifelog-app/lifelog/internal/crypto/domain"
	cryptoService "github.com/lifelog-app/lifelog/internal/crypto/service"
	"github.com/lifelog-app/lifelog/internal/database"
	apperrors "github.com/lifelog-app/lifelog/internal/errors"
	journalDomain "github.com/lifelog-app/lifelog/internal/journal/domain"
	syncDomain "github.com/lifelog-app/lifelog/internal/sync/domain"
)

// entryDateLayout is the wire format for entry dates.
const entryDateLayout = "2006-01-02"

// entryUseCase implements the EntryUseCase interface for managing journal entries.
type entryUseCase struct {
	txManager database.TxManager
	entryRepo EntryRepository
	changes   ChangeRecorder
	sealer    cryptoService.Sealer
}

// Create seals the payload and persists a new entry, appending an upsert
// change row in the same transaction.
func (e *entryUseCase) Create(
	ctx context.Context,
	entryDate string,
	payload *journalDomain.EntryPayload,
) (*journalDomain.Entry, error) {
	date, err := parseEntryDate(entryDate)
	if err != nil {
		return nil, err
	}

	sealed, err := sealToString(e.sealer, payload)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := &journalDomain.Entry{
		ID:        uuid.Must(uuid.NewV7()),
		EntryDate: date,
		Sealed:    sealed,
		Payload:   payload,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = e.txManager.WithTx(ctx, func(txCtx context.Context) error {
		if err := e.entryRepo.Create(txCtx, entry); err != nil {
			return err
		}
		return e.changes.Create(txCtx, syncDomain.NewChange(entry.ID, syncDomain.RecordTypeEntry, syncDomain.OpUpsert))
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// Get retrieves an entry and unseals its payload.
func (e *entryUseCase) Get(ctx context.Context, id uuid.UUID) (*journalDomain.Entry, error) {
	entry, err := e.entryRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := e.unsealEntry(entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// List retrieves entries with unsealed payloads, newest entry date first.
func (e *entryUseCase) List(ctx context.Context, offset, limit int) ([]*journalDomain.Entry, error) {
	entries, err := e.entryRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if err := e.unsealEntry(entry); err != nil {
			return nil, err
		}
	}

	return entries, nil
}

// Update seals the new payload, replaces the stored envelope and appends an
// upsert change row in the same transaction.
func (e *entryUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	payload *journalDomain.EntryPayload,
) (*journalDomain.Entry, error) {
	entry, err := e.entryRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	sealed, err := sealToString(e.sealer, payload)
	if err != nil {
		return nil, err
	}

	entry.Sealed = sealed
	entry.Payload = payload
	entry.UpdatedAt = time.Now().UTC()

	err = e.txManager.WithTx(ctx, func(txCtx context.Context) error {
		if err := e.entryRepo.Update(txCtx, entry); err != nil {
			return err
		}
		return e.changes.Create(txCtx, syncDomain.NewChange(entry.ID, syncDomain.RecordTypeEntry, syncDomain.OpUpsert))
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// Delete soft deletes an entry and appends a delete change row in the same transaction.
func (e *entryUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return e.txManager.WithTx(ctx, func(txCtx context.Context) error {
		if err := e.entryRepo.Delete(txCtx, id); err != nil {
			return err
		}
		return e.changes.Create(txCtx, syncDomain.NewChange(id, syncDomain.RecordTypeEntry, syncDomain.OpDelete))
	})
}

// unsealEntry decrypts the stored envelope into the entry's Payload field.
func (e *entryUseCase) unsealEntry(entry *journalDomain.Entry) error {
	envelope, err := cryptoDomain.ParseSealedEnvelope([]byte(entry.Sealed))
	if err != nil {
		return err
	}

	var payload journalDomain.EntryPayload
	if err := e.sealer.Unseal(envelope, &payload); err != nil {
		return err
	}
	entry.Payload = &payload
	return nil
}

// sealToString seals a value and renders the envelope as the JSON string
// stored in the database payload column.
func sealToString(sealer cryptoService.Sealer, value any) (string, error) {
	envelope, err := sealer.Seal(value)
	if err != nil {
		return "", err
	}

	data, err := envelope.Marshal()
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// parseEntryDate parses an entry date in YYYY-MM-DD format.
func parseEntryDate(entryDate string) (time.Time, error) {
	date, err := time.Parse(entryDateLayout, entryDate)
	if err != nil {
		return time.Time{}, apperrors.Wrap(apperrors.ErrInvalidInput, "entry date must be in YYYY-MM-DD format")
	}
	return date.UTC(), nil
}

// NewEntryUseCase creates a new entry use case instance with the provided dependencies.
func NewEntryUseCase(
	txManager database.TxManager,
	entryRepo EntryRepository,
	changes ChangeRecorder,
	sealer cryptoService.Sealer,
) EntryUseCase {
	return &entryUseCase{
		txManager: txManager,
		entryRepo: entryRepo,
		changes:   changes,
		sealer:    sealer,
	}
}
