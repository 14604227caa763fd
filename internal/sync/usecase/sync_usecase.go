package usecase

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	chatDomain "github.com/lifelog-app/lifelog/internal/chat/domain"
	cryptoDomain "github.com/lifelog-app/lifelog/internal/crypto/domain"
	cryptoService "github.com/lifelog-app/lifelog/internal/crypto/service"
	apperrors "github.com/lifelog-app/lifelog/internal/errors"
	journalDomain "github.com/lifelog-app/lifelog/internal/journal/domain"
	syncDomain "github.com/lifelog-app/lifelog/internal/sync/domain"
)

// syncUseCase implements the SyncUseCase interface.
type syncUseCase struct {
	changeRepo  ChangeRepository
	entryRepo   EntryReader
	messageRepo MessageReader
	sealer      cryptoService.Sealer
	logger      *slog.Logger
	maxBatch    int
	workers     int
}

// Pull returns the changes recorded after cursor, loading and unsealing the
// referenced records in parallel. Unseal calls are independent per record, so
// the batch fans out across a bounded worker group.
//
// A record that fails authentication or is gone by the time it is loaded does
// not fail the pull. The change is dropped from the response and the failure
// is logged with the record ID only, never with payload material. The device
// advances its cursor past the bad row and the operator investigates
// out-of-band.
func (s *syncUseCase) Pull(ctx context.Context, cursor int64, limit int) (*syncDomain.PullResult, error) {
	if cursor < 0 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "cursor must be non-negative")
	}
	if limit < 1 || limit > s.maxBatch {
		limit = s.maxBatch
	}

	changes, err := s.changeRepo.ListAfter(ctx, cursor, limit)
	if err != nil {
		return nil, err
	}

	items := make([]*syncDomain.Item, len(changes))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.workers)

	for i, change := range changes {
		group.Go(func() error {
			item, err := s.loadItem(groupCtx, change)
			if err != nil {
				if s.isSkippable(err) {
					s.logger.Warn("skipping unreadable record during sync pull",
						slog.Int64("seq", change.Seq),
						slog.String("record_id", change.RecordID.String()),
						slog.String("record_type", string(change.RecordType)),
					)
					return nil
				}
				return err
			}
			items[i] = item
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	result := &syncDomain.PullResult{
		NextCursor: cursor,
		HasMore:    len(changes) == limit,
	}
	if len(changes) > 0 {
		result.NextCursor = changes[len(changes)-1].Seq
	}
	for _, item := range items {
		if item != nil {
			result.Items = append(result.Items, item)
		}
	}

	return result, nil
}

// loadItem resolves a change row into a pull item, unsealing the record
// payload for upserts. Deletes carry no record content.
func (s *syncUseCase) loadItem(ctx context.Context, change *syncDomain.Change) (*syncDomain.Item, error) {
	item := &syncDomain.Item{Change: change}

	if change.Op == syncDomain.OpDelete {
		return item, nil
	}

	switch change.RecordType {
	case syncDomain.RecordTypeEntry:
		entry, err := s.entryRepo.Get(ctx, change.RecordID)
		if err != nil {
			return nil, err
		}
		var payload journalDomain.EntryPayload
		if err := s.unseal(entry.Sealed, &payload); err != nil {
			return nil, err
		}
		entry.Payload = &payload
		item.Entry = entry

	case syncDomain.RecordTypeMessage:
		message, err := s.messageRepo.Get(ctx, change.RecordID)
		if err != nil {
			return nil, err
		}
		var payload chatDomain.MessagePayload
		if err := s.unseal(message.Sealed, &payload); err != nil {
			return nil, err
		}
		message.Payload = &payload
		item.Message = message

	default:
		return nil, apperrors.New("unknown record type in change feed")
	}

	return item, nil
}

// unseal parses a stored envelope and decrypts it into out.
func (s *syncUseCase) unseal(sealed string, out any) error {
	envelope, err := cryptoDomain.ParseSealedEnvelope([]byte(sealed))
	if err != nil {
		return err
	}
	return s.sealer.Unseal(envelope, out)
}

// isSkippable reports whether a record failure should drop the item from the
// batch instead of failing the pull. Missing records happen when an upsert is
// followed by a hard cleanup; unreadable records indicate corruption that one
// failing row must not propagate to the whole feed.
func (s *syncUseCase) isSkippable(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, cryptoDomain.ErrAuthenticationFailed) ||
		errors.Is(err, cryptoDomain.ErrInvalidEnvelope) ||
		errors.Is(err, cryptoDomain.ErrDeserializationFailed)
}

// NewSyncUseCase creates a new sync use case instance with the provided dependencies.
func NewSyncUseCase(
	changeRepo ChangeRepository,
	entryRepo EntryReader,
	messageRepo MessageReader,
	sealer cryptoService.Sealer,
	logger *slog.Logger,
	maxBatch int,
	workers int,
) SyncUseCase {
	if maxBatch < 1 {
		maxBatch = 200
	}
	if workers < 1 {
		workers = 4
	}
	return &syncUseCase{
		changeRepo:  changeRepo,
		entryRepo:   entryRepo,
		messageRepo: messageRepo,
		sealer:      sealer,
		logger:      logger,
		maxBatch:    maxBatch,
		workers:     workers,
	}
}
