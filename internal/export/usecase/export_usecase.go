package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	chatDomain "github.com/lifelog-app/lifelog/internal/chat/domain"
	cryptoDomain "github.com/lifelog-app/lifelog/internal/crypto/domain"
	cryptoService "github.com/lifelog-app/lifelog/internal/crypto/service"
	apperrors "github.com/lifelog-app/lifelog/internal/errors"
	exportDomain "github.com/lifelog-app/lifelog/internal/export/domain"
	journalDomain "github.com/lifelog-app/lifelog/internal/journal/domain"
)

// pageSize is the number of records fetched per repository round trip while
// walking the full history.
const pageSize = 500

// exportUseCase implements the ExportUseCase interface.
type exportUseCase struct {
	entryRepo   EntryLister
	messageRepo MessageLister
	sealer      cryptoService.Sealer
	cipher      cryptoService.AEAD
	logger      *slog.Logger
}

// Export walks all entries and messages, unseals each payload, and encrypts
// the assembled document with XChaCha20-Poly1305. The extended nonce makes a
// fresh random nonce per export safe without any bookkeeping.
//
// A record that fails to unseal is dropped and counted in Document.Skipped;
// one corrupt row must not make the whole backup unobtainable. The failure is
// logged with the record ID only, never with payload material.
func (e *exportUseCase) Export(ctx context.Context) (*exportDomain.Export, error) {
	document := &exportDomain.Document{
		Version:    exportDomain.DocumentVersion,
		ExportedAt: time.Now().UTC(),
		Entries:    []exportDomain.EntryRecord{},
		Messages:   []exportDomain.MessageRecord{},
	}

	if err := e.collectEntries(ctx, document); err != nil {
		return nil, err
	}
	if err := e.collectMessages(ctx, document); err != nil {
		return nil, err
	}

	plaintext, err := json.Marshal(document)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to serialize export document")
	}

	ciphertext, nonce, err := e.cipher.Encrypt(plaintext, exportDomain.AAD)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to encrypt export document")
	}

	blob := make([]byte, 0, len(nonce)+len(ciphertext))
	blob = append(blob, nonce...)
	blob = append(blob, ciphertext...)

	return &exportDomain.Export{
		Blob:       blob,
		ExportedAt: document.ExportedAt,
	}, nil
}

// collectEntries pages through all journal entries and appends the readable
// ones to the document.
func (e *exportUseCase) collectEntries(ctx context.Context, document *exportDomain.Document) error {
	for offset := 0; ; offset += pageSize {
		entries, err := e.entryRepo.List(ctx, offset, pageSize)
		if err != nil {
			return err
		}

		for _, entry := range entries {
			var payload journalDomain.EntryPayload
			if err := e.unseal(entry.Sealed, &payload); err != nil {
				if !e.isSkippable(err) {
					return err
				}
				e.logger.Warn("skipping unreadable entry during export",
					slog.String("entry_id", entry.ID.String()))
				document.Skipped++
				continue
			}

			document.Entries = append(document.Entries, exportDomain.EntryRecord{
				ID:        entry.ID,
				EntryDate: entry.EntryDate.Format("2006-01-02"),
				Payload:   &payload,
				CreatedAt: entry.CreatedAt,
				UpdatedAt: entry.UpdatedAt,
			})
		}

		if len(entries) < pageSize {
			return nil
		}
	}
}

// collectMessages pages through all chat messages and appends the readable
// ones to the document.
func (e *exportUseCase) collectMessages(ctx context.Context, document *exportDomain.Document) error {
	for offset := 0; ; offset += pageSize {
		messages, err := e.messageRepo.List(ctx, offset, pageSize)
		if err != nil {
			return err
		}

		for _, message := range messages {
			var payload chatDomain.MessagePayload
			if err := e.unseal(message.Sealed, &payload); err != nil {
				if !e.isSkippable(err) {
					return err
				}
				e.logger.Warn("skipping unreadable message during export",
					slog.String("message_id", message.ID.String()))
				document.Skipped++
				continue
			}

			document.Messages = append(document.Messages, exportDomain.MessageRecord{
				ID:             message.ID,
				ConversationID: message.ConversationID,
				Payload:        &payload,
				CreatedAt:      message.CreatedAt,
			})
		}

		if len(messages) < pageSize {
			return nil
		}
	}
}

// unseal parses a stored envelope and decrypts it into out.
func (e *exportUseCase) unseal(sealed string, out any) error {
	envelope, err := cryptoDomain.ParseSealedEnvelope([]byte(sealed))
	if err != nil {
		return err
	}
	return e.sealer.Unseal(envelope, out)
}

// isSkippable reports whether a record failure should drop the record from
// the export instead of failing it.
func (e *exportUseCase) isSkippable(err error) bool {
	return errors.Is(err, cryptoDomain.ErrAuthenticationFailed) ||
		errors.Is(err, cryptoDomain.ErrInvalidEnvelope) ||
		errors.Is(err, cryptoDomain.ErrDeserializationFailed)
}

// NewExportUseCase creates a new export use case instance with the provided dependencies.
func NewExportUseCase(
	entryRepo EntryLister,
	messageRepo MessageLister,
	sealer cryptoService.Sealer,
	cipher cryptoService.AEAD,
	logger *slog.Logger,
) ExportUseCase {
	return &exportUseCase{
		entryRepo:   entryRepo,
		messageRepo: messageRepo,
		sealer:      sealer,
		cipher:      cipher,
		logger:      logger,
	}
}
