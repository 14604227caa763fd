package usecase

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	chatDomain "github.com/lifelog-app/lifelog/internal/chat/domain"
	cryptoDomain "github.com/lifelog-app/lifelog/internal/crypto/domain"
	cryptoService "github.com/lifelog-app/lifelog/internal/crypto/service"
	apperrors "github.com/lifelog-app/lifelog/internal/errors"
	exportDomain "github.com/lifelog-app/lifelog/internal/export/domain"
	journalDomain "github.com/lifelog-app/lifelog/internal/journal/domain"
	"github.com/lifelog-app/lifelog/internal/export/usecase/mocks"
)

// newTestSealer builds a real sealer with a fixed test key so tests exercise
// the actual seal/unseal round trip instead of mocking the crypto boundary.
func newTestSealer(t *testing.T) cryptoService.Sealer {
	t.Helper()

	masterKey, err := cryptoDomain.NewMasterKey(make([]byte, cryptoDomain.MasterKeySize))
	require.NoError(t, err)

	sealer, err := cryptoService.NewSealer(masterKey)
	require.NoError(t, err)

	return sealer
}

func newTestCipher(t *testing.T) *cryptoService.XChaCha20Poly1305Cipher {
	t.Helper()

	cipher, err := cryptoService.NewXChaCha20Poly1305(make([]byte, 32))
	require.NoError(t, err)
	return cipher
}

// sealToString seals a value and returns the stored envelope form.
func sealToString(t *testing.T, sealer cryptoService.Sealer, value any) string {
	t.Helper()

	envelope, err := sealer.Seal(value)
	require.NoError(t, err)
	data, err := envelope.Marshal()
	require.NoError(t, err)
	return string(data)
}

func TestExportUseCase_Export(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Success", func(t *testing.T) {
		sealer := newTestSealer(t)
		cipher := newTestCipher(t)
		mockEntries := &mocks.MockEntryLister{}
		mockMessages := &mocks.MockMessageLister{}
		useCase := NewExportUseCase(mockEntries, mockMessages, sealer, cipher, logger)

		entry := &journalDomain.Entry{
			ID:        uuid.Must(uuid.NewV7()),
			EntryDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			Sealed:    sealToString(t, sealer, &journalDomain.EntryPayload{Text: "exported text", Mood: "calm"}),
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		}
		message := &chatDomain.Message{
			ID:             uuid.Must(uuid.NewV7()),
			ConversationID: uuid.Must(uuid.NewV7()),
			Sealed:         sealToString(t, sealer, &chatDomain.MessagePayload{Role: chatDomain.RoleUser, Content: "hello"}),
			CreatedAt:      time.Now().UTC(),
		}

		mockEntries.On("List", ctx, 0, pageSize).Return([]*journalDomain.Entry{entry}, nil).Once()
		mockMessages.On("List", ctx, 0, pageSize).Return([]*chatDomain.Message{message}, nil).Once()

		export, err := useCase.Export(ctx)
		require.NoError(t, err)
		require.Greater(t, len(export.Blob), 24)

		// Decrypt the blob the way an importer would: 24-byte nonce prefix,
		// then ciphertext bound to the export AAD.
		plaintext, err := cipher.Decrypt(export.Blob[24:], export.Blob[:24], exportDomain.AAD)
		require.NoError(t, err)

		var document exportDomain.Document
		require.NoError(t, json.Unmarshal(plaintext, &document))
		assert.Equal(t, exportDomain.DocumentVersion, document.Version)
		require.Len(t, document.Entries, 1)
		require.Len(t, document.Messages, 1)
		assert.Equal(t, "exported text", document.Entries[0].Payload.Text)
		assert.Equal(t, "2025-06-15", document.Entries[0].EntryDate)
		assert.Equal(t, "hello", document.Messages[0].Payload.Content)
		assert.Zero(t, document.Skipped)
	})

	t.Run("Success_WrongAADFailsDecrypt", func(t *testing.T) {
		sealer := newTestSealer(t)
		cipher := newTestCipher(t)
		mockEntries := &mocks.MockEntryLister{}
		mockMessages := &mocks.MockMessageLister{}
		useCase := NewExportUseCase(mockEntries, mockMessages, sealer, cipher, logger)

		mockEntries.On("List", ctx, 0, pageSize).Return([]*journalDomain.Entry{}, nil).Once()
		mockMessages.On("List", ctx, 0, pageSize).Return([]*chatDomain.Message{}, nil).Once()

		export, err := useCase.Export(ctx)
		require.NoError(t, err)

		_, err = cipher.Decrypt(export.Blob[24:], export.Blob[:24], []byte("other-artifact"))
		assert.Error(t, err)
	})

	t.Run("Success_SkipsUnreadableRecord", func(t *testing.T) {
		sealer := newTestSealer(t)
		cipher := newTestCipher(t)
		mockEntries := &mocks.MockEntryLister{}
		mockMessages := &mocks.MockMessageLister{}
		useCase := NewExportUseCase(mockEntries, mockMessages, sealer, cipher, logger)

		good := &journalDomain.Entry{
			ID:        uuid.Must(uuid.NewV7()),
			EntryDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			Sealed:    sealToString(t, sealer, &journalDomain.EntryPayload{Text: "readable"}),
		}
		corrupt := &journalDomain.Entry{
			ID:        uuid.Must(uuid.NewV7()),
			EntryDate: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
			Sealed:    `{"encryptedData":"00","iv":"000000000000000000000000000000ff","authTag":"00000000000000000000000000000000"}`,
		}

		mockEntries.On("List", ctx, 0, pageSize).Return([]*journalDomain.Entry{good, corrupt}, nil).Once()
		mockMessages.On("List", ctx, 0, pageSize).Return([]*chatDomain.Message{}, nil).Once()

		export, err := useCase.Export(ctx)
		require.NoError(t, err)

		plaintext, err := cipher.Decrypt(export.Blob[24:], export.Blob[:24], exportDomain.AAD)
		require.NoError(t, err)

		var document exportDomain.Document
		require.NoError(t, json.Unmarshal(plaintext, &document))
		require.Len(t, document.Entries, 1)
		assert.Equal(t, "readable", document.Entries[0].Payload.Text)
		assert.Equal(t, 1, document.Skipped)
	})

	t.Run("Error_RepositoryFailure", func(t *testing.T) {
		sealer := newTestSealer(t)
		cipher := newTestCipher(t)
		mockEntries := &mocks.MockEntryLister{}
		mockMessages := &mocks.MockMessageLister{}
		useCase := NewExportUseCase(mockEntries, mockMessages, sealer, cipher, logger)

		mockEntries.On("List", ctx, 0, pageSize).
			Return(nil, apperrors.New("database error")).
			Once()

		export, err := useCase.Export(ctx)
		require.Error(t, err)
		assert.Nil(t, export)
		mockMessages.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
	})
}
