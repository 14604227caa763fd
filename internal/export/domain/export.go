// Package domain defines the encrypted export document a device downloads as
// a full backup of its journal.
package domain

import (
	"time"

	"github.com/google/uuid"

	chatDomain "github.com/lifelog-app/lifelog/internal/chat/domain"
	journalDomain "github.com/lifelog-app/lifelog/internal/journal/domain"
)

// DocumentVersion identifies the export document layout. Bump when the JSON
// structure changes so importers can dispatch on it.
const DocumentVersion = 1

// AAD is bound to the export ciphertext as associated data, so a blob cannot
// be replayed as a different artifact kind or version.
var AAD = []byte("lifelog-export-v1")

// EntryRecord is one decrypted journal entry inside an export document.
type EntryRecord struct {
	ID        uuid.UUID                   `json:"id"`
	EntryDate string                      `json:"entry_date"`
	Payload   *journalDomain.EntryPayload `json:"payload"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
}

// MessageRecord is one decrypted chat message inside an export document.
type MessageRecord struct {
	ID             uuid.UUID                  `json:"id"`
	ConversationID uuid.UUID                  `json:"conversation_id"`
	Payload        *chatDomain.MessagePayload `json:"payload"`
	CreatedAt      time.Time                  `json:"created_at"`
}

// Document is the plaintext form of an export. It exists in memory only,
// between unsealing the stored records and encrypting the blob.
type Document struct {
	Version    int             `json:"version"`
	ExportedAt time.Time       `json:"exported_at"`
	Entries    []EntryRecord   `json:"entries"`
	Messages   []MessageRecord `json:"messages"`
	// Skipped counts records that could not be read (missing or failing
	// authentication) and were left out of the document.
	Skipped int `json:"skipped,omitempty"`
}

// Export is the encrypted backup artifact served to a device.
// Blob layout: 24-byte XChaCha20-Poly1305 nonce followed by the ciphertext
// (authentication tag appended).
type Export struct {
	Blob       []byte
	ExportedAt time.Time
}
