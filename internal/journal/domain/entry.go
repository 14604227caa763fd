// Package domain defines the core domain models for journal entries.
// Entry payloads are sealed into an encrypted envelope before persistence;
// only the envelope JSON ever reaches the database.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntryPayload is the plaintext content of a journal entry. It exists in
// memory only, between unsealing a stored envelope and serving a response
// (or between receiving a request and sealing it).
type EntryPayload struct {
	// Text is the free-form journal text.
	Text string `json:"text"`
	// Mood is an optional mood label (e.g., "calm", "anxious").
	Mood string `json:"mood,omitempty"`
	// Tags are optional free-form labels.
	Tags []string `json:"tags,omitempty"`
	// Location is an optional human-readable place name.
	Location string `json:"location,omitempty"`
}

// Entry represents a journal entry with its sealed payload and metadata.
type Entry struct {
	// ID is the unique identifier for this entry.
	ID uuid.UUID
	// EntryDate is the calendar day the entry belongs to (UTC midnight).
	EntryDate time.Time
	// Sealed is the stored envelope JSON ({encryptedData, iv, authTag}).
	Sealed string
	// Payload holds the decrypted content in memory only; never persisted or logged.
	Payload *EntryPayload `json:"-"`
	// CreatedAt is the UTC timestamp when this entry was created.
	CreatedAt time.Time
	// UpdatedAt is the UTC timestamp of the last payload update.
	UpdatedAt time.Time
	// DeletedAt marks when this entry was soft-deleted (nil if active).
	DeletedAt *time.Time
}
