// Package domain defines the chat message domain models. Message content is
// sealed before persistence, same as journal entries.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/lifelog-app/lifelog/internal/errors"
)

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// MessagePayload is the plaintext content of a chat message, in memory only.
type MessagePayload struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Message represents a chat message with its sealed payload.
type Message struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	// Sealed is the stored envelope JSON ({encryptedData, iv, authTag}).
	Sealed string
	// Payload holds the decrypted content in memory only; never persisted or logged.
	Payload   *MessagePayload `json:"-"`
	CreatedAt time.Time
}

var (
	// ErrMessageNotFound indicates the requested message does not exist.
	ErrMessageNotFound = errors.Wrap(errors.ErrNotFound, "message not found")
)
