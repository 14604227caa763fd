package dto

import (
	"time"

	journalDomain "github.com/lifelog-app/lifelog/internal/journal/domain"
)

// EntryResponse represents a journal entry in API responses.
// The payload fields carry decrypted content and must only travel over HTTPS.
type EntryResponse struct {
	ID        string    `json:"id"`
	EntryDate string    `json:"entry_date"`
	Text      string    `json:"text"`
	Mood      string    `json:"mood,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MapEntryToResponse converts a domain entry with an unsealed payload to an API response.
func MapEntryToResponse(entry *journalDomain.Entry) EntryResponse {
	response := EntryResponse{
		ID:        entry.ID.String(),
		EntryDate: entry.EntryDate.Format("2006-01-02"),
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}

	if entry.Payload != nil {
		response.Text = entry.Payload.Text
		response.Mood = entry.Payload.Mood
		response.Tags = entry.Payload.Tags
		response.Location = entry.Payload.Location
	}

	return response
}
