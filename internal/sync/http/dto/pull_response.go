// Package dto provides data transfer objects for sync HTTP handling.
package dto

import (
	"time"

	chatDTO "github.com/lifelog-app/lifelog/internal/chat/http/dto"
	journalDTO "github.com/lifelog-app/lifelog/internal/journal/http/dto"
	syncDomain "github.com/lifelog-app/lifelog/internal/sync/domain"
)

// ChangeItem represents one change in a sync pull response. Entry or Message
// is present for upserts and absent for deletes.
type ChangeItem struct {
	Seq        int64                      `json:"seq"`
	RecordID   string                     `json:"record_id"`
	RecordType string                     `json:"record_type"`
	Op         string                     `json:"op"`
	CreatedAt  time.Time                  `json:"created_at"`
	Entry      *journalDTO.EntryResponse  `json:"entry,omitempty"`
	Message    *chatDTO.MessageResponse   `json:"message,omitempty"`
}

// PullResponse represents the result of a sync pull.
type PullResponse struct {
	Changes    []ChangeItem `json:"changes"`
	NextCursor int64        `json:"next_cursor"`
	HasMore    bool         `json:"has_more"`
}

// MapPullResultToResponse converts a pull result to an API response.
func MapPullResultToResponse(result *syncDomain.PullResult) PullResponse {
	response := PullResponse{
		Changes:    make([]ChangeItem, 0, len(result.Items)),
		NextCursor: result.NextCursor,
		HasMore:    result.HasMore,
	}

	for _, item := range result.Items {
		change := ChangeItem{
			Seq:        item.Change.Seq,
			RecordID:   item.Change.RecordID.String(),
			RecordType: string(item.Change.RecordType),
			Op:         string(item.Change.Op),
			CreatedAt:  item.Change.CreatedAt,
		}

		if item.Entry != nil {
			entry := journalDTO.MapEntryToResponse(item.Entry)
			change.Entry = &entry
		}
		if item.Message != nil {
			message := chatDTO.MapMessageToResponse(item.Message)
			change.Message = &message
		}

		response.Changes = append(response.Changes, change)
	}

	return response
}
