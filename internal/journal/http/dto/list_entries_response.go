package dto

import (
	journalDomain "github.com/lifelog-app/lifelog/internal/journal/domain"
)

// ListEntriesResponse represents a paginated list of journal entries.
type ListEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
	Offset  int             `json:"offset"`
	Limit   int             `json:"limit"`
}

// MapEntriesToListResponse converts domain entries to a paginated API response.
func MapEntriesToListResponse(entries []*journalDomain.Entry, offset, limit int) ListEntriesResponse {
	response := ListEntriesResponse{
		Entries: make([]EntryResponse, 0, len(entries)),
		Offset:  offset,
		Limit:   limit,
	}

	for _, entry := range entries {
		response.Entries = append(response.Entries, MapEntryToResponse(entry))
	}

	return response
}
