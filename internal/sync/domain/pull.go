package domain

import (
	chatDomain "github.com/lifelog-app/lifelog/internal/chat/domain"
	journalDomain "github.com/lifelog-app/lifelog/internal/journal/domain"
)

// Item is one element of a pull response: the change row plus the current
// record content for upserts. Exactly one of Entry or Message is set for an
// upsert; both are nil for deletes.
type Item struct {
	Change  *Change
	Entry   *journalDomain.Entry
	Message *chatDomain.Message
}

// PullResult is the outcome of a sync pull.
type PullResult struct {
	Items []*Item
	// NextCursor is the cursor the device should present on its next pull.
	NextCursor int64
	// HasMore reports whether more changes are available past NextCursor.
	HasMore bool
}
