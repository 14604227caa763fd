// Package usecase implements full-journal export as an encrypted backup blob.
package usecase

import (
	"context"

	chatDomain "github.com/lifelog-app/lifelog/internal/chat/domain"
	exportDomain "github.com/lifelog-app/lifelog/internal/export/domain"
	journalDomain "github.com/lifelog-app/lifelog/internal/journal/domain"
)

// EntryLister walks all stored journal entries with pagination.
type EntryLister interface {
	List(ctx context.Context, offset, limit int) ([]*journalDomain.Entry, error)
}

// MessageLister walks all stored chat messages with pagination.
type MessageLister interface {
	List(ctx context.Context, offset, limit int) ([]*chatDomain.Message, error)
}

// ExportUseCase defines the business logic for encrypted full-journal exports.
type ExportUseCase interface {
	// Export unseals every stored entry and message, assembles the export
	// document, and encrypts it into a single blob. Records that cannot be
	// read are skipped and counted, never included as plaintext gaps.
	Export(ctx context.Context) (*exportDomain.Export, error)
}
