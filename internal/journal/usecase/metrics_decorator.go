package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	journalDomain "github.com/lifelog-app/lifelog/internal/journal/domain"
	"github.com/lifelog-app/lifelog/internal/metrics"
)

// entryUseCaseWithMetrics decorates EntryUseCase with metrics instrumentation.
type entryUseCaseWithMetrics struct {
	next    EntryUseCase
	metrics metrics.BusinessMetrics
}

// NewEntryUseCaseWithMetrics wraps an EntryUseCase with metrics recording.
func NewEntryUseCaseWithMetrics(useCase EntryUseCase, m metrics.BusinessMetrics) EntryUseCase {
	return &entryUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for entry creation operations.
func (e *entryUseCaseWithMetrics) Create(
	ctx context.Context,
	entryDate string,
	payload *journalDomain.EntryPayload,
) (*journalDomain.Entry, error) {
	start := time.Now()
	entry, err := e.next.Create(ctx, entryDate, payload)

	status := "success"
	if err != nil {
		status = "error"
	}

	e.metrics.RecordOperation(ctx, "journal", "entry_create", status)
	e.metrics.RecordDuration(ctx, "journal", "entry_create", time.Since(start), status)

	return entry, err
}

// Get records metrics for entry retrieval operations.
func (e *entryUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (*journalDomain.Entry, error) {
	start := time.Now()
	entry, err := e.next.Get(ctx, id)

	status := "success"
	if err != nil {
		status = "error"
	}

	e.metrics.RecordOperation(ctx, "journal", "entry_get", status)
	e.metrics.RecordDuration(ctx, "journal", "entry_get", time.Since(start), status)

	return entry, err
}

// List records metrics for entry list operations.
func (e *entryUseCaseWithMetrics) List(ctx context.Context, offset, limit int) ([]*journalDomain.Entry, error) {
	start := time.Now()
	entries, err := e.next.List(ctx, offset, limit)

	status := "success"
	if err != nil {
		status = "error"
	}

	e.metrics.RecordOperation(ctx, "journal", "entry_list", status)
	e.metrics.RecordDuration(ctx, "journal", "entry_list", time.Since(start), status)

	return entries, err
}

// Update records metrics for entry update operations.
func (e *entryUseCaseWithMetrics) Update(
	ctx context.Context,
	id uuid.UUID,
	payload *journalDomain.EntryPayload,
) (*journalDomain.Entry, error) {
	start := time.Now()
	entry, err := e.next.Update(ctx, id, payload)

	status := "success"
	if err != nil {
		status = "error"
	}

	e.metrics.RecordOperation(ctx, "journal", "entry_update", status)
	e.metrics.RecordDuration(ctx, "journal", "entry_update", time.Since(start), status)

	return entry, err
}

// Delete records metrics for entry deletion operations.
func (e *entryUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := e.next.Delete(ctx, id)

	status := "success"
	if err != nil {
		status = "error"
	}

	e.metrics.RecordOperation(ctx, "journal", "entry_delete", status)
	e.metrics.RecordDuration(ctx, "journal", "entry_delete", time.Since(start), status)

	return err
}
