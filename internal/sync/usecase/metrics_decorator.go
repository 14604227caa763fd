package usecase

import (
	"context"
	"time"

	"github.com/lifelog-app/lifelog/internal/metrics"
	syncDomain "github.com/lifelog-app/lifelog/internal/sync/domain"
)

// syncUseCaseWithMetrics decorates SyncUseCase with metrics instrumentation.
type syncUseCaseWithMetrics struct {
	next    SyncUseCase
	metrics metrics.BusinessMetrics
}

// NewSyncUseCaseWithMetrics wraps a SyncUseCase with metrics recording.
func NewSyncUseCaseWithMetrics(useCase SyncUseCase, m metrics.BusinessMetrics) SyncUseCase {
	return &syncUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Pull records metrics for sync pull operations.
func (s *syncUseCaseWithMetrics) Pull(ctx context.Context, cursor int64, limit int) (*syncDomain.PullResult, error) {
	start := time.Now()
	result, err := s.next.Pull(ctx, cursor, limit)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "sync", "pull", status)
	s.metrics.RecordDuration(ctx, "sync", "pull", time.Since(start), status)

	return result, err
}
