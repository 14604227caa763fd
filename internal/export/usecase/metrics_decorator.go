package usecase

import (
	"context"
	"time"

	exportDomain "github.com/lifelog-app/lifelog/internal/export/domain"
	"github.com/lifelog-app/lifelog/internal/metrics"
)

// exportUseCaseWithMetrics decorates ExportUseCase with metrics instrumentation.
type exportUseCaseWithMetrics struct {
	next    ExportUseCase
	metrics metrics.BusinessMetrics
}

// NewExportUseCaseWithMetrics wraps an ExportUseCase with metrics recording.
func NewExportUseCaseWithMetrics(useCase ExportUseCase, m metrics.BusinessMetrics) ExportUseCase {
	return &exportUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Export records metrics for export operations.
func (e *exportUseCaseWithMetrics) Export(ctx context.Context) (*exportDomain.Export, error) {
	start := time.Now()
	export, err := e.next.Export(ctx)

	status := "success"
	if err != nil {
		status = "error"
	}

	e.metrics.RecordOperation(ctx, "export", "export", status)
	e.metrics.RecordDuration(ctx, "export", "export", time.Since(start), status)

	return export, err
}
