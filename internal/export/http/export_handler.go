// Package http provides the HTTP handler for encrypted full-journal exports.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	exportUseCase "github.com/lifelog-app/lifelog/internal/export/usecase"
	"github.com/lifelog-app/lifelog/internal/httputil"
)

// ExportHandler handles HTTP requests for encrypted backup downloads.
type ExportHandler struct {
	exportUseCase exportUseCase.ExportUseCase
	logger        *slog.Logger
}

// NewExportHandler creates a new export handler with required dependencies.
func NewExportHandler(useCase exportUseCase.ExportUseCase, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		exportUseCase: useCase,
		logger:        logger,
	}
}

// ExportHandler streams the encrypted export blob.
// GET /v1/export
// Returns 200 OK with an opaque binary body. The blob is only readable by a
// holder of the export key; the response is safe to store anywhere.
func (h *ExportHandler) ExportHandler(c *gin.Context) {
	export, err := h.exportUseCase.Export(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	filename := fmt.Sprintf("lifelog-export-%s.bin", export.ExportedAt.Format("20060102T150405Z"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/octet-stream", export.Blob)
}
