// Package http provides the HTTP handler for device sync pulls.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lifelog-app/lifelog/internal/httputil"
	"github.com/lifelog-app/lifelog/internal/sync/http/dto"
	syncUseCase "github.com/lifelog-app/lifelog/internal/sync/usecase"
)

// SyncHandler handles HTTP requests for device sync.
type SyncHandler struct {
	syncUseCase syncUseCase.SyncUseCase
	logger      *slog.Logger
}

// NewSyncHandler creates a new sync handler with required dependencies.
func NewSyncHandler(useCase syncUseCase.SyncUseCase, logger *slog.Logger) *SyncHandler {
	return &SyncHandler{
		syncUseCase: useCase,
		logger:      logger,
	}
}

// PullHandler returns the changes recorded after the device's cursor.
// GET /v1/sync?cursor=0&limit=200
// Returns 200 OK with changes in sequence order and the next cursor.
func (h *SyncHandler) PullHandler(c *gin.Context) {
	cursor, err := strconv.ParseInt(c.DefaultQuery("cursor", "0"), 10, 64)
	if err != nil || cursor < 0 {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("invalid cursor parameter: must be a non-negative integer"),
			h.logger,
		)
		return
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			httputil.HandleValidationErrorGin(
				c,
				fmt.Errorf("invalid limit parameter: must be a positive integer"),
				h.logger,
			)
			return
		}
	}

	result, err := h.syncUseCase.Pull(c.Request.Context(), cursor, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPullResultToResponse(result))
}
