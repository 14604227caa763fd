// Package http provides HTTP handlers for journal entry operations.
// Entry payloads are decrypted only for the duration of a request; the
// handlers never log payload content.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lifelog-app/lifelog/internal/httputil"
	"github.com/lifelog-app/lifelog/internal/journal/http/dto"
	journalUseCase "github.com/lifelog-app/lifelog/internal/journal/usecase"
	customValidation "github.com/lifelog-app/lifelog/internal/validation"
)

// EntryHandler handles HTTP requests for journal entry operations.
type EntryHandler struct {
	entryUseCase journalUseCase.EntryUseCase
	logger       *slog.Logger
}

// NewEntryHandler creates a new entry handler with required dependencies.
func NewEntryHandler(entryUseCase journalUseCase.EntryUseCase, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{
		entryUseCase: entryUseCase,
		logger:       logger,
	}
}

// CreateHandler creates a new journal entry.
// POST /v1/entries
// Returns 201 Created with the entry including its payload.
func (h *EntryHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateEntryRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	entry, err := h.entryUseCase.Create(c.Request.Context(), req.EntryDate, req.Payload())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapEntryToResponse(entry))
}

// GetHandler retrieves a journal entry with its decrypted payload.
// GET /v1/entries/:id
// Returns 200 OK.
func (h *EntryHandler) GetHandler(c *gin.Context) {
	id, ok := h.parseEntryID(c)
	if !ok {
		return
	}

	entry, err := h.entryUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEntryToResponse(entry))
}

// ListHandler retrieves journal entries with pagination support.
// GET /v1/entries?offset=0&limit=50
// Returns 200 OK with entries ordered by entry date descending.
func (h *EntryHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	entries, err := h.entryUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEntriesToListResponse(entries, offset, limit))
}

// UpdateHandler replaces the payload of an existing journal entry.
// PUT /v1/entries/:id
// Returns 200 OK with the updated entry.
func (h *EntryHandler) UpdateHandler(c *gin.Context) {
	id, ok := h.parseEntryID(c)
	if !ok {
		return
	}

	var req dto.UpdateEntryRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	entry, err := h.entryUseCase.Update(c.Request.Context(), id, req.Payload())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEntryToResponse(entry))
}

// DeleteHandler soft deletes a journal entry.
// DELETE /v1/entries/:id
// Returns 204 No Content.
func (h *EntryHandler) DeleteHandler(c *gin.Context) {
	id, ok := h.parseEntryID(c)
	if !ok {
		return
	}

	if err := h.entryUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// parseEntryID extracts and validates the entry ID URL parameter.
// Writes a validation error response and returns false when the ID is malformed.
func (h *EntryHandler) parseEntryID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return uuid.Nil, false
	}
	return id, true
}
