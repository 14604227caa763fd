// Package http provides HTTP handlers for chat message operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lifelog-app/lifelog/internal/chat/http/dto"
	chatUseCase "github.com/lifelog-app/lifelog/internal/chat/usecase"
	"github.com/lifelog-app/lifelog/internal/httputil"
	customValidation "github.com/lifelog-app/lifelog/internal/validation"
)

// MessageHandler handles HTTP requests for chat message operations.
type MessageHandler struct {
	messageUseCase chatUseCase.MessageUseCase
	logger         *slog.Logger
}

// NewMessageHandler creates a new message handler with required dependencies.
func NewMessageHandler(messageUseCase chatUseCase.MessageUseCase, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{
		messageUseCase: messageUseCase,
		logger:         logger,
	}
}

// AppendHandler appends a message to a conversation.
// POST /v1/conversations/:id/messages
// Returns 201 Created with the message including its payload.
func (h *MessageHandler) AppendHandler(c *gin.Context) {
	conversationID, ok := h.parseConversationID(c)
	if !ok {
		return
	}

	var req dto.AppendMessageRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	message, err := h.messageUseCase.Append(c.Request.Context(), conversationID, req.Payload())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapMessageToResponse(message))
}

// ListHandler retrieves the messages of a conversation in chronological order.
// GET /v1/conversations/:id/messages?offset=0&limit=50
// Returns 200 OK.
func (h *MessageHandler) ListHandler(c *gin.Context) {
	conversationID, ok := h.parseConversationID(c)
	if !ok {
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	messages, err := h.messageUseCase.ListByConversation(c.Request.Context(), conversationID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapMessagesToListResponse(messages, offset, limit))
}

func (h *MessageHandler) parseConversationID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return uuid.Nil, false
	}
	return id, true
}
