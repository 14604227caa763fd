// Package dto provides data transfer objects for chat HTTP handling.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	chatDomain "github.com/lifelog-app/lifelog/internal/chat/domain"
	customValidation "github.com/lifelog-app/lifelog/internal/validation"
)

// AppendMessageRequest contains the parameters for appending a chat message.
// The conversation ID is extracted from the URL parameter.
type AppendMessageRequest struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// Validate checks if the append message request is valid.
func (r *AppendMessageRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Role, validation.Required, validation.In("user", "assistant")),
		validation.Field(&r.Content, validation.Required, customValidation.NotBlank),
	)
}

// Payload converts the request body into the plaintext message payload.
func (r *AppendMessageRequest) Payload() *chatDomain.MessagePayload {
	return &chatDomain.MessagePayload{
		Role:    chatDomain.Role(r.Role),
		Content: r.Content,
	}
}

// MessageResponse represents a chat message in API responses.
type MessageResponse struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

// MapMessageToResponse converts a domain message with an unsealed payload to an API response.
func MapMessageToResponse(message *chatDomain.Message) MessageResponse {
	response := MessageResponse{
		ID:             message.ID.String(),
		ConversationID: message.ConversationID.String(),
		CreatedAt:      message.CreatedAt,
	}

	if message.Payload != nil {
		response.Role = string(message.Payload.Role)
		response.Content = message.Payload.Content
	}

	return response
}

// ListMessagesResponse represents a paginated list of chat messages.
type ListMessagesResponse struct {
	Messages []MessageResponse `json:"messages"`
	Offset   int               `json:"offset"`
	Limit    int               `json:"limit"`
}

// MapMessagesToListResponse converts domain messages to a paginated API response.
func MapMessagesToListResponse(messages []*chatDomain.Message, offset, limit int) ListMessagesResponse {
	response := ListMessagesResponse{
		Messages: make([]MessageResponse, 0, len(messages)),
		Offset:   offset,
		Limit:    limit,
	}

	for _, message := range messages {
		response.Messages = append(response.Messages, MapMessageToResponse(message))
	}

	return response
}
