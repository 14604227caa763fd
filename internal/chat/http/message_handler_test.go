package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	chatDomain "github.com/lifelog-app/lifelog/internal/chat/domain"
	"github.com/lifelog-app/lifelog/internal/chat/http/dto"
	"github.com/lifelog-app/lifelog/internal/chat/usecase/mocks"
)

func setupTestHandler(t *testing.T) (*MessageHandler, *mocks.MockMessageUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := &mocks.MockMessageUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewMessageHandler(mockUseCase, logger), mockUseCase
}

func createTestContext(method, target string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}

	c.Request = httptest.NewRequest(method, target, reader)
	c.Request.Header.Set("Content-Type", "application/json")

	return c, w
}

func TestMessageHandler_AppendHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		conversationID := uuid.Must(uuid.NewV7())
		request := dto.AppendMessageRequest{Role: "user", Content: "summarize my month"}

		expected := &chatDomain.Message{
			ID:             uuid.Must(uuid.NewV7()),
			ConversationID: conversationID,
			Payload:        request.Payload(),
			CreatedAt:      time.Now().UTC(),
		}

		mockUseCase.On("Append", mock.Anything, conversationID, mock.MatchedBy(func(p *chatDomain.MessagePayload) bool {
			return p.Role == chatDomain.RoleUser && p.Content == request.Content
		})).Return(expected, nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/conversations/"+conversationID.String()+"/messages", request)
		c.Params = gin.Params{{Key: "id", Value: conversationID.String()}}

		handler.AppendHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.MessageResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "user", response.Role)
		assert.Equal(t, "summarize my month", response.Content)
	})

	t.Run("Error_InvalidRole", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		conversationID := uuid.Must(uuid.NewV7())
		request := dto.AppendMessageRequest{Role: "narrator", Content: "x"}

		c, w := createTestContext(http.MethodPost, "/v1/conversations/"+conversationID.String()+"/messages", request)
		c.Params = gin.Params{{Key: "id", Value: conversationID.String()}}

		handler.AppendHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "Append", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_InvalidConversationID", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/conversations/nope/messages", dto.AppendMessageRequest{
			Role:    "user",
			Content: "x",
		})
		c.Params = gin.Params{{Key: "id", Value: "nope"}}

		handler.AppendHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "Append", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMessageHandler_ListHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		conversationID := uuid.Must(uuid.NewV7())
		messages := []*chatDomain.Message{
			{
				ID:             uuid.Must(uuid.NewV7()),
				ConversationID: conversationID,
				Payload:        &chatDomain.MessagePayload{Role: chatDomain.RoleUser, Content: "hello"},
			},
			{
				ID:             uuid.Must(uuid.NewV7()),
				ConversationID: conversationID,
				Payload:        &chatDomain.MessagePayload{Role: chatDomain.RoleAssistant, Content: "hi"},
			},
		}

		mockUseCase.On("ListByConversation", mock.Anything, conversationID, 0, 50).Return(messages, nil).Once()

		c, w := createTestContext(http.MethodGet, "/v1/conversations/"+conversationID.String()+"/messages", nil)
		c.Params = gin.Params{{Key: "id", Value: conversationID.String()}}

		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListMessagesResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Messages, 2)
		assert.Equal(t, "hello", response.Messages[0].Content)
		assert.Equal(t, "assistant", response.Messages[1].Role)
	})
}
