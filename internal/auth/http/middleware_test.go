package http

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/lifelog-app/lifelog/internal/auth/domain"
	"github.com/lifelog-app/lifelog/internal/auth/usecase/mocks"
	apperrors "github.com/lifelog-app/lifelog/internal/errors"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *mocks.MockDeviceUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := &mocks.MockDeviceUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := gin.New()
	router.Use(AuthenticationMiddleware(mockUseCase, logger))
	router.GET("/protected", func(c *gin.Context) {
		device, ok := GetDevice(c.Request.Context())
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no device in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"device_id": device.ID.String()})
	})

	return router, mockUseCase
}

func performRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAuthenticationMiddleware(t *testing.T) {
	deviceID := uuid.Must(uuid.NewV7())
	device := &authDomain.Device{
		ID:       deviceID,
		Name:     "test phone",
		IsActive: true,
	}

	t.Run("Success", func(t *testing.T) {
		router, mockUseCase := setupAuthRouter(t)

		mockUseCase.On("Authenticate", mock.Anything, deviceID, "plain-secret").
			Return(device, nil).
			Once()

		w := performRequest(router, fmt.Sprintf("Bearer %s:plain-secret", deviceID))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), deviceID.String())
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Success_CaseInsensitiveScheme", func(t *testing.T) {
		router, mockUseCase := setupAuthRouter(t)

		mockUseCase.On("Authenticate", mock.Anything, deviceID, "plain-secret").
			Return(device, nil).
			Once()

		w := performRequest(router, fmt.Sprintf("bearer %s:plain-secret", deviceID))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Error_MissingHeader", func(t *testing.T) {
		router, mockUseCase := setupAuthRouter(t)

		w := performRequest(router, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockUseCase.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_WrongScheme", func(t *testing.T) {
		router, _ := setupAuthRouter(t)

		w := performRequest(router, "Basic dXNlcjpwYXNz")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Error_MissingSecretSeparator", func(t *testing.T) {
		router, mockUseCase := setupAuthRouter(t)

		w := performRequest(router, fmt.Sprintf("Bearer %s", deviceID))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockUseCase.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_EmptySecret", func(t *testing.T) {
		router, _ := setupAuthRouter(t)

		w := performRequest(router, fmt.Sprintf("Bearer %s:", deviceID))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Error_InvalidDeviceID", func(t *testing.T) {
		router, mockUseCase := setupAuthRouter(t)

		w := performRequest(router, "Bearer not-a-uuid:plain-secret")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockUseCase.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_BadCredentials", func(t *testing.T) {
		router, mockUseCase := setupAuthRouter(t)

		mockUseCase.On("Authenticate", mock.Anything, deviceID, "wrong-secret").
			Return(nil, apperrors.ErrUnauthorized).
			Once()

		w := performRequest(router, fmt.Sprintf("Bearer %s:wrong-secret", deviceID))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Error_InactiveDevice", func(t *testing.T) {
		router, mockUseCase := setupAuthRouter(t)

		mockUseCase.On("Authenticate", mock.Anything, deviceID, "plain-secret").
			Return(nil, authDomain.ErrDeviceInactive).
			Once()

		w := performRequest(router, fmt.Sprintf("Bearer %s:plain-secret", deviceID))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestGetDevice(t *testing.T) {
	t.Run("NoDeviceInContext", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		device, ok := GetDevice(req.Context())
		assert.False(t, ok)
		assert.Nil(t, device)
	})
}
