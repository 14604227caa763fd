package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authUseCase "github.com/lifelog-app/lifelog/internal/auth/usecase"
	apperrors "github.com/lifelog-app/lifelog/internal/errors"
	"github.com/lifelog-app/lifelog/internal/httputil"
)

// AuthenticationMiddleware authenticates requests via device credentials in
// the Authorization header.
//
// Authorization header format: "Bearer <device-id>:<secret>" where device-id
// is the device UUID and secret is the plain secret issued at registration.
// The "bearer" scheme is case-insensitive.
//
// The middleware:
// 1. Extracts and parses the credential pair from the Authorization header
// 2. Verifies it via deviceUseCase.Authenticate (Argon2id comparison)
// 3. Stores the authenticated device in the request context
// 4. Allows downstream handlers to access the device via GetDevice()
//
// Error handling:
//   - Missing or malformed Authorization header → 401 Unauthorized
//   - Unknown device or secret mismatch → 401 Unauthorized (indistinguishable)
//   - Deactivated device → 403 Forbidden
//
// The secret is never logged, not even at debug level.
func AuthenticationMiddleware(
	deviceUseCase authUseCase.DeviceUseCase,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("authentication failed: missing authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication failed: malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		credential := authHeader[len(bearerPrefix):]
		deviceIDRaw, plainSecret, found := strings.Cut(credential, ":")
		if !found || deviceIDRaw == "" || plainSecret == "" {
			logger.Debug("authentication failed: malformed credential pair")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		deviceID, err := uuid.Parse(deviceIDRaw)
		if err != nil {
			logger.Debug("authentication failed: invalid device id")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		device, err := deviceUseCase.Authenticate(c.Request.Context(), deviceID, plainSecret)
		if err != nil {
			logger.Debug("authentication failed",
				slog.String("device_id", deviceID.String()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithDevice(c.Request.Context(), device)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.String("device_id", device.ID.String()),
			slog.String("device_name", device.Name))

		c.Next()
	}
}
