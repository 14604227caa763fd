package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	apperrors "github.com/lifelog-app/lifelog/internal/errors"
	"github.com/lifelog-app/lifelog/internal/httputil"
)

// rateLimiterStore holds per-device rate limiters with automatic cleanup.
type rateLimiterStore struct {
	limiters sync.Map // map[uuid.UUID]*rateLimiterEntry
	rps      float64
	burst    int
}

// rateLimiterEntry holds a rate limiter and last access time for cleanup.
type rateLimiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
	mu         sync.Mutex
}

// RateLimiter enforces per-device rate limiting on authenticated requests.
//
// Uses token bucket algorithm via golang.org/x/time/rate. Each device gets an
// independent rate limiter keyed by device ID. A background goroutine drops
// limiters for devices that have gone quiet; Stop terminates it on shutdown.
type RateLimiter struct {
	store    *rateLimiterStore
	logger   *slog.Logger
	stop     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter creates a rate limiter and starts its stale-entry cleanup
// goroutine (every 5 minutes).
//
// Configuration:
//   - rps: Requests per second allowed per device
//   - burst: Maximum burst capacity for temporary spikes
func NewRateLimiter(rps float64, burst int, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		store: &rateLimiterStore{
			rps:   rps,
			burst: burst,
		},
		logger: logger,
		stop:   make(chan struct{}),
	}

	go rl.store.cleanupStale(rl.stop, 5*time.Minute)

	return rl
}

// Middleware returns the gin handler enforcing the per-device limit.
//
// MUST be used after AuthenticationMiddleware (requires authenticated device
// in context).
//
// Returns:
//   - 429 Too Many Requests: Rate limit exceeded (includes Retry-After header)
//   - Continues: Request allowed within rate limit
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		device, ok := GetDevice(c.Request.Context())
		if !ok || device == nil {
			// Should never happen - authentication middleware should have caught this
			rl.logger.Error("rate limit middleware: no authenticated device in context")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, rl.logger)
			c.Abort()
			return
		}

		limiter := rl.store.getLimiter(device.ID)

		if !limiter.Allow() {
			reservation := limiter.Reserve()
			retryAfter := int(reservation.Delay().Seconds())
			reservation.Cancel()

			rl.logger.Debug("rate limit exceeded",
				slog.String("device_id", device.ID.String()),
				slog.Int("retry_after", retryAfter))

			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":   "rate_limit_exceeded",
				"message": "Too many requests. Please retry after the specified delay.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// Stop terminates the cleanup goroutine. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() {
		close(rl.stop)
	})
}

// getLimiter retrieves or creates a rate limiter for a device.
func (s *rateLimiterStore) getLimiter(deviceID uuid.UUID) *rate.Limiter {
	if val, ok := s.limiters.Load(deviceID); ok {
		entry := val.(*rateLimiterEntry)
		entry.mu.Lock()
		entry.lastAccess = time.Now()
		entry.mu.Unlock()
		return entry.limiter
	}

	limiter := rate.NewLimiter(rate.Limit(s.rps), s.burst)
	entry := &rateLimiterEntry{
		limiter:    limiter,
		lastAccess: time.Now(),
	}

	s.limiters.Store(deviceID, entry)
	return limiter
}

// cleanupStale removes rate limiters that haven't been accessed recently.
// Runs periodically to prevent unbounded memory growth; exits when stop is
// closed.
func (s *rateLimiterStore) cleanupStale(stop <-chan struct{}, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			// Remove limiters not accessed in last hour
			threshold := time.Now().Add(-1 * time.Hour)
			s.limiters.Range(func(key, value interface{}) bool {
				entry := value.(*rateLimiterEntry)
				entry.mu.Lock()
				shouldDelete := entry.lastAccess.Before(threshold)
				entry.mu.Unlock()

				if shouldDelete {
					s.limiters.Delete(key)
				}
				return true
			})
		}
	}
}
