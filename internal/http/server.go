// Package http provides the HTTP server, routing, and server-level middleware.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/lifelog-app/lifelog/internal/auth/http"
	authUseCase "github.com/lifelog-app/lifelog/internal/auth/usecase"
	chatHTTP "github.com/lifelog-app/lifelog/internal/chat/http"
	"github.com/lifelog-app/lifelog/internal/config"
	exportHTTP "github.com/lifelog-app/lifelog/internal/export/http"
	journalHTTP "github.com/lifelog-app/lifelog/internal/journal/http"
	"github.com/lifelog-app/lifelog/internal/metrics"
	syncHTTP "github.com/lifelog-app/lifelog/internal/sync/http"
)

// Server represents the HTTP server.
type Server struct {
	db          *sql.DB
	router      *gin.Engine
	server      *http.Server
	logger      *slog.Logger
	rateLimiter *authHTTP.RateLimiter
}

// NewServer creates a new HTTP server. The database handle is used only by
// the readiness probe.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Handlers groups the feature handlers mounted on the router.
type Handlers struct {
	Entry   *journalHTTP.EntryHandler
	Message *chatHTTP.MessageHandler
	Sync    *syncHTTP.SyncHandler
	Export  *exportHTTP.ExportHandler
}

// SetupRouter builds the gin router: recovery, request IDs, structured
// logging, optional CORS, then the authenticated /v1 API surface.
//
// Health endpoints stay outside the authenticated group so orchestrators can
// probe without credentials. Everything under /v1 requires device
// authentication; rate limiting (when enabled) applies after authentication
// so limits are per device, not per IP.
func (s *Server) SetupRouter(
	cfg *config.Config,
	deviceUseCase authUseCase.DeviceUseCase,
	handlers Handlers,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(CustomLoggerMiddleware(s.logger))

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	v1.Use(authHTTP.AuthenticationMiddleware(deviceUseCase, s.logger))
	if cfg.RateLimitEnabled {
		s.rateLimiter = authHTTP.NewRateLimiter(cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger)
		v1.Use(s.rateLimiter.Middleware())
	}

	v1.POST("/entries", handlers.Entry.CreateHandler)
	v1.GET("/entries", handlers.Entry.ListHandler)
	v1.GET("/entries/:id", handlers.Entry.GetHandler)
	v1.PUT("/entries/:id", handlers.Entry.UpdateHandler)
	v1.DELETE("/entries/:id", handlers.Entry.DeleteHandler)

	v1.POST("/conversations/:id/messages", handlers.Message.AppendHandler)
	v1.GET("/conversations/:id/messages", handlers.Message.ListHandler)

	v1.GET("/sync", handlers.Sync.PullHandler)
	v1.GET("/export", handlers.Export.ExportHandler)

	s.router = router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve traffic, checking
// database connectivity with a short timeout.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"database": "ok"}
	status := "ready"
	code := http.StatusOK

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if s.db == nil {
		components["database"] = "error"
		status = "not_ready"
		code = http.StatusServiceUnavailable
	} else if err := s.db.PingContext(ctx); err != nil {
		s.logger.Error("readiness check failed", slog.Any("error", err))
		components["database"] = "error"
		status = "not_ready"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":     status,
		"components": components,
	})
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server. SetupRouter must have been called first.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server and stops the rate
// limiter's cleanup goroutine.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	return s.server.Shutdown(ctx)
}
