package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/platformbuilds/mirador-relay/internal/api/handlers"
	"github.com/platformbuilds/mirador-relay/internal/api/middleware"
	"github.com/platformbuilds/mirador-relay/internal/config"
	"github.com/platformbuilds/mirador-relay/internal/monitoring"
	"github.com/platformbuilds/mirador-relay/internal/services"
	"github.com/platformbuilds/mirador-relay/pkg/logger"
)

const Version = "v0.3.1"

type Server struct {
	config     *config.Config
	logger     logger.Logger
	discord    *services.DiscordService
	router     *gin.Engine
	httpServer *http.Server
}

func NewServer(cfg *config.Config, log logger.Logger, discord *services.DiscordService) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	server := &Server{
		config:  cfg,
		logger:  log,
		discord: discord,
		router:  router,
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

func (s *Server) setupMiddleware() {
	// Recovery middleware
	s.router.Use(gin.Recovery())

	// Request IDs for log correlation
	s.router.Use(middleware.RequestID())

	// Request logging
	s.router.Use(middleware.RequestLogger(s.logger))

	// Prometheus request metrics
	s.router.Use(middleware.MetricsMiddleware())

	// OpenAPI specification + Swagger UI (visit /swagger/index.html)
	s.router.StaticFile("/api/openapi.yaml", "api/openapi.yaml")
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/api/openapi.yaml")))

	// Prometheus metrics endpoint
	monitoring.SetupPrometheusMetrics(s.router, Version)
}

func (s *Server) setupRoutes() {
	healthHandler := handlers.NewHealthHandler(s.logger, s.discord)
	s.router.GET("/health", healthHandler.HealthCheck)
	s.router.GET("/readyz", healthHandler.ReadinessCheck)

	relayHandler := handlers.NewRelayHandler(s.discord, s.logger)
	s.router.POST("/", relayHandler.Relay)
}

func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:         s.config.ListenAddress,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("mirador-relay HTTP server starting", "addr", s.config.ListenAddress)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		s.logger.Info("Shutting down mirador-relay gracefully")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return s.httpServer.Shutdown(shutdownCtx)
}

// Handler exposes the configured router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
