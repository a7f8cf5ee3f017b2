package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/conductor-ci/conductor/pkg/config"
	"github.com/conductor-ci/conductor/pkg/database"
	"github.com/conductor-ci/conductor/pkg/queue"
	"github.com/conductor-ci/conductor/pkg/services"
	"github.com/conductor-ci/conductor/pkg/webhook"
)

// Server is the HTTP surface: webhook ingress, manual triggers,
// health, and the metrics scrape endpoint.
type Server struct {
	cfg           *config.ServerConfig
	db            *database.Client
	tasks         *services.TaskService
	jobs          *queue.Service
	pool          *queue.Pool
	intake        *webhook.Intake
	webhookSecret string
	logger        *slog.Logger

	httpServer *http.Server
}

// NewServer assembles the server and its router.
func NewServer(
	cfg *config.ServerConfig,
	db *database.Client,
	tasks *services.TaskService,
	jobs *queue.Service,
	pool *queue.Pool,
	intake *webhook.Intake,
	logger *slog.Logger,
) *Server {
	return &Server{
		cfg:           cfg,
		db:            db,
		tasks:         tasks,
		jobs:          jobs,
		pool:          pool,
		intake:        intake,
		webhookSecret: os.Getenv(cfg.WebhookSecretEnv),
		logger:        logger.With("component", "api"),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger(), securityHeaders())

	router.POST("/webhooks", s.handleWebhook)
	router.POST("/trigger", s.handleTrigger)

	router.GET("/health", s.handleHealth)
	router.GET("/health/ready", s.handleReady)
	router.GET("/health/live", s.handleLive)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return router
}

// Start serves HTTP until the listener fails or Shutdown is called.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("HTTP server listening", "addr", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
