// Conductor orchestrator server — receives board webhooks, manages the
// durable job queues, and drives coding-agent runs end to end.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/conductor-ci/conductor/pkg/agent"
	"github.com/conductor-ci/conductor/pkg/api"
	"github.com/conductor-ci/conductor/pkg/cleanup"
	"github.com/conductor-ci/conductor/pkg/config"
	"github.com/conductor-ci/conductor/pkg/database"
	"github.com/conductor-ci/conductor/pkg/github"
	"github.com/conductor-ci/conductor/pkg/masking"
	"github.com/conductor-ci/conductor/pkg/metrics"
	"github.com/conductor-ci/conductor/pkg/notify"
	"github.com/conductor-ci/conductor/pkg/orchestrator"
	"github.com/conductor-ci/conductor/pkg/queue"
	"github.com/conductor-ci/conductor/pkg/services"
	"github.com/conductor-ci/conductor/pkg/webhook"
	"github.com/conductor-ci/conductor/pkg/workspace"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica
// coordination. Priority: POD_ID env > HOSTNAME env > "local".
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting conductor",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// One-time startup orphan cleanup for jobs this pod abandoned.
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID, logger); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
	}

	prometheus.MustRegister(metrics.NewStateCollector(dbClient.Client))

	// Forge client with GitHub App credentials.
	privateKey := os.Getenv(cfg.GitHub.PrivateKeyEnv)
	tokens, err := github.NewAppTokenSource(cfg.GitHub.AppID, []byte(privateKey), cfg.GitHub.APIBaseURL)
	if err != nil {
		slog.Error("Failed to initialize forge credentials", "error", err)
		os.Exit(1)
	}
	forge := github.NewClient(tokens, logger,
		github.WithBaseURLs(cfg.GitHub.APIBaseURL, cfg.GitHub.GraphQLURL))

	// Domain services.
	masker := masking.NewService()
	taskService := services.NewTaskService(dbClient.Client)
	subtaskService := services.NewSubtaskService(dbClient.Client)
	runService := services.NewRunService(dbClient.Client, masker)
	reviewService := services.NewReviewService(dbClient.Client)
	prService := services.NewPullRequestService(dbClient.Client)
	notificationService := services.NewNotificationService(dbClient.Client)
	slog.Info("Services initialized")

	jobService := queue.NewService(dbClient.Client, logger)
	workspaces := workspace.NewManager(cfg.WorkspacesRoot, forge, *cfg.GitHub, logger)
	runner := agent.NewRunner(cfg.Agent.Binary, cfg.Agent.CredentialEnv, logger)

	decomposer := orchestrator.NewDecomposer(forge, runner, runService, subtaskService, *cfg.Agent, logger)
	reviewer := orchestrator.NewReviewer(forge, runner, runService, reviewService, subtaskService, workspaces, *cfg.Agent, logger)
	fixer := orchestrator.NewFixer(runner, runService, workspaces, logger)
	smoke := orchestrator.NewSmokeTester(logger)
	notifier := notify.NewDispatcher(notificationService, jobService, cfg.Notifications, logger)

	taskProcessor := orchestrator.NewTaskProcessor(orchestrator.TaskProcessorDeps{
		Tasks:      taskService,
		Subtasks:   subtaskService,
		PRs:        prService,
		Jobs:       jobService,
		Forge:      forge,
		Workspaces: workspaces,
		Decomposer: decomposer,
		Reviewer:   reviewer,
		Fixer:      fixer,
		Smoke:      smoke,
		Notifier:   notifier,
		Logger:     logger,
	})
	subtaskProcessor := orchestrator.NewSubtaskProcessor(
		taskService, subtaskService, runService, workspaces, runner, decomposer, logger)
	deliverer := notify.NewDeliverer(notificationService, cfg.Notifications, logger)

	// Worker pool: one registration per named queue.
	pool := queue.NewPool(podID, jobService, *cfg.Queue, logger)
	for _, reg := range []struct {
		queue       string
		handler     queue.Handler
		concurrency int
	}{
		{config.QueueTasks, taskProcessor, cfg.Queue.TaskConcurrency},
		{config.QueueCodeReview, taskProcessor, cfg.Queue.CodeReviewConcurrency},
		{config.QueueSubtasks, subtaskProcessor, cfg.Queue.SubtaskConcurrency},
		{config.QueueNotifications, deliverer, cfg.Queue.NotificationConcurrency},
	} {
		if err := pool.Register(reg.queue, reg.handler, reg.concurrency); err != nil {
			slog.Error("Failed to register queue", "queue", reg.queue, "error", err)
			os.Exit(1)
		}
	}
	if err := pool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	orphans := queue.NewOrphanDetector(dbClient.Client, *cfg.Queue, logger)
	orphans.Start()
	defer orphans.Stop()

	retention := cleanup.NewService(cfg.Retention, cfg.Queue.RetentionWindow, jobService, notificationService)
	retention.Start(ctx)
	defer retention.Stop()

	intake := webhook.NewIntake(taskService, prService, jobService, forge, cfg.BotLogin, logger)
	httpServer := api.NewServer(cfg, dbClient, taskService, jobService, pool, intake, logger)

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(":" + httpPort); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	slog.Info("Conductor started", "pod_id", podID)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, in-flight jobs will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
