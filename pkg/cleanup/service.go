// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/conductor-ci/conductor/pkg/config"
	"github.com/conductor-ci/conductor/pkg/queue"
	"github.com/conductor-ci/conductor/pkg/services"
)

// Service periodically enforces retention policies:
//   - Removes settled queue jobs past the retention window
//   - Removes delivered notifications past their TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config        *config.RetentionConfig
	jobRetention  time.Duration
	jobs          *queue.Service
	notifications *services.NotificationService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service. jobRetention comes from the
// queue configuration's retention window.
func NewService(
	cfg *config.RetentionConfig,
	jobRetention time.Duration,
	jobs *queue.Service,
	notifications *services.NotificationService,
) *Service {
	return &Service{
		config:        cfg,
		jobRetention:  jobRetention,
		jobs:          jobs,
		notifications: notifications,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"job_retention", s.jobRetention,
		"notification_ttl", s.config.NotificationTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.cleanupSettledJobs(ctx)
	s.cleanupSentNotifications(ctx)
}

func (s *Service) cleanupSettledJobs(ctx context.Context) {
	cutoff := time.Now().Add(-s.jobRetention)
	count, err := s.jobs.DeleteCompletedBefore(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: settled-job cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted settled jobs", "count", count)
	}
}

func (s *Service) cleanupSentNotifications(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.NotificationTTL)
	count, err := s.notifications.DeleteSentBefore(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: notification cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted sent notifications", "count", count)
	}
}
