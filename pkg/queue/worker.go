package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/conductor-ci/conductor/ent"
	"github.com/conductor-ci/conductor/pkg/config"
	"github.com/conductor-ci/conductor/pkg/models"
)

// Worker polls one queue and runs claimed jobs through its handler.
// Several workers may poll the same queue; the claim query guarantees
// each job runs on exactly one of them.
type Worker struct {
	id      string
	queue   string
	service *Service
	handler Handler
	cfg     config.QueueConfig
	logger  *slog.Logger
}

// NewWorker creates a worker bound to a queue and handler.
func NewWorker(id, queue string, service *Service, handler Handler, cfg config.QueueConfig, logger *slog.Logger) *Worker {
	return &Worker{
		id:      id,
		queue:   queue,
		service: service,
		handler: handler,
		cfg:     cfg,
		logger:  logger.With("worker_id", id, "queue", queue),
	}
}

// Run polls until ctx is cancelled. A job already claimed keeps running
// through graceful shutdown; only the polling loop stops immediately.
func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("Worker started")
	defer w.logger.Info("Worker stopped")

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		job, err := w.service.claimNext(ctx, w.queue, w.id)
		if err != nil {
			if !errors.Is(err, ErrNoJobsAvailable) && ctx.Err() == nil {
				w.logger.Error("Failed to claim job", "error", err)
			}
			w.sleep(ctx)
			continue
		}

		w.process(ctx, job)
	}
}

// process runs one claimed job to a terminal or retryable outcome.
func (w *Worker) process(ctx context.Context, row *ent.Job) {
	logger := w.logger.With("job_id", row.JobID, "attempt", row.Attempts)
	logger.Info("Processing job")

	// Heartbeat keeps the row out of orphan recovery while the handler
	// runs. Detached from ctx so a shutting-down worker still reports
	// liveness for its in-flight job.
	hbCtx, stopHeartbeat := context.WithCancel(context.Background())
	go w.runHeartbeat(hbCtx, row.ID)

	start := time.Now()
	err := w.handler.Handle(ctx, &Job{row: row, service: w.service})
	stopHeartbeat()
	duration := time.Since(start)

	if err == nil {
		if cerr := w.service.complete(ctx, row.ID); cerr != nil {
			logger.Error("Failed to mark job completed", "error", cerr)
		} else {
			logger.Info("Job completed", "duration", duration)
		}
		return
	}

	w.settleFailure(ctx, row, err, logger.With("duration", duration))
}

// settleFailure decides between retry and terminal failure.
func (w *Worker) settleFailure(ctx context.Context, row *ent.Job, cause error, logger *slog.Logger) {
	var invalid *models.InvalidTransitionError
	permanent := errors.As(cause, &invalid) || row.Attempts >= row.MaxAttempts

	if permanent {
		if ferr := w.service.fail(ctx, row.ID, cause); ferr != nil {
			logger.Error("Failed to mark job failed", "error", ferr)
			return
		}
		logger.Error("Job failed permanently",
			"attempts", row.Attempts, "error", cause)
		return
	}

	if rerr := w.service.retry(ctx, row.ID, row.Attempts, cause, w.cfg.BackoffBase, w.cfg.BackoffCap); rerr != nil {
		logger.Error("Failed to schedule retry", "error", rerr)
		return
	}
	logger.Warn("Job failed, retry scheduled",
		"attempts", row.Attempts,
		"delay", Backoff(row.Attempts, w.cfg.BackoffBase, w.cfg.BackoffCap),
		"error", cause)
}

// runHeartbeat refreshes last_heartbeat_at until stopped.
func (w *Worker) runHeartbeat(ctx context.Context, jobID string) {
	ticker := time.NewTicker(w.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			hbCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			if err := w.service.heartbeat(hbCtx, jobID); err != nil {
				w.logger.Warn("Heartbeat failed", "job_db_id", jobID, "error", err)
			}
			cancel()
		}
	}
}

// sleep waits one poll interval, or until cancellation.
func (w *Worker) sleep(ctx context.Context) {
	timer := time.NewTimer(w.pollInterval())
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.cfg.PollInterval
	jitter := w.cfg.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

func workerID(podID, queue string, index int) string {
	return fmt.Sprintf("%s/%s-%d", podID, queue, index)
}
