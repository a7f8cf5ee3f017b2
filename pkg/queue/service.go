package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/conductor-ci/conductor/ent"
	entjob "github.com/conductor-ci/conductor/ent/job"
)

// Service enqueues jobs and owns the claim/complete lifecycle used by
// the worker pools.
type Service struct {
	client *ent.Client
	logger *slog.Logger
}

// NewService creates a queue service.
func NewService(client *ent.Client, logger *slog.Logger) *Service {
	return &Service{
		client: client,
		logger: logger.With("component", "queue"),
	}
}

// EnqueueOption adjusts a single enqueue call.
type EnqueueOption func(*enqueueOptions)

type enqueueOptions struct {
	delay       time.Duration
	maxAttempts int
}

// WithDelay defers the job's earliest execution by d.
func WithDelay(d time.Duration) EnqueueOption {
	return func(o *enqueueOptions) { o.delay = d }
}

// WithMaxAttempts overrides the default retry limit for this job.
func WithMaxAttempts(n int) EnqueueOption {
	return func(o *enqueueOptions) { o.maxAttempts = n }
}

// Enqueue inserts a job into the named queue. A job id already present
// in the queue is a silent no-op, so callers may enqueue the same
// logical job from concurrent paths without double execution.
func (s *Service) Enqueue(ctx context.Context, queue, jobID string, payload any, opts ...EnqueueOption) error {
	options := enqueueOptions{maxAttempts: 3}
	for _, opt := range opts {
		opt(&options)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload for job %s: %w", jobID, err)
	}
	var payloadMap map[string]any
	if err := json.Unmarshal(data, &payloadMap); err != nil {
		return fmt.Errorf("failed to normalize payload for job %s: %w", jobID, err)
	}

	create := s.client.Job.Create().
		SetID(uuid.New().String()).
		SetQueue(queue).
		SetJobID(jobID).
		SetPayload(payloadMap).
		SetMaxAttempts(options.maxAttempts).
		SetRunAt(time.Now().Add(options.delay))

	if _, err := create.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			// Duplicate job id in this queue: dedup, not an error.
			s.logger.Debug("Job already enqueued, skipping",
				"queue", queue, "job_id", jobID)
			return nil
		}
		return fmt.Errorf("failed to enqueue job %s on %s: %w", jobID, queue, err)
	}

	s.logger.Info("Job enqueued",
		"queue", queue, "job_id", jobID, "delay", options.delay)
	return nil
}

// claimNext atomically claims the oldest runnable job in the queue.
// The row is selected FOR UPDATE SKIP LOCKED so replicas never contend
// on the same job.
func (s *Service) claimNext(ctx context.Context, queue, workerID string) (*ent.Job, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin claim transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	row, err := tx.Job.Query().
		Where(
			entjob.QueueEQ(queue),
			entjob.StatusEQ(entjob.StatusPending),
			entjob.RunAtLTE(time.Now()),
		).
		Order(ent.Asc(entjob.FieldRunAt), ent.Asc(entjob.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			err = ErrNoJobsAvailable
			return nil, err
		}
		err = fmt.Errorf("failed to query for claimable job: %w", err)
		return nil, err
	}

	now := time.Now()
	claimed, err := tx.Job.UpdateOne(row).
		SetStatus(entjob.StatusRunning).
		SetClaimedBy(workerID).
		SetAttempts(row.Attempts + 1).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		err = fmt.Errorf("failed to claim job %s: %w", row.JobID, err)
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim of job %s: %w", row.JobID, err)
	}
	return claimed, nil
}

// complete marks a job finished.
func (s *Service) complete(ctx context.Context, id string) error {
	err := s.client.Job.UpdateOneID(id).
		SetStatus(entjob.StatusCompleted).
		SetCompletedAt(time.Now()).
		ClearLastError().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete job %s: %w", id, err)
	}
	return nil
}

// retry returns a job to pending with its next run delayed by the
// backoff policy.
func (s *Service) retry(ctx context.Context, id string, attempt int, cause error, base, cap time.Duration) error {
	delay := Backoff(attempt, base, cap)
	err := s.client.Job.UpdateOneID(id).
		SetStatus(entjob.StatusPending).
		SetRunAt(time.Now().Add(delay)).
		SetLastError(cause.Error()).
		ClearClaimedBy().
		ClearLastHeartbeatAt().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to schedule retry for job %s: %w", id, err)
	}
	return nil
}

// fail marks a job permanently failed.
func (s *Service) fail(ctx context.Context, id string, cause error) error {
	err := s.client.Job.UpdateOneID(id).
		SetStatus(entjob.StatusFailed).
		SetCompletedAt(time.Now()).
		SetLastError(cause.Error()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark job %s failed: %w", id, err)
	}
	return nil
}

// heartbeat refreshes the liveness timestamp of a running job.
func (s *Service) heartbeat(ctx context.Context, id string) error {
	err := s.client.Job.UpdateOneID(id).
		Where(entjob.StatusEQ(entjob.StatusRunning)).
		SetLastHeartbeatAt(time.Now()).
		Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to heartbeat job %s: %w", id, err)
	}
	return nil
}

// updateProgress writes the progress side channel. Failures are logged
// and swallowed: progress is cosmetic and must never fail a handler.
func (s *Service) updateProgress(ctx context.Context, id string, stage, message string) {
	err := s.client.Job.UpdateOneID(id).
		SetProgressStage(stage).
		SetProgressMessage(message).
		Exec(ctx)
	if err != nil {
		s.logger.Warn("Failed to update job progress",
			"job_db_id", id, "stage", stage, "error", err)
	}
}

// Depth returns the number of pending jobs in the queue.
func (s *Service) Depth(ctx context.Context, queue string) (int, error) {
	n, err := s.client.Job.Query().
		Where(
			entjob.QueueEQ(queue),
			entjob.StatusEQ(entjob.StatusPending),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending jobs on %s: %w", queue, err)
	}
	return n, nil
}

// DeleteCompletedBefore removes terminal jobs older than the cutoff.
// Used by the retention sweep.
func (s *Service) DeleteCompletedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Job.Delete().
		Where(
			entjob.StatusIn(entjob.StatusCompleted, entjob.StatusFailed),
			entjob.CompletedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired jobs: %w", err)
	}
	return n, nil
}
