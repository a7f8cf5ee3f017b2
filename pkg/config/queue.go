package config

import "time"

// Queue names used throughout the orchestrator.
const (
	QueueTasks         = "tasks"
	QueueSubtasks      = "subtasks"
	QueueNotifications = "notifications"
	QueueCodeReview    = "code-review"
)

// QueueConfig contains queue and worker pool configuration.
type QueueConfig struct {
	// TaskConcurrency is the number of workers consuming the tasks queue.
	// Safe at 2 because at most one live job per task id exists at a time
	// (job-id dedup).
	TaskConcurrency int `yaml:"task_concurrency"`

	// SubtaskConcurrency is the number of workers consuming the subtasks
	// queue; mirrors the sub-agent maxParallel default.
	SubtaskConcurrency int `yaml:"subtask_concurrency"`

	// NotificationConcurrency is the number of notification delivery workers.
	NotificationConcurrency int `yaml:"notification_concurrency"`

	// CodeReviewConcurrency is the number of workers consuming the
	// code-review queue (review and fix actions).
	CodeReviewConcurrency int `yaml:"code_review_concurrency"`

	// MaxAttempts is the per-job retry budget.
	MaxAttempts int `yaml:"max_attempts"`

	// BackoffBase is the first retry delay; doubles per attempt.
	BackoffBase time.Duration `yaml:"backoff_base"`

	// BackoffCap bounds the retry delay.
	BackoffCap time.Duration `yaml:"backoff_cap"`

	// PollInterval is the base interval for checking pending jobs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is random jitter added to PollInterval.
	// Actual interval: PollInterval +/- PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// HeartbeatInterval is how often a running job's heartbeat is updated.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// OrphanDetectionInterval is how often to scan for orphaned jobs.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a running job may go without a heartbeat
	// before it is reset to pending.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// RetentionWindow is how long completed/failed jobs are kept for
	// inspection before cleanup deletes them.
	RetentionWindow time.Duration `yaml:"retention_window"`

	// GracefulShutdownTimeout is the max time to wait for in-flight jobs
	// during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		TaskConcurrency:         2,
		SubtaskConcurrency:      5,
		NotificationConcurrency: 5,
		CodeReviewConcurrency:   2,
		MaxAttempts:             3,
		BackoffBase:             5 * time.Second,
		BackoffCap:              60 * time.Second,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		HeartbeatInterval:       15 * time.Second,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
		RetentionWindow:         7 * 24 * time.Hour,
		GracefulShutdownTimeout: 10 * time.Minute,
	}
}
