// Package queue provides durable named job queues on top of the jobs
// table: delayed delivery, retries with exponential backoff, dedup by
// caller-supplied job id, and bounded-concurrency worker pools.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/conductor-ci/conductor/ent"
	"github.com/conductor-ci/conductor/pkg/models"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no claimable jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrJobNotFound indicates the referenced job does not exist.
	ErrJobNotFound = errors.New("job not found")
)

// Handler processes one claimed job. Returning an error surfaces through
// the queue's retry policy; a nil error completes the job.
type Handler interface {
	Handle(ctx context.Context, job *Job) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, job *Job) error

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, job *Job) error {
	return f(ctx, job)
}

// Job is a claimed job handed to a Handler. UpdateProgress writes the
// progress side channel; it never alters scheduling semantics.
type Job struct {
	row     *ent.Job
	service *Service
}

// ID returns the caller-supplied dedup key.
func (j *Job) ID() string { return j.row.JobID }

// Queue returns the queue name.
func (j *Job) Queue() string { return j.row.Queue }

// Attempt returns the 1-based attempt number of this execution.
func (j *Job) Attempt() int { return j.row.Attempts }

// DecodePayload unmarshals the job payload into v.
func (j *Job) DecodePayload(v any) error {
	data, err := json.Marshal(j.row.Payload)
	if err != nil {
		return fmt.Errorf("failed to re-marshal payload: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}
	return nil
}

// UpdateProgress records a progress stage and message on the job row.
func (j *Job) UpdateProgress(ctx context.Context, stage, message string) {
	j.service.updateProgress(ctx, j.row.ID, stage, message)
}

// TaskJobPayload is the payload of tasks-queue (and code-review-queue)
// jobs.
type TaskJobPayload struct {
	TaskID string            `json:"taskId"`
	Action models.TaskAction `json:"action"`
}

// SubtaskJobPayload is the payload of subtasks-queue jobs.
type SubtaskJobPayload struct {
	TaskID    string `json:"taskId"`
	SubtaskID string `json:"subtaskId"`
}

// NotificationJobPayload is the payload of notifications-queue jobs.
type NotificationJobPayload struct {
	NotificationID string `json:"notificationId"`
}

// Backoff returns the retry delay after the given 1-based attempt:
// base doubled per attempt, bounded by cap.
func Backoff(attempt int, base, cap time.Duration) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := base
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= cap {
			return cap
		}
	}
	if d > cap {
		return cap
	}
	return d
}

// Job id builders. Stable ids dedup repeat enqueues; salted ids allow
// deliberate re-enqueue of a recurring action for the same task.

// DecomposeJobID is the stable id of the initial decompose job.
func DecomposeJobID(taskID string) string {
	return "decompose-" + taskID
}

// SaltedDecomposeJobID is used when decompose must run again after a
// human-review or redo round-trip.
func SaltedDecomposeJobID(taskID string, now time.Time) string {
	return fmt.Sprintf("decompose-%s-%d", taskID, now.UnixNano())
}

// CheckCompleteJobID names the first completion-poll job of a task.
func CheckCompleteJobID(taskID string) string {
	return "check-complete-" + taskID
}

// SaltedCheckCompleteJobID names subsequent completion-poll jobs.
func SaltedCheckCompleteJobID(taskID string, now time.Time) string {
	return fmt.Sprintf("check-complete-%s-%d", taskID, now.UnixNano())
}

// SaltedReviewJobID names a review job; salted because review recurs
// across fix iterations.
func SaltedReviewJobID(taskID string, now time.Time) string {
	return fmt.Sprintf("review-%s-%d", taskID, now.UnixNano())
}

// FixJobID names the fix job of one review iteration.
func FixJobID(taskID string, iteration int) string {
	return fmt.Sprintf("fix-%s-iter-%d", taskID, iteration)
}

// CreatePRJobID names the single create-pr job of a task.
func CreatePRJobID(taskID string) string {
	return "create-pr-" + taskID
}

// SmokeTestJobID names the single smoke-test job of a task.
func SmokeTestJobID(taskID string) string {
	return "smoke-test-" + taskID
}

// SubtaskJobID names a subtask execution job.
func SubtaskJobID(subtaskID string) string {
	return "subtask-" + subtaskID
}

// NotificationJobID names a notification delivery job.
func NotificationJobID(notificationID string) string {
	return "notification-" + notificationID
}
