package queue

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entjob "github.com/conductor-ci/conductor/ent/job"
	util "github.com/conductor-ci/conductor/test/util"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_EnqueueDedup(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewService(client, discardLogger())

	require.NoError(t, svc.Enqueue(ctx, "tasks", "decompose-t1", TaskJobPayload{TaskID: "t1"}))
	// Re-enqueueing the same (queue, job_id) is a silent no-op.
	require.NoError(t, svc.Enqueue(ctx, "tasks", "decompose-t1", TaskJobPayload{TaskID: "t1"}))

	n, err := client.Job.Query().
		Where(entjob.QueueEQ("tasks"), entjob.JobIDEQ("decompose-t1")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// The same job id on another queue is a distinct job.
	require.NoError(t, svc.Enqueue(ctx, "code-review", "decompose-t1", TaskJobPayload{TaskID: "t1"}))
	n, err = client.Job.Query().Where(entjob.JobIDEQ("decompose-t1")).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestService_ClaimIsExclusive(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewService(client, discardLogger())

	require.NoError(t, svc.Enqueue(ctx, "subtasks", "subtask-s1", SubtaskJobPayload{TaskID: "t1", SubtaskID: "s1"}))

	claimed, err := svc.claimNext(ctx, "subtasks", "pod-a/subtasks-0")
	require.NoError(t, err)
	assert.Equal(t, "subtask-s1", claimed.JobID)
	assert.Equal(t, entjob.StatusRunning, claimed.Status)
	assert.Equal(t, 1, claimed.Attempts)
	require.NotNil(t, claimed.ClaimedBy)
	assert.Equal(t, "pod-a/subtasks-0", *claimed.ClaimedBy)
	assert.NotNil(t, claimed.LastHeartbeatAt)

	// The only job is running now; a second claim finds nothing.
	_, err = svc.claimNext(ctx, "subtasks", "pod-b/subtasks-0")
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestService_DelayedJobNotClaimable(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewService(client, discardLogger())

	require.NoError(t, svc.Enqueue(ctx, "tasks", "check-complete-t1",
		TaskJobPayload{TaskID: "t1"}, WithDelay(time.Hour)))

	_, err := svc.claimNext(ctx, "tasks", "pod-a/tasks-0")
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestService_RetryReschedulesWithBackoff(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewService(client, discardLogger())

	require.NoError(t, svc.Enqueue(ctx, "tasks", "decompose-t1", TaskJobPayload{TaskID: "t1"}))
	claimed, err := svc.claimNext(ctx, "tasks", "pod-a/tasks-0")
	require.NoError(t, err)

	before := time.Now()
	require.NoError(t, svc.retry(ctx, claimed.ID, claimed.Attempts,
		errors.New("transient failure"), 5*time.Second, time.Minute))

	row, err := client.Job.Get(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, entjob.StatusPending, row.Status)
	assert.Nil(t, row.ClaimedBy)
	assert.Nil(t, row.LastHeartbeatAt)
	require.NotNil(t, row.LastError)
	assert.Equal(t, "transient failure", *row.LastError)
	// First retry waits the base delay.
	assert.WithinDuration(t, before.Add(5*time.Second), row.RunAt, 2*time.Second)

	// Not claimable before run_at, and attempts survive the retry.
	_, err = svc.claimNext(ctx, "tasks", "pod-a/tasks-0")
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
	assert.Equal(t, 1, row.Attempts)
}

func TestService_CompleteAndFail(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewService(client, discardLogger())

	require.NoError(t, svc.Enqueue(ctx, "tasks", "create-pr-t1", TaskJobPayload{TaskID: "t1"}))
	require.NoError(t, svc.Enqueue(ctx, "tasks", "smoke-test-t1", TaskJobPayload{TaskID: "t1"}))

	first, err := svc.claimNext(ctx, "tasks", "pod-a/tasks-0")
	require.NoError(t, err)
	require.NoError(t, svc.complete(ctx, first.ID))

	row, err := client.Job.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, entjob.StatusCompleted, row.Status)
	assert.NotNil(t, row.CompletedAt)

	second, err := svc.claimNext(ctx, "tasks", "pod-a/tasks-0")
	require.NoError(t, err)
	require.NoError(t, svc.fail(ctx, second.ID, errors.New("agent exited with code 1")))

	row, err = client.Job.Get(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, entjob.StatusFailed, row.Status)
	require.NotNil(t, row.LastError)
	assert.Equal(t, "agent exited with code 1", *row.LastError)

	// Both settled; nothing left to claim, and the queue depth is zero.
	_, err = svc.claimNext(ctx, "tasks", "pod-a/tasks-0")
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
	depth, err := svc.Depth(ctx, "tasks")
	require.NoError(t, err)
	assert.Equal(t, 0, depth)
}

func TestService_DeleteCompletedBefore(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewService(client, discardLogger())

	require.NoError(t, svc.Enqueue(ctx, "tasks", "decompose-t1", TaskJobPayload{TaskID: "t1"}))
	claimed, err := svc.claimNext(ctx, "tasks", "pod-a/tasks-0")
	require.NoError(t, err)
	require.NoError(t, svc.complete(ctx, claimed.ID))

	// Cutoff before completion keeps the row.
	n, err := svc.DeleteCompletedBefore(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = svc.DeleteCompletedBefore(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
