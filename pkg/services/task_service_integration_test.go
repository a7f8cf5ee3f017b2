package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductor-ci/conductor/ent"
	"github.com/conductor-ci/conductor/pkg/models"
	util "github.com/conductor-ci/conductor/test/util"
)

func createTask(t *testing.T, svc *TaskService) *ent.Task {
	t.Helper()
	task, err := svc.CreateTask(context.Background(), models.CreateTaskRequest{
		RepositoryFullName: "acme/api",
		RepositoryID:       42,
		InstallationID:     7,
		Title:              "Add rate limiting",
		Description:        "Protect the public endpoints",
	})
	require.NoError(t, err)
	return task
}

func TestTaskService_TransitionPersists(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewTaskService(client)

	task := createTask(t, svc)
	assert.Equal(t, "pending", string(task.Status))

	task, err := svc.Transition(ctx, task.ID, models.TaskStatusDecomposing)
	require.NoError(t, err)
	assert.Equal(t, "decomposing", string(task.Status))
	assert.NotNil(t, task.StartedAt)

	task, err = svc.Transition(ctx, task.ID, models.TaskStatusExecuting)
	require.NoError(t, err)

	stored, err := svc.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "executing", string(stored.Status))
}

func TestTaskService_TransitionRejectsIllegalEdge(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewTaskService(client)

	task := createTask(t, svc)

	// pending cannot jump straight to review.
	_, err := svc.Transition(ctx, task.ID, models.TaskStatusReview)
	var invalid *models.InvalidTransitionError
	require.ErrorAs(t, err, &invalid)

	// The rejected transition leaves the row untouched.
	stored, err := svc.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", string(stored.Status))
}

func TestTaskService_DoneIsTerminal(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewTaskService(client)

	task := createTask(t, svc)
	for _, to := range []models.TaskStatus{
		models.TaskStatusDecomposing,
		models.TaskStatusExecuting,
		models.TaskStatusReview,
		models.TaskStatusPRCreated,
		models.TaskStatusDone,
	} {
		var err error
		task, err = svc.Transition(ctx, task.ID, to)
		require.NoError(t, err)
	}
	assert.NotNil(t, task.CompletedAt)

	_, err := svc.Transition(ctx, task.ID, models.TaskStatusPending)
	var invalid *models.InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
}

func TestTaskService_TransitionFailedRecordsError(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewTaskService(client)

	task := createTask(t, svc)
	task, err := svc.TransitionFailed(ctx, task.ID, "decompose job exhausted retries")
	require.NoError(t, err)
	assert.Equal(t, "failed", string(task.Status))
	require.NotNil(t, task.ErrorMessage)
	assert.Equal(t, "decompose job exhausted retries", *task.ErrorMessage)

	// failed -> pending is the retry path.
	task, err = svc.Transition(ctx, task.ID, models.TaskStatusPending)
	require.NoError(t, err)
	assert.Equal(t, "pending", string(task.Status))
}
