package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductor-ci/conductor/pkg/masking"
	"github.com/conductor-ci/conductor/pkg/models"
	util "github.com/conductor-ci/conductor/test/util"
)

func TestRunService_TimeoutRunPersistsStatus(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	tasks := NewTaskService(client)
	runs := NewRunService(client, masking.NewService())

	task := createTask(t, tasks)
	run, err := runs.CreateRun(ctx, models.CreateRunRequest{
		TaskID: task.ID,
		Type:   models.RunTypeSubAgent,
		Model:  "sonnet",
	})
	require.NoError(t, err)
	require.NoError(t, runs.MarkRunning(ctx, run.ID))

	require.NoError(t, runs.TimeoutRun(ctx, run.ID, models.RunStats{
		InputTokens: 12, OutputTokens: 3, Log: "agent run timed out after 30m0s",
	}))

	row, err := runs.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, "timeout", string(row.Status))
	assert.Equal(t, int64(12), row.InputTokens)
	assert.Contains(t, row.Log, "timed out")
	assert.NotNil(t, row.CompletedAt)
}
