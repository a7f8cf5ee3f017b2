package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidTaskTransition(t *testing.T) {
	valid := []struct{ from, to TaskStatus }{
		{TaskStatusPending, TaskStatusDecomposing},
		{TaskStatusDecomposing, TaskStatusExecuting},
		{TaskStatusDecomposing, TaskStatusHumanReview},
		{TaskStatusExecuting, TaskStatusReview},
		{TaskStatusReview, TaskStatusExecuting},
		{TaskStatusReview, TaskStatusPRCreated},
		{TaskStatusHumanReview, TaskStatusPending},
		{TaskStatusPRCreated, TaskStatusPending},
		{TaskStatusPRCreated, TaskStatusDone},
		{TaskStatusFailed, TaskStatusPending},
	}
	for _, tc := range valid {
		assert.True(t, ValidTaskTransition(tc.from, tc.to),
			"%s -> %s should be valid", tc.from, tc.to)
	}

	invalid := []struct{ from, to TaskStatus }{
		{TaskStatusPending, TaskStatusExecuting},
		{TaskStatusPending, TaskStatusDone},
		{TaskStatusDone, TaskStatusPending},
		{TaskStatusDone, TaskStatusFailed},
		{TaskStatusExecuting, TaskStatusDecomposing},
		{TaskStatusFailed, TaskStatusExecuting},
	}
	for _, tc := range invalid {
		assert.False(t, ValidTaskTransition(tc.from, tc.to),
			"%s -> %s should be invalid", tc.from, tc.to)
	}
}

func TestEveryTaskStatusCanFail(t *testing.T) {
	for from := range taskTransitions {
		if from == TaskStatusDone || from == TaskStatusFailed {
			continue
		}
		assert.True(t, ValidTaskTransition(from, TaskStatusFailed),
			"%s should be able to fail", from)
	}
}

func TestCheckTaskTransition(t *testing.T) {
	require.NoError(t, CheckTaskTransition(TaskStatusPending, TaskStatusDecomposing))

	err := CheckTaskTransition(TaskStatusDone, TaskStatusPending)
	require.Error(t, err)

	var ite *InvalidTransitionError
	require.ErrorAs(t, err, &ite)
	assert.Equal(t, "task", ite.Entity)
	assert.Equal(t, "invalid task transition: done -> pending", err.Error())
}

func TestValidSubtaskTransition(t *testing.T) {
	assert.True(t, ValidSubtaskTransition(SubtaskStatusPending, SubtaskStatusQueued))
	assert.True(t, ValidSubtaskTransition(SubtaskStatusQueued, SubtaskStatusRunning))
	assert.True(t, ValidSubtaskTransition(SubtaskStatusRunning, SubtaskStatusRunning),
		"running -> running is legal for metadata updates")
	assert.True(t, ValidSubtaskTransition(SubtaskStatusRunning, SubtaskStatusCompleted))
	assert.True(t, ValidSubtaskTransition(SubtaskStatusFailed, SubtaskStatusPending))

	assert.False(t, ValidSubtaskTransition(SubtaskStatusCompleted, SubtaskStatusRunning))
	assert.False(t, ValidSubtaskTransition(SubtaskStatusQueued, SubtaskStatusCompleted))
}

func TestIsTerminalTaskStatus(t *testing.T) {
	assert.True(t, IsTerminalTaskStatus(TaskStatusDone))
	assert.False(t, IsTerminalTaskStatus(TaskStatusFailed), "failed can retry")
	assert.False(t, IsTerminalTaskStatus(TaskStatusPending))
}
