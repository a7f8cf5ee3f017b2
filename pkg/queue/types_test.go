package queue

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductor-ci/conductor/ent"
	"github.com/conductor-ci/conductor/pkg/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestJobIDs(t *testing.T) {
	assert.Equal(t, "decompose-abc123", DecomposeJobID("abc123"))
	assert.Equal(t, "check-complete-abc123", CheckCompleteJobID("abc123"))
	assert.Equal(t, "fix-abc123-iter-2", FixJobID("abc123", 2))
	assert.Equal(t, "create-pr-abc123", CreatePRJobID("abc123"))
	assert.Equal(t, "smoke-test-abc123", SmokeTestJobID("abc123"))
	assert.Equal(t, "subtask-st-9", SubtaskJobID("st-9"))
	assert.Equal(t, "notification-n-1", NotificationJobID("n-1"))
}

func TestSaltedJobIDsDiffer(t *testing.T) {
	a := SaltedReviewJobID("abc", time.Unix(0, 1))
	b := SaltedReviewJobID("abc", time.Unix(0, 2))
	assert.NotEqual(t, a, b)
	assert.Contains(t, a, "review-abc-")
}

func TestDecodePayload(t *testing.T) {
	raw, err := json.Marshal(TaskJobPayload{TaskID: "t-1", Action: models.ActionDecompose})
	require.NoError(t, err)
	var payloadMap map[string]any
	require.NoError(t, json.Unmarshal(raw, &payloadMap))

	job := &Job{row: &ent.Job{JobID: "decompose-t-1", Queue: "tasks", Payload: payloadMap}}

	var decoded TaskJobPayload
	require.NoError(t, job.DecodePayload(&decoded))
	assert.Equal(t, "t-1", decoded.TaskID)
	assert.Equal(t, models.ActionDecompose, decoded.Action)
}
