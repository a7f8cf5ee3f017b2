package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/conductor-ci/conductor/pkg/config"
)

func TestPollIntervalJitter(t *testing.T) {
	cfg := config.DefaultQueueConfig()
	cfg.PollInterval = 1 * time.Second
	cfg.PollIntervalJitter = 500 * time.Millisecond
	w := NewWorker("pod-a/tasks-0", "tasks", nil, nil, *cfg, testLogger())

	// Poll interval should be within [base - jitter, base + jitter]
	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond)
		assert.LessOrEqual(t, d, 1500*time.Millisecond)
	}
}

func TestPollIntervalNoJitter(t *testing.T) {
	cfg := config.DefaultQueueConfig()
	cfg.PollInterval = 1 * time.Second
	cfg.PollIntervalJitter = 0
	w := NewWorker("pod-a/tasks-0", "tasks", nil, nil, *cfg, testLogger())

	for i := 0; i < 10; i++ {
		assert.Equal(t, 1*time.Second, w.pollInterval())
	}
}

func TestBackoff(t *testing.T) {
	base := 5 * time.Second
	cap := 60 * time.Second

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 5 * time.Second},
		{2, 10 * time.Second},
		{3, 20 * time.Second},
		{4, 40 * time.Second},
		{5, 60 * time.Second},
		{10, 60 * time.Second},
		{0, 5 * time.Second},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Backoff(tt.attempt, base, cap),
			"attempt %d", tt.attempt)
	}
}

func TestWorkerID(t *testing.T) {
	assert.Equal(t, "conductor-0/subtasks-3", workerID("conductor-0", "subtasks", 3))
}
