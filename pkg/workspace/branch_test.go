package workspace

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBranchName(t *testing.T) {
	pattern := "conductor/{task_id}/{short_description}"

	tests := []struct {
		name   string
		taskID string
		title  string
		want   string
	}{
		{
			name:   "simple title",
			taskID: "0b1e2d3c-4f5a-6789-abcd-ef0123456789",
			title:  "Add hello function",
			want:   "conductor/0b1e2d3c/add-hello-function",
		},
		{
			name:   "punctuation collapses",
			taskID: "abcdef12-3456",
			title:  "Fix: the (very) broken thing!!",
			want:   "conductor/abcdef12/fix-the-very-broken-thing",
		},
		{
			name:   "empty title falls back",
			taskID: "abcdef123456",
			title:  "???",
			want:   "conductor/abcdef12/task",
		},
		{
			name:   "short id stays whole",
			taskID: "abc",
			title:  "x",
			want:   "conductor/abc/x",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BranchName(pattern, tt.taskID, tt.title))
		})
	}
}

func TestBranchNameDescriptionCap(t *testing.T) {
	long := strings.Repeat("very long title ", 10)
	got := BranchName("conductor/{task_id}/{short_description}", "12345678", long)

	desc := strings.TrimPrefix(got, "conductor/12345678/")
	assert.LessOrEqual(t, len(desc), 50)
	assert.False(t, strings.HasSuffix(desc, "-"))
	assert.False(t, strings.HasPrefix(desc, "-"))
}

func TestTaskLocksSerialise(t *testing.T) {
	locks := newTaskLocks()

	unlock := locks.acquire("t-1")
	acquired := make(chan struct{})
	go func() {
		u := locks.acquire("t-1")
		close(acquired)
		u()
	}()

	time.Sleep(50 * time.Millisecond)
	select {
	case <-acquired:
		t.Fatal("second acquire succeeded while lock held")
	default:
	}

	unlock()
	<-acquired

	// A different task id never blocks.
	u2 := locks.acquire("t-2")
	u2()
}
