package workspace

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskLocks_SerialisesSameTask(t *testing.T) {
	locks := newTaskLocks()

	unlock := locks.acquire("t1")

	acquired := make(chan struct{})
	go func() {
		u := locks.acquire("t1")
		close(acquired)
		u()
	}()

	select {
	case <-acquired:
		t.Fatal("second acquire succeeded while lock held")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second acquire never completed")
	}
}

func TestTaskLocks_WaiterExcludesFreshAcquire(t *testing.T) {
	locks := newTaskLocks()

	var mu sync.Mutex
	holders := 0
	maxHolders := 0

	hold := func(taskID string) {
		unlock := locks.acquire(taskID)
		mu.Lock()
		holders++
		if holders > maxHolders {
			maxHolders = holders
		}
		mu.Unlock()

		time.Sleep(time.Millisecond)

		mu.Lock()
		holders--
		mu.Unlock()
		unlock()
	}

	// Waiters pile up while the entry is repeatedly dropped and
	// recreated; at no point may two goroutines hold the same task.
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hold("t1")
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxHolders)
}

func TestTaskLocks_EntryDroppedAfterLastRelease(t *testing.T) {
	locks := newTaskLocks()

	u1 := locks.acquire("t1")
	u2 := locks.acquire("t2")
	u1()
	u2()

	locks.mu.Lock()
	defer locks.mu.Unlock()
	require.Empty(t, locks.locks)
}
