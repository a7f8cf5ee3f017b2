package workspace

import "sync"

// taskLocks serialises source-control commands per task id. The lock
// is in-process: a single worker process owns a given task's subtasks.
// Entries are refcounted so a waiter never races a removal onto a
// second mutex for the same task.
type taskLocks struct {
	mu    sync.Mutex
	locks map[string]*taskLock
}

type taskLock struct {
	mu   sync.Mutex
	refs int
}

func newTaskLocks() *taskLocks {
	return &taskLocks{locks: map[string]*taskLock{}}
}

// acquire blocks until the task's lock is held and returns the unlock
// function. The map entry is dropped when the last holder or waiter
// releases.
func (l *taskLocks) acquire(taskID string) func() {
	l.mu.Lock()
	entry, ok := l.locks[taskID]
	if !ok {
		entry = &taskLock{}
		l.locks[taskID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()
		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, taskID)
		}
		l.mu.Unlock()
	}
}
