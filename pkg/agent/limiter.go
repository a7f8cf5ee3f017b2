package agent

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// DefaultMaxParallel bounds parallel invocations per key when the
// config sets none.
const DefaultMaxParallel = 5

// Limiter bounds concurrent agent invocations per key, typically one
// key per repository. Queue-level concurrency caps the whole server;
// the limiter enforces each repository's own maxParallel below that.
type Limiter struct {
	mu    sync.Mutex
	byKey map[string]*semaphore.Weighted
}

// NewLimiter creates an empty limiter.
func NewLimiter() *Limiter {
	return &Limiter{byKey: map[string]*semaphore.Weighted{}}
}

// Acquire blocks until a slot for key is free, then returns the release
// function. The weight recorded for a key on first use wins; later
// calls with a different max reuse the existing semaphore.
func (l *Limiter) Acquire(ctx context.Context, key string, max int) (func(), error) {
	if max < 1 {
		max = DefaultMaxParallel
	}

	l.mu.Lock()
	sem, ok := l.byKey[key]
	if !ok {
		sem = semaphore.NewWeighted(int64(max))
		l.byKey[key] = sem
	}
	l.mu.Unlock()

	if err := sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	return func() { sem.Release(1) }, nil
}
