package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/conductor-ci/conductor/pkg/config"
)

// Pool runs worker goroutines for every registered queue and owns
// their lifecycle.
type Pool struct {
	podID   string
	service *Service
	cfg     config.QueueConfig
	logger  *slog.Logger

	mu       sync.Mutex
	queues   map[string]registration
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	started  bool
	stopOnce sync.Once
}

type registration struct {
	handler     Handler
	concurrency int
}

// NewPool creates a worker pool for one process (pod).
func NewPool(podID string, service *Service, cfg config.QueueConfig, logger *slog.Logger) *Pool {
	return &Pool{
		podID:   podID,
		service: service,
		cfg:     cfg,
		logger:  logger.With("component", "queue_pool", "pod_id", podID),
		queues:  map[string]registration{},
	}
}

// Register binds a handler to a queue with the given worker count.
// Must be called before Start.
func (p *Pool) Register(queue string, handler Handler, concurrency int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return fmt.Errorf("cannot register queue %s after pool start", queue)
	}
	if _, ok := p.queues[queue]; ok {
		return fmt.Errorf("queue %s already registered", queue)
	}
	if concurrency < 1 {
		return fmt.Errorf("queue %s requires concurrency >= 1, got %d", queue, concurrency)
	}
	p.queues[queue] = registration{handler: handler, concurrency: concurrency}
	return nil
}

// Start launches the workers. The passed context bounds startup only;
// workers run until Stop.
func (p *Pool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return fmt.Errorf("pool already started")
	}
	if len(p.queues) == 0 {
		return fmt.Errorf("no queues registered")
	}

	runCtx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel

	total := 0
	for queue, reg := range p.queues {
		for i := 0; i < reg.concurrency; i++ {
			w := NewWorker(workerID(p.podID, queue, i), queue, p.service, reg.handler, p.cfg, p.logger)
			p.wg.Add(1)
			go func() {
				defer p.wg.Done()
				w.Run(runCtx)
			}()
			total++
		}
	}
	p.started = true
	p.logger.Info("Worker pool started",
		"queues", len(p.queues), "workers", total)
	return nil
}

// Stop cancels polling and waits for in-flight jobs up to the graceful
// shutdown timeout. Jobs still running past the timeout are abandoned
// and recovered later by orphan detection.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		p.mu.Lock()
		cancel := p.cancel
		p.mu.Unlock()
		if cancel == nil {
			return
		}

		p.logger.Info("Stopping worker pool",
			"timeout", p.cfg.GracefulShutdownTimeout)
		cancel()

		done := make(chan struct{})
		go func() {
			p.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			p.logger.Info("Worker pool stopped cleanly")
		case <-time.After(p.cfg.GracefulShutdownTimeout):
			p.logger.Warn("Worker pool shutdown timed out, abandoning in-flight jobs")
		}
	})
}

// Health reports per-queue pending depth for readiness probes.
func (p *Pool) Health(ctx context.Context) map[string]any {
	p.mu.Lock()
	names := make([]string, 0, len(p.queues))
	for q := range p.queues {
		names = append(names, q)
	}
	started := p.started
	p.mu.Unlock()

	depths := map[string]any{}
	for _, q := range names {
		depth, err := p.service.Depth(ctx, q)
		if err != nil {
			depths[q] = map[string]any{"error": err.Error()}
			continue
		}
		depths[q] = map[string]any{"pending": depth}
	}
	return map[string]any{
		"started": started,
		"queues":  depths,
	}
}
