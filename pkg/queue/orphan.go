package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/conductor-ci/conductor/ent"
	entjob "github.com/conductor-ci/conductor/ent/job"
	"github.com/conductor-ci/conductor/pkg/config"
)

// OrphanDetector returns jobs stuck in running with stale heartbeats
// to pending so another worker can claim them. Covers crashed pods and
// shutdown timeouts.
type OrphanDetector struct {
	client  *ent.Client
	cfg     config.QueueConfig
	logger  *slog.Logger
	stopped chan struct{}
	cancel  context.CancelFunc
}

// NewOrphanDetector creates a detector. Run starts the periodic scan.
func NewOrphanDetector(client *ent.Client, cfg config.QueueConfig, logger *slog.Logger) *OrphanDetector {
	return &OrphanDetector{
		client:  client,
		cfg:     cfg,
		logger:  logger.With("component", "orphan_detector"),
		stopped: make(chan struct{}),
	}
}

// Start launches the periodic scan in a goroutine.
func (d *OrphanDetector) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	go func() {
		defer close(d.stopped)
		d.run(ctx)
	}()
}

// Stop terminates the scan and waits for it to exit.
func (d *OrphanDetector) Stop() {
	if d.cancel != nil {
		d.cancel()
		<-d.stopped
	}
}

func (d *OrphanDetector) run(ctx context.Context) {
	d.logger.Info("Orphan detection started",
		"interval", d.cfg.OrphanDetectionInterval,
		"threshold", d.cfg.OrphanThreshold)

	ticker := time.NewTicker(d.cfg.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("Orphan detection stopped")
			return
		case <-ticker.C:
			if n, err := d.recoverOrphans(ctx); err != nil {
				d.logger.Error("Orphan recovery failed", "error", err)
			} else if n > 0 {
				d.logger.Warn("Recovered orphaned jobs", "count", n)
			}
		}
	}
}

// recoverOrphans resets running jobs whose heartbeat is older than the
// threshold.
func (d *OrphanDetector) recoverOrphans(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-d.cfg.OrphanThreshold)
	n, err := d.client.Job.Update().
		Where(
			entjob.StatusEQ(entjob.StatusRunning),
			entjob.LastHeartbeatAtLT(cutoff),
		).
		SetStatus(entjob.StatusPending).
		SetRunAt(time.Now()).
		SetLastError("recovered after worker heartbeat expired").
		ClearClaimedBy().
		ClearLastHeartbeatAt().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to recover orphaned jobs: %w", err)
	}
	return n, nil
}

// CleanupStartupOrphans reclaims jobs this pod was running when it last
// died. Called once before the pool starts so a restart never strands
// its own work for a full heartbeat threshold.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string, logger *slog.Logger) error {
	n, err := client.Job.Update().
		Where(
			entjob.StatusEQ(entjob.StatusRunning),
			entjob.ClaimedByHasPrefix(podID+"/"),
		).
		SetStatus(entjob.StatusPending).
		SetRunAt(time.Now()).
		SetLastError("recovered after pod restart").
		ClearClaimedBy().
		ClearLastHeartbeatAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to recover jobs from previous run of %s: %w", podID, err)
	}
	if n > 0 {
		logger.Warn("Recovered jobs from previous pod run",
			"pod_id", podID, "count", n)
	}
	return nil
}
