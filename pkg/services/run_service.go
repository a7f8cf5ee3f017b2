package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/conductor-ci/conductor/ent"
	"github.com/conductor-ci/conductor/ent/agentrun"
	"github.com/conductor-ci/conductor/pkg/masking"
	"github.com/conductor-ci/conductor/pkg/metrics"
	"github.com/conductor-ci/conductor/pkg/models"
)

// RunService manages agent run rows and their telemetry. Logs are
// scrubbed through the masker before they touch the database.
type RunService struct {
	client *ent.Client
	masker *masking.Service
}

// NewRunService creates a new RunService.
func NewRunService(client *ent.Client, masker *masking.Service) *RunService {
	return &RunService{client: client, masker: masker}
}

// CreateRun inserts a new run in state starting.
func (s *RunService) CreateRun(ctx context.Context, req models.CreateRunRequest) (*ent.AgentRun, error) {
	if req.TaskID == "" {
		return nil, NewValidationError("task_id", "required")
	}

	builder := s.client.AgentRun.Create().
		SetID(uuid.New().String()).
		SetTaskID(req.TaskID).
		SetRunType(agentrun.RunType(req.Type)).
		SetStatus(agentrun.StatusStarting).
		SetModel(req.Model)

	if req.SubtaskID != "" {
		builder.SetSubtaskID(req.SubtaskID)
	}

	run, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent run: %w", err)
	}
	return run, nil
}

// MarkRunning transitions the run to running.
func (s *RunService) MarkRunning(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, agentrun.StatusRunning)
}

// CompleteRun writes the final telemetry and marks the run completed.
func (s *RunService) CompleteRun(ctx context.Context, id string, stats models.RunStats) error {
	return s.finishWithStatus(ctx, id, agentrun.StatusCompleted, stats)
}

// FailRun marks the run failed, preserving any partial telemetry.
func (s *RunService) FailRun(ctx context.Context, id string, stats models.RunStats) error {
	return s.finishWithStatus(ctx, id, agentrun.StatusFailed, stats)
}

// TimeoutRun marks the run as killed by its wall clock.
func (s *RunService) TimeoutRun(ctx context.Context, id string, stats models.RunStats) error {
	return s.finishWithStatus(ctx, id, agentrun.StatusTimeout, stats)
}

// GetRun retrieves a run by ID.
func (s *RunService) GetRun(ctx context.Context, id string) (*ent.AgentRun, error) {
	run, err := s.client.AgentRun.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent run: %w", err)
	}
	return run, nil
}

// ListByTask returns all runs of a task, oldest first.
func (s *RunService) ListByTask(ctx context.Context, taskID string) ([]*ent.AgentRun, error) {
	runs, err := s.client.AgentRun.Query().
		Where(agentrun.TaskIDEQ(taskID)).
		Order(ent.Asc(agentrun.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agent runs: %w", err)
	}
	return runs, nil
}

func (s *RunService) finishWithStatus(ctx context.Context, id string, status agentrun.Status, stats models.RunStats) error {
	run, err := s.client.AgentRun.UpdateOneID(id).
		SetStatus(status).
		SetInputTokens(stats.InputTokens).
		SetOutputTokens(stats.OutputTokens).
		SetTotalCost(stats.TotalCost).
		SetLog(s.masker.Mask(stats.Log)).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to finish agent run: %w", err)
	}
	metrics.RecordAgentRun(string(run.RunType), string(status),
		stats.InputTokens, stats.OutputTokens, stats.TotalCost)
	return nil
}

func (s *RunService) setStatus(ctx context.Context, id string, status agentrun.Status) error {
	if err := s.client.AgentRun.UpdateOneID(id).SetStatus(status).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update agent run status: %w", err)
	}
	return nil
}
