package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/conductor-ci/conductor/ent"
	"github.com/conductor-ci/conductor/ent/subtask"
	"github.com/conductor-ci/conductor/pkg/models"
)

// SubtaskService manages subtask rows. Only the subtask processor
// mutates subtask status and files_modified.
type SubtaskService struct {
	client *ent.Client
}

// NewSubtaskService creates a new SubtaskService.
func NewSubtaskService(client *ent.Client) *SubtaskService {
	return &SubtaskService{client: client}
}

// CreateSubtask inserts one planned subtask in state pending.
func (s *SubtaskService) CreateSubtask(ctx context.Context, req models.CreateSubtaskRequest) (*ent.Subtask, error) {
	if req.TaskID == "" {
		return nil, NewValidationError("task_id", "required")
	}
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}

	path := req.SubprojectPath
	if path == "" {
		path = "."
	}

	builder := s.client.Subtask.Create().
		SetID(uuid.New().String()).
		SetTaskID(req.TaskID).
		SetSubprojectPath(path).
		SetTitle(req.Title).
		SetDescription(req.Description).
		SetStatus(subtask.StatusPending)

	if len(req.DependsOn) > 0 {
		builder.SetDependsOn(req.DependsOn)
	}

	st, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create subtask: %w", err)
	}
	return st, nil
}

// GetSubtask retrieves a subtask by ID.
func (s *SubtaskService) GetSubtask(ctx context.Context, id string) (*ent.Subtask, error) {
	st, err := s.client.Subtask.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get subtask: %w", err)
	}
	return st, nil
}

// ListByTask returns all subtasks of a task, oldest first.
func (s *SubtaskService) ListByTask(ctx context.Context, taskID string) ([]*ent.Subtask, error) {
	subtasks, err := s.client.Subtask.Query().
		Where(subtask.TaskIDEQ(taskID)).
		Order(ent.Asc(subtask.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subtasks: %w", err)
	}
	return subtasks, nil
}

// Transition moves a subtask along one edge of its state graph.
// started_at is recorded once on entry to running; completed_at on the
// terminal states.
func (s *SubtaskService) Transition(ctx context.Context, id string, to models.SubtaskStatus) (*ent.Subtask, error) {
	st, err := s.GetSubtask(ctx, id)
	if err != nil {
		return nil, err
	}

	from := models.SubtaskStatus(st.Status)
	if err := models.CheckSubtaskTransition(from, to); err != nil {
		return nil, err
	}

	now := time.Now()
	upd := s.client.Subtask.Update().
		Where(subtask.IDEQ(id), subtask.StatusEQ(subtask.Status(from))).
		SetStatus(subtask.Status(to)).
		SetUpdatedAt(now)

	if to == models.SubtaskStatusRunning && st.StartedAt == nil {
		upd.SetStartedAt(now)
	}
	if to == models.SubtaskStatusCompleted || to == models.SubtaskStatusFailed {
		upd.SetCompletedAt(now)
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to transition subtask: %w", err)
	}
	if n == 0 {
		return nil, ErrConcurrentModification
	}
	return s.GetSubtask(ctx, id)
}

// Complete marks the subtask completed with its modified file list.
func (s *SubtaskService) Complete(ctx context.Context, id string, filesModified []string) (*ent.Subtask, error) {
	if filesModified == nil {
		filesModified = []string{}
	}
	if err := s.client.Subtask.UpdateOneID(id).
		SetFilesModified(filesModified).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to record modified files: %w", err)
	}
	return s.Transition(ctx, id, models.SubtaskStatusCompleted)
}

// Fail marks the subtask failed with the error message.
func (s *SubtaskService) Fail(ctx context.Context, id, errMsg string) (*ent.Subtask, error) {
	if err := s.client.Subtask.UpdateOneID(id).
		SetErrorMessage(errMsg).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to record subtask error: %w", err)
	}
	return s.Transition(ctx, id, models.SubtaskStatusFailed)
}

// SetAgentRunID links the subtask to its latest agent run.
func (s *SubtaskService) SetAgentRunID(ctx context.Context, id, runID string) error {
	if err := s.client.Subtask.UpdateOneID(id).
		SetAgentRunID(runID).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set agent run id: %w", err)
	}
	return nil
}

// UniqueModifiedFiles returns the union of files_modified across all
// subtasks of a task.
func (s *SubtaskService) UniqueModifiedFiles(ctx context.Context, taskID string) ([]string, error) {
	subtasks, err := s.ListByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	var files []string
	for _, st := range subtasks {
		for _, f := range st.FilesModified {
			if _, ok := seen[f]; !ok {
				seen[f] = struct{}{}
				files = append(files, f)
			}
		}
	}
	return files, nil
}
