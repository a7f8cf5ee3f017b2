package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/conductor-ci/conductor/ent"
	"github.com/conductor-ci/conductor/ent/subtask"
	"github.com/conductor-ci/conductor/ent/task"
	"github.com/conductor-ci/conductor/pkg/metrics"
	"github.com/conductor-ci/conductor/pkg/models"
)

// TaskService manages task lifecycle and state transitions. It is the
// only component that mutates task status outside of webhook intake's
// return-to-pending path, which also goes through Transition.
type TaskService struct {
	client *ent.Client
}

// NewTaskService creates a new TaskService.
func NewTaskService(client *ent.Client) *TaskService {
	return &TaskService{client: client}
}

// CreateTask inserts a new pending task.
func (s *TaskService) CreateTask(ctx context.Context, req models.CreateTaskRequest) (*ent.Task, error) {
	if req.RepositoryFullName == "" {
		return nil, NewValidationError("repository_full_name", "required")
	}
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}

	builder := s.client.Task.Create().
		SetID(uuid.New().String()).
		SetRepositoryFullName(req.RepositoryFullName).
		SetRepositoryID(req.RepositoryID).
		SetInstallationID(req.InstallationID).
		SetTitle(req.Title).
		SetDescription(req.Description).
		SetStatus(task.StatusPending)

	if req.ProjectItemID != "" {
		builder.SetGithubProjectItemID(req.ProjectItemID)
	}
	if req.ProjectID != "" {
		builder.SetGithubProjectID(req.ProjectID)
	}
	if req.ParentTaskID != "" {
		builder.SetParentTaskID(req.ParentTaskID)
	}
	if req.LinkedIssueNumber > 0 {
		builder.SetLinkedGithubIssueNumber(req.LinkedIssueNumber)
	}
	if len(req.ChildDependencies) > 0 {
		builder.SetChildDependencies(req.ChildDependencies)
	}

	t, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return t, nil
}

// GetTask retrieves a task by ID.
func (s *TaskService) GetTask(ctx context.Context, id string) (*ent.Task, error) {
	t, err := s.client.Task.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// GetTaskByProjectItemID looks up a task by its board item ID.
func (s *TaskService) GetTaskByProjectItemID(ctx context.Context, itemID string) (*ent.Task, error) {
	t, err := s.client.Task.Query().
		Where(task.GithubProjectItemIDEQ(itemID)).
		Order(ent.Desc(task.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query task by item id: %w", err)
	}
	return t, nil
}

// ListChildren returns the child tasks of an epic, oldest first.
func (s *TaskService) ListChildren(ctx context.Context, parentID string) ([]*ent.Task, error) {
	children, err := s.client.Task.Query().
		Where(task.ParentTaskIDEQ(parentID)).
		Order(ent.Asc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list children: %w", err)
	}
	return children, nil
}

// RecentTasks returns the most recent tasks for a repository.
func (s *TaskService) RecentTasks(ctx context.Context, repoFullName string, limit int) ([]*ent.Task, error) {
	tasks, err := s.client.Task.Query().
		Where(task.RepositoryFullNameEQ(repoFullName)).
		Order(ent.Desc(task.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent tasks: %w", err)
	}
	return tasks, nil
}

// Transition moves a task along one edge of the state graph. Invalid
// edges return an InvalidTransitionError; a lost race on the current
// status returns ErrConcurrentModification. started_at is set on first
// entry to decomposing, completed_at on done or failed.
func (s *TaskService) Transition(ctx context.Context, id string, to models.TaskStatus) (*ent.Task, error) {
	t, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	from := models.TaskStatus(t.Status)
	if err := models.CheckTaskTransition(from, to); err != nil {
		return nil, err
	}

	now := time.Now()
	upd := s.client.Task.Update().
		Where(task.IDEQ(id), task.StatusEQ(task.Status(from))).
		SetStatus(task.Status(to)).
		SetUpdatedAt(now)

	if to == models.TaskStatusDecomposing && t.StartedAt == nil {
		upd.SetStartedAt(now)
	}
	if to == models.TaskStatusDone || to == models.TaskStatusFailed {
		upd.SetCompletedAt(now)
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to transition task: %w", err)
	}
	if n == 0 {
		return nil, ErrConcurrentModification
	}

	metrics.TaskTransitions.WithLabelValues(string(to)).Inc()
	if (to == models.TaskStatusDone || to == models.TaskStatusFailed) && t.StartedAt != nil {
		metrics.TaskDuration.Observe(now.Sub(*t.StartedAt).Seconds())
	}
	return s.GetTask(ctx, id)
}

// TransitionFailed moves the task to failed and records the error text.
func (s *TaskService) TransitionFailed(ctx context.Context, id, errMsg string) (*ent.Task, error) {
	t, err := s.Transition(ctx, id, models.TaskStatusFailed)
	if err != nil {
		return nil, err
	}
	if errMsg != "" {
		t, err = t.Update().SetErrorMessage(errMsg).Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to record task error: %w", err)
		}
	}
	return t, nil
}

// SetBranchName persists the workspace's branch name onto the task.
func (s *TaskService) SetBranchName(ctx context.Context, id, branch string) error {
	return s.update(ctx, id, func(u *ent.TaskUpdateOne) { u.SetBranchName(branch) })
}

// SetHumanReviewQuestion stores the agent's clarification question.
func (s *TaskService) SetHumanReviewQuestion(ctx context.Context, id, question string) error {
	return s.update(ctx, id, func(u *ent.TaskUpdateOne) { u.SetHumanReviewQuestion(question) })
}

// SetHumanReviewAnswer stores the human's answer collected from the board.
func (s *TaskService) SetHumanReviewAnswer(ctx context.Context, id, answer string) error {
	return s.update(ctx, id, func(u *ent.TaskUpdateOne) { u.SetHumanReviewAnswer(answer) })
}

// SetPullRequest records the opened PR's number and URL on the task.
func (s *TaskService) SetPullRequest(ctx context.Context, id string, number int, url string) error {
	return s.update(ctx, id, func(u *ent.TaskUpdateOne) {
		u.SetPullRequestNumber(number).SetPullRequestURL(url)
	})
}

// StoreReviewIssues serialises the review issues into error_message for
// the fix stage to pick up.
func (s *TaskService) StoreReviewIssues(ctx context.Context, id string, issues []models.ReviewIssue) error {
	data, err := json.Marshal(issues)
	if err != nil {
		return fmt.Errorf("failed to marshal review issues: %w", err)
	}
	return s.update(ctx, id, func(u *ent.TaskUpdateOne) { u.SetErrorMessage(string(data)) })
}

// LoadReviewIssues parses the issues previously stored by StoreReviewIssues.
func (s *TaskService) LoadReviewIssues(ctx context.Context, id string) ([]models.ReviewIssue, error) {
	t, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.ErrorMessage == nil || *t.ErrorMessage == "" {
		return nil, nil
	}
	var issues []models.ReviewIssue
	if err := json.Unmarshal([]byte(*t.ErrorMessage), &issues); err != nil {
		return nil, fmt.Errorf("failed to parse stored review issues: %w", err)
	}
	return issues, nil
}

// ClearErrorMessage removes the stored error or issue list.
func (s *TaskService) ClearErrorMessage(ctx context.Context, id string) error {
	return s.update(ctx, id, func(u *ent.TaskUpdateOne) { u.ClearErrorMessage() })
}

// MarkEpic flags the task as an epic after decomposition.
func (s *TaskService) MarkEpic(ctx context.Context, id string) error {
	return s.update(ctx, id, func(u *ent.TaskUpdateOne) { u.SetIsEpic(true) })
}

// IncrementRetry bumps the retry counter (operator retry command).
func (s *TaskService) IncrementRetry(ctx context.Context, id string) error {
	return s.update(ctx, id, func(u *ent.TaskUpdateOne) { u.AddRetryCount(1) })
}

// AreAllSubtasksComplete is true iff the task has at least one subtask
// and every subtask is completed.
func (s *TaskService) AreAllSubtasksComplete(ctx context.Context, taskID string) (bool, error) {
	total, err := s.client.Subtask.Query().
		Where(subtask.TaskIDEQ(taskID)).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count subtasks: %w", err)
	}
	if total == 0 {
		return false, nil
	}
	completed, err := s.client.Subtask.Query().
		Where(subtask.TaskIDEQ(taskID), subtask.StatusEQ(subtask.StatusCompleted)).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count completed subtasks: %w", err)
	}
	return completed == total, nil
}

func (s *TaskService) update(ctx context.Context, id string, fn func(*ent.TaskUpdateOne)) error {
	u := s.client.Task.UpdateOneID(id)
	fn(u)
	if err := u.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}
