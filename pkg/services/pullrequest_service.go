package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/conductor-ci/conductor/ent"
	"github.com/conductor-ci/conductor/ent/pullrequest"
	"github.com/conductor-ci/conductor/pkg/models"
)

// PullRequestService records the pull requests opened for tasks and
// mirrors their external state.
type PullRequestService struct {
	client *ent.Client
}

// NewPullRequestService creates a new PullRequestService.
func NewPullRequestService(client *ent.Client) *PullRequestService {
	return &PullRequestService{client: client}
}

// RecordPullRequest persists a newly opened PR.
func (s *PullRequestService) RecordPullRequest(ctx context.Context, req models.CreatePullRequestRequest) (*ent.PullRequest, error) {
	if req.TaskID == "" {
		return nil, NewValidationError("task_id", "required")
	}
	if req.Number <= 0 {
		return nil, NewValidationError("number", "must be positive")
	}

	pr, err := s.client.PullRequest.Create().
		SetID(uuid.New().String()).
		SetTaskID(req.TaskID).
		SetRepositoryFullName(req.RepositoryFullName).
		SetNumber(req.Number).
		SetTitle(req.Title).
		SetBody(req.Body).
		SetBranchName(req.BranchName).
		SetHeadSha(req.HeadSHA).
		SetURL(req.URL).
		SetStatus(pullrequest.StatusOpen).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to record pull request: %w", err)
	}
	return pr, nil
}

// GetByRepoNumber looks up a PR by repository and number.
func (s *PullRequestService) GetByRepoNumber(ctx context.Context, repoFullName string, number int) (*ent.PullRequest, error) {
	pr, err := s.client.PullRequest.Query().
		Where(
			pullrequest.RepositoryFullNameEQ(repoFullName),
			pullrequest.NumberEQ(number),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query pull request: %w", err)
	}
	return pr, nil
}

// GetByTask returns the most recent PR recorded for a task.
func (s *PullRequestService) GetByTask(ctx context.Context, taskID string) (*ent.PullRequest, error) {
	pr, err := s.client.PullRequest.Query().
		Where(pullrequest.TaskIDEQ(taskID)).
		Order(ent.Desc(pullrequest.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query pull request: %w", err)
	}
	return pr, nil
}

// MarkMerged sets the PR status to merged. Idempotent.
func (s *PullRequestService) MarkMerged(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, pullrequest.StatusMerged)
}

// MarkClosed sets the PR status to closed (without merge). Idempotent.
func (s *PullRequestService) MarkClosed(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, pullrequest.StatusClosed)
}

// UpdateHeadSHA records a new head commit on PR synchronize events.
func (s *PullRequestService) UpdateHeadSHA(ctx context.Context, id, headSHA string) error {
	if err := s.client.PullRequest.UpdateOneID(id).
		SetHeadSha(headSHA).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update head sha: %w", err)
	}
	return nil
}

// SetReviewsPassed records the reviews-passed flag.
func (s *PullRequestService) SetReviewsPassed(ctx context.Context, id string, passed bool) error {
	if err := s.client.PullRequest.UpdateOneID(id).
		SetReviewsPassed(passed).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set reviews passed: %w", err)
	}
	return nil
}

func (s *PullRequestService) setStatus(ctx context.Context, id string, status pullrequest.Status) error {
	if err := s.client.PullRequest.UpdateOneID(id).
		SetStatus(status).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update pull request status: %w", err)
	}
	return nil
}
