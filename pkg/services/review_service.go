package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/conductor-ci/conductor/ent"
	"github.com/conductor-ci/conductor/ent/codereview"
	"github.com/conductor-ci/conductor/pkg/models"
)

// ReviewService manages code review rows. Iterations are consecutive
// integers starting at 1, strictly monotonic per task; the unique
// (task_id, iteration) index backs that invariant.
type ReviewService struct {
	client *ent.Client
}

// NewReviewService creates a new ReviewService.
func NewReviewService(client *ent.Client) *ReviewService {
	return &ReviewService{client: client}
}

// CountByTask returns the number of review passes recorded for a task.
func (s *ReviewService) CountByTask(ctx context.Context, taskID string) (int, error) {
	n, err := s.client.CodeReview.Query().
		Where(codereview.TaskIDEQ(taskID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	return n, nil
}

// RecordReview persists one review pass.
func (s *ReviewService) RecordReview(ctx context.Context, taskID, agentRunID string, outcome *models.ReviewOutcome) (*ent.CodeReview, error) {
	if outcome.Iteration < 1 {
		return nil, NewValidationError("iteration", "must be >= 1")
	}

	issues := outcome.Issues
	if issues == nil {
		issues = []models.ReviewIssue{}
	}

	create := s.client.CodeReview.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetResult(codereview.Result(outcome.Result)).
		SetIteration(outcome.Iteration).
		SetSummary(outcome.Summary).
		SetIssues(issues)
	if agentRunID != "" {
		create.SetAgentRunID(agentRunID)
	}

	review, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to record review: %w", err)
	}
	return review, nil
}

// ListByTask returns a task's reviews ordered by iteration.
func (s *ReviewService) ListByTask(ctx context.Context, taskID string) ([]*ent.CodeReview, error) {
	reviews, err := s.client.CodeReview.Query().
		Where(codereview.TaskIDEQ(taskID)).
		Order(ent.Asc(codereview.FieldIteration)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}
