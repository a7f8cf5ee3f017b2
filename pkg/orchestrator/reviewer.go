package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/conductor-ci/conductor/ent"
	"github.com/conductor-ci/conductor/pkg/agent"
	"github.com/conductor-ci/conductor/pkg/config"
	"github.com/conductor-ci/conductor/pkg/github"
	"github.com/conductor-ci/conductor/pkg/models"
	"github.com/conductor-ci/conductor/pkg/services"
	"github.com/conductor-ci/conductor/pkg/workspace"
)

// fileDiff is one changed file presented to the review agent: a patch
// when the compare endpoint delivered one, full content otherwise.
type fileDiff struct {
	Path    string
	Patch   string
	Content string
}

// Reviewer runs one review iteration over a task's pushed branch.
type Reviewer struct {
	forge      *github.Client
	runner     *agent.Runner
	runs       *services.RunService
	reviews    *services.ReviewService
	subtasks   *services.SubtaskService
	workspaces *workspace.Manager
	agentCfg   config.AgentCLIConfig
	logger     *slog.Logger
}

// NewReviewer wires a reviewer.
func NewReviewer(forge *github.Client, runner *agent.Runner, runs *services.RunService, reviews *services.ReviewService, subtasks *services.SubtaskService, workspaces *workspace.Manager, agentCfg config.AgentCLIConfig, logger *slog.Logger) *Reviewer {
	return &Reviewer{
		forge:      forge,
		runner:     runner,
		runs:       runs,
		reviews:    reviews,
		subtasks:   subtasks,
		workspaces: workspaces,
		agentCfg:   agentCfg,
		logger:     logger.With("component", "reviewer"),
	}
}

// Review performs one iteration: cap check, diff gathering, agent
// invocation, threshold, persistence. The returned outcome always has
// Iteration set.
func (r *Reviewer) Review(ctx context.Context, task *ent.Task, ws *workspace.Workspace, repoCfg *config.RepoConfig) (*models.ReviewOutcome, error) {
	logger := r.logger.With("task_id", task.ID)

	previous, err := r.reviews.CountByTask(ctx, task.ID)
	if err != nil {
		return nil, err
	}
	iteration := previous + 1

	if iteration > repoCfg.Workflow.MaxIterations {
		outcome := &models.ReviewOutcome{
			Result:    models.ReviewFailed,
			Iteration: iteration,
			Summary:   "Maximum review iterations reached",
		}
		if _, err := r.reviews.RecordReview(ctx, task.ID, "", outcome); err != nil {
			return nil, err
		}
		logger.Warn("Review iteration cap reached", "iteration", iteration)
		return outcome, nil
	}

	run, err := r.runs.CreateRun(ctx, models.CreateRunRequest{
		TaskID: task.ID,
		Type:   models.RunTypeCodeReview,
		Model:  repoCfg.Agents.CodeReview.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("record review run: %w", err)
	}
	if err := r.runs.MarkRunning(ctx, run.ID); err != nil {
		return nil, err
	}

	diffs, err := r.gatherDiffs(ctx, task, ws)
	if err != nil {
		_ = r.runs.FailRun(ctx, run.ID, models.RunStats{Log: err.Error()})
		return nil, err
	}
	if len(diffs) == 0 {
		// Nothing changed; an empty change set passes trivially.
		outcome := &models.ReviewOutcome{
			Result:    models.ReviewApproved,
			Iteration: iteration,
			Summary:   "No changes to review",
		}
		if err := r.runs.CompleteRun(ctx, run.ID, models.RunStats{Log: outcome.Summary}); err != nil {
			return nil, err
		}
		if _, err := r.reviews.RecordReview(ctx, task.ID, run.ID, outcome); err != nil {
			return nil, err
		}
		return outcome, nil
	}

	out, err := r.runner.Run(ctx, agent.RunOptions{
		WorkDir:      ws.Path,
		Prompt:       buildReviewPrompt(task, diffs),
		SystemPrompt: reviewSystemPrompt,
		Model:        repoCfg.Agents.CodeReview.Model,
		MaxTurns:     repoCfg.Agents.CodeReview.MaxTurns,
		Timeout:      r.agentCfg.DefaultTimeout,
	})
	if err != nil {
		settleRunError(ctx, r.runs, run.ID, out, err)
		return nil, fmt.Errorf("review agent run: %w", err)
	}
	if !out.Success {
		_ = r.runs.FailRun(ctx, run.ID, runStats(out))
		return nil, fmt.Errorf("review agent exited with code %d", out.ExitCode)
	}

	outcome, err := parseReviewOutcome(out.Result)
	if err != nil {
		_ = r.runs.FailRun(ctx, run.ID, runStats(out))
		return nil, err
	}
	outcome.Iteration = iteration

	// Pass threshold: reviews with no blocking errors are approved
	// regardless of the agent's verdict.
	if outcome.ErrorCount() <= repoCfg.Workflow.PassThreshold {
		outcome.Result = models.ReviewApproved
	}

	if err := r.runs.CompleteRun(ctx, run.ID, runStats(out)); err != nil {
		return nil, err
	}
	if _, err := r.reviews.RecordReview(ctx, task.ID, run.ID, outcome); err != nil {
		return nil, err
	}

	logger.Info("Review completed", "iteration", iteration,
		"result", outcome.Result, "issues", len(outcome.Issues))
	return outcome, nil
}

// gatherDiffs collects the change set: compare-commits patches when the
// endpoint works, full file contents from the workspace otherwise.
func (r *Reviewer) gatherDiffs(ctx context.Context, task *ent.Task, ws *workspace.Workspace) ([]fileDiff, error) {
	cmp, err := r.forge.CompareCommits(ctx, task.InstallationID, task.RepositoryFullName, ws.BaseBranch, ws.BranchName)
	if err == nil {
		diffs := make([]fileDiff, 0, len(cmp.Files))
		for _, f := range cmp.Files {
			diffs = append(diffs, fileDiff{Path: f.Filename, Patch: f.Patch})
		}
		return diffs, nil
	}
	r.logger.Warn("Compare endpoint failed, falling back to workspace files",
		"task_id", task.ID, "error", err)

	files, err := r.subtasks.UniqueModifiedFiles(ctx, task.ID)
	if err != nil {
		return nil, err
	}
	var diffs []fileDiff
	for _, path := range files {
		content, err := r.workspaces.ReadFile(ws, path)
		if err != nil {
			// Deleted files still count as part of the change set.
			content = fmt.Sprintf("(file unavailable: %v)", err)
		}
		diffs = append(diffs, fileDiff{Path: path, Content: content})
	}
	return diffs, nil
}

// parseReviewOutcome decodes the review agent's JSON verdict.
func parseReviewOutcome(response string) (*models.ReviewOutcome, error) {
	block := extractJSONBlock(response)
	if block == "" {
		return nil, fmt.Errorf("review response contains no JSON block")
	}
	var outcome models.ReviewOutcome
	if err := json.Unmarshal([]byte(block), &outcome); err != nil {
		return nil, fmt.Errorf("decode review outcome: %w", err)
	}
	if outcome.Result != models.ReviewApproved && outcome.Result != models.ReviewChangesRequested {
		return nil, fmt.Errorf("review result %q is not approved or changes_requested", outcome.Result)
	}
	return &outcome, nil
}
