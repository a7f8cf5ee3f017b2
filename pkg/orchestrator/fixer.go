package orchestrator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/conductor-ci/conductor/ent"
	"github.com/conductor-ci/conductor/pkg/agent"
	"github.com/conductor-ci/conductor/pkg/config"
	"github.com/conductor-ci/conductor/pkg/models"
	"github.com/conductor-ci/conductor/pkg/services"
	"github.com/conductor-ci/conductor/pkg/workspace"
)

// FixResult is what one fix pass produced.
type FixResult struct {
	Success       bool
	FilesModified []string
	InputTokens   int
	OutputTokens  int
	TotalCost     float64
}

// Fixer drives one remediation pass over stored review issues.
type Fixer struct {
	runner     *agent.Runner
	runs       *services.RunService
	workspaces *workspace.Manager
	logger     *slog.Logger
}

// NewFixer wires a fixer.
func NewFixer(runner *agent.Runner, runs *services.RunService, workspaces *workspace.Manager, logger *slog.Logger) *Fixer {
	return &Fixer{
		runner:     runner,
		runs:       runs,
		workspaces: workspaces,
		logger:     logger.With("component", "fixer"),
	}
}

// Fix addresses the given issues in the workspace. Files modified are
// the union of runner-reported paths and what the working tree shows.
func (f *Fixer) Fix(ctx context.Context, task *ent.Task, ws *workspace.Workspace, issues []models.ReviewIssue, repoCfg *config.RepoConfig) (*FixResult, error) {
	if len(issues) == 0 {
		return &FixResult{Success: true}, nil
	}

	run, err := f.runs.CreateRun(ctx, models.CreateRunRequest{
		TaskID: task.ID,
		Type:   models.RunTypeSubAgent,
		Model:  repoCfg.Agents.SubAgent.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("record fix run: %w", err)
	}
	if err := f.runs.MarkRunning(ctx, run.ID); err != nil {
		return nil, err
	}

	out, err := f.runner.Run(ctx, agent.RunOptions{
		WorkDir:      ws.Path,
		Prompt:       buildFixPrompt(task, issues),
		SystemPrompt: fixSystemPrompt,
		Model:        repoCfg.Agents.SubAgent.Model,
		MaxTurns:     repoCfg.Agents.SubAgent.MaxTurns,
		Timeout:      repoCfg.SubAgentTimeout(),
	})
	if err != nil {
		settleRunError(ctx, f.runs, run.ID, out, err)
		return nil, fmt.Errorf("fix agent run: %w", err)
	}
	if err := f.runs.CompleteRun(ctx, run.ID, runStats(out)); err != nil {
		return nil, err
	}

	files := out.FilesModified
	if treeFiles, err := f.workspaces.ChangedFiles(ctx, ws); err == nil {
		files = unionFiles(files, treeFiles)
	}

	f.logger.Info("Fix pass completed", "task_id", task.ID,
		"issues", len(issues), "files_modified", len(files), "success", out.Success)
	return &FixResult{
		Success:       out.Success,
		FilesModified: files,
		InputTokens:   out.InputTokens,
		OutputTokens:  out.OutputTokens,
		TotalCost:     out.TotalCost,
	}, nil
}

func unionFiles(a, b []string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, list := range [][]string{a, b} {
		for _, f := range list {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			out = append(out, f)
		}
	}
	return out
}
