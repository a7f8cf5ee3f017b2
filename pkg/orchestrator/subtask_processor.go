package orchestrator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/conductor-ci/conductor/ent"
	"github.com/conductor-ci/conductor/pkg/agent"
	"github.com/conductor-ci/conductor/pkg/models"
	"github.com/conductor-ci/conductor/pkg/queue"
	"github.com/conductor-ci/conductor/pkg/services"
	"github.com/conductor-ci/conductor/pkg/workspace"
)

// SubtaskProcessor consumes subtask jobs and drives one coding-agent
// run per subtask inside the task's workspace.
type SubtaskProcessor struct {
	tasks      *services.TaskService
	subtasks   *services.SubtaskService
	runs       *services.RunService
	workspaces *workspace.Manager
	runner     *agent.Runner
	limiter    *agent.Limiter
	decomposer *Decomposer
	logger     *slog.Logger
}

// NewSubtaskProcessor wires a subtask processor.
func NewSubtaskProcessor(
	tasks *services.TaskService,
	subtasks *services.SubtaskService,
	runs *services.RunService,
	workspaces *workspace.Manager,
	runner *agent.Runner,
	decomposer *Decomposer,
	logger *slog.Logger,
) *SubtaskProcessor {
	return &SubtaskProcessor{
		tasks:      tasks,
		subtasks:   subtasks,
		runs:       runs,
		workspaces: workspaces,
		runner:     runner,
		limiter:    agent.NewLimiter(),
		decomposer: decomposer,
		logger:     logger.With("component", "subtask_processor"),
	}
}

// Handle executes one subtask end to end. On any error the subtask is
// marked failed and the error surfaces through the queue.
func (p *SubtaskProcessor) Handle(ctx context.Context, job *queue.Job) error {
	var payload queue.SubtaskJobPayload
	if err := job.DecodePayload(&payload); err != nil {
		return err
	}
	logger := p.logger.With("task_id", payload.TaskID, "subtask_id", payload.SubtaskID)

	task, err := p.tasks.GetTask(ctx, payload.TaskID)
	if err != nil {
		return err
	}
	sub, err := p.subtasks.GetSubtask(ctx, payload.SubtaskID)
	if err != nil {
		return err
	}

	if err := p.run(ctx, task, sub, job, logger); err != nil {
		logger.Error("Subtask failed", "error", err)
		if _, failErr := p.subtasks.Fail(ctx, sub.ID, err.Error()); failErr != nil {
			logger.Error("Failed to mark subtask failed", "error", failErr)
		}
		return err
	}
	return nil
}

func (p *SubtaskProcessor) run(ctx context.Context, task *ent.Task, sub *ent.Subtask, job *queue.Job, logger *slog.Logger) error {
	if _, err := p.subtasks.Transition(ctx, sub.ID, models.SubtaskStatusQueued); err != nil {
		return err
	}
	if _, err := p.subtasks.Transition(ctx, sub.ID, models.SubtaskStatusRunning); err != nil {
		return err
	}

	repoCfg, err := p.decomposer.LoadRepoConfig(ctx, task)
	if err != nil {
		return err
	}

	run, err := p.runs.CreateRun(ctx, models.CreateRunRequest{
		TaskID:    task.ID,
		SubtaskID: sub.ID,
		Type:      models.RunTypeSubAgent,
		Model:     repoCfg.Agents.SubAgent.Model,
	})
	if err != nil {
		return fmt.Errorf("record agent run: %w", err)
	}
	if err := p.subtasks.SetAgentRunID(ctx, sub.ID, run.ID); err != nil {
		return err
	}

	branchName := strVal(task.BranchName)
	if branchName == "" {
		branchName = workspace.BranchName(repoCfg.Workflow.BranchPattern, task.ID, task.Title)
		if err := p.tasks.SetBranchName(ctx, task.ID, branchName); err != nil {
			return err
		}
	}

	unlock := p.workspaces.Lock(task.ID)
	defer unlock()

	job.UpdateProgress(ctx, "workspace", "Preparing the working tree")
	ws, err := p.workspaces.Prepare(ctx, task, branchName)
	if err != nil {
		_ = p.runs.FailRun(ctx, run.ID, models.RunStats{Log: err.Error()})
		return fmt.Errorf("prepare workspace: %w", err)
	}

	if err := p.runs.MarkRunning(ctx, run.ID); err != nil {
		return err
	}
	job.UpdateProgress(ctx, "agent", "Running the coding agent")

	// Queue concurrency caps the server; the limiter enforces the
	// repository's own maxParallel below that.
	release, err := p.limiter.Acquire(ctx, task.RepositoryFullName, repoCfg.Agents.SubAgent.MaxParallel)
	if err != nil {
		_ = p.runs.FailRun(ctx, run.ID, models.RunStats{Log: err.Error()})
		return err
	}
	defer release()

	policy := agent.NewPolicy(repoCfg.Security.BlockedPatterns, repoCfg.Security.MaxFilesPerPR)
	out, err := p.runner.Run(ctx, agent.RunOptions{
		WorkDir:  ws.Path,
		Prompt:   buildSubtaskPrompt(task, sub, policy.PromptConstraints()),
		Model:    repoCfg.Agents.SubAgent.Model,
		MaxTurns: repoCfg.Agents.SubAgent.MaxTurns,
		Timeout:  repoCfg.SubAgentTimeout(),
		OnProgress: func(snippet string) {
			job.UpdateProgress(ctx, "agent", snippet)
		},
	})
	if err != nil {
		settleRunError(ctx, p.runs, run.ID, out, err)
		return fmt.Errorf("agent run: %w", err)
	}
	if !out.Success {
		_ = p.runs.FailRun(ctx, run.ID, runStats(out))
		return fmt.Errorf("agent exited with code %d", out.ExitCode)
	}

	files := out.FilesModified
	if treeFiles, err := p.workspaces.ChangedFiles(ctx, ws); err == nil {
		files = unionFiles(files, treeFiles)
	}
	if err := policy.Check(files); err != nil {
		_ = p.runs.FailRun(ctx, run.ID, runStats(out))
		return err
	}

	if err := p.runs.CompleteRun(ctx, run.ID, runStats(out)); err != nil {
		return err
	}
	if _, err := p.subtasks.Complete(ctx, sub.ID, files); err != nil {
		return err
	}
	logger.Info("Subtask completed",
		"files_modified", len(files),
		"input_tokens", out.InputTokens,
		"output_tokens", out.OutputTokens)
	return nil
}
