// Package orchestrator drives the task and subtask lifecycles: it
// consumes queue jobs, plans work through the master agent, executes
// subtasks, runs the review/fix loop, and opens pull requests.
package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/conductor-ci/conductor/ent"
	"github.com/conductor-ci/conductor/pkg/agent"
	"github.com/conductor-ci/conductor/pkg/config"
	"github.com/conductor-ci/conductor/pkg/github"
	"github.com/conductor-ci/conductor/pkg/models"
	"github.com/conductor-ci/conductor/pkg/services"
	"github.com/conductor-ci/conductor/pkg/subproject"
)

// maxTreePaths caps the repository listing included in the analysis
// prompt.
const maxTreePaths = 500

// contextFileNames are read from the default branch when present and
// appended to the analysis prompt.
var contextFileNames = []string{
	"README.md",
	"CLAUDE.md",
	"REQUIREMENTS.md",
	"package.json",
	"pnpm-workspace.yaml",
	"turbo.json",
}

// Decomposition is the decomposer's outcome for one task.
type Decomposition struct {
	Plan                models.TaskDecomposition
	Subtasks            []*ent.Subtask
	AffectedSubprojects []string
	RepoConfig          *config.RepoConfig
}

// Decomposer plans a task: fetch repository context, ask the master
// agent, validate, and for simple tasks insert the subtask rows.
type Decomposer struct {
	forge    *github.Client
	runner   *agent.Runner
	runs     *services.RunService
	subtasks *services.SubtaskService
	agentCfg config.AgentCLIConfig
	logger   *slog.Logger
}

// NewDecomposer wires a decomposer.
func NewDecomposer(forge *github.Client, runner *agent.Runner, runs *services.RunService, subtasks *services.SubtaskService, agentCfg config.AgentCLIConfig, logger *slog.Logger) *Decomposer {
	return &Decomposer{
		forge:    forge,
		runner:   runner,
		runs:     runs,
		subtasks: subtasks,
		agentCfg: agentCfg,
		logger:   logger.With("component", "decomposer"),
	}
}

// LoadRepoConfig reads and parses .conductor.yml from the repository's
// default branch. A missing file yields the defaults.
func (d *Decomposer) LoadRepoConfig(ctx context.Context, task *ent.Task) (*config.RepoConfig, error) {
	raw, err := d.forge.GetFileContent(ctx, task.InstallationID, task.RepositoryFullName, ".conductor.yml", "")
	if err != nil {
		if github.IsNotFound(err) {
			return config.DefaultRepoConfig(), nil
		}
		return nil, fmt.Errorf("read .conductor.yml: %w", err)
	}
	cfg, err := config.ParseRepoConfig([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("parse .conductor.yml: %w", err)
	}
	return cfg, nil
}

// Decompose runs the full planning procedure for one task.
func (d *Decomposer) Decompose(ctx context.Context, task *ent.Task) (*Decomposition, error) {
	logger := d.logger.With("task_id", task.ID)

	repoCfg, err := d.LoadRepoConfig(ctx, task)
	if err != nil {
		return nil, err
	}

	repoPaths := d.listRepoPaths(ctx, task)
	subs := subproject.Detect(repoCfg, repoPaths)
	contextFiles := d.fetchContextFiles(ctx, task)

	prompt := buildAnalysisPrompt(task, repoPaths, subs, contextFiles)

	run, err := d.runs.CreateRun(ctx, models.CreateRunRequest{
		TaskID: task.ID,
		Type:   models.RunTypeMaster,
		Model:  repoCfg.Agents.Master.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("record master run: %w", err)
	}
	if err := d.runs.MarkRunning(ctx, run.ID); err != nil {
		return nil, err
	}

	out, err := d.runner.Run(ctx, agent.RunOptions{
		Prompt:       prompt,
		SystemPrompt: masterSystemPrompt,
		Model:        repoCfg.Agents.Master.Model,
		MaxTurns:     1,
		Timeout:      d.agentCfg.DefaultTimeout,
	})
	if err != nil {
		settleRunError(ctx, d.runs, run.ID, out, err)
		return nil, fmt.Errorf("master agent run: %w", err)
	}
	if !out.Success {
		_ = d.runs.FailRun(ctx, run.ID, runStats(out))
		return nil, fmt.Errorf("master agent exited with code %d", out.ExitCode)
	}
	if err := d.runs.CompleteRun(ctx, run.ID, runStats(out)); err != nil {
		return nil, err
	}

	plan := planOrFallback(out.Result, logger)

	if plan.NeedsHumanReview {
		logger.Info("Decomposer requested human review")
		return &Decomposition{Plan: *plan, RepoConfig: repoCfg}, nil
	}

	if err := validatePlan(plan, subs, task); err != nil {
		return nil, err
	}

	result := &Decomposition{Plan: *plan, RepoConfig: repoCfg}
	if plan.Type == models.DecompositionEpic {
		logger.Info("Task decomposed as epic", "children", len(plan.ChildTasks))
		return result, nil
	}

	for _, planned := range plan.Subtasks {
		row, err := d.subtasks.CreateSubtask(ctx, models.CreateSubtaskRequest{
			TaskID:         task.ID,
			SubprojectPath: planned.SubprojectPath,
			Title:          planned.Title,
			Description:    planned.Description,
			DependsOn:      planned.DependsOn,
		})
		if err != nil {
			return nil, fmt.Errorf("insert subtask %q: %w", planned.Title, err)
		}
		result.Subtasks = append(result.Subtasks, row)
		if !contains(result.AffectedSubprojects, planned.SubprojectPath) {
			result.AffectedSubprojects = append(result.AffectedSubprojects, planned.SubprojectPath)
		}
	}
	logger.Info("Task decomposed", "subtasks", len(result.Subtasks),
		"subprojects", result.AffectedSubprojects)
	return result, nil
}

// listRepoPaths fetches the repository tree, best-effort, skipping
// hidden directories and capped at maxTreePaths.
func (d *Decomposer) listRepoPaths(ctx context.Context, task *ent.Task) []string {
	paths, err := d.forge.ListTree(ctx, task.InstallationID, task.RepositoryFullName, "HEAD", 0)
	if err != nil {
		d.logger.Warn("Repository tree unavailable", "task_id", task.ID, "error", err)
		return nil
	}
	filtered := make([]string, 0, len(paths))
	for _, p := range paths {
		if strings.HasPrefix(p, ".") || strings.Contains(p, "/.") {
			continue
		}
		filtered = append(filtered, p)
		if len(filtered) >= maxTreePaths {
			break
		}
	}
	return filtered
}

func (d *Decomposer) fetchContextFiles(ctx context.Context, task *ent.Task) map[string]string {
	files := map[string]string{}
	for _, name := range contextFileNames {
		content, err := d.forge.GetFileContent(ctx, task.InstallationID, task.RepositoryFullName, name, "")
		if err != nil {
			continue
		}
		files[name] = content
	}
	return files
}

// planOrFallback decodes the master response. A response with no
// usable JSON degrades to an empty simple plan; validatePlan then
// synthesises the single subtask from the task itself, so a rambling
// master never fails the decompose job.
func planOrFallback(response string, logger *slog.Logger) *models.TaskDecomposition {
	plan, err := parseDecomposition(response)
	if err != nil {
		logger.Warn("Master response not parseable, planning a single subtask", "error", err)
		return &models.TaskDecomposition{Type: models.DecompositionSimple}
	}
	return plan
}

// parseDecomposition extracts and decodes the plan JSON from the
// master agent's response.
func parseDecomposition(response string) (*models.TaskDecomposition, error) {
	block := extractJSONBlock(response)
	if block == "" {
		return nil, fmt.Errorf("master response contains no JSON block")
	}
	var plan models.TaskDecomposition
	if err := json.Unmarshal([]byte(block), &plan); err != nil {
		return nil, fmt.Errorf("decode decomposition: %w", err)
	}
	return &plan, nil
}

// validatePlan enforces the decomposition contract and synthesises the
// fallback subtask for an empty simple plan.
func validatePlan(plan *models.TaskDecomposition, subs []subproject.Subproject, task *ent.Task) error {
	switch plan.Type {
	case models.DecompositionSimple:
		if len(plan.Subtasks) == 0 {
			plan.Subtasks = []models.PlannedSubtask{{
				SubprojectPath: ".",
				Title:          task.Title,
				Description:    task.Description,
			}}
			return nil
		}
		titles := map[string]bool{}
		for _, st := range plan.Subtasks {
			titles[st.Title] = true
		}
		for _, st := range plan.Subtasks {
			if !subproject.Contains(subs, st.SubprojectPath) {
				return fmt.Errorf("subtask %q targets unknown subproject %q", st.Title, st.SubprojectPath)
			}
			for _, dep := range st.DependsOn {
				if !titles[dep] {
					return fmt.Errorf("subtask %q depends on unknown subtask %q", st.Title, dep)
				}
			}
		}
		return nil
	case models.DecompositionEpic:
		if len(plan.ChildTasks) == 0 {
			return fmt.Errorf("epic decomposition has no child tasks")
		}
		titles := map[string]bool{}
		for _, child := range plan.ChildTasks {
			titles[child.Title] = true
		}
		for _, child := range plan.ChildTasks {
			for _, dep := range child.DependsOn {
				if !titles[dep] {
					return fmt.Errorf("child %q depends on unknown sibling %q", child.Title, dep)
				}
			}
		}
		return nil
	default:
		return fmt.Errorf("decomposition type %q is not simple or epic", plan.Type)
	}
}

// settleRunError records a failed runner invocation on the run row,
// distinguishing wall-clock kills from other failures.
func settleRunError(ctx context.Context, runs *services.RunService, runID string, out *agent.Output, cause error) {
	if errors.Is(cause, agent.ErrRunTimeout) {
		_ = runs.TimeoutRun(ctx, runID, runStats(out))
		return
	}
	_ = runs.FailRun(ctx, runID, runStats(out))
}

// runStats converts runner output into persisted run telemetry.
func runStats(out *agent.Output) models.RunStats {
	if out == nil {
		return models.RunStats{}
	}
	return models.RunStats{
		InputTokens:  int64(out.InputTokens),
		OutputTokens: int64(out.OutputTokens),
		TotalCost:    out.TotalCost,
		Log:          out.Result,
	}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
