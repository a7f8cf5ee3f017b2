package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/conductor-ci/conductor/ent"
	"github.com/conductor-ci/conductor/pkg/config"
	"github.com/conductor-ci/conductor/pkg/github"
	"github.com/conductor-ci/conductor/pkg/models"
	"github.com/conductor-ci/conductor/pkg/notify"
	"github.com/conductor-ci/conductor/pkg/queue"
	"github.com/conductor-ci/conductor/pkg/services"
	"github.com/conductor-ci/conductor/pkg/workspace"
)

// completionPollDelay is how long execute waits before re-checking
// subtask or child completion.
const completionPollDelay = 30 * time.Second

// TaskProcessor consumes task jobs from the tasks and code-review
// queues and drives the task state machine.
type TaskProcessor struct {
	tasks      *services.TaskService
	subtasks   *services.SubtaskService
	prs        *services.PullRequestService
	jobs       *queue.Service
	forge      *github.Client
	workspaces *workspace.Manager
	decomposer *Decomposer
	reviewer   *Reviewer
	fixer      *Fixer
	smoke      *SmokeTester
	notifier   *notify.Dispatcher
	logger     *slog.Logger
}

// TaskProcessorDeps bundles the processor's collaborators.
type TaskProcessorDeps struct {
	Tasks      *services.TaskService
	Subtasks   *services.SubtaskService
	PRs        *services.PullRequestService
	Jobs       *queue.Service
	Forge      *github.Client
	Workspaces *workspace.Manager
	Decomposer *Decomposer
	Reviewer   *Reviewer
	Fixer      *Fixer
	Smoke      *SmokeTester
	Notifier   *notify.Dispatcher
	Logger     *slog.Logger
}

// NewTaskProcessor wires a task processor.
func NewTaskProcessor(deps TaskProcessorDeps) *TaskProcessor {
	return &TaskProcessor{
		tasks:      deps.Tasks,
		subtasks:   deps.Subtasks,
		prs:        deps.PRs,
		jobs:       deps.Jobs,
		forge:      deps.Forge,
		workspaces: deps.Workspaces,
		decomposer: deps.Decomposer,
		reviewer:   deps.Reviewer,
		fixer:      deps.Fixer,
		smoke:      deps.Smoke,
		notifier:   deps.Notifier,
		logger:     deps.Logger.With("component", "task_processor"),
	}
}

// Handle dispatches one task job. Any error transitions the task to
// failed (unless the action is a completion poll) and surfaces through
// the queue's retry policy.
func (p *TaskProcessor) Handle(ctx context.Context, job *queue.Job) error {
	var payload queue.TaskJobPayload
	if err := job.DecodePayload(&payload); err != nil {
		return err
	}
	logger := p.logger.With("task_id", payload.TaskID, "action", payload.Action)

	task, err := p.tasks.GetTask(ctx, payload.TaskID)
	if err != nil {
		return err
	}

	var actionErr error
	switch payload.Action {
	case models.ActionDecompose:
		actionErr = p.decompose(ctx, task, job)
	case models.ActionExecute:
		actionErr = p.execute(ctx, task)
	case models.ActionReview:
		actionErr = p.review(ctx, task, job)
	case models.ActionFix:
		actionErr = p.fix(ctx, task, job)
	case models.ActionCreatePR:
		actionErr = p.createPR(ctx, task)
	case models.ActionSmokeTest:
		actionErr = p.smokeTest(ctx, task)
	default:
		actionErr = fmt.Errorf("unknown task action %q", payload.Action)
	}

	if actionErr != nil {
		logger.Error("Task action failed", "error", actionErr)
		if _, failErr := p.tasks.TransitionFailed(ctx, task.ID, actionErr.Error()); failErr != nil {
			logger.Error("Failed to mark task failed", "error", failErr)
		} else {
			p.notifier.Notify(ctx, task.ID, notify.TypeTaskFailed, map[string]any{
				"title": task.Title,
				"error": actionErr.Error(),
			})
		}
		return actionErr
	}
	return nil
}

// decompose plans the task and fans out its work.
func (p *TaskProcessor) decompose(ctx context.Context, task *ent.Task, job *queue.Job) error {
	if _, err := p.tasks.Transition(ctx, task.ID, models.TaskStatusDecomposing); err != nil {
		return err
	}
	p.moveCard(ctx, task, github.ColumnInProgress)
	job.UpdateProgress(ctx, "decomposing", "Planning the task")

	dec, err := p.decomposer.Decompose(ctx, task)
	if err != nil {
		return err
	}

	if dec.Plan.NeedsHumanReview {
		return p.requestHumanReview(ctx, task, dec.Plan.HumanReviewQuestion)
	}

	if dec.Plan.Type == models.DecompositionEpic {
		return p.expandEpic(ctx, task, dec.Plan.ChildTasks)
	}

	for _, sub := range dec.Subtasks {
		err := p.jobs.Enqueue(ctx, config.QueueSubtasks,
			queue.SubtaskJobID(sub.ID),
			queue.SubtaskJobPayload{TaskID: task.ID, SubtaskID: sub.ID})
		if err != nil {
			return fmt.Errorf("enqueue subtask %s: %w", sub.ID, err)
		}
	}
	if _, err := p.tasks.Transition(ctx, task.ID, models.TaskStatusExecuting); err != nil {
		return err
	}
	return p.jobs.Enqueue(ctx, config.QueueTasks,
		queue.CheckCompleteJobID(task.ID),
		queue.TaskJobPayload{TaskID: task.ID, Action: models.ActionExecute},
		queue.WithDelay(completionPollDelay))
}

// requestHumanReview parks the task until a human answers.
func (p *TaskProcessor) requestHumanReview(ctx context.Context, task *ent.Task, question string) error {
	p.moveCard(ctx, task, github.ColumnHumanReview)
	if issue := intVal(task.LinkedGithubIssueNumber); issue > 0 {
		err := p.forge.CommentOnIssue(ctx, task.InstallationID, task.RepositoryFullName,
			issue, question)
		if err != nil {
			p.logger.Warn("Failed to post human-review question",
				"task_id", task.ID, "error", err)
		}
	}
	if err := p.tasks.SetHumanReviewQuestion(ctx, task.ID, question); err != nil {
		return err
	}
	if _, err := p.tasks.Transition(ctx, task.ID, models.TaskStatusHumanReview); err != nil {
		return err
	}
	p.notifier.Notify(ctx, task.ID, notify.TypeHumanReviewNeeded, map[string]any{
		"title":    task.Title,
		"question": question,
	})
	return nil
}

// expandEpic creates one child issue and Task per definition and starts
// the unblocked ones.
func (p *TaskProcessor) expandEpic(ctx context.Context, task *ent.Task, children []models.ChildTaskDef) error {
	for _, child := range children {
		body := child.Description
		if len(child.DependsOn) > 0 {
			body += "\n\nDepends on:\n"
			for _, dep := range child.DependsOn {
				body += "- " + dep + "\n"
			}
		}
		issue, err := p.forge.CreateIssue(ctx, task.InstallationID, task.RepositoryFullName,
			child.Title, body, []string{"conductor", "automated"})
		if err != nil {
			return fmt.Errorf("create child issue %q: %w", child.Title, err)
		}

		itemID, err := p.forge.AddItemToProject(ctx, task.InstallationID, task.GithubProjectID, issue.NodeID)
		if err != nil {
			return fmt.Errorf("add child %q to project: %w", child.Title, err)
		}
		if err := p.forge.MoveCard(ctx, task.InstallationID, task.GithubProjectID, itemID, github.ColumnTodo); err != nil {
			p.logger.Warn("Failed to move child card to Todo",
				"task_id", task.ID, "child", child.Title, "error", err)
		}

		childTask, err := p.tasks.CreateTask(ctx, models.CreateTaskRequest{
			ProjectItemID:      itemID,
			ProjectID:          task.GithubProjectID,
			RepositoryFullName: task.RepositoryFullName,
			RepositoryID:       task.RepositoryID,
			InstallationID:     task.InstallationID,
			Title:              child.Title,
			Description:        child.Description,
			ParentTaskID:       task.ID,
			LinkedIssueNumber:  issue.Number,
			ChildDependencies:  child.DependsOn,
		})
		if err != nil {
			return fmt.Errorf("insert child task %q: %w", child.Title, err)
		}

		if len(child.DependsOn) == 0 {
			err := p.jobs.Enqueue(ctx, config.QueueTasks,
				queue.DecomposeJobID(childTask.ID),
				queue.TaskJobPayload{TaskID: childTask.ID, Action: models.ActionDecompose})
			if err != nil {
				return fmt.Errorf("enqueue child decompose: %w", err)
			}
		}
	}

	if err := p.tasks.MarkEpic(ctx, task.ID); err != nil {
		return err
	}
	if _, err := p.tasks.Transition(ctx, task.ID, models.TaskStatusExecuting); err != nil {
		return err
	}
	return p.jobs.Enqueue(ctx, config.QueueTasks,
		queue.CheckCompleteJobID(task.ID),
		queue.TaskJobPayload{TaskID: task.ID, Action: models.ActionExecute},
		queue.WithDelay(completionPollDelay))
}

// execute polls for completion: simple tasks wait on subtasks, epics
// manage their children.
func (p *TaskProcessor) execute(ctx context.Context, task *ent.Task) error {
	if task.IsEpic {
		return p.executeEpic(ctx, task)
	}

	complete, err := p.tasks.AreAllSubtasksComplete(ctx, task.ID)
	if err != nil {
		return err
	}
	if !complete {
		if failed, ferr := p.anySubtaskFailed(ctx, task.ID); ferr != nil {
			return ferr
		} else if failed != nil {
			_, err := p.tasks.TransitionFailed(ctx, task.ID,
				fmt.Sprintf("subtask %q failed: %s", failed.Title, strVal(failed.ErrorMessage)))
			if err != nil {
				return err
			}
			p.notifier.Notify(ctx, task.ID, notify.TypeTaskFailed, map[string]any{
				"title": task.Title,
				"error": strVal(failed.ErrorMessage),
			})
			return nil
		}
		return p.jobs.Enqueue(ctx, config.QueueTasks,
			queue.SaltedCheckCompleteJobID(task.ID, time.Now()),
			queue.TaskJobPayload{TaskID: task.ID, Action: models.ActionExecute},
			queue.WithDelay(completionPollDelay))
	}

	return p.jobs.Enqueue(ctx, config.QueueCodeReview,
		queue.SaltedReviewJobID(task.ID, time.Now()),
		queue.TaskJobPayload{TaskID: task.ID, Action: models.ActionReview})
}

// executeEpic starts unblocked children and settles the parent when
// all children are terminal.
func (p *TaskProcessor) executeEpic(ctx context.Context, task *ent.Task) error {
	children, err := p.tasks.ListChildren(ctx, task.ID)
	if err != nil {
		return err
	}

	statusByTitle := map[string]models.TaskStatus{}
	for _, child := range children {
		statusByTitle[child.Title] = models.TaskStatus(child.Status)
	}

	done, failed := 0, 0
	for _, child := range children {
		switch models.TaskStatus(child.Status) {
		case models.TaskStatusDone:
			done++
		case models.TaskStatusFailed:
			failed++
		case models.TaskStatusPending:
			if dependenciesDone(child.ChildDependencies, statusByTitle) {
				err := p.jobs.Enqueue(ctx, config.QueueTasks,
					queue.DecomposeJobID(child.ID),
					queue.TaskJobPayload{TaskID: child.ID, Action: models.ActionDecompose})
				if err != nil {
					return fmt.Errorf("enqueue child decompose: %w", err)
				}
			}
		}
	}

	if done+failed == len(children) && len(children) > 0 {
		if failed > 0 {
			if _, err := p.tasks.TransitionFailed(ctx, task.ID,
				fmt.Sprintf("%d of %d child tasks failed", failed, len(children))); err != nil {
				return err
			}
			p.moveCard(ctx, task, github.ColumnHumanReview)
			return nil
		}
		if _, err := p.tasks.Transition(ctx, task.ID, models.TaskStatusDone); err != nil {
			return err
		}
		p.moveCard(ctx, task, github.ColumnDone)
		p.postEpicSummary(ctx, task, children)
		p.notifier.Notify(ctx, task.ID, notify.TypeTaskCompleted, map[string]any{
			"title": task.Title,
		})
		return nil
	}

	return p.jobs.Enqueue(ctx, config.QueueTasks,
		queue.SaltedCheckCompleteJobID(task.ID, time.Now()),
		queue.TaskJobPayload{TaskID: task.ID, Action: models.ActionExecute},
		queue.WithDelay(completionPollDelay))
}

func dependenciesDone(deps []string, statusByTitle map[string]models.TaskStatus) bool {
	for _, dep := range deps {
		if statusByTitle[dep] != models.TaskStatusDone {
			return false
		}
	}
	return true
}

// postEpicSummary comments the child PR list on the epic's issue.
func (p *TaskProcessor) postEpicSummary(ctx context.Context, task *ent.Task, children []*ent.Task) {
	issue := intVal(task.LinkedGithubIssueNumber)
	if issue == 0 {
		return
	}
	var b strings.Builder
	b.WriteString("All child tasks completed.\n\n")
	for _, child := range children {
		fmt.Fprintf(&b, "- %s", child.Title)
		if url := strVal(child.PullRequestURL); url != "" {
			fmt.Fprintf(&b, ": %s", url)
		}
		b.WriteByte('\n')
	}
	err := p.forge.CommentOnIssue(ctx, task.InstallationID, task.RepositoryFullName,
		issue, b.String())
	if err != nil {
		p.logger.Warn("Failed to post epic summary", "task_id", task.ID, "error", err)
	}
}

// anySubtaskFailed returns the first terminally failed subtask, if any.
func (p *TaskProcessor) anySubtaskFailed(ctx context.Context, taskID string) (*ent.Subtask, error) {
	subs, err := p.subtasks.ListByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	for _, sub := range subs {
		if models.SubtaskStatus(sub.Status) == models.SubtaskStatusFailed {
			return sub, nil
		}
	}
	return nil, nil
}

// review runs one review iteration over the pushed branch.
func (p *TaskProcessor) review(ctx context.Context, task *ent.Task, job *queue.Job) error {
	if _, err := p.tasks.Transition(ctx, task.ID, models.TaskStatusReview); err != nil {
		return err
	}
	job.UpdateProgress(ctx, "review", "Reviewing the change set")

	repoCfg, err := p.decomposer.LoadRepoConfig(ctx, task)
	if err != nil {
		return err
	}

	unlock := p.workspaces.Lock(task.ID)
	ws, err := p.workspaces.Prepare(ctx, task, strVal(task.BranchName))
	if err != nil {
		unlock()
		return err
	}
	// Push pending work before reviewing; no new commits is fine.
	if _, err := p.workspaces.CommitAndPush(ctx, ws, "chore: checkpoint before review"); err != nil {
		p.logger.Warn("Pre-review push failed", "task_id", task.ID, "error", err)
	}
	unlock()

	outcome, err := p.reviewer.Review(ctx, task, ws, repoCfg)
	if err != nil {
		return err
	}

	switch {
	case outcome.Result == models.ReviewApproved:
		action := models.ActionCreatePR
		jobID := queue.CreatePRJobID(task.ID)
		if repoCfg.Workflow.RequireSmokeTest {
			action = models.ActionSmokeTest
			jobID = queue.SmokeTestJobID(task.ID)
		}
		return p.jobs.Enqueue(ctx, config.QueueTasks, jobID,
			queue.TaskJobPayload{TaskID: task.ID, Action: action})

	case outcome.Result == models.ReviewChangesRequested && outcome.Iteration < repoCfg.Workflow.MaxIterations:
		if err := p.tasks.StoreReviewIssues(ctx, task.ID, outcome.Issues); err != nil {
			return err
		}
		if _, err := p.tasks.Transition(ctx, task.ID, models.TaskStatusExecuting); err != nil {
			return err
		}
		return p.jobs.Enqueue(ctx, config.QueueCodeReview,
			queue.FixJobID(task.ID, outcome.Iteration),
			queue.TaskJobPayload{TaskID: task.ID, Action: models.ActionFix})

	default:
		_, err := p.tasks.TransitionFailed(ctx, task.ID, "Code review failed after maximum iterations")
		if err != nil {
			return err
		}
		p.notifier.Notify(ctx, task.ID, notify.TypeTaskFailed, map[string]any{
			"title": task.Title,
			"error": "Code review failed after maximum iterations",
		})
		return nil
	}
}

// fix repairs the stored review issues and re-enqueues review.
func (p *TaskProcessor) fix(ctx context.Context, task *ent.Task, job *queue.Job) error {
	issues, err := p.tasks.LoadReviewIssues(ctx, task.ID)
	if err != nil {
		return err
	}
	job.UpdateProgress(ctx, "fix", fmt.Sprintf("Fixing %d review issues", len(issues)))

	repoCfg, err := p.decomposer.LoadRepoConfig(ctx, task)
	if err != nil {
		return err
	}

	unlock := p.workspaces.Lock(task.ID)
	ws, err := p.workspaces.Prepare(ctx, task, strVal(task.BranchName))
	if err != nil {
		unlock()
		return err
	}
	result, err := p.fixer.Fix(ctx, task, ws, issues, repoCfg)
	unlock()
	if err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("fix pass did not complete successfully")
	}

	if err := p.tasks.ClearErrorMessage(ctx, task.ID); err != nil {
		return err
	}
	return p.jobs.Enqueue(ctx, config.QueueCodeReview,
		queue.SaltedReviewJobID(task.ID, time.Now()),
		queue.TaskJobPayload{TaskID: task.ID, Action: models.ActionReview})
}

// createPR pushes the branch and opens the pull request.
func (p *TaskProcessor) createPR(ctx context.Context, task *ent.Task) error {
	unlock := p.workspaces.Lock(task.ID)
	ws, err := p.workspaces.Prepare(ctx, task, strVal(task.BranchName))
	if err != nil {
		unlock()
		return err
	}
	headSHA, err := p.workspaces.CommitAndPush(ctx, ws, "chore: final changes")
	unlock()
	if err != nil {
		return fmt.Errorf("push before PR: %w", err)
	}

	body := task.Description
	if body == "" {
		body = task.Title
	}
	pr, err := p.forge.CreatePullRequest(ctx, task.InstallationID, task.RepositoryFullName,
		task.Title, body, ws.BranchName, ws.BaseBranch)
	if err != nil {
		return fmt.Errorf("open pull request: %w", err)
	}

	if _, err := p.prs.RecordPullRequest(ctx, models.CreatePullRequestRequest{
		TaskID:             task.ID,
		RepositoryFullName: task.RepositoryFullName,
		Number:             pr.Number,
		Title:              pr.Title,
		Body:               pr.Body,
		BranchName:         ws.BranchName,
		HeadSHA:            headSHA,
		URL:                pr.HTMLURL,
	}); err != nil {
		return err
	}
	if err := p.tasks.SetPullRequest(ctx, task.ID, pr.Number, pr.HTMLURL); err != nil {
		return err
	}
	if _, err := p.tasks.Transition(ctx, task.ID, models.TaskStatusPRCreated); err != nil {
		return err
	}
	p.moveCard(ctx, task, github.ColumnHumanReview)
	p.notifier.Notify(ctx, task.ID, notify.TypePRCreated, map[string]any{
		"title": task.Title,
		"url":   pr.HTMLURL,
	})
	p.logger.Info("Pull request created",
		"task_id", task.ID, "number", pr.Number, "url", pr.HTMLURL)
	return nil
}

// smokeTest validates the branch, then proceeds to PR creation.
func (p *TaskProcessor) smokeTest(ctx context.Context, task *ent.Task) error {
	repoCfg, err := p.decomposer.LoadRepoConfig(ctx, task)
	if err != nil {
		return err
	}

	unlock := p.workspaces.Lock(task.ID)
	ws, err := p.workspaces.Prepare(ctx, task, strVal(task.BranchName))
	unlock()
	if err != nil {
		return err
	}

	if err := p.smoke.Run(ctx, task, ws, repoCfg); err != nil {
		return fmt.Errorf("smoke test: %w", err)
	}
	return p.jobs.Enqueue(ctx, config.QueueTasks,
		queue.CreatePRJobID(task.ID),
		queue.TaskJobPayload{TaskID: task.ID, Action: models.ActionCreatePR})
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intVal(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}

// moveCard moves the task's board card, best-effort.
func (p *TaskProcessor) moveCard(ctx context.Context, task *ent.Task, column string) {
	if task.GithubProjectID == "" || task.GithubProjectItemID == "" {
		return
	}
	err := p.forge.MoveCard(ctx, task.InstallationID, task.GithubProjectID, task.GithubProjectItemID, column)
	if err != nil {
		p.logger.Warn("Failed to move board card",
			"task_id", task.ID, "column", column, "error", err)
	}
}
