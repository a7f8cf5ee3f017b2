package webhook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/conductor-ci/conductor/ent"
	"github.com/conductor-ci/conductor/pkg/config"
	"github.com/conductor-ci/conductor/pkg/github"
	"github.com/conductor-ci/conductor/pkg/models"
	"github.com/conductor-ci/conductor/pkg/queue"
	"github.com/conductor-ci/conductor/pkg/services"
)

// branchPrefix marks branches this system owns; pull-request events on
// other branches are ignored.
const branchPrefix = "conductor/"

// Intake turns forge webhook events into tasks and queue jobs. Every
// handler is idempotent: storage is checked before inserting and job
// ids dedup repeat deliveries.
type Intake struct {
	tasks    *services.TaskService
	prs      *services.PullRequestService
	jobs     *queue.Service
	forge    *github.Client
	botLogin string
	logger   *slog.Logger
}

// NewIntake wires a webhook intake.
func NewIntake(
	tasks *services.TaskService,
	prs *services.PullRequestService,
	jobs *queue.Service,
	forge *github.Client,
	botLogin string,
	logger *slog.Logger,
) *Intake {
	return &Intake{
		tasks:    tasks,
		prs:      prs,
		jobs:     jobs,
		forge:    forge,
		botLogin: botLogin,
		logger:   logger.With("component", "webhook_intake"),
	}
}

// HandleProjectsV2Item reacts to a board card being created or moved.
func (in *Intake) HandleProjectsV2Item(ctx context.Context, event *ProjectsV2ItemEvent) error {
	if event.Action != "created" && event.Action != "edited" {
		return nil
	}
	instID := event.Installation.ID
	logger := in.logger.With("item_id", event.Item.NodeID)

	item, err := in.forge.GetProjectItem(ctx, instID, event.Item.NodeID)
	if err != nil {
		return fmt.Errorf("load board item: %w", err)
	}
	if item.Status != github.ColumnTodo && item.Status != github.ColumnRedo {
		return nil
	}

	task, err := in.tasks.GetTaskByProjectItemID(ctx, item.ID)
	switch {
	case errors.Is(err, services.ErrNotFound):
		if item.Status != github.ColumnTodo {
			return nil
		}
		return in.createTask(ctx, instID, item, logger)
	case err != nil:
		return err
	}

	switch {
	case models.TaskStatus(task.Status) == models.TaskStatusHumanReview && item.Status == github.ColumnTodo:
		return in.resumeAfterHumanReview(ctx, task, logger)
	case models.TaskStatus(task.Status) == models.TaskStatusPRCreated && item.Status == github.ColumnRedo:
		return in.redo(ctx, task, logger)
	default:
		logger.Debug("Board event ignored",
			"task_status", task.Status, "item_status", item.Status)
		return nil
	}
}

// createTask inserts a pending task for a fresh Todo card and enqueues
// its decompose job.
func (in *Intake) createTask(ctx context.Context, instID int64, item *github.ProjectItem, logger *slog.Logger) error {
	if item.RepositoryFullName == "" {
		logger.Warn("Board item has no resolvable repository, skipping")
		return nil
	}
	task, err := in.tasks.CreateTask(ctx, models.CreateTaskRequest{
		ProjectItemID:      item.ID,
		ProjectID:          item.ProjectID,
		RepositoryFullName: item.RepositoryFullName,
		RepositoryID:       item.RepositoryID,
		InstallationID:     instID,
		Title:              item.Title,
		Description:        item.Body,
		LinkedIssueNumber:  item.IssueNumber,
	})
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	logger.Info("Task created from board item", "task_id", task.ID, "title", task.Title)
	return in.jobs.Enqueue(ctx, config.QueueTasks,
		queue.DecomposeJobID(task.ID),
		queue.TaskJobPayload{TaskID: task.ID, Action: models.ActionDecompose})
}

// resumeAfterHumanReview picks up the human's answer and restarts
// decomposition.
func (in *Intake) resumeAfterHumanReview(ctx context.Context, task *ent.Task, logger *slog.Logger) error {
	answer, err := in.latestHumanComment(ctx, task)
	if err != nil {
		logger.Warn("Could not read human answer", "error", err)
	}
	if answer != "" {
		if err := in.tasks.SetHumanReviewAnswer(ctx, task.ID, answer); err != nil {
			return err
		}
	}
	if _, err := in.tasks.Transition(ctx, task.ID, models.TaskStatusPending); err != nil {
		return err
	}
	logger.Info("Task resumed after human review", "task_id", task.ID)
	return in.jobs.Enqueue(ctx, config.QueueTasks,
		queue.SaltedDecomposeJobID(task.ID, time.Now()),
		queue.TaskJobPayload{TaskID: task.ID, Action: models.ActionDecompose})
}

// redo collects PR feedback and restarts decomposition from scratch.
func (in *Intake) redo(ctx context.Context, task *ent.Task, logger *slog.Logger) error {
	feedback, err := in.collectPRFeedback(ctx, task)
	if err != nil {
		logger.Warn("Could not collect PR feedback", "error", err)
	}
	if feedback != "" {
		if err := in.tasks.SetHumanReviewAnswer(ctx, task.ID, feedback); err != nil {
			return err
		}
	}
	if _, err := in.tasks.Transition(ctx, task.ID, models.TaskStatusPending); err != nil {
		return err
	}
	logger.Info("Task sent back for redo", "task_id", task.ID)
	return in.jobs.Enqueue(ctx, config.QueueTasks,
		queue.SaltedDecomposeJobID(task.ID, time.Now()),
		queue.TaskJobPayload{TaskID: task.ID, Action: models.ActionDecompose})
}

// latestHumanComment returns the newest non-bot comment on the task's
// linked issue.
func (in *Intake) latestHumanComment(ctx context.Context, task *ent.Task) (string, error) {
	issue := intVal(task.LinkedGithubIssueNumber)
	if issue == 0 {
		return "", nil
	}
	comments, err := in.forge.ListIssueComments(ctx, task.InstallationID, task.RepositoryFullName, issue)
	if err != nil {
		return "", err
	}
	for i := len(comments) - 1; i >= 0; i-- {
		if comments[i].User.Login != in.botLogin {
			return comments[i].Body, nil
		}
	}
	return "", nil
}

// maxFeedbackEntries bounds how many review bodies and comments are
// forwarded into the fix prompt.
const maxFeedbackEntries = 10

// collectPRFeedback joins review bodies and non-bot PR comments,
// capped at maxFeedbackEntries.
func (in *Intake) collectPRFeedback(ctx context.Context, task *ent.Task) (string, error) {
	number := intVal(task.PullRequestNumber)
	if number == 0 {
		return "", nil
	}
	var parts []string
	reviews, err := in.forge.ListPullReviews(ctx, task.InstallationID, task.RepositoryFullName, number)
	if err != nil {
		return "", err
	}
	for _, review := range reviews {
		if review.Body != "" {
			parts = append(parts, review.Body)
		}
	}
	comments, err := in.forge.ListIssueComments(ctx, task.InstallationID, task.RepositoryFullName, number)
	if err != nil {
		return joinFeedback(parts), err
	}
	for _, comment := range comments {
		if comment.User.Login != in.botLogin && comment.Body != "" {
			parts = append(parts, comment.Body)
		}
	}
	return joinFeedback(parts), nil
}

func joinFeedback(parts []string) string {
	if len(parts) > maxFeedbackEntries {
		parts = parts[:maxFeedbackEntries]
	}
	return strings.Join(parts, "\n\n")
}

// HandlePullRequest closes the loop when a conductor branch's PR is
// merged, closed, or updated.
func (in *Intake) HandlePullRequest(ctx context.Context, event *PullRequestEvent) error {
	if !strings.HasPrefix(event.PullRequest.Head.Ref, branchPrefix) {
		return nil
	}
	row, err := in.prs.GetByRepoNumber(ctx, event.Repository.FullName, event.PullRequest.Number)
	if errors.Is(err, services.ErrNotFound) {
		in.logger.Debug("No recorded pull request for event",
			"repo", event.Repository.FullName, "number", event.PullRequest.Number)
		return nil
	}
	if err != nil {
		return err
	}

	switch event.Action {
	case "closed":
		if event.PullRequest.Merged {
			return in.prMerged(ctx, row)
		}
		return in.prs.MarkClosed(ctx, row.ID)
	case "synchronize":
		return in.prs.UpdateHeadSHA(ctx, row.ID, event.PullRequest.Head.SHA)
	default:
		return nil
	}
}

func (in *Intake) prMerged(ctx context.Context, row *ent.PullRequest) error {
	if err := in.prs.MarkMerged(ctx, row.ID); err != nil {
		return err
	}
	task, err := in.tasks.GetTask(ctx, row.TaskID)
	if err != nil {
		return err
	}
	if models.TaskStatus(task.Status) != models.TaskStatusDone {
		if _, err := in.tasks.Transition(ctx, task.ID, models.TaskStatusDone); err != nil {
			return err
		}
	}
	if task.GithubProjectID != "" && task.GithubProjectItemID != "" {
		err := in.forge.MoveCard(ctx, task.InstallationID, task.GithubProjectID,
			task.GithubProjectItemID, github.ColumnDone)
		if err != nil {
			in.logger.Warn("Failed to move merged task's card", "task_id", task.ID, "error", err)
		}
	}
	in.logger.Info("Pull request merged, task done", "task_id", task.ID, "number", row.Number)
	return nil
}

// HandleIssueComment executes /conductor commands from humans.
func (in *Intake) HandleIssueComment(ctx context.Context, event *IssueCommentEvent) error {
	if event.Action != "created" || event.Comment.User.Login == in.botLogin {
		return nil
	}
	command, ok := parseCommand(event.Comment.Body)
	if !ok {
		return nil
	}
	instID := event.Installation.ID
	repo := event.Repository.FullName

	switch command {
	case "status":
		return in.replyStatus(ctx, instID, repo, event.Issue.Number)
	case "retry":
		return in.retryTask(ctx, instID, repo, event.Issue.Number)
	case "help":
		return in.forge.CommentOnIssue(ctx, instID, repo, event.Issue.Number, helpText)
	default:
		return in.forge.CommentOnIssue(ctx, instID, repo, event.Issue.Number,
			fmt.Sprintf("Unknown command `%s`. Try `/conductor help`.", command))
	}
}

const helpText = "Available commands:\n\n" +
	"- `/conductor status` — list recent tasks and their progress\n" +
	"- `/conductor retry` — reset a failed task linked to this issue\n" +
	"- `/conductor help` — this message\n"

// parseCommand extracts "<cmd>" from a "/conductor <cmd>" line.
func parseCommand(body string) (string, bool) {
	for _, line := range strings.Split(body, "\n") {
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) >= 1 && fields[0] == "/conductor" {
			if len(fields) == 1 {
				return "help", true
			}
			return strings.ToLower(fields[1]), true
		}
	}
	return "", false
}

func (in *Intake) replyStatus(ctx context.Context, instID int64, repo string, issue int) error {
	tasks, err := in.tasks.RecentTasks(ctx, repo, 10)
	if err != nil {
		return err
	}
	var b strings.Builder
	b.WriteString("| Task | Status | Branch |\n|---|---|---|\n")
	for _, t := range tasks {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", t.Title, t.Status, strVal(t.BranchName))
	}
	if len(tasks) == 0 {
		b.Reset()
		b.WriteString("No tasks recorded for this repository.")
	}
	return in.forge.CommentOnIssue(ctx, instID, repo, issue, b.String())
}

func (in *Intake) retryTask(ctx context.Context, instID int64, repo string, issue int) error {
	task, err := in.findTaskByIssue(ctx, repo, issue)
	if err != nil {
		return err
	}
	if task == nil || models.TaskStatus(task.Status) != models.TaskStatusFailed {
		return in.forge.CommentOnIssue(ctx, instID, repo, issue,
			"No failed task is linked to this issue.")
	}
	if _, err := in.tasks.Transition(ctx, task.ID, models.TaskStatusPending); err != nil {
		return err
	}
	if err := in.tasks.IncrementRetry(ctx, task.ID); err != nil {
		return err
	}
	if err := in.jobs.Enqueue(ctx, config.QueueTasks,
		queue.SaltedDecomposeJobID(task.ID, time.Now()),
		queue.TaskJobPayload{TaskID: task.ID, Action: models.ActionDecompose}); err != nil {
		return err
	}
	return in.forge.CommentOnIssue(ctx, instID, repo, issue,
		fmt.Sprintf("Retrying task %q (attempt %d).", task.Title, task.RetryCount+1))
}

// findTaskByIssue scans recent tasks for one linked to the issue.
func (in *Intake) findTaskByIssue(ctx context.Context, repo string, issue int) (*ent.Task, error) {
	tasks, err := in.tasks.RecentTasks(ctx, repo, 50)
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if intVal(t.LinkedGithubIssueNumber) == issue {
			return t, nil
		}
	}
	return nil, nil
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
