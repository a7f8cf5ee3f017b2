// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/conductor-ci/conductor/ent/agentrun"
	"github.com/conductor-ci/conductor/ent/codereview"
	"github.com/conductor-ci/conductor/ent/notification"
	"github.com/conductor-ci/conductor/ent/predicate"
	"github.com/conductor-ci/conductor/ent/pullrequest"
	"github.com/conductor-ci/conductor/ent/subtask"
	"github.com/conductor-ci/conductor/ent/task"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGithubProjectItemID sets the "github_project_item_id" field.
func (_u *TaskUpdate) SetGithubProjectItemID(v string) *TaskUpdate {
	_u.mutation.SetGithubProjectItemID(v)
	return _u
}

// SetNillableGithubProjectItemID sets the "github_project_item_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableGithubProjectItemID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetGithubProjectItemID(*v)
	}
	return _u
}

// ClearGithubProjectItemID clears the value of the "github_project_item_id" field.
func (_u *TaskUpdate) ClearGithubProjectItemID() *TaskUpdate {
	_u.mutation.ClearGithubProjectItemID()
	return _u
}

// SetGithubProjectID sets the "github_project_id" field.
func (_u *TaskUpdate) SetGithubProjectID(v string) *TaskUpdate {
	_u.mutation.SetGithubProjectID(v)
	return _u
}

// SetNillableGithubProjectID sets the "github_project_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableGithubProjectID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetGithubProjectID(*v)
	}
	return _u
}

// ClearGithubProjectID clears the value of the "github_project_id" field.
func (_u *TaskUpdate) ClearGithubProjectID() *TaskUpdate {
	_u.mutation.ClearGithubProjectID()
	return _u
}

// SetRepositoryFullName sets the "repository_full_name" field.
func (_u *TaskUpdate) SetRepositoryFullName(v string) *TaskUpdate {
	_u.mutation.SetRepositoryFullName(v)
	return _u
}

// SetNillableRepositoryFullName sets the "repository_full_name" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableRepositoryFullName(v *string) *TaskUpdate {
	if v != nil {
		_u.SetRepositoryFullName(*v)
	}
	return _u
}

// SetRepositoryID sets the "repository_id" field.
func (_u *TaskUpdate) SetRepositoryID(v int64) *TaskUpdate {
	_u.mutation.ResetRepositoryID()
	_u.mutation.SetRepositoryID(v)
	return _u
}

// SetNillableRepositoryID sets the "repository_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableRepositoryID(v *int64) *TaskUpdate {
	if v != nil {
		_u.SetRepositoryID(*v)
	}
	return _u
}

// AddRepositoryID adds value to the "repository_id" field.
func (_u *TaskUpdate) AddRepositoryID(v int64) *TaskUpdate {
	_u.mutation.AddRepositoryID(v)
	return _u
}

// ClearRepositoryID clears the value of the "repository_id" field.
func (_u *TaskUpdate) ClearRepositoryID() *TaskUpdate {
	_u.mutation.ClearRepositoryID()
	return _u
}

// SetInstallationID sets the "installation_id" field.
func (_u *TaskUpdate) SetInstallationID(v int64) *TaskUpdate {
	_u.mutation.ResetInstallationID()
	_u.mutation.SetInstallationID(v)
	return _u
}

// SetNillableInstallationID sets the "installation_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableInstallationID(v *int64) *TaskUpdate {
	if v != nil {
		_u.SetInstallationID(*v)
	}
	return _u
}

// AddInstallationID adds value to the "installation_id" field.
func (_u *TaskUpdate) AddInstallationID(v int64) *TaskUpdate {
	_u.mutation.AddInstallationID(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdate) SetTitle(v string) *TaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTitle(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdate) SetDescription(v string) *TaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDescription(v *string) *TaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TaskUpdate) ClearDescription() *TaskUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBranchName sets the "branch_name" field.
func (_u *TaskUpdate) SetBranchName(v string) *TaskUpdate {
	_u.mutation.SetBranchName(v)
	return _u
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableBranchName(v *string) *TaskUpdate {
	if v != nil {
		_u.SetBranchName(*v)
	}
	return _u
}

// ClearBranchName clears the value of the "branch_name" field.
func (_u *TaskUpdate) ClearBranchName() *TaskUpdate {
	_u.mutation.ClearBranchName()
	return _u
}

// SetPullRequestNumber sets the "pull_request_number" field.
func (_u *TaskUpdate) SetPullRequestNumber(v int) *TaskUpdate {
	_u.mutation.ResetPullRequestNumber()
	_u.mutation.SetPullRequestNumber(v)
	return _u
}

// SetNillablePullRequestNumber sets the "pull_request_number" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePullRequestNumber(v *int) *TaskUpdate {
	if v != nil {
		_u.SetPullRequestNumber(*v)
	}
	return _u
}

// AddPullRequestNumber adds value to the "pull_request_number" field.
func (_u *TaskUpdate) AddPullRequestNumber(v int) *TaskUpdate {
	_u.mutation.AddPullRequestNumber(v)
	return _u
}

// ClearPullRequestNumber clears the value of the "pull_request_number" field.
func (_u *TaskUpdate) ClearPullRequestNumber() *TaskUpdate {
	_u.mutation.ClearPullRequestNumber()
	return _u
}

// SetPullRequestURL sets the "pull_request_url" field.
func (_u *TaskUpdate) SetPullRequestURL(v string) *TaskUpdate {
	_u.mutation.SetPullRequestURL(v)
	return _u
}

// SetNillablePullRequestURL sets the "pull_request_url" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePullRequestURL(v *string) *TaskUpdate {
	if v != nil {
		_u.SetPullRequestURL(*v)
	}
	return _u
}

// ClearPullRequestURL clears the value of the "pull_request_url" field.
func (_u *TaskUpdate) ClearPullRequestURL() *TaskUpdate {
	_u.mutation.ClearPullRequestURL()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TaskUpdate) SetErrorMessage(v string) *TaskUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableErrorMessage(v *string) *TaskUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TaskUpdate) ClearErrorMessage() *TaskUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetHumanReviewQuestion sets the "human_review_question" field.
func (_u *TaskUpdate) SetHumanReviewQuestion(v string) *TaskUpdate {
	_u.mutation.SetHumanReviewQuestion(v)
	return _u
}

// SetNillableHumanReviewQuestion sets the "human_review_question" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableHumanReviewQuestion(v *string) *TaskUpdate {
	if v != nil {
		_u.SetHumanReviewQuestion(*v)
	}
	return _u
}

// ClearHumanReviewQuestion clears the value of the "human_review_question" field.
func (_u *TaskUpdate) ClearHumanReviewQuestion() *TaskUpdate {
	_u.mutation.ClearHumanReviewQuestion()
	return _u
}

// SetHumanReviewAnswer sets the "human_review_answer" field.
func (_u *TaskUpdate) SetHumanReviewAnswer(v string) *TaskUpdate {
	_u.mutation.SetHumanReviewAnswer(v)
	return _u
}

// SetNillableHumanReviewAnswer sets the "human_review_answer" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableHumanReviewAnswer(v *string) *TaskUpdate {
	if v != nil {
		_u.SetHumanReviewAnswer(*v)
	}
	return _u
}

// ClearHumanReviewAnswer clears the value of the "human_review_answer" field.
func (_u *TaskUpdate) ClearHumanReviewAnswer() *TaskUpdate {
	_u.mutation.ClearHumanReviewAnswer()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *TaskUpdate) SetRetryCount(v int) *TaskUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableRetryCount(v *int) *TaskUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *TaskUpdate) AddRetryCount(v int) *TaskUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetIsEpic sets the "is_epic" field.
func (_u *TaskUpdate) SetIsEpic(v bool) *TaskUpdate {
	_u.mutation.SetIsEpic(v)
	return _u
}

// SetNillableIsEpic sets the "is_epic" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableIsEpic(v *bool) *TaskUpdate {
	if v != nil {
		_u.SetIsEpic(*v)
	}
	return _u
}

// SetParentTaskID sets the "parent_task_id" field.
func (_u *TaskUpdate) SetParentTaskID(v string) *TaskUpdate {
	_u.mutation.SetParentTaskID(v)
	return _u
}

// SetNillableParentTaskID sets the "parent_task_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableParentTaskID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetParentTaskID(*v)
	}
	return _u
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (_u *TaskUpdate) ClearParentTaskID() *TaskUpdate {
	_u.mutation.ClearParentTaskID()
	return _u
}

// SetLinkedGithubIssueNumber sets the "linked_github_issue_number" field.
func (_u *TaskUpdate) SetLinkedGithubIssueNumber(v int) *TaskUpdate {
	_u.mutation.ResetLinkedGithubIssueNumber()
	_u.mutation.SetLinkedGithubIssueNumber(v)
	return _u
}

// SetNillableLinkedGithubIssueNumber sets the "linked_github_issue_number" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableLinkedGithubIssueNumber(v *int) *TaskUpdate {
	if v != nil {
		_u.SetLinkedGithubIssueNumber(*v)
	}
	return _u
}

// AddLinkedGithubIssueNumber adds value to the "linked_github_issue_number" field.
func (_u *TaskUpdate) AddLinkedGithubIssueNumber(v int) *TaskUpdate {
	_u.mutation.AddLinkedGithubIssueNumber(v)
	return _u
}

// ClearLinkedGithubIssueNumber clears the value of the "linked_github_issue_number" field.
func (_u *TaskUpdate) ClearLinkedGithubIssueNumber() *TaskUpdate {
	_u.mutation.ClearLinkedGithubIssueNumber()
	return _u
}

// SetChildDependencies sets the "child_dependencies" field.
func (_u *TaskUpdate) SetChildDependencies(v []string) *TaskUpdate {
	_u.mutation.SetChildDependencies(v)
	return _u
}

// AppendChildDependencies appends value to the "child_dependencies" field.
func (_u *TaskUpdate) AppendChildDependencies(v []string) *TaskUpdate {
	_u.mutation.AppendChildDependencies(v)
	return _u
}

// ClearChildDependencies clears the value of the "child_dependencies" field.
func (_u *TaskUpdate) ClearChildDependencies() *TaskUpdate {
	_u.mutation.ClearChildDependencies()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdate) SetUpdatedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskUpdate) SetStartedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStartedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskUpdate) ClearStartedAt() *TaskUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdate) SetCompletedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCompletedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdate) ClearCompletedAt() *TaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddSubtaskIDs adds the "subtasks" edge to the Subtask entity by IDs.
func (_u *TaskUpdate) AddSubtaskIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddSubtaskIDs(ids...)
	return _u
}

// AddSubtasks adds the "subtasks" edges to the Subtask entity.
func (_u *TaskUpdate) AddSubtasks(v ...*Subtask) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubtaskIDs(ids...)
}

// AddAgentRunIDs adds the "agent_runs" edge to the AgentRun entity by IDs.
func (_u *TaskUpdate) AddAgentRunIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddAgentRunIDs(ids...)
	return _u
}

// AddAgentRuns adds the "agent_runs" edges to the AgentRun entity.
func (_u *TaskUpdate) AddAgentRuns(v ...*AgentRun) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentRunIDs(ids...)
}

// AddCodeReviewIDs adds the "code_reviews" edge to the CodeReview entity by IDs.
func (_u *TaskUpdate) AddCodeReviewIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddCodeReviewIDs(ids...)
	return _u
}

// AddCodeReviews adds the "code_reviews" edges to the CodeReview entity.
func (_u *TaskUpdate) AddCodeReviews(v ...*CodeReview) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCodeReviewIDs(ids...)
}

// AddPullRequestIDs adds the "pull_requests" edge to the PullRequest entity by IDs.
func (_u *TaskUpdate) AddPullRequestIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddPullRequestIDs(ids...)
	return _u
}

// AddPullRequests adds the "pull_requests" edges to the PullRequest entity.
func (_u *TaskUpdate) AddPullRequests(v ...*PullRequest) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPullRequestIDs(ids...)
}

// AddNotificationIDs adds the "notifications" edge to the Notification entity by IDs.
func (_u *TaskUpdate) AddNotificationIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddNotificationIDs(ids...)
	return _u
}

// AddNotifications adds the "notifications" edges to the Notification entity.
func (_u *TaskUpdate) AddNotifications(v ...*Notification) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNotificationIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearSubtasks clears all "subtasks" edges to the Subtask entity.
func (_u *TaskUpdate) ClearSubtasks() *TaskUpdate {
	_u.mutation.ClearSubtasks()
	return _u
}

// RemoveSubtaskIDs removes the "subtasks" edge to Subtask entities by IDs.
func (_u *TaskUpdate) RemoveSubtaskIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveSubtaskIDs(ids...)
	return _u
}

// RemoveSubtasks removes "subtasks" edges to Subtask entities.
func (_u *TaskUpdate) RemoveSubtasks(v ...*Subtask) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubtaskIDs(ids...)
}

// ClearAgentRuns clears all "agent_runs" edges to the AgentRun entity.
func (_u *TaskUpdate) ClearAgentRuns() *TaskUpdate {
	_u.mutation.ClearAgentRuns()
	return _u
}

// RemoveAgentRunIDs removes the "agent_runs" edge to AgentRun entities by IDs.
func (_u *TaskUpdate) RemoveAgentRunIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveAgentRunIDs(ids...)
	return _u
}

// RemoveAgentRuns removes "agent_runs" edges to AgentRun entities.
func (_u *TaskUpdate) RemoveAgentRuns(v ...*AgentRun) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentRunIDs(ids...)
}

// ClearCodeReviews clears all "code_reviews" edges to the CodeReview entity.
func (_u *TaskUpdate) ClearCodeReviews() *TaskUpdate {
	_u.mutation.ClearCodeReviews()
	return _u
}

// RemoveCodeReviewIDs removes the "code_reviews" edge to CodeReview entities by IDs.
func (_u *TaskUpdate) RemoveCodeReviewIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveCodeReviewIDs(ids...)
	return _u
}

// RemoveCodeReviews removes "code_reviews" edges to CodeReview entities.
func (_u *TaskUpdate) RemoveCodeReviews(v ...*CodeReview) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCodeReviewIDs(ids...)
}

// ClearPullRequests clears all "pull_requests" edges to the PullRequest entity.
func (_u *TaskUpdate) ClearPullRequests() *TaskUpdate {
	_u.mutation.ClearPullRequests()
	return _u
}

// RemovePullRequestIDs removes the "pull_requests" edge to PullRequest entities by IDs.
func (_u *TaskUpdate) RemovePullRequestIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemovePullRequestIDs(ids...)
	return _u
}

// RemovePullRequests removes "pull_requests" edges to PullRequest entities.
func (_u *TaskUpdate) RemovePullRequests(v ...*PullRequest) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePullRequestIDs(ids...)
}

// ClearNotifications clears all "notifications" edges to the Notification entity.
func (_u *TaskUpdate) ClearNotifications() *TaskUpdate {
	_u.mutation.ClearNotifications()
	return _u
}

// RemoveNotificationIDs removes the "notifications" edge to Notification entities by IDs.
func (_u *TaskUpdate) RemoveNotificationIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveNotificationIDs(ids...)
	return _u
}

// RemoveNotifications removes "notifications" edges to Notification entities.
func (_u *TaskUpdate) RemoveNotifications(v ...*Notification) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNotificationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := task.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "Task.retry_count": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GithubProjectItemID(); ok {
		_spec.SetField(task.FieldGithubProjectItemID, field.TypeString, value)
	}
	if _u.mutation.GithubProjectItemIDCleared() {
		_spec.ClearField(task.FieldGithubProjectItemID, field.TypeString)
	}
	if value, ok := _u.mutation.GithubProjectID(); ok {
		_spec.SetField(task.FieldGithubProjectID, field.TypeString, value)
	}
	if _u.mutation.GithubProjectIDCleared() {
		_spec.ClearField(task.FieldGithubProjectID, field.TypeString)
	}
	if value, ok := _u.mutation.RepositoryFullName(); ok {
		_spec.SetField(task.FieldRepositoryFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RepositoryID(); ok {
		_spec.SetField(task.FieldRepositoryID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRepositoryID(); ok {
		_spec.AddField(task.FieldRepositoryID, field.TypeInt64, value)
	}
	if _u.mutation.RepositoryIDCleared() {
		_spec.ClearField(task.FieldRepositoryID, field.TypeInt64)
	}
	if value, ok := _u.mutation.InstallationID(); ok {
		_spec.SetField(task.FieldInstallationID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedInstallationID(); ok {
		_spec.AddField(task.FieldInstallationID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(task.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BranchName(); ok {
		_spec.SetField(task.FieldBranchName, field.TypeString, value)
	}
	if _u.mutation.BranchNameCleared() {
		_spec.ClearField(task.FieldBranchName, field.TypeString)
	}
	if value, ok := _u.mutation.PullRequestNumber(); ok {
		_spec.SetField(task.FieldPullRequestNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPullRequestNumber(); ok {
		_spec.AddField(task.FieldPullRequestNumber, field.TypeInt, value)
	}
	if _u.mutation.PullRequestNumberCleared() {
		_spec.ClearField(task.FieldPullRequestNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.PullRequestURL(); ok {
		_spec.SetField(task.FieldPullRequestURL, field.TypeString, value)
	}
	if _u.mutation.PullRequestURLCleared() {
		_spec.ClearField(task.FieldPullRequestURL, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(task.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(task.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.HumanReviewQuestion(); ok {
		_spec.SetField(task.FieldHumanReviewQuestion, field.TypeString, value)
	}
	if _u.mutation.HumanReviewQuestionCleared() {
		_spec.ClearField(task.FieldHumanReviewQuestion, field.TypeString)
	}
	if value, ok := _u.mutation.HumanReviewAnswer(); ok {
		_spec.SetField(task.FieldHumanReviewAnswer, field.TypeString, value)
	}
	if _u.mutation.HumanReviewAnswerCleared() {
		_spec.ClearField(task.FieldHumanReviewAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(task.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(task.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsEpic(); ok {
		_spec.SetField(task.FieldIsEpic, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ParentTaskID(); ok {
		_spec.SetField(task.FieldParentTaskID, field.TypeString, value)
	}
	if _u.mutation.ParentTaskIDCleared() {
		_spec.ClearField(task.FieldParentTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.LinkedGithubIssueNumber(); ok {
		_spec.SetField(task.FieldLinkedGithubIssueNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLinkedGithubIssueNumber(); ok {
		_spec.AddField(task.FieldLinkedGithubIssueNumber, field.TypeInt, value)
	}
	if _u.mutation.LinkedGithubIssueNumberCleared() {
		_spec.ClearField(task.FieldLinkedGithubIssueNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.ChildDependencies(); ok {
		_spec.SetField(task.FieldChildDependencies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChildDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldChildDependencies, value)
		})
	}
	if _u.mutation.ChildDependenciesCleared() {
		_spec.ClearField(task.FieldChildDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(task.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.SubtasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.SubtasksTable,
			Columns: []string{task.SubtasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subtask.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubtasksIDs(); len(nodes) > 0 && !_u.mutation.SubtasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.SubtasksTable,
			Columns: []string{task.SubtasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subtask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubtasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.SubtasksTable,
			Columns: []string{task.SubtasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subtask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AgentRunsTable,
			Columns: []string{task.AgentRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentRunsIDs(); len(nodes) > 0 && !_u.mutation.AgentRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AgentRunsTable,
			Columns: []string{task.AgentRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentRunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AgentRunsTable,
			Columns: []string{task.AgentRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CodeReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CodeReviewsTable,
			Columns: []string{task.CodeReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(codereview.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCodeReviewsIDs(); len(nodes) > 0 && !_u.mutation.CodeReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CodeReviewsTable,
			Columns: []string{task.CodeReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(codereview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CodeReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CodeReviewsTable,
			Columns: []string{task.CodeReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(codereview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PullRequestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.PullRequestsTable,
			Columns: []string{task.PullRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pullrequest.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPullRequestsIDs(); len(nodes) > 0 && !_u.mutation.PullRequestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.PullRequestsTable,
			Columns: []string{task.PullRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pullrequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PullRequestsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.PullRequestsTable,
			Columns: []string{task.PullRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pullrequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NotificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.NotificationsTable,
			Columns: []string{task.NotificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notification.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNotificationsIDs(); len(nodes) > 0 && !_u.mutation.NotificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.NotificationsTable,
			Columns: []string{task.NotificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notification.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NotificationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.NotificationsTable,
			Columns: []string{task.NotificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notification.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetGithubProjectItemID sets the "github_project_item_id" field.
func (_u *TaskUpdateOne) SetGithubProjectItemID(v string) *TaskUpdateOne {
	_u.mutation.SetGithubProjectItemID(v)
	return _u
}

// SetNillableGithubProjectItemID sets the "github_project_item_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableGithubProjectItemID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetGithubProjectItemID(*v)
	}
	return _u
}

// ClearGithubProjectItemID clears the value of the "github_project_item_id" field.
func (_u *TaskUpdateOne) ClearGithubProjectItemID() *TaskUpdateOne {
	_u.mutation.ClearGithubProjectItemID()
	return _u
}

// SetGithubProjectID sets the "github_project_id" field.
func (_u *TaskUpdateOne) SetGithubProjectID(v string) *TaskUpdateOne {
	_u.mutation.SetGithubProjectID(v)
	return _u
}

// SetNillableGithubProjectID sets the "github_project_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableGithubProjectID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetGithubProjectID(*v)
	}
	return _u
}

// ClearGithubProjectID clears the value of the "github_project_id" field.
func (_u *TaskUpdateOne) ClearGithubProjectID() *TaskUpdateOne {
	_u.mutation.ClearGithubProjectID()
	return _u
}

// SetRepositoryFullName sets the "repository_full_name" field.
func (_u *TaskUpdateOne) SetRepositoryFullName(v string) *TaskUpdateOne {
	_u.mutation.SetRepositoryFullName(v)
	return _u
}

// SetNillableRepositoryFullName sets the "repository_full_name" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableRepositoryFullName(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetRepositoryFullName(*v)
	}
	return _u
}

// SetRepositoryID sets the "repository_id" field.
func (_u *TaskUpdateOne) SetRepositoryID(v int64) *TaskUpdateOne {
	_u.mutation.ResetRepositoryID()
	_u.mutation.SetRepositoryID(v)
	return _u
}

// SetNillableRepositoryID sets the "repository_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableRepositoryID(v *int64) *TaskUpdateOne {
	if v != nil {
		_u.SetRepositoryID(*v)
	}
	return _u
}

// AddRepositoryID adds value to the "repository_id" field.
func (_u *TaskUpdateOne) AddRepositoryID(v int64) *TaskUpdateOne {
	_u.mutation.AddRepositoryID(v)
	return _u
}

// ClearRepositoryID clears the value of the "repository_id" field.
func (_u *TaskUpdateOne) ClearRepositoryID() *TaskUpdateOne {
	_u.mutation.ClearRepositoryID()
	return _u
}

// SetInstallationID sets the "installation_id" field.
func (_u *TaskUpdateOne) SetInstallationID(v int64) *TaskUpdateOne {
	_u.mutation.ResetInstallationID()
	_u.mutation.SetInstallationID(v)
	return _u
}

// SetNillableInstallationID sets the "installation_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableInstallationID(v *int64) *TaskUpdateOne {
	if v != nil {
		_u.SetInstallationID(*v)
	}
	return _u
}

// AddInstallationID adds value to the "installation_id" field.
func (_u *TaskUpdateOne) AddInstallationID(v int64) *TaskUpdateOne {
	_u.mutation.AddInstallationID(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdateOne) SetTitle(v string) *TaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTitle(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdateOne) SetDescription(v string) *TaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDescription(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TaskUpdateOne) ClearDescription() *TaskUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBranchName sets the "branch_name" field.
func (_u *TaskUpdateOne) SetBranchName(v string) *TaskUpdateOne {
	_u.mutation.SetBranchName(v)
	return _u
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableBranchName(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetBranchName(*v)
	}
	return _u
}

// ClearBranchName clears the value of the "branch_name" field.
func (_u *TaskUpdateOne) ClearBranchName() *TaskUpdateOne {
	_u.mutation.ClearBranchName()
	return _u
}

// SetPullRequestNumber sets the "pull_request_number" field.
func (_u *TaskUpdateOne) SetPullRequestNumber(v int) *TaskUpdateOne {
	_u.mutation.ResetPullRequestNumber()
	_u.mutation.SetPullRequestNumber(v)
	return _u
}

// SetNillablePullRequestNumber sets the "pull_request_number" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePullRequestNumber(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetPullRequestNumber(*v)
	}
	return _u
}

// AddPullRequestNumber adds value to the "pull_request_number" field.
func (_u *TaskUpdateOne) AddPullRequestNumber(v int) *TaskUpdateOne {
	_u.mutation.AddPullRequestNumber(v)
	return _u
}

// ClearPullRequestNumber clears the value of the "pull_request_number" field.
func (_u *TaskUpdateOne) ClearPullRequestNumber() *TaskUpdateOne {
	_u.mutation.ClearPullRequestNumber()
	return _u
}

// SetPullRequestURL sets the "pull_request_url" field.
func (_u *TaskUpdateOne) SetPullRequestURL(v string) *TaskUpdateOne {
	_u.mutation.SetPullRequestURL(v)
	return _u
}

// SetNillablePullRequestURL sets the "pull_request_url" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePullRequestURL(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetPullRequestURL(*v)
	}
	return _u
}

// ClearPullRequestURL clears the value of the "pull_request_url" field.
func (_u *TaskUpdateOne) ClearPullRequestURL() *TaskUpdateOne {
	_u.mutation.ClearPullRequestURL()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TaskUpdateOne) SetErrorMessage(v string) *TaskUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableErrorMessage(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TaskUpdateOne) ClearErrorMessage() *TaskUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetHumanReviewQuestion sets the "human_review_question" field.
func (_u *TaskUpdateOne) SetHumanReviewQuestion(v string) *TaskUpdateOne {
	_u.mutation.SetHumanReviewQuestion(v)
	return _u
}

// SetNillableHumanReviewQuestion sets the "human_review_question" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableHumanReviewQuestion(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetHumanReviewQuestion(*v)
	}
	return _u
}

// ClearHumanReviewQuestion clears the value of the "human_review_question" field.
func (_u *TaskUpdateOne) ClearHumanReviewQuestion() *TaskUpdateOne {
	_u.mutation.ClearHumanReviewQuestion()
	return _u
}

// SetHumanReviewAnswer sets the "human_review_answer" field.
func (_u *TaskUpdateOne) SetHumanReviewAnswer(v string) *TaskUpdateOne {
	_u.mutation.SetHumanReviewAnswer(v)
	return _u
}

// SetNillableHumanReviewAnswer sets the "human_review_answer" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableHumanReviewAnswer(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetHumanReviewAnswer(*v)
	}
	return _u
}

// ClearHumanReviewAnswer clears the value of the "human_review_answer" field.
func (_u *TaskUpdateOne) ClearHumanReviewAnswer() *TaskUpdateOne {
	_u.mutation.ClearHumanReviewAnswer()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *TaskUpdateOne) SetRetryCount(v int) *TaskUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableRetryCount(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *TaskUpdateOne) AddRetryCount(v int) *TaskUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetIsEpic sets the "is_epic" field.
func (_u *TaskUpdateOne) SetIsEpic(v bool) *TaskUpdateOne {
	_u.mutation.SetIsEpic(v)
	return _u
}

// SetNillableIsEpic sets the "is_epic" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableIsEpic(v *bool) *TaskUpdateOne {
	if v != nil {
		_u.SetIsEpic(*v)
	}
	return _u
}

// SetParentTaskID sets the "parent_task_id" field.
func (_u *TaskUpdateOne) SetParentTaskID(v string) *TaskUpdateOne {
	_u.mutation.SetParentTaskID(v)
	return _u
}

// SetNillableParentTaskID sets the "parent_task_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableParentTaskID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetParentTaskID(*v)
	}
	return _u
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (_u *TaskUpdateOne) ClearParentTaskID() *TaskUpdateOne {
	_u.mutation.ClearParentTaskID()
	return _u
}

// SetLinkedGithubIssueNumber sets the "linked_github_issue_number" field.
func (_u *TaskUpdateOne) SetLinkedGithubIssueNumber(v int) *TaskUpdateOne {
	_u.mutation.ResetLinkedGithubIssueNumber()
	_u.mutation.SetLinkedGithubIssueNumber(v)
	return _u
}

// SetNillableLinkedGithubIssueNumber sets the "linked_github_issue_number" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableLinkedGithubIssueNumber(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetLinkedGithubIssueNumber(*v)
	}
	return _u
}

// AddLinkedGithubIssueNumber adds value to the "linked_github_issue_number" field.
func (_u *TaskUpdateOne) AddLinkedGithubIssueNumber(v int) *TaskUpdateOne {
	_u.mutation.AddLinkedGithubIssueNumber(v)
	return _u
}

// ClearLinkedGithubIssueNumber clears the value of the "linked_github_issue_number" field.
func (_u *TaskUpdateOne) ClearLinkedGithubIssueNumber() *TaskUpdateOne {
	_u.mutation.ClearLinkedGithubIssueNumber()
	return _u
}

// SetChildDependencies sets the "child_dependencies" field.
func (_u *TaskUpdateOne) SetChildDependencies(v []string) *TaskUpdateOne {
	_u.mutation.SetChildDependencies(v)
	return _u
}

// AppendChildDependencies appends value to the "child_dependencies" field.
func (_u *TaskUpdateOne) AppendChildDependencies(v []string) *TaskUpdateOne {
	_u.mutation.AppendChildDependencies(v)
	return _u
}

// ClearChildDependencies clears the value of the "child_dependencies" field.
func (_u *TaskUpdateOne) ClearChildDependencies() *TaskUpdateOne {
	_u.mutation.ClearChildDependencies()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdateOne) SetUpdatedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskUpdateOne) SetStartedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStartedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskUpdateOne) ClearStartedAt() *TaskUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdateOne) SetCompletedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCompletedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdateOne) ClearCompletedAt() *TaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddSubtaskIDs adds the "subtasks" edge to the Subtask entity by IDs.
func (_u *TaskUpdateOne) AddSubtaskIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddSubtaskIDs(ids...)
	return _u
}

// AddSubtasks adds the "subtasks" edges to the Subtask entity.
func (_u *TaskUpdateOne) AddSubtasks(v ...*Subtask) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubtaskIDs(ids...)
}

// AddAgentRunIDs adds the "agent_runs" edge to the AgentRun entity by IDs.
func (_u *TaskUpdateOne) AddAgentRunIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddAgentRunIDs(ids...)
	return _u
}

// AddAgentRuns adds the "agent_runs" edges to the AgentRun entity.
func (_u *TaskUpdateOne) AddAgentRuns(v ...*AgentRun) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentRunIDs(ids...)
}

// AddCodeReviewIDs adds the "code_reviews" edge to the CodeReview entity by IDs.
func (_u *TaskUpdateOne) AddCodeReviewIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddCodeReviewIDs(ids...)
	return _u
}

// AddCodeReviews adds the "code_reviews" edges to the CodeReview entity.
func (_u *TaskUpdateOne) AddCodeReviews(v ...*CodeReview) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCodeReviewIDs(ids...)
}

// AddPullRequestIDs adds the "pull_requests" edge to the PullRequest entity by IDs.
func (_u *TaskUpdateOne) AddPullRequestIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddPullRequestIDs(ids...)
	return _u
}

// AddPullRequests adds the "pull_requests" edges to the PullRequest entity.
func (_u *TaskUpdateOne) AddPullRequests(v ...*PullRequest) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPullRequestIDs(ids...)
}

// AddNotificationIDs adds the "notifications" edge to the Notification entity by IDs.
func (_u *TaskUpdateOne) AddNotificationIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddNotificationIDs(ids...)
	return _u
}

// AddNotifications adds the "notifications" edges to the Notification entity.
func (_u *TaskUpdateOne) AddNotifications(v ...*Notification) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNotificationIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearSubtasks clears all "subtasks" edges to the Subtask entity.
func (_u *TaskUpdateOne) ClearSubtasks() *TaskUpdateOne {
	_u.mutation.ClearSubtasks()
	return _u
}

// RemoveSubtaskIDs removes the "subtasks" edge to Subtask entities by IDs.
func (_u *TaskUpdateOne) RemoveSubtaskIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveSubtaskIDs(ids...)
	return _u
}

// RemoveSubtasks removes "subtasks" edges to Subtask entities.
func (_u *TaskUpdateOne) RemoveSubtasks(v ...*Subtask) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubtaskIDs(ids...)
}

// ClearAgentRuns clears all "agent_runs" edges to the AgentRun entity.
func (_u *TaskUpdateOne) ClearAgentRuns() *TaskUpdateOne {
	_u.mutation.ClearAgentRuns()
	return _u
}

// RemoveAgentRunIDs removes the "agent_runs" edge to AgentRun entities by IDs.
func (_u *TaskUpdateOne) RemoveAgentRunIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveAgentRunIDs(ids...)
	return _u
}

// RemoveAgentRuns removes "agent_runs" edges to AgentRun entities.
func (_u *TaskUpdateOne) RemoveAgentRuns(v ...*AgentRun) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentRunIDs(ids...)
}

// ClearCodeReviews clears all "code_reviews" edges to the CodeReview entity.
func (_u *TaskUpdateOne) ClearCodeReviews() *TaskUpdateOne {
	_u.mutation.ClearCodeReviews()
	return _u
}

// RemoveCodeReviewIDs removes the "code_reviews" edge to CodeReview entities by IDs.
func (_u *TaskUpdateOne) RemoveCodeReviewIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveCodeReviewIDs(ids...)
	return _u
}

// RemoveCodeReviews removes "code_reviews" edges to CodeReview entities.
func (_u *TaskUpdateOne) RemoveCodeReviews(v ...*CodeReview) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCodeReviewIDs(ids...)
}

// ClearPullRequests clears all "pull_requests" edges to the PullRequest entity.
func (_u *TaskUpdateOne) ClearPullRequests() *TaskUpdateOne {
	_u.mutation.ClearPullRequests()
	return _u
}

// RemovePullRequestIDs removes the "pull_requests" edge to PullRequest entities by IDs.
func (_u *TaskUpdateOne) RemovePullRequestIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemovePullRequestIDs(ids...)
	return _u
}

// RemovePullRequests removes "pull_requests" edges to PullRequest entities.
func (_u *TaskUpdateOne) RemovePullRequests(v ...*PullRequest) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePullRequestIDs(ids...)
}

// ClearNotifications clears all "notifications" edges to the Notification entity.
func (_u *TaskUpdateOne) ClearNotifications() *TaskUpdateOne {
	_u.mutation.ClearNotifications()
	return _u
}

// RemoveNotificationIDs removes the "notifications" edge to Notification entities by IDs.
func (_u *TaskUpdateOne) RemoveNotificationIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveNotificationIDs(ids...)
	return _u
}

// RemoveNotifications removes "notifications" edges to Notification entities.
func (_u *TaskUpdateOne) RemoveNotifications(v ...*Notification) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNotificationIDs(ids...)
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := task.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "Task.retry_count": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GithubProjectItemID(); ok {
		_spec.SetField(task.FieldGithubProjectItemID, field.TypeString, value)
	}
	if _u.mutation.GithubProjectItemIDCleared() {
		_spec.ClearField(task.FieldGithubProjectItemID, field.TypeString)
	}
	if value, ok := _u.mutation.GithubProjectID(); ok {
		_spec.SetField(task.FieldGithubProjectID, field.TypeString, value)
	}
	if _u.mutation.GithubProjectIDCleared() {
		_spec.ClearField(task.FieldGithubProjectID, field.TypeString)
	}
	if value, ok := _u.mutation.RepositoryFullName(); ok {
		_spec.SetField(task.FieldRepositoryFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RepositoryID(); ok {
		_spec.SetField(task.FieldRepositoryID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRepositoryID(); ok {
		_spec.AddField(task.FieldRepositoryID, field.TypeInt64, value)
	}
	if _u.mutation.RepositoryIDCleared() {
		_spec.ClearField(task.FieldRepositoryID, field.TypeInt64)
	}
	if value, ok := _u.mutation.InstallationID(); ok {
		_spec.SetField(task.FieldInstallationID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedInstallationID(); ok {
		_spec.AddField(task.FieldInstallationID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(task.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BranchName(); ok {
		_spec.SetField(task.FieldBranchName, field.TypeString, value)
	}
	if _u.mutation.BranchNameCleared() {
		_spec.ClearField(task.FieldBranchName, field.TypeString)
	}
	if value, ok := _u.mutation.PullRequestNumber(); ok {
		_spec.SetField(task.FieldPullRequestNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPullRequestNumber(); ok {
		_spec.AddField(task.FieldPullRequestNumber, field.TypeInt, value)
	}
	if _u.mutation.PullRequestNumberCleared() {
		_spec.ClearField(task.FieldPullRequestNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.PullRequestURL(); ok {
		_spec.SetField(task.FieldPullRequestURL, field.TypeString, value)
	}
	if _u.mutation.PullRequestURLCleared() {
		_spec.ClearField(task.FieldPullRequestURL, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(task.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(task.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.HumanReviewQuestion(); ok {
		_spec.SetField(task.FieldHumanReviewQuestion, field.TypeString, value)
	}
	if _u.mutation.HumanReviewQuestionCleared() {
		_spec.ClearField(task.FieldHumanReviewQuestion, field.TypeString)
	}
	if value, ok := _u.mutation.HumanReviewAnswer(); ok {
		_spec.SetField(task.FieldHumanReviewAnswer, field.TypeString, value)
	}
	if _u.mutation.HumanReviewAnswerCleared() {
		_spec.ClearField(task.FieldHumanReviewAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(task.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(task.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsEpic(); ok {
		_spec.SetField(task.FieldIsEpic, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ParentTaskID(); ok {
		_spec.SetField(task.FieldParentTaskID, field.TypeString, value)
	}
	if _u.mutation.ParentTaskIDCleared() {
		_spec.ClearField(task.FieldParentTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.LinkedGithubIssueNumber(); ok {
		_spec.SetField(task.FieldLinkedGithubIssueNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLinkedGithubIssueNumber(); ok {
		_spec.AddField(task.FieldLinkedGithubIssueNumber, field.TypeInt, value)
	}
	if _u.mutation.LinkedGithubIssueNumberCleared() {
		_spec.ClearField(task.FieldLinkedGithubIssueNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.ChildDependencies(); ok {
		_spec.SetField(task.FieldChildDependencies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChildDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldChildDependencies, value)
		})
	}
	if _u.mutation.ChildDependenciesCleared() {
		_spec.ClearField(task.FieldChildDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(task.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.SubtasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.SubtasksTable,
			Columns: []string{task.SubtasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subtask.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubtasksIDs(); len(nodes) > 0 && !_u.mutation.SubtasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.SubtasksTable,
			Columns: []string{task.SubtasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subtask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubtasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.SubtasksTable,
			Columns: []string{task.SubtasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subtask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AgentRunsTable,
			Columns: []string{task.AgentRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentRunsIDs(); len(nodes) > 0 && !_u.mutation.AgentRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AgentRunsTable,
			Columns: []string{task.AgentRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentRunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AgentRunsTable,
			Columns: []string{task.AgentRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CodeReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CodeReviewsTable,
			Columns: []string{task.CodeReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(codereview.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCodeReviewsIDs(); len(nodes) > 0 && !_u.mutation.CodeReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CodeReviewsTable,
			Columns: []string{task.CodeReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(codereview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CodeReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CodeReviewsTable,
			Columns: []string{task.CodeReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(codereview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PullRequestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.PullRequestsTable,
			Columns: []string{task.PullRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pullrequest.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPullRequestsIDs(); len(nodes) > 0 && !_u.mutation.PullRequestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.PullRequestsTable,
			Columns: []string{task.PullRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pullrequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PullRequestsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.PullRequestsTable,
			Columns: []string{task.PullRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pullrequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NotificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.NotificationsTable,
			Columns: []string{task.NotificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notification.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNotificationsIDs(); len(nodes) > 0 && !_u.mutation.NotificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.NotificationsTable,
			Columns: []string{task.NotificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notification.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NotificationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.NotificationsTable,
			Columns: []string{task.NotificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notification.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
