// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/conductor-ci/conductor/ent/agentrun"
	"github.com/conductor-ci/conductor/ent/codereview"
	"github.com/conductor-ci/conductor/ent/notification"
	"github.com/conductor-ci/conductor/ent/pullrequest"
	"github.com/conductor-ci/conductor/ent/subtask"
	"github.com/conductor-ci/conductor/ent/task"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
}

// SetGithubProjectItemID sets the "github_project_item_id" field.
func (_c *TaskCreate) SetGithubProjectItemID(v string) *TaskCreate {
	_c.mutation.SetGithubProjectItemID(v)
	return _c
}

// SetNillableGithubProjectItemID sets the "github_project_item_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableGithubProjectItemID(v *string) *TaskCreate {
	if v != nil {
		_c.SetGithubProjectItemID(*v)
	}
	return _c
}

// SetGithubProjectID sets the "github_project_id" field.
func (_c *TaskCreate) SetGithubProjectID(v string) *TaskCreate {
	_c.mutation.SetGithubProjectID(v)
	return _c
}

// SetNillableGithubProjectID sets the "github_project_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableGithubProjectID(v *string) *TaskCreate {
	if v != nil {
		_c.SetGithubProjectID(*v)
	}
	return _c
}

// SetRepositoryFullName sets the "repository_full_name" field.
func (_c *TaskCreate) SetRepositoryFullName(v string) *TaskCreate {
	_c.mutation.SetRepositoryFullName(v)
	return _c
}

// SetRepositoryID sets the "repository_id" field.
func (_c *TaskCreate) SetRepositoryID(v int64) *TaskCreate {
	_c.mutation.SetRepositoryID(v)
	return _c
}

// SetNillableRepositoryID sets the "repository_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableRepositoryID(v *int64) *TaskCreate {
	if v != nil {
		_c.SetRepositoryID(*v)
	}
	return _c
}

// SetInstallationID sets the "installation_id" field.
func (_c *TaskCreate) SetInstallationID(v int64) *TaskCreate {
	_c.mutation.SetInstallationID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *TaskCreate) SetTitle(v string) *TaskCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *TaskCreate) SetDescription(v string) *TaskCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *TaskCreate) SetNillableDescription(v *string) *TaskCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskCreate) SetStatus(v task.Status) *TaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStatus(v *task.Status) *TaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetBranchName sets the "branch_name" field.
func (_c *TaskCreate) SetBranchName(v string) *TaskCreate {
	_c.mutation.SetBranchName(v)
	return _c
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_c *TaskCreate) SetNillableBranchName(v *string) *TaskCreate {
	if v != nil {
		_c.SetBranchName(*v)
	}
	return _c
}

// SetPullRequestNumber sets the "pull_request_number" field.
func (_c *TaskCreate) SetPullRequestNumber(v int) *TaskCreate {
	_c.mutation.SetPullRequestNumber(v)
	return _c
}

// SetNillablePullRequestNumber sets the "pull_request_number" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePullRequestNumber(v *int) *TaskCreate {
	if v != nil {
		_c.SetPullRequestNumber(*v)
	}
	return _c
}

// SetPullRequestURL sets the "pull_request_url" field.
func (_c *TaskCreate) SetPullRequestURL(v string) *TaskCreate {
	_c.mutation.SetPullRequestURL(v)
	return _c
}

// SetNillablePullRequestURL sets the "pull_request_url" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePullRequestURL(v *string) *TaskCreate {
	if v != nil {
		_c.SetPullRequestURL(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *TaskCreate) SetErrorMessage(v string) *TaskCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *TaskCreate) SetNillableErrorMessage(v *string) *TaskCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetHumanReviewQuestion sets the "human_review_question" field.
func (_c *TaskCreate) SetHumanReviewQuestion(v string) *TaskCreate {
	_c.mutation.SetHumanReviewQuestion(v)
	return _c
}

// SetNillableHumanReviewQuestion sets the "human_review_question" field if the given value is not nil.
func (_c *TaskCreate) SetNillableHumanReviewQuestion(v *string) *TaskCreate {
	if v != nil {
		_c.SetHumanReviewQuestion(*v)
	}
	return _c
}

// SetHumanReviewAnswer sets the "human_review_answer" field.
func (_c *TaskCreate) SetHumanReviewAnswer(v string) *TaskCreate {
	_c.mutation.SetHumanReviewAnswer(v)
	return _c
}

// SetNillableHumanReviewAnswer sets the "human_review_answer" field if the given value is not nil.
func (_c *TaskCreate) SetNillableHumanReviewAnswer(v *string) *TaskCreate {
	if v != nil {
		_c.SetHumanReviewAnswer(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *TaskCreate) SetRetryCount(v int) *TaskCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *TaskCreate) SetNillableRetryCount(v *int) *TaskCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetIsEpic sets the "is_epic" field.
func (_c *TaskCreate) SetIsEpic(v bool) *TaskCreate {
	_c.mutation.SetIsEpic(v)
	return _c
}

// SetNillableIsEpic sets the "is_epic" field if the given value is not nil.
func (_c *TaskCreate) SetNillableIsEpic(v *bool) *TaskCreate {
	if v != nil {
		_c.SetIsEpic(*v)
	}
	return _c
}

// SetParentTaskID sets the "parent_task_id" field.
func (_c *TaskCreate) SetParentTaskID(v string) *TaskCreate {
	_c.mutation.SetParentTaskID(v)
	return _c
}

// SetNillableParentTaskID sets the "parent_task_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableParentTaskID(v *string) *TaskCreate {
	if v != nil {
		_c.SetParentTaskID(*v)
	}
	return _c
}

// SetLinkedGithubIssueNumber sets the "linked_github_issue_number" field.
func (_c *TaskCreate) SetLinkedGithubIssueNumber(v int) *TaskCreate {
	_c.mutation.SetLinkedGithubIssueNumber(v)
	return _c
}

// SetNillableLinkedGithubIssueNumber sets the "linked_github_issue_number" field if the given value is not nil.
func (_c *TaskCreate) SetNillableLinkedGithubIssueNumber(v *int) *TaskCreate {
	if v != nil {
		_c.SetLinkedGithubIssueNumber(*v)
	}
	return _c
}

// SetChildDependencies sets the "child_dependencies" field.
func (_c *TaskCreate) SetChildDependencies(v []string) *TaskCreate {
	_c.mutation.SetChildDependencies(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskCreate) SetCreatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TaskCreate) SetUpdatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableUpdatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TaskCreate) SetStartedAt(v time.Time) *TaskCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStartedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TaskCreate) SetCompletedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCompletedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskCreate) SetID(v string) *TaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddSubtaskIDs adds the "subtasks" edge to the Subtask entity by IDs.
func (_c *TaskCreate) AddSubtaskIDs(ids ...string) *TaskCreate {
	_c.mutation.AddSubtaskIDs(ids...)
	return _c
}

// AddSubtasks adds the "subtasks" edges to the Subtask entity.
func (_c *TaskCreate) AddSubtasks(v ...*Subtask) *TaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSubtaskIDs(ids...)
}

// AddAgentRunIDs adds the "agent_runs" edge to the AgentRun entity by IDs.
func (_c *TaskCreate) AddAgentRunIDs(ids ...string) *TaskCreate {
	_c.mutation.AddAgentRunIDs(ids...)
	return _c
}

// AddAgentRuns adds the "agent_runs" edges to the AgentRun entity.
func (_c *TaskCreate) AddAgentRuns(v ...*AgentRun) *TaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAgentRunIDs(ids...)
}

// AddCodeReviewIDs adds the "code_reviews" edge to the CodeReview entity by IDs.
func (_c *TaskCreate) AddCodeReviewIDs(ids ...string) *TaskCreate {
	_c.mutation.AddCodeReviewIDs(ids...)
	return _c
}

// AddCodeReviews adds the "code_reviews" edges to the CodeReview entity.
func (_c *TaskCreate) AddCodeReviews(v ...*CodeReview) *TaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCodeReviewIDs(ids...)
}

// AddPullRequestIDs adds the "pull_requests" edge to the PullRequest entity by IDs.
func (_c *TaskCreate) AddPullRequestIDs(ids ...string) *TaskCreate {
	_c.mutation.AddPullRequestIDs(ids...)
	return _c
}

// AddPullRequests adds the "pull_requests" edges to the PullRequest entity.
func (_c *TaskCreate) AddPullRequests(v ...*PullRequest) *TaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPullRequestIDs(ids...)
}

// AddNotificationIDs adds the "notifications" edge to the Notification entity by IDs.
func (_c *TaskCreate) AddNotificationIDs(ids ...string) *TaskCreate {
	_c.mutation.AddNotificationIDs(ids...)
	return _c
}

// AddNotifications adds the "notifications" edges to the Notification entity.
func (_c *TaskCreate) AddNotifications(v ...*Notification) *TaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddNotificationIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_c *TaskCreate) Mutation() *TaskMutation {
	return _c.mutation
}

// Save creates the Task in the database.
func (_c *TaskCreate) Save(ctx context.Context) (*Task, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := task.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := task.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.IsEpic(); !ok {
		v := task.DefaultIsEpic
		_c.mutation.SetIsEpic(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := task.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := task.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCreate) check() error {
	if _, ok := _c.mutation.RepositoryFullName(); !ok {
		return &ValidationError{Name: "repository_full_name", err: errors.New(`ent: missing required field "Task.repository_full_name"`)}
	}
	if _, ok := _c.mutation.InstallationID(); !ok {
		return &ValidationError{Name: "installation_id", err: errors.New(`ent: missing required field "Task.installation_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Task.title"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Task.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "Task.retry_count"`)}
	}
	if v, ok := _c.mutation.RetryCount(); ok {
		if err := task.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "Task.retry_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsEpic(); !ok {
		return &ValidationError{Name: "is_epic", err: errors.New(`ent: missing required field "Task.is_epic"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Task.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Task.updated_at"`)}
	}
	return nil
}

func (_c *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Task.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.GithubProjectItemID(); ok {
		_spec.SetField(task.FieldGithubProjectItemID, field.TypeString, value)
		_node.GithubProjectItemID = value
	}
	if value, ok := _c.mutation.GithubProjectID(); ok {
		_spec.SetField(task.FieldGithubProjectID, field.TypeString, value)
		_node.GithubProjectID = value
	}
	if value, ok := _c.mutation.RepositoryFullName(); ok {
		_spec.SetField(task.FieldRepositoryFullName, field.TypeString, value)
		_node.RepositoryFullName = value
	}
	if value, ok := _c.mutation.RepositoryID(); ok {
		_spec.SetField(task.FieldRepositoryID, field.TypeInt64, value)
		_node.RepositoryID = value
	}
	if value, ok := _c.mutation.InstallationID(); ok {
		_spec.SetField(task.FieldInstallationID, field.TypeInt64, value)
		_node.InstallationID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.BranchName(); ok {
		_spec.SetField(task.FieldBranchName, field.TypeString, value)
		_node.BranchName = &value
	}
	if value, ok := _c.mutation.PullRequestNumber(); ok {
		_spec.SetField(task.FieldPullRequestNumber, field.TypeInt, value)
		_node.PullRequestNumber = &value
	}
	if value, ok := _c.mutation.PullRequestURL(); ok {
		_spec.SetField(task.FieldPullRequestURL, field.TypeString, value)
		_node.PullRequestURL = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(task.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.HumanReviewQuestion(); ok {
		_spec.SetField(task.FieldHumanReviewQuestion, field.TypeString, value)
		_node.HumanReviewQuestion = &value
	}
	if value, ok := _c.mutation.HumanReviewAnswer(); ok {
		_spec.SetField(task.FieldHumanReviewAnswer, field.TypeString, value)
		_node.HumanReviewAnswer = &value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(task.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.IsEpic(); ok {
		_spec.SetField(task.FieldIsEpic, field.TypeBool, value)
		_node.IsEpic = value
	}
	if value, ok := _c.mutation.ParentTaskID(); ok {
		_spec.SetField(task.FieldParentTaskID, field.TypeString, value)
		_node.ParentTaskID = &value
	}
	if value, ok := _c.mutation.LinkedGithubIssueNumber(); ok {
		_spec.SetField(task.FieldLinkedGithubIssueNumber, field.TypeInt, value)
		_node.LinkedGithubIssueNumber = &value
	}
	if value, ok := _c.mutation.ChildDependencies(); ok {
		_spec.SetField(task.FieldChildDependencies, field.TypeJSON, value)
		_node.ChildDependencies = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.SubtasksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AgentRunsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CodeReviewsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PullRequestsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.NotificationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
}

// Save creates the Task entities in the database.
func (_c *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Task, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
