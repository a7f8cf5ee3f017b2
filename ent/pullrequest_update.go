// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/conductor-ci/conductor/ent/predicate"
	"github.com/conductor-ci/conductor/ent/pullrequest"
	"github.com/conductor-ci/conductor/ent/task"
)

// PullRequestUpdate is the builder for updating PullRequest entities.
type PullRequestUpdate struct {
	config
	hooks    []Hook
	mutation *PullRequestMutation
}

// Where appends a list predicates to the PullRequestUpdate builder.
func (_u *PullRequestUpdate) Where(ps ...predicate.PullRequest) *PullRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *PullRequestUpdate) SetTaskID(v string) *PullRequestUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *PullRequestUpdate) SetNillableTaskID(v *string) *PullRequestUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetRepositoryFullName sets the "repository_full_name" field.
func (_u *PullRequestUpdate) SetRepositoryFullName(v string) *PullRequestUpdate {
	_u.mutation.SetRepositoryFullName(v)
	return _u
}

// SetNillableRepositoryFullName sets the "repository_full_name" field if the given value is not nil.
func (_u *PullRequestUpdate) SetNillableRepositoryFullName(v *string) *PullRequestUpdate {
	if v != nil {
		_u.SetRepositoryFullName(*v)
	}
	return _u
}

// SetNumber sets the "number" field.
func (_u *PullRequestUpdate) SetNumber(v int) *PullRequestUpdate {
	_u.mutation.ResetNumber()
	_u.mutation.SetNumber(v)
	return _u
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (_u *PullRequestUpdate) SetNillableNumber(v *int) *PullRequestUpdate {
	if v != nil {
		_u.SetNumber(*v)
	}
	return _u
}

// AddNumber adds value to the "number" field.
func (_u *PullRequestUpdate) AddNumber(v int) *PullRequestUpdate {
	_u.mutation.AddNumber(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *PullRequestUpdate) SetTitle(v string) *PullRequestUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PullRequestUpdate) SetNillableTitle(v *string) *PullRequestUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *PullRequestUpdate) SetBody(v string) *PullRequestUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *PullRequestUpdate) SetNillableBody(v *string) *PullRequestUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *PullRequestUpdate) ClearBody() *PullRequestUpdate {
	_u.mutation.ClearBody()
	return _u
}

// SetBranchName sets the "branch_name" field.
func (_u *PullRequestUpdate) SetBranchName(v string) *PullRequestUpdate {
	_u.mutation.SetBranchName(v)
	return _u
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_u *PullRequestUpdate) SetNillableBranchName(v *string) *PullRequestUpdate {
	if v != nil {
		_u.SetBranchName(*v)
	}
	return _u
}

// SetHeadSha sets the "head_sha" field.
func (_u *PullRequestUpdate) SetHeadSha(v string) *PullRequestUpdate {
	_u.mutation.SetHeadSha(v)
	return _u
}

// SetNillableHeadSha sets the "head_sha" field if the given value is not nil.
func (_u *PullRequestUpdate) SetNillableHeadSha(v *string) *PullRequestUpdate {
	if v != nil {
		_u.SetHeadSha(*v)
	}
	return _u
}

// ClearHeadSha clears the value of the "head_sha" field.
func (_u *PullRequestUpdate) ClearHeadSha() *PullRequestUpdate {
	_u.mutation.ClearHeadSha()
	return _u
}

// SetURL sets the "url" field.
func (_u *PullRequestUpdate) SetURL(v string) *PullRequestUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *PullRequestUpdate) SetNillableURL(v *string) *PullRequestUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PullRequestUpdate) SetStatus(v pullrequest.Status) *PullRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PullRequestUpdate) SetNillableStatus(v *pullrequest.Status) *PullRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReviewsPassed sets the "reviews_passed" field.
func (_u *PullRequestUpdate) SetReviewsPassed(v bool) *PullRequestUpdate {
	_u.mutation.SetReviewsPassed(v)
	return _u
}

// SetNillableReviewsPassed sets the "reviews_passed" field if the given value is not nil.
func (_u *PullRequestUpdate) SetNillableReviewsPassed(v *bool) *PullRequestUpdate {
	if v != nil {
		_u.SetReviewsPassed(*v)
	}
	return _u
}

// SetCheckStatus sets the "check_status" field.
func (_u *PullRequestUpdate) SetCheckStatus(v string) *PullRequestUpdate {
	_u.mutation.SetCheckStatus(v)
	return _u
}

// SetNillableCheckStatus sets the "check_status" field if the given value is not nil.
func (_u *PullRequestUpdate) SetNillableCheckStatus(v *string) *PullRequestUpdate {
	if v != nil {
		_u.SetCheckStatus(*v)
	}
	return _u
}

// ClearCheckStatus clears the value of the "check_status" field.
func (_u *PullRequestUpdate) ClearCheckStatus() *PullRequestUpdate {
	_u.mutation.ClearCheckStatus()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PullRequestUpdate) SetUpdatedAt(v time.Time) *PullRequestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *PullRequestUpdate) SetTask(v *Task) *PullRequestUpdate {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the PullRequestMutation object of the builder.
func (_u *PullRequestUpdate) Mutation() *PullRequestMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *PullRequestUpdate) ClearTask() *PullRequestUpdate {
	_u.mutation.ClearTask()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PullRequestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PullRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PullRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PullRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PullRequestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pullrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PullRequestUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pullrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PullRequest.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PullRequest.task"`)
	}
	return nil
}

func (_u *PullRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pullrequest.Table, pullrequest.Columns, sqlgraph.NewFieldSpec(pullrequest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RepositoryFullName(); ok {
		_spec.SetField(pullrequest.FieldRepositoryFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Number(); ok {
		_spec.SetField(pullrequest.FieldNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumber(); ok {
		_spec.AddField(pullrequest.FieldNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(pullrequest.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(pullrequest.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(pullrequest.FieldBody, field.TypeString)
	}
	if value, ok := _u.mutation.BranchName(); ok {
		_spec.SetField(pullrequest.FieldBranchName, field.TypeString, value)
	}
	if value, ok := _u.mutation.HeadSha(); ok {
		_spec.SetField(pullrequest.FieldHeadSha, field.TypeString, value)
	}
	if _u.mutation.HeadShaCleared() {
		_spec.ClearField(pullrequest.FieldHeadSha, field.TypeString)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(pullrequest.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pullrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReviewsPassed(); ok {
		_spec.SetField(pullrequest.FieldReviewsPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CheckStatus(); ok {
		_spec.SetField(pullrequest.FieldCheckStatus, field.TypeString, value)
	}
	if _u.mutation.CheckStatusCleared() {
		_spec.ClearField(pullrequest.FieldCheckStatus, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pullrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pullrequest.TaskTable,
			Columns: []string{pullrequest.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pullrequest.TaskTable,
			Columns: []string{pullrequest.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pullrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PullRequestUpdateOne is the builder for updating a single PullRequest entity.
type PullRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PullRequestMutation
}

// SetTaskID sets the "task_id" field.
func (_u *PullRequestUpdateOne) SetTaskID(v string) *PullRequestUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *PullRequestUpdateOne) SetNillableTaskID(v *string) *PullRequestUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetRepositoryFullName sets the "repository_full_name" field.
func (_u *PullRequestUpdateOne) SetRepositoryFullName(v string) *PullRequestUpdateOne {
	_u.mutation.SetRepositoryFullName(v)
	return _u
}

// SetNillableRepositoryFullName sets the "repository_full_name" field if the given value is not nil.
func (_u *PullRequestUpdateOne) SetNillableRepositoryFullName(v *string) *PullRequestUpdateOne {
	if v != nil {
		_u.SetRepositoryFullName(*v)
	}
	return _u
}

// SetNumber sets the "number" field.
func (_u *PullRequestUpdateOne) SetNumber(v int) *PullRequestUpdateOne {
	_u.mutation.ResetNumber()
	_u.mutation.SetNumber(v)
	return _u
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (_u *PullRequestUpdateOne) SetNillableNumber(v *int) *PullRequestUpdateOne {
	if v != nil {
		_u.SetNumber(*v)
	}
	return _u
}

// AddNumber adds value to the "number" field.
func (_u *PullRequestUpdateOne) AddNumber(v int) *PullRequestUpdateOne {
	_u.mutation.AddNumber(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *PullRequestUpdateOne) SetTitle(v string) *PullRequestUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PullRequestUpdateOne) SetNillableTitle(v *string) *PullRequestUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *PullRequestUpdateOne) SetBody(v string) *PullRequestUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *PullRequestUpdateOne) SetNillableBody(v *string) *PullRequestUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *PullRequestUpdateOne) ClearBody() *PullRequestUpdateOne {
	_u.mutation.ClearBody()
	return _u
}

// SetBranchName sets the "branch_name" field.
func (_u *PullRequestUpdateOne) SetBranchName(v string) *PullRequestUpdateOne {
	_u.mutation.SetBranchName(v)
	return _u
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_u *PullRequestUpdateOne) SetNillableBranchName(v *string) *PullRequestUpdateOne {
	if v != nil {
		_u.SetBranchName(*v)
	}
	return _u
}

// SetHeadSha sets the "head_sha" field.
func (_u *PullRequestUpdateOne) SetHeadSha(v string) *PullRequestUpdateOne {
	_u.mutation.SetHeadSha(v)
	return _u
}

// SetNillableHeadSha sets the "head_sha" field if the given value is not nil.
func (_u *PullRequestUpdateOne) SetNillableHeadSha(v *string) *PullRequestUpdateOne {
	if v != nil {
		_u.SetHeadSha(*v)
	}
	return _u
}

// ClearHeadSha clears the value of the "head_sha" field.
func (_u *PullRequestUpdateOne) ClearHeadSha() *PullRequestUpdateOne {
	_u.mutation.ClearHeadSha()
	return _u
}

// SetURL sets the "url" field.
func (_u *PullRequestUpdateOne) SetURL(v string) *PullRequestUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *PullRequestUpdateOne) SetNillableURL(v *string) *PullRequestUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PullRequestUpdateOne) SetStatus(v pullrequest.Status) *PullRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PullRequestUpdateOne) SetNillableStatus(v *pullrequest.Status) *PullRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReviewsPassed sets the "reviews_passed" field.
func (_u *PullRequestUpdateOne) SetReviewsPassed(v bool) *PullRequestUpdateOne {
	_u.mutation.SetReviewsPassed(v)
	return _u
}

// SetNillableReviewsPassed sets the "reviews_passed" field if the given value is not nil.
func (_u *PullRequestUpdateOne) SetNillableReviewsPassed(v *bool) *PullRequestUpdateOne {
	if v != nil {
		_u.SetReviewsPassed(*v)
	}
	return _u
}

// SetCheckStatus sets the "check_status" field.
func (_u *PullRequestUpdateOne) SetCheckStatus(v string) *PullRequestUpdateOne {
	_u.mutation.SetCheckStatus(v)
	return _u
}

// SetNillableCheckStatus sets the "check_status" field if the given value is not nil.
func (_u *PullRequestUpdateOne) SetNillableCheckStatus(v *string) *PullRequestUpdateOne {
	if v != nil {
		_u.SetCheckStatus(*v)
	}
	return _u
}

// ClearCheckStatus clears the value of the "check_status" field.
func (_u *PullRequestUpdateOne) ClearCheckStatus() *PullRequestUpdateOne {
	_u.mutation.ClearCheckStatus()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PullRequestUpdateOne) SetUpdatedAt(v time.Time) *PullRequestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *PullRequestUpdateOne) SetTask(v *Task) *PullRequestUpdateOne {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the PullRequestMutation object of the builder.
func (_u *PullRequestUpdateOne) Mutation() *PullRequestMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *PullRequestUpdateOne) ClearTask() *PullRequestUpdateOne {
	_u.mutation.ClearTask()
	return _u
}

// Where appends a list predicates to the PullRequestUpdate builder.
func (_u *PullRequestUpdateOne) Where(ps ...predicate.PullRequest) *PullRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PullRequestUpdateOne) Select(field string, fields ...string) *PullRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PullRequest entity.
func (_u *PullRequestUpdateOne) Save(ctx context.Context) (*PullRequest, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PullRequestUpdateOne) SaveX(ctx context.Context) *PullRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PullRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PullRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PullRequestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pullrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PullRequestUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pullrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PullRequest.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PullRequest.task"`)
	}
	return nil
}

func (_u *PullRequestUpdateOne) sqlSave(ctx context.Context) (_node *PullRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pullrequest.Table, pullrequest.Columns, sqlgraph.NewFieldSpec(pullrequest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PullRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pullrequest.FieldID)
		for _, f := range fields {
			if !pullrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pullrequest.FieldID {
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
	if value, ok := _u.mutation.RepositoryFullName(); ok {
		_spec.SetField(pullrequest.FieldRepositoryFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Number(); ok {
		_spec.SetField(pullrequest.FieldNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumber(); ok {
		_spec.AddField(pullrequest.FieldNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(pullrequest.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(pullrequest.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(pullrequest.FieldBody, field.TypeString)
	}
	if value, ok := _u.mutation.BranchName(); ok {
		_spec.SetField(pullrequest.FieldBranchName, field.TypeString, value)
	}
	if value, ok := _u.mutation.HeadSha(); ok {
		_spec.SetField(pullrequest.FieldHeadSha, field.TypeString, value)
	}
	if _u.mutation.HeadShaCleared() {
		_spec.ClearField(pullrequest.FieldHeadSha, field.TypeString)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(pullrequest.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pullrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReviewsPassed(); ok {
		_spec.SetField(pullrequest.FieldReviewsPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CheckStatus(); ok {
		_spec.SetField(pullrequest.FieldCheckStatus, field.TypeString, value)
	}
	if _u.mutation.CheckStatusCleared() {
		_spec.ClearField(pullrequest.FieldCheckStatus, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pullrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pullrequest.TaskTable,
			Columns: []string{pullrequest.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pullrequest.TaskTable,
			Columns: []string{pullrequest.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PullRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pullrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
