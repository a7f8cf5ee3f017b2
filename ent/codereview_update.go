// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/conductor-ci/conductor/ent/codereview"
	"github.com/conductor-ci/conductor/ent/predicate"
	"github.com/conductor-ci/conductor/ent/task"
	"github.com/conductor-ci/conductor/pkg/models"
)

// CodeReviewUpdate is the builder for updating CodeReview entities.
type CodeReviewUpdate struct {
	config
	hooks    []Hook
	mutation *CodeReviewMutation
}

// Where appends a list predicates to the CodeReviewUpdate builder.
func (_u *CodeReviewUpdate) Where(ps ...predicate.CodeReview) *CodeReviewUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *CodeReviewUpdate) SetTaskID(v string) *CodeReviewUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *CodeReviewUpdate) SetNillableTaskID(v *string) *CodeReviewUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetAgentRunID sets the "agent_run_id" field.
func (_u *CodeReviewUpdate) SetAgentRunID(v string) *CodeReviewUpdate {
	_u.mutation.SetAgentRunID(v)
	return _u
}

// SetNillableAgentRunID sets the "agent_run_id" field if the given value is not nil.
func (_u *CodeReviewUpdate) SetNillableAgentRunID(v *string) *CodeReviewUpdate {
	if v != nil {
		_u.SetAgentRunID(*v)
	}
	return _u
}

// ClearAgentRunID clears the value of the "agent_run_id" field.
func (_u *CodeReviewUpdate) ClearAgentRunID() *CodeReviewUpdate {
	_u.mutation.ClearAgentRunID()
	return _u
}

// SetResult sets the "result" field.
func (_u *CodeReviewUpdate) SetResult(v codereview.Result) *CodeReviewUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *CodeReviewUpdate) SetNillableResult(v *codereview.Result) *CodeReviewUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// SetIteration sets the "iteration" field.
func (_u *CodeReviewUpdate) SetIteration(v int) *CodeReviewUpdate {
	_u.mutation.ResetIteration()
	_u.mutation.SetIteration(v)
	return _u
}

// SetNillableIteration sets the "iteration" field if the given value is not nil.
func (_u *CodeReviewUpdate) SetNillableIteration(v *int) *CodeReviewUpdate {
	if v != nil {
		_u.SetIteration(*v)
	}
	return _u
}

// AddIteration adds value to the "iteration" field.
func (_u *CodeReviewUpdate) AddIteration(v int) *CodeReviewUpdate {
	_u.mutation.AddIteration(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *CodeReviewUpdate) SetSummary(v string) *CodeReviewUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *CodeReviewUpdate) SetNillableSummary(v *string) *CodeReviewUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *CodeReviewUpdate) ClearSummary() *CodeReviewUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetIssues sets the "issues" field.
func (_u *CodeReviewUpdate) SetIssues(v []models.ReviewIssue) *CodeReviewUpdate {
	_u.mutation.SetIssues(v)
	return _u
}

// AppendIssues appends value to the "issues" field.
func (_u *CodeReviewUpdate) AppendIssues(v []models.ReviewIssue) *CodeReviewUpdate {
	_u.mutation.AppendIssues(v)
	return _u
}

// ClearIssues clears the value of the "issues" field.
func (_u *CodeReviewUpdate) ClearIssues() *CodeReviewUpdate {
	_u.mutation.ClearIssues()
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *CodeReviewUpdate) SetTask(v *Task) *CodeReviewUpdate {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the CodeReviewMutation object of the builder.
func (_u *CodeReviewUpdate) Mutation() *CodeReviewMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *CodeReviewUpdate) ClearTask() *CodeReviewUpdate {
	_u.mutation.ClearTask()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CodeReviewUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CodeReviewUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CodeReviewUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CodeReviewUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CodeReviewUpdate) check() error {
	if v, ok := _u.mutation.Result(); ok {
		if err := codereview.ResultValidator(v); err != nil {
			return &ValidationError{Name: "result", err: fmt.Errorf(`ent: validator failed for field "CodeReview.result": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Iteration(); ok {
		if err := codereview.IterationValidator(v); err != nil {
			return &ValidationError{Name: "iteration", err: fmt.Errorf(`ent: validator failed for field "CodeReview.iteration": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CodeReview.task"`)
	}
	return nil
}

func (_u *CodeReviewUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(codereview.Table, codereview.Columns, sqlgraph.NewFieldSpec(codereview.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentRunID(); ok {
		_spec.SetField(codereview.FieldAgentRunID, field.TypeString, value)
	}
	if _u.mutation.AgentRunIDCleared() {
		_spec.ClearField(codereview.FieldAgentRunID, field.TypeString)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(codereview.FieldResult, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Iteration(); ok {
		_spec.SetField(codereview.FieldIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIteration(); ok {
		_spec.AddField(codereview.FieldIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(codereview.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(codereview.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Issues(); ok {
		_spec.SetField(codereview.FieldIssues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, codereview.FieldIssues, value)
		})
	}
	if _u.mutation.IssuesCleared() {
		_spec.ClearField(codereview.FieldIssues, field.TypeJSON)
	}
	if _u.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   codereview.TaskTable,
			Columns: []string{codereview.TaskColumn},
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
			Table:   codereview.TaskTable,
			Columns: []string{codereview.TaskColumn},
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
			err = &NotFoundError{codereview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CodeReviewUpdateOne is the builder for updating a single CodeReview entity.
type CodeReviewUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CodeReviewMutation
}

// SetTaskID sets the "task_id" field.
func (_u *CodeReviewUpdateOne) SetTaskID(v string) *CodeReviewUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *CodeReviewUpdateOne) SetNillableTaskID(v *string) *CodeReviewUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetAgentRunID sets the "agent_run_id" field.
func (_u *CodeReviewUpdateOne) SetAgentRunID(v string) *CodeReviewUpdateOne {
	_u.mutation.SetAgentRunID(v)
	return _u
}

// SetNillableAgentRunID sets the "agent_run_id" field if the given value is not nil.
func (_u *CodeReviewUpdateOne) SetNillableAgentRunID(v *string) *CodeReviewUpdateOne {
	if v != nil {
		_u.SetAgentRunID(*v)
	}
	return _u
}

// ClearAgentRunID clears the value of the "agent_run_id" field.
func (_u *CodeReviewUpdateOne) ClearAgentRunID() *CodeReviewUpdateOne {
	_u.mutation.ClearAgentRunID()
	return _u
}

// SetResult sets the "result" field.
func (_u *CodeReviewUpdateOne) SetResult(v codereview.Result) *CodeReviewUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *CodeReviewUpdateOne) SetNillableResult(v *codereview.Result) *CodeReviewUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// SetIteration sets the "iteration" field.
func (_u *CodeReviewUpdateOne) SetIteration(v int) *CodeReviewUpdateOne {
	_u.mutation.ResetIteration()
	_u.mutation.SetIteration(v)
	return _u
}

// SetNillableIteration sets the "iteration" field if the given value is not nil.
func (_u *CodeReviewUpdateOne) SetNillableIteration(v *int) *CodeReviewUpdateOne {
	if v != nil {
		_u.SetIteration(*v)
	}
	return _u
}

// AddIteration adds value to the "iteration" field.
func (_u *CodeReviewUpdateOne) AddIteration(v int) *CodeReviewUpdateOne {
	_u.mutation.AddIteration(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *CodeReviewUpdateOne) SetSummary(v string) *CodeReviewUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *CodeReviewUpdateOne) SetNillableSummary(v *string) *CodeReviewUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *CodeReviewUpdateOne) ClearSummary() *CodeReviewUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetIssues sets the "issues" field.
func (_u *CodeReviewUpdateOne) SetIssues(v []models.ReviewIssue) *CodeReviewUpdateOne {
	_u.mutation.SetIssues(v)
	return _u
}

// AppendIssues appends value to the "issues" field.
func (_u *CodeReviewUpdateOne) AppendIssues(v []models.ReviewIssue) *CodeReviewUpdateOne {
	_u.mutation.AppendIssues(v)
	return _u
}

// ClearIssues clears the value of the "issues" field.
func (_u *CodeReviewUpdateOne) ClearIssues() *CodeReviewUpdateOne {
	_u.mutation.ClearIssues()
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *CodeReviewUpdateOne) SetTask(v *Task) *CodeReviewUpdateOne {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the CodeReviewMutation object of the builder.
func (_u *CodeReviewUpdateOne) Mutation() *CodeReviewMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *CodeReviewUpdateOne) ClearTask() *CodeReviewUpdateOne {
	_u.mutation.ClearTask()
	return _u
}

// Where appends a list predicates to the CodeReviewUpdate builder.
func (_u *CodeReviewUpdateOne) Where(ps ...predicate.CodeReview) *CodeReviewUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CodeReviewUpdateOne) Select(field string, fields ...string) *CodeReviewUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CodeReview entity.
func (_u *CodeReviewUpdateOne) Save(ctx context.Context) (*CodeReview, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CodeReviewUpdateOne) SaveX(ctx context.Context) *CodeReview {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CodeReviewUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CodeReviewUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CodeReviewUpdateOne) check() error {
	if v, ok := _u.mutation.Result(); ok {
		if err := codereview.ResultValidator(v); err != nil {
			return &ValidationError{Name: "result", err: fmt.Errorf(`ent: validator failed for field "CodeReview.result": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Iteration(); ok {
		if err := codereview.IterationValidator(v); err != nil {
			return &ValidationError{Name: "iteration", err: fmt.Errorf(`ent: validator failed for field "CodeReview.iteration": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CodeReview.task"`)
	}
	return nil
}

func (_u *CodeReviewUpdateOne) sqlSave(ctx context.Context) (_node *CodeReview, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(codereview.Table, codereview.Columns, sqlgraph.NewFieldSpec(codereview.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CodeReview.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, codereview.FieldID)
		for _, f := range fields {
			if !codereview.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != codereview.FieldID {
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
	if value, ok := _u.mutation.AgentRunID(); ok {
		_spec.SetField(codereview.FieldAgentRunID, field.TypeString, value)
	}
	if _u.mutation.AgentRunIDCleared() {
		_spec.ClearField(codereview.FieldAgentRunID, field.TypeString)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(codereview.FieldResult, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Iteration(); ok {
		_spec.SetField(codereview.FieldIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIteration(); ok {
		_spec.AddField(codereview.FieldIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(codereview.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(codereview.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Issues(); ok {
		_spec.SetField(codereview.FieldIssues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, codereview.FieldIssues, value)
		})
	}
	if _u.mutation.IssuesCleared() {
		_spec.ClearField(codereview.FieldIssues, field.TypeJSON)
	}
	if _u.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   codereview.TaskTable,
			Columns: []string{codereview.TaskColumn},
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
			Table:   codereview.TaskTable,
			Columns: []string{codereview.TaskColumn},
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
	_node = &CodeReview{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{codereview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
