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
	"github.com/conductor-ci/conductor/ent/agentrun"
	"github.com/conductor-ci/conductor/ent/predicate"
	"github.com/conductor-ci/conductor/ent/task"
)

// AgentRunUpdate is the builder for updating AgentRun entities.
type AgentRunUpdate struct {
	config
	hooks    []Hook
	mutation *AgentRunMutation
}

// Where appends a list predicates to the AgentRunUpdate builder.
func (_u *AgentRunUpdate) Where(ps ...predicate.AgentRun) *AgentRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *AgentRunUpdate) SetTaskID(v string) *AgentRunUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableTaskID(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetSubtaskID sets the "subtask_id" field.
func (_u *AgentRunUpdate) SetSubtaskID(v string) *AgentRunUpdate {
	_u.mutation.SetSubtaskID(v)
	return _u
}

// SetNillableSubtaskID sets the "subtask_id" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableSubtaskID(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetSubtaskID(*v)
	}
	return _u
}

// ClearSubtaskID clears the value of the "subtask_id" field.
func (_u *AgentRunUpdate) ClearSubtaskID() *AgentRunUpdate {
	_u.mutation.ClearSubtaskID()
	return _u
}

// SetRunType sets the "run_type" field.
func (_u *AgentRunUpdate) SetRunType(v agentrun.RunType) *AgentRunUpdate {
	_u.mutation.SetRunType(v)
	return _u
}

// SetNillableRunType sets the "run_type" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableRunType(v *agentrun.RunType) *AgentRunUpdate {
	if v != nil {
		_u.SetRunType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentRunUpdate) SetStatus(v agentrun.Status) *AgentRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableStatus(v *agentrun.Status) *AgentRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentRunUpdate) SetModel(v string) *AgentRunUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableModel(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *AgentRunUpdate) ClearModel() *AgentRunUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *AgentRunUpdate) SetInputTokens(v int64) *AgentRunUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableInputTokens(v *int64) *AgentRunUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *AgentRunUpdate) AddInputTokens(v int64) *AgentRunUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *AgentRunUpdate) SetOutputTokens(v int64) *AgentRunUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableOutputTokens(v *int64) *AgentRunUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *AgentRunUpdate) AddOutputTokens(v int64) *AgentRunUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetTotalCost sets the "total_cost" field.
func (_u *AgentRunUpdate) SetTotalCost(v float64) *AgentRunUpdate {
	_u.mutation.ResetTotalCost()
	_u.mutation.SetTotalCost(v)
	return _u
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableTotalCost(v *float64) *AgentRunUpdate {
	if v != nil {
		_u.SetTotalCost(*v)
	}
	return _u
}

// AddTotalCost adds value to the "total_cost" field.
func (_u *AgentRunUpdate) AddTotalCost(v float64) *AgentRunUpdate {
	_u.mutation.AddTotalCost(v)
	return _u
}

// SetLog sets the "log" field.
func (_u *AgentRunUpdate) SetLog(v string) *AgentRunUpdate {
	_u.mutation.SetLog(v)
	return _u
}

// SetNillableLog sets the "log" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableLog(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetLog(*v)
	}
	return _u
}

// ClearLog clears the value of the "log" field.
func (_u *AgentRunUpdate) ClearLog() *AgentRunUpdate {
	_u.mutation.ClearLog()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentRunUpdate) SetCompletedAt(v time.Time) *AgentRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableCompletedAt(v *time.Time) *AgentRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentRunUpdate) ClearCompletedAt() *AgentRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *AgentRunUpdate) SetTask(v *Task) *AgentRunUpdate {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the AgentRunMutation object of the builder.
func (_u *AgentRunUpdate) Mutation() *AgentRunMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *AgentRunUpdate) ClearTask() *AgentRunUpdate {
	_u.mutation.ClearTask()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRunUpdate) check() error {
	if v, ok := _u.mutation.RunType(); ok {
		if err := agentrun.RunTypeValidator(v); err != nil {
			return &ValidationError{Name: "run_type", err: fmt.Errorf(`ent: validator failed for field "AgentRun.run_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := agentrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRun.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InputTokens(); ok {
		if err := agentrun.InputTokensValidator(v); err != nil {
			return &ValidationError{Name: "input_tokens", err: fmt.Errorf(`ent: validator failed for field "AgentRun.input_tokens": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OutputTokens(); ok {
		if err := agentrun.OutputTokensValidator(v); err != nil {
			return &ValidationError{Name: "output_tokens", err: fmt.Errorf(`ent: validator failed for field "AgentRun.output_tokens": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentRun.task"`)
	}
	return nil
}

func (_u *AgentRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrun.Table, agentrun.Columns, sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SubtaskID(); ok {
		_spec.SetField(agentrun.FieldSubtaskID, field.TypeString, value)
	}
	if _u.mutation.SubtaskIDCleared() {
		_spec.ClearField(agentrun.FieldSubtaskID, field.TypeString)
	}
	if value, ok := _u.mutation.RunType(); ok {
		_spec.SetField(agentrun.FieldRunType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agentrun.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(agentrun.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(agentrun.FieldInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(agentrun.FieldInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(agentrun.FieldOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(agentrun.FieldOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalCost(); ok {
		_spec.SetField(agentrun.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCost(); ok {
		_spec.AddField(agentrun.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Log(); ok {
		_spec.SetField(agentrun.FieldLog, field.TypeString, value)
	}
	if _u.mutation.LogCleared() {
		_spec.ClearField(agentrun.FieldLog, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agentrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agentrun.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentrun.TaskTable,
			Columns: []string{agentrun.TaskColumn},
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
			Table:   agentrun.TaskTable,
			Columns: []string{agentrun.TaskColumn},
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
			err = &NotFoundError{agentrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentRunUpdateOne is the builder for updating a single AgentRun entity.
type AgentRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentRunMutation
}

// SetTaskID sets the "task_id" field.
func (_u *AgentRunUpdateOne) SetTaskID(v string) *AgentRunUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableTaskID(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetSubtaskID sets the "subtask_id" field.
func (_u *AgentRunUpdateOne) SetSubtaskID(v string) *AgentRunUpdateOne {
	_u.mutation.SetSubtaskID(v)
	return _u
}

// SetNillableSubtaskID sets the "subtask_id" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableSubtaskID(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetSubtaskID(*v)
	}
	return _u
}

// ClearSubtaskID clears the value of the "subtask_id" field.
func (_u *AgentRunUpdateOne) ClearSubtaskID() *AgentRunUpdateOne {
	_u.mutation.ClearSubtaskID()
	return _u
}

// SetRunType sets the "run_type" field.
func (_u *AgentRunUpdateOne) SetRunType(v agentrun.RunType) *AgentRunUpdateOne {
	_u.mutation.SetRunType(v)
	return _u
}

// SetNillableRunType sets the "run_type" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableRunType(v *agentrun.RunType) *AgentRunUpdateOne {
	if v != nil {
		_u.SetRunType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentRunUpdateOne) SetStatus(v agentrun.Status) *AgentRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableStatus(v *agentrun.Status) *AgentRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentRunUpdateOne) SetModel(v string) *AgentRunUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableModel(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *AgentRunUpdateOne) ClearModel() *AgentRunUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *AgentRunUpdateOne) SetInputTokens(v int64) *AgentRunUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableInputTokens(v *int64) *AgentRunUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *AgentRunUpdateOne) AddInputTokens(v int64) *AgentRunUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *AgentRunUpdateOne) SetOutputTokens(v int64) *AgentRunUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableOutputTokens(v *int64) *AgentRunUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *AgentRunUpdateOne) AddOutputTokens(v int64) *AgentRunUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetTotalCost sets the "total_cost" field.
func (_u *AgentRunUpdateOne) SetTotalCost(v float64) *AgentRunUpdateOne {
	_u.mutation.ResetTotalCost()
	_u.mutation.SetTotalCost(v)
	return _u
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableTotalCost(v *float64) *AgentRunUpdateOne {
	if v != nil {
		_u.SetTotalCost(*v)
	}
	return _u
}

// AddTotalCost adds value to the "total_cost" field.
func (_u *AgentRunUpdateOne) AddTotalCost(v float64) *AgentRunUpdateOne {
	_u.mutation.AddTotalCost(v)
	return _u
}

// SetLog sets the "log" field.
func (_u *AgentRunUpdateOne) SetLog(v string) *AgentRunUpdateOne {
	_u.mutation.SetLog(v)
	return _u
}

// SetNillableLog sets the "log" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableLog(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetLog(*v)
	}
	return _u
}

// ClearLog clears the value of the "log" field.
func (_u *AgentRunUpdateOne) ClearLog() *AgentRunUpdateOne {
	_u.mutation.ClearLog()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentRunUpdateOne) SetCompletedAt(v time.Time) *AgentRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableCompletedAt(v *time.Time) *AgentRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentRunUpdateOne) ClearCompletedAt() *AgentRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *AgentRunUpdateOne) SetTask(v *Task) *AgentRunUpdateOne {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the AgentRunMutation object of the builder.
func (_u *AgentRunUpdateOne) Mutation() *AgentRunMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *AgentRunUpdateOne) ClearTask() *AgentRunUpdateOne {
	_u.mutation.ClearTask()
	return _u
}

// Where appends a list predicates to the AgentRunUpdate builder.
func (_u *AgentRunUpdateOne) Where(ps ...predicate.AgentRun) *AgentRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentRunUpdateOne) Select(field string, fields ...string) *AgentRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentRun entity.
func (_u *AgentRunUpdateOne) Save(ctx context.Context) (*AgentRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRunUpdateOne) SaveX(ctx context.Context) *AgentRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRunUpdateOne) check() error {
	if v, ok := _u.mutation.RunType(); ok {
		if err := agentrun.RunTypeValidator(v); err != nil {
			return &ValidationError{Name: "run_type", err: fmt.Errorf(`ent: validator failed for field "AgentRun.run_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := agentrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRun.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InputTokens(); ok {
		if err := agentrun.InputTokensValidator(v); err != nil {
			return &ValidationError{Name: "input_tokens", err: fmt.Errorf(`ent: validator failed for field "AgentRun.input_tokens": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OutputTokens(); ok {
		if err := agentrun.OutputTokensValidator(v); err != nil {
			return &ValidationError{Name: "output_tokens", err: fmt.Errorf(`ent: validator failed for field "AgentRun.output_tokens": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentRun.task"`)
	}
	return nil
}

func (_u *AgentRunUpdateOne) sqlSave(ctx context.Context) (_node *AgentRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrun.Table, agentrun.Columns, sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentrun.FieldID)
		for _, f := range fields {
			if !agentrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentrun.FieldID {
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
	if value, ok := _u.mutation.SubtaskID(); ok {
		_spec.SetField(agentrun.FieldSubtaskID, field.TypeString, value)
	}
	if _u.mutation.SubtaskIDCleared() {
		_spec.ClearField(agentrun.FieldSubtaskID, field.TypeString)
	}
	if value, ok := _u.mutation.RunType(); ok {
		_spec.SetField(agentrun.FieldRunType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agentrun.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(agentrun.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(agentrun.FieldInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(agentrun.FieldInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(agentrun.FieldOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(agentrun.FieldOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalCost(); ok {
		_spec.SetField(agentrun.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCost(); ok {
		_spec.AddField(agentrun.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Log(); ok {
		_spec.SetField(agentrun.FieldLog, field.TypeString, value)
	}
	if _u.mutation.LogCleared() {
		_spec.ClearField(agentrun.FieldLog, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agentrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agentrun.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentrun.TaskTable,
			Columns: []string{agentrun.TaskColumn},
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
			Table:   agentrun.TaskTable,
			Columns: []string{agentrun.TaskColumn},
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
	_node = &AgentRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
