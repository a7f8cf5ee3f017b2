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
	"github.com/conductor-ci/conductor/ent/predicate"
	"github.com/conductor-ci/conductor/ent/subtask"
	"github.com/conductor-ci/conductor/ent/task"
)

// SubtaskUpdate is the builder for updating Subtask entities.
type SubtaskUpdate struct {
	config
	hooks    []Hook
	mutation *SubtaskMutation
}

// Where appends a list predicates to the SubtaskUpdate builder.
func (_u *SubtaskUpdate) Where(ps ...predicate.Subtask) *SubtaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *SubtaskUpdate) SetTaskID(v string) *SubtaskUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *SubtaskUpdate) SetNillableTaskID(v *string) *SubtaskUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetSubprojectPath sets the "subproject_path" field.
func (_u *SubtaskUpdate) SetSubprojectPath(v string) *SubtaskUpdate {
	_u.mutation.SetSubprojectPath(v)
	return _u
}

// SetNillableSubprojectPath sets the "subproject_path" field if the given value is not nil.
func (_u *SubtaskUpdate) SetNillableSubprojectPath(v *string) *SubtaskUpdate {
	if v != nil {
		_u.SetSubprojectPath(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *SubtaskUpdate) SetTitle(v string) *SubtaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SubtaskUpdate) SetNillableTitle(v *string) *SubtaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SubtaskUpdate) SetDescription(v string) *SubtaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SubtaskUpdate) SetNillableDescription(v *string) *SubtaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SubtaskUpdate) ClearDescription() *SubtaskUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubtaskUpdate) SetStatus(v subtask.Status) *SubtaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubtaskUpdate) SetNillableStatus(v *subtask.Status) *SubtaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDependsOn sets the "depends_on" field.
func (_u *SubtaskUpdate) SetDependsOn(v []string) *SubtaskUpdate {
	_u.mutation.SetDependsOn(v)
	return _u
}

// AppendDependsOn appends value to the "depends_on" field.
func (_u *SubtaskUpdate) AppendDependsOn(v []string) *SubtaskUpdate {
	_u.mutation.AppendDependsOn(v)
	return _u
}

// ClearDependsOn clears the value of the "depends_on" field.
func (_u *SubtaskUpdate) ClearDependsOn() *SubtaskUpdate {
	_u.mutation.ClearDependsOn()
	return _u
}

// SetAgentRunID sets the "agent_run_id" field.
func (_u *SubtaskUpdate) SetAgentRunID(v string) *SubtaskUpdate {
	_u.mutation.SetAgentRunID(v)
	return _u
}

// SetNillableAgentRunID sets the "agent_run_id" field if the given value is not nil.
func (_u *SubtaskUpdate) SetNillableAgentRunID(v *string) *SubtaskUpdate {
	if v != nil {
		_u.SetAgentRunID(*v)
	}
	return _u
}

// ClearAgentRunID clears the value of the "agent_run_id" field.
func (_u *SubtaskUpdate) ClearAgentRunID() *SubtaskUpdate {
	_u.mutation.ClearAgentRunID()
	return _u
}

// SetFilesModified sets the "files_modified" field.
func (_u *SubtaskUpdate) SetFilesModified(v []string) *SubtaskUpdate {
	_u.mutation.SetFilesModified(v)
	return _u
}

// AppendFilesModified appends value to the "files_modified" field.
func (_u *SubtaskUpdate) AppendFilesModified(v []string) *SubtaskUpdate {
	_u.mutation.AppendFilesModified(v)
	return _u
}

// ClearFilesModified clears the value of the "files_modified" field.
func (_u *SubtaskUpdate) ClearFilesModified() *SubtaskUpdate {
	_u.mutation.ClearFilesModified()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SubtaskUpdate) SetErrorMessage(v string) *SubtaskUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SubtaskUpdate) SetNillableErrorMessage(v *string) *SubtaskUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SubtaskUpdate) ClearErrorMessage() *SubtaskUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubtaskUpdate) SetUpdatedAt(v time.Time) *SubtaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SubtaskUpdate) SetStartedAt(v time.Time) *SubtaskUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SubtaskUpdate) SetNillableStartedAt(v *time.Time) *SubtaskUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SubtaskUpdate) ClearStartedAt() *SubtaskUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SubtaskUpdate) SetCompletedAt(v time.Time) *SubtaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SubtaskUpdate) SetNillableCompletedAt(v *time.Time) *SubtaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SubtaskUpdate) ClearCompletedAt() *SubtaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *SubtaskUpdate) SetTask(v *Task) *SubtaskUpdate {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the SubtaskMutation object of the builder.
func (_u *SubtaskUpdate) Mutation() *SubtaskMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *SubtaskUpdate) ClearTask() *SubtaskUpdate {
	_u.mutation.ClearTask()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubtaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubtaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubtaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubtaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubtaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subtask.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubtaskUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := subtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Subtask.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Subtask.task"`)
	}
	return nil
}

func (_u *SubtaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subtask.Table, subtask.Columns, sqlgraph.NewFieldSpec(subtask.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SubprojectPath(); ok {
		_spec.SetField(subtask.FieldSubprojectPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(subtask.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(subtask.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(subtask.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(subtask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DependsOn(); ok {
		_spec.SetField(subtask.FieldDependsOn, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependsOn(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, subtask.FieldDependsOn, value)
		})
	}
	if _u.mutation.DependsOnCleared() {
		_spec.ClearField(subtask.FieldDependsOn, field.TypeJSON)
	}
	if value, ok := _u.mutation.AgentRunID(); ok {
		_spec.SetField(subtask.FieldAgentRunID, field.TypeString, value)
	}
	if _u.mutation.AgentRunIDCleared() {
		_spec.ClearField(subtask.FieldAgentRunID, field.TypeString)
	}
	if value, ok := _u.mutation.FilesModified(); ok {
		_spec.SetField(subtask.FieldFilesModified, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFilesModified(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, subtask.FieldFilesModified, value)
		})
	}
	if _u.mutation.FilesModifiedCleared() {
		_spec.ClearField(subtask.FieldFilesModified, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(subtask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(subtask.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subtask.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(subtask.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(subtask.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(subtask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(subtask.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subtask.TaskTable,
			Columns: []string{subtask.TaskColumn},
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
			Table:   subtask.TaskTable,
			Columns: []string{subtask.TaskColumn},
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
			err = &NotFoundError{subtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubtaskUpdateOne is the builder for updating a single Subtask entity.
type SubtaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubtaskMutation
}

// SetTaskID sets the "task_id" field.
func (_u *SubtaskUpdateOne) SetTaskID(v string) *SubtaskUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *SubtaskUpdateOne) SetNillableTaskID(v *string) *SubtaskUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetSubprojectPath sets the "subproject_path" field.
func (_u *SubtaskUpdateOne) SetSubprojectPath(v string) *SubtaskUpdateOne {
	_u.mutation.SetSubprojectPath(v)
	return _u
}

// SetNillableSubprojectPath sets the "subproject_path" field if the given value is not nil.
func (_u *SubtaskUpdateOne) SetNillableSubprojectPath(v *string) *SubtaskUpdateOne {
	if v != nil {
		_u.SetSubprojectPath(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *SubtaskUpdateOne) SetTitle(v string) *SubtaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SubtaskUpdateOne) SetNillableTitle(v *string) *SubtaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SubtaskUpdateOne) SetDescription(v string) *SubtaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SubtaskUpdateOne) SetNillableDescription(v *string) *SubtaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SubtaskUpdateOne) ClearDescription() *SubtaskUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubtaskUpdateOne) SetStatus(v subtask.Status) *SubtaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubtaskUpdateOne) SetNillableStatus(v *subtask.Status) *SubtaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDependsOn sets the "depends_on" field.
func (_u *SubtaskUpdateOne) SetDependsOn(v []string) *SubtaskUpdateOne {
	_u.mutation.SetDependsOn(v)
	return _u
}

// AppendDependsOn appends value to the "depends_on" field.
func (_u *SubtaskUpdateOne) AppendDependsOn(v []string) *SubtaskUpdateOne {
	_u.mutation.AppendDependsOn(v)
	return _u
}

// ClearDependsOn clears the value of the "depends_on" field.
func (_u *SubtaskUpdateOne) ClearDependsOn() *SubtaskUpdateOne {
	_u.mutation.ClearDependsOn()
	return _u
}

// SetAgentRunID sets the "agent_run_id" field.
func (_u *SubtaskUpdateOne) SetAgentRunID(v string) *SubtaskUpdateOne {
	_u.mutation.SetAgentRunID(v)
	return _u
}

// SetNillableAgentRunID sets the "agent_run_id" field if the given value is not nil.
func (_u *SubtaskUpdateOne) SetNillableAgentRunID(v *string) *SubtaskUpdateOne {
	if v != nil {
		_u.SetAgentRunID(*v)
	}
	return _u
}

// ClearAgentRunID clears the value of the "agent_run_id" field.
func (_u *SubtaskUpdateOne) ClearAgentRunID() *SubtaskUpdateOne {
	_u.mutation.ClearAgentRunID()
	return _u
}

// SetFilesModified sets the "files_modified" field.
func (_u *SubtaskUpdateOne) SetFilesModified(v []string) *SubtaskUpdateOne {
	_u.mutation.SetFilesModified(v)
	return _u
}

// AppendFilesModified appends value to the "files_modified" field.
func (_u *SubtaskUpdateOne) AppendFilesModified(v []string) *SubtaskUpdateOne {
	_u.mutation.AppendFilesModified(v)
	return _u
}

// ClearFilesModified clears the value of the "files_modified" field.
func (_u *SubtaskUpdateOne) ClearFilesModified() *SubtaskUpdateOne {
	_u.mutation.ClearFilesModified()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SubtaskUpdateOne) SetErrorMessage(v string) *SubtaskUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SubtaskUpdateOne) SetNillableErrorMessage(v *string) *SubtaskUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SubtaskUpdateOne) ClearErrorMessage() *SubtaskUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubtaskUpdateOne) SetUpdatedAt(v time.Time) *SubtaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SubtaskUpdateOne) SetStartedAt(v time.Time) *SubtaskUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SubtaskUpdateOne) SetNillableStartedAt(v *time.Time) *SubtaskUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SubtaskUpdateOne) ClearStartedAt() *SubtaskUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SubtaskUpdateOne) SetCompletedAt(v time.Time) *SubtaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SubtaskUpdateOne) SetNillableCompletedAt(v *time.Time) *SubtaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SubtaskUpdateOne) ClearCompletedAt() *SubtaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *SubtaskUpdateOne) SetTask(v *Task) *SubtaskUpdateOne {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the SubtaskMutation object of the builder.
func (_u *SubtaskUpdateOne) Mutation() *SubtaskMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *SubtaskUpdateOne) ClearTask() *SubtaskUpdateOne {
	_u.mutation.ClearTask()
	return _u
}

// Where appends a list predicates to the SubtaskUpdate builder.
func (_u *SubtaskUpdateOne) Where(ps ...predicate.Subtask) *SubtaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubtaskUpdateOne) Select(field string, fields ...string) *SubtaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Subtask entity.
func (_u *SubtaskUpdateOne) Save(ctx context.Context) (*Subtask, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubtaskUpdateOne) SaveX(ctx context.Context) *Subtask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubtaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubtaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubtaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subtask.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubtaskUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := subtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Subtask.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Subtask.task"`)
	}
	return nil
}

func (_u *SubtaskUpdateOne) sqlSave(ctx context.Context) (_node *Subtask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subtask.Table, subtask.Columns, sqlgraph.NewFieldSpec(subtask.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Subtask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subtask.FieldID)
		for _, f := range fields {
			if !subtask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subtask.FieldID {
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
	if value, ok := _u.mutation.SubprojectPath(); ok {
		_spec.SetField(subtask.FieldSubprojectPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(subtask.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(subtask.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(subtask.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(subtask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DependsOn(); ok {
		_spec.SetField(subtask.FieldDependsOn, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependsOn(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, subtask.FieldDependsOn, value)
		})
	}
	if _u.mutation.DependsOnCleared() {
		_spec.ClearField(subtask.FieldDependsOn, field.TypeJSON)
	}
	if value, ok := _u.mutation.AgentRunID(); ok {
		_spec.SetField(subtask.FieldAgentRunID, field.TypeString, value)
	}
	if _u.mutation.AgentRunIDCleared() {
		_spec.ClearField(subtask.FieldAgentRunID, field.TypeString)
	}
	if value, ok := _u.mutation.FilesModified(); ok {
		_spec.SetField(subtask.FieldFilesModified, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFilesModified(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, subtask.FieldFilesModified, value)
		})
	}
	if _u.mutation.FilesModifiedCleared() {
		_spec.ClearField(subtask.FieldFilesModified, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(subtask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(subtask.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subtask.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(subtask.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(subtask.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(subtask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(subtask.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subtask.TaskTable,
			Columns: []string{subtask.TaskColumn},
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
			Table:   subtask.TaskTable,
			Columns: []string{subtask.TaskColumn},
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
	_node = &Subtask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
