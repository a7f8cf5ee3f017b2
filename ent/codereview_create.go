// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/conductor-ci/conductor/ent/codereview"
	"github.com/conductor-ci/conductor/ent/task"
	"github.com/conductor-ci/conductor/pkg/models"
)

// CodeReviewCreate is the builder for creating a CodeReview entity.
type CodeReviewCreate struct {
	config
	mutation *CodeReviewMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *CodeReviewCreate) SetTaskID(v string) *CodeReviewCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetAgentRunID sets the "agent_run_id" field.
func (_c *CodeReviewCreate) SetAgentRunID(v string) *CodeReviewCreate {
	_c.mutation.SetAgentRunID(v)
	return _c
}

// SetNillableAgentRunID sets the "agent_run_id" field if the given value is not nil.
func (_c *CodeReviewCreate) SetNillableAgentRunID(v *string) *CodeReviewCreate {
	if v != nil {
		_c.SetAgentRunID(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *CodeReviewCreate) SetResult(v codereview.Result) *CodeReviewCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetIteration sets the "iteration" field.
func (_c *CodeReviewCreate) SetIteration(v int) *CodeReviewCreate {
	_c.mutation.SetIteration(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *CodeReviewCreate) SetSummary(v string) *CodeReviewCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *CodeReviewCreate) SetNillableSummary(v *string) *CodeReviewCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetIssues sets the "issues" field.
func (_c *CodeReviewCreate) SetIssues(v []models.ReviewIssue) *CodeReviewCreate {
	_c.mutation.SetIssues(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CodeReviewCreate) SetCreatedAt(v time.Time) *CodeReviewCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CodeReviewCreate) SetNillableCreatedAt(v *time.Time) *CodeReviewCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CodeReviewCreate) SetID(v string) *CodeReviewCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *CodeReviewCreate) SetTask(v *Task) *CodeReviewCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the CodeReviewMutation object of the builder.
func (_c *CodeReviewCreate) Mutation() *CodeReviewMutation {
	return _c.mutation
}

// Save creates the CodeReview in the database.
func (_c *CodeReviewCreate) Save(ctx context.Context) (*CodeReview, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CodeReviewCreate) SaveX(ctx context.Context) *CodeReview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CodeReviewCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CodeReviewCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CodeReviewCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := codereview.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CodeReviewCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "CodeReview.task_id"`)}
	}
	if _, ok := _c.mutation.Result(); !ok {
		return &ValidationError{Name: "result", err: errors.New(`ent: missing required field "CodeReview.result"`)}
	}
	if v, ok := _c.mutation.Result(); ok {
		if err := codereview.ResultValidator(v); err != nil {
			return &ValidationError{Name: "result", err: fmt.Errorf(`ent: validator failed for field "CodeReview.result": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Iteration(); !ok {
		return &ValidationError{Name: "iteration", err: errors.New(`ent: missing required field "CodeReview.iteration"`)}
	}
	if v, ok := _c.mutation.Iteration(); ok {
		if err := codereview.IterationValidator(v); err != nil {
			return &ValidationError{Name: "iteration", err: fmt.Errorf(`ent: validator failed for field "CodeReview.iteration": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CodeReview.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "CodeReview.task"`)}
	}
	return nil
}

func (_c *CodeReviewCreate) sqlSave(ctx context.Context) (*CodeReview, error) {
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
			return nil, fmt.Errorf("unexpected CodeReview.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CodeReviewCreate) createSpec() (*CodeReview, *sqlgraph.CreateSpec) {
	var (
		_node = &CodeReview{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(codereview.Table, sqlgraph.NewFieldSpec(codereview.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentRunID(); ok {
		_spec.SetField(codereview.FieldAgentRunID, field.TypeString, value)
		_node.AgentRunID = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(codereview.FieldResult, field.TypeEnum, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.Iteration(); ok {
		_spec.SetField(codereview.FieldIteration, field.TypeInt, value)
		_node.Iteration = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(codereview.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Issues(); ok {
		_spec.SetField(codereview.FieldIssues, field.TypeJSON, value)
		_node.Issues = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(codereview.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
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
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CodeReviewCreateBulk is the builder for creating many CodeReview entities in bulk.
type CodeReviewCreateBulk struct {
	config
	err      error
	builders []*CodeReviewCreate
}

// Save creates the CodeReview entities in the database.
func (_c *CodeReviewCreateBulk) Save(ctx context.Context) ([]*CodeReview, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CodeReview, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CodeReviewMutation)
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
func (_c *CodeReviewCreateBulk) SaveX(ctx context.Context) []*CodeReview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CodeReviewCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CodeReviewCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
