// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/conductor-ci/conductor/ent/pullrequest"
	"github.com/conductor-ci/conductor/ent/task"
)

// PullRequestCreate is the builder for creating a PullRequest entity.
type PullRequestCreate struct {
	config
	mutation *PullRequestMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *PullRequestCreate) SetTaskID(v string) *PullRequestCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetRepositoryFullName sets the "repository_full_name" field.
func (_c *PullRequestCreate) SetRepositoryFullName(v string) *PullRequestCreate {
	_c.mutation.SetRepositoryFullName(v)
	return _c
}

// SetNumber sets the "number" field.
func (_c *PullRequestCreate) SetNumber(v int) *PullRequestCreate {
	_c.mutation.SetNumber(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *PullRequestCreate) SetTitle(v string) *PullRequestCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *PullRequestCreate) SetBody(v string) *PullRequestCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_c *PullRequestCreate) SetNillableBody(v *string) *PullRequestCreate {
	if v != nil {
		_c.SetBody(*v)
	}
	return _c
}

// SetBranchName sets the "branch_name" field.
func (_c *PullRequestCreate) SetBranchName(v string) *PullRequestCreate {
	_c.mutation.SetBranchName(v)
	return _c
}

// SetHeadSha sets the "head_sha" field.
func (_c *PullRequestCreate) SetHeadSha(v string) *PullRequestCreate {
	_c.mutation.SetHeadSha(v)
	return _c
}

// SetNillableHeadSha sets the "head_sha" field if the given value is not nil.
func (_c *PullRequestCreate) SetNillableHeadSha(v *string) *PullRequestCreate {
	if v != nil {
		_c.SetHeadSha(*v)
	}
	return _c
}

// SetURL sets the "url" field.
func (_c *PullRequestCreate) SetURL(v string) *PullRequestCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PullRequestCreate) SetStatus(v pullrequest.Status) *PullRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PullRequestCreate) SetNillableStatus(v *pullrequest.Status) *PullRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetReviewsPassed sets the "reviews_passed" field.
func (_c *PullRequestCreate) SetReviewsPassed(v bool) *PullRequestCreate {
	_c.mutation.SetReviewsPassed(v)
	return _c
}

// SetNillableReviewsPassed sets the "reviews_passed" field if the given value is not nil.
func (_c *PullRequestCreate) SetNillableReviewsPassed(v *bool) *PullRequestCreate {
	if v != nil {
		_c.SetReviewsPassed(*v)
	}
	return _c
}

// SetCheckStatus sets the "check_status" field.
func (_c *PullRequestCreate) SetCheckStatus(v string) *PullRequestCreate {
	_c.mutation.SetCheckStatus(v)
	return _c
}

// SetNillableCheckStatus sets the "check_status" field if the given value is not nil.
func (_c *PullRequestCreate) SetNillableCheckStatus(v *string) *PullRequestCreate {
	if v != nil {
		_c.SetCheckStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PullRequestCreate) SetCreatedAt(v time.Time) *PullRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PullRequestCreate) SetNillableCreatedAt(v *time.Time) *PullRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PullRequestCreate) SetUpdatedAt(v time.Time) *PullRequestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PullRequestCreate) SetNillableUpdatedAt(v *time.Time) *PullRequestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PullRequestCreate) SetID(v string) *PullRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *PullRequestCreate) SetTask(v *Task) *PullRequestCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the PullRequestMutation object of the builder.
func (_c *PullRequestCreate) Mutation() *PullRequestMutation {
	return _c.mutation
}

// Save creates the PullRequest in the database.
func (_c *PullRequestCreate) Save(ctx context.Context) (*PullRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PullRequestCreate) SaveX(ctx context.Context) *PullRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PullRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PullRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PullRequestCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := pullrequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ReviewsPassed(); !ok {
		v := pullrequest.DefaultReviewsPassed
		_c.mutation.SetReviewsPassed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pullrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := pullrequest.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PullRequestCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "PullRequest.task_id"`)}
	}
	if _, ok := _c.mutation.RepositoryFullName(); !ok {
		return &ValidationError{Name: "repository_full_name", err: errors.New(`ent: missing required field "PullRequest.repository_full_name"`)}
	}
	if _, ok := _c.mutation.Number(); !ok {
		return &ValidationError{Name: "number", err: errors.New(`ent: missing required field "PullRequest.number"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "PullRequest.title"`)}
	}
	if _, ok := _c.mutation.BranchName(); !ok {
		return &ValidationError{Name: "branch_name", err: errors.New(`ent: missing required field "PullRequest.branch_name"`)}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "PullRequest.url"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PullRequest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pullrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PullRequest.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReviewsPassed(); !ok {
		return &ValidationError{Name: "reviews_passed", err: errors.New(`ent: missing required field "PullRequest.reviews_passed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PullRequest.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PullRequest.updated_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "PullRequest.task"`)}
	}
	return nil
}

func (_c *PullRequestCreate) sqlSave(ctx context.Context) (*PullRequest, error) {
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
			return nil, fmt.Errorf("unexpected PullRequest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PullRequestCreate) createSpec() (*PullRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &PullRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pullrequest.Table, sqlgraph.NewFieldSpec(pullrequest.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RepositoryFullName(); ok {
		_spec.SetField(pullrequest.FieldRepositoryFullName, field.TypeString, value)
		_node.RepositoryFullName = value
	}
	if value, ok := _c.mutation.Number(); ok {
		_spec.SetField(pullrequest.FieldNumber, field.TypeInt, value)
		_node.Number = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(pullrequest.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(pullrequest.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.BranchName(); ok {
		_spec.SetField(pullrequest.FieldBranchName, field.TypeString, value)
		_node.BranchName = value
	}
	if value, ok := _c.mutation.HeadSha(); ok {
		_spec.SetField(pullrequest.FieldHeadSha, field.TypeString, value)
		_node.HeadSha = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(pullrequest.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pullrequest.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ReviewsPassed(); ok {
		_spec.SetField(pullrequest.FieldReviewsPassed, field.TypeBool, value)
		_node.ReviewsPassed = value
	}
	if value, ok := _c.mutation.CheckStatus(); ok {
		_spec.SetField(pullrequest.FieldCheckStatus, field.TypeString, value)
		_node.CheckStatus = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pullrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(pullrequest.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
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
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PullRequestCreateBulk is the builder for creating many PullRequest entities in bulk.
type PullRequestCreateBulk struct {
	config
	err      error
	builders []*PullRequestCreate
}

// Save creates the PullRequest entities in the database.
func (_c *PullRequestCreateBulk) Save(ctx context.Context) ([]*PullRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PullRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PullRequestMutation)
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
func (_c *PullRequestCreateBulk) SaveX(ctx context.Context) []*PullRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PullRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PullRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
