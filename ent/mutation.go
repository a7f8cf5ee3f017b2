// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/conductor-ci/conductor/ent/agentrun"
	"github.com/conductor-ci/conductor/ent/codereview"
	"github.com/conductor-ci/conductor/ent/job"
	"github.com/conductor-ci/conductor/ent/notification"
	"github.com/conductor-ci/conductor/ent/predicate"
	"github.com/conductor-ci/conductor/ent/pullrequest"
	"github.com/conductor-ci/conductor/ent/subtask"
	"github.com/conductor-ci/conductor/ent/task"
	"github.com/conductor-ci/conductor/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentRun     = "AgentRun"
	TypeCodeReview   = "CodeReview"
	TypeJob          = "Job"
	TypeNotification = "Notification"
	TypePullRequest  = "PullRequest"
	TypeSubtask      = "Subtask"
	TypeTask         = "Task"
)

// AgentRunMutation represents an operation that mutates the AgentRun nodes in the graph.
type AgentRunMutation struct {
	config
	op               Op
	typ              string
	id               *string
	subtask_id       *string
	run_type         *agentrun.RunType
	status           *agentrun.Status
	model            *string
	input_tokens     *int64
	addinput_tokens  *int64
	output_tokens    *int64
	addoutput_tokens *int64
	total_cost       *float64
	addtotal_cost    *float64
	log              *string
	started_at       *time.Time
	completed_at     *time.Time
	clearedFields    map[string]struct{}
	task             *string
	clearedtask      bool
	done             bool
	oldValue         func(context.Context) (*AgentRun, error)
	predicates       []predicate.AgentRun
}

var _ ent.Mutation = (*AgentRunMutation)(nil)

// agentrunOption allows management of the mutation configuration using functional options.
type agentrunOption func(*AgentRunMutation)

// newAgentRunMutation creates new mutation for the AgentRun entity.
func newAgentRunMutation(c config, op Op, opts ...agentrunOption) *AgentRunMutation {
	m := &AgentRunMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentRunID sets the ID field of the mutation.
func withAgentRunID(id string) agentrunOption {
	return func(m *AgentRunMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentRun
		)
		m.oldValue = func(ctx context.Context) (*AgentRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentRun sets the old AgentRun of the mutation.
func withAgentRun(node *AgentRun) agentrunOption {
	return func(m *AgentRunMutation) {
		m.oldValue = func(context.Context) (*AgentRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentRun entities.
func (m *AgentRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *AgentRunMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *AgentRunMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *AgentRunMutation) ResetTaskID() {
	m.task = nil
}

// SetSubtaskID sets the "subtask_id" field.
func (m *AgentRunMutation) SetSubtaskID(s string) {
	m.subtask_id = &s
}

// SubtaskID returns the value of the "subtask_id" field in the mutation.
func (m *AgentRunMutation) SubtaskID() (r string, exists bool) {
	v := m.subtask_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtaskID returns the old "subtask_id" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldSubtaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtaskID: %w", err)
	}
	return oldValue.SubtaskID, nil
}

// ClearSubtaskID clears the value of the "subtask_id" field.
func (m *AgentRunMutation) ClearSubtaskID() {
	m.subtask_id = nil
	m.clearedFields[agentrun.FieldSubtaskID] = struct{}{}
}

// SubtaskIDCleared returns if the "subtask_id" field was cleared in this mutation.
func (m *AgentRunMutation) SubtaskIDCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldSubtaskID]
	return ok
}

// ResetSubtaskID resets all changes to the "subtask_id" field.
func (m *AgentRunMutation) ResetSubtaskID() {
	m.subtask_id = nil
	delete(m.clearedFields, agentrun.FieldSubtaskID)
}

// SetRunType sets the "run_type" field.
func (m *AgentRunMutation) SetRunType(at agentrun.RunType) {
	m.run_type = &at
}

// RunType returns the value of the "run_type" field in the mutation.
func (m *AgentRunMutation) RunType() (r agentrun.RunType, exists bool) {
	v := m.run_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRunType returns the old "run_type" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldRunType(ctx context.Context) (v agentrun.RunType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunType: %w", err)
	}
	return oldValue.RunType, nil
}

// ResetRunType resets all changes to the "run_type" field.
func (m *AgentRunMutation) ResetRunType() {
	m.run_type = nil
}

// SetStatus sets the "status" field.
func (m *AgentRunMutation) SetStatus(a agentrun.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentRunMutation) Status() (r agentrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldStatus(ctx context.Context) (v agentrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentRunMutation) ResetStatus() {
	m.status = nil
}

// SetModel sets the "model" field.
func (m *AgentRunMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *AgentRunMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *AgentRunMutation) ClearModel() {
	m.model = nil
	m.clearedFields[agentrun.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *AgentRunMutation) ModelCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *AgentRunMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, agentrun.FieldModel)
}

// SetInputTokens sets the "input_tokens" field.
func (m *AgentRunMutation) SetInputTokens(i int64) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *AgentRunMutation) InputTokens() (r int64, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldInputTokens(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *AgentRunMutation) AddInputTokens(i int64) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *AgentRunMutation) AddedInputTokens() (r int64, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *AgentRunMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *AgentRunMutation) SetOutputTokens(i int64) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *AgentRunMutation) OutputTokens() (r int64, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldOutputTokens(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *AgentRunMutation) AddOutputTokens(i int64) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *AgentRunMutation) AddedOutputTokens() (r int64, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *AgentRunMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetTotalCost sets the "total_cost" field.
func (m *AgentRunMutation) SetTotalCost(f float64) {
	m.total_cost = &f
	m.addtotal_cost = nil
}

// TotalCost returns the value of the "total_cost" field in the mutation.
func (m *AgentRunMutation) TotalCost() (r float64, exists bool) {
	v := m.total_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCost returns the old "total_cost" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldTotalCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCost: %w", err)
	}
	return oldValue.TotalCost, nil
}

// AddTotalCost adds f to the "total_cost" field.
func (m *AgentRunMutation) AddTotalCost(f float64) {
	if m.addtotal_cost != nil {
		*m.addtotal_cost += f
	} else {
		m.addtotal_cost = &f
	}
}

// AddedTotalCost returns the value that was added to the "total_cost" field in this mutation.
func (m *AgentRunMutation) AddedTotalCost() (r float64, exists bool) {
	v := m.addtotal_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCost resets all changes to the "total_cost" field.
func (m *AgentRunMutation) ResetTotalCost() {
	m.total_cost = nil
	m.addtotal_cost = nil
}

// SetLog sets the "log" field.
func (m *AgentRunMutation) SetLog(s string) {
	m.log = &s
}

// Log returns the value of the "log" field in the mutation.
func (m *AgentRunMutation) Log() (r string, exists bool) {
	v := m.log
	if v == nil {
		return
	}
	return *v, true
}

// OldLog returns the old "log" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldLog(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLog is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLog requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLog: %w", err)
	}
	return oldValue.Log, nil
}

// ClearLog clears the value of the "log" field.
func (m *AgentRunMutation) ClearLog() {
	m.log = nil
	m.clearedFields[agentrun.FieldLog] = struct{}{}
}

// LogCleared returns if the "log" field was cleared in this mutation.
func (m *AgentRunMutation) LogCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldLog]
	return ok
}

// ResetLog resets all changes to the "log" field.
func (m *AgentRunMutation) ResetLog() {
	m.log = nil
	delete(m.clearedFields, agentrun.FieldLog)
}

// SetStartedAt sets the "started_at" field.
func (m *AgentRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AgentRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AgentRunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *AgentRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AgentRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AgentRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[agentrun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AgentRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AgentRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, agentrun.FieldCompletedAt)
}

// ClearTask clears the "task" edge to the Task entity.
func (m *AgentRunMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[agentrun.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *AgentRunMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *AgentRunMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *AgentRunMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the AgentRunMutation builder.
func (m *AgentRunMutation) Where(ps ...predicate.AgentRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentRun).
func (m *AgentRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentRunMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.task != nil {
		fields = append(fields, agentrun.FieldTaskID)
	}
	if m.subtask_id != nil {
		fields = append(fields, agentrun.FieldSubtaskID)
	}
	if m.run_type != nil {
		fields = append(fields, agentrun.FieldRunType)
	}
	if m.status != nil {
		fields = append(fields, agentrun.FieldStatus)
	}
	if m.model != nil {
		fields = append(fields, agentrun.FieldModel)
	}
	if m.input_tokens != nil {
		fields = append(fields, agentrun.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, agentrun.FieldOutputTokens)
	}
	if m.total_cost != nil {
		fields = append(fields, agentrun.FieldTotalCost)
	}
	if m.log != nil {
		fields = append(fields, agentrun.FieldLog)
	}
	if m.started_at != nil {
		fields = append(fields, agentrun.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, agentrun.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentrun.FieldTaskID:
		return m.TaskID()
	case agentrun.FieldSubtaskID:
		return m.SubtaskID()
	case agentrun.FieldRunType:
		return m.RunType()
	case agentrun.FieldStatus:
		return m.Status()
	case agentrun.FieldModel:
		return m.Model()
	case agentrun.FieldInputTokens:
		return m.InputTokens()
	case agentrun.FieldOutputTokens:
		return m.OutputTokens()
	case agentrun.FieldTotalCost:
		return m.TotalCost()
	case agentrun.FieldLog:
		return m.Log()
	case agentrun.FieldStartedAt:
		return m.StartedAt()
	case agentrun.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentrun.FieldTaskID:
		return m.OldTaskID(ctx)
	case agentrun.FieldSubtaskID:
		return m.OldSubtaskID(ctx)
	case agentrun.FieldRunType:
		return m.OldRunType(ctx)
	case agentrun.FieldStatus:
		return m.OldStatus(ctx)
	case agentrun.FieldModel:
		return m.OldModel(ctx)
	case agentrun.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case agentrun.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case agentrun.FieldTotalCost:
		return m.OldTotalCost(ctx)
	case agentrun.FieldLog:
		return m.OldLog(ctx)
	case agentrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case agentrun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentrun.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case agentrun.FieldSubtaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtaskID(v)
		return nil
	case agentrun.FieldRunType:
		v, ok := value.(agentrun.RunType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunType(v)
		return nil
	case agentrun.FieldStatus:
		v, ok := value.(agentrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentrun.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case agentrun.FieldInputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case agentrun.FieldOutputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case agentrun.FieldTotalCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCost(v)
		return nil
	case agentrun.FieldLog:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLog(v)
		return nil
	case agentrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case agentrun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentRunMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, agentrun.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, agentrun.FieldOutputTokens)
	}
	if m.addtotal_cost != nil {
		fields = append(fields, agentrun.FieldTotalCost)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentrun.FieldInputTokens:
		return m.AddedInputTokens()
	case agentrun.FieldOutputTokens:
		return m.AddedOutputTokens()
	case agentrun.FieldTotalCost:
		return m.AddedTotalCost()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentrun.FieldInputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case agentrun.FieldOutputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case agentrun.FieldTotalCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCost(v)
		return nil
	}
	return fmt.Errorf("unknown AgentRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentrun.FieldSubtaskID) {
		fields = append(fields, agentrun.FieldSubtaskID)
	}
	if m.FieldCleared(agentrun.FieldModel) {
		fields = append(fields, agentrun.FieldModel)
	}
	if m.FieldCleared(agentrun.FieldLog) {
		fields = append(fields, agentrun.FieldLog)
	}
	if m.FieldCleared(agentrun.FieldCompletedAt) {
		fields = append(fields, agentrun.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentRunMutation) ClearField(name string) error {
	switch name {
	case agentrun.FieldSubtaskID:
		m.ClearSubtaskID()
		return nil
	case agentrun.FieldModel:
		m.ClearModel()
		return nil
	case agentrun.FieldLog:
		m.ClearLog()
		return nil
	case agentrun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentRunMutation) ResetField(name string) error {
	switch name {
	case agentrun.FieldTaskID:
		m.ResetTaskID()
		return nil
	case agentrun.FieldSubtaskID:
		m.ResetSubtaskID()
		return nil
	case agentrun.FieldRunType:
		m.ResetRunType()
		return nil
	case agentrun.FieldStatus:
		m.ResetStatus()
		return nil
	case agentrun.FieldModel:
		m.ResetModel()
		return nil
	case agentrun.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case agentrun.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case agentrun.FieldTotalCost:
		m.ResetTotalCost()
		return nil
	case agentrun.FieldLog:
		m.ResetLog()
		return nil
	case agentrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case agentrun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, agentrun.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentrun.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, agentrun.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentRunMutation) EdgeCleared(name string) bool {
	switch name {
	case agentrun.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentRunMutation) ClearEdge(name string) error {
	switch name {
	case agentrun.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown AgentRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentRunMutation) ResetEdge(name string) error {
	switch name {
	case agentrun.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown AgentRun edge %s", name)
}

// CodeReviewMutation represents an operation that mutates the CodeReview nodes in the graph.
type CodeReviewMutation struct {
	config
	op            Op
	typ           string
	id            *string
	agent_run_id  *string
	result        *codereview.Result
	iteration     *int
	additeration  *int
	summary       *string
	issues        *[]models.ReviewIssue
	appendissues  []models.ReviewIssue
	created_at    *time.Time
	clearedFields map[string]struct{}
	task          *string
	clearedtask   bool
	done          bool
	oldValue      func(context.Context) (*CodeReview, error)
	predicates    []predicate.CodeReview
}

var _ ent.Mutation = (*CodeReviewMutation)(nil)

// codereviewOption allows management of the mutation configuration using functional options.
type codereviewOption func(*CodeReviewMutation)

// newCodeReviewMutation creates new mutation for the CodeReview entity.
func newCodeReviewMutation(c config, op Op, opts ...codereviewOption) *CodeReviewMutation {
	m := &CodeReviewMutation{
		config:        c,
		op:            op,
		typ:           TypeCodeReview,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCodeReviewID sets the ID field of the mutation.
func withCodeReviewID(id string) codereviewOption {
	return func(m *CodeReviewMutation) {
		var (
			err   error
			once  sync.Once
			value *CodeReview
		)
		m.oldValue = func(ctx context.Context) (*CodeReview, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CodeReview.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCodeReview sets the old CodeReview of the mutation.
func withCodeReview(node *CodeReview) codereviewOption {
	return func(m *CodeReviewMutation) {
		m.oldValue = func(context.Context) (*CodeReview, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CodeReviewMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CodeReviewMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CodeReview entities.
func (m *CodeReviewMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CodeReviewMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CodeReviewMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CodeReview.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *CodeReviewMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *CodeReviewMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the CodeReview entity.
// If the CodeReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeReviewMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *CodeReviewMutation) ResetTaskID() {
	m.task = nil
}

// SetAgentRunID sets the "agent_run_id" field.
func (m *CodeReviewMutation) SetAgentRunID(s string) {
	m.agent_run_id = &s
}

// AgentRunID returns the value of the "agent_run_id" field in the mutation.
func (m *CodeReviewMutation) AgentRunID() (r string, exists bool) {
	v := m.agent_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentRunID returns the old "agent_run_id" field's value of the CodeReview entity.
// If the CodeReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeReviewMutation) OldAgentRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentRunID: %w", err)
	}
	return oldValue.AgentRunID, nil
}

// ClearAgentRunID clears the value of the "agent_run_id" field.
func (m *CodeReviewMutation) ClearAgentRunID() {
	m.agent_run_id = nil
	m.clearedFields[codereview.FieldAgentRunID] = struct{}{}
}

// AgentRunIDCleared returns if the "agent_run_id" field was cleared in this mutation.
func (m *CodeReviewMutation) AgentRunIDCleared() bool {
	_, ok := m.clearedFields[codereview.FieldAgentRunID]
	return ok
}

// ResetAgentRunID resets all changes to the "agent_run_id" field.
func (m *CodeReviewMutation) ResetAgentRunID() {
	m.agent_run_id = nil
	delete(m.clearedFields, codereview.FieldAgentRunID)
}

// SetResult sets the "result" field.
func (m *CodeReviewMutation) SetResult(c codereview.Result) {
	m.result = &c
}

// Result returns the value of the "result" field in the mutation.
func (m *CodeReviewMutation) Result() (r codereview.Result, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the CodeReview entity.
// If the CodeReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeReviewMutation) OldResult(ctx context.Context) (v codereview.Result, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ResetResult resets all changes to the "result" field.
func (m *CodeReviewMutation) ResetResult() {
	m.result = nil
}

// SetIteration sets the "iteration" field.
func (m *CodeReviewMutation) SetIteration(i int) {
	m.iteration = &i
	m.additeration = nil
}

// Iteration returns the value of the "iteration" field in the mutation.
func (m *CodeReviewMutation) Iteration() (r int, exists bool) {
	v := m.iteration
	if v == nil {
		return
	}
	return *v, true
}

// OldIteration returns the old "iteration" field's value of the CodeReview entity.
// If the CodeReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeReviewMutation) OldIteration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIteration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIteration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIteration: %w", err)
	}
	return oldValue.Iteration, nil
}

// AddIteration adds i to the "iteration" field.
func (m *CodeReviewMutation) AddIteration(i int) {
	if m.additeration != nil {
		*m.additeration += i
	} else {
		m.additeration = &i
	}
}

// AddedIteration returns the value that was added to the "iteration" field in this mutation.
func (m *CodeReviewMutation) AddedIteration() (r int, exists bool) {
	v := m.additeration
	if v == nil {
		return
	}
	return *v, true
}

// ResetIteration resets all changes to the "iteration" field.
func (m *CodeReviewMutation) ResetIteration() {
	m.iteration = nil
	m.additeration = nil
}

// SetSummary sets the "summary" field.
func (m *CodeReviewMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *CodeReviewMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the CodeReview entity.
// If the CodeReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeReviewMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *CodeReviewMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[codereview.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *CodeReviewMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[codereview.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *CodeReviewMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, codereview.FieldSummary)
}

// SetIssues sets the "issues" field.
func (m *CodeReviewMutation) SetIssues(mi []models.ReviewIssue) {
	m.issues = &mi
	m.appendissues = nil
}

// Issues returns the value of the "issues" field in the mutation.
func (m *CodeReviewMutation) Issues() (r []models.ReviewIssue, exists bool) {
	v := m.issues
	if v == nil {
		return
	}
	return *v, true
}

// OldIssues returns the old "issues" field's value of the CodeReview entity.
// If the CodeReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeReviewMutation) OldIssues(ctx context.Context) (v []models.ReviewIssue, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssues: %w", err)
	}
	return oldValue.Issues, nil
}

// AppendIssues adds mi to the "issues" field.
func (m *CodeReviewMutation) AppendIssues(mi []models.ReviewIssue) {
	m.appendissues = append(m.appendissues, mi...)
}

// AppendedIssues returns the list of values that were appended to the "issues" field in this mutation.
func (m *CodeReviewMutation) AppendedIssues() ([]models.ReviewIssue, bool) {
	if len(m.appendissues) == 0 {
		return nil, false
	}
	return m.appendissues, true
}

// ClearIssues clears the value of the "issues" field.
func (m *CodeReviewMutation) ClearIssues() {
	m.issues = nil
	m.appendissues = nil
	m.clearedFields[codereview.FieldIssues] = struct{}{}
}

// IssuesCleared returns if the "issues" field was cleared in this mutation.
func (m *CodeReviewMutation) IssuesCleared() bool {
	_, ok := m.clearedFields[codereview.FieldIssues]
	return ok
}

// ResetIssues resets all changes to the "issues" field.
func (m *CodeReviewMutation) ResetIssues() {
	m.issues = nil
	m.appendissues = nil
	delete(m.clearedFields, codereview.FieldIssues)
}

// SetCreatedAt sets the "created_at" field.
func (m *CodeReviewMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CodeReviewMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CodeReview entity.
// If the CodeReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeReviewMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CodeReviewMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *CodeReviewMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[codereview.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *CodeReviewMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *CodeReviewMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *CodeReviewMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the CodeReviewMutation builder.
func (m *CodeReviewMutation) Where(ps ...predicate.CodeReview) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CodeReviewMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CodeReviewMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CodeReview, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CodeReviewMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CodeReviewMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CodeReview).
func (m *CodeReviewMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CodeReviewMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.task != nil {
		fields = append(fields, codereview.FieldTaskID)
	}
	if m.agent_run_id != nil {
		fields = append(fields, codereview.FieldAgentRunID)
	}
	if m.result != nil {
		fields = append(fields, codereview.FieldResult)
	}
	if m.iteration != nil {
		fields = append(fields, codereview.FieldIteration)
	}
	if m.summary != nil {
		fields = append(fields, codereview.FieldSummary)
	}
	if m.issues != nil {
		fields = append(fields, codereview.FieldIssues)
	}
	if m.created_at != nil {
		fields = append(fields, codereview.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CodeReviewMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case codereview.FieldTaskID:
		return m.TaskID()
	case codereview.FieldAgentRunID:
		return m.AgentRunID()
	case codereview.FieldResult:
		return m.Result()
	case codereview.FieldIteration:
		return m.Iteration()
	case codereview.FieldSummary:
		return m.Summary()
	case codereview.FieldIssues:
		return m.Issues()
	case codereview.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CodeReviewMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case codereview.FieldTaskID:
		return m.OldTaskID(ctx)
	case codereview.FieldAgentRunID:
		return m.OldAgentRunID(ctx)
	case codereview.FieldResult:
		return m.OldResult(ctx)
	case codereview.FieldIteration:
		return m.OldIteration(ctx)
	case codereview.FieldSummary:
		return m.OldSummary(ctx)
	case codereview.FieldIssues:
		return m.OldIssues(ctx)
	case codereview.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CodeReview field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CodeReviewMutation) SetField(name string, value ent.Value) error {
	switch name {
	case codereview.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case codereview.FieldAgentRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentRunID(v)
		return nil
	case codereview.FieldResult:
		v, ok := value.(codereview.Result)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case codereview.FieldIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIteration(v)
		return nil
	case codereview.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case codereview.FieldIssues:
		v, ok := value.([]models.ReviewIssue)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssues(v)
		return nil
	case codereview.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CodeReview field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CodeReviewMutation) AddedFields() []string {
	var fields []string
	if m.additeration != nil {
		fields = append(fields, codereview.FieldIteration)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CodeReviewMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case codereview.FieldIteration:
		return m.AddedIteration()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CodeReviewMutation) AddField(name string, value ent.Value) error {
	switch name {
	case codereview.FieldIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIteration(v)
		return nil
	}
	return fmt.Errorf("unknown CodeReview numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CodeReviewMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(codereview.FieldAgentRunID) {
		fields = append(fields, codereview.FieldAgentRunID)
	}
	if m.FieldCleared(codereview.FieldSummary) {
		fields = append(fields, codereview.FieldSummary)
	}
	if m.FieldCleared(codereview.FieldIssues) {
		fields = append(fields, codereview.FieldIssues)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CodeReviewMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CodeReviewMutation) ClearField(name string) error {
	switch name {
	case codereview.FieldAgentRunID:
		m.ClearAgentRunID()
		return nil
	case codereview.FieldSummary:
		m.ClearSummary()
		return nil
	case codereview.FieldIssues:
		m.ClearIssues()
		return nil
	}
	return fmt.Errorf("unknown CodeReview nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CodeReviewMutation) ResetField(name string) error {
	switch name {
	case codereview.FieldTaskID:
		m.ResetTaskID()
		return nil
	case codereview.FieldAgentRunID:
		m.ResetAgentRunID()
		return nil
	case codereview.FieldResult:
		m.ResetResult()
		return nil
	case codereview.FieldIteration:
		m.ResetIteration()
		return nil
	case codereview.FieldSummary:
		m.ResetSummary()
		return nil
	case codereview.FieldIssues:
		m.ResetIssues()
		return nil
	case codereview.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CodeReview field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CodeReviewMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, codereview.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CodeReviewMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case codereview.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CodeReviewMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CodeReviewMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CodeReviewMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, codereview.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CodeReviewMutation) EdgeCleared(name string) bool {
	switch name {
	case codereview.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CodeReviewMutation) ClearEdge(name string) error {
	switch name {
	case codereview.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown CodeReview unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CodeReviewMutation) ResetEdge(name string) error {
	switch name {
	case codereview.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown CodeReview edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                Op
	typ               string
	id                *string
	queue             *string
	job_id            *string
	payload           *map[string]interface{}
	status            *job.Status
	attempts          *int
	addattempts       *int
	max_attempts      *int
	addmax_attempts   *int
	run_at            *time.Time
	claimed_by        *string
	last_error        *string
	progress_stage    *string
	progress_message  *string
	last_heartbeat_at *time.Time
	created_at        *time.Time
	updated_at        *time.Time
	started_at        *time.Time
	completed_at      *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Job, error)
	predicates        []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQueue sets the "queue" field.
func (m *JobMutation) SetQueue(s string) {
	m.queue = &s
}

// Queue returns the value of the "queue" field in the mutation.
func (m *JobMutation) Queue() (r string, exists bool) {
	v := m.queue
	if v == nil {
		return
	}
	return *v, true
}

// OldQueue returns the old "queue" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldQueue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueue: %w", err)
	}
	return oldValue.Queue, nil
}

// ResetQueue resets all changes to the "queue" field.
func (m *JobMutation) ResetQueue() {
	m.queue = nil
}

// SetJobID sets the "job_id" field.
func (m *JobMutation) SetJobID(s string) {
	m.job_id = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *JobMutation) JobID() (r string, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *JobMutation) ResetJobID() {
	m.job_id = nil
}

// SetPayload sets the "payload" field.
func (m *JobMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *JobMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *JobMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[job.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *JobMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[job.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *JobMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, job.FieldPayload)
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetAttempts sets the "attempts" field.
func (m *JobMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *JobMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *JobMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *JobMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *JobMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *JobMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *JobMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *JobMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *JobMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *JobMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetRunAt sets the "run_at" field.
func (m *JobMutation) SetRunAt(t time.Time) {
	m.run_at = &t
}

// RunAt returns the value of the "run_at" field in the mutation.
func (m *JobMutation) RunAt() (r time.Time, exists bool) {
	v := m.run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRunAt returns the old "run_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRunAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunAt: %w", err)
	}
	return oldValue.RunAt, nil
}

// ResetRunAt resets all changes to the "run_at" field.
func (m *JobMutation) ResetRunAt() {
	m.run_at = nil
}

// SetClaimedBy sets the "claimed_by" field.
func (m *JobMutation) SetClaimedBy(s string) {
	m.claimed_by = &s
}

// ClaimedBy returns the value of the "claimed_by" field in the mutation.
func (m *JobMutation) ClaimedBy() (r string, exists bool) {
	v := m.claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedBy returns the old "claimed_by" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldClaimedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedBy: %w", err)
	}
	return oldValue.ClaimedBy, nil
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (m *JobMutation) ClearClaimedBy() {
	m.claimed_by = nil
	m.clearedFields[job.FieldClaimedBy] = struct{}{}
}

// ClaimedByCleared returns if the "claimed_by" field was cleared in this mutation.
func (m *JobMutation) ClaimedByCleared() bool {
	_, ok := m.clearedFields[job.FieldClaimedBy]
	return ok
}

// ResetClaimedBy resets all changes to the "claimed_by" field.
func (m *JobMutation) ResetClaimedBy() {
	m.claimed_by = nil
	delete(m.clearedFields, job.FieldClaimedBy)
}

// SetLastError sets the "last_error" field.
func (m *JobMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *JobMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *JobMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[job.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *JobMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[job.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *JobMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, job.FieldLastError)
}

// SetProgressStage sets the "progress_stage" field.
func (m *JobMutation) SetProgressStage(s string) {
	m.progress_stage = &s
}

// ProgressStage returns the value of the "progress_stage" field in the mutation.
func (m *JobMutation) ProgressStage() (r string, exists bool) {
	v := m.progress_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldProgressStage returns the old "progress_stage" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldProgressStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgressStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgressStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgressStage: %w", err)
	}
	return oldValue.ProgressStage, nil
}

// ClearProgressStage clears the value of the "progress_stage" field.
func (m *JobMutation) ClearProgressStage() {
	m.progress_stage = nil
	m.clearedFields[job.FieldProgressStage] = struct{}{}
}

// ProgressStageCleared returns if the "progress_stage" field was cleared in this mutation.
func (m *JobMutation) ProgressStageCleared() bool {
	_, ok := m.clearedFields[job.FieldProgressStage]
	return ok
}

// ResetProgressStage resets all changes to the "progress_stage" field.
func (m *JobMutation) ResetProgressStage() {
	m.progress_stage = nil
	delete(m.clearedFields, job.FieldProgressStage)
}

// SetProgressMessage sets the "progress_message" field.
func (m *JobMutation) SetProgressMessage(s string) {
	m.progress_message = &s
}

// ProgressMessage returns the value of the "progress_message" field in the mutation.
func (m *JobMutation) ProgressMessage() (r string, exists bool) {
	v := m.progress_message
	if v == nil {
		return
	}
	return *v, true
}

// OldProgressMessage returns the old "progress_message" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldProgressMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgressMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgressMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgressMessage: %w", err)
	}
	return oldValue.ProgressMessage, nil
}

// ClearProgressMessage clears the value of the "progress_message" field.
func (m *JobMutation) ClearProgressMessage() {
	m.progress_message = nil
	m.clearedFields[job.FieldProgressMessage] = struct{}{}
}

// ProgressMessageCleared returns if the "progress_message" field was cleared in this mutation.
func (m *JobMutation) ProgressMessageCleared() bool {
	_, ok := m.clearedFields[job.FieldProgressMessage]
	return ok
}

// ResetProgressMessage resets all changes to the "progress_message" field.
func (m *JobMutation) ResetProgressMessage() {
	m.progress_message = nil
	delete(m.clearedFields, job.FieldProgressMessage)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *JobMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *JobMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *JobMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[job.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *JobMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[job.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *JobMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, job.FieldLastHeartbeatAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *JobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *JobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *JobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[job.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *JobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *JobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, job.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *JobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *JobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *JobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[job.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *JobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *JobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, job.FieldCompletedAt)
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.queue != nil {
		fields = append(fields, job.FieldQueue)
	}
	if m.job_id != nil {
		fields = append(fields, job.FieldJobID)
	}
	if m.payload != nil {
		fields = append(fields, job.FieldPayload)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.attempts != nil {
		fields = append(fields, job.FieldAttempts)
	}
	if m.max_attempts != nil {
		fields = append(fields, job.FieldMaxAttempts)
	}
	if m.run_at != nil {
		fields = append(fields, job.FieldRunAt)
	}
	if m.claimed_by != nil {
		fields = append(fields, job.FieldClaimedBy)
	}
	if m.last_error != nil {
		fields = append(fields, job.FieldLastError)
	}
	if m.progress_stage != nil {
		fields = append(fields, job.FieldProgressStage)
	}
	if m.progress_message != nil {
		fields = append(fields, job.FieldProgressMessage)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, job.FieldLastHeartbeatAt)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, job.FieldUpdatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, job.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldQueue:
		return m.Queue()
	case job.FieldJobID:
		return m.JobID()
	case job.FieldPayload:
		return m.Payload()
	case job.FieldStatus:
		return m.Status()
	case job.FieldAttempts:
		return m.Attempts()
	case job.FieldMaxAttempts:
		return m.MaxAttempts()
	case job.FieldRunAt:
		return m.RunAt()
	case job.FieldClaimedBy:
		return m.ClaimedBy()
	case job.FieldLastError:
		return m.LastError()
	case job.FieldProgressStage:
		return m.ProgressStage()
	case job.FieldProgressMessage:
		return m.ProgressMessage()
	case job.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldUpdatedAt:
		return m.UpdatedAt()
	case job.FieldStartedAt:
		return m.StartedAt()
	case job.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldQueue:
		return m.OldQueue(ctx)
	case job.FieldJobID:
		return m.OldJobID(ctx)
	case job.FieldPayload:
		return m.OldPayload(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldAttempts:
		return m.OldAttempts(ctx)
	case job.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case job.FieldRunAt:
		return m.OldRunAt(ctx)
	case job.FieldClaimedBy:
		return m.OldClaimedBy(ctx)
	case job.FieldLastError:
		return m.OldLastError(ctx)
	case job.FieldProgressStage:
		return m.OldProgressStage(ctx)
	case job.FieldProgressMessage:
		return m.OldProgressMessage(ctx)
	case job.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case job.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case job.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldQueue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueue(v)
		return nil
	case job.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case job.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case job.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case job.FieldRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunAt(v)
		return nil
	case job.FieldClaimedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedBy(v)
		return nil
	case job.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case job.FieldProgressStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgressStage(v)
		return nil
	case job.FieldProgressMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgressMessage(v)
		return nil
	case job.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case job.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case job.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, job.FieldAttempts)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, job.FieldMaxAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldAttempts:
		return m.AddedAttempts()
	case job.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case job.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldPayload) {
		fields = append(fields, job.FieldPayload)
	}
	if m.FieldCleared(job.FieldClaimedBy) {
		fields = append(fields, job.FieldClaimedBy)
	}
	if m.FieldCleared(job.FieldLastError) {
		fields = append(fields, job.FieldLastError)
	}
	if m.FieldCleared(job.FieldProgressStage) {
		fields = append(fields, job.FieldProgressStage)
	}
	if m.FieldCleared(job.FieldProgressMessage) {
		fields = append(fields, job.FieldProgressMessage)
	}
	if m.FieldCleared(job.FieldLastHeartbeatAt) {
		fields = append(fields, job.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(job.FieldStartedAt) {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.FieldCleared(job.FieldCompletedAt) {
		fields = append(fields, job.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldPayload:
		m.ClearPayload()
		return nil
	case job.FieldClaimedBy:
		m.ClearClaimedBy()
		return nil
	case job.FieldLastError:
		m.ClearLastError()
		return nil
	case job.FieldProgressStage:
		m.ClearProgressStage()
		return nil
	case job.FieldProgressMessage:
		m.ClearProgressMessage()
		return nil
	case job.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case job.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldQueue:
		m.ResetQueue()
		return nil
	case job.FieldJobID:
		m.ResetJobID()
		return nil
	case job.FieldPayload:
		m.ResetPayload()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldAttempts:
		m.ResetAttempts()
		return nil
	case job.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case job.FieldRunAt:
		m.ResetRunAt()
		return nil
	case job.FieldClaimedBy:
		m.ResetClaimedBy()
		return nil
	case job.FieldLastError:
		m.ResetLastError()
		return nil
	case job.FieldProgressStage:
		m.ResetProgressStage()
		return nil
	case job.FieldProgressMessage:
		m.ResetProgressMessage()
		return nil
	case job.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case job.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Job edge %s", name)
}

// NotificationMutation represents an operation that mutates the Notification nodes in the graph.
type NotificationMutation struct {
	config
	op                Op
	typ               string
	id                *string
	notification_type *string
	channel           *notification.Channel
	payload           *map[string]interface{}
	sent_at           *time.Time
	error             *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	task              *string
	clearedtask       bool
	done              bool
	oldValue          func(context.Context) (*Notification, error)
	predicates        []predicate.Notification
}

var _ ent.Mutation = (*NotificationMutation)(nil)

// notificationOption allows management of the mutation configuration using functional options.
type notificationOption func(*NotificationMutation)

// newNotificationMutation creates new mutation for the Notification entity.
func newNotificationMutation(c config, op Op, opts ...notificationOption) *NotificationMutation {
	m := &NotificationMutation{
		config:        c,
		op:            op,
		typ:           TypeNotification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationID sets the ID field of the mutation.
func withNotificationID(id string) notificationOption {
	return func(m *NotificationMutation) {
		var (
			err   error
			once  sync.Once
			value *Notification
		)
		m.oldValue = func(ctx context.Context) (*Notification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Notification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotification sets the old Notification of the mutation.
func withNotification(node *Notification) notificationOption {
	return func(m *NotificationMutation) {
		m.oldValue = func(context.Context) (*Notification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Notification entities.
func (m *NotificationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Notification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *NotificationMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *NotificationMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *NotificationMutation) ResetTaskID() {
	m.task = nil
}

// SetNotificationType sets the "notification_type" field.
func (m *NotificationMutation) SetNotificationType(s string) {
	m.notification_type = &s
}

// NotificationType returns the value of the "notification_type" field in the mutation.
func (m *NotificationMutation) NotificationType() (r string, exists bool) {
	v := m.notification_type
	if v == nil {
		return
	}
	return *v, true
}

// OldNotificationType returns the old "notification_type" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldNotificationType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotificationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotificationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotificationType: %w", err)
	}
	return oldValue.NotificationType, nil
}

// ResetNotificationType resets all changes to the "notification_type" field.
func (m *NotificationMutation) ResetNotificationType() {
	m.notification_type = nil
}

// SetChannel sets the "channel" field.
func (m *NotificationMutation) SetChannel(n notification.Channel) {
	m.channel = &n
}

// Channel returns the value of the "channel" field in the mutation.
func (m *NotificationMutation) Channel() (r notification.Channel, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldChannel(ctx context.Context) (v notification.Channel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *NotificationMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *NotificationMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *NotificationMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *NotificationMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[notification.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *NotificationMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[notification.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *NotificationMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, notification.FieldPayload)
}

// SetSentAt sets the "sent_at" field.
func (m *NotificationMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *NotificationMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldSentAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ClearSentAt clears the value of the "sent_at" field.
func (m *NotificationMutation) ClearSentAt() {
	m.sent_at = nil
	m.clearedFields[notification.FieldSentAt] = struct{}{}
}

// SentAtCleared returns if the "sent_at" field was cleared in this mutation.
func (m *NotificationMutation) SentAtCleared() bool {
	_, ok := m.clearedFields[notification.FieldSentAt]
	return ok
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *NotificationMutation) ResetSentAt() {
	m.sent_at = nil
	delete(m.clearedFields, notification.FieldSentAt)
}

// SetError sets the "error" field.
func (m *NotificationMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *NotificationMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *NotificationMutation) ClearError() {
	m.error = nil
	m.clearedFields[notification.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *NotificationMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[notification.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *NotificationMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, notification.FieldError)
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *NotificationMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[notification.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *NotificationMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *NotificationMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *NotificationMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the NotificationMutation builder.
func (m *NotificationMutation) Where(ps ...predicate.Notification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Notification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Notification).
func (m *NotificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.task != nil {
		fields = append(fields, notification.FieldTaskID)
	}
	if m.notification_type != nil {
		fields = append(fields, notification.FieldNotificationType)
	}
	if m.channel != nil {
		fields = append(fields, notification.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, notification.FieldPayload)
	}
	if m.sent_at != nil {
		fields = append(fields, notification.FieldSentAt)
	}
	if m.error != nil {
		fields = append(fields, notification.FieldError)
	}
	if m.created_at != nil {
		fields = append(fields, notification.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notification.FieldTaskID:
		return m.TaskID()
	case notification.FieldNotificationType:
		return m.NotificationType()
	case notification.FieldChannel:
		return m.Channel()
	case notification.FieldPayload:
		return m.Payload()
	case notification.FieldSentAt:
		return m.SentAt()
	case notification.FieldError:
		return m.Error()
	case notification.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notification.FieldTaskID:
		return m.OldTaskID(ctx)
	case notification.FieldNotificationType:
		return m.OldNotificationType(ctx)
	case notification.FieldChannel:
		return m.OldChannel(ctx)
	case notification.FieldPayload:
		return m.OldPayload(ctx)
	case notification.FieldSentAt:
		return m.OldSentAt(ctx)
	case notification.FieldError:
		return m.OldError(ctx)
	case notification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Notification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notification.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case notification.FieldNotificationType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotificationType(v)
		return nil
	case notification.FieldChannel:
		v, ok := value.(notification.Channel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case notification.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case notification.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	case notification.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case notification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Notification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(notification.FieldPayload) {
		fields = append(fields, notification.FieldPayload)
	}
	if m.FieldCleared(notification.FieldSentAt) {
		fields = append(fields, notification.FieldSentAt)
	}
	if m.FieldCleared(notification.FieldError) {
		fields = append(fields, notification.FieldError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationMutation) ClearField(name string) error {
	switch name {
	case notification.FieldPayload:
		m.ClearPayload()
		return nil
	case notification.FieldSentAt:
		m.ClearSentAt()
		return nil
	case notification.FieldError:
		m.ClearError()
		return nil
	}
	return fmt.Errorf("unknown Notification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationMutation) ResetField(name string) error {
	switch name {
	case notification.FieldTaskID:
		m.ResetTaskID()
		return nil
	case notification.FieldNotificationType:
		m.ResetNotificationType()
		return nil
	case notification.FieldChannel:
		m.ResetChannel()
		return nil
	case notification.FieldPayload:
		m.ResetPayload()
		return nil
	case notification.FieldSentAt:
		m.ResetSentAt()
		return nil
	case notification.FieldError:
		m.ResetError()
		return nil
	case notification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, notification.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case notification.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, notification.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationMutation) EdgeCleared(name string) bool {
	switch name {
	case notification.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationMutation) ClearEdge(name string) error {
	switch name {
	case notification.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown Notification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationMutation) ResetEdge(name string) error {
	switch name {
	case notification.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown Notification edge %s", name)
}

// PullRequestMutation represents an operation that mutates the PullRequest nodes in the graph.
type PullRequestMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	repository_full_name *string
	number               *int
	addnumber            *int
	title                *string
	body                 *string
	branch_name          *string
	head_sha             *string
	url                  *string
	status               *pullrequest.Status
	reviews_passed       *bool
	check_status         *string
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	task                 *string
	clearedtask          bool
	done                 bool
	oldValue             func(context.Context) (*PullRequest, error)
	predicates           []predicate.PullRequest
}

var _ ent.Mutation = (*PullRequestMutation)(nil)

// pullrequestOption allows management of the mutation configuration using functional options.
type pullrequestOption func(*PullRequestMutation)

// newPullRequestMutation creates new mutation for the PullRequest entity.
func newPullRequestMutation(c config, op Op, opts ...pullrequestOption) *PullRequestMutation {
	m := &PullRequestMutation{
		config:        c,
		op:            op,
		typ:           TypePullRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPullRequestID sets the ID field of the mutation.
func withPullRequestID(id string) pullrequestOption {
	return func(m *PullRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *PullRequest
		)
		m.oldValue = func(ctx context.Context) (*PullRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PullRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPullRequest sets the old PullRequest of the mutation.
func withPullRequest(node *PullRequest) pullrequestOption {
	return func(m *PullRequestMutation) {
		m.oldValue = func(context.Context) (*PullRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PullRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PullRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PullRequest entities.
func (m *PullRequestMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PullRequestMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PullRequestMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PullRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *PullRequestMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *PullRequestMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the PullRequest entity.
// If the PullRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PullRequestMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *PullRequestMutation) ResetTaskID() {
	m.task = nil
}

// SetRepositoryFullName sets the "repository_full_name" field.
func (m *PullRequestMutation) SetRepositoryFullName(s string) {
	m.repository_full_name = &s
}

// RepositoryFullName returns the value of the "repository_full_name" field in the mutation.
func (m *PullRequestMutation) RepositoryFullName() (r string, exists bool) {
	v := m.repository_full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRepositoryFullName returns the old "repository_full_name" field's value of the PullRequest entity.
// If the PullRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PullRequestMutation) OldRepositoryFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepositoryFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepositoryFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepositoryFullName: %w", err)
	}
	return oldValue.RepositoryFullName, nil
}

// ResetRepositoryFullName resets all changes to the "repository_full_name" field.
func (m *PullRequestMutation) ResetRepositoryFullName() {
	m.repository_full_name = nil
}

// SetNumber sets the "number" field.
func (m *PullRequestMutation) SetNumber(i int) {
	m.number = &i
	m.addnumber = nil
}

// Number returns the value of the "number" field in the mutation.
func (m *PullRequestMutation) Number() (r int, exists bool) {
	v := m.number
	if v == nil {
		return
	}
	return *v, true
}

// OldNumber returns the old "number" field's value of the PullRequest entity.
// If the PullRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PullRequestMutation) OldNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumber: %w", err)
	}
	return oldValue.Number, nil
}

// AddNumber adds i to the "number" field.
func (m *PullRequestMutation) AddNumber(i int) {
	if m.addnumber != nil {
		*m.addnumber += i
	} else {
		m.addnumber = &i
	}
}

// AddedNumber returns the value that was added to the "number" field in this mutation.
func (m *PullRequestMutation) AddedNumber() (r int, exists bool) {
	v := m.addnumber
	if v == nil {
		return
	}
	return *v, true
}

// ResetNumber resets all changes to the "number" field.
func (m *PullRequestMutation) ResetNumber() {
	m.number = nil
	m.addnumber = nil
}

// SetTitle sets the "title" field.
func (m *PullRequestMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *PullRequestMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the PullRequest entity.
// If the PullRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PullRequestMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *PullRequestMutation) ResetTitle() {
	m.title = nil
}

// SetBody sets the "body" field.
func (m *PullRequestMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *PullRequestMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the PullRequest entity.
// If the PullRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PullRequestMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ClearBody clears the value of the "body" field.
func (m *PullRequestMutation) ClearBody() {
	m.body = nil
	m.clearedFields[pullrequest.FieldBody] = struct{}{}
}

// BodyCleared returns if the "body" field was cleared in this mutation.
func (m *PullRequestMutation) BodyCleared() bool {
	_, ok := m.clearedFields[pullrequest.FieldBody]
	return ok
}

// ResetBody resets all changes to the "body" field.
func (m *PullRequestMutation) ResetBody() {
	m.body = nil
	delete(m.clearedFields, pullrequest.FieldBody)
}

// SetBranchName sets the "branch_name" field.
func (m *PullRequestMutation) SetBranchName(s string) {
	m.branch_name = &s
}

// BranchName returns the value of the "branch_name" field in the mutation.
func (m *PullRequestMutation) BranchName() (r string, exists bool) {
	v := m.branch_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBranchName returns the old "branch_name" field's value of the PullRequest entity.
// If the PullRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PullRequestMutation) OldBranchName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranchName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranchName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranchName: %w", err)
	}
	return oldValue.BranchName, nil
}

// ResetBranchName resets all changes to the "branch_name" field.
func (m *PullRequestMutation) ResetBranchName() {
	m.branch_name = nil
}

// SetHeadSha sets the "head_sha" field.
func (m *PullRequestMutation) SetHeadSha(s string) {
	m.head_sha = &s
}

// HeadSha returns the value of the "head_sha" field in the mutation.
func (m *PullRequestMutation) HeadSha() (r string, exists bool) {
	v := m.head_sha
	if v == nil {
		return
	}
	return *v, true
}

// OldHeadSha returns the old "head_sha" field's value of the PullRequest entity.
// If the PullRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PullRequestMutation) OldHeadSha(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeadSha is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeadSha requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeadSha: %w", err)
	}
	return oldValue.HeadSha, nil
}

// ClearHeadSha clears the value of the "head_sha" field.
func (m *PullRequestMutation) ClearHeadSha() {
	m.head_sha = nil
	m.clearedFields[pullrequest.FieldHeadSha] = struct{}{}
}

// HeadShaCleared returns if the "head_sha" field was cleared in this mutation.
func (m *PullRequestMutation) HeadShaCleared() bool {
	_, ok := m.clearedFields[pullrequest.FieldHeadSha]
	return ok
}

// ResetHeadSha resets all changes to the "head_sha" field.
func (m *PullRequestMutation) ResetHeadSha() {
	m.head_sha = nil
	delete(m.clearedFields, pullrequest.FieldHeadSha)
}

// SetURL sets the "url" field.
func (m *PullRequestMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *PullRequestMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the PullRequest entity.
// If the PullRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PullRequestMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *PullRequestMutation) ResetURL() {
	m.url = nil
}

// SetStatus sets the "status" field.
func (m *PullRequestMutation) SetStatus(pu pullrequest.Status) {
	m.status = &pu
}

// Status returns the value of the "status" field in the mutation.
func (m *PullRequestMutation) Status() (r pullrequest.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PullRequest entity.
// If the PullRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PullRequestMutation) OldStatus(ctx context.Context) (v pullrequest.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PullRequestMutation) ResetStatus() {
	m.status = nil
}

// SetReviewsPassed sets the "reviews_passed" field.
func (m *PullRequestMutation) SetReviewsPassed(b bool) {
	m.reviews_passed = &b
}

// ReviewsPassed returns the value of the "reviews_passed" field in the mutation.
func (m *PullRequestMutation) ReviewsPassed() (r bool, exists bool) {
	v := m.reviews_passed
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewsPassed returns the old "reviews_passed" field's value of the PullRequest entity.
// If the PullRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PullRequestMutation) OldReviewsPassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewsPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewsPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewsPassed: %w", err)
	}
	return oldValue.ReviewsPassed, nil
}

// ResetReviewsPassed resets all changes to the "reviews_passed" field.
func (m *PullRequestMutation) ResetReviewsPassed() {
	m.reviews_passed = nil
}

// SetCheckStatus sets the "check_status" field.
func (m *PullRequestMutation) SetCheckStatus(s string) {
	m.check_status = &s
}

// CheckStatus returns the value of the "check_status" field in the mutation.
func (m *PullRequestMutation) CheckStatus() (r string, exists bool) {
	v := m.check_status
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckStatus returns the old "check_status" field's value of the PullRequest entity.
// If the PullRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PullRequestMutation) OldCheckStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckStatus: %w", err)
	}
	return oldValue.CheckStatus, nil
}

// ClearCheckStatus clears the value of the "check_status" field.
func (m *PullRequestMutation) ClearCheckStatus() {
	m.check_status = nil
	m.clearedFields[pullrequest.FieldCheckStatus] = struct{}{}
}

// CheckStatusCleared returns if the "check_status" field was cleared in this mutation.
func (m *PullRequestMutation) CheckStatusCleared() bool {
	_, ok := m.clearedFields[pullrequest.FieldCheckStatus]
	return ok
}

// ResetCheckStatus resets all changes to the "check_status" field.
func (m *PullRequestMutation) ResetCheckStatus() {
	m.check_status = nil
	delete(m.clearedFields, pullrequest.FieldCheckStatus)
}

// SetCreatedAt sets the "created_at" field.
func (m *PullRequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PullRequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PullRequest entity.
// If the PullRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PullRequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PullRequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PullRequestMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PullRequestMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PullRequest entity.
// If the PullRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PullRequestMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PullRequestMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *PullRequestMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[pullrequest.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *PullRequestMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *PullRequestMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *PullRequestMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the PullRequestMutation builder.
func (m *PullRequestMutation) Where(ps ...predicate.PullRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PullRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PullRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PullRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PullRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PullRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PullRequest).
func (m *PullRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PullRequestMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.task != nil {
		fields = append(fields, pullrequest.FieldTaskID)
	}
	if m.repository_full_name != nil {
		fields = append(fields, pullrequest.FieldRepositoryFullName)
	}
	if m.number != nil {
		fields = append(fields, pullrequest.FieldNumber)
	}
	if m.title != nil {
		fields = append(fields, pullrequest.FieldTitle)
	}
	if m.body != nil {
		fields = append(fields, pullrequest.FieldBody)
	}
	if m.branch_name != nil {
		fields = append(fields, pullrequest.FieldBranchName)
	}
	if m.head_sha != nil {
		fields = append(fields, pullrequest.FieldHeadSha)
	}
	if m.url != nil {
		fields = append(fields, pullrequest.FieldURL)
	}
	if m.status != nil {
		fields = append(fields, pullrequest.FieldStatus)
	}
	if m.reviews_passed != nil {
		fields = append(fields, pullrequest.FieldReviewsPassed)
	}
	if m.check_status != nil {
		fields = append(fields, pullrequest.FieldCheckStatus)
	}
	if m.created_at != nil {
		fields = append(fields, pullrequest.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, pullrequest.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PullRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pullrequest.FieldTaskID:
		return m.TaskID()
	case pullrequest.FieldRepositoryFullName:
		return m.RepositoryFullName()
	case pullrequest.FieldNumber:
		return m.Number()
	case pullrequest.FieldTitle:
		return m.Title()
	case pullrequest.FieldBody:
		return m.Body()
	case pullrequest.FieldBranchName:
		return m.BranchName()
	case pullrequest.FieldHeadSha:
		return m.HeadSha()
	case pullrequest.FieldURL:
		return m.URL()
	case pullrequest.FieldStatus:
		return m.Status()
	case pullrequest.FieldReviewsPassed:
		return m.ReviewsPassed()
	case pullrequest.FieldCheckStatus:
		return m.CheckStatus()
	case pullrequest.FieldCreatedAt:
		return m.CreatedAt()
	case pullrequest.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PullRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pullrequest.FieldTaskID:
		return m.OldTaskID(ctx)
	case pullrequest.FieldRepositoryFullName:
		return m.OldRepositoryFullName(ctx)
	case pullrequest.FieldNumber:
		return m.OldNumber(ctx)
	case pullrequest.FieldTitle:
		return m.OldTitle(ctx)
	case pullrequest.FieldBody:
		return m.OldBody(ctx)
	case pullrequest.FieldBranchName:
		return m.OldBranchName(ctx)
	case pullrequest.FieldHeadSha:
		return m.OldHeadSha(ctx)
	case pullrequest.FieldURL:
		return m.OldURL(ctx)
	case pullrequest.FieldStatus:
		return m.OldStatus(ctx)
	case pullrequest.FieldReviewsPassed:
		return m.OldReviewsPassed(ctx)
	case pullrequest.FieldCheckStatus:
		return m.OldCheckStatus(ctx)
	case pullrequest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pullrequest.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PullRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PullRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pullrequest.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case pullrequest.FieldRepositoryFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepositoryFullName(v)
		return nil
	case pullrequest.FieldNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumber(v)
		return nil
	case pullrequest.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case pullrequest.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case pullrequest.FieldBranchName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranchName(v)
		return nil
	case pullrequest.FieldHeadSha:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeadSha(v)
		return nil
	case pullrequest.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case pullrequest.FieldStatus:
		v, ok := value.(pullrequest.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pullrequest.FieldReviewsPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewsPassed(v)
		return nil
	case pullrequest.FieldCheckStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckStatus(v)
		return nil
	case pullrequest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pullrequest.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PullRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PullRequestMutation) AddedFields() []string {
	var fields []string
	if m.addnumber != nil {
		fields = append(fields, pullrequest.FieldNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PullRequestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pullrequest.FieldNumber:
		return m.AddedNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PullRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pullrequest.FieldNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNumber(v)
		return nil
	}
	return fmt.Errorf("unknown PullRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PullRequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pullrequest.FieldBody) {
		fields = append(fields, pullrequest.FieldBody)
	}
	if m.FieldCleared(pullrequest.FieldHeadSha) {
		fields = append(fields, pullrequest.FieldHeadSha)
	}
	if m.FieldCleared(pullrequest.FieldCheckStatus) {
		fields = append(fields, pullrequest.FieldCheckStatus)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PullRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PullRequestMutation) ClearField(name string) error {
	switch name {
	case pullrequest.FieldBody:
		m.ClearBody()
		return nil
	case pullrequest.FieldHeadSha:
		m.ClearHeadSha()
		return nil
	case pullrequest.FieldCheckStatus:
		m.ClearCheckStatus()
		return nil
	}
	return fmt.Errorf("unknown PullRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PullRequestMutation) ResetField(name string) error {
	switch name {
	case pullrequest.FieldTaskID:
		m.ResetTaskID()
		return nil
	case pullrequest.FieldRepositoryFullName:
		m.ResetRepositoryFullName()
		return nil
	case pullrequest.FieldNumber:
		m.ResetNumber()
		return nil
	case pullrequest.FieldTitle:
		m.ResetTitle()
		return nil
	case pullrequest.FieldBody:
		m.ResetBody()
		return nil
	case pullrequest.FieldBranchName:
		m.ResetBranchName()
		return nil
	case pullrequest.FieldHeadSha:
		m.ResetHeadSha()
		return nil
	case pullrequest.FieldURL:
		m.ResetURL()
		return nil
	case pullrequest.FieldStatus:
		m.ResetStatus()
		return nil
	case pullrequest.FieldReviewsPassed:
		m.ResetReviewsPassed()
		return nil
	case pullrequest.FieldCheckStatus:
		m.ResetCheckStatus()
		return nil
	case pullrequest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pullrequest.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PullRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PullRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, pullrequest.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PullRequestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pullrequest.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PullRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PullRequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PullRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, pullrequest.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PullRequestMutation) EdgeCleared(name string) bool {
	switch name {
	case pullrequest.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PullRequestMutation) ClearEdge(name string) error {
	switch name {
	case pullrequest.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown PullRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PullRequestMutation) ResetEdge(name string) error {
	switch name {
	case pullrequest.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown PullRequest edge %s", name)
}

// SubtaskMutation represents an operation that mutates the Subtask nodes in the graph.
type SubtaskMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	subproject_path      *string
	title                *string
	description          *string
	status               *subtask.Status
	depends_on           *[]string
	appenddepends_on     []string
	agent_run_id         *string
	files_modified       *[]string
	appendfiles_modified []string
	error_message        *string
	created_at           *time.Time
	updated_at           *time.Time
	started_at           *time.Time
	completed_at         *time.Time
	clearedFields        map[string]struct{}
	task                 *string
	clearedtask          bool
	done                 bool
	oldValue             func(context.Context) (*Subtask, error)
	predicates           []predicate.Subtask
}

var _ ent.Mutation = (*SubtaskMutation)(nil)

// subtaskOption allows management of the mutation configuration using functional options.
type subtaskOption func(*SubtaskMutation)

// newSubtaskMutation creates new mutation for the Subtask entity.
func newSubtaskMutation(c config, op Op, opts ...subtaskOption) *SubtaskMutation {
	m := &SubtaskMutation{
		config:        c,
		op:            op,
		typ:           TypeSubtask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubtaskID sets the ID field of the mutation.
func withSubtaskID(id string) subtaskOption {
	return func(m *SubtaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Subtask
		)
		m.oldValue = func(ctx context.Context) (*Subtask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Subtask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubtask sets the old Subtask of the mutation.
func withSubtask(node *Subtask) subtaskOption {
	return func(m *SubtaskMutation) {
		m.oldValue = func(context.Context) (*Subtask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubtaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubtaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Subtask entities.
func (m *SubtaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubtaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubtaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Subtask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *SubtaskMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *SubtaskMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Subtask entity.
// If the Subtask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtaskMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *SubtaskMutation) ResetTaskID() {
	m.task = nil
}

// SetSubprojectPath sets the "subproject_path" field.
func (m *SubtaskMutation) SetSubprojectPath(s string) {
	m.subproject_path = &s
}

// SubprojectPath returns the value of the "subproject_path" field in the mutation.
func (m *SubtaskMutation) SubprojectPath() (r string, exists bool) {
	v := m.subproject_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSubprojectPath returns the old "subproject_path" field's value of the Subtask entity.
// If the Subtask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtaskMutation) OldSubprojectPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubprojectPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubprojectPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubprojectPath: %w", err)
	}
	return oldValue.SubprojectPath, nil
}

// ResetSubprojectPath resets all changes to the "subproject_path" field.
func (m *SubtaskMutation) ResetSubprojectPath() {
	m.subproject_path = nil
}

// SetTitle sets the "title" field.
func (m *SubtaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *SubtaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Subtask entity.
// If the Subtask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *SubtaskMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *SubtaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SubtaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Subtask entity.
// If the Subtask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *SubtaskMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[subtask.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *SubtaskMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[subtask.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *SubtaskMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, subtask.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *SubtaskMutation) SetStatus(s subtask.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SubtaskMutation) Status() (r subtask.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Subtask entity.
// If the Subtask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtaskMutation) OldStatus(ctx context.Context) (v subtask.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SubtaskMutation) ResetStatus() {
	m.status = nil
}

// SetDependsOn sets the "depends_on" field.
func (m *SubtaskMutation) SetDependsOn(s []string) {
	m.depends_on = &s
	m.appenddepends_on = nil
}

// DependsOn returns the value of the "depends_on" field in the mutation.
func (m *SubtaskMutation) DependsOn() (r []string, exists bool) {
	v := m.depends_on
	if v == nil {
		return
	}
	return *v, true
}

// OldDependsOn returns the old "depends_on" field's value of the Subtask entity.
// If the Subtask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtaskMutation) OldDependsOn(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependsOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependsOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependsOn: %w", err)
	}
	return oldValue.DependsOn, nil
}

// AppendDependsOn adds s to the "depends_on" field.
func (m *SubtaskMutation) AppendDependsOn(s []string) {
	m.appenddepends_on = append(m.appenddepends_on, s...)
}

// AppendedDependsOn returns the list of values that were appended to the "depends_on" field in this mutation.
func (m *SubtaskMutation) AppendedDependsOn() ([]string, bool) {
	if len(m.appenddepends_on) == 0 {
		return nil, false
	}
	return m.appenddepends_on, true
}

// ClearDependsOn clears the value of the "depends_on" field.
func (m *SubtaskMutation) ClearDependsOn() {
	m.depends_on = nil
	m.appenddepends_on = nil
	m.clearedFields[subtask.FieldDependsOn] = struct{}{}
}

// DependsOnCleared returns if the "depends_on" field was cleared in this mutation.
func (m *SubtaskMutation) DependsOnCleared() bool {
	_, ok := m.clearedFields[subtask.FieldDependsOn]
	return ok
}

// ResetDependsOn resets all changes to the "depends_on" field.
func (m *SubtaskMutation) ResetDependsOn() {
	m.depends_on = nil
	m.appenddepends_on = nil
	delete(m.clearedFields, subtask.FieldDependsOn)
}

// SetAgentRunID sets the "agent_run_id" field.
func (m *SubtaskMutation) SetAgentRunID(s string) {
	m.agent_run_id = &s
}

// AgentRunID returns the value of the "agent_run_id" field in the mutation.
func (m *SubtaskMutation) AgentRunID() (r string, exists bool) {
	v := m.agent_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentRunID returns the old "agent_run_id" field's value of the Subtask entity.
// If the Subtask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtaskMutation) OldAgentRunID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentRunID: %w", err)
	}
	return oldValue.AgentRunID, nil
}

// ClearAgentRunID clears the value of the "agent_run_id" field.
func (m *SubtaskMutation) ClearAgentRunID() {
	m.agent_run_id = nil
	m.clearedFields[subtask.FieldAgentRunID] = struct{}{}
}

// AgentRunIDCleared returns if the "agent_run_id" field was cleared in this mutation.
func (m *SubtaskMutation) AgentRunIDCleared() bool {
	_, ok := m.clearedFields[subtask.FieldAgentRunID]
	return ok
}

// ResetAgentRunID resets all changes to the "agent_run_id" field.
func (m *SubtaskMutation) ResetAgentRunID() {
	m.agent_run_id = nil
	delete(m.clearedFields, subtask.FieldAgentRunID)
}

// SetFilesModified sets the "files_modified" field.
func (m *SubtaskMutation) SetFilesModified(s []string) {
	m.files_modified = &s
	m.appendfiles_modified = nil
}

// FilesModified returns the value of the "files_modified" field in the mutation.
func (m *SubtaskMutation) FilesModified() (r []string, exists bool) {
	v := m.files_modified
	if v == nil {
		return
	}
	return *v, true
}

// OldFilesModified returns the old "files_modified" field's value of the Subtask entity.
// If the Subtask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtaskMutation) OldFilesModified(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilesModified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilesModified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilesModified: %w", err)
	}
	return oldValue.FilesModified, nil
}

// AppendFilesModified adds s to the "files_modified" field.
func (m *SubtaskMutation) AppendFilesModified(s []string) {
	m.appendfiles_modified = append(m.appendfiles_modified, s...)
}

// AppendedFilesModified returns the list of values that were appended to the "files_modified" field in this mutation.
func (m *SubtaskMutation) AppendedFilesModified() ([]string, bool) {
	if len(m.appendfiles_modified) == 0 {
		return nil, false
	}
	return m.appendfiles_modified, true
}

// ClearFilesModified clears the value of the "files_modified" field.
func (m *SubtaskMutation) ClearFilesModified() {
	m.files_modified = nil
	m.appendfiles_modified = nil
	m.clearedFields[subtask.FieldFilesModified] = struct{}{}
}

// FilesModifiedCleared returns if the "files_modified" field was cleared in this mutation.
func (m *SubtaskMutation) FilesModifiedCleared() bool {
	_, ok := m.clearedFields[subtask.FieldFilesModified]
	return ok
}

// ResetFilesModified resets all changes to the "files_modified" field.
func (m *SubtaskMutation) ResetFilesModified() {
	m.files_modified = nil
	m.appendfiles_modified = nil
	delete(m.clearedFields, subtask.FieldFilesModified)
}

// SetErrorMessage sets the "error_message" field.
func (m *SubtaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *SubtaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Subtask entity.
// If the Subtask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtaskMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *SubtaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[subtask.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *SubtaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[subtask.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *SubtaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, subtask.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *SubtaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubtaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Subtask entity.
// If the Subtask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubtaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SubtaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SubtaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Subtask entity.
// If the Subtask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SubtaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *SubtaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SubtaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Subtask entity.
// If the Subtask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *SubtaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[subtask.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *SubtaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[subtask.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SubtaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, subtask.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *SubtaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SubtaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Subtask entity.
// If the Subtask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SubtaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[subtask.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SubtaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[subtask.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SubtaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, subtask.FieldCompletedAt)
}

// ClearTask clears the "task" edge to the Task entity.
func (m *SubtaskMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[subtask.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *SubtaskMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *SubtaskMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *SubtaskMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the SubtaskMutation builder.
func (m *SubtaskMutation) Where(ps ...predicate.Subtask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubtaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubtaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Subtask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubtaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubtaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Subtask).
func (m *SubtaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubtaskMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.task != nil {
		fields = append(fields, subtask.FieldTaskID)
	}
	if m.subproject_path != nil {
		fields = append(fields, subtask.FieldSubprojectPath)
	}
	if m.title != nil {
		fields = append(fields, subtask.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, subtask.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, subtask.FieldStatus)
	}
	if m.depends_on != nil {
		fields = append(fields, subtask.FieldDependsOn)
	}
	if m.agent_run_id != nil {
		fields = append(fields, subtask.FieldAgentRunID)
	}
	if m.files_modified != nil {
		fields = append(fields, subtask.FieldFilesModified)
	}
	if m.error_message != nil {
		fields = append(fields, subtask.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, subtask.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, subtask.FieldUpdatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, subtask.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, subtask.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubtaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subtask.FieldTaskID:
		return m.TaskID()
	case subtask.FieldSubprojectPath:
		return m.SubprojectPath()
	case subtask.FieldTitle:
		return m.Title()
	case subtask.FieldDescription:
		return m.Description()
	case subtask.FieldStatus:
		return m.Status()
	case subtask.FieldDependsOn:
		return m.DependsOn()
	case subtask.FieldAgentRunID:
		return m.AgentRunID()
	case subtask.FieldFilesModified:
		return m.FilesModified()
	case subtask.FieldErrorMessage:
		return m.ErrorMessage()
	case subtask.FieldCreatedAt:
		return m.CreatedAt()
	case subtask.FieldUpdatedAt:
		return m.UpdatedAt()
	case subtask.FieldStartedAt:
		return m.StartedAt()
	case subtask.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubtaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subtask.FieldTaskID:
		return m.OldTaskID(ctx)
	case subtask.FieldSubprojectPath:
		return m.OldSubprojectPath(ctx)
	case subtask.FieldTitle:
		return m.OldTitle(ctx)
	case subtask.FieldDescription:
		return m.OldDescription(ctx)
	case subtask.FieldStatus:
		return m.OldStatus(ctx)
	case subtask.FieldDependsOn:
		return m.OldDependsOn(ctx)
	case subtask.FieldAgentRunID:
		return m.OldAgentRunID(ctx)
	case subtask.FieldFilesModified:
		return m.OldFilesModified(ctx)
	case subtask.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case subtask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case subtask.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case subtask.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case subtask.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Subtask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubtaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subtask.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case subtask.FieldSubprojectPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubprojectPath(v)
		return nil
	case subtask.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case subtask.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case subtask.FieldStatus:
		v, ok := value.(subtask.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case subtask.FieldDependsOn:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependsOn(v)
		return nil
	case subtask.FieldAgentRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentRunID(v)
		return nil
	case subtask.FieldFilesModified:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilesModified(v)
		return nil
	case subtask.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case subtask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case subtask.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case subtask.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case subtask.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Subtask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubtaskMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubtaskMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubtaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Subtask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubtaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(subtask.FieldDescription) {
		fields = append(fields, subtask.FieldDescription)
	}
	if m.FieldCleared(subtask.FieldDependsOn) {
		fields = append(fields, subtask.FieldDependsOn)
	}
	if m.FieldCleared(subtask.FieldAgentRunID) {
		fields = append(fields, subtask.FieldAgentRunID)
	}
	if m.FieldCleared(subtask.FieldFilesModified) {
		fields = append(fields, subtask.FieldFilesModified)
	}
	if m.FieldCleared(subtask.FieldErrorMessage) {
		fields = append(fields, subtask.FieldErrorMessage)
	}
	if m.FieldCleared(subtask.FieldStartedAt) {
		fields = append(fields, subtask.FieldStartedAt)
	}
	if m.FieldCleared(subtask.FieldCompletedAt) {
		fields = append(fields, subtask.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubtaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubtaskMutation) ClearField(name string) error {
	switch name {
	case subtask.FieldDescription:
		m.ClearDescription()
		return nil
	case subtask.FieldDependsOn:
		m.ClearDependsOn()
		return nil
	case subtask.FieldAgentRunID:
		m.ClearAgentRunID()
		return nil
	case subtask.FieldFilesModified:
		m.ClearFilesModified()
		return nil
	case subtask.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case subtask.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case subtask.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Subtask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubtaskMutation) ResetField(name string) error {
	switch name {
	case subtask.FieldTaskID:
		m.ResetTaskID()
		return nil
	case subtask.FieldSubprojectPath:
		m.ResetSubprojectPath()
		return nil
	case subtask.FieldTitle:
		m.ResetTitle()
		return nil
	case subtask.FieldDescription:
		m.ResetDescription()
		return nil
	case subtask.FieldStatus:
		m.ResetStatus()
		return nil
	case subtask.FieldDependsOn:
		m.ResetDependsOn()
		return nil
	case subtask.FieldAgentRunID:
		m.ResetAgentRunID()
		return nil
	case subtask.FieldFilesModified:
		m.ResetFilesModified()
		return nil
	case subtask.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case subtask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case subtask.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case subtask.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case subtask.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Subtask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubtaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, subtask.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubtaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case subtask.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubtaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubtaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubtaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, subtask.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubtaskMutation) EdgeCleared(name string) bool {
	switch name {
	case subtask.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubtaskMutation) ClearEdge(name string) error {
	switch name {
	case subtask.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown Subtask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubtaskMutation) ResetEdge(name string) error {
	switch name {
	case subtask.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown Subtask edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                            Op
	typ                           string
	id                            *string
	github_project_item_id        *string
	github_project_id             *string
	repository_full_name          *string
	repository_id                 *int64
	addrepository_id              *int64
	installation_id               *int64
	addinstallation_id            *int64
	title                         *string
	description                   *string
	status                        *task.Status
	branch_name                   *string
	pull_request_number           *int
	addpull_request_number        *int
	pull_request_url              *string
	error_message                 *string
	human_review_question         *string
	human_review_answer           *string
	retry_count                   *int
	addretry_count                *int
	is_epic                       *bool
	parent_task_id                *string
	linked_github_issue_number    *int
	addlinked_github_issue_number *int
	child_dependencies            *[]string
	appendchild_dependencies      []string
	created_at                    *time.Time
	updated_at                    *time.Time
	started_at                    *time.Time
	completed_at                  *time.Time
	clearedFields                 map[string]struct{}
	subtasks                      map[string]struct{}
	removedsubtasks               map[string]struct{}
	clearedsubtasks               bool
	agent_runs                    map[string]struct{}
	removedagent_runs             map[string]struct{}
	clearedagent_runs             bool
	code_reviews                  map[string]struct{}
	removedcode_reviews           map[string]struct{}
	clearedcode_reviews           bool
	pull_requests                 map[string]struct{}
	removedpull_requests          map[string]struct{}
	clearedpull_requests          bool
	notifications                 map[string]struct{}
	removednotifications          map[string]struct{}
	clearednotifications          bool
	done                          bool
	oldValue                      func(context.Context) (*Task, error)
	predicates                    []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGithubProjectItemID sets the "github_project_item_id" field.
func (m *TaskMutation) SetGithubProjectItemID(s string) {
	m.github_project_item_id = &s
}

// GithubProjectItemID returns the value of the "github_project_item_id" field in the mutation.
func (m *TaskMutation) GithubProjectItemID() (r string, exists bool) {
	v := m.github_project_item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGithubProjectItemID returns the old "github_project_item_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldGithubProjectItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGithubProjectItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGithubProjectItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGithubProjectItemID: %w", err)
	}
	return oldValue.GithubProjectItemID, nil
}

// ClearGithubProjectItemID clears the value of the "github_project_item_id" field.
func (m *TaskMutation) ClearGithubProjectItemID() {
	m.github_project_item_id = nil
	m.clearedFields[task.FieldGithubProjectItemID] = struct{}{}
}

// GithubProjectItemIDCleared returns if the "github_project_item_id" field was cleared in this mutation.
func (m *TaskMutation) GithubProjectItemIDCleared() bool {
	_, ok := m.clearedFields[task.FieldGithubProjectItemID]
	return ok
}

// ResetGithubProjectItemID resets all changes to the "github_project_item_id" field.
func (m *TaskMutation) ResetGithubProjectItemID() {
	m.github_project_item_id = nil
	delete(m.clearedFields, task.FieldGithubProjectItemID)
}

// SetGithubProjectID sets the "github_project_id" field.
func (m *TaskMutation) SetGithubProjectID(s string) {
	m.github_project_id = &s
}

// GithubProjectID returns the value of the "github_project_id" field in the mutation.
func (m *TaskMutation) GithubProjectID() (r string, exists bool) {
	v := m.github_project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGithubProjectID returns the old "github_project_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldGithubProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGithubProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGithubProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGithubProjectID: %w", err)
	}
	return oldValue.GithubProjectID, nil
}

// ClearGithubProjectID clears the value of the "github_project_id" field.
func (m *TaskMutation) ClearGithubProjectID() {
	m.github_project_id = nil
	m.clearedFields[task.FieldGithubProjectID] = struct{}{}
}

// GithubProjectIDCleared returns if the "github_project_id" field was cleared in this mutation.
func (m *TaskMutation) GithubProjectIDCleared() bool {
	_, ok := m.clearedFields[task.FieldGithubProjectID]
	return ok
}

// ResetGithubProjectID resets all changes to the "github_project_id" field.
func (m *TaskMutation) ResetGithubProjectID() {
	m.github_project_id = nil
	delete(m.clearedFields, task.FieldGithubProjectID)
}

// SetRepositoryFullName sets the "repository_full_name" field.
func (m *TaskMutation) SetRepositoryFullName(s string) {
	m.repository_full_name = &s
}

// RepositoryFullName returns the value of the "repository_full_name" field in the mutation.
func (m *TaskMutation) RepositoryFullName() (r string, exists bool) {
	v := m.repository_full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRepositoryFullName returns the old "repository_full_name" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRepositoryFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepositoryFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepositoryFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepositoryFullName: %w", err)
	}
	return oldValue.RepositoryFullName, nil
}

// ResetRepositoryFullName resets all changes to the "repository_full_name" field.
func (m *TaskMutation) ResetRepositoryFullName() {
	m.repository_full_name = nil
}

// SetRepositoryID sets the "repository_id" field.
func (m *TaskMutation) SetRepositoryID(i int64) {
	m.repository_id = &i
	m.addrepository_id = nil
}

// RepositoryID returns the value of the "repository_id" field in the mutation.
func (m *TaskMutation) RepositoryID() (r int64, exists bool) {
	v := m.repository_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRepositoryID returns the old "repository_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRepositoryID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepositoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepositoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepositoryID: %w", err)
	}
	return oldValue.RepositoryID, nil
}

// AddRepositoryID adds i to the "repository_id" field.
func (m *TaskMutation) AddRepositoryID(i int64) {
	if m.addrepository_id != nil {
		*m.addrepository_id += i
	} else {
		m.addrepository_id = &i
	}
}

// AddedRepositoryID returns the value that was added to the "repository_id" field in this mutation.
func (m *TaskMutation) AddedRepositoryID() (r int64, exists bool) {
	v := m.addrepository_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearRepositoryID clears the value of the "repository_id" field.
func (m *TaskMutation) ClearRepositoryID() {
	m.repository_id = nil
	m.addrepository_id = nil
	m.clearedFields[task.FieldRepositoryID] = struct{}{}
}

// RepositoryIDCleared returns if the "repository_id" field was cleared in this mutation.
func (m *TaskMutation) RepositoryIDCleared() bool {
	_, ok := m.clearedFields[task.FieldRepositoryID]
	return ok
}

// ResetRepositoryID resets all changes to the "repository_id" field.
func (m *TaskMutation) ResetRepositoryID() {
	m.repository_id = nil
	m.addrepository_id = nil
	delete(m.clearedFields, task.FieldRepositoryID)
}

// SetInstallationID sets the "installation_id" field.
func (m *TaskMutation) SetInstallationID(i int64) {
	m.installation_id = &i
	m.addinstallation_id = nil
}

// InstallationID returns the value of the "installation_id" field in the mutation.
func (m *TaskMutation) InstallationID() (r int64, exists bool) {
	v := m.installation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInstallationID returns the old "installation_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldInstallationID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstallationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstallationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstallationID: %w", err)
	}
	return oldValue.InstallationID, nil
}

// AddInstallationID adds i to the "installation_id" field.
func (m *TaskMutation) AddInstallationID(i int64) {
	if m.addinstallation_id != nil {
		*m.addinstallation_id += i
	} else {
		m.addinstallation_id = &i
	}
}

// AddedInstallationID returns the value that was added to the "installation_id" field in this mutation.
func (m *TaskMutation) AddedInstallationID() (r int64, exists bool) {
	v := m.addinstallation_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetInstallationID resets all changes to the "installation_id" field.
func (m *TaskMutation) ResetInstallationID() {
	m.installation_id = nil
	m.addinstallation_id = nil
}

// SetTitle sets the "title" field.
func (m *TaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TaskMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *TaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TaskMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[task.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TaskMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[task.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, task.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetBranchName sets the "branch_name" field.
func (m *TaskMutation) SetBranchName(s string) {
	m.branch_name = &s
}

// BranchName returns the value of the "branch_name" field in the mutation.
func (m *TaskMutation) BranchName() (r string, exists bool) {
	v := m.branch_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBranchName returns the old "branch_name" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldBranchName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranchName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranchName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranchName: %w", err)
	}
	return oldValue.BranchName, nil
}

// ClearBranchName clears the value of the "branch_name" field.
func (m *TaskMutation) ClearBranchName() {
	m.branch_name = nil
	m.clearedFields[task.FieldBranchName] = struct{}{}
}

// BranchNameCleared returns if the "branch_name" field was cleared in this mutation.
func (m *TaskMutation) BranchNameCleared() bool {
	_, ok := m.clearedFields[task.FieldBranchName]
	return ok
}

// ResetBranchName resets all changes to the "branch_name" field.
func (m *TaskMutation) ResetBranchName() {
	m.branch_name = nil
	delete(m.clearedFields, task.FieldBranchName)
}

// SetPullRequestNumber sets the "pull_request_number" field.
func (m *TaskMutation) SetPullRequestNumber(i int) {
	m.pull_request_number = &i
	m.addpull_request_number = nil
}

// PullRequestNumber returns the value of the "pull_request_number" field in the mutation.
func (m *TaskMutation) PullRequestNumber() (r int, exists bool) {
	v := m.pull_request_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPullRequestNumber returns the old "pull_request_number" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPullRequestNumber(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPullRequestNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPullRequestNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPullRequestNumber: %w", err)
	}
	return oldValue.PullRequestNumber, nil
}

// AddPullRequestNumber adds i to the "pull_request_number" field.
func (m *TaskMutation) AddPullRequestNumber(i int) {
	if m.addpull_request_number != nil {
		*m.addpull_request_number += i
	} else {
		m.addpull_request_number = &i
	}
}

// AddedPullRequestNumber returns the value that was added to the "pull_request_number" field in this mutation.
func (m *TaskMutation) AddedPullRequestNumber() (r int, exists bool) {
	v := m.addpull_request_number
	if v == nil {
		return
	}
	return *v, true
}

// ClearPullRequestNumber clears the value of the "pull_request_number" field.
func (m *TaskMutation) ClearPullRequestNumber() {
	m.pull_request_number = nil
	m.addpull_request_number = nil
	m.clearedFields[task.FieldPullRequestNumber] = struct{}{}
}

// PullRequestNumberCleared returns if the "pull_request_number" field was cleared in this mutation.
func (m *TaskMutation) PullRequestNumberCleared() bool {
	_, ok := m.clearedFields[task.FieldPullRequestNumber]
	return ok
}

// ResetPullRequestNumber resets all changes to the "pull_request_number" field.
func (m *TaskMutation) ResetPullRequestNumber() {
	m.pull_request_number = nil
	m.addpull_request_number = nil
	delete(m.clearedFields, task.FieldPullRequestNumber)
}

// SetPullRequestURL sets the "pull_request_url" field.
func (m *TaskMutation) SetPullRequestURL(s string) {
	m.pull_request_url = &s
}

// PullRequestURL returns the value of the "pull_request_url" field in the mutation.
func (m *TaskMutation) PullRequestURL() (r string, exists bool) {
	v := m.pull_request_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPullRequestURL returns the old "pull_request_url" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPullRequestURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPullRequestURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPullRequestURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPullRequestURL: %w", err)
	}
	return oldValue.PullRequestURL, nil
}

// ClearPullRequestURL clears the value of the "pull_request_url" field.
func (m *TaskMutation) ClearPullRequestURL() {
	m.pull_request_url = nil
	m.clearedFields[task.FieldPullRequestURL] = struct{}{}
}

// PullRequestURLCleared returns if the "pull_request_url" field was cleared in this mutation.
func (m *TaskMutation) PullRequestURLCleared() bool {
	_, ok := m.clearedFields[task.FieldPullRequestURL]
	return ok
}

// ResetPullRequestURL resets all changes to the "pull_request_url" field.
func (m *TaskMutation) ResetPullRequestURL() {
	m.pull_request_url = nil
	delete(m.clearedFields, task.FieldPullRequestURL)
}

// SetErrorMessage sets the "error_message" field.
func (m *TaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[task.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[task.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, task.FieldErrorMessage)
}

// SetHumanReviewQuestion sets the "human_review_question" field.
func (m *TaskMutation) SetHumanReviewQuestion(s string) {
	m.human_review_question = &s
}

// HumanReviewQuestion returns the value of the "human_review_question" field in the mutation.
func (m *TaskMutation) HumanReviewQuestion() (r string, exists bool) {
	v := m.human_review_question
	if v == nil {
		return
	}
	return *v, true
}

// OldHumanReviewQuestion returns the old "human_review_question" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldHumanReviewQuestion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHumanReviewQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHumanReviewQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHumanReviewQuestion: %w", err)
	}
	return oldValue.HumanReviewQuestion, nil
}

// ClearHumanReviewQuestion clears the value of the "human_review_question" field.
func (m *TaskMutation) ClearHumanReviewQuestion() {
	m.human_review_question = nil
	m.clearedFields[task.FieldHumanReviewQuestion] = struct{}{}
}

// HumanReviewQuestionCleared returns if the "human_review_question" field was cleared in this mutation.
func (m *TaskMutation) HumanReviewQuestionCleared() bool {
	_, ok := m.clearedFields[task.FieldHumanReviewQuestion]
	return ok
}

// ResetHumanReviewQuestion resets all changes to the "human_review_question" field.
func (m *TaskMutation) ResetHumanReviewQuestion() {
	m.human_review_question = nil
	delete(m.clearedFields, task.FieldHumanReviewQuestion)
}

// SetHumanReviewAnswer sets the "human_review_answer" field.
func (m *TaskMutation) SetHumanReviewAnswer(s string) {
	m.human_review_answer = &s
}

// HumanReviewAnswer returns the value of the "human_review_answer" field in the mutation.
func (m *TaskMutation) HumanReviewAnswer() (r string, exists bool) {
	v := m.human_review_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldHumanReviewAnswer returns the old "human_review_answer" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldHumanReviewAnswer(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHumanReviewAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHumanReviewAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHumanReviewAnswer: %w", err)
	}
	return oldValue.HumanReviewAnswer, nil
}

// ClearHumanReviewAnswer clears the value of the "human_review_answer" field.
func (m *TaskMutation) ClearHumanReviewAnswer() {
	m.human_review_answer = nil
	m.clearedFields[task.FieldHumanReviewAnswer] = struct{}{}
}

// HumanReviewAnswerCleared returns if the "human_review_answer" field was cleared in this mutation.
func (m *TaskMutation) HumanReviewAnswerCleared() bool {
	_, ok := m.clearedFields[task.FieldHumanReviewAnswer]
	return ok
}

// ResetHumanReviewAnswer resets all changes to the "human_review_answer" field.
func (m *TaskMutation) ResetHumanReviewAnswer() {
	m.human_review_answer = nil
	delete(m.clearedFields, task.FieldHumanReviewAnswer)
}

// SetRetryCount sets the "retry_count" field.
func (m *TaskMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *TaskMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *TaskMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *TaskMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *TaskMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetIsEpic sets the "is_epic" field.
func (m *TaskMutation) SetIsEpic(b bool) {
	m.is_epic = &b
}

// IsEpic returns the value of the "is_epic" field in the mutation.
func (m *TaskMutation) IsEpic() (r bool, exists bool) {
	v := m.is_epic
	if v == nil {
		return
	}
	return *v, true
}

// OldIsEpic returns the old "is_epic" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldIsEpic(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsEpic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsEpic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsEpic: %w", err)
	}
	return oldValue.IsEpic, nil
}

// ResetIsEpic resets all changes to the "is_epic" field.
func (m *TaskMutation) ResetIsEpic() {
	m.is_epic = nil
}

// SetParentTaskID sets the "parent_task_id" field.
func (m *TaskMutation) SetParentTaskID(s string) {
	m.parent_task_id = &s
}

// ParentTaskID returns the value of the "parent_task_id" field in the mutation.
func (m *TaskMutation) ParentTaskID() (r string, exists bool) {
	v := m.parent_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentTaskID returns the old "parent_task_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldParentTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentTaskID: %w", err)
	}
	return oldValue.ParentTaskID, nil
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (m *TaskMutation) ClearParentTaskID() {
	m.parent_task_id = nil
	m.clearedFields[task.FieldParentTaskID] = struct{}{}
}

// ParentTaskIDCleared returns if the "parent_task_id" field was cleared in this mutation.
func (m *TaskMutation) ParentTaskIDCleared() bool {
	_, ok := m.clearedFields[task.FieldParentTaskID]
	return ok
}

// ResetParentTaskID resets all changes to the "parent_task_id" field.
func (m *TaskMutation) ResetParentTaskID() {
	m.parent_task_id = nil
	delete(m.clearedFields, task.FieldParentTaskID)
}

// SetLinkedGithubIssueNumber sets the "linked_github_issue_number" field.
func (m *TaskMutation) SetLinkedGithubIssueNumber(i int) {
	m.linked_github_issue_number = &i
	m.addlinked_github_issue_number = nil
}

// LinkedGithubIssueNumber returns the value of the "linked_github_issue_number" field in the mutation.
func (m *TaskMutation) LinkedGithubIssueNumber() (r int, exists bool) {
	v := m.linked_github_issue_number
	if v == nil {
		return
	}
	return *v, true
}

// OldLinkedGithubIssueNumber returns the old "linked_github_issue_number" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLinkedGithubIssueNumber(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinkedGithubIssueNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinkedGithubIssueNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinkedGithubIssueNumber: %w", err)
	}
	return oldValue.LinkedGithubIssueNumber, nil
}

// AddLinkedGithubIssueNumber adds i to the "linked_github_issue_number" field.
func (m *TaskMutation) AddLinkedGithubIssueNumber(i int) {
	if m.addlinked_github_issue_number != nil {
		*m.addlinked_github_issue_number += i
	} else {
		m.addlinked_github_issue_number = &i
	}
}

// AddedLinkedGithubIssueNumber returns the value that was added to the "linked_github_issue_number" field in this mutation.
func (m *TaskMutation) AddedLinkedGithubIssueNumber() (r int, exists bool) {
	v := m.addlinked_github_issue_number
	if v == nil {
		return
	}
	return *v, true
}

// ClearLinkedGithubIssueNumber clears the value of the "linked_github_issue_number" field.
func (m *TaskMutation) ClearLinkedGithubIssueNumber() {
	m.linked_github_issue_number = nil
	m.addlinked_github_issue_number = nil
	m.clearedFields[task.FieldLinkedGithubIssueNumber] = struct{}{}
}

// LinkedGithubIssueNumberCleared returns if the "linked_github_issue_number" field was cleared in this mutation.
func (m *TaskMutation) LinkedGithubIssueNumberCleared() bool {
	_, ok := m.clearedFields[task.FieldLinkedGithubIssueNumber]
	return ok
}

// ResetLinkedGithubIssueNumber resets all changes to the "linked_github_issue_number" field.
func (m *TaskMutation) ResetLinkedGithubIssueNumber() {
	m.linked_github_issue_number = nil
	m.addlinked_github_issue_number = nil
	delete(m.clearedFields, task.FieldLinkedGithubIssueNumber)
}

// SetChildDependencies sets the "child_dependencies" field.
func (m *TaskMutation) SetChildDependencies(s []string) {
	m.child_dependencies = &s
	m.appendchild_dependencies = nil
}

// ChildDependencies returns the value of the "child_dependencies" field in the mutation.
func (m *TaskMutation) ChildDependencies() (r []string, exists bool) {
	v := m.child_dependencies
	if v == nil {
		return
	}
	return *v, true
}

// OldChildDependencies returns the old "child_dependencies" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldChildDependencies(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChildDependencies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChildDependencies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChildDependencies: %w", err)
	}
	return oldValue.ChildDependencies, nil
}

// AppendChildDependencies adds s to the "child_dependencies" field.
func (m *TaskMutation) AppendChildDependencies(s []string) {
	m.appendchild_dependencies = append(m.appendchild_dependencies, s...)
}

// AppendedChildDependencies returns the list of values that were appended to the "child_dependencies" field in this mutation.
func (m *TaskMutation) AppendedChildDependencies() ([]string, bool) {
	if len(m.appendchild_dependencies) == 0 {
		return nil, false
	}
	return m.appendchild_dependencies, true
}

// ClearChildDependencies clears the value of the "child_dependencies" field.
func (m *TaskMutation) ClearChildDependencies() {
	m.child_dependencies = nil
	m.appendchild_dependencies = nil
	m.clearedFields[task.FieldChildDependencies] = struct{}{}
}

// ChildDependenciesCleared returns if the "child_dependencies" field was cleared in this mutation.
func (m *TaskMutation) ChildDependenciesCleared() bool {
	_, ok := m.clearedFields[task.FieldChildDependencies]
	return ok
}

// ResetChildDependencies resets all changes to the "child_dependencies" field.
func (m *TaskMutation) ResetChildDependencies() {
	m.child_dependencies = nil
	m.appendchild_dependencies = nil
	delete(m.clearedFields, task.FieldChildDependencies)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *TaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[task.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, task.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[task.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, task.FieldCompletedAt)
}

// AddSubtaskIDs adds the "subtasks" edge to the Subtask entity by ids.
func (m *TaskMutation) AddSubtaskIDs(ids ...string) {
	if m.subtasks == nil {
		m.subtasks = make(map[string]struct{})
	}
	for i := range ids {
		m.subtasks[ids[i]] = struct{}{}
	}
}

// ClearSubtasks clears the "subtasks" edge to the Subtask entity.
func (m *TaskMutation) ClearSubtasks() {
	m.clearedsubtasks = true
}

// SubtasksCleared reports if the "subtasks" edge to the Subtask entity was cleared.
func (m *TaskMutation) SubtasksCleared() bool {
	return m.clearedsubtasks
}

// RemoveSubtaskIDs removes the "subtasks" edge to the Subtask entity by IDs.
func (m *TaskMutation) RemoveSubtaskIDs(ids ...string) {
	if m.removedsubtasks == nil {
		m.removedsubtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.subtasks, ids[i])
		m.removedsubtasks[ids[i]] = struct{}{}
	}
}

// RemovedSubtasks returns the removed IDs of the "subtasks" edge to the Subtask entity.
func (m *TaskMutation) RemovedSubtasksIDs() (ids []string) {
	for id := range m.removedsubtasks {
		ids = append(ids, id)
	}
	return
}

// SubtasksIDs returns the "subtasks" edge IDs in the mutation.
func (m *TaskMutation) SubtasksIDs() (ids []string) {
	for id := range m.subtasks {
		ids = append(ids, id)
	}
	return
}

// ResetSubtasks resets all changes to the "subtasks" edge.
func (m *TaskMutation) ResetSubtasks() {
	m.subtasks = nil
	m.clearedsubtasks = false
	m.removedsubtasks = nil
}

// AddAgentRunIDs adds the "agent_runs" edge to the AgentRun entity by ids.
func (m *TaskMutation) AddAgentRunIDs(ids ...string) {
	if m.agent_runs == nil {
		m.agent_runs = make(map[string]struct{})
	}
	for i := range ids {
		m.agent_runs[ids[i]] = struct{}{}
	}
}

// ClearAgentRuns clears the "agent_runs" edge to the AgentRun entity.
func (m *TaskMutation) ClearAgentRuns() {
	m.clearedagent_runs = true
}

// AgentRunsCleared reports if the "agent_runs" edge to the AgentRun entity was cleared.
func (m *TaskMutation) AgentRunsCleared() bool {
	return m.clearedagent_runs
}

// RemoveAgentRunIDs removes the "agent_runs" edge to the AgentRun entity by IDs.
func (m *TaskMutation) RemoveAgentRunIDs(ids ...string) {
	if m.removedagent_runs == nil {
		m.removedagent_runs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.agent_runs, ids[i])
		m.removedagent_runs[ids[i]] = struct{}{}
	}
}

// RemovedAgentRuns returns the removed IDs of the "agent_runs" edge to the AgentRun entity.
func (m *TaskMutation) RemovedAgentRunsIDs() (ids []string) {
	for id := range m.removedagent_runs {
		ids = append(ids, id)
	}
	return
}

// AgentRunsIDs returns the "agent_runs" edge IDs in the mutation.
func (m *TaskMutation) AgentRunsIDs() (ids []string) {
	for id := range m.agent_runs {
		ids = append(ids, id)
	}
	return
}

// ResetAgentRuns resets all changes to the "agent_runs" edge.
func (m *TaskMutation) ResetAgentRuns() {
	m.agent_runs = nil
	m.clearedagent_runs = false
	m.removedagent_runs = nil
}

// AddCodeReviewIDs adds the "code_reviews" edge to the CodeReview entity by ids.
func (m *TaskMutation) AddCodeReviewIDs(ids ...string) {
	if m.code_reviews == nil {
		m.code_reviews = make(map[string]struct{})
	}
	for i := range ids {
		m.code_reviews[ids[i]] = struct{}{}
	}
}

// ClearCodeReviews clears the "code_reviews" edge to the CodeReview entity.
func (m *TaskMutation) ClearCodeReviews() {
	m.clearedcode_reviews = true
}

// CodeReviewsCleared reports if the "code_reviews" edge to the CodeReview entity was cleared.
func (m *TaskMutation) CodeReviewsCleared() bool {
	return m.clearedcode_reviews
}

// RemoveCodeReviewIDs removes the "code_reviews" edge to the CodeReview entity by IDs.
func (m *TaskMutation) RemoveCodeReviewIDs(ids ...string) {
	if m.removedcode_reviews == nil {
		m.removedcode_reviews = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.code_reviews, ids[i])
		m.removedcode_reviews[ids[i]] = struct{}{}
	}
}

// RemovedCodeReviews returns the removed IDs of the "code_reviews" edge to the CodeReview entity.
func (m *TaskMutation) RemovedCodeReviewsIDs() (ids []string) {
	for id := range m.removedcode_reviews {
		ids = append(ids, id)
	}
	return
}

// CodeReviewsIDs returns the "code_reviews" edge IDs in the mutation.
func (m *TaskMutation) CodeReviewsIDs() (ids []string) {
	for id := range m.code_reviews {
		ids = append(ids, id)
	}
	return
}

// ResetCodeReviews resets all changes to the "code_reviews" edge.
func (m *TaskMutation) ResetCodeReviews() {
	m.code_reviews = nil
	m.clearedcode_reviews = false
	m.removedcode_reviews = nil
}

// AddPullRequestIDs adds the "pull_requests" edge to the PullRequest entity by ids.
func (m *TaskMutation) AddPullRequestIDs(ids ...string) {
	if m.pull_requests == nil {
		m.pull_requests = make(map[string]struct{})
	}
	for i := range ids {
		m.pull_requests[ids[i]] = struct{}{}
	}
}

// ClearPullRequests clears the "pull_requests" edge to the PullRequest entity.
func (m *TaskMutation) ClearPullRequests() {
	m.clearedpull_requests = true
}

// PullRequestsCleared reports if the "pull_requests" edge to the PullRequest entity was cleared.
func (m *TaskMutation) PullRequestsCleared() bool {
	return m.clearedpull_requests
}

// RemovePullRequestIDs removes the "pull_requests" edge to the PullRequest entity by IDs.
func (m *TaskMutation) RemovePullRequestIDs(ids ...string) {
	if m.removedpull_requests == nil {
		m.removedpull_requests = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.pull_requests, ids[i])
		m.removedpull_requests[ids[i]] = struct{}{}
	}
}

// RemovedPullRequests returns the removed IDs of the "pull_requests" edge to the PullRequest entity.
func (m *TaskMutation) RemovedPullRequestsIDs() (ids []string) {
	for id := range m.removedpull_requests {
		ids = append(ids, id)
	}
	return
}

// PullRequestsIDs returns the "pull_requests" edge IDs in the mutation.
func (m *TaskMutation) PullRequestsIDs() (ids []string) {
	for id := range m.pull_requests {
		ids = append(ids, id)
	}
	return
}

// ResetPullRequests resets all changes to the "pull_requests" edge.
func (m *TaskMutation) ResetPullRequests() {
	m.pull_requests = nil
	m.clearedpull_requests = false
	m.removedpull_requests = nil
}

// AddNotificationIDs adds the "notifications" edge to the Notification entity by ids.
func (m *TaskMutation) AddNotificationIDs(ids ...string) {
	if m.notifications == nil {
		m.notifications = make(map[string]struct{})
	}
	for i := range ids {
		m.notifications[ids[i]] = struct{}{}
	}
}

// ClearNotifications clears the "notifications" edge to the Notification entity.
func (m *TaskMutation) ClearNotifications() {
	m.clearednotifications = true
}

// NotificationsCleared reports if the "notifications" edge to the Notification entity was cleared.
func (m *TaskMutation) NotificationsCleared() bool {
	return m.clearednotifications
}

// RemoveNotificationIDs removes the "notifications" edge to the Notification entity by IDs.
func (m *TaskMutation) RemoveNotificationIDs(ids ...string) {
	if m.removednotifications == nil {
		m.removednotifications = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.notifications, ids[i])
		m.removednotifications[ids[i]] = struct{}{}
	}
}

// RemovedNotifications returns the removed IDs of the "notifications" edge to the Notification entity.
func (m *TaskMutation) RemovedNotificationsIDs() (ids []string) {
	for id := range m.removednotifications {
		ids = append(ids, id)
	}
	return
}

// NotificationsIDs returns the "notifications" edge IDs in the mutation.
func (m *TaskMutation) NotificationsIDs() (ids []string) {
	for id := range m.notifications {
		ids = append(ids, id)
	}
	return
}

// ResetNotifications resets all changes to the "notifications" edge.
func (m *TaskMutation) ResetNotifications() {
	m.notifications = nil
	m.clearednotifications = false
	m.removednotifications = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.github_project_item_id != nil {
		fields = append(fields, task.FieldGithubProjectItemID)
	}
	if m.github_project_id != nil {
		fields = append(fields, task.FieldGithubProjectID)
	}
	if m.repository_full_name != nil {
		fields = append(fields, task.FieldRepositoryFullName)
	}
	if m.repository_id != nil {
		fields = append(fields, task.FieldRepositoryID)
	}
	if m.installation_id != nil {
		fields = append(fields, task.FieldInstallationID)
	}
	if m.title != nil {
		fields = append(fields, task.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, task.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.branch_name != nil {
		fields = append(fields, task.FieldBranchName)
	}
	if m.pull_request_number != nil {
		fields = append(fields, task.FieldPullRequestNumber)
	}
	if m.pull_request_url != nil {
		fields = append(fields, task.FieldPullRequestURL)
	}
	if m.error_message != nil {
		fields = append(fields, task.FieldErrorMessage)
	}
	if m.human_review_question != nil {
		fields = append(fields, task.FieldHumanReviewQuestion)
	}
	if m.human_review_answer != nil {
		fields = append(fields, task.FieldHumanReviewAnswer)
	}
	if m.retry_count != nil {
		fields = append(fields, task.FieldRetryCount)
	}
	if m.is_epic != nil {
		fields = append(fields, task.FieldIsEpic)
	}
	if m.parent_task_id != nil {
		fields = append(fields, task.FieldParentTaskID)
	}
	if m.linked_github_issue_number != nil {
		fields = append(fields, task.FieldLinkedGithubIssueNumber)
	}
	if m.child_dependencies != nil {
		fields = append(fields, task.FieldChildDependencies)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldGithubProjectItemID:
		return m.GithubProjectItemID()
	case task.FieldGithubProjectID:
		return m.GithubProjectID()
	case task.FieldRepositoryFullName:
		return m.RepositoryFullName()
	case task.FieldRepositoryID:
		return m.RepositoryID()
	case task.FieldInstallationID:
		return m.InstallationID()
	case task.FieldTitle:
		return m.Title()
	case task.FieldDescription:
		return m.Description()
	case task.FieldStatus:
		return m.Status()
	case task.FieldBranchName:
		return m.BranchName()
	case task.FieldPullRequestNumber:
		return m.PullRequestNumber()
	case task.FieldPullRequestURL:
		return m.PullRequestURL()
	case task.FieldErrorMessage:
		return m.ErrorMessage()
	case task.FieldHumanReviewQuestion:
		return m.HumanReviewQuestion()
	case task.FieldHumanReviewAnswer:
		return m.HumanReviewAnswer()
	case task.FieldRetryCount:
		return m.RetryCount()
	case task.FieldIsEpic:
		return m.IsEpic()
	case task.FieldParentTaskID:
		return m.ParentTaskID()
	case task.FieldLinkedGithubIssueNumber:
		return m.LinkedGithubIssueNumber()
	case task.FieldChildDependencies:
		return m.ChildDependencies()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	case task.FieldStartedAt:
		return m.StartedAt()
	case task.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldGithubProjectItemID:
		return m.OldGithubProjectItemID(ctx)
	case task.FieldGithubProjectID:
		return m.OldGithubProjectID(ctx)
	case task.FieldRepositoryFullName:
		return m.OldRepositoryFullName(ctx)
	case task.FieldRepositoryID:
		return m.OldRepositoryID(ctx)
	case task.FieldInstallationID:
		return m.OldInstallationID(ctx)
	case task.FieldTitle:
		return m.OldTitle(ctx)
	case task.FieldDescription:
		return m.OldDescription(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldBranchName:
		return m.OldBranchName(ctx)
	case task.FieldPullRequestNumber:
		return m.OldPullRequestNumber(ctx)
	case task.FieldPullRequestURL:
		return m.OldPullRequestURL(ctx)
	case task.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case task.FieldHumanReviewQuestion:
		return m.OldHumanReviewQuestion(ctx)
	case task.FieldHumanReviewAnswer:
		return m.OldHumanReviewAnswer(ctx)
	case task.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case task.FieldIsEpic:
		return m.OldIsEpic(ctx)
	case task.FieldParentTaskID:
		return m.OldParentTaskID(ctx)
	case task.FieldLinkedGithubIssueNumber:
		return m.OldLinkedGithubIssueNumber(ctx)
	case task.FieldChildDependencies:
		return m.OldChildDependencies(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case task.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case task.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldGithubProjectItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGithubProjectItemID(v)
		return nil
	case task.FieldGithubProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGithubProjectID(v)
		return nil
	case task.FieldRepositoryFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepositoryFullName(v)
		return nil
	case task.FieldRepositoryID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepositoryID(v)
		return nil
	case task.FieldInstallationID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstallationID(v)
		return nil
	case task.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case task.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldBranchName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranchName(v)
		return nil
	case task.FieldPullRequestNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPullRequestNumber(v)
		return nil
	case task.FieldPullRequestURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPullRequestURL(v)
		return nil
	case task.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case task.FieldHumanReviewQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHumanReviewQuestion(v)
		return nil
	case task.FieldHumanReviewAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHumanReviewAnswer(v)
		return nil
	case task.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case task.FieldIsEpic:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsEpic(v)
		return nil
	case task.FieldParentTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentTaskID(v)
		return nil
	case task.FieldLinkedGithubIssueNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinkedGithubIssueNumber(v)
		return nil
	case task.FieldChildDependencies:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChildDependencies(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case task.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case task.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addrepository_id != nil {
		fields = append(fields, task.FieldRepositoryID)
	}
	if m.addinstallation_id != nil {
		fields = append(fields, task.FieldInstallationID)
	}
	if m.addpull_request_number != nil {
		fields = append(fields, task.FieldPullRequestNumber)
	}
	if m.addretry_count != nil {
		fields = append(fields, task.FieldRetryCount)
	}
	if m.addlinked_github_issue_number != nil {
		fields = append(fields, task.FieldLinkedGithubIssueNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldRepositoryID:
		return m.AddedRepositoryID()
	case task.FieldInstallationID:
		return m.AddedInstallationID()
	case task.FieldPullRequestNumber:
		return m.AddedPullRequestNumber()
	case task.FieldRetryCount:
		return m.AddedRetryCount()
	case task.FieldLinkedGithubIssueNumber:
		return m.AddedLinkedGithubIssueNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldRepositoryID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRepositoryID(v)
		return nil
	case task.FieldInstallationID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInstallationID(v)
		return nil
	case task.FieldPullRequestNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPullRequestNumber(v)
		return nil
	case task.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case task.FieldLinkedGithubIssueNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLinkedGithubIssueNumber(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldGithubProjectItemID) {
		fields = append(fields, task.FieldGithubProjectItemID)
	}
	if m.FieldCleared(task.FieldGithubProjectID) {
		fields = append(fields, task.FieldGithubProjectID)
	}
	if m.FieldCleared(task.FieldRepositoryID) {
		fields = append(fields, task.FieldRepositoryID)
	}
	if m.FieldCleared(task.FieldDescription) {
		fields = append(fields, task.FieldDescription)
	}
	if m.FieldCleared(task.FieldBranchName) {
		fields = append(fields, task.FieldBranchName)
	}
	if m.FieldCleared(task.FieldPullRequestNumber) {
		fields = append(fields, task.FieldPullRequestNumber)
	}
	if m.FieldCleared(task.FieldPullRequestURL) {
		fields = append(fields, task.FieldPullRequestURL)
	}
	if m.FieldCleared(task.FieldErrorMessage) {
		fields = append(fields, task.FieldErrorMessage)
	}
	if m.FieldCleared(task.FieldHumanReviewQuestion) {
		fields = append(fields, task.FieldHumanReviewQuestion)
	}
	if m.FieldCleared(task.FieldHumanReviewAnswer) {
		fields = append(fields, task.FieldHumanReviewAnswer)
	}
	if m.FieldCleared(task.FieldParentTaskID) {
		fields = append(fields, task.FieldParentTaskID)
	}
	if m.FieldCleared(task.FieldLinkedGithubIssueNumber) {
		fields = append(fields, task.FieldLinkedGithubIssueNumber)
	}
	if m.FieldCleared(task.FieldChildDependencies) {
		fields = append(fields, task.FieldChildDependencies)
	}
	if m.FieldCleared(task.FieldStartedAt) {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.FieldCleared(task.FieldCompletedAt) {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldGithubProjectItemID:
		m.ClearGithubProjectItemID()
		return nil
	case task.FieldGithubProjectID:
		m.ClearGithubProjectID()
		return nil
	case task.FieldRepositoryID:
		m.ClearRepositoryID()
		return nil
	case task.FieldDescription:
		m.ClearDescription()
		return nil
	case task.FieldBranchName:
		m.ClearBranchName()
		return nil
	case task.FieldPullRequestNumber:
		m.ClearPullRequestNumber()
		return nil
	case task.FieldPullRequestURL:
		m.ClearPullRequestURL()
		return nil
	case task.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case task.FieldHumanReviewQuestion:
		m.ClearHumanReviewQuestion()
		return nil
	case task.FieldHumanReviewAnswer:
		m.ClearHumanReviewAnswer()
		return nil
	case task.FieldParentTaskID:
		m.ClearParentTaskID()
		return nil
	case task.FieldLinkedGithubIssueNumber:
		m.ClearLinkedGithubIssueNumber()
		return nil
	case task.FieldChildDependencies:
		m.ClearChildDependencies()
		return nil
	case task.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldGithubProjectItemID:
		m.ResetGithubProjectItemID()
		return nil
	case task.FieldGithubProjectID:
		m.ResetGithubProjectID()
		return nil
	case task.FieldRepositoryFullName:
		m.ResetRepositoryFullName()
		return nil
	case task.FieldRepositoryID:
		m.ResetRepositoryID()
		return nil
	case task.FieldInstallationID:
		m.ResetInstallationID()
		return nil
	case task.FieldTitle:
		m.ResetTitle()
		return nil
	case task.FieldDescription:
		m.ResetDescription()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldBranchName:
		m.ResetBranchName()
		return nil
	case task.FieldPullRequestNumber:
		m.ResetPullRequestNumber()
		return nil
	case task.FieldPullRequestURL:
		m.ResetPullRequestURL()
		return nil
	case task.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case task.FieldHumanReviewQuestion:
		m.ResetHumanReviewQuestion()
		return nil
	case task.FieldHumanReviewAnswer:
		m.ResetHumanReviewAnswer()
		return nil
	case task.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case task.FieldIsEpic:
		m.ResetIsEpic()
		return nil
	case task.FieldParentTaskID:
		m.ResetParentTaskID()
		return nil
	case task.FieldLinkedGithubIssueNumber:
		m.ResetLinkedGithubIssueNumber()
		return nil
	case task.FieldChildDependencies:
		m.ResetChildDependencies()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case task.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.subtasks != nil {
		edges = append(edges, task.EdgeSubtasks)
	}
	if m.agent_runs != nil {
		edges = append(edges, task.EdgeAgentRuns)
	}
	if m.code_reviews != nil {
		edges = append(edges, task.EdgeCodeReviews)
	}
	if m.pull_requests != nil {
		edges = append(edges, task.EdgePullRequests)
	}
	if m.notifications != nil {
		edges = append(edges, task.EdgeNotifications)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeSubtasks:
		ids := make([]ent.Value, 0, len(m.subtasks))
		for id := range m.subtasks {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeAgentRuns:
		ids := make([]ent.Value, 0, len(m.agent_runs))
		for id := range m.agent_runs {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeCodeReviews:
		ids := make([]ent.Value, 0, len(m.code_reviews))
		for id := range m.code_reviews {
			ids = append(ids, id)
		}
		return ids
	case task.EdgePullRequests:
		ids := make([]ent.Value, 0, len(m.pull_requests))
		for id := range m.pull_requests {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeNotifications:
		ids := make([]ent.Value, 0, len(m.notifications))
		for id := range m.notifications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedsubtasks != nil {
		edges = append(edges, task.EdgeSubtasks)
	}
	if m.removedagent_runs != nil {
		edges = append(edges, task.EdgeAgentRuns)
	}
	if m.removedcode_reviews != nil {
		edges = append(edges, task.EdgeCodeReviews)
	}
	if m.removedpull_requests != nil {
		edges = append(edges, task.EdgePullRequests)
	}
	if m.removednotifications != nil {
		edges = append(edges, task.EdgeNotifications)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeSubtasks:
		ids := make([]ent.Value, 0, len(m.removedsubtasks))
		for id := range m.removedsubtasks {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeAgentRuns:
		ids := make([]ent.Value, 0, len(m.removedagent_runs))
		for id := range m.removedagent_runs {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeCodeReviews:
		ids := make([]ent.Value, 0, len(m.removedcode_reviews))
		for id := range m.removedcode_reviews {
			ids = append(ids, id)
		}
		return ids
	case task.EdgePullRequests:
		ids := make([]ent.Value, 0, len(m.removedpull_requests))
		for id := range m.removedpull_requests {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeNotifications:
		ids := make([]ent.Value, 0, len(m.removednotifications))
		for id := range m.removednotifications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedsubtasks {
		edges = append(edges, task.EdgeSubtasks)
	}
	if m.clearedagent_runs {
		edges = append(edges, task.EdgeAgentRuns)
	}
	if m.clearedcode_reviews {
		edges = append(edges, task.EdgeCodeReviews)
	}
	if m.clearedpull_requests {
		edges = append(edges, task.EdgePullRequests)
	}
	if m.clearednotifications {
		edges = append(edges, task.EdgeNotifications)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeSubtasks:
		return m.clearedsubtasks
	case task.EdgeAgentRuns:
		return m.clearedagent_runs
	case task.EdgeCodeReviews:
		return m.clearedcode_reviews
	case task.EdgePullRequests:
		return m.clearedpull_requests
	case task.EdgeNotifications:
		return m.clearednotifications
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeSubtasks:
		m.ResetSubtasks()
		return nil
	case task.EdgeAgentRuns:
		m.ResetAgentRuns()
		return nil
	case task.EdgeCodeReviews:
		m.ResetCodeReviews()
		return nil
	case task.EdgePullRequests:
		m.ResetPullRequests()
		return nil
	case task.EdgeNotifications:
		m.ResetNotifications()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}
