// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/conductor-ci/conductor/ent/codereview"
	"github.com/conductor-ci/conductor/ent/task"
	"github.com/conductor-ci/conductor/pkg/models"
)

// CodeReview is the model entity for the CodeReview schema.
type CodeReview struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// AgentRunID holds the value of the "agent_run_id" field.
	AgentRunID string `json:"agent_run_id,omitempty"`
	// Result holds the value of the "result" field.
	Result codereview.Result `json:"result,omitempty"`
	// 1-based, strictly monotonic per task
	Iteration int `json:"iteration,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// Issues holds the value of the "issues" field.
	Issues []models.ReviewIssue `json:"issues,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CodeReviewQuery when eager-loading is set.
	Edges        CodeReviewEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CodeReviewEdges holds the relations/edges for other nodes in the graph.
type CodeReviewEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CodeReviewEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CodeReview) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case codereview.FieldIssues:
			values[i] = new([]byte)
		case codereview.FieldIteration:
			values[i] = new(sql.NullInt64)
		case codereview.FieldID, codereview.FieldTaskID, codereview.FieldAgentRunID, codereview.FieldResult, codereview.FieldSummary:
			values[i] = new(sql.NullString)
		case codereview.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CodeReview fields.
func (_m *CodeReview) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case codereview.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case codereview.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case codereview.FieldAgentRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_run_id", values[i])
			} else if value.Valid {
				_m.AgentRunID = value.String
			}
		case codereview.FieldResult:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value.Valid {
				_m.Result = codereview.Result(value.String)
			}
		case codereview.FieldIteration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field iteration", values[i])
			} else if value.Valid {
				_m.Iteration = int(value.Int64)
			}
		case codereview.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case codereview.FieldIssues:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field issues", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Issues); err != nil {
					return fmt.Errorf("unmarshal field issues: %w", err)
				}
			}
		case codereview.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CodeReview.
// This includes values selected through modifiers, order, etc.
func (_m *CodeReview) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the CodeReview entity.
func (_m *CodeReview) QueryTask() *TaskQuery {
	return NewCodeReviewClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this CodeReview.
// Note that you need to call CodeReview.Unwrap() before calling this method if this CodeReview
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CodeReview) Update() *CodeReviewUpdateOne {
	return NewCodeReviewClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CodeReview entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CodeReview) Unwrap() *CodeReview {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CodeReview is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CodeReview) String() string {
	var builder strings.Builder
	builder.WriteString("CodeReview(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("agent_run_id=")
	builder.WriteString(_m.AgentRunID)
	builder.WriteString(", ")
	builder.WriteString("result=")
	builder.WriteString(fmt.Sprintf("%v", _m.Result))
	builder.WriteString(", ")
	builder.WriteString("iteration=")
	builder.WriteString(fmt.Sprintf("%v", _m.Iteration))
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("issues=")
	builder.WriteString(fmt.Sprintf("%v", _m.Issues))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CodeReviews is a parsable slice of CodeReview.
type CodeReviews []*CodeReview
