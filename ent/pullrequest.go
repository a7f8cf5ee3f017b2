// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/conductor-ci/conductor/ent/pullrequest"
	"github.com/conductor-ci/conductor/ent/task"
)

// PullRequest is the model entity for the PullRequest schema.
type PullRequest struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// RepositoryFullName holds the value of the "repository_full_name" field.
	RepositoryFullName string `json:"repository_full_name,omitempty"`
	// Number holds the value of the "number" field.
	Number int `json:"number,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Body holds the value of the "body" field.
	Body string `json:"body,omitempty"`
	// BranchName holds the value of the "branch_name" field.
	BranchName string `json:"branch_name,omitempty"`
	// HeadSha holds the value of the "head_sha" field.
	HeadSha string `json:"head_sha,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// Status holds the value of the "status" field.
	Status pullrequest.Status `json:"status,omitempty"`
	// ReviewsPassed holds the value of the "reviews_passed" field.
	ReviewsPassed bool `json:"reviews_passed,omitempty"`
	// CheckStatus holds the value of the "check_status" field.
	CheckStatus string `json:"check_status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PullRequestQuery when eager-loading is set.
	Edges        PullRequestEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PullRequestEdges holds the relations/edges for other nodes in the graph.
type PullRequestEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PullRequestEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PullRequest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pullrequest.FieldReviewsPassed:
			values[i] = new(sql.NullBool)
		case pullrequest.FieldNumber:
			values[i] = new(sql.NullInt64)
		case pullrequest.FieldID, pullrequest.FieldTaskID, pullrequest.FieldRepositoryFullName, pullrequest.FieldTitle, pullrequest.FieldBody, pullrequest.FieldBranchName, pullrequest.FieldHeadSha, pullrequest.FieldURL, pullrequest.FieldStatus, pullrequest.FieldCheckStatus:
			values[i] = new(sql.NullString)
		case pullrequest.FieldCreatedAt, pullrequest.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PullRequest fields.
func (_m *PullRequest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pullrequest.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pullrequest.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case pullrequest.FieldRepositoryFullName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repository_full_name", values[i])
			} else if value.Valid {
				_m.RepositoryFullName = value.String
			}
		case pullrequest.FieldNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field number", values[i])
			} else if value.Valid {
				_m.Number = int(value.Int64)
			}
		case pullrequest.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case pullrequest.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case pullrequest.FieldBranchName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field branch_name", values[i])
			} else if value.Valid {
				_m.BranchName = value.String
			}
		case pullrequest.FieldHeadSha:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field head_sha", values[i])
			} else if value.Valid {
				_m.HeadSha = value.String
			}
		case pullrequest.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case pullrequest.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = pullrequest.Status(value.String)
			}
		case pullrequest.FieldReviewsPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field reviews_passed", values[i])
			} else if value.Valid {
				_m.ReviewsPassed = value.Bool
			}
		case pullrequest.FieldCheckStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field check_status", values[i])
			} else if value.Valid {
				_m.CheckStatus = value.String
			}
		case pullrequest.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pullrequest.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PullRequest.
// This includes values selected through modifiers, order, etc.
func (_m *PullRequest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the PullRequest entity.
func (_m *PullRequest) QueryTask() *TaskQuery {
	return NewPullRequestClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this PullRequest.
// Note that you need to call PullRequest.Unwrap() before calling this method if this PullRequest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PullRequest) Update() *PullRequestUpdateOne {
	return NewPullRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PullRequest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PullRequest) Unwrap() *PullRequest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PullRequest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PullRequest) String() string {
	var builder strings.Builder
	builder.WriteString("PullRequest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("repository_full_name=")
	builder.WriteString(_m.RepositoryFullName)
	builder.WriteString(", ")
	builder.WriteString("number=")
	builder.WriteString(fmt.Sprintf("%v", _m.Number))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteString(", ")
	builder.WriteString("branch_name=")
	builder.WriteString(_m.BranchName)
	builder.WriteString(", ")
	builder.WriteString("head_sha=")
	builder.WriteString(_m.HeadSha)
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("reviews_passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewsPassed))
	builder.WriteString(", ")
	builder.WriteString("check_status=")
	builder.WriteString(_m.CheckStatus)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PullRequests is a parsable slice of PullRequest.
type PullRequests []*PullRequest
