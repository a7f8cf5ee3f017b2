// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/conductor-ci/conductor/ent/task"
)

// Task is the model entity for the Task schema.
type Task struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Board item node ID that spawned this task
	GithubProjectItemID string `json:"github_project_item_id,omitempty"`
	// GithubProjectID holds the value of the "github_project_id" field.
	GithubProjectID string `json:"github_project_id,omitempty"`
	// owner/repo
	RepositoryFullName string `json:"repository_full_name,omitempty"`
	// RepositoryID holds the value of the "repository_id" field.
	RepositoryID int64 `json:"repository_id,omitempty"`
	// Credential scope for forge access
	InstallationID int64 `json:"installation_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Status holds the value of the "status" field.
	Status task.Status `json:"status,omitempty"`
	// BranchName holds the value of the "branch_name" field.
	BranchName *string `json:"branch_name,omitempty"`
	// PullRequestNumber holds the value of the "pull_request_number" field.
	PullRequestNumber *int `json:"pull_request_number,omitempty"`
	// PullRequestURL holds the value of the "pull_request_url" field.
	PullRequestURL *string `json:"pull_request_url,omitempty"`
	// Failure text; transiently holds serialised review issues between review and fix
	ErrorMessage *string `json:"error_message,omitempty"`
	// HumanReviewQuestion holds the value of the "human_review_question" field.
	HumanReviewQuestion *string `json:"human_review_question,omitempty"`
	// HumanReviewAnswer holds the value of the "human_review_answer" field.
	HumanReviewAnswer *string `json:"human_review_answer,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// IsEpic holds the value of the "is_epic" field.
	IsEpic bool `json:"is_epic,omitempty"`
	// ParentTaskID holds the value of the "parent_task_id" field.
	ParentTaskID *string `json:"parent_task_id,omitempty"`
	// LinkedGithubIssueNumber holds the value of the "linked_github_issue_number" field.
	LinkedGithubIssueNumber *int `json:"linked_github_issue_number,omitempty"`
	// Titles of prerequisite sibling tasks (epic children only)
	ChildDependencies []string `json:"child_dependencies,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Set on first entry to decomposing
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskQuery when eager-loading is set.
	Edges        TaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskEdges holds the relations/edges for other nodes in the graph.
type TaskEdges struct {
	// Subtasks holds the value of the subtasks edge.
	Subtasks []*Subtask `json:"subtasks,omitempty"`
	// AgentRuns holds the value of the agent_runs edge.
	AgentRuns []*AgentRun `json:"agent_runs,omitempty"`
	// CodeReviews holds the value of the code_reviews edge.
	CodeReviews []*CodeReview `json:"code_reviews,omitempty"`
	// PullRequests holds the value of the pull_requests edge.
	PullRequests []*PullRequest `json:"pull_requests,omitempty"`
	// Notifications holds the value of the notifications edge.
	Notifications []*Notification `json:"notifications,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// SubtasksOrErr returns the Subtasks value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) SubtasksOrErr() ([]*Subtask, error) {
	if e.loadedTypes[0] {
		return e.Subtasks, nil
	}
	return nil, &NotLoadedError{edge: "subtasks"}
}

// AgentRunsOrErr returns the AgentRuns value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) AgentRunsOrErr() ([]*AgentRun, error) {
	if e.loadedTypes[1] {
		return e.AgentRuns, nil
	}
	return nil, &NotLoadedError{edge: "agent_runs"}
}

// CodeReviewsOrErr returns the CodeReviews value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) CodeReviewsOrErr() ([]*CodeReview, error) {
	if e.loadedTypes[2] {
		return e.CodeReviews, nil
	}
	return nil, &NotLoadedError{edge: "code_reviews"}
}

// PullRequestsOrErr returns the PullRequests value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) PullRequestsOrErr() ([]*PullRequest, error) {
	if e.loadedTypes[3] {
		return e.PullRequests, nil
	}
	return nil, &NotLoadedError{edge: "pull_requests"}
}

// NotificationsOrErr returns the Notifications value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) NotificationsOrErr() ([]*Notification, error) {
	if e.loadedTypes[4] {
		return e.Notifications, nil
	}
	return nil, &NotLoadedError{edge: "notifications"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Task) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case task.FieldChildDependencies:
			values[i] = new([]byte)
		case task.FieldIsEpic:
			values[i] = new(sql.NullBool)
		case task.FieldRepositoryID, task.FieldInstallationID, task.FieldPullRequestNumber, task.FieldRetryCount, task.FieldLinkedGithubIssueNumber:
			values[i] = new(sql.NullInt64)
		case task.FieldID, task.FieldGithubProjectItemID, task.FieldGithubProjectID, task.FieldRepositoryFullName, task.FieldTitle, task.FieldDescription, task.FieldStatus, task.FieldBranchName, task.FieldPullRequestURL, task.FieldErrorMessage, task.FieldHumanReviewQuestion, task.FieldHumanReviewAnswer, task.FieldParentTaskID:
			values[i] = new(sql.NullString)
		case task.FieldCreatedAt, task.FieldUpdatedAt, task.FieldStartedAt, task.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Task fields.
func (_m *Task) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case task.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case task.FieldGithubProjectItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field github_project_item_id", values[i])
			} else if value.Valid {
				_m.GithubProjectItemID = value.String
			}
		case task.FieldGithubProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field github_project_id", values[i])
			} else if value.Valid {
				_m.GithubProjectID = value.String
			}
		case task.FieldRepositoryFullName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repository_full_name", values[i])
			} else if value.Valid {
				_m.RepositoryFullName = value.String
			}
		case task.FieldRepositoryID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field repository_id", values[i])
			} else if value.Valid {
				_m.RepositoryID = value.Int64
			}
		case task.FieldInstallationID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field installation_id", values[i])
			} else if value.Valid {
				_m.InstallationID = value.Int64
			}
		case task.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case task.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case task.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = task.Status(value.String)
			}
		case task.FieldBranchName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field branch_name", values[i])
			} else if value.Valid {
				_m.BranchName = new(string)
				*_m.BranchName = value.String
			}
		case task.FieldPullRequestNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pull_request_number", values[i])
			} else if value.Valid {
				_m.PullRequestNumber = new(int)
				*_m.PullRequestNumber = int(value.Int64)
			}
		case task.FieldPullRequestURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pull_request_url", values[i])
			} else if value.Valid {
				_m.PullRequestURL = new(string)
				*_m.PullRequestURL = value.String
			}
		case task.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case task.FieldHumanReviewQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field human_review_question", values[i])
			} else if value.Valid {
				_m.HumanReviewQuestion = new(string)
				*_m.HumanReviewQuestion = value.String
			}
		case task.FieldHumanReviewAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field human_review_answer", values[i])
			} else if value.Valid {
				_m.HumanReviewAnswer = new(string)
				*_m.HumanReviewAnswer = value.String
			}
		case task.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case task.FieldIsEpic:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_epic", values[i])
			} else if value.Valid {
				_m.IsEpic = value.Bool
			}
		case task.FieldParentTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_task_id", values[i])
			} else if value.Valid {
				_m.ParentTaskID = new(string)
				*_m.ParentTaskID = value.String
			}
		case task.FieldLinkedGithubIssueNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field linked_github_issue_number", values[i])
			} else if value.Valid {
				_m.LinkedGithubIssueNumber = new(int)
				*_m.LinkedGithubIssueNumber = int(value.Int64)
			}
		case task.FieldChildDependencies:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field child_dependencies", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ChildDependencies); err != nil {
					return fmt.Errorf("unmarshal field child_dependencies: %w", err)
				}
			}
		case task.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case task.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case task.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case task.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Task.
// This includes values selected through modifiers, order, etc.
func (_m *Task) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubtasks queries the "subtasks" edge of the Task entity.
func (_m *Task) QuerySubtasks() *SubtaskQuery {
	return NewTaskClient(_m.config).QuerySubtasks(_m)
}

// QueryAgentRuns queries the "agent_runs" edge of the Task entity.
func (_m *Task) QueryAgentRuns() *AgentRunQuery {
	return NewTaskClient(_m.config).QueryAgentRuns(_m)
}

// QueryCodeReviews queries the "code_reviews" edge of the Task entity.
func (_m *Task) QueryCodeReviews() *CodeReviewQuery {
	return NewTaskClient(_m.config).QueryCodeReviews(_m)
}

// QueryPullRequests queries the "pull_requests" edge of the Task entity.
func (_m *Task) QueryPullRequests() *PullRequestQuery {
	return NewTaskClient(_m.config).QueryPullRequests(_m)
}

// QueryNotifications queries the "notifications" edge of the Task entity.
func (_m *Task) QueryNotifications() *NotificationQuery {
	return NewTaskClient(_m.config).QueryNotifications(_m)
}

// Update returns a builder for updating this Task.
// Note that you need to call Task.Unwrap() before calling this method if this Task
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Task) Update() *TaskUpdateOne {
	return NewTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Task entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Task) Unwrap() *Task {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Task is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Task) String() string {
	var builder strings.Builder
	builder.WriteString("Task(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("github_project_item_id=")
	builder.WriteString(_m.GithubProjectItemID)
	builder.WriteString(", ")
	builder.WriteString("github_project_id=")
	builder.WriteString(_m.GithubProjectID)
	builder.WriteString(", ")
	builder.WriteString("repository_full_name=")
	builder.WriteString(_m.RepositoryFullName)
	builder.WriteString(", ")
	builder.WriteString("repository_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RepositoryID))
	builder.WriteString(", ")
	builder.WriteString("installation_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.InstallationID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.BranchName; v != nil {
		builder.WriteString("branch_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PullRequestNumber; v != nil {
		builder.WriteString("pull_request_number=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PullRequestURL; v != nil {
		builder.WriteString("pull_request_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.HumanReviewQuestion; v != nil {
		builder.WriteString("human_review_question=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.HumanReviewAnswer; v != nil {
		builder.WriteString("human_review_answer=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	builder.WriteString("is_epic=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsEpic))
	builder.WriteString(", ")
	if v := _m.ParentTaskID; v != nil {
		builder.WriteString("parent_task_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LinkedGithubIssueNumber; v != nil {
		builder.WriteString("linked_github_issue_number=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("child_dependencies=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChildDependencies))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Tasks is a parsable slice of Task.
type Tasks []*Task
