// Code generated by ent, DO NOT EDIT.

package task

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the task type in the database.
	Label = "task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldGithubProjectItemID holds the string denoting the github_project_item_id field in the database.
	FieldGithubProjectItemID = "github_project_item_id"
	// FieldGithubProjectID holds the string denoting the github_project_id field in the database.
	FieldGithubProjectID = "github_project_id"
	// FieldRepositoryFullName holds the string denoting the repository_full_name field in the database.
	FieldRepositoryFullName = "repository_full_name"
	// FieldRepositoryID holds the string denoting the repository_id field in the database.
	FieldRepositoryID = "repository_id"
	// FieldInstallationID holds the string denoting the installation_id field in the database.
	FieldInstallationID = "installation_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldBranchName holds the string denoting the branch_name field in the database.
	FieldBranchName = "branch_name"
	// FieldPullRequestNumber holds the string denoting the pull_request_number field in the database.
	FieldPullRequestNumber = "pull_request_number"
	// FieldPullRequestURL holds the string denoting the pull_request_url field in the database.
	FieldPullRequestURL = "pull_request_url"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldHumanReviewQuestion holds the string denoting the human_review_question field in the database.
	FieldHumanReviewQuestion = "human_review_question"
	// FieldHumanReviewAnswer holds the string denoting the human_review_answer field in the database.
	FieldHumanReviewAnswer = "human_review_answer"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldIsEpic holds the string denoting the is_epic field in the database.
	FieldIsEpic = "is_epic"
	// FieldParentTaskID holds the string denoting the parent_task_id field in the database.
	FieldParentTaskID = "parent_task_id"
	// FieldLinkedGithubIssueNumber holds the string denoting the linked_github_issue_number field in the database.
	FieldLinkedGithubIssueNumber = "linked_github_issue_number"
	// FieldChildDependencies holds the string denoting the child_dependencies field in the database.
	FieldChildDependencies = "child_dependencies"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeSubtasks holds the string denoting the subtasks edge name in mutations.
	EdgeSubtasks = "subtasks"
	// EdgeAgentRuns holds the string denoting the agent_runs edge name in mutations.
	EdgeAgentRuns = "agent_runs"
	// EdgeCodeReviews holds the string denoting the code_reviews edge name in mutations.
	EdgeCodeReviews = "code_reviews"
	// EdgePullRequests holds the string denoting the pull_requests edge name in mutations.
	EdgePullRequests = "pull_requests"
	// EdgeNotifications holds the string denoting the notifications edge name in mutations.
	EdgeNotifications = "notifications"
	// Table holds the table name of the task in the database.
	Table = "tasks"
	// SubtasksTable is the table that holds the subtasks relation/edge.
	SubtasksTable = "subtasks"
	// SubtasksInverseTable is the table name for the Subtask entity.
	// It exists in this package in order to avoid circular dependency with the "subtask" package.
	SubtasksInverseTable = "subtasks"
	// SubtasksColumn is the table column denoting the subtasks relation/edge.
	SubtasksColumn = "task_id"
	// AgentRunsTable is the table that holds the agent_runs relation/edge.
	AgentRunsTable = "agent_runs"
	// AgentRunsInverseTable is the table name for the AgentRun entity.
	// It exists in this package in order to avoid circular dependency with the "agentrun" package.
	AgentRunsInverseTable = "agent_runs"
	// AgentRunsColumn is the table column denoting the agent_runs relation/edge.
	AgentRunsColumn = "task_id"
	// CodeReviewsTable is the table that holds the code_reviews relation/edge.
	CodeReviewsTable = "code_reviews"
	// CodeReviewsInverseTable is the table name for the CodeReview entity.
	// It exists in this package in order to avoid circular dependency with the "codereview" package.
	CodeReviewsInverseTable = "code_reviews"
	// CodeReviewsColumn is the table column denoting the code_reviews relation/edge.
	CodeReviewsColumn = "task_id"
	// PullRequestsTable is the table that holds the pull_requests relation/edge.
	PullRequestsTable = "pull_requests"
	// PullRequestsInverseTable is the table name for the PullRequest entity.
	// It exists in this package in order to avoid circular dependency with the "pullrequest" package.
	PullRequestsInverseTable = "pull_requests"
	// PullRequestsColumn is the table column denoting the pull_requests relation/edge.
	PullRequestsColumn = "task_id"
	// NotificationsTable is the table that holds the notifications relation/edge.
	NotificationsTable = "notifications"
	// NotificationsInverseTable is the table name for the Notification entity.
	// It exists in this package in order to avoid circular dependency with the "notification" package.
	NotificationsInverseTable = "notifications"
	// NotificationsColumn is the table column denoting the notifications relation/edge.
	NotificationsColumn = "task_id"
)

// Columns holds all SQL columns for task fields.
var Columns = []string{
	FieldID,
	FieldGithubProjectItemID,
	FieldGithubProjectID,
	FieldRepositoryFullName,
	FieldRepositoryID,
	FieldInstallationID,
	FieldTitle,
	FieldDescription,
	FieldStatus,
	FieldBranchName,
	FieldPullRequestNumber,
	FieldPullRequestURL,
	FieldErrorMessage,
	FieldHumanReviewQuestion,
	FieldHumanReviewAnswer,
	FieldRetryCount,
	FieldIsEpic,
	FieldParentTaskID,
	FieldLinkedGithubIssueNumber,
	FieldChildDependencies,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldStartedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// RetryCountValidator is a validator for the "retry_count" field. It is called by the builders before save.
	RetryCountValidator func(int) error
	// DefaultIsEpic holds the default value on creation for the "is_epic" field.
	DefaultIsEpic bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending     Status = "pending"
	StatusDecomposing Status = "decomposing"
	StatusExecuting   Status = "executing"
	StatusReview      Status = "review"
	StatusHumanReview Status = "human_review"
	StatusPrCreated   Status = "pr_created"
	StatusDone        Status = "done"
	StatusFailed      Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusDecomposing, StatusExecuting, StatusReview, StatusHumanReview, StatusPrCreated, StatusDone, StatusFailed:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Task queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByGithubProjectItemID orders the results by the github_project_item_id field.
func ByGithubProjectItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGithubProjectItemID, opts...).ToFunc()
}

// ByGithubProjectID orders the results by the github_project_id field.
func ByGithubProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGithubProjectID, opts...).ToFunc()
}

// ByRepositoryFullName orders the results by the repository_full_name field.
func ByRepositoryFullName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepositoryFullName, opts...).ToFunc()
}

// ByRepositoryID orders the results by the repository_id field.
func ByRepositoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepositoryID, opts...).ToFunc()
}

// ByInstallationID orders the results by the installation_id field.
func ByInstallationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstallationID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByBranchName orders the results by the branch_name field.
func ByBranchName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranchName, opts...).ToFunc()
}

// ByPullRequestNumber orders the results by the pull_request_number field.
func ByPullRequestNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPullRequestNumber, opts...).ToFunc()
}

// ByPullRequestURL orders the results by the pull_request_url field.
func ByPullRequestURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPullRequestURL, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByHumanReviewQuestion orders the results by the human_review_question field.
func ByHumanReviewQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHumanReviewQuestion, opts...).ToFunc()
}

// ByHumanReviewAnswer orders the results by the human_review_answer field.
func ByHumanReviewAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHumanReviewAnswer, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByIsEpic orders the results by the is_epic field.
func ByIsEpic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsEpic, opts...).ToFunc()
}

// ByParentTaskID orders the results by the parent_task_id field.
func ByParentTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentTaskID, opts...).ToFunc()
}

// ByLinkedGithubIssueNumber orders the results by the linked_github_issue_number field.
func ByLinkedGithubIssueNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLinkedGithubIssueNumber, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// BySubtasksCount orders the results by subtasks count.
func BySubtasksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSubtasksStep(), opts...)
	}
}

// BySubtasks orders the results by subtasks terms.
func BySubtasks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubtasksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAgentRunsCount orders the results by agent_runs count.
func ByAgentRunsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAgentRunsStep(), opts...)
	}
}

// ByAgentRuns orders the results by agent_runs terms.
func ByAgentRuns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentRunsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCodeReviewsCount orders the results by code_reviews count.
func ByCodeReviewsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCodeReviewsStep(), opts...)
	}
}

// ByCodeReviews orders the results by code_reviews terms.
func ByCodeReviews(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCodeReviewsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPullRequestsCount orders the results by pull_requests count.
func ByPullRequestsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPullRequestsStep(), opts...)
	}
}

// ByPullRequests orders the results by pull_requests terms.
func ByPullRequests(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPullRequestsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByNotificationsCount orders the results by notifications count.
func ByNotificationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newNotificationsStep(), opts...)
	}
}

// ByNotifications orders the results by notifications terms.
func ByNotifications(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNotificationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSubtasksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubtasksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SubtasksTable, SubtasksColumn),
	)
}
func newAgentRunsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentRunsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AgentRunsTable, AgentRunsColumn),
	)
}
func newCodeReviewsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CodeReviewsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CodeReviewsTable, CodeReviewsColumn),
	)
}
func newPullRequestsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PullRequestsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PullRequestsTable, PullRequestsColumn),
	)
}
func newNotificationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NotificationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, NotificationsTable, NotificationsColumn),
	)
}
