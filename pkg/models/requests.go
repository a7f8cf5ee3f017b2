package models

// CreateTaskRequest carries everything needed to insert a new task.
type CreateTaskRequest struct {
	ProjectItemID      string
	ProjectID          string
	RepositoryFullName string
	RepositoryID       int64
	InstallationID     int64
	Title              string
	Description        string
	ParentTaskID       string
	LinkedIssueNumber  int
	ChildDependencies  []string
}

// CreateSubtaskRequest inserts one planned subtask under a task.
type CreateSubtaskRequest struct {
	TaskID         string
	SubprojectPath string
	Title          string
	Description    string
	DependsOn      []string
}

// CreateRunRequest inserts a new agent run row.
type CreateRunRequest struct {
	TaskID    string
	SubtaskID string
	Type      RunType
	Model     string
}

// RunStats is the telemetry written back onto an agent run when it
// completes.
type RunStats struct {
	InputTokens  int64
	OutputTokens int64
	TotalCost    float64
	Log          string
}

// CreatePullRequestRequest records an externally opened PR.
type CreatePullRequestRequest struct {
	TaskID             string
	RepositoryFullName string
	Number             int
	Title              string
	Body               string
	BranchName         string
	HeadSHA            string
	URL                string
}

// CreateNotificationRequest inserts one outbound notification.
type CreateNotificationRequest struct {
	TaskID  string
	Type    string
	Channel string
	Payload map[string]any
}
