// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentRunsColumns holds the columns for the "agent_runs" table.
	AgentRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "subtask_id", Type: field.TypeString, Nullable: true},
		{Name: "run_type", Type: field.TypeEnum, Enums: []string{"master", "sub_agent", "code_review"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"starting", "running", "completed", "failed", "timeout"}, Default: "starting"},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "input_tokens", Type: field.TypeInt64, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt64, Default: 0},
		{Name: "total_cost", Type: field.TypeFloat64, Default: 0},
		{Name: "log", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "task_id", Type: field.TypeString},
	}
	// AgentRunsTable holds the schema information for the "agent_runs" table.
	AgentRunsTable = &schema.Table{
		Name:       "agent_runs",
		Columns:    AgentRunsColumns,
		PrimaryKey: []*schema.Column{AgentRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_runs_tasks_agent_runs",
				Columns:    []*schema.Column{AgentRunsColumns[11]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentrun_task_id",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[11]},
			},
			{
				Name:    "agentrun_subtask_id",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[1]},
			},
		},
	}
	// CodeReviewsColumns holds the columns for the "code_reviews" table.
	CodeReviewsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "agent_run_id", Type: field.TypeString, Nullable: true},
		{Name: "result", Type: field.TypeEnum, Enums: []string{"approved", "changes_requested", "failed"}},
		{Name: "iteration", Type: field.TypeInt},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "issues", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// CodeReviewsTable holds the schema information for the "code_reviews" table.
	CodeReviewsTable = &schema.Table{
		Name:       "code_reviews",
		Columns:    CodeReviewsColumns,
		PrimaryKey: []*schema.Column{CodeReviewsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "code_reviews_tasks_code_reviews",
				Columns:    []*schema.Column{CodeReviewsColumns[7]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "codereview_task_id",
				Unique:  false,
				Columns: []*schema.Column{CodeReviewsColumns[7]},
			},
			{
				Name:    "codereview_task_id_iteration",
				Unique:  true,
				Columns: []*schema.Column{CodeReviewsColumns[7], CodeReviewsColumns[3]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "queue", Type: field.TypeString},
		{Name: "job_id", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed"}, Default: "pending"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 3},
		{Name: "run_at", Type: field.TypeTime},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "progress_stage", Type: field.TypeString, Nullable: true},
		{Name: "progress_message", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_queue_job_id",
				Unique:  true,
				Columns: []*schema.Column{JobsColumns[1], JobsColumns[2]},
			},
			{
				Name:    "job_queue_status_run_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1], JobsColumns[4], JobsColumns[7]},
			},
			{
				Name:    "job_status_completed_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[4], JobsColumns[16]},
			},
			{
				Name:    "job_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[4], JobsColumns[12]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "notification_type", Type: field.TypeString},
		{Name: "channel", Type: field.TypeEnum, Enums: []string{"telegram", "slack", "webhook"}},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notifications_tasks_notifications",
				Columns:    []*schema.Column{NotificationsColumns[7]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "notification_task_id",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[7]},
			},
		},
	}
	// PullRequestsColumns holds the columns for the "pull_requests" table.
	PullRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "repository_full_name", Type: field.TypeString},
		{Name: "number", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "branch_name", Type: field.TypeString},
		{Name: "head_sha", Type: field.TypeString, Nullable: true},
		{Name: "url", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "merged", "closed"}, Default: "open"},
		{Name: "reviews_passed", Type: field.TypeBool, Default: false},
		{Name: "check_status", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// PullRequestsTable holds the schema information for the "pull_requests" table.
	PullRequestsTable = &schema.Table{
		Name:       "pull_requests",
		Columns:    PullRequestsColumns,
		PrimaryKey: []*schema.Column{PullRequestsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pull_requests_tasks_pull_requests",
				Columns:    []*schema.Column{PullRequestsColumns[13]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pullrequest_task_id",
				Unique:  false,
				Columns: []*schema.Column{PullRequestsColumns[13]},
			},
			{
				Name:    "pullrequest_repository_full_name",
				Unique:  false,
				Columns: []*schema.Column{PullRequestsColumns[1]},
			},
			{
				Name:    "pullrequest_repository_full_name_number",
				Unique:  true,
				Columns: []*schema.Column{PullRequestsColumns[1], PullRequestsColumns[2]},
			},
		},
	}
	// SubtasksColumns holds the columns for the "subtasks" table.
	SubtasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "subproject_path", Type: field.TypeString, Default: "."},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "queued", "running", "completed", "failed"}, Default: "pending"},
		{Name: "depends_on", Type: field.TypeJSON, Nullable: true},
		{Name: "agent_run_id", Type: field.TypeString, Nullable: true},
		{Name: "files_modified", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "task_id", Type: field.TypeString},
	}
	// SubtasksTable holds the schema information for the "subtasks" table.
	SubtasksTable = &schema.Table{
		Name:       "subtasks",
		Columns:    SubtasksColumns,
		PrimaryKey: []*schema.Column{SubtasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subtasks_tasks_subtasks",
				Columns:    []*schema.Column{SubtasksColumns[13]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "subtask_task_id",
				Unique:  false,
				Columns: []*schema.Column{SubtasksColumns[13]},
			},
			{
				Name:    "subtask_status",
				Unique:  false,
				Columns: []*schema.Column{SubtasksColumns[4]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "github_project_item_id", Type: field.TypeString, Nullable: true},
		{Name: "github_project_id", Type: field.TypeString, Nullable: true},
		{Name: "repository_full_name", Type: field.TypeString},
		{Name: "repository_id", Type: field.TypeInt64, Nullable: true},
		{Name: "installation_id", Type: field.TypeInt64},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "decomposing", "executing", "review", "human_review", "pr_created", "done", "failed"}, Default: "pending"},
		{Name: "branch_name", Type: field.TypeString, Nullable: true},
		{Name: "pull_request_number", Type: field.TypeInt, Nullable: true},
		{Name: "pull_request_url", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "human_review_question", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "human_review_answer", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "is_epic", Type: field.TypeBool, Default: false},
		{Name: "parent_task_id", Type: field.TypeString, Nullable: true},
		{Name: "linked_github_issue_number", Type: field.TypeInt, Nullable: true},
		{Name: "child_dependencies", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_github_project_item_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1]},
			},
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[8]},
			},
			{
				Name:    "task_repository_full_name",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[3]},
			},
			{
				Name:    "task_parent_task_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[17]},
			},
			{
				Name:    "task_is_epic",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[16]},
			},
			{
				Name:    "task_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[8], TasksColumns[20]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentRunsTable,
		CodeReviewsTable,
		JobsTable,
		NotificationsTable,
		PullRequestsTable,
		SubtasksTable,
		TasksTable,
	}
)

func init() {
	AgentRunsTable.ForeignKeys[0].RefTable = TasksTable
	CodeReviewsTable.ForeignKeys[0].RefTable = TasksTable
	NotificationsTable.ForeignKeys[0].RefTable = TasksTable
	PullRequestsTable.ForeignKeys[0].RefTable = TasksTable
	SubtasksTable.ForeignKeys[0].RefTable = TasksTable
}
