package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity.
// A task is one unit of human intent picked up from the project board.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("github_project_item_id").
			Optional().
			Comment("Board item node ID that spawned this task"),
		field.String("github_project_id").
			Optional(),
		field.String("repository_full_name").
			Comment("owner/repo"),
		field.Int64("repository_id").
			Optional(),
		field.Int64("installation_id").
			Comment("Credential scope for forge access"),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.Enum("status").
			Values("pending", "decomposing", "executing", "review",
				"human_review", "pr_created", "done", "failed").
			Default("pending"),
		field.String("branch_name").
			Optional().
			Nillable(),
		field.Int("pull_request_number").
			Optional().
			Nillable(),
		field.String("pull_request_url").
			Optional().
			Nillable(),
		field.Text("error_message").
			Optional().
			Nillable().
			Comment("Failure text; transiently holds serialised review issues between review and fix"),
		field.Text("human_review_question").
			Optional().
			Nillable(),
		field.Text("human_review_answer").
			Optional().
			Nillable(),
		field.Int("retry_count").
			Default(0).
			NonNegative(),
		field.Bool("is_epic").
			Default(false),
		field.String("parent_task_id").
			Optional().
			Nillable(),
		field.Int("linked_github_issue_number").
			Optional().
			Nillable(),
		field.JSON("child_dependencies", []string{}).
			Optional().
			Comment("Titles of prerequisite sibling tasks (epic children only)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("Set on first entry to decomposing"),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("subtasks", Subtask.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("agent_runs", AgentRun.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("code_reviews", CodeReview.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("pull_requests", PullRequest.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("notifications", Notification.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("github_project_item_id"),
		index.Fields("status"),
		index.Fields("repository_full_name"),
		index.Fields("parent_task_id"),
		index.Fields("is_epic"),
		index.Fields("status", "created_at"),
	}
}
