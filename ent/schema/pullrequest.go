package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PullRequest holds the schema definition for the PullRequest entity.
type PullRequest struct {
	ent.Schema
}

// Fields of the PullRequest.
func (PullRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("task_id"),
		field.String("repository_full_name"),
		field.Int("number"),
		field.String("title"),
		field.Text("body").
			Optional(),
		field.String("branch_name"),
		field.String("head_sha").
			Optional(),
		field.String("url"),
		field.Enum("status").
			Values("open", "merged", "closed").
			Default("open"),
		field.Bool("reviews_passed").
			Default(false),
		field.String("check_status").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the PullRequest.
func (PullRequest) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("pull_requests").
			Field("task_id").
			Unique().
			Required(),
	}
}

// Indexes of the PullRequest.
func (PullRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
		index.Fields("repository_full_name"),
		index.Fields("repository_full_name", "number").
			Unique(),
	}
}
