package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/conductor-ci/conductor/pkg/models"
)

// CodeReview holds the schema definition for the CodeReview entity.
// One row per review pass over a task's branch.
type CodeReview struct {
	ent.Schema
}

// Fields of the CodeReview.
func (CodeReview) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("task_id"),
		field.String("agent_run_id").
			Optional(),
		field.Enum("result").
			Values("approved", "changes_requested", "failed"),
		field.Int("iteration").
			Min(1).
			Comment("1-based, strictly monotonic per task"),
		field.Text("summary").
			Optional(),
		field.JSON("issues", []models.ReviewIssue{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the CodeReview.
func (CodeReview) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("code_reviews").
			Field("task_id").
			Unique().
			Required(),
	}
}

// Indexes of the CodeReview.
func (CodeReview) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
		index.Fields("task_id", "iteration").
			Unique(),
	}
}
