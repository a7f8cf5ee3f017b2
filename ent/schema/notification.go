package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Notification holds the schema definition for the Notification entity.
// One row per outbound message; delivery state lives on the row so the
// notifications queue can retry and operators can inspect failures.
type Notification struct {
	ent.Schema
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("task_id"),
		field.String("notification_type").
			Comment("e.g. human_review_needed, task_completed, task_failed"),
		field.Enum("channel").
			Values("telegram", "slack", "webhook"),
		field.JSON("payload", map[string]any{}).
			Optional(),
		field.Time("sent_at").
			Optional().
			Nillable(),
		field.Text("error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Notification.
func (Notification) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("notifications").
			Field("task_id").
			Unique().
			Required(),
	}
}

// Indexes of the Notification.
func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
	}
}
