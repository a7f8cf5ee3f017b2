package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the Job entity.
// Jobs are the durable unit of the named queues. The (queue, job_id)
// pair is unique, which is what makes enqueue-by-id idempotent.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("queue"),
		field.String("job_id").
			Comment("Caller-supplied dedup key, unique within a queue"),
		field.JSON("payload", map[string]any{}).
			Optional(),
		field.Enum("status").
			Values("pending", "running", "completed", "failed").
			Default("pending"),
		field.Int("attempts").
			Default(0).
			NonNegative(),
		field.Int("max_attempts").
			Default(3),
		field.Time("run_at").
			Default(time.Now).
			Comment("Earliest time the job may be claimed (delayed delivery)"),
		field.String("claimed_by").
			Optional().
			Nillable().
			Comment("Pod ID of the worker holding the job"),
		field.Text("last_error").
			Optional().
			Nillable(),
		field.String("progress_stage").
			Optional(),
		field.String("progress_message").
			Optional(),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("queue", "job_id").
			Unique(),
		index.Fields("queue", "status", "run_at"),
		index.Fields("status", "completed_at"),
		index.Fields("status", "last_heartbeat_at"),
	}
}
