package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentRun holds the schema definition for the AgentRun entity.
// One row per invocation of the external coding agent, with token and
// cost telemetry accumulated as the run streams.
type AgentRun struct {
	ent.Schema
}

// Fields of the AgentRun.
func (AgentRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("task_id"),
		field.String("subtask_id").
			Optional().
			Nillable(),
		field.Enum("run_type").
			Values("master", "sub_agent", "code_review"),
		field.Enum("status").
			Values("starting", "running", "completed", "failed", "timeout").
			Default("starting"),
		field.String("model").
			Optional(),
		field.Int64("input_tokens").
			Default(0).
			NonNegative(),
		field.Int64("output_tokens").
			Default(0).
			NonNegative(),
		field.Float("total_cost").
			Default(0),
		field.Text("log").
			Optional().
			Comment("Append-only run transcript"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the AgentRun.
func (AgentRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("agent_runs").
			Field("task_id").
			Unique().
			Required(),
	}
}

// Indexes of the AgentRun.
func (AgentRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
		index.Fields("subtask_id"),
	}
}
