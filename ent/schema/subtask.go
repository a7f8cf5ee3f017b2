package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Subtask holds the schema definition for the Subtask entity.
// A subtask is one unit of agent work within a simple task, scoped to a
// single subproject of the repository.
type Subtask struct {
	ent.Schema
}

// Fields of the Subtask.
func (Subtask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("task_id"),
		field.String("subproject_path").
			Default("."),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.Enum("status").
			Values("pending", "queued", "running", "completed", "failed").
			Default("pending"),
		field.JSON("depends_on", []string{}).
			Optional().
			Comment("IDs of prerequisite sibling subtasks"),
		field.String("agent_run_id").
			Optional().
			Nillable(),
		field.JSON("files_modified", []string{}).
			Optional(),
		field.Text("error_message").
			Optional().
			Nillable(),
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

// Edges of the Subtask.
func (Subtask) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("subtasks").
			Field("task_id").
			Unique().
			Required(),
	}
}

// Indexes of the Subtask.
func (Subtask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
		index.Fields("status"),
	}
}
