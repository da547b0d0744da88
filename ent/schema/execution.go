package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Execution holds the schema definition for the Execution entity.
// One row per agent run; the row is the source of truth for run ownership
// and lifecycle. Status transitions to a terminal state exactly once.
type Execution struct {
	ent.Schema
}

// Fields of the Execution.
func (Execution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("agent_id"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "cancelled", "timeout").
			Default("pending"),
		field.JSON("input", map[string]interface{}{}).
			Comment("Task description and parameters"),
		field.JSON("output", map[string]interface{}{}).
			Optional(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.JSON("execution_metadata", map[string]interface{}{}).
			Optional(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("Worker that owns the run, for multi-replica coordination"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("Heartbeat for orphan detection"),
	}
}

// Indexes of the Execution.
func (Execution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("agent_id"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_interaction_at"),
	}
}
