package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReasoningTrace holds the schema definition for the ReasoningTrace entity.
// Traces are append-only: one row per loop iteration, never mutated.
type ReasoningTrace struct {
	ent.Schema
}

// Fields of the ReasoningTrace.
func (ReasoningTrace) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("trace_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Comment("Execution this step belongs to"),
		field.String("agent_id"),
		field.Int("step_index").
			Comment("Contiguous from 0 within a run"),
		field.Text("thought"),
		field.JSON("action", map[string]interface{}{}),
		field.JSON("observation", map[string]interface{}{}).
			Optional(),
		field.Text("reflection").
			Optional(),
		field.Int("tokens_used").
			Default(0),
		field.Int("latency_ms").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ReasoningTrace.
func (ReasoningTrace) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "step_index").
			Unique(),
		index.Fields("agent_id"),
	}
}
