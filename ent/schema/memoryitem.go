package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MemoryItem holds the schema definition for the MemoryItem entity.
// The relational row is authoritative; the vector index entry keyed by the
// same id is best-effort.
type MemoryItem struct {
	ent.Schema
}

// Fields of the MemoryItem.
func (MemoryItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("memory_id").
			Unique().
			Immutable(),
		field.String("agent_id"),
		field.Enum("memory_type").
			Values("episodic", "semantic", "procedural"),
		field.Text("content"),
		field.JSON("embedding", []float32{}).
			Optional(),
		field.JSON("item_metadata", map[string]interface{}{}).
			Optional(),
		field.Float("importance_score").
			Optional().
			Nillable(),
		field.Int("access_count").
			Default(0),
		field.Time("last_accessed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the MemoryItem.
func (MemoryItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "memory_type"),
		index.Fields("agent_id", "created_at"),
	}
}
