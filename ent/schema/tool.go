package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Tool holds the schema definition for the Tool entity.
// Database-declared tools extend the built-in registry; on a name collision
// the built-in wins.
type Tool struct {
	ent.Schema
}

// Fields of the Tool.
func (Tool) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("tool_id").
			Unique().
			Immutable(),
		field.String("name").
			Unique(),
		field.Text("description").
			Optional(),
		field.JSON("function_schema", map[string]interface{}{}).
			Optional(),
		field.Enum("status").
			Values("active", "inactive").
			Default("active"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Tool.
func (Tool) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
