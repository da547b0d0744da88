package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for the Agent entity.
// Agents are configuration: the execution core reads them, never writes them.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Text("description").
			Optional(),
		field.String("model").
			Default("gpt-4").
			Comment("Provider-specific model identifier"),
		field.String("provider").
			Default("openai"),
		field.Int("temperature").
			Default(7).
			Comment("0-10 integer scale, mapped to [0,1] at call time"),
		field.Int("max_tokens").
			Default(2000),
		field.Text("system_prompt").
			Optional(),
		field.Text("instructions").
			Optional(),
		field.JSON("tools", []string{}).
			Optional().
			Comment("Tool names this agent may use; empty means all registered tools"),
		field.JSON("safety_guardrails", map[string]interface{}{}).
			Optional(),
		field.Bool("enable_memory").
			Default(true),
		field.Bool("enable_tools").
			Default(true),
		field.Bool("enable_learning").
			Default(true),
		field.Bool("enable_collaboration").
			Default(false),
		field.Int("max_iterations").
			Default(10),
		field.Enum("status").
			Values("active", "inactive", "archived").
			Default("active"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
