package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HITLRequest holds the schema definition for the HITLRequest entity.
// One row per approval gate; any non-pending status has responded_at set.
type HITLRequest struct {
	ent.Schema
}

// Fields of the HITLRequest.
func (HITLRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("request_id").
			Unique().
			Immutable(),
		field.String("run_id"),
		field.String("agent_id"),
		field.String("request_type").
			Default("action_approval"),
		field.Text("reason"),
		field.JSON("action_details", map[string]interface{}{}),
		field.Enum("risk_level").
			Values("low", "medium", "high", "critical"),
		field.Enum("status").
			Values("pending", "approved", "rejected", "timeout").
			Default("pending"),
		field.String("decision").
			Optional().
			Nillable(),
		field.Text("feedback").
			Optional(),
		field.Time("requested_at").
			Default(time.Now).
			Immutable(),
		field.Time("responded_at").
			Optional().
			Nillable(),
		field.String("responded_by").
			Optional().
			Nillable(),
		field.JSON("request_metadata", map[string]interface{}{}).
			Optional(),
	}
}

// Indexes of the HITLRequest.
func (HITLRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("run_id"),
		index.Fields("status", "risk_level"),
	}
}
