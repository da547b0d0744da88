package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearningFeedback holds the schema definition for the LearningFeedback entity.
type LearningFeedback struct {
	ent.Schema
}

// Annotations of the LearningFeedback.
func (LearningFeedback) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "learning_feedback"},
	}
}

// Fields of the LearningFeedback.
func (LearningFeedback) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("feedback_id").
			Unique().
			Immutable(),
		field.String("agent_id"),
		field.String("run_id").
			Optional(),
		field.String("trace_id").
			Optional(),
		field.String("feedback_type").
			Comment("e.g. execution_outcome, manual"),
		field.Text("task_description").
			Optional(),
		field.JSON("action_taken", map[string]interface{}{}).
			Optional(),
		field.String("outcome"),
		field.Bool("success"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Text("improvement_suggestions").
			Optional(),
		field.JSON("feedback_metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the LearningFeedback.
func (LearningFeedback) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id"),
		index.Fields("run_id"),
	}
}
