// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/apa-platform/apacore/ent/learningfeedback"
)

// LearningFeedback is the model entity for the LearningFeedback schema.
type LearningFeedback struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// TraceID holds the value of the "trace_id" field.
	TraceID string `json:"trace_id,omitempty"`
	// e.g. execution_outcome, manual
	FeedbackType string `json:"feedback_type,omitempty"`
	// TaskDescription holds the value of the "task_description" field.
	TaskDescription string `json:"task_description,omitempty"`
	// ActionTaken holds the value of the "action_taken" field.
	ActionTaken map[string]interface{} `json:"action_taken,omitempty"`
	// Outcome holds the value of the "outcome" field.
	Outcome string `json:"outcome,omitempty"`
	// Success holds the value of the "success" field.
	Success bool `json:"success,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// ImprovementSuggestions holds the value of the "improvement_suggestions" field.
	ImprovementSuggestions string `json:"improvement_suggestions,omitempty"`
	// FeedbackMetadata holds the value of the "feedback_metadata" field.
	FeedbackMetadata map[string]interface{} `json:"feedback_metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearningFeedback) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learningfeedback.FieldActionTaken, learningfeedback.FieldFeedbackMetadata:
			values[i] = new([]byte)
		case learningfeedback.FieldSuccess:
			values[i] = new(sql.NullBool)
		case learningfeedback.FieldID, learningfeedback.FieldAgentID, learningfeedback.FieldRunID, learningfeedback.FieldTraceID, learningfeedback.FieldFeedbackType, learningfeedback.FieldTaskDescription, learningfeedback.FieldOutcome, learningfeedback.FieldErrorMessage, learningfeedback.FieldImprovementSuggestions:
			values[i] = new(sql.NullString)
		case learningfeedback.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearningFeedback fields.
func (_m *LearningFeedback) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learningfeedback.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case learningfeedback.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case learningfeedback.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case learningfeedback.FieldTraceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trace_id", values[i])
			} else if value.Valid {
				_m.TraceID = value.String
			}
		case learningfeedback.FieldFeedbackType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feedback_type", values[i])
			} else if value.Valid {
				_m.FeedbackType = value.String
			}
		case learningfeedback.FieldTaskDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_description", values[i])
			} else if value.Valid {
				_m.TaskDescription = value.String
			}
		case learningfeedback.FieldActionTaken:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field action_taken", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ActionTaken); err != nil {
					return fmt.Errorf("unmarshal field action_taken: %w", err)
				}
			}
		case learningfeedback.FieldOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome", values[i])
			} else if value.Valid {
				_m.Outcome = value.String
			}
		case learningfeedback.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case learningfeedback.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case learningfeedback.FieldImprovementSuggestions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field improvement_suggestions", values[i])
			} else if value.Valid {
				_m.ImprovementSuggestions = value.String
			}
		case learningfeedback.FieldFeedbackMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field feedback_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FeedbackMetadata); err != nil {
					return fmt.Errorf("unmarshal field feedback_metadata: %w", err)
				}
			}
		case learningfeedback.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LearningFeedback.
// This includes values selected through modifiers, order, etc.
func (_m *LearningFeedback) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LearningFeedback.
// Note that you need to call LearningFeedback.Unwrap() before calling this method if this LearningFeedback
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearningFeedback) Update() *LearningFeedbackUpdateOne {
	return NewLearningFeedbackClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearningFeedback entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearningFeedback) Unwrap() *LearningFeedback {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearningFeedback is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearningFeedback) String() string {
	var builder strings.Builder
	builder.WriteString("LearningFeedback(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("trace_id=")
	builder.WriteString(_m.TraceID)
	builder.WriteString(", ")
	builder.WriteString("feedback_type=")
	builder.WriteString(_m.FeedbackType)
	builder.WriteString(", ")
	builder.WriteString("task_description=")
	builder.WriteString(_m.TaskDescription)
	builder.WriteString(", ")
	builder.WriteString("action_taken=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActionTaken))
	builder.WriteString(", ")
	builder.WriteString("outcome=")
	builder.WriteString(_m.Outcome)
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("improvement_suggestions=")
	builder.WriteString(_m.ImprovementSuggestions)
	builder.WriteString(", ")
	builder.WriteString("feedback_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.FeedbackMetadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LearningFeedbacks is a parsable slice of LearningFeedback.
type LearningFeedbacks []*LearningFeedback
