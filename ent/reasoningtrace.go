// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/apa-platform/apacore/ent/reasoningtrace"
)

// ReasoningTrace is the model entity for the ReasoningTrace schema.
type ReasoningTrace struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Execution this step belongs to
	RunID string `json:"run_id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// Contiguous from 0 within a run
	StepIndex int `json:"step_index,omitempty"`
	// Thought holds the value of the "thought" field.
	Thought string `json:"thought,omitempty"`
	// Action holds the value of the "action" field.
	Action map[string]interface{} `json:"action,omitempty"`
	// Observation holds the value of the "observation" field.
	Observation map[string]interface{} `json:"observation,omitempty"`
	// Reflection holds the value of the "reflection" field.
	Reflection string `json:"reflection,omitempty"`
	// TokensUsed holds the value of the "tokens_used" field.
	TokensUsed int `json:"tokens_used,omitempty"`
	// LatencyMs holds the value of the "latency_ms" field.
	LatencyMs int `json:"latency_ms,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReasoningTrace) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reasoningtrace.FieldAction, reasoningtrace.FieldObservation:
			values[i] = new([]byte)
		case reasoningtrace.FieldStepIndex, reasoningtrace.FieldTokensUsed, reasoningtrace.FieldLatencyMs:
			values[i] = new(sql.NullInt64)
		case reasoningtrace.FieldID, reasoningtrace.FieldRunID, reasoningtrace.FieldAgentID, reasoningtrace.FieldThought, reasoningtrace.FieldReflection:
			values[i] = new(sql.NullString)
		case reasoningtrace.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReasoningTrace fields.
func (_m *ReasoningTrace) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reasoningtrace.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case reasoningtrace.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case reasoningtrace.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case reasoningtrace.FieldStepIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_index", values[i])
			} else if value.Valid {
				_m.StepIndex = int(value.Int64)
			}
		case reasoningtrace.FieldThought:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thought", values[i])
			} else if value.Valid {
				_m.Thought = value.String
			}
		case reasoningtrace.FieldAction:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Action); err != nil {
					return fmt.Errorf("unmarshal field action: %w", err)
				}
			}
		case reasoningtrace.FieldObservation:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field observation", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Observation); err != nil {
					return fmt.Errorf("unmarshal field observation: %w", err)
				}
			}
		case reasoningtrace.FieldReflection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reflection", values[i])
			} else if value.Valid {
				_m.Reflection = value.String
			}
		case reasoningtrace.FieldTokensUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_used", values[i])
			} else if value.Valid {
				_m.TokensUsed = int(value.Int64)
			}
		case reasoningtrace.FieldLatencyMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_ms", values[i])
			} else if value.Valid {
				_m.LatencyMs = int(value.Int64)
			}
		case reasoningtrace.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ReasoningTrace.
// This includes values selected through modifiers, order, etc.
func (_m *ReasoningTrace) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReasoningTrace.
// Note that you need to call ReasoningTrace.Unwrap() before calling this method if this ReasoningTrace
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReasoningTrace) Update() *ReasoningTraceUpdateOne {
	return NewReasoningTraceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReasoningTrace entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReasoningTrace) Unwrap() *ReasoningTrace {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReasoningTrace is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReasoningTrace) String() string {
	var builder strings.Builder
	builder.WriteString("ReasoningTrace(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("step_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepIndex))
	builder.WriteString(", ")
	builder.WriteString("thought=")
	builder.WriteString(_m.Thought)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(fmt.Sprintf("%v", _m.Action))
	builder.WriteString(", ")
	builder.WriteString("observation=")
	builder.WriteString(fmt.Sprintf("%v", _m.Observation))
	builder.WriteString(", ")
	builder.WriteString("reflection=")
	builder.WriteString(_m.Reflection)
	builder.WriteString(", ")
	builder.WriteString("tokens_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensUsed))
	builder.WriteString(", ")
	builder.WriteString("latency_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.LatencyMs))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ReasoningTraces is a parsable slice of ReasoningTrace.
type ReasoningTraces []*ReasoningTrace
