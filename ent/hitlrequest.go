// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/apa-platform/apacore/ent/hitlrequest"
)

// HITLRequest is the model entity for the HITLRequest schema.
type HITLRequest struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// RequestType holds the value of the "request_type" field.
	RequestType string `json:"request_type,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// ActionDetails holds the value of the "action_details" field.
	ActionDetails map[string]interface{} `json:"action_details,omitempty"`
	// RiskLevel holds the value of the "risk_level" field.
	RiskLevel hitlrequest.RiskLevel `json:"risk_level,omitempty"`
	// Status holds the value of the "status" field.
	Status hitlrequest.Status `json:"status,omitempty"`
	// Decision holds the value of the "decision" field.
	Decision *string `json:"decision,omitempty"`
	// Feedback holds the value of the "feedback" field.
	Feedback string `json:"feedback,omitempty"`
	// RequestedAt holds the value of the "requested_at" field.
	RequestedAt time.Time `json:"requested_at,omitempty"`
	// RespondedAt holds the value of the "responded_at" field.
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	// RespondedBy holds the value of the "responded_by" field.
	RespondedBy *string `json:"responded_by,omitempty"`
	// RequestMetadata holds the value of the "request_metadata" field.
	RequestMetadata map[string]interface{} `json:"request_metadata,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HITLRequest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case hitlrequest.FieldActionDetails, hitlrequest.FieldRequestMetadata:
			values[i] = new([]byte)
		case hitlrequest.FieldID, hitlrequest.FieldRunID, hitlrequest.FieldAgentID, hitlrequest.FieldRequestType, hitlrequest.FieldReason, hitlrequest.FieldRiskLevel, hitlrequest.FieldStatus, hitlrequest.FieldDecision, hitlrequest.FieldFeedback, hitlrequest.FieldRespondedBy:
			values[i] = new(sql.NullString)
		case hitlrequest.FieldRequestedAt, hitlrequest.FieldRespondedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HITLRequest fields.
func (_m *HITLRequest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case hitlrequest.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case hitlrequest.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case hitlrequest.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case hitlrequest.FieldRequestType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_type", values[i])
			} else if value.Valid {
				_m.RequestType = value.String
			}
		case hitlrequest.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case hitlrequest.FieldActionDetails:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field action_details", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ActionDetails); err != nil {
					return fmt.Errorf("unmarshal field action_details: %w", err)
				}
			}
		case hitlrequest.FieldRiskLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_level", values[i])
			} else if value.Valid {
				_m.RiskLevel = hitlrequest.RiskLevel(value.String)
			}
		case hitlrequest.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = hitlrequest.Status(value.String)
			}
		case hitlrequest.FieldDecision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision", values[i])
			} else if value.Valid {
				_m.Decision = new(string)
				*_m.Decision = value.String
			}
		case hitlrequest.FieldFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feedback", values[i])
			} else if value.Valid {
				_m.Feedback = value.String
			}
		case hitlrequest.FieldRequestedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field requested_at", values[i])
			} else if value.Valid {
				_m.RequestedAt = value.Time
			}
		case hitlrequest.FieldRespondedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field responded_at", values[i])
			} else if value.Valid {
				_m.RespondedAt = new(time.Time)
				*_m.RespondedAt = value.Time
			}
		case hitlrequest.FieldRespondedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field responded_by", values[i])
			} else if value.Valid {
				_m.RespondedBy = new(string)
				*_m.RespondedBy = value.String
			}
		case hitlrequest.FieldRequestMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field request_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RequestMetadata); err != nil {
					return fmt.Errorf("unmarshal field request_metadata: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the HITLRequest.
// This includes values selected through modifiers, order, etc.
func (_m *HITLRequest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this HITLRequest.
// Note that you need to call HITLRequest.Unwrap() before calling this method if this HITLRequest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HITLRequest) Update() *HITLRequestUpdateOne {
	return NewHITLRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HITLRequest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HITLRequest) Unwrap() *HITLRequest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HITLRequest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HITLRequest) String() string {
	var builder strings.Builder
	builder.WriteString("HITLRequest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("request_type=")
	builder.WriteString(_m.RequestType)
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("action_details=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActionDetails))
	builder.WriteString(", ")
	builder.WriteString("risk_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskLevel))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.Decision; v != nil {
		builder.WriteString("decision=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("feedback=")
	builder.WriteString(_m.Feedback)
	builder.WriteString(", ")
	builder.WriteString("requested_at=")
	builder.WriteString(_m.RequestedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.RespondedAt; v != nil {
		builder.WriteString("responded_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.RespondedBy; v != nil {
		builder.WriteString("responded_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("request_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestMetadata))
	builder.WriteByte(')')
	return builder.String()
}

// HITLRequests is a parsable slice of HITLRequest.
type HITLRequests []*HITLRequest
