// Code generated by ent, DO NOT EDIT.

package hitlrequest

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the hitlrequest type in the database.
	Label = "hitl_request"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "request_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldRequestType holds the string denoting the request_type field in the database.
	FieldRequestType = "request_type"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldActionDetails holds the string denoting the action_details field in the database.
	FieldActionDetails = "action_details"
	// FieldRiskLevel holds the string denoting the risk_level field in the database.
	FieldRiskLevel = "risk_level"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldDecision holds the string denoting the decision field in the database.
	FieldDecision = "decision"
	// FieldFeedback holds the string denoting the feedback field in the database.
	FieldFeedback = "feedback"
	// FieldRequestedAt holds the string denoting the requested_at field in the database.
	FieldRequestedAt = "requested_at"
	// FieldRespondedAt holds the string denoting the responded_at field in the database.
	FieldRespondedAt = "responded_at"
	// FieldRespondedBy holds the string denoting the responded_by field in the database.
	FieldRespondedBy = "responded_by"
	// FieldRequestMetadata holds the string denoting the request_metadata field in the database.
	FieldRequestMetadata = "request_metadata"
	// Table holds the table name of the hitlrequest in the database.
	Table = "hitl_requests"
)

// Columns holds all SQL columns for hitlrequest fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldAgentID,
	FieldRequestType,
	FieldReason,
	FieldActionDetails,
	FieldRiskLevel,
	FieldStatus,
	FieldDecision,
	FieldFeedback,
	FieldRequestedAt,
	FieldRespondedAt,
	FieldRespondedBy,
	FieldRequestMetadata,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultRequestType holds the default value on creation for the "request_type" field.
	DefaultRequestType string
	// DefaultRequestedAt holds the default value on creation for the "requested_at" field.
	DefaultRequestedAt func() time.Time
)

// RiskLevel defines the type for the "risk_level" enum field.
type RiskLevel string

// RiskLevel values.
const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

func (rl RiskLevel) String() string {
	return string(rl)
}

// RiskLevelValidator is a validator for the "risk_level" field enum values. It is called by the builders before save.
func RiskLevelValidator(rl RiskLevel) error {
	switch rl {
	case RiskLevelLow, RiskLevelMedium, RiskLevelHigh, RiskLevelCritical:
		return nil
	default:
		return fmt.Errorf("hitlrequest: invalid enum value for risk_level field: %q", rl)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusTimeout  Status = "timeout"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusTimeout:
		return nil
	default:
		return fmt.Errorf("hitlrequest: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the HITLRequest queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByRequestType orders the results by the request_type field.
func ByRequestType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestType, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByRiskLevel orders the results by the risk_level field.
func ByRiskLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskLevel, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByDecision orders the results by the decision field.
func ByDecision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecision, opts...).ToFunc()
}

// ByFeedback orders the results by the feedback field.
func ByFeedback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeedback, opts...).ToFunc()
}

// ByRequestedAt orders the results by the requested_at field.
func ByRequestedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestedAt, opts...).ToFunc()
}

// ByRespondedAt orders the results by the responded_at field.
func ByRespondedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRespondedAt, opts...).ToFunc()
}

// ByRespondedBy orders the results by the responded_by field.
func ByRespondedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRespondedBy, opts...).ToFunc()
}
