// Code generated by ent, DO NOT EDIT.

package hitlrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/apa-platform/apacore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldContainsFold(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldEQ(FieldRunID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldEQ(FieldAgentID, v))
}

// RequestType applies equality check predicate on the "request_type" field. It's identical to RequestTypeEQ.
func RequestType(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldEQ(FieldRequestType, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldEQ(FieldReason, v))
}

// Decision applies equality check predicate on the "decision" field. It's identical to DecisionEQ.
func Decision(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldEQ(FieldDecision, v))
}

// Feedback applies equality check predicate on the "feedback" field. It's identical to FeedbackEQ.
func Feedback(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldEQ(FieldFeedback, v))
}

// RequestedAt applies equality check predicate on the "requested_at" field. It's identical to RequestedAtEQ.
func RequestedAt(v time.Time) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldEQ(FieldRequestedAt, v))
}

// RespondedAt applies equality check predicate on the "responded_at" field. It's identical to RespondedAtEQ.
func RespondedAt(v time.Time) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldEQ(FieldRespondedAt, v))
}

// RespondedBy applies equality check predicate on the "responded_by" field. It's identical to RespondedByEQ.
func RespondedBy(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldEQ(FieldRespondedBy, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldContainsFold(FieldRunID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldContainsFold(FieldAgentID, v))
}

// RequestTypeEQ applies the EQ predicate on the "request_type" field.
func RequestTypeEQ(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldEQ(FieldRequestType, v))
}

// RequestTypeNEQ applies the NEQ predicate on the "request_type" field.
func RequestTypeNEQ(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldNEQ(FieldRequestType, v))
}

// RequestTypeIn applies the In predicate on the "request_type" field.
func RequestTypeIn(vs ...string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldIn(FieldRequestType, vs...))
}

// RequestTypeNotIn applies the NotIn predicate on the "request_type" field.
func RequestTypeNotIn(vs ...string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldNotIn(FieldRequestType, vs...))
}

// RequestTypeGT applies the GT predicate on the "request_type" field.
func RequestTypeGT(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldGT(FieldRequestType, v))
}

// RequestTypeGTE applies the GTE predicate on the "request_type" field.
func RequestTypeGTE(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldGTE(FieldRequestType, v))
}

// RequestTypeLT applies the LT predicate on the "request_type" field.
func RequestTypeLT(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldLT(FieldRequestType, v))
}

// RequestTypeLTE applies the LTE predicate on the "request_type" field.
func RequestTypeLTE(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldLTE(FieldRequestType, v))
}

// RequestTypeContains applies the Contains predicate on the "request_type" field.
func RequestTypeContains(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldContains(FieldRequestType, v))
}

// RequestTypeHasPrefix applies the HasPrefix predicate on the "request_type" field.
func RequestTypeHasPrefix(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldHasPrefix(FieldRequestType, v))
}

// RequestTypeHasSuffix applies the HasSuffix predicate on the "request_type" field.
func RequestTypeHasSuffix(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldHasSuffix(FieldRequestType, v))
}

// RequestTypeEqualFold applies the EqualFold predicate on the "request_type" field.
func RequestTypeEqualFold(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldEqualFold(FieldRequestType, v))
}

// RequestTypeContainsFold applies the ContainsFold predicate on the "request_type" field.
func RequestTypeContainsFold(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldContainsFold(FieldRequestType, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldContainsFold(FieldReason, v))
}

// RiskLevelEQ applies the EQ predicate on the "risk_level" field.
func RiskLevelEQ(v RiskLevel) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldEQ(FieldRiskLevel, v))
}

// RiskLevelNEQ applies the NEQ predicate on the "risk_level" field.
func RiskLevelNEQ(v RiskLevel) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldNEQ(FieldRiskLevel, v))
}

// RiskLevelIn applies the In predicate on the "risk_level" field.
func RiskLevelIn(vs ...RiskLevel) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldIn(FieldRiskLevel, vs...))
}

// RiskLevelNotIn applies the NotIn predicate on the "risk_level" field.
func RiskLevelNotIn(vs ...RiskLevel) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldNotIn(FieldRiskLevel, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldNotIn(FieldStatus, vs...))
}

// DecisionEQ applies the EQ predicate on the "decision" field.
func DecisionEQ(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldEQ(FieldDecision, v))
}

// DecisionNEQ applies the NEQ predicate on the "decision" field.
func DecisionNEQ(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldNEQ(FieldDecision, v))
}

// DecisionIn applies the In predicate on the "decision" field.
func DecisionIn(vs ...string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldIn(FieldDecision, vs...))
}

// DecisionNotIn applies the NotIn predicate on the "decision" field.
func DecisionNotIn(vs ...string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldNotIn(FieldDecision, vs...))
}

// DecisionGT applies the GT predicate on the "decision" field.
func DecisionGT(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldGT(FieldDecision, v))
}

// DecisionGTE applies the GTE predicate on the "decision" field.
func DecisionGTE(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldGTE(FieldDecision, v))
}

// DecisionLT applies the LT predicate on the "decision" field.
func DecisionLT(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldLT(FieldDecision, v))
}

// DecisionLTE applies the LTE predicate on the "decision" field.
func DecisionLTE(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldLTE(FieldDecision, v))
}

// DecisionContains applies the Contains predicate on the "decision" field.
func DecisionContains(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldContains(FieldDecision, v))
}

// DecisionHasPrefix applies the HasPrefix predicate on the "decision" field.
func DecisionHasPrefix(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldHasPrefix(FieldDecision, v))
}

// DecisionHasSuffix applies the HasSuffix predicate on the "decision" field.
func DecisionHasSuffix(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldHasSuffix(FieldDecision, v))
}

// DecisionIsNil applies the IsNil predicate on the "decision" field.
func DecisionIsNil() predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldIsNull(FieldDecision))
}

// DecisionNotNil applies the NotNil predicate on the "decision" field.
func DecisionNotNil() predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldNotNull(FieldDecision))
}

// DecisionEqualFold applies the EqualFold predicate on the "decision" field.
func DecisionEqualFold(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldEqualFold(FieldDecision, v))
}

// DecisionContainsFold applies the ContainsFold predicate on the "decision" field.
func DecisionContainsFold(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldContainsFold(FieldDecision, v))
}

// FeedbackEQ applies the EQ predicate on the "feedback" field.
func FeedbackEQ(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldEQ(FieldFeedback, v))
}

// FeedbackNEQ applies the NEQ predicate on the "feedback" field.
func FeedbackNEQ(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldNEQ(FieldFeedback, v))
}

// FeedbackIn applies the In predicate on the "feedback" field.
func FeedbackIn(vs ...string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldIn(FieldFeedback, vs...))
}

// FeedbackNotIn applies the NotIn predicate on the "feedback" field.
func FeedbackNotIn(vs ...string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldNotIn(FieldFeedback, vs...))
}

// FeedbackGT applies the GT predicate on the "feedback" field.
func FeedbackGT(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldGT(FieldFeedback, v))
}

// FeedbackGTE applies the GTE predicate on the "feedback" field.
func FeedbackGTE(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldGTE(FieldFeedback, v))
}

// FeedbackLT applies the LT predicate on the "feedback" field.
func FeedbackLT(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldLT(FieldFeedback, v))
}

// FeedbackLTE applies the LTE predicate on the "feedback" field.
func FeedbackLTE(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldLTE(FieldFeedback, v))
}

// FeedbackContains applies the Contains predicate on the "feedback" field.
func FeedbackContains(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldContains(FieldFeedback, v))
}

// FeedbackHasPrefix applies the HasPrefix predicate on the "feedback" field.
func FeedbackHasPrefix(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldHasPrefix(FieldFeedback, v))
}

// FeedbackHasSuffix applies the HasSuffix predicate on the "feedback" field.
func FeedbackHasSuffix(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldHasSuffix(FieldFeedback, v))
}

// FeedbackIsNil applies the IsNil predicate on the "feedback" field.
func FeedbackIsNil() predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldIsNull(FieldFeedback))
}

// FeedbackNotNil applies the NotNil predicate on the "feedback" field.
func FeedbackNotNil() predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldNotNull(FieldFeedback))
}

// FeedbackEqualFold applies the EqualFold predicate on the "feedback" field.
func FeedbackEqualFold(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldEqualFold(FieldFeedback, v))
}

// FeedbackContainsFold applies the ContainsFold predicate on the "feedback" field.
func FeedbackContainsFold(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldContainsFold(FieldFeedback, v))
}

// RequestedAtEQ applies the EQ predicate on the "requested_at" field.
func RequestedAtEQ(v time.Time) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldEQ(FieldRequestedAt, v))
}

// RequestedAtNEQ applies the NEQ predicate on the "requested_at" field.
func RequestedAtNEQ(v time.Time) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldNEQ(FieldRequestedAt, v))
}

// RequestedAtIn applies the In predicate on the "requested_at" field.
func RequestedAtIn(vs ...time.Time) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldIn(FieldRequestedAt, vs...))
}

// RequestedAtNotIn applies the NotIn predicate on the "requested_at" field.
func RequestedAtNotIn(vs ...time.Time) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldNotIn(FieldRequestedAt, vs...))
}

// RequestedAtGT applies the GT predicate on the "requested_at" field.
func RequestedAtGT(v time.Time) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldGT(FieldRequestedAt, v))
}

// RequestedAtGTE applies the GTE predicate on the "requested_at" field.
func RequestedAtGTE(v time.Time) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldGTE(FieldRequestedAt, v))
}

// RequestedAtLT applies the LT predicate on the "requested_at" field.
func RequestedAtLT(v time.Time) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldLT(FieldRequestedAt, v))
}

// RequestedAtLTE applies the LTE predicate on the "requested_at" field.
func RequestedAtLTE(v time.Time) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldLTE(FieldRequestedAt, v))
}

// RespondedAtEQ applies the EQ predicate on the "responded_at" field.
func RespondedAtEQ(v time.Time) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldEQ(FieldRespondedAt, v))
}

// RespondedAtNEQ applies the NEQ predicate on the "responded_at" field.
func RespondedAtNEQ(v time.Time) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldNEQ(FieldRespondedAt, v))
}

// RespondedAtIn applies the In predicate on the "responded_at" field.
func RespondedAtIn(vs ...time.Time) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldIn(FieldRespondedAt, vs...))
}

// RespondedAtNotIn applies the NotIn predicate on the "responded_at" field.
func RespondedAtNotIn(vs ...time.Time) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldNotIn(FieldRespondedAt, vs...))
}

// RespondedAtGT applies the GT predicate on the "responded_at" field.
func RespondedAtGT(v time.Time) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldGT(FieldRespondedAt, v))
}

// RespondedAtGTE applies the GTE predicate on the "responded_at" field.
func RespondedAtGTE(v time.Time) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldGTE(FieldRespondedAt, v))
}

// RespondedAtLT applies the LT predicate on the "responded_at" field.
func RespondedAtLT(v time.Time) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldLT(FieldRespondedAt, v))
}

// RespondedAtLTE applies the LTE predicate on the "responded_at" field.
func RespondedAtLTE(v time.Time) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldLTE(FieldRespondedAt, v))
}

// RespondedAtIsNil applies the IsNil predicate on the "responded_at" field.
func RespondedAtIsNil() predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldIsNull(FieldRespondedAt))
}

// RespondedAtNotNil applies the NotNil predicate on the "responded_at" field.
func RespondedAtNotNil() predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldNotNull(FieldRespondedAt))
}

// RespondedByEQ applies the EQ predicate on the "responded_by" field.
func RespondedByEQ(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldEQ(FieldRespondedBy, v))
}

// RespondedByNEQ applies the NEQ predicate on the "responded_by" field.
func RespondedByNEQ(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldNEQ(FieldRespondedBy, v))
}

// RespondedByIn applies the In predicate on the "responded_by" field.
func RespondedByIn(vs ...string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldIn(FieldRespondedBy, vs...))
}

// RespondedByNotIn applies the NotIn predicate on the "responded_by" field.
func RespondedByNotIn(vs ...string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldNotIn(FieldRespondedBy, vs...))
}

// RespondedByGT applies the GT predicate on the "responded_by" field.
func RespondedByGT(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldGT(FieldRespondedBy, v))
}

// RespondedByGTE applies the GTE predicate on the "responded_by" field.
func RespondedByGTE(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldGTE(FieldRespondedBy, v))
}

// RespondedByLT applies the LT predicate on the "responded_by" field.
func RespondedByLT(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldLT(FieldRespondedBy, v))
}

// RespondedByLTE applies the LTE predicate on the "responded_by" field.
func RespondedByLTE(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldLTE(FieldRespondedBy, v))
}

// RespondedByContains applies the Contains predicate on the "responded_by" field.
func RespondedByContains(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldContains(FieldRespondedBy, v))
}

// RespondedByHasPrefix applies the HasPrefix predicate on the "responded_by" field.
func RespondedByHasPrefix(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldHasPrefix(FieldRespondedBy, v))
}

// RespondedByHasSuffix applies the HasSuffix predicate on the "responded_by" field.
func RespondedByHasSuffix(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldHasSuffix(FieldRespondedBy, v))
}

// RespondedByIsNil applies the IsNil predicate on the "responded_by" field.
func RespondedByIsNil() predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldIsNull(FieldRespondedBy))
}

// RespondedByNotNil applies the NotNil predicate on the "responded_by" field.
func RespondedByNotNil() predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldNotNull(FieldRespondedBy))
}

// RespondedByEqualFold applies the EqualFold predicate on the "responded_by" field.
func RespondedByEqualFold(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldEqualFold(FieldRespondedBy, v))
}

// RespondedByContainsFold applies the ContainsFold predicate on the "responded_by" field.
func RespondedByContainsFold(v string) predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldContainsFold(FieldRespondedBy, v))
}

// RequestMetadataIsNil applies the IsNil predicate on the "request_metadata" field.
func RequestMetadataIsNil() predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldIsNull(FieldRequestMetadata))
}

// RequestMetadataNotNil applies the NotNil predicate on the "request_metadata" field.
func RequestMetadataNotNil() predicate.HITLRequest {
	return predicate.HITLRequest(sql.FieldNotNull(FieldRequestMetadata))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HITLRequest) predicate.HITLRequest {
	return predicate.HITLRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HITLRequest) predicate.HITLRequest {
	return predicate.HITLRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HITLRequest) predicate.HITLRequest {
	return predicate.HITLRequest(sql.NotPredicates(p))
}
