// Code generated by ent, DO NOT EDIT.

package learningfeedback

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/apa-platform/apacore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldContainsFold(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldEQ(FieldAgentID, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldEQ(FieldRunID, v))
}

// TraceID applies equality check predicate on the "trace_id" field. It's identical to TraceIDEQ.
func TraceID(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldEQ(FieldTraceID, v))
}

// FeedbackType applies equality check predicate on the "feedback_type" field. It's identical to FeedbackTypeEQ.
func FeedbackType(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldEQ(FieldFeedbackType, v))
}

// TaskDescription applies equality check predicate on the "task_description" field. It's identical to TaskDescriptionEQ.
func TaskDescription(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldEQ(FieldTaskDescription, v))
}

// Outcome applies equality check predicate on the "outcome" field. It's identical to OutcomeEQ.
func Outcome(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldEQ(FieldOutcome, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldEQ(FieldSuccess, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldEQ(FieldErrorMessage, v))
}

// ImprovementSuggestions applies equality check predicate on the "improvement_suggestions" field. It's identical to ImprovementSuggestionsEQ.
func ImprovementSuggestions(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldEQ(FieldImprovementSuggestions, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldEQ(FieldCreatedAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldContainsFold(FieldAgentID, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDIsNil applies the IsNil predicate on the "run_id" field.
func RunIDIsNil() predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldIsNull(FieldRunID))
}

// RunIDNotNil applies the NotNil predicate on the "run_id" field.
func RunIDNotNil() predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldNotNull(FieldRunID))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldContainsFold(FieldRunID, v))
}

// TraceIDEQ applies the EQ predicate on the "trace_id" field.
func TraceIDEQ(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldEQ(FieldTraceID, v))
}

// TraceIDNEQ applies the NEQ predicate on the "trace_id" field.
func TraceIDNEQ(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldNEQ(FieldTraceID, v))
}

// TraceIDIn applies the In predicate on the "trace_id" field.
func TraceIDIn(vs ...string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldIn(FieldTraceID, vs...))
}

// TraceIDNotIn applies the NotIn predicate on the "trace_id" field.
func TraceIDNotIn(vs ...string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldNotIn(FieldTraceID, vs...))
}

// TraceIDGT applies the GT predicate on the "trace_id" field.
func TraceIDGT(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldGT(FieldTraceID, v))
}

// TraceIDGTE applies the GTE predicate on the "trace_id" field.
func TraceIDGTE(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldGTE(FieldTraceID, v))
}

// TraceIDLT applies the LT predicate on the "trace_id" field.
func TraceIDLT(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldLT(FieldTraceID, v))
}

// TraceIDLTE applies the LTE predicate on the "trace_id" field.
func TraceIDLTE(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldLTE(FieldTraceID, v))
}

// TraceIDContains applies the Contains predicate on the "trace_id" field.
func TraceIDContains(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldContains(FieldTraceID, v))
}

// TraceIDHasPrefix applies the HasPrefix predicate on the "trace_id" field.
func TraceIDHasPrefix(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldHasPrefix(FieldTraceID, v))
}

// TraceIDHasSuffix applies the HasSuffix predicate on the "trace_id" field.
func TraceIDHasSuffix(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldHasSuffix(FieldTraceID, v))
}

// TraceIDIsNil applies the IsNil predicate on the "trace_id" field.
func TraceIDIsNil() predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldIsNull(FieldTraceID))
}

// TraceIDNotNil applies the NotNil predicate on the "trace_id" field.
func TraceIDNotNil() predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldNotNull(FieldTraceID))
}

// TraceIDEqualFold applies the EqualFold predicate on the "trace_id" field.
func TraceIDEqualFold(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldEqualFold(FieldTraceID, v))
}

// TraceIDContainsFold applies the ContainsFold predicate on the "trace_id" field.
func TraceIDContainsFold(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldContainsFold(FieldTraceID, v))
}

// FeedbackTypeEQ applies the EQ predicate on the "feedback_type" field.
func FeedbackTypeEQ(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldEQ(FieldFeedbackType, v))
}

// FeedbackTypeNEQ applies the NEQ predicate on the "feedback_type" field.
func FeedbackTypeNEQ(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldNEQ(FieldFeedbackType, v))
}

// FeedbackTypeIn applies the In predicate on the "feedback_type" field.
func FeedbackTypeIn(vs ...string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldIn(FieldFeedbackType, vs...))
}

// FeedbackTypeNotIn applies the NotIn predicate on the "feedback_type" field.
func FeedbackTypeNotIn(vs ...string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldNotIn(FieldFeedbackType, vs...))
}

// FeedbackTypeGT applies the GT predicate on the "feedback_type" field.
func FeedbackTypeGT(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldGT(FieldFeedbackType, v))
}

// FeedbackTypeGTE applies the GTE predicate on the "feedback_type" field.
func FeedbackTypeGTE(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldGTE(FieldFeedbackType, v))
}

// FeedbackTypeLT applies the LT predicate on the "feedback_type" field.
func FeedbackTypeLT(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldLT(FieldFeedbackType, v))
}

// FeedbackTypeLTE applies the LTE predicate on the "feedback_type" field.
func FeedbackTypeLTE(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldLTE(FieldFeedbackType, v))
}

// FeedbackTypeContains applies the Contains predicate on the "feedback_type" field.
func FeedbackTypeContains(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldContains(FieldFeedbackType, v))
}

// FeedbackTypeHasPrefix applies the HasPrefix predicate on the "feedback_type" field.
func FeedbackTypeHasPrefix(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldHasPrefix(FieldFeedbackType, v))
}

// FeedbackTypeHasSuffix applies the HasSuffix predicate on the "feedback_type" field.
func FeedbackTypeHasSuffix(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldHasSuffix(FieldFeedbackType, v))
}

// FeedbackTypeEqualFold applies the EqualFold predicate on the "feedback_type" field.
func FeedbackTypeEqualFold(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldEqualFold(FieldFeedbackType, v))
}

// FeedbackTypeContainsFold applies the ContainsFold predicate on the "feedback_type" field.
func FeedbackTypeContainsFold(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldContainsFold(FieldFeedbackType, v))
}

// TaskDescriptionEQ applies the EQ predicate on the "task_description" field.
func TaskDescriptionEQ(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldEQ(FieldTaskDescription, v))
}

// TaskDescriptionNEQ applies the NEQ predicate on the "task_description" field.
func TaskDescriptionNEQ(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldNEQ(FieldTaskDescription, v))
}

// TaskDescriptionIn applies the In predicate on the "task_description" field.
func TaskDescriptionIn(vs ...string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldIn(FieldTaskDescription, vs...))
}

// TaskDescriptionNotIn applies the NotIn predicate on the "task_description" field.
func TaskDescriptionNotIn(vs ...string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldNotIn(FieldTaskDescription, vs...))
}

// TaskDescriptionGT applies the GT predicate on the "task_description" field.
func TaskDescriptionGT(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldGT(FieldTaskDescription, v))
}

// TaskDescriptionGTE applies the GTE predicate on the "task_description" field.
func TaskDescriptionGTE(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldGTE(FieldTaskDescription, v))
}

// TaskDescriptionLT applies the LT predicate on the "task_description" field.
func TaskDescriptionLT(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldLT(FieldTaskDescription, v))
}

// TaskDescriptionLTE applies the LTE predicate on the "task_description" field.
func TaskDescriptionLTE(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldLTE(FieldTaskDescription, v))
}

// TaskDescriptionContains applies the Contains predicate on the "task_description" field.
func TaskDescriptionContains(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldContains(FieldTaskDescription, v))
}

// TaskDescriptionHasPrefix applies the HasPrefix predicate on the "task_description" field.
func TaskDescriptionHasPrefix(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldHasPrefix(FieldTaskDescription, v))
}

// TaskDescriptionHasSuffix applies the HasSuffix predicate on the "task_description" field.
func TaskDescriptionHasSuffix(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldHasSuffix(FieldTaskDescription, v))
}

// TaskDescriptionIsNil applies the IsNil predicate on the "task_description" field.
func TaskDescriptionIsNil() predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldIsNull(FieldTaskDescription))
}

// TaskDescriptionNotNil applies the NotNil predicate on the "task_description" field.
func TaskDescriptionNotNil() predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldNotNull(FieldTaskDescription))
}

// TaskDescriptionEqualFold applies the EqualFold predicate on the "task_description" field.
func TaskDescriptionEqualFold(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldEqualFold(FieldTaskDescription, v))
}

// TaskDescriptionContainsFold applies the ContainsFold predicate on the "task_description" field.
func TaskDescriptionContainsFold(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldContainsFold(FieldTaskDescription, v))
}

// ActionTakenIsNil applies the IsNil predicate on the "action_taken" field.
func ActionTakenIsNil() predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldIsNull(FieldActionTaken))
}

// ActionTakenNotNil applies the NotNil predicate on the "action_taken" field.
func ActionTakenNotNil() predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldNotNull(FieldActionTaken))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeGT applies the GT predicate on the "outcome" field.
func OutcomeGT(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldGT(FieldOutcome, v))
}

// OutcomeGTE applies the GTE predicate on the "outcome" field.
func OutcomeGTE(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldGTE(FieldOutcome, v))
}

// OutcomeLT applies the LT predicate on the "outcome" field.
func OutcomeLT(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldLT(FieldOutcome, v))
}

// OutcomeLTE applies the LTE predicate on the "outcome" field.
func OutcomeLTE(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldLTE(FieldOutcome, v))
}

// OutcomeContains applies the Contains predicate on the "outcome" field.
func OutcomeContains(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldContains(FieldOutcome, v))
}

// OutcomeHasPrefix applies the HasPrefix predicate on the "outcome" field.
func OutcomeHasPrefix(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldHasPrefix(FieldOutcome, v))
}

// OutcomeHasSuffix applies the HasSuffix predicate on the "outcome" field.
func OutcomeHasSuffix(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldHasSuffix(FieldOutcome, v))
}

// OutcomeEqualFold applies the EqualFold predicate on the "outcome" field.
func OutcomeEqualFold(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldEqualFold(FieldOutcome, v))
}

// OutcomeContainsFold applies the ContainsFold predicate on the "outcome" field.
func OutcomeContainsFold(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldContainsFold(FieldOutcome, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldNEQ(FieldSuccess, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ImprovementSuggestionsEQ applies the EQ predicate on the "improvement_suggestions" field.
func ImprovementSuggestionsEQ(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldEQ(FieldImprovementSuggestions, v))
}

// ImprovementSuggestionsNEQ applies the NEQ predicate on the "improvement_suggestions" field.
func ImprovementSuggestionsNEQ(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldNEQ(FieldImprovementSuggestions, v))
}

// ImprovementSuggestionsIn applies the In predicate on the "improvement_suggestions" field.
func ImprovementSuggestionsIn(vs ...string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldIn(FieldImprovementSuggestions, vs...))
}

// ImprovementSuggestionsNotIn applies the NotIn predicate on the "improvement_suggestions" field.
func ImprovementSuggestionsNotIn(vs ...string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldNotIn(FieldImprovementSuggestions, vs...))
}

// ImprovementSuggestionsGT applies the GT predicate on the "improvement_suggestions" field.
func ImprovementSuggestionsGT(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldGT(FieldImprovementSuggestions, v))
}

// ImprovementSuggestionsGTE applies the GTE predicate on the "improvement_suggestions" field.
func ImprovementSuggestionsGTE(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldGTE(FieldImprovementSuggestions, v))
}

// ImprovementSuggestionsLT applies the LT predicate on the "improvement_suggestions" field.
func ImprovementSuggestionsLT(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldLT(FieldImprovementSuggestions, v))
}

// ImprovementSuggestionsLTE applies the LTE predicate on the "improvement_suggestions" field.
func ImprovementSuggestionsLTE(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldLTE(FieldImprovementSuggestions, v))
}

// ImprovementSuggestionsContains applies the Contains predicate on the "improvement_suggestions" field.
func ImprovementSuggestionsContains(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldContains(FieldImprovementSuggestions, v))
}

// ImprovementSuggestionsHasPrefix applies the HasPrefix predicate on the "improvement_suggestions" field.
func ImprovementSuggestionsHasPrefix(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldHasPrefix(FieldImprovementSuggestions, v))
}

// ImprovementSuggestionsHasSuffix applies the HasSuffix predicate on the "improvement_suggestions" field.
func ImprovementSuggestionsHasSuffix(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldHasSuffix(FieldImprovementSuggestions, v))
}

// ImprovementSuggestionsIsNil applies the IsNil predicate on the "improvement_suggestions" field.
func ImprovementSuggestionsIsNil() predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldIsNull(FieldImprovementSuggestions))
}

// ImprovementSuggestionsNotNil applies the NotNil predicate on the "improvement_suggestions" field.
func ImprovementSuggestionsNotNil() predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldNotNull(FieldImprovementSuggestions))
}

// ImprovementSuggestionsEqualFold applies the EqualFold predicate on the "improvement_suggestions" field.
func ImprovementSuggestionsEqualFold(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldEqualFold(FieldImprovementSuggestions, v))
}

// ImprovementSuggestionsContainsFold applies the ContainsFold predicate on the "improvement_suggestions" field.
func ImprovementSuggestionsContainsFold(v string) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldContainsFold(FieldImprovementSuggestions, v))
}

// FeedbackMetadataIsNil applies the IsNil predicate on the "feedback_metadata" field.
func FeedbackMetadataIsNil() predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldIsNull(FieldFeedbackMetadata))
}

// FeedbackMetadataNotNil applies the NotNil predicate on the "feedback_metadata" field.
func FeedbackMetadataNotNil() predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldNotNull(FieldFeedbackMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearningFeedback) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearningFeedback) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearningFeedback) predicate.LearningFeedback {
	return predicate.LearningFeedback(sql.NotPredicates(p))
}
