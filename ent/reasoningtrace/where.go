// Code generated by ent, DO NOT EDIT.

package reasoningtrace

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/apa-platform/apacore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldContainsFold(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldEQ(FieldRunID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldEQ(FieldAgentID, v))
}

// StepIndex applies equality check predicate on the "step_index" field. It's identical to StepIndexEQ.
func StepIndex(v int) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldEQ(FieldStepIndex, v))
}

// Thought applies equality check predicate on the "thought" field. It's identical to ThoughtEQ.
func Thought(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldEQ(FieldThought, v))
}

// Reflection applies equality check predicate on the "reflection" field. It's identical to ReflectionEQ.
func Reflection(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldEQ(FieldReflection, v))
}

// TokensUsed applies equality check predicate on the "tokens_used" field. It's identical to TokensUsedEQ.
func TokensUsed(v int) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldEQ(FieldTokensUsed, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldEQ(FieldLatencyMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldEQ(FieldCreatedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldContainsFold(FieldRunID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldContainsFold(FieldAgentID, v))
}

// StepIndexEQ applies the EQ predicate on the "step_index" field.
func StepIndexEQ(v int) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldEQ(FieldStepIndex, v))
}

// StepIndexNEQ applies the NEQ predicate on the "step_index" field.
func StepIndexNEQ(v int) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldNEQ(FieldStepIndex, v))
}

// StepIndexIn applies the In predicate on the "step_index" field.
func StepIndexIn(vs ...int) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldIn(FieldStepIndex, vs...))
}

// StepIndexNotIn applies the NotIn predicate on the "step_index" field.
func StepIndexNotIn(vs ...int) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldNotIn(FieldStepIndex, vs...))
}

// StepIndexGT applies the GT predicate on the "step_index" field.
func StepIndexGT(v int) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldGT(FieldStepIndex, v))
}

// StepIndexGTE applies the GTE predicate on the "step_index" field.
func StepIndexGTE(v int) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldGTE(FieldStepIndex, v))
}

// StepIndexLT applies the LT predicate on the "step_index" field.
func StepIndexLT(v int) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldLT(FieldStepIndex, v))
}

// StepIndexLTE applies the LTE predicate on the "step_index" field.
func StepIndexLTE(v int) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldLTE(FieldStepIndex, v))
}

// ThoughtEQ applies the EQ predicate on the "thought" field.
func ThoughtEQ(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldEQ(FieldThought, v))
}

// ThoughtNEQ applies the NEQ predicate on the "thought" field.
func ThoughtNEQ(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldNEQ(FieldThought, v))
}

// ThoughtIn applies the In predicate on the "thought" field.
func ThoughtIn(vs ...string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldIn(FieldThought, vs...))
}

// ThoughtNotIn applies the NotIn predicate on the "thought" field.
func ThoughtNotIn(vs ...string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldNotIn(FieldThought, vs...))
}

// ThoughtGT applies the GT predicate on the "thought" field.
func ThoughtGT(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldGT(FieldThought, v))
}

// ThoughtGTE applies the GTE predicate on the "thought" field.
func ThoughtGTE(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldGTE(FieldThought, v))
}

// ThoughtLT applies the LT predicate on the "thought" field.
func ThoughtLT(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldLT(FieldThought, v))
}

// ThoughtLTE applies the LTE predicate on the "thought" field.
func ThoughtLTE(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldLTE(FieldThought, v))
}

// ThoughtContains applies the Contains predicate on the "thought" field.
func ThoughtContains(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldContains(FieldThought, v))
}

// ThoughtHasPrefix applies the HasPrefix predicate on the "thought" field.
func ThoughtHasPrefix(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldHasPrefix(FieldThought, v))
}

// ThoughtHasSuffix applies the HasSuffix predicate on the "thought" field.
func ThoughtHasSuffix(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldHasSuffix(FieldThought, v))
}

// ThoughtEqualFold applies the EqualFold predicate on the "thought" field.
func ThoughtEqualFold(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldEqualFold(FieldThought, v))
}

// ThoughtContainsFold applies the ContainsFold predicate on the "thought" field.
func ThoughtContainsFold(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldContainsFold(FieldThought, v))
}

// ObservationIsNil applies the IsNil predicate on the "observation" field.
func ObservationIsNil() predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldIsNull(FieldObservation))
}

// ObservationNotNil applies the NotNil predicate on the "observation" field.
func ObservationNotNil() predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldNotNull(FieldObservation))
}

// ReflectionEQ applies the EQ predicate on the "reflection" field.
func ReflectionEQ(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldEQ(FieldReflection, v))
}

// ReflectionNEQ applies the NEQ predicate on the "reflection" field.
func ReflectionNEQ(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldNEQ(FieldReflection, v))
}

// ReflectionIn applies the In predicate on the "reflection" field.
func ReflectionIn(vs ...string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldIn(FieldReflection, vs...))
}

// ReflectionNotIn applies the NotIn predicate on the "reflection" field.
func ReflectionNotIn(vs ...string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldNotIn(FieldReflection, vs...))
}

// ReflectionGT applies the GT predicate on the "reflection" field.
func ReflectionGT(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldGT(FieldReflection, v))
}

// ReflectionGTE applies the GTE predicate on the "reflection" field.
func ReflectionGTE(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldGTE(FieldReflection, v))
}

// ReflectionLT applies the LT predicate on the "reflection" field.
func ReflectionLT(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldLT(FieldReflection, v))
}

// ReflectionLTE applies the LTE predicate on the "reflection" field.
func ReflectionLTE(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldLTE(FieldReflection, v))
}

// ReflectionContains applies the Contains predicate on the "reflection" field.
func ReflectionContains(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldContains(FieldReflection, v))
}

// ReflectionHasPrefix applies the HasPrefix predicate on the "reflection" field.
func ReflectionHasPrefix(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldHasPrefix(FieldReflection, v))
}

// ReflectionHasSuffix applies the HasSuffix predicate on the "reflection" field.
func ReflectionHasSuffix(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldHasSuffix(FieldReflection, v))
}

// ReflectionIsNil applies the IsNil predicate on the "reflection" field.
func ReflectionIsNil() predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldIsNull(FieldReflection))
}

// ReflectionNotNil applies the NotNil predicate on the "reflection" field.
func ReflectionNotNil() predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldNotNull(FieldReflection))
}

// ReflectionEqualFold applies the EqualFold predicate on the "reflection" field.
func ReflectionEqualFold(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldEqualFold(FieldReflection, v))
}

// ReflectionContainsFold applies the ContainsFold predicate on the "reflection" field.
func ReflectionContainsFold(v string) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldContainsFold(FieldReflection, v))
}

// TokensUsedEQ applies the EQ predicate on the "tokens_used" field.
func TokensUsedEQ(v int) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldEQ(FieldTokensUsed, v))
}

// TokensUsedNEQ applies the NEQ predicate on the "tokens_used" field.
func TokensUsedNEQ(v int) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldNEQ(FieldTokensUsed, v))
}

// TokensUsedIn applies the In predicate on the "tokens_used" field.
func TokensUsedIn(vs ...int) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldIn(FieldTokensUsed, vs...))
}

// TokensUsedNotIn applies the NotIn predicate on the "tokens_used" field.
func TokensUsedNotIn(vs ...int) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldNotIn(FieldTokensUsed, vs...))
}

// TokensUsedGT applies the GT predicate on the "tokens_used" field.
func TokensUsedGT(v int) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldGT(FieldTokensUsed, v))
}

// TokensUsedGTE applies the GTE predicate on the "tokens_used" field.
func TokensUsedGTE(v int) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldGTE(FieldTokensUsed, v))
}

// TokensUsedLT applies the LT predicate on the "tokens_used" field.
func TokensUsedLT(v int) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldLT(FieldTokensUsed, v))
}

// TokensUsedLTE applies the LTE predicate on the "tokens_used" field.
func TokensUsedLTE(v int) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldLTE(FieldTokensUsed, v))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldLTE(FieldLatencyMs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReasoningTrace) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReasoningTrace) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReasoningTrace) predicate.ReasoningTrace {
	return predicate.ReasoningTrace(sql.NotPredicates(p))
}
