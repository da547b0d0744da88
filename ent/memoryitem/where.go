// Code generated by ent, DO NOT EDIT.

package memoryitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/apa-platform/apacore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldContainsFold(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldEQ(FieldAgentID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldEQ(FieldContent, v))
}

// ImportanceScore applies equality check predicate on the "importance_score" field. It's identical to ImportanceScoreEQ.
func ImportanceScore(v float64) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldEQ(FieldImportanceScore, v))
}

// AccessCount applies equality check predicate on the "access_count" field. It's identical to AccessCountEQ.
func AccessCount(v int) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldEQ(FieldAccessCount, v))
}

// LastAccessedAt applies equality check predicate on the "last_accessed_at" field. It's identical to LastAccessedAtEQ.
func LastAccessedAt(v time.Time) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldEQ(FieldLastAccessedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldEQ(FieldCreatedAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldContainsFold(FieldAgentID, v))
}

// MemoryTypeEQ applies the EQ predicate on the "memory_type" field.
func MemoryTypeEQ(v MemoryType) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldEQ(FieldMemoryType, v))
}

// MemoryTypeNEQ applies the NEQ predicate on the "memory_type" field.
func MemoryTypeNEQ(v MemoryType) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldNEQ(FieldMemoryType, v))
}

// MemoryTypeIn applies the In predicate on the "memory_type" field.
func MemoryTypeIn(vs ...MemoryType) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldIn(FieldMemoryType, vs...))
}

// MemoryTypeNotIn applies the NotIn predicate on the "memory_type" field.
func MemoryTypeNotIn(vs ...MemoryType) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldNotIn(FieldMemoryType, vs...))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldContainsFold(FieldContent, v))
}

// EmbeddingIsNil applies the IsNil predicate on the "embedding" field.
func EmbeddingIsNil() predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldIsNull(FieldEmbedding))
}

// EmbeddingNotNil applies the NotNil predicate on the "embedding" field.
func EmbeddingNotNil() predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldNotNull(FieldEmbedding))
}

// ItemMetadataIsNil applies the IsNil predicate on the "item_metadata" field.
func ItemMetadataIsNil() predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldIsNull(FieldItemMetadata))
}

// ItemMetadataNotNil applies the NotNil predicate on the "item_metadata" field.
func ItemMetadataNotNil() predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldNotNull(FieldItemMetadata))
}

// ImportanceScoreEQ applies the EQ predicate on the "importance_score" field.
func ImportanceScoreEQ(v float64) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldEQ(FieldImportanceScore, v))
}

// ImportanceScoreNEQ applies the NEQ predicate on the "importance_score" field.
func ImportanceScoreNEQ(v float64) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldNEQ(FieldImportanceScore, v))
}

// ImportanceScoreIn applies the In predicate on the "importance_score" field.
func ImportanceScoreIn(vs ...float64) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldIn(FieldImportanceScore, vs...))
}

// ImportanceScoreNotIn applies the NotIn predicate on the "importance_score" field.
func ImportanceScoreNotIn(vs ...float64) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldNotIn(FieldImportanceScore, vs...))
}

// ImportanceScoreGT applies the GT predicate on the "importance_score" field.
func ImportanceScoreGT(v float64) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldGT(FieldImportanceScore, v))
}

// ImportanceScoreGTE applies the GTE predicate on the "importance_score" field.
func ImportanceScoreGTE(v float64) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldGTE(FieldImportanceScore, v))
}

// ImportanceScoreLT applies the LT predicate on the "importance_score" field.
func ImportanceScoreLT(v float64) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldLT(FieldImportanceScore, v))
}

// ImportanceScoreLTE applies the LTE predicate on the "importance_score" field.
func ImportanceScoreLTE(v float64) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldLTE(FieldImportanceScore, v))
}

// ImportanceScoreIsNil applies the IsNil predicate on the "importance_score" field.
func ImportanceScoreIsNil() predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldIsNull(FieldImportanceScore))
}

// ImportanceScoreNotNil applies the NotNil predicate on the "importance_score" field.
func ImportanceScoreNotNil() predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldNotNull(FieldImportanceScore))
}

// AccessCountEQ applies the EQ predicate on the "access_count" field.
func AccessCountEQ(v int) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldEQ(FieldAccessCount, v))
}

// AccessCountNEQ applies the NEQ predicate on the "access_count" field.
func AccessCountNEQ(v int) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldNEQ(FieldAccessCount, v))
}

// AccessCountIn applies the In predicate on the "access_count" field.
func AccessCountIn(vs ...int) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldIn(FieldAccessCount, vs...))
}

// AccessCountNotIn applies the NotIn predicate on the "access_count" field.
func AccessCountNotIn(vs ...int) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldNotIn(FieldAccessCount, vs...))
}

// AccessCountGT applies the GT predicate on the "access_count" field.
func AccessCountGT(v int) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldGT(FieldAccessCount, v))
}

// AccessCountGTE applies the GTE predicate on the "access_count" field.
func AccessCountGTE(v int) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldGTE(FieldAccessCount, v))
}

// AccessCountLT applies the LT predicate on the "access_count" field.
func AccessCountLT(v int) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldLT(FieldAccessCount, v))
}

// AccessCountLTE applies the LTE predicate on the "access_count" field.
func AccessCountLTE(v int) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldLTE(FieldAccessCount, v))
}

// LastAccessedAtEQ applies the EQ predicate on the "last_accessed_at" field.
func LastAccessedAtEQ(v time.Time) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldEQ(FieldLastAccessedAt, v))
}

// LastAccessedAtNEQ applies the NEQ predicate on the "last_accessed_at" field.
func LastAccessedAtNEQ(v time.Time) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldNEQ(FieldLastAccessedAt, v))
}

// LastAccessedAtIn applies the In predicate on the "last_accessed_at" field.
func LastAccessedAtIn(vs ...time.Time) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldIn(FieldLastAccessedAt, vs...))
}

// LastAccessedAtNotIn applies the NotIn predicate on the "last_accessed_at" field.
func LastAccessedAtNotIn(vs ...time.Time) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldNotIn(FieldLastAccessedAt, vs...))
}

// LastAccessedAtGT applies the GT predicate on the "last_accessed_at" field.
func LastAccessedAtGT(v time.Time) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldGT(FieldLastAccessedAt, v))
}

// LastAccessedAtGTE applies the GTE predicate on the "last_accessed_at" field.
func LastAccessedAtGTE(v time.Time) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldGTE(FieldLastAccessedAt, v))
}

// LastAccessedAtLT applies the LT predicate on the "last_accessed_at" field.
func LastAccessedAtLT(v time.Time) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldLT(FieldLastAccessedAt, v))
}

// LastAccessedAtLTE applies the LTE predicate on the "last_accessed_at" field.
func LastAccessedAtLTE(v time.Time) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldLTE(FieldLastAccessedAt, v))
}

// LastAccessedAtIsNil applies the IsNil predicate on the "last_accessed_at" field.
func LastAccessedAtIsNil() predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldIsNull(FieldLastAccessedAt))
}

// LastAccessedAtNotNil applies the NotNil predicate on the "last_accessed_at" field.
func LastAccessedAtNotNil() predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldNotNull(FieldLastAccessedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MemoryItem {
	return predicate.MemoryItem(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MemoryItem) predicate.MemoryItem {
	return predicate.MemoryItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MemoryItem) predicate.MemoryItem {
	return predicate.MemoryItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MemoryItem) predicate.MemoryItem {
	return predicate.MemoryItem(sql.NotPredicates(p))
}
