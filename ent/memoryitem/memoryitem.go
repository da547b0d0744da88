// Code generated by ent, DO NOT EDIT.

package memoryitem

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the memoryitem type in the database.
	Label = "memory_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "memory_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldMemoryType holds the string denoting the memory_type field in the database.
	FieldMemoryType = "memory_type"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldEmbedding holds the string denoting the embedding field in the database.
	FieldEmbedding = "embedding"
	// FieldItemMetadata holds the string denoting the item_metadata field in the database.
	FieldItemMetadata = "item_metadata"
	// FieldImportanceScore holds the string denoting the importance_score field in the database.
	FieldImportanceScore = "importance_score"
	// FieldAccessCount holds the string denoting the access_count field in the database.
	FieldAccessCount = "access_count"
	// FieldLastAccessedAt holds the string denoting the last_accessed_at field in the database.
	FieldLastAccessedAt = "last_accessed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the memoryitem in the database.
	Table = "memory_items"
)

// Columns holds all SQL columns for memoryitem fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldMemoryType,
	FieldContent,
	FieldEmbedding,
	FieldItemMetadata,
	FieldImportanceScore,
	FieldAccessCount,
	FieldLastAccessedAt,
	FieldCreatedAt,
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
	// DefaultAccessCount holds the default value on creation for the "access_count" field.
	DefaultAccessCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// MemoryType defines the type for the "memory_type" enum field.
type MemoryType string

// MemoryType values.
const (
	MemoryTypeEpisodic   MemoryType = "episodic"
	MemoryTypeSemantic   MemoryType = "semantic"
	MemoryTypeProcedural MemoryType = "procedural"
)

func (mt MemoryType) String() string {
	return string(mt)
}

// MemoryTypeValidator is a validator for the "memory_type" field enum values. It is called by the builders before save.
func MemoryTypeValidator(mt MemoryType) error {
	switch mt {
	case MemoryTypeEpisodic, MemoryTypeSemantic, MemoryTypeProcedural:
		return nil
	default:
		return fmt.Errorf("memoryitem: invalid enum value for memory_type field: %q", mt)
	}
}

// OrderOption defines the ordering options for the MemoryItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByMemoryType orders the results by the memory_type field.
func ByMemoryType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemoryType, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByImportanceScore orders the results by the importance_score field.
func ByImportanceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImportanceScore, opts...).ToFunc()
}

// ByAccessCount orders the results by the access_count field.
func ByAccessCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccessCount, opts...).ToFunc()
}

// ByLastAccessedAt orders the results by the last_accessed_at field.
func ByLastAccessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAccessedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
