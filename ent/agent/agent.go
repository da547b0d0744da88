// Code generated by ent, DO NOT EDIT.

package agent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the agent type in the database.
	Label = "agent"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "agent_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldTemperature holds the string denoting the temperature field in the database.
	FieldTemperature = "temperature"
	// FieldMaxTokens holds the string denoting the max_tokens field in the database.
	FieldMaxTokens = "max_tokens"
	// FieldSystemPrompt holds the string denoting the system_prompt field in the database.
	FieldSystemPrompt = "system_prompt"
	// FieldInstructions holds the string denoting the instructions field in the database.
	FieldInstructions = "instructions"
	// FieldTools holds the string denoting the tools field in the database.
	FieldTools = "tools"
	// FieldSafetyGuardrails holds the string denoting the safety_guardrails field in the database.
	FieldSafetyGuardrails = "safety_guardrails"
	// FieldEnableMemory holds the string denoting the enable_memory field in the database.
	FieldEnableMemory = "enable_memory"
	// FieldEnableTools holds the string denoting the enable_tools field in the database.
	FieldEnableTools = "enable_tools"
	// FieldEnableLearning holds the string denoting the enable_learning field in the database.
	FieldEnableLearning = "enable_learning"
	// FieldEnableCollaboration holds the string denoting the enable_collaboration field in the database.
	FieldEnableCollaboration = "enable_collaboration"
	// FieldMaxIterations holds the string denoting the max_iterations field in the database.
	FieldMaxIterations = "max_iterations"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the agent in the database.
	Table = "agents"
)

// Columns holds all SQL columns for agent fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDescription,
	FieldModel,
	FieldProvider,
	FieldTemperature,
	FieldMaxTokens,
	FieldSystemPrompt,
	FieldInstructions,
	FieldTools,
	FieldSafetyGuardrails,
	FieldEnableMemory,
	FieldEnableTools,
	FieldEnableLearning,
	FieldEnableCollaboration,
	FieldMaxIterations,
	FieldStatus,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultModel holds the default value on creation for the "model" field.
	DefaultModel string
	// DefaultProvider holds the default value on creation for the "provider" field.
	DefaultProvider string
	// DefaultTemperature holds the default value on creation for the "temperature" field.
	DefaultTemperature int
	// DefaultMaxTokens holds the default value on creation for the "max_tokens" field.
	DefaultMaxTokens int
	// DefaultEnableMemory holds the default value on creation for the "enable_memory" field.
	DefaultEnableMemory bool
	// DefaultEnableTools holds the default value on creation for the "enable_tools" field.
	DefaultEnableTools bool
	// DefaultEnableLearning holds the default value on creation for the "enable_learning" field.
	DefaultEnableLearning bool
	// DefaultEnableCollaboration holds the default value on creation for the "enable_collaboration" field.
	DefaultEnableCollaboration bool
	// DefaultMaxIterations holds the default value on creation for the "max_iterations" field.
	DefaultMaxIterations int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusArchived Status = "archived"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusInactive, StatusArchived:
		return nil
	default:
		return fmt.Errorf("agent: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Agent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByTemperature orders the results by the temperature field.
func ByTemperature(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemperature, opts...).ToFunc()
}

// ByMaxTokens orders the results by the max_tokens field.
func ByMaxTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxTokens, opts...).ToFunc()
}

// BySystemPrompt orders the results by the system_prompt field.
func BySystemPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSystemPrompt, opts...).ToFunc()
}

// ByInstructions orders the results by the instructions field.
func ByInstructions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstructions, opts...).ToFunc()
}

// ByEnableMemory orders the results by the enable_memory field.
func ByEnableMemory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnableMemory, opts...).ToFunc()
}

// ByEnableTools orders the results by the enable_tools field.
func ByEnableTools(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnableTools, opts...).ToFunc()
}

// ByEnableLearning orders the results by the enable_learning field.
func ByEnableLearning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnableLearning, opts...).ToFunc()
}

// ByEnableCollaboration orders the results by the enable_collaboration field.
func ByEnableCollaboration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnableCollaboration, opts...).ToFunc()
}

// ByMaxIterations orders the results by the max_iterations field.
func ByMaxIterations(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxIterations, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
