// Code generated by ent, DO NOT EDIT.

package learningfeedback

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the learningfeedback type in the database.
	Label = "learning_feedback"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "feedback_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldTraceID holds the string denoting the trace_id field in the database.
	FieldTraceID = "trace_id"
	// FieldFeedbackType holds the string denoting the feedback_type field in the database.
	FieldFeedbackType = "feedback_type"
	// FieldTaskDescription holds the string denoting the task_description field in the database.
	FieldTaskDescription = "task_description"
	// FieldActionTaken holds the string denoting the action_taken field in the database.
	FieldActionTaken = "action_taken"
	// FieldOutcome holds the string denoting the outcome field in the database.
	FieldOutcome = "outcome"
	// FieldSuccess holds the string denoting the success field in the database.
	FieldSuccess = "success"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldImprovementSuggestions holds the string denoting the improvement_suggestions field in the database.
	FieldImprovementSuggestions = "improvement_suggestions"
	// FieldFeedbackMetadata holds the string denoting the feedback_metadata field in the database.
	FieldFeedbackMetadata = "feedback_metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the learningfeedback in the database.
	Table = "learning_feedback"
)

// Columns holds all SQL columns for learningfeedback fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldRunID,
	FieldTraceID,
	FieldFeedbackType,
	FieldTaskDescription,
	FieldActionTaken,
	FieldOutcome,
	FieldSuccess,
	FieldErrorMessage,
	FieldImprovementSuggestions,
	FieldFeedbackMetadata,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the LearningFeedback queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByTraceID orders the results by the trace_id field.
func ByTraceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTraceID, opts...).ToFunc()
}

// ByFeedbackType orders the results by the feedback_type field.
func ByFeedbackType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeedbackType, opts...).ToFunc()
}

// ByTaskDescription orders the results by the task_description field.
func ByTaskDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskDescription, opts...).ToFunc()
}

// ByOutcome orders the results by the outcome field.
func ByOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcome, opts...).ToFunc()
}

// BySuccess orders the results by the success field.
func BySuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccess, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByImprovementSuggestions orders the results by the improvement_suggestions field.
func ByImprovementSuggestions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImprovementSuggestions, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
