// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// Execution is the predicate function for execution builders.
type Execution func(*sql.Selector)

// HITLRequest is the predicate function for hitlrequest builders.
type HITLRequest func(*sql.Selector)

// LearningFeedback is the predicate function for learningfeedback builders.
type LearningFeedback func(*sql.Selector)

// MemoryItem is the predicate function for memoryitem builders.
type MemoryItem func(*sql.Selector)

// ReasoningTrace is the predicate function for reasoningtrace builders.
type ReasoningTrace func(*sql.Selector)

// Tool is the predicate function for tool builders.
type Tool func(*sql.Selector)
