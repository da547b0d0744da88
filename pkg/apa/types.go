// Package apa defines the core domain types shared by the reasoning engine,
// safety engine, context manager, and agent executor.
package apa

import "time"

// Action is a single step the agent decided to take: a tool invocation or the
// terminal "finish" action.
type Action struct {
	Type        string         `json:"type"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`

	// Result carries the final answer when Type is ActionFinish.
	Result map[string]any `json:"result,omitempty"`
}

// ActionFinish is the terminal action type that ends a run.
const ActionFinish = "finish"

// IsFinish reports whether the action terminates the run.
func (a *Action) IsFinish() bool {
	return a != nil && a.Type == ActionFinish
}

// Observation is the outcome of executing (or blocking) an action.
type Observation map[string]any

// Task is the unit of work handed to the executor.
type Task struct {
	ID          string         `json:"id"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}

// MemoryEntry is a retrieved memory surfaced into the reasoning context.
type MemoryEntry struct {
	ID         string         `json:"id"`
	MemoryType string         `json:"memory_type"`
	Content    string         `json:"content"`
	Score      float64        `json:"score,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// HistoryEntry is one action/observation pair folded into the context.
type HistoryEntry struct {
	Action      *Action     `json:"action"`
	Observation Observation `json:"observation"`
	Timestamp   time.Time   `json:"timestamp"`
}

// Context is the working context assembled for one reasoning call and
// updated after every step.
type Context struct {
	TaskID      string         `json:"task_id"`
	AgentID     string         `json:"agent_id"`
	ExecutionID string         `json:"execution_id"`
	Task        Task           `json:"task"`
	Timestamp   time.Time      `json:"timestamp"`
	Memories    []MemoryEntry  `json:"relevant_memories,omitempty"`
	Knowledge   map[string]any `json:"shared_knowledge,omitempty"`
	History     []HistoryEntry `json:"action_history,omitempty"`
}

// ReasoningOutput is one parsed step from the reasoning engine.
type ReasoningOutput struct {
	Thought    string  `json:"thought"`
	Action     *Action `json:"action"`
	Reflection string  `json:"reflection,omitempty"`
	TokensUsed int     `json:"tokens_used"`
	LatencyMS  int64   `json:"latency_ms"`
}

// Run status values carried on ExecutionResult. These describe how the loop
// ended; the executions table has its own (overlapping) status enum.
const (
	StatusCompleted = "completed"
	StatusBlocked   = "blocked"
	StatusTimeout   = "timeout"
	StatusError     = "error"
	StatusCancelled = "cancelled"
)

// ExecutionResult is the terminal outcome of a run. Intermediate state
// (reasoning traces, memories, HITL rows) is written progressively during the
// run; this only carries the ending.
type ExecutionResult struct {
	ExecutionID string         `json:"execution_id"`
	Status      string         `json:"status"`
	Output      map[string]any `json:"output,omitempty"`
	Iterations  int            `json:"iterations"`
	Reason      string         `json:"reason,omitempty"`
}

// Risk levels assigned to actions by the safety engine.
const (
	RiskLow      = "low"
	RiskMedium   = "medium"
	RiskHigh     = "high"
	RiskCritical = "critical"
)
