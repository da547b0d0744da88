package api

import (
	"time"

	"github.com/apa-platform/apacore/ent"
	"github.com/apa-platform/apacore/pkg/apa"
)

// reasonResponse wraps the terminal outcome of a synchronous run.
type reasonResponse struct {
	AgentID     string               `json:"agent_id"`
	ExecutionID string               `json:"execution_id"`
	Result      *apa.ExecutionResult `json:"result"`
}

type traceEntry struct {
	ID          string         `json:"id"`
	RunID       string         `json:"run_id"`
	StepIndex   int            `json:"step_index"`
	Thought     string         `json:"thought"`
	Action      map[string]any `json:"action"`
	Observation map[string]any `json:"observation,omitempty"`
	Reflection  string         `json:"reflection,omitempty"`
	TokensUsed  int            `json:"tokens_used"`
	LatencyMS   int            `json:"latency_ms"`
	CreatedAt   time.Time      `json:"created_at"`
}

type traceListResponse struct {
	AgentID string       `json:"agent_id"`
	RunID   string       `json:"run_id,omitempty"`
	Count   int          `json:"count"`
	Traces  []traceEntry `json:"traces"`
}

func toTraceEntry(t *ent.ReasoningTrace) traceEntry {
	return traceEntry{
		ID:          t.ID,
		RunID:       t.RunID,
		StepIndex:   t.StepIndex,
		Thought:     t.Thought,
		Action:      t.Action,
		Observation: t.Observation,
		Reflection:  t.Reflection,
		TokensUsed:  t.TokensUsed,
		LatencyMS:   t.LatencyMs,
		CreatedAt:   t.CreatedAt,
	}
}

type memoryEntry struct {
	ID              string     `json:"id"`
	Type            string     `json:"type"`
	Content         string     `json:"content"`
	ImportanceScore *float64   `json:"importance_score,omitempty"`
	AccessCount     int        `json:"access_count"`
	LastAccessedAt  *time.Time `json:"last_accessed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type memoryListResponse struct {
	AgentID    string        `json:"agent_id"`
	MemoryType string        `json:"memory_type,omitempty"`
	Count      int           `json:"count"`
	Memories   []memoryEntry `json:"memories"`
}

func toMemoryEntry(m *ent.MemoryItem) memoryEntry {
	return memoryEntry{
		ID:              m.ID,
		Type:            string(m.MemoryType),
		Content:         m.Content,
		ImportanceScore: m.ImportanceScore,
		AccessCount:     m.AccessCount,
		LastAccessedAt:  m.LastAccessedAt,
		CreatedAt:       m.CreatedAt,
	}
}

type learnResponse struct {
	FeedbackID string `json:"feedback_id"`
	AgentID    string `json:"agent_id"`
	Status     string `json:"status"`
}

type hitlEntry struct {
	ID            string         `json:"id"`
	RunID         string         `json:"run_id"`
	AgentID       string         `json:"agent_id"`
	Reason        string         `json:"reason"`
	ActionDetails map[string]any `json:"action_details"`
	RiskLevel     string         `json:"risk_level"`
	Status        string         `json:"status"`
	Decision      string         `json:"decision,omitempty"`
	Feedback      string         `json:"feedback,omitempty"`
	RequestedAt   time.Time      `json:"requested_at"`
	RespondedAt   *time.Time     `json:"responded_at,omitempty"`
	RespondedBy   string         `json:"responded_by,omitempty"`
}

func toHITLEntry(r *ent.HITLRequest) hitlEntry {
	e := hitlEntry{
		ID:            r.ID,
		RunID:         r.RunID,
		AgentID:       r.AgentID,
		Reason:        r.Reason,
		ActionDetails: r.ActionDetails,
		RiskLevel:     string(r.RiskLevel),
		Status:        string(r.Status),
		Feedback:      r.Feedback,
		RequestedAt:   r.RequestedAt,
		RespondedAt:   r.RespondedAt,
	}
	if r.Decision != nil {
		e.Decision = *r.Decision
	}
	if r.RespondedBy != nil {
		e.RespondedBy = *r.RespondedBy
	}
	return e
}
