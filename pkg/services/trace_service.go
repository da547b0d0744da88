package services

import (
	"context"
	"fmt"

	"github.com/apa-platform/apacore/ent"
	"github.com/apa-platform/apacore/ent/reasoningtrace"
	"github.com/google/uuid"
)

// TraceService manages reasoning trace rows. Traces are append-only: one row
// per loop iteration with contiguous step indexes starting at 0.
type TraceService struct {
	client *ent.Client
}

// NewTraceService creates a new trace service.
func NewTraceService(client *ent.Client) *TraceService {
	return &TraceService{client: client}
}

// AppendInput holds one reasoning step to persist.
type AppendInput struct {
	RunID       string
	AgentID     string
	StepIndex   int
	Thought     string
	Action      map[string]any
	Observation map[string]any
	Reflection  string
	TokensUsed  int
	LatencyMS   int
}

// Append persists a single reasoning step. The unique (run_id, step_index)
// index rejects duplicate step writes.
func (s *TraceService) Append(ctx context.Context, in AppendInput) (*ent.ReasoningTrace, error) {
	if in.RunID == "" {
		return nil, NewValidationError("run_id", "run id is required")
	}
	if in.StepIndex < 0 {
		return nil, NewValidationError("step_index", "step index must be non-negative")
	}
	if in.Action == nil {
		return nil, NewValidationError("action", "action is required")
	}

	q := s.client.ReasoningTrace.Create().
		SetID(uuid.NewString()).
		SetRunID(in.RunID).
		SetAgentID(in.AgentID).
		SetStepIndex(in.StepIndex).
		SetThought(in.Thought).
		SetAction(in.Action).
		SetTokensUsed(in.TokensUsed).
		SetLatencyMs(in.LatencyMS)
	if in.Observation != nil {
		q = q.SetObservation(in.Observation)
	}
	if in.Reflection != "" {
		q = q.SetReflection(in.Reflection)
	}

	trace, err := q.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("step %d of run %s: %w", in.StepIndex, in.RunID, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to append trace: %w", err)
	}
	return trace, nil
}

// ListByRun returns the trace for a run ordered by step index.
func (s *TraceService) ListByRun(ctx context.Context, runID string, limit int) ([]*ent.ReasoningTrace, error) {
	q := s.client.ReasoningTrace.Query().
		Where(reasoningtrace.RunIDEQ(runID)).
		Order(ent.Asc(reasoningtrace.FieldStepIndex))
	if limit > 0 {
		q = q.Limit(limit)
	}
	traces, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list traces: %w", err)
	}
	return traces, nil
}

// ListByAgent returns recent traces across all of an agent's runs.
func (s *TraceService) ListByAgent(ctx context.Context, agentID string, limit int) ([]*ent.ReasoningTrace, error) {
	if limit <= 0 {
		limit = 100
	}
	traces, err := s.client.ReasoningTrace.Query().
		Where(reasoningtrace.AgentIDEQ(agentID)).
		Order(ent.Desc(reasoningtrace.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agent traces: %w", err)
	}
	return traces, nil
}
