package services

import (
	"context"
	"fmt"

	"github.com/apa-platform/apacore/ent"
	"github.com/apa-platform/apacore/ent/learningfeedback"
	"github.com/google/uuid"
)

// FeedbackService records learning feedback emitted at run boundaries and
// submitted manually through the API.
type FeedbackService struct {
	client *ent.Client
}

// NewFeedbackService creates a new feedback service.
func NewFeedbackService(client *ent.Client) *FeedbackService {
	return &FeedbackService{client: client}
}

// FeedbackInput holds one feedback record.
type FeedbackInput struct {
	AgentID         string
	RunID           string
	TraceID         string
	FeedbackType    string
	TaskDescription string
	ActionTaken     map[string]any
	Outcome         string
	Success         bool
	ErrorMessage    string
	Suggestions     string
	Metadata        map[string]any
}

// Record persists a feedback row.
func (s *FeedbackService) Record(ctx context.Context, in FeedbackInput) (*ent.LearningFeedback, error) {
	if in.AgentID == "" {
		return nil, NewValidationError("agent_id", "agent id is required")
	}
	if in.FeedbackType == "" {
		return nil, NewValidationError("feedback_type", "feedback type is required")
	}
	if in.Outcome == "" {
		return nil, NewValidationError("outcome", "outcome is required")
	}

	q := s.client.LearningFeedback.Create().
		SetID(uuid.NewString()).
		SetAgentID(in.AgentID).
		SetFeedbackType(in.FeedbackType).
		SetTaskDescription(in.TaskDescription).
		SetOutcome(in.Outcome).
		SetSuccess(in.Success).
		SetImprovementSuggestions(in.Suggestions).
		SetFeedbackMetadata(in.Metadata)
	if in.RunID != "" {
		q = q.SetRunID(in.RunID)
	}
	if in.TraceID != "" {
		q = q.SetTraceID(in.TraceID)
	}
	if in.ActionTaken != nil {
		q = q.SetActionTaken(in.ActionTaken)
	}
	if in.ErrorMessage != "" {
		q = q.SetErrorMessage(in.ErrorMessage)
	}

	fb, err := q.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record feedback: %w", err)
	}
	return fb, nil
}

// ListByAgent returns recent feedback for an agent.
func (s *FeedbackService) ListByAgent(ctx context.Context, agentID string, limit int) ([]*ent.LearningFeedback, error) {
	if limit <= 0 {
		limit = 50
	}
	items, err := s.client.LearningFeedback.Query().
		Where(learningfeedback.AgentIDEQ(agentID)).
		Order(ent.Desc(learningfeedback.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return items, nil
}
