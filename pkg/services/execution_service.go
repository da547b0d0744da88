package services

import (
	"context"
	"fmt"
	"time"

	"github.com/apa-platform/apacore/ent"
	"github.com/apa-platform/apacore/ent/execution"
	"github.com/apa-platform/apacore/ent/reasoningtrace"
	"github.com/google/uuid"
)

// ExecutionService manages execution run rows. An execution is terminal once
// it reaches completed, failed, cancelled, or timeout; terminal transitions
// happen exactly once.
type ExecutionService struct {
	client *ent.Client
}

// NewExecutionService creates a new execution service.
func NewExecutionService(client *ent.Client) *ExecutionService {
	return &ExecutionService{client: client}
}

// CreateInput holds the fields for creating an execution.
type CreateInput struct {
	ID       string // optional; generated when empty
	AgentID  string
	Input    map[string]any
	Metadata map[string]any
}

func (in *CreateInput) validate() error {
	if in.AgentID == "" {
		return NewValidationError("agent_id", "agent id is required")
	}
	if in.Input == nil {
		return NewValidationError("input", "input is required")
	}
	return nil
}

// Create inserts a pending execution for asynchronous pickup by the worker
// pool.
func (s *ExecutionService) Create(ctx context.Context, in CreateInput) (*ent.Execution, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}
	exec, err := s.client.Execution.Create().
		SetID(id).
		SetAgentID(in.AgentID).
		SetInput(in.Input).
		SetExecutionMetadata(in.Metadata).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("execution %s: %w", id, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create execution: %w", err)
	}
	return exec, nil
}

// CreateRunning inserts an execution already claimed by podID with status
// running. Used by the synchronous request path so queue workers never see
// the row; ownership is structural rather than locked.
func (s *ExecutionService) CreateRunning(ctx context.Context, in CreateInput, podID string) (*ent.Execution, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}
	now := time.Now()
	exec, err := s.client.Execution.Create().
		SetID(id).
		SetAgentID(in.AgentID).
		SetInput(in.Input).
		SetExecutionMetadata(in.Metadata).
		SetStatus(execution.StatusRunning).
		SetPodID(podID).
		SetStartedAt(now).
		SetLastInteractionAt(now).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("execution %s: %w", id, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create execution: %w", err)
	}
	return exec, nil
}

// Get returns an execution by ID.
func (s *ExecutionService) Get(ctx context.Context, id string) (*ent.Execution, error) {
	exec, err := s.client.Execution.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("execution %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get execution: %w", err)
	}
	return exec, nil
}

// Cancel requests cancellation of a pending or running execution.
//
// Pending rows transition to cancelled immediately. Running rows are updated
// to cancelled conditionally; the owning worker observes the status flip at
// the next iteration boundary and stops without re-transitioning. Returns
// ErrInvalidState when the execution is already terminal.
func (s *ExecutionService) Cancel(ctx context.Context, id string) error {
	exec, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	switch exec.Status {
	case execution.StatusPending:
		n, err := s.client.Execution.Update().
			Where(execution.IDEQ(id), execution.StatusEQ(execution.StatusPending)).
			SetStatus(execution.StatusCancelled).
			SetCompletedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to cancel pending execution: %w", err)
		}
		if n == 0 {
			// Claimed between read and update; fall through to the running path.
			return s.Cancel(ctx, id)
		}
		return nil
	case execution.StatusRunning:
		_, err := s.client.Execution.Update().
			Where(execution.IDEQ(id), execution.StatusEQ(execution.StatusRunning)).
			SetStatus(execution.StatusCancelled).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to cancel running execution: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("execution %s is %s: %w", id, exec.Status, ErrInvalidState)
	}
}

// IsCancelled reports whether the execution row has been flipped to cancelled.
// The executor polls this at iteration boundaries.
func (s *ExecutionService) IsCancelled(ctx context.Context, id string) (bool, error) {
	status, err := s.client.Execution.Query().
		Where(execution.IDEQ(id)).
		Select(execution.FieldStatus).
		String(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to read execution status: %w", err)
	}
	return status == string(execution.StatusCancelled), nil
}

// TerminalUpdate carries the final state of a run.
type TerminalUpdate struct {
	Status       execution.Status
	Output       map[string]any
	ErrorMessage string
}

// Complete writes the terminal status. The update is conditional on the row
// still being running so a concurrent cancel is never overwritten.
func (s *ExecutionService) Complete(ctx context.Context, id string, upd TerminalUpdate) error {
	q := s.client.Execution.Update().
		Where(execution.IDEQ(id), execution.StatusEQ(execution.StatusRunning)).
		SetStatus(upd.Status).
		SetCompletedAt(time.Now())
	if upd.Output != nil {
		q = q.SetOutput(upd.Output)
	}
	if upd.ErrorMessage != "" {
		q = q.SetErrorMessage(upd.ErrorMessage)
	}
	n, err := q.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete execution: %w", err)
	}
	if n == 0 {
		// Already terminal (typically cancelled mid-flight). Stamp
		// completed_at if the cancel path did not.
		_, err = s.client.Execution.Update().
			Where(execution.IDEQ(id), execution.CompletedAtIsNil()).
			SetCompletedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to stamp completion time: %w", err)
		}
	}
	return nil
}

// Heartbeat refreshes last_interaction_at for orphan detection.
func (s *ExecutionService) Heartbeat(ctx context.Context, id string) error {
	return s.client.Execution.UpdateOneID(id).
		SetLastInteractionAt(time.Now()).
		Exec(ctx)
}

// PurgeOldExecutions deletes terminal executions completed before the
// retention cutoff, together with their reasoning traces. Returns the number
// of executions removed. Safe to run from multiple pods.
func (s *ExecutionService) PurgeOldExecutions(ctx context.Context, retentionDays int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	ids, err := s.client.Execution.Query().
		Where(
			execution.StatusIn(
				execution.StatusCompleted,
				execution.StatusFailed,
				execution.StatusCancelled,
				execution.StatusTimeout,
			),
			execution.CompletedAtNotNil(),
			execution.CompletedAtLT(cutoff),
		).
		IDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query expired executions: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	// Traces first so a crash between the deletes never strands trace rows
	// pointing at a purged run.
	_, err = s.client.ReasoningTrace.Delete().
		Where(reasoningtrace.RunIDIn(ids...)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete traces for expired executions: %w", err)
	}

	n, err := s.client.Execution.Delete().
		Where(execution.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired executions: %w", err)
	}
	return n, nil
}

// ListByAgent returns the most recent executions for an agent.
func (s *ExecutionService) ListByAgent(ctx context.Context, agentID string, limit int) ([]*ent.Execution, error) {
	if limit <= 0 {
		limit = 50
	}
	execs, err := s.client.Execution.Query().
		Where(execution.AgentIDEQ(agentID)).
		Order(ent.Desc(execution.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list executions: %w", err)
	}
	return execs, nil
}
