package safety

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/apa-platform/apacore/ent"
	"github.com/apa-platform/apacore/ent/hitlrequest"
	"github.com/apa-platform/apacore/pkg/apa"
	"github.com/apa-platform/apacore/pkg/config"
	"github.com/apa-platform/apacore/pkg/services"
)

// autoRejectResponder marks decisions made by the engine itself rather than
// a human operator.
const autoRejectResponder = "system:auto-reject"

// Decision is the outcome of one approval gate as seen by the executor.
type Decision struct {
	RequestID string `json:"request_id"`
	Status    string `json:"status"`
	Decision  string `json:"decision"`
	Message   string `json:"message,omitempty"`
}

// HITL implements the human-in-the-loop approval protocol over the
// hitl_requests table. A run blocks on WaitForDecision; the row is the only
// coordination channel, so approvals work across pods.
type HITL struct {
	client *ent.Client
	cfg    *config.SafetyConfig
	logger *slog.Logger
}

// NewHITL creates the HITL protocol handler.
func NewHITL(client *ent.Client, cfg *config.SafetyConfig, logger *slog.Logger) *HITL {
	return &HITL{
		client: client,
		cfg:    cfg,
		logger: logger.With("component", "hitl"),
	}
}

// Request creates a pending approval row for an action.
func (h *HITL) Request(ctx context.Context, agent *ent.Agent, runID string, action *apa.Action, reason, riskLevel string) (*ent.HITLRequest, error) {
	details := map[string]any{
		"type":       action.Type,
		"parameters": action.Parameters,
	}
	req, err := h.client.HITLRequest.Create().
		SetID(uuid.NewString()).
		SetRunID(runID).
		SetAgentID(agent.ID).
		SetReason(reason).
		SetActionDetails(details).
		SetRiskLevel(hitlrequest.RiskLevel(riskLevel)).
		SetRequestMetadata(map[string]any{}).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create hitl request: %w", err)
	}
	h.logger.Info("HITL approval requested",
		"request_id", req.ID, "run_id", runID, "agent_id", agent.ID,
		"action_type", action.Type, "risk_level", riskLevel)
	return req, nil
}

// RequestHumanApproval creates the approval row and resolves it according to
// the configured mode: "wait" blocks until a human responds or the approval
// timeout elapses; "autoreject" answers immediately so non-interactive
// deployments stay deterministic.
func (h *HITL) RequestHumanApproval(ctx context.Context, agent *ent.Agent, runID string, action *apa.Action, reason, riskLevel string) (*Decision, error) {
	req, err := h.Request(ctx, agent, runID, action, reason, riskLevel)
	if err != nil {
		return nil, err
	}

	if h.cfg.HITLMode == config.HITLModeAutoReject {
		return h.autoReject(ctx, req)
	}
	return h.WaitForDecision(ctx, req.ID)
}

func (h *HITL) autoReject(ctx context.Context, req *ent.HITLRequest) (*Decision, error) {
	now := time.Now()
	_, err := h.client.HITLRequest.Update().
		Where(hitlrequest.IDEQ(req.ID), hitlrequest.StatusEQ(hitlrequest.StatusPending)).
		SetStatus(hitlrequest.StatusRejected).
		SetDecision("rejected").
		SetRespondedAt(now).
		SetRespondedBy(autoRejectResponder).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to auto-reject hitl request: %w", err)
	}
	return &Decision{
		RequestID: req.ID,
		Status:    string(hitlrequest.StatusRejected),
		Decision:  "rejected",
		Message:   "no operator channel configured, auto-rejected",
	}, nil
}

// WaitForDecision polls the approval row until it leaves pending or the
// approval timeout elapses. Timeout marks the row conditionally (a human
// response that lands first wins) and yields a rejected decision.
func (h *HITL) WaitForDecision(ctx context.Context, requestID string) (*Decision, error) {
	deadline := time.Now().Add(h.cfg.ApprovalTimeout)
	ticker := time.NewTicker(h.cfg.HITLPollInterval)
	defer ticker.Stop()

	for {
		req, err := h.client.HITLRequest.Get(ctx, requestID)
		if err != nil {
			return nil, fmt.Errorf("failed to poll hitl request: %w", err)
		}
		if req.Status != hitlrequest.StatusPending {
			decision := ""
			if req.Decision != nil {
				decision = *req.Decision
			}
			if req.Status == hitlrequest.StatusTimeout {
				decision = "rejected"
			}
			return &Decision{
				RequestID: req.ID,
				Status:    string(req.Status),
				Decision:  decision,
			}, nil
		}

		if time.Now().After(deadline) {
			return h.timeoutRequest(ctx, requestID)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (h *HITL) timeoutRequest(ctx context.Context, requestID string) (*Decision, error) {
	n, err := h.client.HITLRequest.Update().
		Where(hitlrequest.IDEQ(requestID), hitlrequest.StatusEQ(hitlrequest.StatusPending)).
		SetStatus(hitlrequest.StatusTimeout).
		SetRespondedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to time out hitl request: %w", err)
	}
	if n == 0 {
		// A response landed between the last poll and the timeout write.
		return h.WaitForDecision(ctx, requestID)
	}
	h.logger.Warn("HITL request timed out", "request_id", requestID)
	return &Decision{
		RequestID: requestID,
		Status:    string(hitlrequest.StatusTimeout),
		Decision:  "rejected",
		Message:   "approval timed out",
	}, nil
}

// Respond records a human decision on a pending request. "approve" maps to
// approved; anything else rejects. Responding to a non-pending request
// returns ErrInvalidState.
func (h *HITL) Respond(ctx context.Context, requestID, userID, decision, feedback string) (*ent.HITLRequest, error) {
	if decision == "" {
		return nil, services.NewValidationError("decision", "decision is required")
	}

	status := hitlrequest.StatusRejected
	if decision == "approve" {
		status = hitlrequest.StatusApproved
	}

	q := h.client.HITLRequest.Update().
		Where(hitlrequest.IDEQ(requestID), hitlrequest.StatusEQ(hitlrequest.StatusPending)).
		SetStatus(status).
		SetDecision(decision).
		SetRespondedAt(time.Now()).
		SetRespondedBy(userID)
	if feedback != "" {
		q = q.SetFeedback(feedback)
	}
	n, err := q.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to respond to hitl request: %w", err)
	}
	if n == 0 {
		req, err := h.client.HITLRequest.Get(ctx, requestID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, fmt.Errorf("hitl request %s: %w", requestID, services.ErrNotFound)
			}
			return nil, fmt.Errorf("failed to get hitl request: %w", err)
		}
		return nil, fmt.Errorf("hitl request %s is %s: %w", requestID, req.Status, services.ErrInvalidState)
	}
	return h.client.HITLRequest.Get(ctx, requestID)
}

// PendingRequests lists pending approval requests, newest first, optionally
// filtered by risk level.
func (h *HITL) PendingRequests(ctx context.Context, limit int, riskLevel string) ([]*ent.HITLRequest, error) {
	if limit <= 0 {
		limit = 50
	}
	q := h.client.HITLRequest.Query().
		Where(hitlrequest.StatusEQ(hitlrequest.StatusPending))
	if riskLevel != "" {
		q = q.Where(hitlrequest.RiskLevelEQ(hitlrequest.RiskLevel(riskLevel)))
	}
	reqs, err := q.
		Order(ent.Desc(hitlrequest.FieldRequestedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending hitl requests: %w", err)
	}
	return reqs, nil
}

// PurgeResolvedRequests deletes resolved approval rows whose response is
// older than the retention window. Pending rows are never touched.
func (h *HITL) PurgeResolvedRequests(ctx context.Context, retention time.Duration) (int, error) {
	cutoff := time.Now().Add(-retention)
	n, err := h.client.HITLRequest.Delete().
		Where(
			hitlrequest.StatusNEQ(hitlrequest.StatusPending),
			hitlrequest.RespondedAtNotNil(),
			hitlrequest.RespondedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge resolved hitl requests: %w", err)
	}
	return n, nil
}

// Stats holds approval-queue counters.
type Stats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
	ByRisk   map[string]int `json:"by_risk"`
}

// GetStats aggregates request counts by status and risk level.
func (h *HITL) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{
		ByStatus: make(map[string]int),
		ByRisk:   make(map[string]int),
	}

	var byStatus []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := h.client.HITLRequest.Query().
		GroupBy(hitlrequest.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &byStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate hitl requests by status: %w", err)
	}
	for _, row := range byStatus {
		stats.ByStatus[row.Status] = row.Count
		stats.Total += row.Count
	}

	var byRisk []struct {
		RiskLevel string `json:"risk_level"`
		Count     int    `json:"count"`
	}
	err = h.client.HITLRequest.Query().
		GroupBy(hitlrequest.FieldRiskLevel).
		Aggregate(ent.Count()).
		Scan(ctx, &byRisk)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate hitl requests by risk: %w", err)
	}
	for _, row := range byRisk {
		stats.ByRisk[row.RiskLevel] = row.Count
	}

	return stats, nil
}
