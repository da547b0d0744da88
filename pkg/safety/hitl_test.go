package safety

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apa-platform/apacore/ent"
	"github.com/apa-platform/apacore/ent/hitlrequest"
	"github.com/apa-platform/apacore/pkg/apa"
	"github.com/apa-platform/apacore/pkg/config"
	"github.com/apa-platform/apacore/pkg/services"
	testdb "github.com/apa-platform/apacore/test/database"
)

func newTestHITL(t *testing.T, cfg *config.SafetyConfig) (*HITL, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	if cfg == nil {
		cfg = &config.SafetyConfig{
			ApprovalTimeout:  time.Hour,
			HITLMode:         config.HITLModeWait,
			HITLPollInterval: 20 * time.Millisecond,
		}
	}
	return NewHITL(client.Client, cfg, slog.New(slog.NewTextHandler(io.Discard, nil))), client.Client
}

func createHITLAgent(t *testing.T, client *ent.Client, id string) *ent.Agent {
	t.Helper()
	a, err := client.Agent.Create().
		SetID(id).
		SetName("hitl agent").
		Save(context.Background())
	require.NoError(t, err)
	return a
}

func TestHITL_RespondApprove(t *testing.T) {
	h, client := newTestHITL(t, nil)
	ctx := context.Background()
	agent := createHITLAgent(t, client, "agent-1")

	req, err := h.Request(ctx, agent, "run-1", &apa.Action{Type: "data_deletion"}, "needs approval", apa.RiskCritical)
	require.NoError(t, err)
	assert.Equal(t, hitlrequest.StatusPending, req.Status)
	assert.Equal(t, "action_approval", req.RequestType)

	updated, err := h.Respond(ctx, req.ID, "user-7", "approve", "looks fine")
	require.NoError(t, err)
	assert.Equal(t, hitlrequest.StatusApproved, updated.Status)
	require.NotNil(t, updated.Decision)
	assert.Equal(t, "approve", *updated.Decision)
	require.NotNil(t, updated.RespondedBy)
	assert.Equal(t, "user-7", *updated.RespondedBy)
	assert.NotNil(t, updated.RespondedAt)
	assert.Equal(t, "looks fine", updated.Feedback)
}

func TestHITL_RespondReject(t *testing.T) {
	h, client := newTestHITL(t, nil)
	ctx := context.Background()
	agent := createHITLAgent(t, client, "agent-1")

	req, err := h.Request(ctx, agent, "run-1", &apa.Action{Type: "user_communication"}, "needs approval", apa.RiskHigh)
	require.NoError(t, err)

	updated, err := h.Respond(ctx, req.ID, "user-7", "reject", "")
	require.NoError(t, err)
	assert.Equal(t, hitlrequest.StatusRejected, updated.Status)
}

func TestHITL_RespondNonPendingFails(t *testing.T) {
	h, client := newTestHITL(t, nil)
	ctx := context.Background()
	agent := createHITLAgent(t, client, "agent-1")

	req, err := h.Request(ctx, agent, "run-1", &apa.Action{Type: "data_deletion"}, "needs approval", apa.RiskCritical)
	require.NoError(t, err)

	_, err = h.Respond(ctx, req.ID, "user-7", "approve", "")
	require.NoError(t, err)

	_, err = h.Respond(ctx, req.ID, "user-8", "reject", "")
	assert.True(t, errors.Is(err, services.ErrInvalidState))
}

func TestHITL_RespondNotFound(t *testing.T) {
	h, _ := newTestHITL(t, nil)

	_, err := h.Respond(context.Background(), "no-such-request", "user-7", "approve", "")
	assert.True(t, errors.Is(err, services.ErrNotFound))
}

func TestHITL_RespondRequiresDecision(t *testing.T) {
	h, _ := newTestHITL(t, nil)

	_, err := h.Respond(context.Background(), "whatever", "user-7", "", "")
	assert.True(t, services.IsValidationError(err))
}

func TestHITL_WaitForDecisionUnblocksOnRespond(t *testing.T) {
	h, client := newTestHITL(t, nil)
	ctx := context.Background()
	agent := createHITLAgent(t, client, "agent-1")

	req, err := h.Request(ctx, agent, "run-1", &apa.Action{Type: "data_deletion"}, "needs approval", apa.RiskCritical)
	require.NoError(t, err)

	go func() {
		time.Sleep(60 * time.Millisecond)
		_, _ = h.Respond(ctx, req.ID, "user-7", "approve", "")
	}()

	decision, err := h.WaitForDecision(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, string(hitlrequest.StatusApproved), decision.Status)
	assert.Equal(t, "approve", decision.Decision)
}

func TestHITL_WaitForDecisionTimeout(t *testing.T) {
	cfg := &config.SafetyConfig{
		ApprovalTimeout:  80 * time.Millisecond,
		HITLMode:         config.HITLModeWait,
		HITLPollInterval: 20 * time.Millisecond,
	}
	h, client := newTestHITL(t, cfg)
	ctx := context.Background()
	agent := createHITLAgent(t, client, "agent-1")

	req, err := h.Request(ctx, agent, "run-1", &apa.Action{Type: "data_deletion"}, "needs approval", apa.RiskCritical)
	require.NoError(t, err)

	decision, err := h.WaitForDecision(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, string(hitlrequest.StatusTimeout), decision.Status)
	assert.Equal(t, "rejected", decision.Decision)

	stored, err := client.HITLRequest.Get(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, hitlrequest.StatusTimeout, stored.Status)
	assert.NotNil(t, stored.RespondedAt)
}

func TestHITL_AutoRejectMode(t *testing.T) {
	cfg := &config.SafetyConfig{
		ApprovalTimeout:  time.Hour,
		HITLMode:         config.HITLModeAutoReject,
		HITLPollInterval: time.Second,
	}
	h, client := newTestHITL(t, cfg)
	ctx := context.Background()
	agent := createHITLAgent(t, client, "agent-1")

	decision, err := h.RequestHumanApproval(ctx, agent, "run-1", &apa.Action{Type: "financial_transaction"}, "needs approval", apa.RiskCritical)
	require.NoError(t, err)
	assert.Equal(t, "rejected", decision.Decision)
	assert.Equal(t, string(hitlrequest.StatusRejected), decision.Status)

	stored, err := client.HITLRequest.Get(ctx, decision.RequestID)
	require.NoError(t, err)
	assert.Equal(t, hitlrequest.StatusRejected, stored.Status)
	require.NotNil(t, stored.RespondedBy)
	assert.Equal(t, autoRejectResponder, *stored.RespondedBy)
}

func TestHITL_PendingRequestsAndStats(t *testing.T) {
	h, client := newTestHITL(t, nil)
	ctx := context.Background()
	agent := createHITLAgent(t, client, "agent-1")

	first, err := h.Request(ctx, agent, "run-1", &apa.Action{Type: "data_deletion"}, "r1", apa.RiskCritical)
	require.NoError(t, err)
	_, err = h.Request(ctx, agent, "run-2", &apa.Action{Type: "user_communication"}, "r2", apa.RiskHigh)
	require.NoError(t, err)
	_, err = h.Respond(ctx, first.ID, "user-7", "approve", "")
	require.NoError(t, err)

	pending, err := h.PendingRequests(ctx, 10, "")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "run-2", pending[0].RunID)

	highOnly, err := h.PendingRequests(ctx, 10, apa.RiskHigh)
	require.NoError(t, err)
	assert.Len(t, highOnly, 1)

	criticalPending, err := h.PendingRequests(ctx, 10, apa.RiskCritical)
	require.NoError(t, err)
	assert.Empty(t, criticalPending)

	stats, err := h.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.ByStatus[string(hitlrequest.StatusPending)])
	assert.Equal(t, 1, stats.ByStatus[string(hitlrequest.StatusApproved)])
	assert.Equal(t, 1, stats.ByRisk[apa.RiskCritical])
	assert.Equal(t, 1, stats.ByRisk[apa.RiskHigh])
}

// Approval coordination is row-based, so an operator responding through a
// different connection pool (another pod) must unblock a waiting executor.
func TestHITL_RespondAcrossPools(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	executorDB := shared.NewClient(t)
	operatorDB := shared.NewClient(t)

	cfg := &config.SafetyConfig{
		ApprovalTimeout:  time.Hour,
		HITLMode:         config.HITLModeWait,
		HITLPollInterval: 20 * time.Millisecond,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	executorHITL := NewHITL(executorDB.Client, cfg, logger)
	operatorHITL := NewHITL(operatorDB.Client, cfg, logger)

	ctx := context.Background()
	agent := createHITLAgent(t, executorDB.Client, "agent-1")

	req, err := executorHITL.Request(ctx, agent, "run-1", &apa.Action{Type: "data_deletion"}, "needs approval", apa.RiskCritical)
	require.NoError(t, err)

	go func() {
		time.Sleep(60 * time.Millisecond)
		_, _ = operatorHITL.Respond(ctx, req.ID, "operator-9", "approve", "reviewed")
	}()

	decision, err := executorHITL.WaitForDecision(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, string(hitlrequest.StatusApproved), decision.Status)
	assert.Equal(t, "approve", decision.Decision)

	// Both pools see the same resolved row.
	stored, err := operatorDB.Client.HITLRequest.Get(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, hitlrequest.StatusApproved, stored.Status)
	require.NotNil(t, stored.RespondedBy)
	assert.Equal(t, "operator-9", *stored.RespondedBy)
}
