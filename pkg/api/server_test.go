package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apa-platform/apacore/ent"
	"github.com/apa-platform/apacore/ent/agent"
	"github.com/apa-platform/apacore/ent/execution"
	"github.com/apa-platform/apacore/ent/hitlrequest"
	"github.com/apa-platform/apacore/ent/learningfeedback"
	"github.com/apa-platform/apacore/pkg/apa"
	"github.com/apa-platform/apacore/pkg/config"
	"github.com/apa-platform/apacore/pkg/database"
	"github.com/apa-platform/apacore/pkg/executor"
	"github.com/apa-platform/apacore/pkg/memory"
	"github.com/apa-platform/apacore/pkg/safety"
	"github.com/apa-platform/apacore/pkg/services"
	"github.com/apa-platform/apacore/pkg/tools"
	testdb "github.com/apa-platform/apacore/test/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// scriptedReasoner returns pre-planned steps in order, repeating the last.
type scriptedReasoner struct {
	steps []*apa.ReasoningOutput
	err   error
}

func (r *scriptedReasoner) Reason(_ context.Context, _ *ent.Agent, _ apa.Task, _ *apa.Context, _ []string, _ []*apa.Action, _ []apa.Observation) (*apa.ReasoningOutput, error) {
	if r.err != nil {
		return nil, r.err
	}
	if len(r.steps) == 0 {
		return nil, errors.New("scripted reasoner exhausted")
	}
	step := r.steps[0]
	if len(r.steps) > 1 {
		r.steps = r.steps[1:]
	}
	return step, nil
}

type apiHarness struct {
	client *database.Client
	server *Server
	router *gin.Engine
	hitl   *safety.HITL
}

func newAPIHarness(t *testing.T, reasoner executor.Reasoner) *apiHarness {
	t.Helper()
	client := testdb.NewTestClient(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	safetyCfg := &config.SafetyConfig{
		ApprovalTimeout:  time.Hour,
		HITLMode:         config.HITLModeWait,
		HITLPollInterval: 20 * time.Millisecond,
	}

	executions := services.NewExecutionService(client.Client)
	traces := services.NewTraceService(client.Client)
	memories := services.NewMemoryService(client.Client)
	feedback := services.NewFeedbackService(client.Client)
	hitl := safety.NewHITL(client.Client, safetyCfg, logger)
	contextMgr := memory.NewManager(memories, nil, logger)

	exec := executor.New(executor.Config{
		Executions: executions,
		Traces:     traces,
		Feedback:   feedback,
		Reasoner:   reasoner,
		Safety:     safety.NewEngine(logger),
		Approver:   hitl,
		ContextMgr: contextMgr,
		Tools:      tools.NewRegistry(services.NewToolService(client.Client)),
		Logger:     logger,
	})

	server := NewServer(ServerConfig{
		PodID:      "pod-api-test",
		DB:         client,
		Agents:     services.NewAgentService(client.Client),
		Executions: executions,
		Traces:     traces,
		Memories:   memories,
		Feedback:   feedback,
		HITL:       hitl,
		Executor:   exec,
		Logger:     logger,
	})

	return &apiHarness{
		client: client,
		server: server,
		router: server.Router(),
		hitl:   hitl,
	}
}

func (h *apiHarness) createAgent(t *testing.T, id string, mutate func(*ent.AgentCreate)) *ent.Agent {
	t.Helper()
	create := h.client.Agent.Create().
		SetID(id).
		SetName("api test agent")
	if mutate != nil {
		mutate(create)
	}
	a, err := create.Save(context.Background())
	require.NoError(t, err)
	return a
}

func (h *apiHarness) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func finishOutput(result map[string]any) *apa.ReasoningOutput {
	return &apa.ReasoningOutput{
		Thought:    "task is done",
		Action:     &apa.Action{Type: apa.ActionFinish, Result: result},
		Reflection: "done",
		TokensUsed: 10,
		LatencyMS:  5,
	}
}

func TestReasonEndpoint_Completes(t *testing.T) {
	h := newAPIHarness(t, &scriptedReasoner{steps: []*apa.ReasoningOutput{
		finishOutput(map[string]any{"answer": "42"}),
	}})
	h.createAgent(t, "agent-1", nil)

	rec := h.do(t, http.MethodPost, "/api/v1/agents/agent-1/reason", map[string]any{
		"description": "compute the answer",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, "agent-1", body["agent_id"])
	executionID, _ := body["execution_id"].(string)
	require.NotEmpty(t, executionID)

	result := body["result"].(map[string]any)
	assert.Equal(t, apa.StatusCompleted, result["status"])
	assert.Equal(t, float64(0), result["iterations"])
	assert.Equal(t, map[string]any{"answer": "42"}, result["output"])

	row, err := h.client.Execution.Get(context.Background(), executionID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusCompleted, row.Status)
	require.NotNil(t, row.PodID)
	assert.Equal(t, "pod-api-test", *row.PodID)
	assert.NotNil(t, row.CompletedAt)
}

func TestReasonEndpoint_ClientExecutionID(t *testing.T) {
	h := newAPIHarness(t, &scriptedReasoner{steps: []*apa.ReasoningOutput{
		finishOutput(nil),
	}})
	h.createAgent(t, "agent-1", nil)

	rec := h.do(t, http.MethodPost, "/api/v1/agents/agent-1/reason", map[string]any{
		"description":  "with chosen id",
		"execution_id": "run-chosen",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "run-chosen", decodeBody(t, rec)["execution_id"])

	// Reusing the id is a conflict, not a rerun.
	rec = h.do(t, http.MethodPost, "/api/v1/agents/agent-1/reason", map[string]any{
		"description":  "again",
		"execution_id": "run-chosen",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestReasonEndpoint_AgentNotFound(t *testing.T) {
	h := newAPIHarness(t, &scriptedReasoner{})
	rec := h.do(t, http.MethodPost, "/api/v1/agents/missing/reason", map[string]any{
		"description": "x",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReasonEndpoint_InactiveAgent(t *testing.T) {
	h := newAPIHarness(t, &scriptedReasoner{})
	h.createAgent(t, "agent-1", func(c *ent.AgentCreate) { c.SetStatus(agent.StatusInactive) })

	rec := h.do(t, http.MethodPost, "/api/v1/agents/agent-1/reason", map[string]any{
		"description": "x",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReasonEndpoint_MissingDescription(t *testing.T) {
	h := newAPIHarness(t, &scriptedReasoner{})
	h.createAgent(t, "agent-1", nil)

	rec := h.do(t, http.MethodPost, "/api/v1/agents/agent-1/reason", map[string]any{
		"parameters": map[string]any{"k": "v"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReasoningTraceEndpoint(t *testing.T) {
	h := newAPIHarness(t, &scriptedReasoner{})
	h.createAgent(t, "agent-1", nil)

	traceSvc := services.NewTraceService(h.client.Client)
	for i := 0; i < 3; i++ {
		_, err := traceSvc.Append(context.Background(), services.AppendInput{
			RunID:     "run-1",
			AgentID:   "agent-1",
			StepIndex: i,
			Thought:   "step thought",
			Action:    map[string]any{"type": "search"},
		})
		require.NoError(t, err)
	}

	rec := h.do(t, http.MethodGet, "/api/v1/agents/agent-1/reasoning-trace?run_id=run-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(3), body["count"])
	traces := body["traces"].([]any)
	require.Len(t, traces, 3)
	first := traces[0].(map[string]any)
	assert.Equal(t, float64(0), first["step_index"])

	// Agent-wide listing with a limit.
	rec = h.do(t, http.MethodGet, "/api/v1/agents/agent-1/reasoning-trace?limit=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), decodeBody(t, rec)["count"])

	rec = h.do(t, http.MethodGet, "/api/v1/agents/missing/reasoning-trace", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMemoryEndpoint(t *testing.T) {
	h := newAPIHarness(t, &scriptedReasoner{})
	h.createAgent(t, "agent-1", nil)

	memSvc := services.NewMemoryService(h.client.Client)
	for _, memType := range []string{"episodic", "episodic", "semantic"} {
		_, err := memSvc.Create(context.Background(), services.MemoryInput{
			AgentID:    "agent-1",
			MemoryType: memType,
			Content:    "remembered fact",
		})
		require.NoError(t, err)
	}

	rec := h.do(t, http.MethodGet, "/api/v1/agents/agent-1/memory?memory_type=episodic", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(2), body["count"])
	assert.Equal(t, "episodic", body["memory_type"])

	rec = h.do(t, http.MethodGet, "/api/v1/agents/agent-1/memory", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(3), decodeBody(t, rec)["count"])

	rec = h.do(t, http.MethodGet, "/api/v1/agents/agent-1/memory?memory_type=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLearnEndpoint(t *testing.T) {
	h := newAPIHarness(t, &scriptedReasoner{})
	h.createAgent(t, "agent-1", nil)

	rec := h.do(t, http.MethodPost, "/api/v1/agents/agent-1/learn", map[string]any{
		"task_description":        "summarize report",
		"outcome":                 "partial",
		"success":                 false,
		"improvement_suggestions": "ask for the report format first",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, "stored", body["status"])
	feedbackID, _ := body["feedback_id"].(string)
	require.NotEmpty(t, feedbackID)

	row, err := h.client.LearningFeedback.Query().
		Where(learningfeedback.IDEQ(feedbackID)).
		Only(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "manual", row.FeedbackType)
	assert.Equal(t, "partial", row.Outcome)
	assert.False(t, row.Success)

	// Outcome is required.
	rec = h.do(t, http.MethodPost, "/api/v1/agents/agent-1/learn", map[string]any{
		"task_description": "no outcome",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = h.do(t, http.MethodPost, "/api/v1/agents/missing/learn", map[string]any{
		"outcome": "success",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func (h *apiHarness) createPendingHITL(t *testing.T, agentID, runID string) *ent.HITLRequest {
	t.Helper()
	a, err := h.client.Agent.Get(context.Background(), agentID)
	require.NoError(t, err)
	req, err := h.hitl.Request(context.Background(), a, runID,
		&apa.Action{Type: "data_deletion", Parameters: map[string]any{"table": "users"}},
		"Action 'data_deletion' requires human approval", apa.RiskCritical)
	require.NoError(t, err)
	return req
}

func TestHITLEndpoints(t *testing.T) {
	h := newAPIHarness(t, &scriptedReasoner{})
	h.createAgent(t, "agent-1", nil)
	req := h.createPendingHITL(t, "agent-1", "run-1")

	rec := h.do(t, http.MethodGet, "/api/v1/hitl/pending", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["count"])

	rec = h.do(t, http.MethodGet, "/api/v1/hitl/pending?risk_level=low", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), decodeBody(t, rec)["count"])

	rec = h.do(t, http.MethodPost, "/api/v1/hitl/"+req.ID+"/respond", map[string]any{
		"decision":     "approve",
		"feedback":     "looks safe",
		"responded_by": "alice@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body = decodeBody(t, rec)
	assert.Equal(t, string(hitlrequest.StatusApproved), body["status"])
	assert.Equal(t, "approve", body["decision"])
	assert.Equal(t, "alice@example.com", body["responded_by"])

	// Responding twice conflicts.
	rec = h.do(t, http.MethodPost, "/api/v1/hitl/"+req.ID+"/respond", map[string]any{
		"decision": "reject",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = h.do(t, http.MethodPost, "/api/v1/hitl/unknown/respond", map[string]any{
		"decision": "approve",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = h.do(t, http.MethodGet, "/api/v1/hitl/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decodeBody(t, rec)
	assert.Equal(t, float64(1), stats["total"])
	byStatus := stats["by_status"].(map[string]any)
	assert.Equal(t, float64(1), byStatus["approved"])
}

func TestCancelExecutionEndpoint(t *testing.T) {
	h := newAPIHarness(t, &scriptedReasoner{})
	h.createAgent(t, "agent-1", nil)

	execSvc := services.NewExecutionService(h.client.Client)
	pending, err := execSvc.Create(context.Background(), services.CreateInput{
		AgentID: "agent-1",
		Input:   map[string]any{"description": "queued"},
	})
	require.NoError(t, err)

	rec := h.do(t, http.MethodPost, "/api/v1/executions/"+pending.ID+"/cancel", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cancellation_requested", decodeBody(t, rec)["status"])

	row, err := h.client.Execution.Get(context.Background(), pending.ID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusCancelled, row.Status)

	// Cancelling a terminal execution conflicts.
	rec = h.do(t, http.MethodPost, "/api/v1/executions/"+pending.ID+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = h.do(t, http.MethodPost, "/api/v1/executions/missing/cancel", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	h := newAPIHarness(t, &scriptedReasoner{})

	rec := h.do(t, http.MethodGet, "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "pod-api-test", body["pod_id"])
	db := body["database"].(map[string]any)
	assert.Equal(t, "healthy", db["status"])
}

func TestSecurityHeaders(t *testing.T) {
	h := newAPIHarness(t, &scriptedReasoner{})
	rec := h.do(t, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
