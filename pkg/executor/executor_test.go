package executor

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
	"github.com/apa-platform/apacore/ent/learningfeedback"
	"github.com/apa-platform/apacore/pkg/apa"
	"github.com/apa-platform/apacore/pkg/config"
	"github.com/apa-platform/apacore/pkg/database"
	"github.com/apa-platform/apacore/pkg/memory"
	"github.com/apa-platform/apacore/pkg/safety"
	"github.com/apa-platform/apacore/pkg/services"
	"github.com/apa-platform/apacore/pkg/tools"
	testdb "github.com/apa-platform/apacore/test/database"
)

// scriptedReasoner returns pre-planned steps in order.
type scriptedReasoner struct {
	steps []*apa.ReasoningOutput
	err   error
	calls int
}

func (r *scriptedReasoner) Reason(_ context.Context, _ *ent.Agent, _ apa.Task, _ *apa.Context, _ []string, _ []*apa.Action, _ []apa.Observation) (*apa.ReasoningOutput, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.calls++
	if len(r.steps) == 0 {
		return nil, errors.New("scripted reasoner exhausted")
	}
	step := r.steps[0]
	if len(r.steps) > 1 {
		r.steps = r.steps[1:]
	}
	return step, nil
}

func finishStep(result map[string]any) *apa.ReasoningOutput {
	return &apa.ReasoningOutput{
		Thought:    "task is done",
		Action:     &apa.Action{Type: apa.ActionFinish, Result: result},
		Reflection: "done",
		TokensUsed: 10,
		LatencyMS:  5,
	}
}

func toolStep(toolName string, params map[string]any) *apa.ReasoningOutput {
	return &apa.ReasoningOutput{
		Thought:    "using " + toolName,
		Action:     &apa.Action{Type: toolName, Parameters: params},
		TokensUsed: 10,
		LatencyMS:  5,
	}
}

type harness struct {
	client     *database.Client
	executor   *Executor
	executions *services.ExecutionService
	hitl       *safety.HITL
}

func newHarness(t *testing.T, reasoner Reasoner, safetyCfg *config.SafetyConfig) *harness {
	t.Helper()
	client := testdb.NewTestClient(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if safetyCfg == nil {
		safetyCfg = &config.SafetyConfig{
			ApprovalTimeout:  time.Hour,
			HITLMode:         config.HITLModeWait,
			HITLPollInterval: 20 * time.Millisecond,
		}
	}

	executions := services.NewExecutionService(client.Client)
	hitl := safety.NewHITL(client.Client, safetyCfg, logger)
	contextMgr := memory.NewManager(services.NewMemoryService(client.Client), nil, logger)

	exec := New(Config{
		Executions: executions,
		Traces:     services.NewTraceService(client.Client),
		Feedback:   services.NewFeedbackService(client.Client),
		Reasoner:   reasoner,
		Safety:     safety.NewEngine(logger),
		Approver:   hitl,
		ContextMgr: contextMgr,
		Tools:      tools.NewRegistry(services.NewToolService(client.Client)),
		Logger:     logger,
	})

	return &harness{client: client, executor: exec, executions: executions, hitl: hitl}
}

func (h *harness) createAgent(t *testing.T, id string, mutate func(*ent.AgentCreate)) *ent.Agent {
	t.Helper()
	create := h.client.Agent.Create().
		SetID(id).
		SetName("executor test agent")
	if mutate != nil {
		mutate(create)
	}
	agent, err := create.Save(context.Background())
	require.NoError(t, err)
	return agent
}

func (h *harness) createRunning(t *testing.T, agentID string) *ent.Execution {
	t.Helper()
	exec, err := h.executions.CreateRunning(context.Background(), services.CreateInput{
		AgentID: agentID,
		Input:   map[string]any{"description": "test"},
	}, "pod-test")
	require.NoError(t, err)
	return exec
}

func (h *harness) traces(t *testing.T, runID string) []*ent.ReasoningTrace {
	t.Helper()
	traces, err := services.NewTraceService(h.client.Client).ListByRun(context.Background(), runID, 0)
	require.NoError(t, err)
	return traces
}

func TestExecuteTask_ImmediateFinish(t *testing.T) {
	reasoner := &scriptedReasoner{steps: []*apa.ReasoningOutput{
		finishStep(map[string]any{"msg": "hello"}),
	}}
	h := newHarness(t, reasoner, nil)
	agent := h.createAgent(t, "agent-1", func(c *ent.AgentCreate) { c.SetMaxIterations(5) })
	exec := h.createRunning(t, agent.ID)

	result := h.executor.ExecuteTask(context.Background(), agent, exec.ID,
		apa.Task{ID: "t1", Description: "echo hello"}, -1)

	assert.Equal(t, apa.StatusCompleted, result.Status)
	assert.Equal(t, 0, result.Iterations)
	assert.Equal(t, map[string]any{"msg": "hello"}, result.Output)

	traces := h.traces(t, exec.ID)
	require.Len(t, traces, 1)
	assert.Equal(t, 0, traces[0].StepIndex)
	assert.Equal(t, "finish", traces[0].Action["type"])
	assert.Equal(t, "Task completed", traces[0].Observation["message"])

	feedback, err := h.client.LearningFeedback.Query().
		Where(learningfeedback.RunIDEQ(exec.ID)).
		All(context.Background())
	require.NoError(t, err)
	require.Len(t, feedback, 1)
	assert.Equal(t, "success", feedback[0].Outcome)
	assert.True(t, feedback[0].Success)
}

func TestExecuteTask_ToolAssistedFinish(t *testing.T) {
	reasoner := &scriptedReasoner{steps: []*apa.ReasoningOutput{
		toolStep("calculate", map[string]any{"expression": "2+2*3"}),
		finishStep(map[string]any{"answer": 8}),
	}}
	h := newHarness(t, reasoner, nil)
	agent := h.createAgent(t, "agent-1", func(c *ent.AgentCreate) { c.SetTools([]string{"calculate"}) })
	exec := h.createRunning(t, agent.ID)

	result := h.executor.ExecuteTask(context.Background(), agent, exec.ID,
		apa.Task{Description: "2+2*3"}, -1)

	assert.Equal(t, apa.StatusCompleted, result.Status)
	assert.Equal(t, 1, result.Iterations)

	traces := h.traces(t, exec.ID)
	require.Len(t, traces, 2)
	assert.Equal(t, 0, traces[0].StepIndex)
	assert.Equal(t, 1, traces[1].StepIndex)
	assert.Equal(t, "calculate", traces[0].Action["type"])
	assert.Equal(t, "success", traces[0].Observation["status"])
	assert.Equal(t, "finish", traces[1].Action["type"])
}

func TestExecuteTask_GuardrailBlock(t *testing.T) {
	reasoner := &scriptedReasoner{steps: []*apa.ReasoningOutput{
		toolStep("data_deletion", map[string]any{"table": "users"}),
	}}
	h := newHarness(t, reasoner, nil)
	agent := h.createAgent(t, "agent-1", func(c *ent.AgentCreate) {
		c.SetSafetyGuardrails(map[string]any{"blocked_actions": []any{"data_deletion"}})
	})
	exec := h.createRunning(t, agent.ID)

	result := h.executor.ExecuteTask(context.Background(), agent, exec.ID,
		apa.Task{Description: "wipe users"}, -1)

	assert.Equal(t, apa.StatusBlocked, result.Status)
	assert.Contains(t, result.Reason, "blocked by agent guardrails")

	traces := h.traces(t, exec.ID)
	require.Len(t, traces, 1)
	assert.Equal(t, true, traces[0].Observation["blocked"])
	assert.Contains(t, traces[0].Observation["reason"], "blocked")

	hitlCount, err := h.client.HITLRequest.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, hitlCount)
}

func TestExecuteTask_HITLApproval(t *testing.T) {
	reasoner := &scriptedReasoner{steps: []*apa.ReasoningOutput{
		toolStep("user_communication", map[string]any{"to": "customer"}),
		finishStep(map[string]any{"sent": true}),
	}}
	h := newHarness(t, reasoner, nil)
	agent := h.createAgent(t, "agent-1", nil)
	exec := h.createRunning(t, agent.ID)

	// Approve the request as soon as it appears.
	go func() {
		deadline := time.Now().Add(5 * time.Second)
		for time.Now().Before(deadline) {
			pending, err := h.hitl.PendingRequests(context.Background(), 1, "")
			if err == nil && len(pending) == 1 {
				_, _ = h.hitl.Respond(context.Background(), pending[0].ID, "operator-1", "approve", "ok")
				return
			}
			time.Sleep(10 * time.Millisecond)
		}
	}()

	result := h.executor.ExecuteTask(context.Background(), agent, exec.ID,
		apa.Task{Description: "notify customer"}, -1)

	assert.Equal(t, apa.StatusCompleted, result.Status)
	assert.Len(t, h.traces(t, exec.ID), 2)

	reqs, err := h.client.HITLRequest.Query().All(context.Background())
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, hitlrequest.StatusApproved, reqs[0].Status)
	require.NotNil(t, reqs[0].RespondedBy)
	assert.Equal(t, "operator-1", *reqs[0].RespondedBy)
}

func TestExecuteTask_HITLTimeout(t *testing.T) {
	reasoner := &scriptedReasoner{steps: []*apa.ReasoningOutput{
		toolStep("user_communication", map[string]any{"to": "customer"}),
	}}
	cfg := &config.SafetyConfig{
		ApprovalTimeout:  80 * time.Millisecond,
		HITLMode:         config.HITLModeWait,
		HITLPollInterval: 20 * time.Millisecond,
	}
	h := newHarness(t, reasoner, cfg)
	agent := h.createAgent(t, "agent-1", nil)
	exec := h.createRunning(t, agent.ID)

	result := h.executor.ExecuteTask(context.Background(), agent, exec.ID,
		apa.Task{Description: "notify customer"}, -1)

	assert.Equal(t, apa.StatusBlocked, result.Status)

	reqs, err := h.client.HITLRequest.Query().All(context.Background())
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, hitlrequest.StatusTimeout, reqs[0].Status)
}

func TestExecuteTask_BudgetExhaustion(t *testing.T) {
	// A single repeated step: the scripted reasoner keeps returning its last
	// step, so finish never arrives.
	reasoner := &scriptedReasoner{steps: []*apa.ReasoningOutput{
		toolStep("calculate", map[string]any{"expression": "1+1"}),
	}}
	h := newHarness(t, reasoner, nil)
	agent := h.createAgent(t, "agent-1", func(c *ent.AgentCreate) { c.SetMaxIterations(3) })
	exec := h.createRunning(t, agent.ID)

	result := h.executor.ExecuteTask(context.Background(), agent, exec.ID,
		apa.Task{Description: "loop forever"}, -1)

	assert.Equal(t, apa.StatusTimeout, result.Status)
	assert.Equal(t, 3, result.Iterations)
	assert.Contains(t, result.Reason, "Maximum iterations (3) exceeded")

	traces := h.traces(t, exec.ID)
	require.Len(t, traces, 3)
	for i, trace := range traces {
		assert.Equal(t, i, trace.StepIndex)
	}
}

func TestExecuteTask_ZeroIterationBudget(t *testing.T) {
	reasoner := &scriptedReasoner{steps: []*apa.ReasoningOutput{finishStep(nil)}}
	h := newHarness(t, reasoner, nil)
	agent := h.createAgent(t, "agent-1", nil)
	exec := h.createRunning(t, agent.ID)

	result := h.executor.ExecuteTask(context.Background(), agent, exec.ID,
		apa.Task{Description: "never runs"}, 0)

	assert.Equal(t, apa.StatusTimeout, result.Status)
	assert.Equal(t, 0, result.Iterations)
	assert.Empty(t, h.traces(t, exec.ID))
	assert.Zero(t, reasoner.calls)
}

func TestExecuteTask_ToolErrorContinues(t *testing.T) {
	reasoner := &scriptedReasoner{steps: []*apa.ReasoningOutput{
		toolStep("calculate", map[string]any{"expression": "not valid ("}),
		finishStep(map[string]any{"gave_up": true}),
	}}
	h := newHarness(t, reasoner, nil)
	agent := h.createAgent(t, "agent-1", nil)
	exec := h.createRunning(t, agent.ID)

	result := h.executor.ExecuteTask(context.Background(), agent, exec.ID,
		apa.Task{Description: "bad math"}, -1)

	assert.Equal(t, apa.StatusCompleted, result.Status)

	traces := h.traces(t, exec.ID)
	require.Len(t, traces, 2)
	assert.Equal(t, "error", traces[0].Observation["status"])
	assert.Contains(t, traces[0].Observation["error"], "invalid expression")
}

func TestExecuteTask_UnknownToolContinues(t *testing.T) {
	reasoner := &scriptedReasoner{steps: []*apa.ReasoningOutput{
		toolStep("teleport", nil),
		finishStep(nil),
	}}
	h := newHarness(t, reasoner, nil)
	agent := h.createAgent(t, "agent-1", nil)
	exec := h.createRunning(t, agent.ID)

	result := h.executor.ExecuteTask(context.Background(), agent, exec.ID,
		apa.Task{Description: "x"}, -1)

	assert.Equal(t, apa.StatusCompleted, result.Status)
	traces := h.traces(t, exec.ID)
	assert.Equal(t, "error", traces[0].Observation["status"])
	assert.Equal(t, "Tool 'teleport' not found", traces[0].Observation["error"])
	assert.NotEmpty(t, traces[0].Observation["available_tools"])
}

func TestExecuteTask_FinishTraceWriteFailureFailsRun(t *testing.T) {
	reasoner := &scriptedReasoner{steps: []*apa.ReasoningOutput{
		finishStep(map[string]any{"msg": "done"}),
	}}
	h := newHarness(t, reasoner, nil)
	agent := h.createAgent(t, "agent-1", nil)
	exec := h.createRunning(t, agent.ID)

	// Occupy step 0 so the terminal trace write hits the (run_id,
	// step_index) uniqueness constraint.
	_, err := services.NewTraceService(h.client.Client).Append(context.Background(), services.AppendInput{
		RunID:       exec.ID,
		AgentID:     agent.ID,
		StepIndex:   0,
		Thought:     "occupied",
		Action:      map[string]any{"type": "noop"},
		Observation: map[string]any{},
	})
	require.NoError(t, err)

	result := h.executor.ExecuteTask(context.Background(), agent, exec.ID,
		apa.Task{Description: "x"}, -1)

	// A run whose terminal trace could not land is not completed.
	assert.Equal(t, apa.StatusError, result.Status)
	assert.NotEmpty(t, result.Reason)
	assert.Equal(t, 0, result.Iterations)
}

func TestExecuteTask_ReasonerErrorFailsRun(t *testing.T) {
	reasoner := &scriptedReasoner{err: errors.New("provider exploded")}
	h := newHarness(t, reasoner, nil)
	agent := h.createAgent(t, "agent-1", nil)
	exec := h.createRunning(t, agent.ID)

	result := h.executor.ExecuteTask(context.Background(), agent, exec.ID,
		apa.Task{Description: "x"}, -1)

	assert.Equal(t, apa.StatusError, result.Status)
	assert.Contains(t, result.Reason, "provider exploded")

	traces := h.traces(t, exec.ID)
	require.Len(t, traces, 1)
	assert.Equal(t, "Error occurred during execution", traces[0].Thought)
	assert.Equal(t, "Execution failed", traces[0].Reflection)

	feedback, err := h.client.LearningFeedback.Query().
		Where(learningfeedback.RunIDEQ(exec.ID)).
		All(context.Background())
	require.NoError(t, err)
	require.Len(t, feedback, 1)
	assert.Equal(t, "failure", feedback[0].Outcome)
	assert.False(t, feedback[0].Success)
}

func TestExecuteTask_CancellationAtBoundary(t *testing.T) {
	reasoner := &scriptedReasoner{steps: []*apa.ReasoningOutput{
		toolStep("calculate", map[string]any{"expression": "1+1"}),
	}}
	h := newHarness(t, reasoner, nil)
	agent := h.createAgent(t, "agent-1", nil)
	exec := h.createRunning(t, agent.ID)

	require.NoError(t, h.executions.Cancel(context.Background(), exec.ID))

	result := h.executor.ExecuteTask(context.Background(), agent, exec.ID,
		apa.Task{Description: "x"}, -1)

	assert.Equal(t, apa.StatusCancelled, result.Status)
	assert.Equal(t, 0, result.Iterations)

	traces := h.traces(t, exec.ID)
	require.Len(t, traces, 1)
	assert.Equal(t, true, traces[0].Observation["cancelled"])
}

func TestExecuteTask_EpisodicMemoryPerStep(t *testing.T) {
	reasoner := &scriptedReasoner{steps: []*apa.ReasoningOutput{
		toolStep("calculate", map[string]any{"expression": "1+1"}),
		finishStep(nil),
	}}
	h := newHarness(t, reasoner, nil)
	agent := h.createAgent(t, "agent-1", nil)
	exec := h.createRunning(t, agent.ID)

	h.executor.ExecuteTask(context.Background(), agent, exec.ID,
		apa.Task{ID: "t1", Description: "x"}, -1)

	memories, err := services.NewMemoryService(h.client.Client).List(context.Background(), agent.ID, "episodic", 10)
	require.NoError(t, err)
	require.Len(t, memories, 1)
	assert.Contains(t, memories[0].Content, "Action: calculate")
}

func TestExecuteTask_MemoryDisabledSkipsWrites(t *testing.T) {
	reasoner := &scriptedReasoner{steps: []*apa.ReasoningOutput{
		toolStep("calculate", map[string]any{"expression": "1+1"}),
		finishStep(nil),
	}}
	h := newHarness(t, reasoner, nil)
	agent := h.createAgent(t, "agent-1", func(c *ent.AgentCreate) { c.SetEnableMemory(false) })
	exec := h.createRunning(t, agent.ID)

	h.executor.ExecuteTask(context.Background(), agent, exec.ID,
		apa.Task{Description: "x"}, -1)

	count, err := h.client.MemoryItem.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestExecuteTask_LearningDisabledSkipsFeedback(t *testing.T) {
	reasoner := &scriptedReasoner{steps: []*apa.ReasoningOutput{finishStep(nil)}}
	h := newHarness(t, reasoner, nil)
	agent := h.createAgent(t, "agent-1", func(c *ent.AgentCreate) { c.SetEnableLearning(false) })
	exec := h.createRunning(t, agent.ID)

	h.executor.ExecuteTask(context.Background(), agent, exec.ID,
		apa.Task{Description: "x"}, -1)

	count, err := h.client.LearningFeedback.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}
