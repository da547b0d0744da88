package cleanup

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apa-platform/apacore/ent"
	"github.com/apa-platform/apacore/ent/execution"
	"github.com/apa-platform/apacore/ent/hitlrequest"
	"github.com/apa-platform/apacore/pkg/apa"
	"github.com/apa-platform/apacore/pkg/config"
	"github.com/apa-platform/apacore/pkg/database"
	"github.com/apa-platform/apacore/pkg/safety"
	"github.com/apa-platform/apacore/pkg/services"
	testdb "github.com/apa-platform/apacore/test/database"
)

func testRetentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		ExecutionRetentionDays: 90,
		HITLRetention:          720 * time.Hour,
		CleanupInterval:        time.Hour,
	}
}

func setupCleanup(t *testing.T) (*database.Client, *Service) {
	t.Helper()
	client := testdb.NewTestClient(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	executions := services.NewExecutionService(client.Client)
	hitl := safety.NewHITL(client.Client, &config.SafetyConfig{
		ApprovalTimeout:  time.Hour,
		HITLMode:         config.HITLModeWait,
		HITLPollInterval: 20 * time.Millisecond,
	}, logger)

	return client, NewService(testRetentionConfig(), executions, hitl)
}

func createTerminalExecution(t *testing.T, client *ent.Client, agentID string, completedAt time.Time) *ent.Execution {
	t.Helper()
	ctx := context.Background()
	exec, err := services.NewExecutionService(client).Create(ctx, services.CreateInput{
		AgentID: agentID,
		Input:   map[string]any{"description": "retention test"},
	})
	require.NoError(t, err)
	err = client.Execution.UpdateOneID(exec.ID).
		SetStatus(execution.StatusCompleted).
		SetCompletedAt(completedAt).
		Exec(ctx)
	require.NoError(t, err)
	return exec
}

func TestService_PurgesExpiredExecutionsWithTraces(t *testing.T) {
	client, svc := setupCleanup(t)
	ctx := context.Background()

	_, err := client.Agent.Create().SetID("agent-1").SetName("cleanup agent").Save(ctx)
	require.NoError(t, err)

	old := createTerminalExecution(t, client.Client, "agent-1", time.Now().AddDate(0, 0, -100))
	recent := createTerminalExecution(t, client.Client, "agent-1", time.Now().AddDate(0, 0, -1))

	traceSvc := services.NewTraceService(client.Client)
	for _, runID := range []string{old.ID, recent.ID} {
		_, err := traceSvc.Append(ctx, services.AppendInput{
			RunID:     runID,
			AgentID:   "agent-1",
			StepIndex: 0,
			Thought:   "step",
			Action:    map[string]any{"type": "finish"},
		})
		require.NoError(t, err)
	}

	svc.runAll(ctx)

	_, err = client.Execution.Get(ctx, old.ID)
	assert.True(t, ent.IsNotFound(err))

	oldTraces, err := traceSvc.ListByRun(ctx, old.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, oldTraces)

	_, err = client.Execution.Get(ctx, recent.ID)
	assert.NoError(t, err)
	recentTraces, err := traceSvc.ListByRun(ctx, recent.ID, 0)
	require.NoError(t, err)
	assert.Len(t, recentTraces, 1)
}

func TestService_RunningExecutionsSurvivePurge(t *testing.T) {
	client, svc := setupCleanup(t)
	ctx := context.Background()

	_, err := client.Agent.Create().SetID("agent-1").SetName("cleanup agent").Save(ctx)
	require.NoError(t, err)

	running, err := services.NewExecutionService(client.Client).CreateRunning(ctx, services.CreateInput{
		AgentID: "agent-1",
		Input:   map[string]any{"description": "long running"},
	}, "pod-1")
	require.NoError(t, err)

	// Age the row far past retention; only terminal rows are eligible.
	err = client.Execution.UpdateOneID(running.ID).
		SetStartedAt(time.Now().AddDate(0, 0, -200)).
		Exec(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	row, err := client.Execution.Get(ctx, running.ID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusRunning, row.Status)
}

func TestService_PurgesResolvedHITLRequests(t *testing.T) {
	client, svc := setupCleanup(t)
	ctx := context.Background()

	agent, err := client.Agent.Create().SetID("agent-1").SetName("cleanup agent").Save(ctx)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hitl := safety.NewHITL(client.Client, &config.SafetyConfig{
		ApprovalTimeout:  time.Hour,
		HITLMode:         config.HITLModeWait,
		HITLPollInterval: 20 * time.Millisecond,
	}, logger)

	action := &apa.Action{Type: "data_deletion"}
	resolved, err := hitl.Request(ctx, agent, "run-1", action, "needs approval", apa.RiskCritical)
	require.NoError(t, err)
	pending, err := hitl.Request(ctx, agent, "run-2", action, "needs approval", apa.RiskCritical)
	require.NoError(t, err)

	_, err = hitl.Respond(ctx, resolved.ID, "operator-1", "approve", "")
	require.NoError(t, err)
	err = client.HITLRequest.UpdateOneID(resolved.ID).
		SetRespondedAt(time.Now().Add(-1000 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	_, err = client.HITLRequest.Get(ctx, resolved.ID)
	assert.True(t, ent.IsNotFound(err))

	row, err := client.HITLRequest.Get(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, hitlrequest.StatusPending, row.Status)
}

func TestService_StartStop(t *testing.T) {
	_, svc := setupCleanup(t)

	svc.Start(context.Background())
	svc.Start(context.Background()) // duplicate start is a no-op
	svc.Stop()
}
