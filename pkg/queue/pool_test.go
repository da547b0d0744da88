package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apa-platform/apacore/ent/execution"
	"github.com/apa-platform/apacore/pkg/services"
	testdb "github.com/apa-platform/apacore/test/database"
)

func TestWorkerPool_StartProcessesQueue(t *testing.T) {
	client := testdb.NewTestClient(t)
	createQueueAgent(t, client.Client, "agent-1")
	first := createPendingExecution(t, client.Client, "agent-1")
	second := createPendingExecution(t, client.Client, "agent-1")

	cfg := testQueueConfig()
	cfg.WorkerCount = 2
	stub := &stubRunExecutor{result: &RunResult{Status: execution.StatusCompleted}}
	pool := NewWorkerPool("pod-1", client.Client, cfg, stub)

	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	waitFor(t, 5*time.Second, func() bool {
		for _, id := range []string{first.ID, second.ID} {
			row, err := client.Client.Execution.Get(context.Background(), id)
			if err != nil || row.Status != execution.StatusCompleted {
				return false
			}
		}
		return true
	})
}

func TestWorkerPool_DuplicateStartIsNoop(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := testQueueConfig()
	stub := &stubRunExecutor{result: &RunResult{Status: execution.StatusCompleted}}
	pool := NewWorkerPool("pod-1", client.Client, cfg, stub)

	require.NoError(t, pool.Start(context.Background()))
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	assert.Len(t, pool.workers, cfg.WorkerCount)
}

func TestWorkerPool_CancelRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := testQueueConfig()
	pool := NewWorkerPool("pod-1", client.Client, cfg, &stubRunExecutor{result: &RunResult{Status: execution.StatusCompleted}})

	cancelled := false
	pool.RegisterRun("exec-1", func() { cancelled = true })

	assert.True(t, pool.CancelRun("exec-1"))
	assert.True(t, cancelled)
	assert.False(t, pool.CancelRun("exec-unknown"))

	pool.UnregisterRun("exec-1")
	assert.False(t, pool.CancelRun("exec-1"))
}

func TestWorkerPool_Health(t *testing.T) {
	client := testdb.NewTestClient(t)
	createQueueAgent(t, client.Client, "agent-1")
	createPendingExecution(t, client.Client, "agent-1")

	cfg := testQueueConfig()
	cfg.PollInterval = time.Hour // keep the queue untouched during the check
	stub := &stubRunExecutor{result: &RunResult{Status: execution.StatusCompleted}}
	pool := NewWorkerPool("pod-1", client.Client, cfg, stub)

	health := pool.Health()
	assert.False(t, health.IsHealthy) // not started, no workers
	assert.True(t, health.DBReachable)
	assert.Equal(t, 1, health.QueueDepth)
	assert.Equal(t, "pod-1", health.PodID)
}

func TestDetectAndRecoverOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	createQueueAgent(t, client.Client, "agent-1")
	ctx := context.Background()

	execSvc := services.NewExecutionService(client.Client)
	stale, err := execSvc.CreateRunning(ctx, services.CreateInput{
		AgentID: "agent-1",
		Input:   map[string]any{"description": "stale"},
	}, "dead-pod")
	require.NoError(t, err)

	fresh, err := execSvc.CreateRunning(ctx, services.CreateInput{
		AgentID: "agent-1",
		Input:   map[string]any{"description": "fresh"},
	}, "live-pod")
	require.NoError(t, err)

	// Age the stale run's heartbeat past the orphan threshold.
	_, err = client.Client.Execution.UpdateOneID(stale.ID).
		SetLastInteractionAt(time.Now().Add(-10 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	cfg := testQueueConfig()
	pool := NewWorkerPool("pod-1", client.Client, cfg, &stubRunExecutor{result: &RunResult{Status: execution.StatusCompleted}})

	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	staleRow, err := client.Client.Execution.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusFailed, staleRow.Status)
	require.NotNil(t, staleRow.ErrorMessage)
	assert.Contains(t, *staleRow.ErrorMessage, "Orphaned: no heartbeat from pod dead-pod")
	assert.NotNil(t, staleRow.CompletedAt)

	freshRow, err := client.Client.Execution.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusRunning, freshRow.Status)
}

func TestCleanupStartupOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	createQueueAgent(t, client.Client, "agent-1")
	ctx := context.Background()

	execSvc := services.NewExecutionService(client.Client)
	mine, err := execSvc.CreateRunning(ctx, services.CreateInput{
		AgentID: "agent-1",
		Input:   map[string]any{"description": "mine"},
	}, "pod-1")
	require.NoError(t, err)

	other, err := execSvc.CreateRunning(ctx, services.CreateInput{
		AgentID: "agent-1",
		Input:   map[string]any{"description": "other"},
	}, "pod-2")
	require.NoError(t, err)

	require.NoError(t, CleanupStartupOrphans(ctx, client.Client, "pod-1"))

	mineRow, err := client.Client.Execution.Get(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusFailed, mineRow.Status)
	require.NotNil(t, mineRow.ErrorMessage)
	assert.Contains(t, *mineRow.ErrorMessage, "pod pod-1 restarted")

	otherRow, err := client.Client.Execution.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusRunning, otherRow.Status)
}
