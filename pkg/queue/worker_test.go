package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apa-platform/apacore/ent"
	"github.com/apa-platform/apacore/ent/execution"
	"github.com/apa-platform/apacore/pkg/apa"
	"github.com/apa-platform/apacore/pkg/config"
	"github.com/apa-platform/apacore/pkg/services"
	testdb "github.com/apa-platform/apacore/test/database"
)

// stubRunExecutor returns a fixed result and records the runs it saw.
type stubRunExecutor struct {
	mu     sync.Mutex
	result *RunResult
	seen   []string
	block  chan struct{} // when set, Execute waits until closed
}

func (s *stubRunExecutor) Execute(_ context.Context, exec *ent.Execution) *RunResult {
	s.mu.Lock()
	s.seen = append(s.seen, exec.ID)
	s.mu.Unlock()
	if s.block != nil {
		<-s.block
	}
	return s.result
}

func (s *stubRunExecutor) seenIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.seen...)
}

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             1,
		MaxConcurrentRuns:       5,
		PollInterval:            20 * time.Millisecond,
		PollIntervalJitter:      0,
		ExecutionTimeout:        5 * time.Second,
		HeartbeatInterval:       20 * time.Millisecond,
		OrphanDetectionInterval: time.Hour,
		OrphanThreshold:         time.Minute,
		GracefulShutdownTimeout: 5 * time.Second,
	}
}

type registryStub struct {
	mu   sync.Mutex
	runs map[string]context.CancelFunc
}

func newRegistryStub() *registryStub {
	return &registryStub{runs: make(map[string]context.CancelFunc)}
}

func (r *registryStub) RegisterRun(id string, cancel context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs[id] = cancel
}

func (r *registryStub) UnregisterRun(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.runs, id)
}

func createQueueAgent(t *testing.T, client *ent.Client, id string) {
	t.Helper()
	_, err := client.Agent.Create().
		SetID(id).
		SetName("queue agent").
		Save(context.Background())
	require.NoError(t, err)
}

func createPendingExecution(t *testing.T, client *ent.Client, agentID string) *ent.Execution {
	t.Helper()
	exec, err := services.NewExecutionService(client).Create(context.Background(), services.CreateInput{
		AgentID: agentID,
		Input:   map[string]any{"description": "queued task"},
	})
	require.NoError(t, err)
	return exec
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func TestWorker_ClaimsAndCompletesExecution(t *testing.T) {
	client := testdb.NewTestClient(t)
	createQueueAgent(t, client.Client, "agent-1")
	exec := createPendingExecution(t, client.Client, "agent-1")

	stub := &stubRunExecutor{result: &RunResult{
		Status: execution.StatusCompleted,
		Output: map[string]any{"status": "completed"},
	}}
	worker := NewWorker("w-0", "pod-1", client.Client, testQueueConfig(), stub, newRegistryStub())

	worker.Start(context.Background())
	defer worker.Stop()

	waitFor(t, 5*time.Second, func() bool {
		row, err := client.Client.Execution.Get(context.Background(), exec.ID)
		return err == nil && row.Status == execution.StatusCompleted
	})

	row, err := client.Client.Execution.Get(context.Background(), exec.ID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusCompleted, row.Status)
	require.NotNil(t, row.PodID)
	assert.Equal(t, "pod-1", *row.PodID)
	assert.NotNil(t, row.StartedAt)
	assert.NotNil(t, row.CompletedAt)
	assert.Equal(t, []string{exec.ID}, stub.seenIDs())
}

func TestWorker_FIFOClaimOrder(t *testing.T) {
	client := testdb.NewTestClient(t)
	createQueueAgent(t, client.Client, "agent-1")
	first := createPendingExecution(t, client.Client, "agent-1")
	time.Sleep(5 * time.Millisecond)
	second := createPendingExecution(t, client.Client, "agent-1")

	stub := &stubRunExecutor{result: &RunResult{Status: execution.StatusCompleted}}
	worker := NewWorker("w-0", "pod-1", client.Client, testQueueConfig(), stub, newRegistryStub())

	worker.Start(context.Background())
	defer worker.Stop()

	waitFor(t, 5*time.Second, func() bool { return len(stub.seenIDs()) == 2 })
	assert.Equal(t, []string{first.ID, second.ID}, stub.seenIDs())
}

func TestWorker_FailedResultRecorded(t *testing.T) {
	client := testdb.NewTestClient(t)
	createQueueAgent(t, client.Client, "agent-1")
	exec := createPendingExecution(t, client.Client, "agent-1")

	stub := &stubRunExecutor{result: &RunResult{
		Status:       execution.StatusFailed,
		ErrorMessage: "reasoning aborted",
	}}
	worker := NewWorker("w-0", "pod-1", client.Client, testQueueConfig(), stub, newRegistryStub())

	worker.Start(context.Background())
	defer worker.Stop()

	waitFor(t, 5*time.Second, func() bool {
		row, err := client.Client.Execution.Get(context.Background(), exec.ID)
		return err == nil && row.Status == execution.StatusFailed
	})

	row, err := client.Client.Execution.Get(context.Background(), exec.ID)
	require.NoError(t, err)
	require.NotNil(t, row.ErrorMessage)
	assert.Equal(t, "reasoning aborted", *row.ErrorMessage)
}

func TestWorker_AtCapacityDoesNotClaim(t *testing.T) {
	client := testdb.NewTestClient(t)
	createQueueAgent(t, client.Client, "agent-1")

	// Saturate capacity with a foreign running execution.
	_, err := services.NewExecutionService(client.Client).CreateRunning(context.Background(), services.CreateInput{
		AgentID: "agent-1",
		Input:   map[string]any{"description": "occupying"},
	}, "other-pod")
	require.NoError(t, err)

	pending := createPendingExecution(t, client.Client, "agent-1")

	cfg := testQueueConfig()
	cfg.MaxConcurrentRuns = 1
	stub := &stubRunExecutor{result: &RunResult{Status: execution.StatusCompleted}}
	worker := NewWorker("w-0", "pod-1", client.Client, cfg, stub, newRegistryStub())

	worker.Start(context.Background())
	time.Sleep(150 * time.Millisecond)
	worker.Stop()

	row, err := client.Client.Execution.Get(context.Background(), pending.ID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusPending, row.Status)
	assert.Empty(t, stub.seenIDs())
}

func TestWorker_HeartbeatRefreshesLastInteraction(t *testing.T) {
	client := testdb.NewTestClient(t)
	createQueueAgent(t, client.Client, "agent-1")
	exec := createPendingExecution(t, client.Client, "agent-1")

	block := make(chan struct{})
	stub := &stubRunExecutor{
		result: &RunResult{Status: execution.StatusCompleted},
		block:  block,
	}
	worker := NewWorker("w-0", "pod-1", client.Client, testQueueConfig(), stub, newRegistryStub())

	worker.Start(context.Background())
	defer worker.Stop()

	waitFor(t, 5*time.Second, func() bool { return len(stub.seenIDs()) == 1 })

	var first time.Time
	waitFor(t, 5*time.Second, func() bool {
		row, err := client.Client.Execution.Get(context.Background(), exec.ID)
		if err != nil || row.LastInteractionAt == nil {
			return false
		}
		first = *row.LastInteractionAt
		return true
	})

	waitFor(t, 5*time.Second, func() bool {
		row, err := client.Client.Execution.Get(context.Background(), exec.ID)
		return err == nil && row.LastInteractionAt != nil && row.LastInteractionAt.After(first)
	})

	close(block)
}

func TestTaskFromInput(t *testing.T) {
	task, maxIter := TaskFromInput(map[string]any{
		"id":          "t-1",
		"description": "do the thing",
		"parameters":  map[string]any{"k": "v"},
		// JSON round-trips integers as float64.
		"max_iterations": float64(3),
	})

	assert.Equal(t, "t-1", task.ID)
	assert.Equal(t, "do the thing", task.Description)
	assert.Equal(t, map[string]any{"k": "v"}, task.Parameters)
	assert.Equal(t, 3, maxIter)

	_, maxIter = TaskFromInput(map[string]any{"description": "x"})
	assert.Equal(t, -1, maxIter)
}

func TestRunResultFrom(t *testing.T) {
	tests := []struct {
		name       string
		in         *apa.ExecutionResult
		wantStatus execution.Status
		wantErrMsg string
	}{
		{
			name:       "completed",
			in:         &apa.ExecutionResult{Status: apa.StatusCompleted, Output: map[string]any{"a": 1}},
			wantStatus: execution.StatusCompleted,
		},
		{
			name:       "timeout",
			in:         &apa.ExecutionResult{Status: apa.StatusTimeout, Reason: "Maximum iterations (3) exceeded"},
			wantStatus: execution.StatusTimeout,
			wantErrMsg: "Maximum iterations (3) exceeded",
		},
		{
			name:       "cancelled",
			in:         &apa.ExecutionResult{Status: apa.StatusCancelled},
			wantStatus: execution.StatusCancelled,
		},
		{
			name:       "blocked maps to failed",
			in:         &apa.ExecutionResult{Status: apa.StatusBlocked, Reason: "blocked by guardrails"},
			wantStatus: execution.StatusFailed,
			wantErrMsg: "blocked by guardrails",
		},
		{
			name:       "error maps to failed",
			in:         &apa.ExecutionResult{Status: apa.StatusError, Reason: "boom"},
			wantStatus: execution.StatusFailed,
			wantErrMsg: "boom",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RunResultFrom(tt.in)
			assert.Equal(t, tt.wantStatus, out.Status)
			assert.Equal(t, tt.wantErrMsg, out.ErrorMessage)
			assert.Equal(t, tt.in.Status, out.Output["status"])
		})
	}
}
