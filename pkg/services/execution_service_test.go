package services

import (
	"context"
	"errors"
	"testing"

	"github.com/apa-platform/apacore/ent"
	"github.com/apa-platform/apacore/ent/execution"
	testdb "github.com/apa-platform/apacore/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAgent(t *testing.T, client *ent.Client, id string) *ent.Agent {
	t.Helper()
	a, err := client.Agent.Create().
		SetID(id).
		SetName("test agent").
		Save(context.Background())
	require.NoError(t, err)
	return a
}

func TestExecutionService_CreateAndGet(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewExecutionService(client.Client)
	ctx := context.Background()

	createTestAgent(t, client.Client, "agent-1")

	exec, err := svc.Create(ctx, CreateInput{
		AgentID: "agent-1",
		Input:   map[string]any{"description": "summarize the report"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, exec.ID)
	assert.Equal(t, execution.StatusPending, exec.Status)
	assert.Nil(t, exec.StartedAt)

	got, err := svc.Get(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, exec.ID, got.ID)
}

func TestExecutionService_CreateValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewExecutionService(client.Client)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{Input: map[string]any{}})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = svc.Create(ctx, CreateInput{AgentID: "agent-1"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestExecutionService_CreateRunning(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewExecutionService(client.Client)
	ctx := context.Background()

	exec, err := svc.CreateRunning(ctx, CreateInput{
		AgentID: "agent-1",
		Input:   map[string]any{"description": "task"},
	}, "pod-a")
	require.NoError(t, err)
	assert.Equal(t, execution.StatusRunning, exec.Status)
	require.NotNil(t, exec.PodID)
	assert.Equal(t, "pod-a", *exec.PodID)
	assert.NotNil(t, exec.StartedAt)
	assert.NotNil(t, exec.LastInteractionAt)
}

func TestExecutionService_CompleteOnce(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewExecutionService(client.Client)
	ctx := context.Background()

	exec, err := svc.CreateRunning(ctx, CreateInput{
		AgentID: "agent-1",
		Input:   map[string]any{"description": "task"},
	}, "pod-a")
	require.NoError(t, err)

	err = svc.Complete(ctx, exec.ID, TerminalUpdate{
		Status: execution.StatusCompleted,
		Output: map[string]any{"answer": 42.0},
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusCompleted, got.Status)
	assert.NotNil(t, got.CompletedAt)

	// A second terminal write must not overwrite the first.
	err = svc.Complete(ctx, exec.ID, TerminalUpdate{
		Status:       execution.StatusFailed,
		ErrorMessage: "late failure",
	})
	require.NoError(t, err)

	got, err = svc.Get(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusCompleted, got.Status)
	assert.Nil(t, got.ErrorMessage)
}

func TestExecutionService_CancelPending(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewExecutionService(client.Client)
	ctx := context.Background()

	exec, err := svc.Create(ctx, CreateInput{
		AgentID: "agent-1",
		Input:   map[string]any{"description": "task"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, exec.ID))

	got, err := svc.Get(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusCancelled, got.Status)
	assert.NotNil(t, got.CompletedAt)
}

func TestExecutionService_CancelRunningThenComplete(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewExecutionService(client.Client)
	ctx := context.Background()

	exec, err := svc.CreateRunning(ctx, CreateInput{
		AgentID: "agent-1",
		Input:   map[string]any{"description": "task"},
	}, "pod-a")
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, exec.ID))

	cancelled, err := svc.IsCancelled(ctx, exec.ID)
	require.NoError(t, err)
	assert.True(t, cancelled)

	// The worker's terminal write after observing the cancel must not
	// change the status again.
	err = svc.Complete(ctx, exec.ID, TerminalUpdate{Status: execution.StatusCompleted})
	require.NoError(t, err)

	got, err := svc.Get(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusCancelled, got.Status)
	assert.NotNil(t, got.CompletedAt)
}

func TestExecutionService_CancelTerminalFails(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewExecutionService(client.Client)
	ctx := context.Background()

	exec, err := svc.CreateRunning(ctx, CreateInput{
		AgentID: "agent-1",
		Input:   map[string]any{"description": "task"},
	}, "pod-a")
	require.NoError(t, err)
	require.NoError(t, svc.Complete(ctx, exec.ID, TerminalUpdate{Status: execution.StatusCompleted}))

	err = svc.Cancel(ctx, exec.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidState))
}

func TestExecutionService_GetNotFound(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewExecutionService(client.Client)

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}
