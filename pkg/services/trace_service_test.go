package services

import (
	"context"
	"errors"
	"testing"

	testdb "github.com/apa-platform/apacore/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceService_AppendAndListOrdered(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTraceService(client.Client)
	ctx := context.Background()

	// Append out of order; listing must return step order.
	for _, idx := range []int{1, 0, 2} {
		_, err := svc.Append(ctx, AppendInput{
			RunID:     "run-1",
			AgentID:   "agent-1",
			StepIndex: idx,
			Thought:   "thinking",
			Action:    map[string]any{"type": "search"},
		})
		require.NoError(t, err)
	}

	traces, err := svc.ListByRun(ctx, "run-1", 0)
	require.NoError(t, err)
	require.Len(t, traces, 3)
	for i, tr := range traces {
		assert.Equal(t, i, tr.StepIndex)
	}
}

func TestTraceService_DuplicateStepRejected(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTraceService(client.Client)
	ctx := context.Background()

	in := AppendInput{
		RunID:     "run-1",
		AgentID:   "agent-1",
		StepIndex: 0,
		Thought:   "first",
		Action:    map[string]any{"type": "finish"},
	}
	_, err := svc.Append(ctx, in)
	require.NoError(t, err)

	_, err = svc.Append(ctx, in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAlreadyExists))
}

func TestTraceService_AppendValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTraceService(client.Client)
	ctx := context.Background()

	_, err := svc.Append(ctx, AppendInput{AgentID: "a", StepIndex: 0, Action: map[string]any{}})
	assert.True(t, IsValidationError(err))

	_, err = svc.Append(ctx, AppendInput{RunID: "r", AgentID: "a", StepIndex: -1, Action: map[string]any{}})
	assert.True(t, IsValidationError(err))

	_, err = svc.Append(ctx, AppendInput{RunID: "r", AgentID: "a", StepIndex: 0})
	assert.True(t, IsValidationError(err))
}

func TestTraceService_RunsAreIsolated(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTraceService(client.Client)
	ctx := context.Background()

	for _, run := range []string{"run-a", "run-b"} {
		_, err := svc.Append(ctx, AppendInput{
			RunID:     run,
			AgentID:   "agent-1",
			StepIndex: 0,
			Thought:   "start",
			Action:    map[string]any{"type": "finish"},
		})
		require.NoError(t, err)
	}

	traces, err := svc.ListByRun(ctx, "run-a", 0)
	require.NoError(t, err)
	require.Len(t, traces, 1)
	assert.Equal(t, "run-a", traces[0].RunID)
}
