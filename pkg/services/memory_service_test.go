package services

import (
	"context"
	"testing"

	testdb "github.com/apa-platform/apacore/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryService_CreateListByType(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewMemoryService(client.Client)
	ctx := context.Background()

	_, err := svc.Create(ctx, MemoryInput{
		AgentID:    "agent-1",
		MemoryType: "episodic",
		Content:    "Action: search - Result: success",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, MemoryInput{
		AgentID:    "agent-1",
		MemoryType: "semantic",
		Content:    "Invoices are due within thirty days",
	})
	require.NoError(t, err)

	all, err := svc.List(ctx, "agent-1", "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	episodic, err := svc.List(ctx, "agent-1", "episodic", 0)
	require.NoError(t, err)
	require.Len(t, episodic, 1)
	assert.Equal(t, "Action: search - Result: success", episodic[0].Content)
}

func TestMemoryService_UnknownTypeRejected(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewMemoryService(client.Client)
	ctx := context.Background()

	_, err := svc.Create(ctx, MemoryInput{
		AgentID:    "agent-1",
		MemoryType: "prophetic",
		Content:    "x",
	})
	assert.True(t, IsValidationError(err))

	_, err = svc.List(ctx, "agent-1", "prophetic", 0)
	assert.True(t, IsValidationError(err))
}

func TestMemoryService_TouchAccess(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewMemoryService(client.Client)
	ctx := context.Background()

	item, err := svc.Create(ctx, MemoryInput{
		AgentID:    "agent-1",
		MemoryType: "episodic",
		Content:    "remembered",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, item.AccessCount)

	require.NoError(t, svc.TouchAccess(ctx, item.ID))
	require.NoError(t, svc.TouchAccess(ctx, item.ID))

	got, err := svc.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.AccessCount)
	assert.NotNil(t, got.LastAccessedAt)

	// Missing rows are tolerated.
	require.NoError(t, svc.TouchAccess(ctx, "missing"))
}

func TestFeedbackService_RecordAndList(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewFeedbackService(client.Client)
	ctx := context.Background()

	_, err := svc.Record(ctx, FeedbackInput{
		AgentID:      "agent-1",
		RunID:        "run-1",
		FeedbackType: "execution_outcome",
		Outcome:      "success",
		Success:      true,
	})
	require.NoError(t, err)

	items, err := svc.ListByAgent(ctx, "agent-1", 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "execution_outcome", items[0].FeedbackType)
	assert.True(t, items[0].Success)
}

func TestFeedbackService_Validation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewFeedbackService(client.Client)
	ctx := context.Background()

	_, err := svc.Record(ctx, FeedbackInput{FeedbackType: "manual", Outcome: "x"})
	assert.True(t, IsValidationError(err))

	_, err = svc.Record(ctx, FeedbackInput{AgentID: "a", Outcome: "x"})
	assert.True(t, IsValidationError(err))

	_, err = svc.Record(ctx, FeedbackInput{AgentID: "a", FeedbackType: "manual"})
	assert.True(t, IsValidationError(err))
}
