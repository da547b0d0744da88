package memory

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apa-platform/apacore/ent"
	"github.com/apa-platform/apacore/pkg/apa"
	"github.com/apa-platform/apacore/pkg/services"
	"github.com/apa-platform/apacore/pkg/vector"
	testdb "github.com/apa-platform/apacore/test/database"
)

// stubEmbeddingDim is the vector width the stub index reports.
const stubEmbeddingDim = 4

// stubIndex records writes and serves canned search results.
type stubIndex struct {
	indexed   map[string]string
	vectors   map[string][]float32
	results   []vector.Result
	indexErr  error
	searchErr error

	lastQuery  string
	lastFilter map[string]any
}

func newStubIndex() *stubIndex {
	return &stubIndex{
		indexed: make(map[string]string),
		vectors: make(map[string][]float32),
	}
}

func (s *stubIndex) Embed(_ context.Context, _ string) []float32 {
	return make([]float32, stubEmbeddingDim)
}

func (s *stubIndex) Index(_ context.Context, id, content string, embedding []float32, _ map[string]any) error {
	if s.indexErr != nil {
		return s.indexErr
	}
	s.indexed[id] = content
	s.vectors[id] = embedding
	return nil
}

func (s *stubIndex) Search(_ context.Context, query string, _ int, filter map[string]any) ([]vector.Result, error) {
	s.lastQuery = query
	s.lastFilter = filter
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return s.results, nil
}

func newTestManager(t *testing.T, index VectorIndex) (*Manager, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	svc := services.NewMemoryService(client.Client)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewManager(svc, index, logger), client.Client
}

func createMemoryAgent(t *testing.T, client *ent.Client, id string) {
	t.Helper()
	_, err := client.Agent.Create().
		SetID(id).
		SetName("memory agent").
		Save(context.Background())
	require.NoError(t, err)
}

func TestLoadContext(t *testing.T) {
	index := newStubIndex()
	index.results = []vector.Result{
		{ID: "m1", Content: "customer prefers email", Score: 0.91, Metadata: map[string]any{"memory_type": "semantic"}},
	}
	mgr, client := newTestManager(t, index)
	createMemoryAgent(t, client, "agent-1")

	task := apa.Task{ID: "task-1", Description: "contact the customer"}
	execCtx := mgr.LoadContext(context.Background(), "agent-1", "exec-1", task)

	assert.Equal(t, "agent-1", execCtx.AgentID)
	assert.Equal(t, "exec-1", execCtx.ExecutionID)
	assert.Equal(t, "task-1", execCtx.TaskID)
	assert.Equal(t, task, execCtx.Task)
	assert.False(t, execCtx.Timestamp.IsZero())
	assert.NotNil(t, execCtx.Knowledge)
	assert.Empty(t, execCtx.History)
	require.Len(t, execCtx.Memories, 1)
	assert.Equal(t, "semantic", execCtx.Memories[0].MemoryType)
	assert.Equal(t, "contact the customer", index.lastQuery)
	assert.Equal(t, map[string]any{"agent_id": "agent-1"}, index.lastFilter)
}

func TestUpdateContext(t *testing.T) {
	mgr, _ := newTestManager(t, newStubIndex())
	execCtx := &apa.Context{Knowledge: map[string]any{}}

	action := &apa.Action{Type: "data_read", Parameters: map[string]any{"table": "orders"}}
	mgr.UpdateContext(execCtx, action, apa.Observation{
		"status": "success",
		"result": map[string]any{"rows": 3},
	})

	require.Len(t, execCtx.History, 1)
	assert.Equal(t, action, execCtx.History[0].Action)
	assert.False(t, execCtx.History[0].Timestamp.IsZero())
	assert.Equal(t, map[string]any{"rows": 3}, execCtx.Knowledge["data_read"])

	// Failed observations leave shared knowledge untouched.
	mgr.UpdateContext(execCtx, &apa.Action{Type: "http_request"}, apa.Observation{
		"status": "error",
		"result": map[string]any{"code": 500},
	})
	assert.Len(t, execCtx.History, 2)
	assert.NotContains(t, execCtx.Knowledge, "http_request")

	// Last writer wins per action type.
	mgr.UpdateContext(execCtx, action, apa.Observation{
		"status": "success",
		"result": map[string]any{"rows": 9},
	})
	assert.Equal(t, map[string]any{"rows": 9}, execCtx.Knowledge["data_read"])
}

func TestStoreMemory_WritesRowAndIndex(t *testing.T) {
	index := newStubIndex()
	mgr, client := newTestManager(t, index)
	createMemoryAgent(t, client, "agent-1")
	ctx := context.Background()

	importance := 0.8
	item, err := mgr.StoreMemory(ctx, "agent-1", "resolved ticket by refund", "episodic",
		map[string]any{"ticket": "42"}, &importance)
	require.NoError(t, err)

	stored, err := client.MemoryItem.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "resolved ticket by refund", stored.Content)
	assert.Equal(t, "resolved ticket by refund", index.indexed[item.ID])
}

func TestStoreMemory_EmbeddingOnRowMatchesIndex(t *testing.T) {
	index := newStubIndex()
	mgr, client := newTestManager(t, index)
	createMemoryAgent(t, client, "agent-1")
	ctx := context.Background()

	item, err := mgr.StoreMemory(ctx, "agent-1", "remember the refund path", "semantic", nil, nil)
	require.NoError(t, err)

	// The embedding is generated once: the relational row and the index
	// entry carry the same vector at the configured width.
	stored, err := client.MemoryItem.Get(ctx, item.ID)
	require.NoError(t, err)
	require.Len(t, stored.Embedding, stubEmbeddingDim)
	assert.Equal(t, stored.Embedding, index.vectors[item.ID])

	// Without a vector layer there is nothing to embed with; the row stays
	// recency-searchable and carries no vector.
	bare, client2 := newTestManager(t, nil)
	createMemoryAgent(t, client2, "agent-2")
	item, err = bare.StoreMemory(ctx, "agent-2", "no vector layer", "episodic", nil, nil)
	require.NoError(t, err)
	stored, err = client2.MemoryItem.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Embedding)
}

func TestStoreMemory_IndexFailureIsBestEffort(t *testing.T) {
	index := newStubIndex()
	index.indexErr = errors.New("qdrant unreachable")
	mgr, client := newTestManager(t, index)
	createMemoryAgent(t, client, "agent-1")
	ctx := context.Background()

	item, err := mgr.StoreMemory(ctx, "agent-1", "still stored", "episodic", nil, nil)
	require.NoError(t, err)

	_, err = client.MemoryItem.Get(ctx, item.ID)
	assert.NoError(t, err)
}

func TestStoreMemory_InvalidTypeRejected(t *testing.T) {
	mgr, client := newTestManager(t, newStubIndex())
	createMemoryAgent(t, client, "agent-1")

	_, err := mgr.StoreMemory(context.Background(), "agent-1", "x", "holographic", nil, nil)
	assert.True(t, services.IsValidationError(err))
}

func TestRetrieveRelevantMemories_RecencyFallbackOnSearchError(t *testing.T) {
	index := newStubIndex()
	index.searchErr = errors.New("backend down")
	mgr, client := newTestManager(t, index)
	createMemoryAgent(t, client, "agent-1")
	ctx := context.Background()

	for _, content := range []string{"first", "second", "third"} {
		_, err := mgr.StoreMemory(ctx, "agent-1", content, "episodic", nil, nil)
		require.NoError(t, err)
	}

	entries := mgr.RetrieveRelevantMemories(ctx, "agent-1", "anything", 2)

	require.Len(t, entries, 2)
	assert.Equal(t, "third", entries[0].Content)
	assert.Equal(t, "second", entries[1].Content)
}

func TestRetrieveRelevantMemories_NilIndexUsesRecency(t *testing.T) {
	mgr, client := newTestManager(t, nil)
	createMemoryAgent(t, client, "agent-1")
	ctx := context.Background()

	_, err := mgr.StoreMemory(ctx, "agent-1", "only memory", "semantic", nil, nil)
	require.NoError(t, err)

	entries := mgr.RetrieveRelevantMemories(ctx, "agent-1", "query", 5)

	require.Len(t, entries, 1)
	assert.Equal(t, "only memory", entries[0].Content)
	assert.Equal(t, "semantic", entries[0].MemoryType)
}

func TestUpdateMemoryAccess(t *testing.T) {
	mgr, client := newTestManager(t, newStubIndex())
	createMemoryAgent(t, client, "agent-1")
	ctx := context.Background()

	item, err := mgr.StoreMemory(ctx, "agent-1", "tracked", "episodic", nil, nil)
	require.NoError(t, err)

	mgr.UpdateMemoryAccess(ctx, item.ID)
	mgr.UpdateMemoryAccess(ctx, item.ID)

	stored, err := client.MemoryItem.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.AccessCount)
	assert.NotNil(t, stored.LastAccessedAt)

	// Unknown ids are tolerated.
	mgr.UpdateMemoryAccess(ctx, "no-such-memory")
}

func TestSharedContext(t *testing.T) {
	mgr, _ := newTestManager(t, nil)

	assert.Empty(t, mgr.SharedContext("run-1"))

	mgr.UpdateSharedContext("run-1", map[string]any{"handoff": "agent-2"})
	mgr.UpdateSharedContext("run-1", map[string]any{"status": "in_progress"})
	mgr.UpdateSharedContext("run-2", map[string]any{"handoff": "agent-3"})

	state := mgr.SharedContext("run-1")
	assert.Equal(t, "agent-2", state["handoff"])
	assert.Equal(t, "in_progress", state["status"])

	// Mutating the returned copy does not leak back.
	state["handoff"] = "tampered"
	assert.Equal(t, "agent-2", mgr.SharedContext("run-1")["handoff"])

	mgr.ClearSharedContext("run-1")
	assert.Empty(t, mgr.SharedContext("run-1"))
	assert.Equal(t, "agent-3", mgr.SharedContext("run-2")["handoff"])
}
