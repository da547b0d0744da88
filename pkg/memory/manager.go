// Package memory implements the context manager: it assembles the working
// context for a run, folds step results into it, and owns the memory write
// and retrieval path. Relational memory rows are the source of truth; the
// vector index is a best-effort acceleration layer.
package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/apa-platform/apacore/ent"
	"github.com/apa-platform/apacore/pkg/apa"
	"github.com/apa-platform/apacore/pkg/services"
	"github.com/apa-platform/apacore/pkg/vector"
)

// defaultRetrievalLimit is the number of memories surfaced into a new context.
const defaultRetrievalLimit = 5

// VectorIndex is the slice of the vector store the manager needs.
type VectorIndex interface {
	Embed(ctx context.Context, text string) []float32
	Index(ctx context.Context, id, content string, embedding []float32, metadata map[string]any) error
	Search(ctx context.Context, query string, topK int, filter map[string]any) ([]vector.Result, error)
}

// Manager is the context manager. The vector index may be nil, in which case
// retrieval always uses the recency fallback.
type Manager struct {
	memories *services.MemoryService
	index    VectorIndex
	logger   *slog.Logger

	// Execution-scoped shared state for multi-agent collaboration. In-memory
	// only; cleared when the execution finishes.
	sharedMu sync.Mutex
	shared   map[string]map[string]any
}

// NewManager creates a context manager.
func NewManager(memories *services.MemoryService, index VectorIndex, logger *slog.Logger) *Manager {
	return &Manager{
		memories: memories,
		index:    index,
		logger:   logger.With("component", "context_manager"),
		shared:   make(map[string]map[string]any),
	}
}

// LoadContext builds the initial context for a run: identity, the task, and
// the memories most relevant to the task description.
func (m *Manager) LoadContext(ctx context.Context, agentID, executionID string, task apa.Task) *apa.Context {
	return &apa.Context{
		TaskID:      task.ID,
		AgentID:     agentID,
		ExecutionID: executionID,
		Task:        task,
		Timestamp:   time.Now(),
		Memories:    m.RetrieveRelevantMemories(ctx, agentID, task.Description, defaultRetrievalLimit),
		Knowledge:   map[string]any{},
	}
}

// UpdateContext folds one step into the context: the action/observation pair
// is appended to the history, and a successful observation carrying a result
// updates shared knowledge under the action type (last writer wins).
func (m *Manager) UpdateContext(execCtx *apa.Context, action *apa.Action, observation apa.Observation) {
	execCtx.History = append(execCtx.History, apa.HistoryEntry{
		Action:      action,
		Observation: observation,
		Timestamp:   time.Now(),
	})

	if observation["status"] == "success" {
		if result, ok := observation["result"]; ok && result != nil {
			if execCtx.Knowledge == nil {
				execCtx.Knowledge = map[string]any{}
			}
			actionType := action.Type
			if actionType == "" {
				actionType = "unknown"
			}
			execCtx.Knowledge[actionType] = result
		}
	}
}

// StoreMemory writes one memory. The embedding is generated once and lands
// on the relational row and, best-effort, in the vector index under the same
// id. A failed index write leaves the memory reachable through the recency
// fallback.
func (m *Manager) StoreMemory(ctx context.Context, agentID, content, memoryType string, metadata map[string]any, importance *float64) (*ent.MemoryItem, error) {
	var embedding []float32
	if m.index != nil {
		embedding = m.index.Embed(ctx, content)
	}

	item, err := m.memories.Create(ctx, services.MemoryInput{
		AgentID:    agentID,
		MemoryType: memoryType,
		Content:    content,
		Embedding:  embedding,
		Metadata:   metadata,
		Importance: importance,
	})
	if err != nil {
		return nil, err
	}

	if m.index != nil {
		indexMeta := map[string]any{
			"agent_id":    agentID,
			"memory_type": memoryType,
			"created_at":  item.CreatedAt.Format(time.RFC3339),
		}
		if importance != nil {
			indexMeta["importance_score"] = *importance
		}
		for k, v := range metadata {
			indexMeta[k] = v
		}
		if err := m.index.Index(ctx, item.ID, content, embedding, indexMeta); err != nil {
			m.logger.Warn("Vector index write failed, memory remains recency-searchable",
				"memory_id", item.ID, "agent_id", agentID, "error", err)
		}
	}

	return item, nil
}

// RetrieveRelevantMemories returns up to limit memories for the agent,
// semantically ranked against query when the vector index is available,
// falling back to the most recent rows otherwise.
func (m *Manager) RetrieveRelevantMemories(ctx context.Context, agentID, query string, limit int) []apa.MemoryEntry {
	if limit <= 0 {
		limit = defaultRetrievalLimit
	}

	if m.index != nil && query != "" {
		results, err := m.index.Search(ctx, query, limit, map[string]any{"agent_id": agentID})
		if err == nil {
			entries := make([]apa.MemoryEntry, 0, len(results))
			for _, r := range results {
				entries = append(entries, apa.MemoryEntry{
					ID:         r.ID,
					MemoryType: metadataString(r.Metadata, "memory_type", "episodic"),
					Content:    r.Content,
					Score:      r.Score,
					Metadata:   r.Metadata,
				})
			}
			return entries
		}
		m.logger.Warn("Vector search failed, falling back to recent memories",
			"agent_id", agentID, "error", err)
	}

	return m.recentMemories(ctx, agentID, limit)
}

func (m *Manager) recentMemories(ctx context.Context, agentID string, limit int) []apa.MemoryEntry {
	items, err := m.memories.List(ctx, agentID, "", limit)
	if err != nil {
		m.logger.Error("Failed to load recent memories", "agent_id", agentID, "error", err)
		return nil
	}
	entries := make([]apa.MemoryEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, apa.MemoryEntry{
			ID:         item.ID,
			MemoryType: string(item.MemoryType),
			Content:    item.Content,
			Metadata:   item.ItemMetadata,
		})
	}
	return entries
}

// UpdateMemoryAccess records that a retrieved memory was used.
func (m *Manager) UpdateMemoryAccess(ctx context.Context, memoryID string) {
	if err := m.memories.TouchAccess(ctx, memoryID); err != nil {
		m.logger.Warn("Failed to update memory access", "memory_id", memoryID, "error", err)
	}
}

// SharedContext returns a copy of the execution-scoped shared state used for
// multi-agent collaboration. Unknown executions yield an empty state.
func (m *Manager) SharedContext(executionID string) map[string]any {
	m.sharedMu.Lock()
	defer m.sharedMu.Unlock()
	out := make(map[string]any, len(m.shared[executionID]))
	for k, v := range m.shared[executionID] {
		out[k] = v
	}
	return out
}

// UpdateSharedContext merges updates into the execution's shared state.
func (m *Manager) UpdateSharedContext(executionID string, updates map[string]any) {
	if len(updates) == 0 {
		return
	}
	m.sharedMu.Lock()
	defer m.sharedMu.Unlock()
	state, ok := m.shared[executionID]
	if !ok {
		state = make(map[string]any, len(updates))
		m.shared[executionID] = state
	}
	for k, v := range updates {
		state[k] = v
	}
}

// ClearSharedContext drops the execution's shared state.
func (m *Manager) ClearSharedContext(executionID string) {
	m.sharedMu.Lock()
	defer m.sharedMu.Unlock()
	delete(m.shared, executionID)
}

func metadataString(metadata map[string]any, key, fallback string) string {
	if s, ok := metadata[key].(string); ok && s != "" {
		return s
	}
	return fallback
}
