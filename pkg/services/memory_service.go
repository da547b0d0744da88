package services

import (
	"context"
	"fmt"
	"time"

	"github.com/apa-platform/apacore/ent"
	"github.com/apa-platform/apacore/ent/memoryitem"
	"github.com/google/uuid"
)

// MemoryService manages relational memory rows. The relational row is the
// source of truth; the vector index entry keyed by the same id is
// best-effort and maintained by the context manager.
type MemoryService struct {
	client *ent.Client
}

// NewMemoryService creates a new memory service.
func NewMemoryService(client *ent.Client) *MemoryService {
	return &MemoryService{client: client}
}

// MemoryInput holds a memory to store.
type MemoryInput struct {
	AgentID    string
	MemoryType string
	Content    string
	Embedding  []float32
	Metadata   map[string]any
	Importance *float64
}

// Create persists a memory row and returns it.
func (s *MemoryService) Create(ctx context.Context, in MemoryInput) (*ent.MemoryItem, error) {
	if in.AgentID == "" {
		return nil, NewValidationError("agent_id", "agent id is required")
	}
	if in.Content == "" {
		return nil, NewValidationError("content", "content is required")
	}
	memType := memoryitem.MemoryType(in.MemoryType)
	if err := memoryitem.MemoryTypeValidator(memType); err != nil {
		return nil, NewValidationError("memory_type", fmt.Sprintf("unknown memory type %q", in.MemoryType))
	}

	q := s.client.MemoryItem.Create().
		SetID(uuid.NewString()).
		SetAgentID(in.AgentID).
		SetMemoryType(memType).
		SetContent(in.Content).
		SetItemMetadata(in.Metadata)
	if in.Embedding != nil {
		q = q.SetEmbedding(in.Embedding)
	}
	if in.Importance != nil {
		q = q.SetImportanceScore(*in.Importance)
	}

	item, err := q.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create memory: %w", err)
	}
	return item, nil
}

// Get returns a memory row by ID.
func (s *MemoryService) Get(ctx context.Context, id string) (*ent.MemoryItem, error) {
	item, err := s.client.MemoryItem.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("memory %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get memory: %w", err)
	}
	return item, nil
}

// List returns an agent's memories, newest first, optionally filtered by type.
func (s *MemoryService) List(ctx context.Context, agentID, memoryType string, limit int) ([]*ent.MemoryItem, error) {
	if limit <= 0 {
		limit = 50
	}
	q := s.client.MemoryItem.Query().
		Where(memoryitem.AgentIDEQ(agentID))
	if memoryType != "" {
		memType := memoryitem.MemoryType(memoryType)
		if err := memoryitem.MemoryTypeValidator(memType); err != nil {
			return nil, NewValidationError("memory_type", fmt.Sprintf("unknown memory type %q", memoryType))
		}
		q = q.Where(memoryitem.MemoryTypeEQ(memType))
	}
	items, err := q.
		Order(ent.Desc(memoryitem.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list memories: %w", err)
	}
	return items, nil
}

// TouchAccess increments the access counter and stamps last_accessed_at.
// Missing rows are ignored: the vector index may briefly reference memories
// deleted from the relational store.
func (s *MemoryService) TouchAccess(ctx context.Context, id string) error {
	err := s.client.MemoryItem.UpdateOneID(id).
		AddAccessCount(1).
		SetLastAccessedAt(time.Now()).
		Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to touch memory access: %w", err)
	}
	return nil
}
