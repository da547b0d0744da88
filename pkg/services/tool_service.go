package services

import (
	"context"
	"fmt"

	"github.com/apa-platform/apacore/ent"
	"github.com/apa-platform/apacore/ent/tool"
)

// ToolService reads database-declared tool definitions.
type ToolService struct {
	client *ent.Client
}

// NewToolService creates a new tool service.
func NewToolService(client *ent.Client) *ToolService {
	return &ToolService{client: client}
}

// GetActiveByName returns the active tool with the given name.
func (s *ToolService) GetActiveByName(ctx context.Context, name string) (*ent.Tool, error) {
	t, err := s.client.Tool.Query().
		Where(tool.NameEQ(name), tool.StatusEQ(tool.StatusActive)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("tool %s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get tool: %w", err)
	}
	return t, nil
}

// ListActive returns all active tools ordered by name.
func (s *ToolService) ListActive(ctx context.Context) ([]*ent.Tool, error) {
	tools, err := s.client.Tool.Query().
		Where(tool.StatusEQ(tool.StatusActive)).
		Order(ent.Asc(tool.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}
	return tools, nil
}
