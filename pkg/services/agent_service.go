// Package services provides the persistence layer over the Ent client.
package services

import (
	"context"
	"fmt"

	"github.com/apa-platform/apacore/ent"
	"github.com/apa-platform/apacore/ent/agent"
)

// AgentService reads agent configuration. The execution core never mutates
// agents; lifecycle management lives outside this service.
type AgentService struct {
	client *ent.Client
}

// NewAgentService creates a new agent service.
func NewAgentService(client *ent.Client) *AgentService {
	return &AgentService{client: client}
}

// Get returns the agent by ID.
func (s *AgentService) Get(ctx context.Context, id string) (*ent.Agent, error) {
	if id == "" {
		return nil, NewValidationError("id", "agent id is required")
	}
	a, err := s.client.Agent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("agent %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return a, nil
}

// GetActive returns the agent by ID, requiring active status.
func (s *AgentService) GetActive(ctx context.Context, id string) (*ent.Agent, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Status != agent.StatusActive {
		return nil, NewValidationError("status", fmt.Sprintf("agent %s is %s", id, a.Status))
	}
	return a, nil
}
