// Package tools provides the tool registry: built-in handlers plus
// database-declared tool definitions, resolved by name at execution time.
package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/apa-platform/apacore/ent"
	"github.com/apa-platform/apacore/pkg/services"
)

// Handler executes one tool invocation.
type Handler func(ctx context.Context, params map[string]any) (map[string]any, error)

// Tool is a registered built-in.
type Tool struct {
	Name        string
	Description string
	Schema      map[string]any
	Handler     Handler
}

// Registry resolves and executes tools. Built-ins win name collisions with
// database-declared tools.
type Registry struct {
	builtins map[string]Tool
	toolSvc  *services.ToolService
}

// NewRegistry creates a registry with all built-in tools registered.
// toolSvc may be nil, disabling database-declared tools.
func NewRegistry(toolSvc *services.ToolService) *Registry {
	r := &Registry{
		builtins: make(map[string]Tool),
		toolSvc:  toolSvc,
	}
	for _, t := range builtinTools() {
		r.builtins[t.Name] = t
	}
	return r
}

// Execute runs the named tool with the given parameters. Unknown names are
// not an error: the result carries the available tool list so the model can
// correct itself on the next step.
func (r *Registry) Execute(ctx context.Context, name string, params map[string]any) (map[string]any, error) {
	if t, ok := r.builtins[name]; ok {
		return t.Handler(ctx, params)
	}

	if r.toolSvc != nil {
		dbTool, err := r.toolSvc.GetActiveByName(ctx, name)
		if err == nil {
			return executeDeclaredTool(dbTool, params), nil
		}
		if !errors.Is(err, services.ErrNotFound) {
			return nil, fmt.Errorf("failed to resolve tool %s: %w", name, err)
		}
	}

	return map[string]any{
		"status":          "error",
		"error":           fmt.Sprintf("Tool '%s' not found", name),
		"available_tools": r.Available(ctx, nil),
	}, nil
}

// executeDeclaredTool handles database-declared tools that have no compiled
// handler. They acknowledge the invocation with a structured result so the
// reasoning loop can continue.
func executeDeclaredTool(t *ent.Tool, params map[string]any) map[string]any {
	slog.Debug("Executing declared tool", "tool", t.Name)
	return map[string]any{
		"status":     "completed",
		"tool":       t.Name,
		"parameters": params,
	}
}

// Schema returns a tool's descriptor as {name, description, parameters},
// nil when unknown.
func (r *Registry) Schema(ctx context.Context, name string) map[string]any {
	if t, ok := r.builtins[name]; ok {
		return map[string]any{
			"name":        t.Name,
			"description": t.Description,
			"parameters":  t.Schema,
		}
	}
	if r.toolSvc != nil {
		if dbTool, err := r.toolSvc.GetActiveByName(ctx, name); err == nil {
			return map[string]any{
				"name":        dbTool.Name,
				"description": dbTool.Description,
				"parameters":  dbTool.FunctionSchema,
			}
		}
	}
	return nil
}

// Available returns the tool names an agent may invoke. An empty agent tool
// list means everything registered; otherwise the list is intersected with
// known tools.
func (r *Registry) Available(ctx context.Context, agentTools []string) []string {
	known := make(map[string]bool, len(r.builtins))
	var names []string
	for name := range r.builtins {
		known[name] = true
	}
	if r.toolSvc != nil {
		dbTools, err := r.toolSvc.ListActive(ctx)
		if err != nil {
			slog.Warn("Failed to list database tools", "error", err)
		}
		for _, t := range dbTools {
			known[t.Name] = true
		}
	}

	if len(agentTools) == 0 {
		for name := range known {
			names = append(names, name)
		}
		return names
	}
	for _, name := range agentTools {
		if known[name] {
			names = append(names, name)
		}
	}
	return names
}

// Has reports whether the tool can be resolved.
func (r *Registry) Has(ctx context.Context, name string) bool {
	if _, ok := r.builtins[name]; ok {
		return true
	}
	if r.toolSvc != nil {
		if _, err := r.toolSvc.GetActiveByName(ctx, name); err == nil {
			return true
		}
	}
	return false
}
