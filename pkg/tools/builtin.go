package tools

import (
	"context"
	"fmt"
	"time"
)

// builtinTools returns the compiled-in tool set. Apart from calculate, the
// built-ins return structured stand-in results; real integrations hang off
// the tools table.
func builtinTools() []Tool {
	return []Tool{
		calculateTool(),
		{
			Name:        "search",
			Description: "Search for information on a topic",
			Schema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{"type": "string"},
				},
				"required": []any{"query"},
			},
			Handler: func(_ context.Context, params map[string]any) (map[string]any, error) {
				query, _ := params["query"].(string)
				return map[string]any{
					"status":  "completed",
					"query":   query,
					"results": []any{fmt.Sprintf("Search results for: %s", query)},
				}, nil
			},
		},
		{
			Name:        "http_request",
			Description: "Make an HTTP request to an external service",
			Schema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"url":    map[string]any{"type": "string"},
					"method": map[string]any{"type": "string"},
				},
				"required": []any{"url"},
			},
			Handler: func(_ context.Context, params map[string]any) (map[string]any, error) {
				url, _ := params["url"].(string)
				method, _ := params["method"].(string)
				if method == "" {
					method = "GET"
				}
				return map[string]any{
					"status":      "completed",
					"url":         url,
					"method":      method,
					"status_code": 200,
				}, nil
			},
		},
		{
			Name:        "database_query",
			Description: "Run a read-only query against a configured datasource",
			Schema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{"type": "string"},
				},
				"required": []any{"query"},
			},
			Handler: func(_ context.Context, params map[string]any) (map[string]any, error) {
				query, _ := params["query"].(string)
				return map[string]any{
					"status": "completed",
					"query":  query,
					"rows":   []any{},
				}, nil
			},
		},
		{
			Name:        "send_email",
			Description: "Send an email to a recipient",
			Schema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"to":      map[string]any{"type": "string"},
					"subject": map[string]any{"type": "string"},
					"body":    map[string]any{"type": "string"},
				},
				"required": []any{"to", "subject"},
			},
			Handler: func(_ context.Context, params map[string]any) (map[string]any, error) {
				to, _ := params["to"].(string)
				subject, _ := params["subject"].(string)
				return map[string]any{
					"status":  "sent",
					"to":      to,
					"subject": subject,
					"sent_at": time.Now().UTC().Format(time.RFC3339),
				}, nil
			},
		},
		{
			Name:        "file_operation",
			Description: "Read or write a file in the workspace",
			Schema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"operation": map[string]any{"type": "string"},
					"path":      map[string]any{"type": "string"},
				},
				"required": []any{"operation", "path"},
			},
			Handler: func(_ context.Context, params map[string]any) (map[string]any, error) {
				op, _ := params["operation"].(string)
				path, _ := params["path"].(string)
				return map[string]any{
					"status":    "completed",
					"operation": op,
					"path":      path,
				}, nil
			},
		},
	}
}
