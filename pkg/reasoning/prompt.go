package reasoning

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/apa-platform/apacore/ent"
	"github.com/apa-platform/apacore/pkg/apa"
)

// BuildPrompt assembles the ReAct prompt: system prompt, instructions, task,
// available tools, step history, working context, and format directions, in
// that order. History steps are numbered from 1.
func BuildPrompt(agent *ent.Agent, task apa.Task, context *apa.Context, availableTools []string, actions []*apa.Action, observations []apa.Observation) string {
	var b strings.Builder

	systemPrompt := agent.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = "You are a helpful AI agent."
	}
	b.WriteString(systemPrompt)
	b.WriteString("\n")

	if agent.Instructions != "" {
		b.WriteString("\nInstructions:\n")
		b.WriteString(agent.Instructions)
		b.WriteString("\n")
	}

	b.WriteString("\nTask: ")
	if task.Description != "" {
		b.WriteString(task.Description)
	} else {
		b.WriteString("Complete the task.")
	}
	b.WriteString("\n")
	if len(task.Parameters) > 0 {
		b.WriteString("Task Parameters: ")
		b.WriteString(compactJSON(task.Parameters))
		b.WriteString("\n")
	}

	b.WriteString("\nAvailable Tools:\n")
	for _, tool := range availableTools {
		fmt.Fprintf(&b, "- %s\n", tool)
	}

	b.WriteString("\nPrevious Steps:")
	for i := 0; i < len(actions) && i < len(observations); i++ {
		desc := actions[i].Description
		if desc == "" {
			desc = compactJSON(actions[i].Parameters)
		}
		status, _ := observations[i]["status"].(string)
		fmt.Fprintf(&b, "\nStep %d:\n", i+1)
		fmt.Fprintf(&b, "Action: %s - %s\n", actions[i].Type, desc)
		fmt.Fprintf(&b, "Observation: %s - %s\n", status, compactJSON(observations[i]["result"]))
	}
	b.WriteString("\n")

	b.WriteString("\nCurrent Context:\n")
	b.WriteString(contextJSON(context))
	b.WriteString("\n")

	b.WriteString(`
Based on the task, previous steps, and current context, determine the next action.
Use the following format:

Thought: [Your reasoning about what to do next]
Action: [The action to take]
Action Input: [The input for the action as JSON]

If the task is complete, use:
Thought: [Explain why the task is complete]
Action: finish
Result: [The final result]
`)

	return b.String()
}

func compactJSON(v any) string {
	if v == nil {
		return "{}"
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

func contextJSON(c *apa.Context) string {
	if c == nil {
		return "{}"
	}
	return compactJSON(c)
}
