package reasoning

import (
	"encoding/json"
	"strings"

	"github.com/apa-platform/apacore/pkg/apa"
)

// ParsedResponse is the structured form of one LLM completion.
type ParsedResponse struct {
	Thought    string
	Action     *apa.Action
	Reflection string
}

// parser section labels, matched case-insensitively at line starts.
const (
	sectionNone = iota
	sectionThought
	sectionAction
	sectionActionInput
	sectionResult
)

// ParseResponse extracts thought, action, and reflection from a completion.
//
// Expected format:
//
//	Thought: [reasoning]
//	Action: [action_type]
//	Action Input: [JSON parameters]
//
// or, for completion:
//
//	Thought: [why the task is complete]
//	Action: finish
//	Result: [final result]
//
// The parser is forgiving: lines that belong to no section are ignored,
// continuation lines accumulate into the current section, and a missing
// Action defaults to finish so malformed output still terminates a run.
func ParseResponse(content string) *ParsedResponse {
	var thought, actionType, actionInput, result strings.Builder
	section := sectionNone

	appendTo := func(b *strings.Builder, s string) {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(s)
	}

	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)

		switch {
		case strings.HasPrefix(lower, "thought:"):
			section = sectionThought
			appendTo(&thought, valueAfterColon(trimmed))
		case strings.HasPrefix(lower, "action input:"):
			section = sectionActionInput
			appendTo(&actionInput, valueAfterColon(trimmed))
		case strings.HasPrefix(lower, "action:"):
			section = sectionAction
			appendTo(&actionType, valueAfterColon(trimmed))
		case strings.HasPrefix(lower, "result:"):
			section = sectionResult
			appendTo(&result, valueAfterColon(trimmed))
		default:
			switch section {
			case sectionThought:
				appendTo(&thought, trimmed)
			case sectionActionInput:
				appendTo(&actionInput, trimmed)
			case sectionResult:
				appendTo(&result, trimmed)
			}
		}
	}

	actType := strings.TrimSpace(strings.Split(actionType.String(), "\n")[0])
	if actType == "" {
		actType = apa.ActionFinish
	}

	action := &apa.Action{
		Type:       actType,
		Parameters: parseJSONObject(actionInput.String()),
	}
	if action.Type == apa.ActionFinish && result.Len() > 0 {
		action.Result = parseJSONObject(result.String())
	}

	return &ParsedResponse{
		Thought:    thought.String(),
		Action:     action,
		Reflection: result.String(),
	}
}

func valueAfterColon(line string) string {
	_, after, _ := strings.Cut(line, ":")
	return strings.TrimSpace(after)
}

// parseJSONObject decodes s as a JSON object, wrapping non-JSON input as
// {"raw": s}. Empty input yields an empty map.
func parseJSONObject(s string) map[string]any {
	s = strings.TrimSpace(s)
	if s == "" {
		return map[string]any{}
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(s), &obj); err == nil {
		return obj
	}
	return map[string]any{"raw": s}
}
