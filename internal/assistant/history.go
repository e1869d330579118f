package assistant

import (
	"encoding/json"
	"strings"
)

// ParseHistory decodes the raw history field. Anything that is not a JSON
// array of objects yields an empty history; within an element, non-string or
// missing fields read as empty strings. This step never fails.
func ParseHistory(raw json.RawMessage) []Turn {
	if len(raw) == 0 {
		return nil
	}
	var items []map[string]any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	turns := make([]Turn, 0, len(items))
	for _, item := range items {
		role, _ := item["role"].(string)
		content, _ := item["content"].(string)
		turns = append(turns, Turn{Role: role, Content: content})
	}
	return turns
}

// FormatHistory renders prior turns as a role-prefixed transcript, one line
// per turn, preserving order. Roles match case-insensitively; turns with an
// unrecognized role are dropped.
func FormatHistory(turns []Turn) string {
	lines := make([]string, 0, len(turns))
	for _, t := range turns {
		content := strings.TrimSpace(t.Content)
		switch strings.ToLower(t.Role) {
		case "user":
			lines = append(lines, "User: "+content)
		case "assistant", "bot":
			lines = append(lines, "AI: "+content)
		}
	}
	return strings.Join(lines, "\n")
}
