package client

import (
	"encoding/json"
	"strings"
)

// ParseJSONFields decodes string values that look like JSON objects or
// arrays in place. A value that fails to parse is kept verbatim, so a note
// that happens to start with "{" survives untouched. Non-string values pass
// through.
func ParseJSONFields(m map[string]any) map[string]any {
	for k, v := range m {
		s, ok := v.(string)
		if !ok {
			continue
		}
		t := strings.TrimSpace(s)
		if !strings.HasPrefix(t, "{") && !strings.HasPrefix(t, "[") {
			continue
		}
		var parsed any
		if err := json.Unmarshal([]byte(t), &parsed); err != nil {
			continue
		}
		m[k] = parsed
	}
	return m
}
