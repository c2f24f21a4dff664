package ai

import (
	"errors"
	"strings"
)

var errNoJSON = errors.New("no JSON found in response")

// stripCodeFences removes markdown ```json / ``` fence lines that models
// like to wrap JSON output in.
func stripCodeFences(s string) string {
	if strings.Contains(s, "```json") {
		s = strings.ReplaceAll(s, "```json\n", "")
		s = strings.ReplaceAll(s, "```json", "")
		s = strings.ReplaceAll(s, "```\n", "")
		s = strings.ReplaceAll(s, "```", "")
	} else if strings.Contains(s, "```") {
		s = strings.ReplaceAll(s, "```\n", "")
		s = strings.ReplaceAll(s, "```", "")
	}
	return strings.TrimSpace(s)
}

// extractJSON returns the substring from the first '{' to the last '}' in
// the input. Pragmatic handling for model output that wraps JSON in prose.
func extractJSON(s string) string {
	first := strings.Index(s, "{")
	last := strings.LastIndex(s, "}")
	if first == -1 || last == -1 || last < first {
		return ""
	}
	return s[first : last+1]
}

// extractJSONArray is extractJSON for top-level arrays.
func extractJSONArray(s string) string {
	first := strings.Index(s, "[")
	last := strings.LastIndex(s, "]")
	if first == -1 || last == -1 || last < first {
		return ""
	}
	return s[first : last+1]
}
