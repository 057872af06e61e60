package services

import "strings"

// stripFences removes a leading ```json or ``` fence and a trailing ```
// fence from a model reply. Already-clean strings pass through unchanged.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// stripFencesAndQuotes additionally removes leading/trailing triple-quote
// markers some replies arrive wrapped in.
func stripFencesAndQuotes(s string) string {
	s = stripFences(s)
	s = strings.TrimPrefix(s, "'''")
	s = strings.TrimSuffix(s, "'''")
	return strings.TrimSpace(s)
}
