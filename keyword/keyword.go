// Package keyword provides simple keyword extraction from document text.
// It is deliberately unsophisticated: downstream indexing pipelines use it
// for keyword-table style lookups and as a deterministic stand-in for
// LLM-based extraction in tests.
package keyword

import "strings"

// Stop words filtered out during extraction when filtering is enabled
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "to": true, "of": true, "and": true, "in": true, "that": true,
	"have": true, "it": true, "for": true, "not": true, "on": true, "with": true,
	"as": true, "you": true, "do": true, "at": true, "this": true, "but": true,
	"by": true, "from": true,
}

// Extract returns up to max distinct keywords from text, lowercased, trimmed
// of punctuation, in first-occurrence order. With filterStopwords set, common
// English stop words are dropped. max <= 0 means no limit.
func Extract(text string, max int, filterStopwords bool) []string {
	words := strings.Fields(text)

	keywords := make([]string, 0, len(words))
	seen := make(map[string]bool, len(words))
	for _, word := range words {
		cleaned := strings.ToLower(strings.Trim(word, ".,!?;:'\"-()[]{}"))

		if cleaned == "" || seen[cleaned] {
			continue
		}
		if filterStopwords && stopWords[cleaned] {
			continue
		}

		seen[cleaned] = true
		keywords = append(keywords, cleaned)
		if max > 0 && len(keywords) == max {
			break
		}
	}

	return keywords
}
