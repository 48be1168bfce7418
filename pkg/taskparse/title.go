package taskparse

import "strings"

// MaxTitleLength bounds extracted titles.
const MaxTitleLength = 50

// ExtractTitle takes the first sentence or clause of text as a display title,
// trimmed and truncated to MaxTitleLength runes. Empty input yields an empty
// string.
func ExtractTitle(text string) string {
	first := text
	if idx := strings.IndexAny(text, ".!?"); idx >= 0 {
		first = text[:idx]
	}

	first = strings.TrimSpace(first)

	runes := []rune(first)
	if len(runes) > MaxTitleLength {
		return string(runes[:MaxTitleLength])
	}
	return first
}
