package taskparse

import "strings"

// Default keyword set and thresholds for priority classification.
var defaultPriorityKeywords = []string{"urgent", "important", "critical", "asap", "deadline", "due"}

const defaultHighThreshold = 3

// PriorityClassifier maps urgency-keyword counts in text to a three-level
// priority. Counting is case-insensitive substring occurrence counting: a
// keyword appearing twice counts twice, and overlapping list entries matching
// the same clause are counted separately.
type PriorityClassifier struct {
	keywords      []string
	highThreshold int
}

// NewPriorityClassifier creates a classifier with the default keyword set
// (urgent, important, critical, asap, deadline, due) and thresholds.
func NewPriorityClassifier() *PriorityClassifier {
	return &PriorityClassifier{
		keywords:      defaultPriorityKeywords,
		highThreshold: defaultHighThreshold,
	}
}

// NewPriorityClassifierWithKeywords creates a classifier with a custom
// keyword set. highThreshold <= 0 falls back to the default.
func NewPriorityClassifierWithKeywords(keywords []string, highThreshold int) *PriorityClassifier {
	if len(keywords) == 0 {
		keywords = defaultPriorityKeywords
	}
	if highThreshold <= 0 {
		highThreshold = defaultHighThreshold
	}
	return &PriorityClassifier{keywords: keywords, highThreshold: highThreshold}
}

// Classify counts keyword occurrences in text and maps the count to a
// priority: count >= highThreshold is high, count == 0 is low, anything in
// between is medium. It also returns the raw count.
func (c *PriorityClassifier) Classify(text string) (Priority, int) {
	lower := strings.ToLower(text)

	count := 0
	for _, kw := range c.keywords {
		count += strings.Count(lower, kw)
	}

	switch {
	case count >= c.highThreshold:
		return PriorityHigh, count
	case count == 0:
		return PriorityLow, count
	default:
		return PriorityMedium, count
	}
}
