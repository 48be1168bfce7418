package insights

import "smartplan/internal/model"

// AnalyzeInput is the input for productivity analysis. Tasks and events are
// caller-supplied snapshots; nothing is read from storage.
type AnalyzeInput struct {
	Tasks  []model.TaskRecord
	Events []model.EventRecord
}

// Analysis summarizes task completion and productivity patterns.
type Analysis struct {
	// CompletionRate is a percentage in [0, 100].
	CompletionRate float64
	// AverageTaskMinutes is the mean creation-to-completion span of the
	// completed tasks, in minutes. Zero when nothing is completed.
	AverageTaskMinutes float64
	// PeakHours are the up-to-three hours of day with the most completions,
	// most frequent first.
	PeakHours []int
	// Distractions are human-readable hints about unproductive patterns.
	Distractions []string
}

// Recommendation is an actionable optimization hint.
type Recommendation struct {
	Type        string
	Title       string
	Description string
	Priority    string
}

// Insight is a human-readable reading of the analysis.
type Insight struct {
	Type     string // info or warning
	Title    string
	Message  string
	Priority string
}

// AnalyzeOutput is the result of productivity analysis.
type AnalyzeOutput struct {
	Analysis        Analysis
	Recommendations []Recommendation
	Insights        []Insight
}
