package planner

import (
	"time"

	"smartplan/pkg/taskparse"
)

// ParseInput is the input for natural-language task parsing.
type ParseInput struct {
	Description string
	// ReferenceNow is the instant treated as "now" during extraction and
	// composition. Zero means the usecase clock is used. Threading the
	// reference time through explicitly keeps parsing deterministic.
	ReferenceNow time.Time
}

// ParsedTask is the structured result of parsing one task description.
type ParsedTask struct {
	Title            string
	Description      string
	Category         string
	Priority         taskparse.Priority
	KeywordMatches   int
	EstimatedMinutes int
	Confidence       float64
	ExtractedDate    *time.Time
	ExtractedTime    *taskparse.ClockTime
	ScheduledAt      time.Time
	DueAt            *time.Time
	ReminderAt       time.Time
}

// ParseOutput is the result of the parse operation.
type ParseOutput struct {
	Task ParsedTask
}
