package taskparse

import "time"

// Priority is the three-level task priority.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ClockTime is a wall-clock time of day without a date.
type ClockTime struct {
	Hour   int // 0-23
	Minute int // 0-59
}

// ExtractedDateTime is the result of scanning free text for date and time
// references. Nil fields mean "not found"; extraction never fails.
type ExtractedDateTime struct {
	Date         *time.Time // calendar date, time-of-day component is midnight
	Time         *ClockTime
	DeadlineHint bool // text contained "due" or "deadline"
}

// HasDate reports whether a calendar date was found.
func (e ExtractedDateTime) HasDate() bool { return e.Date != nil }

// HasTime reports whether a clock time was found.
func (e ExtractedDateTime) HasTime() bool { return e.Time != nil }
