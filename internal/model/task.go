package model

import "time"

// TaskRecord is a caller-supplied task snapshot used for schedule and
// productivity analysis. This service does not persist tasks; records arrive
// with each request.
type TaskRecord struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"` // low, medium, high
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// EventRecord is a caller-supplied calendar event snapshot.
type EventRecord struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
