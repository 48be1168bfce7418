package gcalendar

import "time"

// ListEventsRequest is the input for listing calendar events.
type ListEventsRequest struct {
	CalendarID string // defaults to "primary"
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}

// Event is a simplified representation of a calendar event.
type Event struct {
	ID        string
	Summary   string
	StartTime time.Time
	EndTime   time.Time
	Location  string
}
