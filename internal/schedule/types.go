package schedule

import (
	"time"

	"smartplan/pkg/timeslot"
)

// SuggestInput is the input for slot suggestion. Busy hours can be given
// directly, derived from event start instants, or pulled from a configured
// calendar for Day.
type SuggestInput struct {
	BusyHours       []int
	EventStarts     []time.Time
	PreferredHours  []int // empty means the configured defaults
	WindowStartHour int   // zero window means the configured working hours
	WindowEndHour   int
	Day             time.Time // day to check against the calendar; zero skips it
}

// SuggestOutput is the result of slot suggestion.
type SuggestOutput struct {
	Suggestions    []timeslot.Suggestion
	AvailableSlots []timeslot.Slot
	Reasoning      string
	Confidence     float64
}

// OptimalInput is the input for composing a concrete optimal schedule from
// prior suggestions.
type OptimalInput struct {
	TaskTitle              string
	Suggestions            []timeslot.Suggestion
	ReferenceNow           time.Time // zero means the usecase clock
	WorkHoursStart         int       // zero pair means the configured working hours
	WorkHoursEnd           int
	ReminderAdvanceMinutes int // <=0 means the configured default
}

// NotificationPlan describes when and how to remind about a scheduled task.
type NotificationPlan struct {
	NotificationTime time.Time
	AdvanceMinutes   int
	Message          string
	Type             string
}

// OptimalOutput is a concrete scheduled instant with its rationale and the
// derived notification plan.
type OptimalOutput struct {
	ScheduledAt  time.Time
	Reason       string
	Confidence   float64
	Notification NotificationPlan
}
