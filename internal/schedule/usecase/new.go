package usecase

import (
	"context"
	"time"

	"smartplan/pkg/gcalendar"
	pkgLog "smartplan/pkg/log"
	"smartplan/pkg/timeslot"
)

// CalendarLister abstracts the calendar client for mocking.
type CalendarLister interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

type implUseCase struct {
	l          pkgLog.Logger
	calendar   CalendarLister // optional
	calendarID string

	workHoursStart         int
	workHoursEnd           int
	preferredHours         []int
	reminderAdvanceMinutes int

	clock func() time.Time
}

// Config tunes the schedule usecase defaults.
type Config struct {
	WorkHoursStart         int
	WorkHoursEnd           int
	PreferredHours         []int
	ReminderAdvanceMinutes int
	CalendarID             string
}

// New creates a new schedule UseCase instance. calendar may be nil.
func New(l pkgLog.Logger, calendar CalendarLister, cfg Config) *implUseCase {
	start, end := cfg.WorkHoursStart, cfg.WorkHoursEnd
	if start == 0 && end == 0 {
		start, end = timeslot.DefaultWindowStartHour, timeslot.DefaultWindowEndHour
	}

	preferred := cfg.PreferredHours
	if len(preferred) == 0 {
		preferred = []int{9, 10, 11, 14, 15, 16}
	}

	advance := cfg.ReminderAdvanceMinutes
	if advance <= 0 {
		advance = 30
	}

	return &implUseCase{
		l:                      l,
		calendar:               calendar,
		calendarID:             cfg.CalendarID,
		workHoursStart:         start,
		workHoursEnd:           end,
		preferredHours:         preferred,
		reminderAdvanceMinutes: advance,
		clock:                  time.Now,
	}
}
