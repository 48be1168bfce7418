package usecase

import (
	"context"
	"time"

	"smartplan/internal/schedule"
	"smartplan/pkg/gcalendar"
	"smartplan/pkg/timeslot"
)

// Overall response framing, fixed by product behavior.
const (
	suggestReasoning  = "Based on your productivity patterns and current schedule"
	suggestConfidence = 0.85
)

// Suggest ranks free preferred hours within the working-hours window.
// Busy hours are the union of the explicit list, the supplied event start
// hours, and (when configured) the calendar events of input.Day.
func (uc *implUseCase) Suggest(ctx context.Context, input schedule.SuggestInput) (schedule.SuggestOutput, error) {
	start, end := input.WindowStartHour, input.WindowEndHour
	if start == 0 && end == 0 {
		start, end = uc.workHoursStart, uc.workHoursEnd
	}
	if start < 0 || end > 23 || start > end {
		return schedule.SuggestOutput{}, schedule.ErrInvalidWindow
	}

	busy := timeslot.BusyHoursFromEvents(input.EventStarts)
	for _, hour := range input.BusyHours {
		busy[hour] = true
	}
	for hour := range uc.calendarBusyHours(ctx, input.Day) {
		busy[hour] = true
	}

	preferred := input.PreferredHours
	if len(preferred) == 0 {
		preferred = uc.preferredHours
	}

	slotCtx := timeslot.Context{BusyHours: busy, PreferredHours: preferred}
	suggestions := timeslot.Suggest(slotCtx, start, end)

	uc.l.Infof(ctx, "Suggest: %d busy hours, %d suggestions", len(busy), len(suggestions))

	return schedule.SuggestOutput{
		Suggestions:    suggestions,
		AvailableSlots: timeslot.AvailableSlots(busy, start, end),
		Reasoning:      suggestReasoning,
		Confidence:     suggestConfidence,
	}, nil
}

// calendarBusyHours pulls busy hours for day from the configured calendar.
// A missing calendar or a lookup failure yields no busy hours; scheduling
// still works from the caller-supplied context.
func (uc *implUseCase) calendarBusyHours(ctx context.Context, day time.Time) map[int]bool {
	if uc.calendar == nil || day.IsZero() {
		return nil
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	events, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.calendarID,
		TimeMin:    dayStart,
		TimeMax:    dayStart.AddDate(0, 0, 1),
	})
	if err != nil {
		uc.l.Warnf(ctx, "calendarBusyHours: calendar lookup failed (non-fatal): %v", err)
		return nil
	}

	starts := make([]time.Time, 0, len(events))
	for _, event := range events {
		starts = append(starts, event.StartTime)
	}
	return timeslot.BusyHoursFromEvents(starts)
}
