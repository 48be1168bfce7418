package usecase

import (
	"context"
	"fmt"
	"time"

	"smartplan/internal/schedule"
	"smartplan/pkg/timeslot"
)

const (
	reasonNextHour    = "Scheduled for next available hour"
	reasonNextWorkDay = "Scheduled for next available work day"

	confidenceNextHour    = 0.8
	confidenceNextWorkDay = 0.7

	notificationTypeReminder = "reminder"
)

// Optimal turns the best slot suggestion into a concrete start instant and
// derives the reminder notification for it. Without suggestions it falls
// back to the next free hour inside the working-hours window.
func (uc *implUseCase) Optimal(ctx context.Context, input schedule.OptimalInput) (schedule.OptimalOutput, error) {
	now := input.ReferenceNow
	if now.IsZero() {
		now = uc.clock()
	}

	workStart, workEnd := input.WorkHoursStart, input.WorkHoursEnd
	if workStart == 0 && workEnd == 0 {
		workStart, workEnd = uc.workHoursStart, uc.workHoursEnd
	}
	if workStart < 0 || workEnd > 23 || workStart > workEnd {
		return schedule.OptimalOutput{}, schedule.ErrInvalidWindow
	}

	scheduledAt, reason, confidence := uc.pickStart(input.Suggestions, now, workStart, workEnd)

	advance := input.ReminderAdvanceMinutes
	if advance <= 0 {
		advance = uc.reminderAdvanceMinutes
	}

	uc.l.Infof(ctx, "Optimal: task %q scheduled at %s (%s)", input.TaskTitle, scheduledAt, reason)

	return schedule.OptimalOutput{
		ScheduledAt: scheduledAt,
		Reason:      reason,
		Confidence:  confidence,
		Notification: schedule.NotificationPlan{
			NotificationTime: scheduledAt.Add(-time.Duration(advance) * time.Minute),
			AdvanceMinutes:   advance,
			Message:          fmt.Sprintf("Your task %q is scheduled to start in %d minutes", input.TaskTitle, advance),
			Type:             notificationTypeReminder,
		},
	}, nil
}

func (uc *implUseCase) pickStart(suggestions []timeslot.Suggestion, now time.Time, workStart, workEnd int) (time.Time, string, float64) {
	if len(suggestions) > 0 {
		best := suggestions[0]
		for _, s := range suggestions[1:] {
			if s.Confidence > best.Confidence {
				best = s
			}
		}
		at := time.Date(now.Year(), now.Month(), now.Day(), best.Hour, 0, 0, 0, now.Location())
		if !at.After(now) {
			at = at.AddDate(0, 0, 1)
		}
		return at, best.Reason, best.Confidence
	}

	nextHour := now.Hour() + 1
	switch {
	case nextHour < workStart:
		at := time.Date(now.Year(), now.Month(), now.Day(), workStart, 0, 0, 0, now.Location())
		return at, reasonNextHour, confidenceNextHour
	case nextHour > workEnd:
		at := time.Date(now.Year(), now.Month(), now.Day(), workStart, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
		return at, reasonNextWorkDay, confidenceNextWorkDay
	default:
		at := time.Date(now.Year(), now.Month(), now.Day(), nextHour, 0, 0, 0, now.Location())
		return at, reasonNextHour, confidenceNextHour
	}
}
