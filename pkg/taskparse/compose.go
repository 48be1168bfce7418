package taskparse

import "time"

// DefaultReminderAdvanceMinutes is the default lead time for reminders.
const DefaultReminderAdvanceMinutes = 30

// ComposeScheduledTime combines an extraction with the reference now into a
// concrete scheduled instant. Missing date defaults to now's date, missing
// time defaults to the next full hour. A result at or before now is pushed
// forward by exactly one day.
func ComposeScheduledTime(extracted ExtractedDateTime, now time.Time) time.Time {
	base := now
	if extracted.HasDate() {
		base = *extracted.Date
	}

	var scheduled time.Time
	if extracted.HasTime() {
		scheduled = time.Date(base.Year(), base.Month(), base.Day(),
			extracted.Time.Hour, extracted.Time.Minute, 0, 0, now.Location())
	} else {
		scheduled = time.Date(base.Year(), base.Month(), base.Day(),
			now.Hour()+1, 0, 0, 0, now.Location())
	}

	// Single-step push only; callers supplying a date far in the past get a
	// past instant back rather than a silent multi-day jump.
	if !scheduled.After(now) {
		scheduled = scheduled.AddDate(0, 0, 1)
	}

	return scheduled
}

// ReminderTime derives the notification instant as a fixed offset before the
// scheduled instant. advanceMinutes <= 0 falls back to the default. The
// result is not clamped to "not before now"; callers decide whether to
// suppress delivery.
func ReminderTime(scheduledAt time.Time, advanceMinutes int) time.Time {
	if advanceMinutes <= 0 {
		advanceMinutes = DefaultReminderAdvanceMinutes
	}
	return scheduledAt.Add(-time.Duration(advanceMinutes) * time.Minute)
}

// DueTime derives the due instant for a deadline-flagged extraction. When a
// date was extracted the composed scheduled instant is reused; otherwise a
// found clock time yields a fallback of now+24h. Without any date or time
// reference there is no due instant.
func DueTime(extracted ExtractedDateTime, scheduledAt, now time.Time) *time.Time {
	if !extracted.DeadlineHint {
		return nil
	}
	if extracted.HasDate() {
		due := scheduledAt
		return &due
	}
	if extracted.HasTime() {
		due := now.Add(24 * time.Hour)
		return &due
	}
	return nil
}
