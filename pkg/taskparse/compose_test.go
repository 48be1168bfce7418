package taskparse_test

import (
	"testing"
	"time"

	"smartplan/pkg/taskparse"
)

func TestComposeScheduledTime(t *testing.T) {
	now := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)

	date := func(y int, m time.Month, d int) *time.Time {
		v := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &v
	}
	clock := func(h, min int) *taskparse.ClockTime {
		return &taskparse.ClockTime{Hour: h, Minute: min}
	}

	tests := []struct {
		name      string
		extracted taskparse.ExtractedDateTime
		now       time.Time
		want      time.Time
	}{
		{
			name:      "Date and time",
			extracted: taskparse.ExtractedDateTime{Date: date(2024, 1, 16), Time: clock(15, 0)},
			now:       now,
			want:      time.Date(2024, 1, 16, 15, 0, 0, 0, time.UTC),
		},
		{
			name:      "Date only defaults to next hour",
			extracted: taskparse.ExtractedDateTime{Date: date(2024, 1, 20)},
			now:       now,
			want:      time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC),
		},
		{
			name:      "Time only uses today",
			extracted: taskparse.ExtractedDateTime{Time: clock(15, 30)},
			now:       now,
			want:      time.Date(2024, 1, 15, 15, 30, 0, 0, time.UTC),
		},
		{
			name:      "Nothing extracted defaults to next hour today",
			extracted: taskparse.ExtractedDateTime{},
			now:       now,
			want:      time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
		},
		{
			name:      "Past result pushed one day",
			extracted: taskparse.ExtractedDateTime{Time: clock(7, 0)},
			now:       now,
			want:      time.Date(2024, 1, 16, 7, 0, 0, 0, time.UTC),
		},
		{
			name:      "Exactly now pushed one day",
			extracted: taskparse.ExtractedDateTime{Time: clock(8, 0)},
			now:       now,
			want:      time.Date(2024, 1, 16, 8, 0, 0, 0, time.UTC),
		},
		{
			name:      "Late evening next-hour rolls into next day",
			extracted: taskparse.ExtractedDateTime{},
			now:       time.Date(2024, 1, 15, 23, 30, 0, 0, time.UTC),
			want:      time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := taskparse.ComposeScheduledTime(tt.extracted, tt.now)
			if !got.Equal(tt.want) {
				t.Errorf("ComposeScheduledTime() = %v, want %v", got, tt.want)
			}

			// Pure function: composing twice with the same inputs agrees.
			again := taskparse.ComposeScheduledTime(tt.extracted, tt.now)
			if !again.Equal(got) {
				t.Errorf("second compose differs: %v vs %v", again, got)
			}
		})
	}
}

func TestComposeScheduledTime_EndToEndScenario(t *testing.T) {
	// "Call John tomorrow at 3pm" at 2024-01-15T08:00 schedules
	// 2024-01-16T15:00 with a reminder at 14:30.
	extractor := taskparse.NewExtractor()
	now := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)

	extracted := extractor.Extract("Call John tomorrow at 3pm", now)
	scheduled := taskparse.ComposeScheduledTime(extracted, now)

	wantScheduled := time.Date(2024, 1, 16, 15, 0, 0, 0, time.UTC)
	if !scheduled.Equal(wantScheduled) {
		t.Errorf("scheduled = %v, want %v", scheduled, wantScheduled)
	}

	reminder := taskparse.ReminderTime(scheduled, 30)
	wantReminder := time.Date(2024, 1, 16, 14, 30, 0, 0, time.UTC)
	if !reminder.Equal(wantReminder) {
		t.Errorf("reminder = %v, want %v", reminder, wantReminder)
	}
}

func TestReminderTime(t *testing.T) {
	scheduled := time.Date(2024, 1, 16, 15, 0, 0, 0, time.UTC)

	t.Run("Default advance", func(t *testing.T) {
		got := taskparse.ReminderTime(scheduled, 0)
		want := scheduled.Add(-30 * time.Minute)
		if !got.Equal(want) {
			t.Errorf("ReminderTime() = %v, want %v", got, want)
		}
	})

	t.Run("Custom advance round-trips", func(t *testing.T) {
		got := taskparse.ReminderTime(scheduled, 45)
		if !got.Add(45 * time.Minute).Equal(scheduled) {
			t.Errorf("reminder + advance != scheduled: %v", got)
		}
	})

	t.Run("No clamping to now", func(t *testing.T) {
		soon := time.Now().Add(10 * time.Minute)
		got := taskparse.ReminderTime(soon, 30)
		if !got.Before(time.Now().Add(time.Minute)) {
			t.Errorf("expected a reminder in the past, got %v", got)
		}
	})
}

func TestDueTime(t *testing.T) {
	now := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	scheduled := time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC)
	extractedDate := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	t.Run("Deadline with date reuses scheduled instant", func(t *testing.T) {
		ext := taskparse.ExtractedDateTime{Date: &extractedDate, DeadlineHint: true}
		got := taskparse.DueTime(ext, scheduled, now)
		if got == nil || !got.Equal(scheduled) {
			t.Errorf("DueTime() = %v, want %v", got, scheduled)
		}
	})

	t.Run("Deadline with time only falls back to 24h", func(t *testing.T) {
		ext := taskparse.ExtractedDateTime{Time: &taskparse.ClockTime{Hour: 15}, DeadlineHint: true}
		got := taskparse.DueTime(ext, scheduled, now)
		want := now.Add(24 * time.Hour)
		if got == nil || !got.Equal(want) {
			t.Errorf("DueTime() = %v, want %v", got, want)
		}
	})

	t.Run("Deadline without date or time", func(t *testing.T) {
		ext := taskparse.ExtractedDateTime{DeadlineHint: true}
		if got := taskparse.DueTime(ext, scheduled, now); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})

	t.Run("No deadline hint", func(t *testing.T) {
		ext := taskparse.ExtractedDateTime{Date: &extractedDate}
		if got := taskparse.DueTime(ext, scheduled, now); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})
}
