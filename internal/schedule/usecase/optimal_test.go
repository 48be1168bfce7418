package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"smartplan/internal/schedule"
	"smartplan/pkg/timeslot"
)

func TestOptimal(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name           string
		input          schedule.OptimalInput
		wantAt         time.Time
		wantReason     string
		wantConfidence float64
	}{
		{
			name: "best suggestion later today",
			input: schedule.OptimalInput{
				TaskTitle:    "Write report",
				ReferenceNow: now,
				Suggestions: []timeslot.Suggestion{
					{Hour: 14, Reason: timeslot.SuggestionReason, Confidence: 0.9},
				},
			},
			wantAt:         time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC),
			wantReason:     timeslot.SuggestionReason,
			wantConfidence: 0.9,
		},
		{
			name: "suggestion hour already passed moves to tomorrow",
			input: schedule.OptimalInput{
				TaskTitle:    "Morning review",
				ReferenceNow: now,
				Suggestions: []timeslot.Suggestion{
					{Hour: 9, Reason: timeslot.SuggestionReason, Confidence: 0.9},
				},
			},
			wantAt:         time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC),
			wantReason:     timeslot.SuggestionReason,
			wantConfidence: 0.9,
		},
		{
			name: "highest confidence suggestion wins",
			input: schedule.OptimalInput{
				TaskTitle:    "Plan sprint",
				ReferenceNow: now,
				Suggestions: []timeslot.Suggestion{
					{Hour: 14, Reason: "ok slot", Confidence: 0.6},
					{Hour: 15, Reason: "great slot", Confidence: 0.95},
				},
			},
			wantAt:         time.Date(2024, 1, 15, 15, 0, 0, 0, time.UTC),
			wantReason:     "great slot",
			wantConfidence: 0.95,
		},
		{
			name: "no suggestions falls back to next hour",
			input: schedule.OptimalInput{
				TaskTitle:    "Quick task",
				ReferenceNow: now,
			},
			wantAt:         time.Date(2024, 1, 15, 11, 0, 0, 0, time.UTC),
			wantReason:     reasonNextHour,
			wantConfidence: confidenceNextHour,
		},
		{
			name: "after work hours moves to next work day",
			input: schedule.OptimalInput{
				TaskTitle:    "Late task",
				ReferenceNow: time.Date(2024, 1, 15, 19, 45, 0, 0, time.UTC),
			},
			wantAt:         time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC),
			wantReason:     reasonNextWorkDay,
			wantConfidence: confidenceNextWorkDay,
		},
		{
			name: "before work hours clamps to work start",
			input: schedule.OptimalInput{
				TaskTitle:    "Early task",
				ReferenceNow: time.Date(2024, 1, 15, 6, 10, 0, 0, time.UTC),
			},
			wantAt:         time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
			wantReason:     reasonNextHour,
			wantConfidence: confidenceNextHour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := New(&mockLogger{}, nil, Config{})

			got, err := uc.Optimal(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("Optimal() error = %v", err)
			}
			if !got.ScheduledAt.Equal(tt.wantAt) {
				t.Errorf("ScheduledAt = %v, want %v", got.ScheduledAt, tt.wantAt)
			}
			if got.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", got.Reason, tt.wantReason)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("Confidence = %v, want %v", got.Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestOptimal_Notification(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	t.Run("default advance", func(t *testing.T) {
		uc := New(&mockLogger{}, nil, Config{})

		got, err := uc.Optimal(context.Background(), schedule.OptimalInput{
			TaskTitle:    "Call John",
			ReferenceNow: now,
			Suggestions: []timeslot.Suggestion{
				{Hour: 15, Reason: timeslot.SuggestionReason, Confidence: 0.9},
			},
		})
		if err != nil {
			t.Fatalf("Optimal() error = %v", err)
		}

		wantTime := time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)
		if !got.Notification.NotificationTime.Equal(wantTime) {
			t.Errorf("NotificationTime = %v, want %v", got.Notification.NotificationTime, wantTime)
		}
		if got.Notification.AdvanceMinutes != 30 {
			t.Errorf("AdvanceMinutes = %d, want 30", got.Notification.AdvanceMinutes)
		}
		wantMsg := fmt.Sprintf("Your task %q is scheduled to start in 30 minutes", "Call John")
		if got.Notification.Message != wantMsg {
			t.Errorf("Message = %q, want %q", got.Notification.Message, wantMsg)
		}
		if got.Notification.Type != notificationTypeReminder {
			t.Errorf("Type = %q, want %q", got.Notification.Type, notificationTypeReminder)
		}
	})

	t.Run("custom advance", func(t *testing.T) {
		uc := New(&mockLogger{}, nil, Config{})

		got, err := uc.Optimal(context.Background(), schedule.OptimalInput{
			TaskTitle:              "Call John",
			ReferenceNow:           now,
			ReminderAdvanceMinutes: 10,
			Suggestions: []timeslot.Suggestion{
				{Hour: 15, Reason: timeslot.SuggestionReason, Confidence: 0.9},
			},
		})
		if err != nil {
			t.Fatalf("Optimal() error = %v", err)
		}

		wantTime := time.Date(2024, 1, 15, 14, 50, 0, 0, time.UTC)
		if !got.Notification.NotificationTime.Equal(wantTime) {
			t.Errorf("NotificationTime = %v, want %v", got.Notification.NotificationTime, wantTime)
		}
		if got.Notification.AdvanceMinutes != 10 {
			t.Errorf("AdvanceMinutes = %d, want 10", got.Notification.AdvanceMinutes)
		}
	})
}

func TestOptimal_InvalidWindow(t *testing.T) {
	uc := New(&mockLogger{}, nil, Config{})

	_, err := uc.Optimal(context.Background(), schedule.OptimalInput{
		ReferenceNow:   time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		WorkHoursStart: 20,
		WorkHoursEnd:   8,
	})
	if !errors.Is(err, schedule.ErrInvalidWindow) {
		t.Fatalf("Optimal() error = %v, want ErrInvalidWindow", err)
	}
}
