package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartplan/internal/schedule"
	"smartplan/pkg/gcalendar"
)

func TestSuggest(t *testing.T) {
	tests := []struct {
		name      string
		input     schedule.SuggestInput
		wantHours []int
		wantSlots int
	}{
		{
			name: "preferred hours minus busy",
			input: schedule.SuggestInput{
				BusyHours:       []int{9, 10},
				PreferredHours:  []int{9, 10, 11, 14},
				WindowStartHour: 9,
				WindowEndHour:   17,
			},
			wantHours: []int{11, 14},
			wantSlots: 7,
		},
		{
			name: "cap at three suggestions",
			input: schedule.SuggestInput{
				PreferredHours:  []int{9, 10, 11, 14, 15},
				WindowStartHour: 9,
				WindowEndHour:   17,
			},
			wantHours: []int{9, 10, 11},
			wantSlots: 9,
		},
		{
			name: "event starts count as busy",
			input: schedule.SuggestInput{
				EventStarts: []time.Time{
					time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
					time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC),
				},
				PreferredHours:  []int{9, 14, 15},
				WindowStartHour: 9,
				WindowEndHour:   17,
			},
			wantHours: []int{15},
			wantSlots: 7,
		},
		{
			name:      "defaults when input omits window and preferences",
			input:     schedule.SuggestInput{},
			wantHours: []int{9, 10, 11},
			wantSlots: 9,
		},
		{
			name: "everything busy",
			input: schedule.SuggestInput{
				BusyHours:       []int{9, 10, 11},
				PreferredHours:  []int{9, 10, 11},
				WindowStartHour: 9,
				WindowEndHour:   11,
			},
			wantHours: nil,
			wantSlots: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := New(&mockLogger{}, nil, Config{})

			got, err := uc.Suggest(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("Suggest() error = %v", err)
			}
			if len(got.Suggestions) != len(tt.wantHours) {
				t.Fatalf("Suggest() returned %d suggestions, want %d", len(got.Suggestions), len(tt.wantHours))
			}
			for i, want := range tt.wantHours {
				if got.Suggestions[i].Hour != want {
					t.Errorf("Suggestions[%d].Hour = %d, want %d", i, got.Suggestions[i].Hour, want)
				}
			}
			if len(got.AvailableSlots) != tt.wantSlots {
				t.Errorf("len(AvailableSlots) = %d, want %d", len(got.AvailableSlots), tt.wantSlots)
			}
			if got.Reasoning != suggestReasoning {
				t.Errorf("Reasoning = %q, want %q", got.Reasoning, suggestReasoning)
			}
			if got.Confidence != suggestConfidence {
				t.Errorf("Confidence = %v, want %v", got.Confidence, suggestConfidence)
			}
		})
	}
}

func TestSuggest_InvalidWindow(t *testing.T) {
	uc := New(&mockLogger{}, nil, Config{})

	_, err := uc.Suggest(context.Background(), schedule.SuggestInput{
		WindowStartHour: 18,
		WindowEndHour:   9,
	})
	if !errors.Is(err, schedule.ErrInvalidWindow) {
		t.Fatalf("Suggest() error = %v, want ErrInvalidWindow", err)
	}
}

func TestSuggest_CalendarBusyHours(t *testing.T) {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("calendar events become busy hours", func(t *testing.T) {
		cal := &mockCalendar{events: []gcalendar.Event{
			{ID: "1", Summary: "Standup", StartTime: day.Add(9 * time.Hour)},
			{ID: "2", Summary: "Review", StartTime: day.Add(10 * time.Hour)},
		}}
		uc := New(&mockLogger{}, cal, Config{CalendarID: "primary"})

		got, err := uc.Suggest(context.Background(), schedule.SuggestInput{Day: day})
		if err != nil {
			t.Fatalf("Suggest() error = %v", err)
		}
		if cal.calls != 1 {
			t.Fatalf("calendar calls = %d, want 1", cal.calls)
		}
		if cal.lastID != "primary" {
			t.Errorf("calendar ID = %q, want %q", cal.lastID, "primary")
		}
		for _, s := range got.Suggestions {
			if s.Hour == 9 || s.Hour == 10 {
				t.Errorf("suggested hour %d conflicts with a calendar event", s.Hour)
			}
		}
	})

	t.Run("calendar failure is non-fatal", func(t *testing.T) {
		cal := &mockCalendar{err: errors.New("calendar unavailable")}
		uc := New(&mockLogger{}, cal, Config{})

		got, err := uc.Suggest(context.Background(), schedule.SuggestInput{Day: day})
		if err != nil {
			t.Fatalf("Suggest() error = %v", err)
		}
		if len(got.Suggestions) == 0 {
			t.Error("expected suggestions despite calendar failure")
		}
	})

	t.Run("zero day skips calendar", func(t *testing.T) {
		cal := &mockCalendar{}
		uc := New(&mockLogger{}, cal, Config{})

		if _, err := uc.Suggest(context.Background(), schedule.SuggestInput{}); err != nil {
			t.Fatalf("Suggest() error = %v", err)
		}
		if cal.calls != 0 {
			t.Errorf("calendar calls = %d, want 0", cal.calls)
		}
	})
}
