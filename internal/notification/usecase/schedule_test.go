package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartplan/internal/model"
	"smartplan/internal/notification"
)

func TestSchedule(t *testing.T) {
	taskTime := time.Date(2024, 1, 15, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   notification.ScheduleInput
		cfg     Config
		wantAt  time.Time
		wantTyp string
		wantErr error
	}{
		{
			name: "default advance and type",
			input: notification.ScheduleInput{
				TaskID:   "task-1",
				TaskTime: taskTime,
				Message:  "Your task is starting soon",
			},
			wantAt:  time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC),
			wantTyp: "reminder",
		},
		{
			name: "explicit type kept",
			input: notification.ScheduleInput{
				TaskID:   "task-1",
				TaskTime: taskTime,
				Message:  "Heads up",
				Type:     "deadline",
			},
			wantAt:  time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC),
			wantTyp: "deadline",
		},
		{
			name: "custom advance",
			input: notification.ScheduleInput{
				TaskID:   "task-1",
				TaskTime: taskTime,
				Message:  "Heads up",
			},
			cfg:     Config{AdvanceMinutes: 10},
			wantAt:  time.Date(2024, 1, 15, 14, 50, 0, 0, time.UTC),
			wantTyp: "reminder",
		},
		{
			name: "missing task id",
			input: notification.ScheduleInput{
				TaskTime: taskTime,
				Message:  "Heads up",
			},
			wantErr: notification.ErrMissingTaskID,
		},
		{
			name: "missing task time",
			input: notification.ScheduleInput{
				TaskID:  "task-1",
				Message: "Heads up",
			},
			wantErr: notification.ErrMissingTaskTime,
		},
		{
			name: "missing message",
			input: notification.ScheduleInput{
				TaskID:   "task-1",
				TaskTime: taskTime,
				Message:  "   ",
			},
			wantErr: notification.ErrMissingMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepository{}
			uc := New(&mockLogger{}, repo, tt.cfg)

			got, err := uc.Schedule(context.Background(), tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Schedule() error = %v, want %v", err, tt.wantErr)
				}
				if len(repo.created) != 0 {
					t.Errorf("repo.Create called %d times, want 0", len(repo.created))
				}
				return
			}
			if err != nil {
				t.Fatalf("Schedule() error = %v", err)
			}

			n := got.Notification
			if !n.NotificationTime.Equal(tt.wantAt) {
				t.Errorf("NotificationTime = %v, want %v", n.NotificationTime, tt.wantAt)
			}
			if n.Type != tt.wantTyp {
				t.Errorf("Type = %q, want %q", n.Type, tt.wantTyp)
			}
			if n.Status != model.NotificationStatusScheduled {
				t.Errorf("Status = %q, want %q", n.Status, model.NotificationStatusScheduled)
			}
			if n.ID == "" {
				t.Error("expected a non-empty ID")
			}
		})
	}
}

func TestList(t *testing.T) {
	t.Run("returns stored notifications", func(t *testing.T) {
		repo := &mockRepository{items: []model.Notification{
			{ID: "a"}, {ID: "b"},
		}}
		uc := New(&mockLogger{}, repo, Config{})

		got, err := uc.List(context.Background())
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(got.Notifications) != 2 {
			t.Errorf("len(Notifications) = %d, want 2", len(got.Notifications))
		}
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		repo := &mockRepository{listErr: errors.New("store broken")}
		uc := New(&mockLogger{}, repo, Config{})

		if _, err := uc.List(context.Background()); err == nil {
			t.Fatal("List() error = nil, want error")
		}
	})
}
