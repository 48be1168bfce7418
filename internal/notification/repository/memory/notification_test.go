package memory

import (
	"context"
	"testing"
	"time"

	"smartplan/internal/notification/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func TestCreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := New(&mockLogger{})

	later := time.Date(2024, 1, 15, 16, 0, 0, 0, time.UTC)
	sooner := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	first, err := repo.Create(ctx, repository.CreateOptions{
		TaskID:           "task-1",
		NotificationTime: later,
		Message:          "later",
		Type:             "reminder",
		Status:           "scheduled",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	second, err := repo.Create(ctx, repository.CreateOptions{
		TaskID:           "task-2",
		NotificationTime: sooner,
		Message:          "sooner",
		Type:             "reminder",
		Status:           "scheduled",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if first.ID == "" || second.ID == "" {
		t.Fatal("expected generated IDs")
	}
	if first.ID == second.ID {
		t.Fatalf("IDs collide: %s", first.ID)
	}
	if first.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[0].TaskID != "task-2" || items[1].TaskID != "task-1" {
		t.Errorf("items not ordered soonest first: %v, %v", items[0].TaskID, items[1].TaskID)
	}
}

func TestListEmpty(t *testing.T) {
	repo := New(&mockLogger{})

	items, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("len(items) = %d, want 0", len(items))
	}
}
