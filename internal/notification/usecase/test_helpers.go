package usecase

import (
	"context"

	"smartplan/internal/model"
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

// Mock repository for testing
type mockRepository struct {
	created []repository.CreateOptions
	listErr error
	items   []model.Notification
}

func (m *mockRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.Notification, error) {
	m.created = append(m.created, opt)
	return model.Notification{
		ID:               "fixed-id",
		TaskID:           opt.TaskID,
		NotificationTime: opt.NotificationTime,
		Message:          opt.Message,
		Type:             opt.Type,
		Status:           opt.Status,
	}, nil
}

func (m *mockRepository) List(ctx context.Context) ([]model.Notification, error) {
	return m.items, m.listErr
}
