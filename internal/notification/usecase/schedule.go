package usecase

import (
	"context"
	"strings"
	"time"

	"smartplan/internal/model"
	"smartplan/internal/notification"
	"smartplan/internal/notification/repository"
)

// Schedule stores a reminder firing the configured advance before the task
// start instant.
func (uc *implUseCase) Schedule(ctx context.Context, input notification.ScheduleInput) (notification.ScheduleOutput, error) {
	if strings.TrimSpace(input.TaskID) == "" {
		return notification.ScheduleOutput{}, notification.ErrMissingTaskID
	}
	if input.TaskTime.IsZero() {
		return notification.ScheduleOutput{}, notification.ErrMissingTaskTime
	}
	if strings.TrimSpace(input.Message) == "" {
		return notification.ScheduleOutput{}, notification.ErrMissingMessage
	}

	typ := input.Type
	if typ == "" {
		typ = defaultType
	}

	stored, err := uc.repo.Create(ctx, repository.CreateOptions{
		TaskID:           input.TaskID,
		NotificationTime: input.TaskTime.Add(-time.Duration(uc.advanceMinutes) * time.Minute),
		Message:          input.Message,
		Type:             typ,
		Status:           model.NotificationStatusScheduled,
	})
	if err != nil {
		uc.l.Errorf(ctx, "repo.Create: %v", err)
		return notification.ScheduleOutput{}, err
	}

	uc.l.Infof(ctx, "Schedule: notification %s for task %s at %s", stored.ID, stored.TaskID, stored.NotificationTime)
	return notification.ScheduleOutput{Notification: stored}, nil
}

// List returns the stored notifications, soonest first.
func (uc *implUseCase) List(ctx context.Context) (notification.ListOutput, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "repo.List: %v", err)
		return notification.ListOutput{}, err
	}
	return notification.ListOutput{Notifications: items}, nil
}
