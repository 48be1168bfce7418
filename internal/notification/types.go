package notification

import (
	"time"

	"smartplan/internal/model"
)

// ScheduleInput is the input for scheduling a task reminder. TaskTime is the
// instant the task starts; the notification fires the configured advance
// before it.
type ScheduleInput struct {
	TaskID   string
	TaskTime time.Time
	Message  string
	Type     string // empty means "reminder"
}

// ScheduleOutput is the stored notification.
type ScheduleOutput struct {
	Notification model.Notification
}

// ListOutput is the stored notifications, soonest first.
type ListOutput struct {
	Notifications []model.Notification
}
