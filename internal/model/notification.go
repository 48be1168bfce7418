package model

import "time"

// Notification statuses.
const (
	NotificationStatusScheduled = "scheduled"
)

// Notification is a stored reminder for a task.
type Notification struct {
	ID               string    `json:"id"`
	TaskID           string    `json:"task_id"`
	NotificationTime time.Time `json:"notification_time"`
	Message          string    `json:"message"`
	Type             string    `json:"type"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}
