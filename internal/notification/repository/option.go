package repository

import "time"

// CreateOptions holds the parameters for storing a notification.
type CreateOptions struct {
	TaskID           string
	NotificationTime time.Time
	Message          string
	Type             string
	Status           string
}
