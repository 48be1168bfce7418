package notification

import "errors"

// Domain-specific errors for the notification package.
var (
	ErrMissingTaskID   = errors.New("task id is required")
	ErrMissingTaskTime = errors.New("task time is required")
	ErrMissingMessage  = errors.New("message is required")
)
