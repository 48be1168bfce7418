package schedule

import "errors"

// Domain-specific errors for the schedule package.
var (
	ErrInvalidWindow = errors.New("window hours out of range")
)
