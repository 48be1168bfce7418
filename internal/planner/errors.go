package planner

import "errors"

// Domain-specific errors for the planner package.
var (
	ErrEmptyDescription = errors.New("task description is empty")
)
