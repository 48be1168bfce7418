package insights

import "errors"

// Domain-specific errors for the insights package.
var (
	ErrNoTasks = errors.New("no tasks to analyze")
)
