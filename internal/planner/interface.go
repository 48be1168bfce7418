package planner

import "context"

// UseCase defines the business logic interface for the planner domain.
type UseCase interface {
	// ParseTask converts a natural-language task description into a
	// structured, scheduled task.
	ParseTask(ctx context.Context, input ParseInput) (ParseOutput, error)
}
