package schedule

import "context"

// UseCase defines the business logic interface for the schedule domain.
type UseCase interface {
	// Suggest ranks free preferred hours within the working-hours window.
	Suggest(ctx context.Context, input SuggestInput) (SuggestOutput, error)

	// Optimal picks the best suggestion (or a sensible fallback) and turns
	// it into a concrete scheduled instant plus a notification plan.
	Optimal(ctx context.Context, input OptimalInput) (OptimalOutput, error)
}
