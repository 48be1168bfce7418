package insights

import "context"

// UseCase defines the business logic interface for the insights domain.
type UseCase interface {
	// Analyze computes completion and productivity metrics from the supplied
	// task and event snapshots, plus optimization recommendations.
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)
}
