package usecase

import (
	pkgLog "smartplan/pkg/log"
)

// Thresholds for the analysis heuristics.
const (
	lowCompletionRateThreshold = 70.0
	minPeakHours               = 3
	maxPeakHours               = 3

	switchingRateThreshold   = 0.5
	incompleteShareThreshold = 0.3
)

type implUseCase struct {
	l pkgLog.Logger
}

// New creates a new insights UseCase instance.
func New(l pkgLog.Logger) *implUseCase {
	return &implUseCase{
		l: l,
	}
}
