package usecase

import (
	"context"

	"smartplan/pkg/huggingface"
)

// Fallback category values used when no classifier is configured or the
// classifier call fails.
const (
	fallbackCategory   = "work task"
	fallbackConfidence = 0.5
)

// classifyCategory asks the external zero-shot classifier for a category,
// degrading to the fallback on any failure. Results are cached per
// description.
func (uc *implUseCase) classifyCategory(ctx context.Context, description string) huggingface.Classification {
	fallback := huggingface.Classification{Label: fallbackCategory, Score: fallbackConfidence}

	if uc.classifier == nil {
		return fallback
	}

	if cached, ok := uc.cache.Get(description); ok {
		return cached
	}

	classification, err := uc.classifier.Classify(ctx, description, nil)
	if err != nil {
		uc.l.Warnf(ctx, "classifyCategory: classifier unavailable, using fallback: %v", err)
		return fallback
	}

	uc.cache.Add(description, classification)
	return classification
}
