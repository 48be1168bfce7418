package huggingface

import "context"

// IClassifier abstracts the zero-shot classifier for mocking.
type IClassifier interface {
	Classify(ctx context.Context, text string, candidateLabels []string) (Classification, error)
}

var _ IClassifier = (*Client)(nil)
