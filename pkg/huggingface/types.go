package huggingface

// classifyRequest is the zero-shot classification request body.
type classifyRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters classifyParameters `json:"parameters"`
}

type classifyParameters struct {
	CandidateLabels []string `json:"candidate_labels"`
}

// ClassifyResponse is the zero-shot classification response. Labels and
// Scores are parallel, ordered best-first.
type ClassifyResponse struct {
	Sequence string    `json:"sequence"`
	Labels   []string  `json:"labels"`
	Scores   []float64 `json:"scores"`
}

// Classification is the top label with its score.
type Classification struct {
	Label string
	Score float64
}
