package huggingface

// DefaultAPIURL is the Hugging Face inference endpoint root.
const DefaultAPIURL = "https://api-inference.huggingface.co/models"

// DefaultClassificationModel is the zero-shot classification model.
const DefaultClassificationModel = "facebook/bart-large-mnli"

// DefaultCandidateLabels are the task categories used for zero-shot
// classification.
var DefaultCandidateLabels = []string{
	"work task",
	"personal task",
	"meeting",
	"deadline",
	"health and fitness",
	"learning and education",
	"social event",
	"errand",
}
