package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"smartplan/pkg/huggingface"
	pkgLog "smartplan/pkg/log"
	"smartplan/pkg/taskparse"
)

const defaultCacheSize = 512

type implUseCase struct {
	l          pkgLog.Logger
	classifier huggingface.IClassifier
	extractor  *taskparse.Extractor
	priorities *taskparse.PriorityClassifier

	// cache avoids re-classifying identical descriptions; entries expire so
	// model updates eventually show through.
	cache *expirable.LRU[string, huggingface.Classification]

	reminderAdvanceMinutes int
	clock                  func() time.Time
}

// Config tunes the planner usecase.
type Config struct {
	ReminderAdvanceMinutes int
	ClassifierCacheSize    int
}

// New creates a new planner UseCase instance. classifier may be nil, in which
// case category and confidence fall back to defaults.
func New(l pkgLog.Logger, classifier huggingface.IClassifier, cfg Config) *implUseCase {
	cacheSize := cfg.ClassifierCacheSize
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}

	advance := cfg.ReminderAdvanceMinutes
	if advance <= 0 {
		advance = taskparse.DefaultReminderAdvanceMinutes
	}

	return &implUseCase{
		l:                      l,
		classifier:             classifier,
		extractor:              taskparse.NewExtractor(),
		priorities:             taskparse.NewPriorityClassifier(),
		cache:                  expirable.NewLRU[string, huggingface.Classification](cacheSize, nil, time.Hour),
		reminderAdvanceMinutes: advance,
		clock:                  time.Now,
	}
}
