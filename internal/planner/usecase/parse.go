package usecase

import (
	"context"
	"strings"

	"smartplan/internal/planner"
	"smartplan/pkg/taskparse"
)

// ParseTask converts a natural-language task description into a structured,
// scheduled task. Extraction never fails on content; only an empty
// description is rejected.
func (uc *implUseCase) ParseTask(ctx context.Context, input planner.ParseInput) (planner.ParseOutput, error) {
	if strings.TrimSpace(input.Description) == "" {
		return planner.ParseOutput{}, planner.ErrEmptyDescription
	}

	now := input.ReferenceNow
	if now.IsZero() {
		now = uc.clock()
	}

	uc.l.Infof(ctx, "ParseTask: input_length=%d", len(input.Description))

	extracted := uc.extractor.Extract(input.Description, now)
	priority, matches := uc.priorities.Classify(input.Description)

	scheduledAt := taskparse.ComposeScheduledTime(extracted, now)
	dueAt := taskparse.DueTime(extracted, scheduledAt, now)
	reminderAt := taskparse.ReminderTime(scheduledAt, uc.reminderAdvanceMinutes)

	classification := uc.classifyCategory(ctx, input.Description)

	task := planner.ParsedTask{
		Title:            taskparse.ExtractTitle(input.Description),
		Description:      input.Description,
		Category:         classification.Label,
		Priority:         priority,
		KeywordMatches:   matches,
		EstimatedMinutes: taskparse.EstimateMinutes(input.Description),
		Confidence:       classification.Score,
		ExtractedDate:    extracted.Date,
		ExtractedTime:    extracted.Time,
		ScheduledAt:      scheduledAt,
		DueAt:            dueAt,
		ReminderAt:       reminderAt,
	}

	uc.l.Infof(ctx, "ParseTask: title=%q priority=%s scheduled=%s",
		task.Title, task.Priority, task.ScheduledAt.Format("2006-01-02 15:04"))

	return planner.ParseOutput{Task: task}, nil
}
