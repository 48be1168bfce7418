package http

import (
	"time"

	"smartplan/internal/planner"
)

// --- Request DTOs ---

type parseTaskReq struct {
	TaskDescription string `json:"task_description" binding:"required,min=1,max=2000"`
	// ReferenceNow optionally pins "now" for deterministic results;
	// RFC3339. Empty means server time.
	ReferenceNow string `json:"reference_now" binding:"omitempty"`
}

func (r parseTaskReq) validate() error {
	if r.ReferenceNow != "" {
		if _, err := time.Parse(time.RFC3339, r.ReferenceNow); err != nil {
			return err
		}
	}
	return nil
}

func (r parseTaskReq) toInput() planner.ParseInput {
	input := planner.ParseInput{Description: r.TaskDescription}
	if r.ReferenceNow != "" {
		if now, err := time.Parse(time.RFC3339, r.ReferenceNow); err == nil {
			input.ReferenceNow = now
		}
	}
	return input
}

// --- Response DTOs ---

type clockTimeResp struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

type parseTaskResp struct {
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Category         string         `json:"category"`
	Priority         string         `json:"priority"`
	KeywordMatches   int            `json:"keyword_matches"`
	EstimatedMinutes int            `json:"estimated_minutes"`
	Confidence       float64        `json:"confidence"`
	ExtractedDate    *time.Time     `json:"extracted_date,omitempty"`
	ExtractedTime    *clockTimeResp `json:"extracted_time,omitempty"`
	ScheduledTime    time.Time      `json:"scheduled_time"`
	DueDate          *time.Time     `json:"due_date,omitempty"`
	ReminderTime     time.Time      `json:"reminder_time"`
}

func (h *handler) newParseTaskResp(out planner.ParseOutput) parseTaskResp {
	task := out.Task

	resp := parseTaskResp{
		Title:            task.Title,
		Description:      task.Description,
		Category:         task.Category,
		Priority:         string(task.Priority),
		KeywordMatches:   task.KeywordMatches,
		EstimatedMinutes: task.EstimatedMinutes,
		Confidence:       task.Confidence,
		ExtractedDate:    task.ExtractedDate,
		ScheduledTime:    task.ScheduledAt,
		DueDate:          task.DueAt,
		ReminderTime:     task.ReminderAt,
	}
	if task.ExtractedTime != nil {
		resp.ExtractedTime = &clockTimeResp{
			Hour:   task.ExtractedTime.Hour,
			Minute: task.ExtractedTime.Minute,
		}
	}
	return resp
}
