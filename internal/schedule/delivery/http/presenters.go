package http

import (
	"time"

	"smartplan/internal/schedule"
	"smartplan/pkg/timeslot"
)

// --- Request DTOs ---

type suggestScheduleReq struct {
	BusyHours      []int    `json:"busy_hours" binding:"omitempty,dive,min=0,max=23"`
	EventStarts    []string `json:"event_starts" binding:"omitempty"`
	PreferredHours []int    `json:"preferred_hours" binding:"omitempty,dive,min=0,max=23"`
	WindowStart    int      `json:"window_start_hour" binding:"omitempty,min=0,max=23"`
	WindowEnd      int      `json:"window_end_hour" binding:"omitempty,min=0,max=23"`
	// Day optionally selects the calendar day to check; RFC3339.
	Day string `json:"day" binding:"omitempty"`
}

func (r suggestScheduleReq) validate() error {
	for _, raw := range r.EventStarts {
		if _, err := time.Parse(time.RFC3339, raw); err != nil {
			return err
		}
	}
	if r.Day != "" {
		if _, err := time.Parse(time.RFC3339, r.Day); err != nil {
			return err
		}
	}
	return nil
}

func (r suggestScheduleReq) toInput() schedule.SuggestInput {
	input := schedule.SuggestInput{
		BusyHours:       r.BusyHours,
		PreferredHours:  r.PreferredHours,
		WindowStartHour: r.WindowStart,
		WindowEndHour:   r.WindowEnd,
	}
	for _, raw := range r.EventStarts {
		if start, err := time.Parse(time.RFC3339, raw); err == nil {
			input.EventStarts = append(input.EventStarts, start)
		}
	}
	if r.Day != "" {
		if day, err := time.Parse(time.RFC3339, r.Day); err == nil {
			input.Day = day
		}
	}
	return input
}

type suggestionReq struct {
	Hour       int     `json:"hour" binding:"min=0,max=23"`
	Reason     string  `json:"reason"`
	Confidence float64 `json:"confidence"`
}

type optimalScheduleReq struct {
	TaskTitle      string          `json:"task_title" binding:"required,min=1,max=200"`
	Suggestions    []suggestionReq `json:"suggestions" binding:"omitempty,dive"`
	ReferenceNow   string          `json:"reference_now" binding:"omitempty"`
	WorkHoursStart int             `json:"work_hours_start" binding:"omitempty,min=0,max=23"`
	WorkHoursEnd   int             `json:"work_hours_end" binding:"omitempty,min=0,max=23"`
	ReminderMins   int             `json:"reminder_advance_minutes" binding:"omitempty,min=1"`
}

func (r optimalScheduleReq) validate() error {
	if r.ReferenceNow != "" {
		if _, err := time.Parse(time.RFC3339, r.ReferenceNow); err != nil {
			return err
		}
	}
	return nil
}

func (r optimalScheduleReq) toInput() schedule.OptimalInput {
	input := schedule.OptimalInput{
		TaskTitle:              r.TaskTitle,
		WorkHoursStart:         r.WorkHoursStart,
		WorkHoursEnd:           r.WorkHoursEnd,
		ReminderAdvanceMinutes: r.ReminderMins,
	}
	for _, s := range r.Suggestions {
		input.Suggestions = append(input.Suggestions, timeslot.Suggestion{
			Hour:       s.Hour,
			Reason:     s.Reason,
			Confidence: s.Confidence,
		})
	}
	if r.ReferenceNow != "" {
		if now, err := time.Parse(time.RFC3339, r.ReferenceNow); err == nil {
			input.ReferenceNow = now
		}
	}
	return input
}

// --- Response DTOs ---

type suggestScheduleResp struct {
	Suggestions    []timeslot.Suggestion `json:"suggestions"`
	AvailableSlots []timeslot.Slot       `json:"available_slots"`
	Reasoning      string                `json:"reasoning"`
	Confidence     float64               `json:"confidence"`
}

func (h *handler) newSuggestScheduleResp(out schedule.SuggestOutput) suggestScheduleResp {
	return suggestScheduleResp{
		Suggestions:    out.Suggestions,
		AvailableSlots: out.AvailableSlots,
		Reasoning:      out.Reasoning,
		Confidence:     out.Confidence,
	}
}

type notificationPlanResp struct {
	NotificationTime time.Time `json:"notification_time"`
	AdvanceMinutes   int       `json:"advance_minutes"`
	Message          string    `json:"message"`
	Type             string    `json:"type"`
}

type optimalScheduleResp struct {
	ScheduledTime time.Time            `json:"scheduled_time"`
	Reason        string               `json:"reason"`
	Confidence    float64              `json:"confidence"`
	Notification  notificationPlanResp `json:"notification"`
}

func (h *handler) newOptimalScheduleResp(out schedule.OptimalOutput) optimalScheduleResp {
	return optimalScheduleResp{
		ScheduledTime: out.ScheduledAt,
		Reason:        out.Reason,
		Confidence:    out.Confidence,
		Notification: notificationPlanResp{
			NotificationTime: out.Notification.NotificationTime,
			AdvanceMinutes:   out.Notification.AdvanceMinutes,
			Message:          out.Notification.Message,
			Type:             out.Notification.Type,
		},
	}
}
