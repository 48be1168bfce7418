package http

import (
	"time"

	"smartplan/internal/model"
	"smartplan/internal/notification"
)

// --- Request DTOs ---

type scheduleNotificationReq struct {
	TaskID string `json:"task_id" binding:"required"`
	// NotificationTime is the task start instant; RFC3339. The reminder
	// fires the configured advance before it.
	NotificationTime string `json:"notification_time" binding:"required"`
	Message          string `json:"message" binding:"required,min=1,max=500"`
	Type             string `json:"type" binding:"omitempty,oneof=reminder deadline followup"`
}

func (r scheduleNotificationReq) validate() error {
	if _, err := time.Parse(time.RFC3339, r.NotificationTime); err != nil {
		return err
	}
	return nil
}

func (r scheduleNotificationReq) toInput() notification.ScheduleInput {
	input := notification.ScheduleInput{
		TaskID:  r.TaskID,
		Message: r.Message,
		Type:    r.Type,
	}
	if at, err := time.Parse(time.RFC3339, r.NotificationTime); err == nil {
		input.TaskTime = at
	}
	return input
}

// --- Response DTOs ---

type notificationResp struct {
	ID               string    `json:"id"`
	TaskID           string    `json:"task_id"`
	NotificationTime time.Time `json:"notification_time"`
	Message          string    `json:"message"`
	Type             string    `json:"type"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

func newNotificationResp(n model.Notification) notificationResp {
	return notificationResp{
		ID:               n.ID,
		TaskID:           n.TaskID,
		NotificationTime: n.NotificationTime,
		Message:          n.Message,
		Type:             n.Type,
		Status:           n.Status,
		CreatedAt:        n.CreatedAt,
	}
}

type scheduleNotificationResp struct {
	Notification notificationResp `json:"notification"`
}

func (h *handler) newScheduleNotificationResp(out notification.ScheduleOutput) scheduleNotificationResp {
	return scheduleNotificationResp{Notification: newNotificationResp(out.Notification)}
}

type listNotificationsResp struct {
	Notifications []notificationResp `json:"notifications"`
}

func (h *handler) newListNotificationsResp(out notification.ListOutput) listNotificationsResp {
	resp := listNotificationsResp{
		Notifications: make([]notificationResp, 0, len(out.Notifications)),
	}
	for _, n := range out.Notifications {
		resp.Notifications = append(resp.Notifications, newNotificationResp(n))
	}
	return resp
}
