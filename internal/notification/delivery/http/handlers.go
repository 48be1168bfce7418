package http

import (
	"github.com/gin-gonic/gin"

	"smartplan/pkg/response"
)

// ScheduleNotification godoc
// @Summary     Schedule a task reminder
// @Description Stores a reminder that fires a configured advance before the task start instant.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body scheduleNotificationReq true "Notification details"
// @Success     200 {object} scheduleNotificationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/schedule-notification [POST]
func (h *handler) ScheduleNotification(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleNotificationReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Schedule(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Schedule: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newScheduleNotificationResp(output))
}

// ListNotifications godoc
// @Summary     List scheduled notifications
// @Description Returns the stored notifications, soonest first.
// @Tags        AI
// @Produce     json
// @Success     200 {object} listNotificationsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/notifications [GET]
func (h *handler) ListNotifications(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListNotificationsResp(output))
}
