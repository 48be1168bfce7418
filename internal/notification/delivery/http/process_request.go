package http

import (
	"github.com/gin-gonic/gin"
)

// processScheduleNotificationReq binds and validates the schedule-notification
// request body.
func (h *handler) processScheduleNotificationReq(c *gin.Context) (scheduleNotificationReq, error) {
	var req scheduleNotificationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
