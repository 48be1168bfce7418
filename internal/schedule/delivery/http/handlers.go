package http

import (
	"github.com/gin-gonic/gin"

	"smartplan/pkg/response"
)

// SuggestSchedule godoc
// @Summary     Suggest free time slots
// @Description Ranks free preferred hours within the working-hours window against busy hours and calendar events.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body suggestScheduleReq true "Schedule context"
// @Success     200 {object} suggestScheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/suggest-schedule [POST]
func (h *handler) SuggestSchedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestScheduleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Suggest(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Suggest: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSuggestScheduleResp(output))
}

// OptimalSchedule godoc
// @Summary     Compose an optimal schedule for a task
// @Description Picks the best suggested slot (or the next free work hour) and derives the reminder notification.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body optimalScheduleReq true "Task and suggestions"
// @Success     200 {object} optimalScheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/optimal-schedule [POST]
func (h *handler) OptimalSchedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOptimalScheduleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Optimal(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Optimal: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newOptimalScheduleResp(output))
}
