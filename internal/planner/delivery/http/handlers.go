package http

import (
	"github.com/gin-gonic/gin"

	"smartplan/pkg/response"
)

// ParseTask godoc
// @Summary     Parse a natural-language task description
// @Description Extracts title, priority, category, date/time references and a schedule from free text.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body parseTaskReq true "Task description"
// @Success     200 {object} parseTaskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/parse-task [POST]
func (h *handler) ParseTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ParseTask(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ParseTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newParseTaskResp(output))
}
