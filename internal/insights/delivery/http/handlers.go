package http

import (
	"github.com/gin-gonic/gin"

	"smartplan/pkg/response"
)

// AnalyzeProductivity godoc
// @Summary     Analyze task completion and productivity patterns
// @Description Computes completion rate, average task time, peak productivity hours, distractions and recommendations.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body analyzeProductivityReq true "Task and event snapshots"
// @Success     200 {object} analyzeProductivityResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/analyze-productivity [POST]
func (h *handler) AnalyzeProductivity(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeProductivityReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Analyze(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Analyze: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAnalyzeProductivityResp(output))
}
