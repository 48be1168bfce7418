package http

import (
	"github.com/gin-gonic/gin"
)

// processSuggestScheduleReq binds and validates the suggest-schedule request body.
func (h *handler) processSuggestScheduleReq(c *gin.Context) (suggestScheduleReq, error) {
	var req suggestScheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processOptimalScheduleReq binds and validates the optimal-schedule request body.
func (h *handler) processOptimalScheduleReq(c *gin.Context) (optimalScheduleReq, error) {
	var req optimalScheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
