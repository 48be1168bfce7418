package http

import (
	"github.com/gin-gonic/gin"
)

// processAnalyzeProductivityReq binds the analyze-productivity request body.
func (h *handler) processAnalyzeProductivityReq(c *gin.Context) (analyzeProductivityReq, error) {
	var req analyzeProductivityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
