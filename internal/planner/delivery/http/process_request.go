package http

import (
	"github.com/gin-gonic/gin"
)

// processParseTaskReq binds and validates the parse-task request body.
func (h *handler) processParseTaskReq(c *gin.Context) (parseTaskReq, error) {
	var req parseTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
