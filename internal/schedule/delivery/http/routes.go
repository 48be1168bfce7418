package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/suggest-schedule", h.SuggestSchedule)
	rg.POST("/optimal-schedule", h.OptimalSchedule)
}
