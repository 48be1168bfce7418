package http

import (
	"github.com/gin-gonic/gin"

	"smartplan/internal/schedule"
	"smartplan/pkg/log"
)

// Handler is the public interface for the schedule HTTP delivery layer.
type Handler interface {
	SuggestSchedule(c *gin.Context)
	OptimalSchedule(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc schedule.UseCase
}

// New creates a new HTTP handler for the schedule domain.
func New(l log.Logger, uc schedule.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
