package http

import (
	"github.com/gin-gonic/gin"

	"smartplan/internal/planner"
	"smartplan/pkg/log"
)

// Handler is the public interface for the planner HTTP delivery layer.
type Handler interface {
	ParseTask(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc planner.UseCase
}

// New creates a new HTTP handler for the planner domain.
func New(l log.Logger, uc planner.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
