package http

import (
	"github.com/gin-gonic/gin"

	"smartplan/internal/insights"
	"smartplan/pkg/log"
)

// Handler is the public interface for the insights HTTP delivery layer.
type Handler interface {
	AnalyzeProductivity(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc insights.UseCase
}

// New creates a new HTTP handler for the insights domain.
func New(l log.Logger, uc insights.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
