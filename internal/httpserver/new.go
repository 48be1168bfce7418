package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smartplan/config"
	"smartplan/internal/middleware"
	scheduleUC "smartplan/internal/schedule/usecase"
	"smartplan/pkg/huggingface"
	"smartplan/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Cross-cutting middleware
	mw middleware.Middleware

	// Domain configuration
	planner config.PlannerConfig

	// External clients, both optional
	classifier huggingface.IClassifier
	calendar   scheduleUC.CalendarLister
	calendarID string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware
	Planner    config.PlannerConfig

	// Classifier is the zero-shot category classifier; nil falls back to a
	// fixed category.
	Classifier huggingface.IClassifier

	// Calendar supplies busy hours for schedule suggestions; nil skips the
	// calendar lookup.
	Calendar   scheduleUC.CalendarLister
	CalendarID string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          cfg.Middleware,
		planner:     cfg.Planner,
		classifier:  cfg.Classifier,
		calendar:    cfg.Calendar,
		calendarID:  cfg.CalendarID,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
