package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smartplan/config"
	_ "smartplan/docs" // Swagger docs
	"smartplan/internal/httpserver"
	"smartplan/internal/middleware"
	scheduleUC "smartplan/internal/schedule/usecase"
	"smartplan/pkg/gcalendar"
	"smartplan/pkg/huggingface"
	"smartplan/pkg/log"
)

// @title       SmartPlan API
// @description AI-powered task parsing, scheduling and productivity analysis.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting SmartPlan...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Hugging Face classifier (optional)
	var classifier huggingface.IClassifier
	if cfg.HuggingFace.APIKey != "" {
		client := huggingface.NewClient(cfg.HuggingFace.APIKey)
		if cfg.HuggingFace.Model != "" {
			client.SetModel(cfg.HuggingFace.Model)
		}
		classifier = client
		logger.Info(ctx, "Hugging Face classifier initialized")
	} else {
		logger.Warn(ctx, "HUGGINGFACE_API_KEY not set, using fallback categorization")
	}

	// 4. Google Calendar client (optional)
	var calendar scheduleUC.CalendarLister
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  middleware.New(logger, cfg),
		Planner:     cfg.Planner,
		Classifier:  classifier,
		Calendar:    calendar,
		CalendarID:  cfg.GoogleCalendar.CalendarID,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
