package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// SmartPlan specifics
	Planner        PlannerConfig
	HuggingFace    HuggingFaceConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMinute int
	Burst     int
}

// PlannerConfig tunes the text-analysis pipeline.
type PlannerConfig struct {
	Timezone               string
	ReminderAdvanceMinutes int
	WorkHoursStart         int
	WorkHoursEnd           int
	PreferredHours         []int
	ClassifierCacheSize    int
}

type HuggingFaceConfig struct {
	APIKey string
	Model  string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMinute = viper.GetInt("rate_limit.per_minute")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	// Planner
	cfg.Planner.Timezone = viper.GetString("planner.timezone")
	cfg.Planner.ReminderAdvanceMinutes = viper.GetInt("planner.reminder_advance_minutes")
	cfg.Planner.WorkHoursStart = viper.GetInt("planner.work_hours_start")
	cfg.Planner.WorkHoursEnd = viper.GetInt("planner.work_hours_end")
	cfg.Planner.PreferredHours = viper.GetIntSlice("planner.preferred_hours")
	cfg.Planner.ClassifierCacheSize = viper.GetInt("planner.classifier_cache_size")

	// Hugging Face
	cfg.HuggingFace.APIKey = viper.GetString("huggingface.api_key")
	cfg.HuggingFace.Model = viper.GetString("huggingface.model")
	if hfKey := viper.GetString("huggingface_api_key"); hfKey != "" {
		cfg.HuggingFace.APIKey = hfKey
	}

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Planner.WorkHoursStart < 0 || c.Planner.WorkHoursStart > 23 {
		return fmt.Errorf("planner.work_hours_start out of range: %d", c.Planner.WorkHoursStart)
	}
	if c.Planner.WorkHoursEnd < c.Planner.WorkHoursStart || c.Planner.WorkHoursEnd > 23 {
		return fmt.Errorf("planner.work_hours_end out of range: %d", c.Planner.WorkHoursEnd)
	}
	if c.Planner.ReminderAdvanceMinutes <= 0 {
		return fmt.Errorf("planner.reminder_advance_minutes must be positive")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.per_minute", 120)
	viper.SetDefault("rate_limit.burst", 20)

	// Planner defaults mirror the product defaults: 30 minute reminders,
	// 9-17 working hours, mid-morning and mid-afternoon preferred.
	viper.SetDefault("planner.timezone", "UTC")
	viper.SetDefault("planner.reminder_advance_minutes", 30)
	viper.SetDefault("planner.work_hours_start", 9)
	viper.SetDefault("planner.work_hours_end", 17)
	viper.SetDefault("planner.preferred_hours", []int{9, 10, 11, 14, 15, 16})
	viper.SetDefault("planner.classifier_cache_size", 512)
}
