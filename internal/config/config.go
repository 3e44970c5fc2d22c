package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the tracker application
type Config struct {
	Database   DatabaseConfig
	WakaTime   WakaTimeConfig
	Telegram   TelegramConfig
	Scheduler  SchedulerConfig
	Collection CollectionConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir             string        `env:"WAKA_DB_DIR"`
	Filename        string        `env:"WAKA_DB_FILENAME"`
	ConnectAttempts int           `env:"WAKA_DB_CONNECT_ATTEMPTS"`
	ConnectDelay    time.Duration `env:"WAKA_DB_CONNECT_DELAY"`
}

// WakaTimeConfig holds remote API configuration
type WakaTimeConfig struct {
	APIKey         string        `env:"WAKA_API_KEY"`
	UserID         string        `env:"WAKA_USER_ID"`
	BaseURL        string        `env:"WAKA_BASE_URL"`
	RequestTimeout time.Duration `env:"WAKA_REQUEST_TIMEOUT"`
}

// TelegramConfig holds notification sink configuration
type TelegramConfig struct {
	BotToken string `env:"WAKA_TELEGRAM_BOT_TOKEN"`
	ChatID   string `env:"WAKA_TELEGRAM_CHAT_ID"`
}

// IsConfigured reports whether the Telegram sink can be used
func (tc TelegramConfig) IsConfigured() bool {
	return tc.BotToken != "" && tc.ChatID != ""
}

// SchedulerConfig holds cron trigger configuration
type SchedulerConfig struct {
	CronSchedule      string `env:"WAKA_CRON_SCHEDULE"`
	RunOnStartup      bool   `env:"WAKA_RUN_ON_STARTUP"`
	ImportInitialData bool   `env:"WAKA_IMPORT_INITIAL_DATA"`
	InitialDataPath   string `env:"WAKA_INITIAL_DATA_PATH"`
}

// CollectionConfig holds collection pipeline configuration
type CollectionConfig struct {
	RateLimitDelay time.Duration `env:"WAKA_RATE_LIMIT_DELAY"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".wakatrack")

	return &Config{
		Database: DatabaseConfig{
			Dir:             defaultDBDir,
			Filename:        "wakatrack.db",
			ConnectAttempts: 5,
			ConnectDelay:    5 * time.Second,
		},
		WakaTime: WakaTimeConfig{
			UserID:         "current",
			BaseURL:        "https://wakatime.com/api/v1",
			RequestTimeout: 30 * time.Second,
		},
		Scheduler: SchedulerConfig{
			CronSchedule:      "0 13 * * *",
			RunOnStartup:      true,
			ImportInitialData: true,
			InitialDataPath:   "initial_data.json",
		},
		Collection: CollectionConfig{
			RateLimitDelay: 1 * time.Second,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("WAKA_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("WAKA_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if attempts := os.Getenv("WAKA_DB_CONNECT_ATTEMPTS"); attempts != "" {
		n, err := strconv.Atoi(attempts)
		if err != nil {
			return fmt.Errorf("invalid WAKA_DB_CONNECT_ATTEMPTS: %w", err)
		}
		c.Database.ConnectAttempts = n
	}
	if delay := os.Getenv("WAKA_DB_CONNECT_DELAY"); delay != "" {
		d, err := time.ParseDuration(delay)
		if err != nil {
			return fmt.Errorf("invalid WAKA_DB_CONNECT_DELAY: %w", err)
		}
		c.Database.ConnectDelay = d
	}

	// WakaTime configuration
	if apiKey := os.Getenv("WAKA_API_KEY"); apiKey != "" {
		c.WakaTime.APIKey = apiKey
	}
	if userID := os.Getenv("WAKA_USER_ID"); userID != "" {
		c.WakaTime.UserID = userID
	}
	if baseURL := os.Getenv("WAKA_BASE_URL"); baseURL != "" {
		c.WakaTime.BaseURL = baseURL
	}
	if timeout := os.Getenv("WAKA_REQUEST_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid WAKA_REQUEST_TIMEOUT: %w", err)
		}
		c.WakaTime.RequestTimeout = d
	}

	// Telegram configuration
	if token := os.Getenv("WAKA_TELEGRAM_BOT_TOKEN"); token != "" {
		c.Telegram.BotToken = token
	}
	if chatID := os.Getenv("WAKA_TELEGRAM_CHAT_ID"); chatID != "" {
		c.Telegram.ChatID = chatID
	}

	// Scheduler configuration
	if schedule := os.Getenv("WAKA_CRON_SCHEDULE"); schedule != "" {
		c.Scheduler.CronSchedule = schedule
	}
	if runOnStartup := os.Getenv("WAKA_RUN_ON_STARTUP"); runOnStartup != "" {
		b, err := strconv.ParseBool(runOnStartup)
		if err != nil {
			return fmt.Errorf("invalid WAKA_RUN_ON_STARTUP: %w", err)
		}
		c.Scheduler.RunOnStartup = b
	}
	if importInitial := os.Getenv("WAKA_IMPORT_INITIAL_DATA"); importInitial != "" {
		b, err := strconv.ParseBool(importInitial)
		if err != nil {
			return fmt.Errorf("invalid WAKA_IMPORT_INITIAL_DATA: %w", err)
		}
		c.Scheduler.ImportInitialData = b
	}
	if path := os.Getenv("WAKA_INITIAL_DATA_PATH"); path != "" {
		c.Scheduler.InitialDataPath = path
	}

	// Collection configuration
	if delay := os.Getenv("WAKA_RATE_LIMIT_DELAY"); delay != "" {
		d, err := time.ParseDuration(delay)
		if err != nil {
			return fmt.Errorf("invalid WAKA_RATE_LIMIT_DELAY: %w", err)
		}
		c.Collection.RateLimitDelay = d
	}

	return nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return fmt.Errorf("database directory must not be empty")
	}
	if c.Database.Filename == "" {
		return fmt.Errorf("database filename must not be empty")
	}
	if c.Database.ConnectAttempts < 1 {
		return fmt.Errorf("database connect attempts must be at least 1")
	}
	if c.Database.ConnectDelay < 0 {
		return fmt.Errorf("database connect delay must not be negative")
	}
	if c.WakaTime.BaseURL == "" {
		return fmt.Errorf("wakatime base URL must not be empty")
	}
	if c.WakaTime.UserID == "" {
		return fmt.Errorf("wakatime user ID must not be empty")
	}
	if c.WakaTime.RequestTimeout <= 0 {
		return fmt.Errorf("wakatime request timeout must be positive")
	}
	if c.Collection.RateLimitDelay < 0 {
		return fmt.Errorf("collection rate limit delay must not be negative")
	}
	return nil
}
