package config

import (
	"time"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with environment variables
// 3. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Database overrides
	DBDir      *string
	DBFilename *string

	// WakaTime overrides
	APIKey         *string
	UserID         *string
	BaseURL        *string
	RequestTimeout *time.Duration

	// Scheduler overrides
	CronSchedule    *string
	RunOnStartup    *bool
	InitialDataPath *string

	// Collection overrides
	RateLimitDelay *time.Duration
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.DBDir != nil {
		config.Database.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		config.Database.Filename = *overrides.DBFilename
	}
	if overrides.APIKey != nil {
		config.WakaTime.APIKey = *overrides.APIKey
	}
	if overrides.UserID != nil {
		config.WakaTime.UserID = *overrides.UserID
	}
	if overrides.BaseURL != nil {
		config.WakaTime.BaseURL = *overrides.BaseURL
	}
	if overrides.RequestTimeout != nil {
		config.WakaTime.RequestTimeout = *overrides.RequestTimeout
	}
	if overrides.CronSchedule != nil {
		config.Scheduler.CronSchedule = *overrides.CronSchedule
	}
	if overrides.RunOnStartup != nil {
		config.Scheduler.RunOnStartup = *overrides.RunOnStartup
	}
	if overrides.InitialDataPath != nil {
		config.Scheduler.InitialDataPath = *overrides.InitialDataPath
	}
	if overrides.RateLimitDelay != nil {
		config.Collection.RateLimitDelay = *overrides.RateLimitDelay
	}
}
