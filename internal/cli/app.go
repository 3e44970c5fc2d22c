package cli

import (
	"wakatime-tracker/internal/api"
	"wakatime-tracker/internal/config"
	"wakatime-tracker/internal/scheduler"
)

// App bundles the wired application components the CLI commands work with.
// It is assembled by an AppBuilder after configuration is final, so flag
// overrides are visible to every component.
type App struct {
	api       api.API
	scheduler *scheduler.Scheduler
	config    *config.Config

	// closer releases the underlying store; nil when the builder did not
	// open one (tests).
	closer func() error
}

// AppBuilder constructs an App from a finalized configuration. Production
// wiring lives in cmd/wakatrack; tests inject lightweight builders.
type AppBuilder func(cfg *config.Config) (*App, error)

// NewApp creates an App over pre-built components.
func NewApp(apiInstance api.API, sched *scheduler.Scheduler, cfg *config.Config, closer func() error) *App {
	return &App{
		api:       apiInstance,
		scheduler: sched,
		config:    cfg,
		closer:    closer,
	}
}

// Close releases resources held by the App.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer()
}
