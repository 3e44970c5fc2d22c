package main

import (
	"fmt"
	"os"

	"wakatime-tracker/internal/api"
	"wakatime-tracker/internal/cli"
	"wakatime-tracker/internal/config"
	"wakatime-tracker/internal/notify"
	"wakatime-tracker/internal/repository/sqlite"
	"wakatime-tracker/internal/scheduler"
	"wakatime-tracker/internal/services"
	"wakatime-tracker/internal/wakatime"
)

// buildApp wires the production application from a finalized configuration.
// The Telegram sink is used only when both its settings are present;
// otherwise notifications are discarded.
func buildApp(cfg *config.Config) (*cli.App, error) {
	if err := os.MkdirAll(cfg.Database.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory %s: %w", cfg.Database.Dir, err)
	}

	repo, err := sqlite.New(cfg.GetDatabasePath(), sqlite.ConnectOptions{
		Attempts: cfg.Database.ConnectAttempts,
		Delay:    cfg.Database.ConnectDelay,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	client := wakatime.NewClient(cfg.WakaTime)

	var notifier notify.Notifier = notify.NewNoopNotifier()
	if cfg.Telegram.IsConfigured() {
		notifier = notify.NewTelegramNotifier(cfg.Telegram)
	}

	collector := services.NewCollectorService(repo, client, notifier, cfg.Collection.RateLimitDelay)
	importer := services.NewImporterService(repo)
	apiInstance := api.New(repo, collector, importer)
	sched := scheduler.New(cfg.Scheduler, collector, importer, notifier)

	return cli.NewApp(apiInstance, sched, cfg, repo.Close), nil
}
