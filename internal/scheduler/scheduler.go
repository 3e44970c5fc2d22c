package scheduler

import (
	"context"
	"fmt"

	"wakatime-tracker/internal/config"
	"wakatime-tracker/internal/logging"
	"wakatime-tracker/internal/notify"
	"wakatime-tracker/internal/services"

	"github.com/robfig/cron/v3"
)

// Scheduler drives the daily collection job on a cron schedule. It is an
// external trigger around the collection core: all it does is invoke
// "collect yesterday" when the schedule fires.
type Scheduler struct {
	cfg       config.SchedulerConfig
	collector services.CollectorService
	importer  services.ImporterService
	notifier  notify.Notifier
	cron      *cron.Cron
}

// New creates a Scheduler for the given collection services.
func New(cfg config.SchedulerConfig, collector services.CollectorService, importer services.ImporterService, notifier notify.Notifier) *Scheduler {
	return &Scheduler{
		cfg:       cfg,
		collector: collector,
		importer:  importer,
		notifier:  notifier,
		cron:      cron.New(),
	}
}

// Run starts the scheduling loop and blocks until ctx is cancelled. An
// initial bundle import (gated on the store being empty) and an optional
// immediate collection run happen before the first scheduled trigger.
func (s *Scheduler) Run(ctx context.Context) error {
	if s.cfg.ImportInitialData {
		result, err := s.importer.ImportInitialData(ctx, s.cfg.InitialDataPath)
		if err != nil {
			// A failed seed import is reported but does not stop the
			// scheduling loop; live collection can still proceed.
			logging.Errorf("initial data import failed: %v", err)
			s.notifier.SendError(ctx, fmt.Sprintf("Initial data import failed: %v", err), "")
		} else if result.ImportedCount > 0 {
			logging.Infof("initial data import completed: %d projects imported", result.ImportedCount)
		}
	}

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, func() { s.dailyCollectionJob(ctx) }); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", s.cfg.CronSchedule, err)
	}

	if s.cfg.RunOnStartup {
		s.dailyCollectionJob(ctx)
	}

	logging.Infof("scheduler started with cron: %s", s.cfg.CronSchedule)
	s.cron.Start()

	<-ctx.Done()

	stopCtx := s.cron.Stop()
	<-stopCtx.Done()

	logging.Infof("scheduler stopped")
	return nil
}

// dailyCollectionJob runs one "collect yesterday" cycle. Failures never
// crash the loop: CollectYesterdayData already converts every error into a
// notification, and a panic here is caught and reported the same way.
func (s *Scheduler) dailyCollectionJob(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			logging.Errorf("daily collection job panicked: %v", r)
			s.notifier.SendError(ctx, fmt.Sprintf("Daily collection job failed: %v", r), "")
		}
	}()

	logging.Infof("running daily data collection job")
	s.collector.CollectYesterdayData(ctx)
}
