package services

import (
	"context"
	"fmt"
	"time"

	"wakatime-tracker/internal/domain"
	"wakatime-tracker/internal/logging"
	"wakatime-tracker/internal/notify"
	"wakatime-tracker/internal/repository/sqlite"
	"wakatime-tracker/internal/validation"
	"wakatime-tracker/internal/wakatime"
)

// collectorServiceImpl implements the CollectorService interface
type collectorServiceImpl struct {
	repo      sqlite.Repository
	client    wakatime.Client
	notifier  notify.Notifier
	validator *validation.SummaryValidator
	mapper    *domain.SummaryMapper

	// rateLimitDelay is the blocking pause between consecutive days of a
	// historical backfill, protecting the remote API's rate limits.
	rateLimitDelay time.Duration

	now   func() time.Time
	sleep func(time.Duration)
}

// NewCollectorService creates a new CollectorService instance
func NewCollectorService(repo sqlite.Repository, client wakatime.Client, notifier notify.Notifier, rateLimitDelay time.Duration) CollectorService {
	return &collectorServiceImpl{
		repo:           repo,
		client:         client,
		notifier:       notifier,
		validator:      validation.NewSummaryValidator(),
		mapper:         domain.NewSummaryMapper(),
		rateLimitDelay: rateLimitDelay,
		now:            time.Now,
		sleep:          time.Sleep,
	}
}

// CollectDataForDate collects summaries for one date: fetch, normalize,
// persist, report. All failures are converted into a notification plus a
// false return; nothing propagates to the caller.
func (s *collectorServiceImpl) CollectDataForDate(ctx context.Context, date string) bool {
	logging.Infof("collecting data for date: %s", date)

	if err := s.validator.ValidateDate(date); err != nil {
		s.reportFailure(ctx, date, err)
		return false
	}

	summaries, err := s.client.GetSummaries(ctx, date, date)
	if err != nil {
		s.reportFailure(ctx, date, err)
		return false
	}

	// An empty payload means no tracked activity that day. Distinct from a
	// transport failure: logged, not notified as an error.
	if !wakatime.HasData(summaries) {
		logging.Infof("no data found for date %s", date)
		return false
	}

	records, normErrs := wakatime.ExtractProjectData(summaries)
	for _, normErr := range normErrs {
		logging.Errorf("skipping malformed project entry for %s: %v", date, normErr)
	}

	for _, record := range records {
		row := s.mapper.RecordToDatabase(*record)
		if err := s.repo.UpsertProjectSummary(ctx, &row); err != nil {
			s.reportFailure(ctx, date, err)
			return false
		}
	}

	successMsg := fmt.Sprintf("Collected data for %s: %d projects", date, len(records))
	logging.Infof("%s", successMsg)
	s.notifier.SendSuccess(ctx, "Data collection completed", successMsg)

	return true
}

// CollectHistoricalData backfills every calendar day in [startDate, endDate],
// pausing between days and continuing past individual failures.
func (s *collectorServiceImpl) CollectHistoricalData(ctx context.Context, startDate, endDate string) (*domain.BackfillResult, error) {
	if err := s.validator.ValidateDateRange(startDate, endDate); err != nil {
		return nil, err
	}

	logging.Infof("collecting historical data from %s to %s", startDate, endDate)

	start, _ := time.Parse(domain.DateFormat, startDate)
	end, _ := time.Parse(domain.DateFormat, endDate)

	result := &domain.BackfillResult{
		TotalDays: int(end.Sub(start).Hours()/24) + 1,
	}

	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		if s.CollectDataForDate(ctx, current.Format(domain.DateFormat)) {
			result.Successes++
		}

		// Deliberate blocking pause between days; the backfill is
		// sequential by design.
		s.sleep(s.rateLimitDelay)
	}

	summary := fmt.Sprintf("Historical data collection completed: %d/%d days", result.Successes, result.TotalDays)
	logging.Infof("%s", summary)
	s.notifier.SendSuccess(ctx, "Historical data collection", summary)

	return result, nil
}

// CollectYesterdayData collects the day before the current date. The
// computation is anchored to UTC, matching the UTC timestamps the store
// records.
func (s *collectorServiceImpl) CollectYesterdayData(ctx context.Context) bool {
	yesterday := s.now().UTC().AddDate(0, 0, -1).Format(domain.DateFormat)
	return s.CollectDataForDate(ctx, yesterday)
}

func (s *collectorServiceImpl) reportFailure(ctx context.Context, date string, cause error) {
	errorMsg := fmt.Sprintf("Failed to collect data for %s: %v", date, cause)
	logging.Errorf("%s", errorMsg)
	s.notifier.SendError(ctx, errorMsg, fmt.Sprintf("Date: %s", date))
}
