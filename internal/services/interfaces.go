package services

import (
	"context"

	"wakatime-tracker/internal/domain"
)

// CollectorService drives single-date and multi-date collection from the
// remote API into the summary store.
type CollectorService interface {
	// CollectDataForDate collects one date. Never returns an error: every
	// failure is logged, notified, and converted into a false return.
	CollectDataForDate(ctx context.Context, date string) bool

	// CollectHistoricalData iterates every calendar day in the inclusive
	// range, continuing past individual day failures. Returns an error only
	// for an invalid range.
	CollectHistoricalData(ctx context.Context, startDate, endDate string) (*domain.BackfillResult, error)

	// CollectYesterdayData collects the day before the current UTC date.
	CollectYesterdayData(ctx context.Context) bool
}

// ImporterService seeds the store from a pre-exported bundle file.
type ImporterService interface {
	// ImportFromFile imports every (day, project) pair from the bundle at
	// path. A missing file yields a zero result, not an error; malformed
	// project entries are counted and skipped.
	ImportFromFile(ctx context.Context, path string) (*domain.ImportResult, error)

	// ImportInitialData runs ImportFromFile only when the store is empty.
	ImportInitialData(ctx context.Context, path string) (*domain.ImportResult, error)
}
