package api

import (
	"context"

	"wakatime-tracker/internal/domain"
	"wakatime-tracker/internal/repository/sqlite"
	"wakatime-tracker/internal/services"
	"wakatime-tracker/internal/validation"
)

// API is the callable surface of the collection core: the operations the
// external scheduler invokes plus the read-only queries consumers (reports,
// dashboards) build on.
type API interface {
	// Collection operations
	CollectDataForDate(ctx context.Context, date string) bool
	CollectHistoricalData(ctx context.Context, startDate, endDate string) (*domain.BackfillResult, error)
	CollectYesterdayData(ctx context.Context) bool

	// Bundle import
	ImportFromFile(ctx context.Context, path string) (*domain.ImportResult, error)

	// Read-only queries
	QueryRange(ctx context.Context, startDate, endDate string, projectName *string) ([]domain.ProjectDaySummary, error)
	DailyTotals(ctx context.Context, startDate, endDate string) ([]domain.DailyTotal, error)
	ListProjects(ctx context.Context) ([]string, error)
	HasData(ctx context.Context) (bool, error)
}

type apiImpl struct {
	repo      sqlite.Repository
	collector services.CollectorService
	importer  services.ImporterService
	mapper    *domain.SummaryMapper
	validator *validation.SummaryValidator
}

// New creates a new API instance over the given store and services.
func New(repo sqlite.Repository, collector services.CollectorService, importer services.ImporterService) API {
	return &apiImpl{
		repo:      repo,
		collector: collector,
		importer:  importer,
		mapper:    domain.NewSummaryMapper(),
		validator: validation.NewSummaryValidator(),
	}
}

func (a *apiImpl) CollectDataForDate(ctx context.Context, date string) bool {
	return a.collector.CollectDataForDate(ctx, date)
}

func (a *apiImpl) CollectHistoricalData(ctx context.Context, startDate, endDate string) (*domain.BackfillResult, error) {
	return a.collector.CollectHistoricalData(ctx, startDate, endDate)
}

func (a *apiImpl) CollectYesterdayData(ctx context.Context) bool {
	return a.collector.CollectYesterdayData(ctx)
}

func (a *apiImpl) ImportFromFile(ctx context.Context, path string) (*domain.ImportResult, error) {
	return a.importer.ImportFromFile(ctx, path)
}

func (a *apiImpl) QueryRange(ctx context.Context, startDate, endDate string, projectName *string) ([]domain.ProjectDaySummary, error) {
	if err := a.validator.ValidateDateRange(startDate, endDate); err != nil {
		return nil, err
	}

	rows, err := a.repo.QueryRange(ctx, startDate, endDate, projectName)
	if err != nil {
		return nil, err
	}

	return a.mapper.FromDatabaseSlice(rows), nil
}

func (a *apiImpl) DailyTotals(ctx context.Context, startDate, endDate string) ([]domain.DailyTotal, error) {
	if err := a.validator.ValidateDateRange(startDate, endDate); err != nil {
		return nil, err
	}

	rows, err := a.repo.DailyTotals(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	totals := make([]domain.DailyTotal, len(rows))
	for i, row := range rows {
		totals[i] = domain.DailyTotal{
			Date:         row.Date,
			TotalSeconds: row.TotalSeconds,
		}
	}
	return totals, nil
}

func (a *apiImpl) ListProjects(ctx context.Context) ([]string, error) {
	return a.repo.ListDistinctProjects(ctx)
}

func (a *apiImpl) HasData(ctx context.Context) (bool, error) {
	return a.repo.HasAnyData(ctx)
}
