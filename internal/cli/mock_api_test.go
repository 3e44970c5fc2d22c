package cli

import (
	"context"

	"wakatime-tracker/internal/domain"
	"wakatime-tracker/internal/validation"
)

// mockAPI implements the api.API interface for testing command handlers
type mockAPI struct {
	collectedDates []string
	failDates      map[string]bool
	yesterdayOK    bool
	yesterdayCalls int

	backfillResult *domain.BackfillResult
	backfillRanges [][2]string

	importResult *domain.ImportResult
	importErr    error
	importPaths  []string

	summaries     []domain.ProjectDaySummary
	queryErr      error
	queryFilters  []*string
	totals        []domain.DailyTotal
	projects      []string
	listErr       error
	hasData       bool

	validator *validation.SummaryValidator
}

// newMockAPI creates a mock with permissive defaults
func newMockAPI() *mockAPI {
	return &mockAPI{
		failDates:   make(map[string]bool),
		yesterdayOK: true,
		validator:   validation.NewSummaryValidator(),
	}
}

// setupTestApp wires an App around a mock API
func setupTestApp() (*App, *mockAPI) {
	mock := newMockAPI()
	return NewApp(mock, nil, nil, nil), mock
}

func (m *mockAPI) CollectDataForDate(ctx context.Context, date string) bool {
	m.collectedDates = append(m.collectedDates, date)
	return !m.failDates[date]
}

func (m *mockAPI) CollectHistoricalData(ctx context.Context, startDate, endDate string) (*domain.BackfillResult, error) {
	if err := m.validator.ValidateDateRange(startDate, endDate); err != nil {
		return nil, err
	}
	m.backfillRanges = append(m.backfillRanges, [2]string{startDate, endDate})
	if m.backfillResult != nil {
		return m.backfillResult, nil
	}
	return &domain.BackfillResult{Successes: 1, TotalDays: 1}, nil
}

func (m *mockAPI) CollectYesterdayData(ctx context.Context) bool {
	m.yesterdayCalls++
	return m.yesterdayOK
}

func (m *mockAPI) ImportFromFile(ctx context.Context, path string) (*domain.ImportResult, error) {
	m.importPaths = append(m.importPaths, path)
	if m.importErr != nil {
		return nil, m.importErr
	}
	if m.importResult != nil {
		return m.importResult, nil
	}
	return &domain.ImportResult{}, nil
}

func (m *mockAPI) QueryRange(ctx context.Context, startDate, endDate string, projectName *string) ([]domain.ProjectDaySummary, error) {
	if err := m.validator.ValidateDateRange(startDate, endDate); err != nil {
		return nil, err
	}
	m.queryFilters = append(m.queryFilters, projectName)
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	return m.summaries, nil
}

func (m *mockAPI) DailyTotals(ctx context.Context, startDate, endDate string) ([]domain.DailyTotal, error) {
	if err := m.validator.ValidateDateRange(startDate, endDate); err != nil {
		return nil, err
	}
	return m.totals, nil
}

func (m *mockAPI) ListProjects(ctx context.Context) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.projects, nil
}

func (m *mockAPI) HasData(ctx context.Context) (bool, error) {
	return m.hasData, nil
}
