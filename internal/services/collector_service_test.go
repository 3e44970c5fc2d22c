package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"wakatime-tracker/internal/repository/sqlite"
	"wakatime-tracker/internal/wakatime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) sqlite.Repository {
	t.Helper()
	repo, err := sqlite.New(filepath.Join(t.TempDir(), "waka_test.db"), sqlite.ConnectOptions{Attempts: 1})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

// setupCollector wires a collector with mock collaborators and an
// instantaneous sleep so backfill tests run fast.
func setupCollector(t *testing.T, repo sqlite.Repository) (*collectorServiceImpl, *mockClient, *mockNotifier) {
	t.Helper()
	client := newMockClient()
	notifier := newMockNotifier()

	service := NewCollectorService(repo, client, notifier, time.Second).(*collectorServiceImpl)
	service.sleep = func(time.Duration) {}

	return service, client, notifier
}

func TestCollectDataForDate_Success(t *testing.T) {
	repo := setupRepo(t)
	service, client, notifier := setupCollector(t, repo)
	ctx := context.Background()

	client.respond("2024-03-01",
		projectPayload("repo-a", 3600),
		projectPayload("repo-b", 1800),
	)

	ok := service.CollectDataForDate(ctx, "2024-03-01")
	assert.True(t, ok)

	rows, err := repo.QueryRange(ctx, "2024-03-01", "2024-03-01", nil)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	require.Len(t, notifier.successes, 1)
	assert.Contains(t, notifier.successes[0], "2 projects")
	assert.Empty(t, notifier.errors)
}

func TestCollectDataForDate_TransportError(t *testing.T) {
	repo := setupRepo(t)
	service, client, notifier := setupCollector(t, repo)
	ctx := context.Background()

	client.failDates["2024-03-01"] = true

	ok := service.CollectDataForDate(ctx, "2024-03-01")
	assert.False(t, ok)

	rows, err := repo.QueryRange(ctx, "2024-03-01", "2024-03-01", nil)
	require.NoError(t, err)
	assert.Empty(t, rows)

	require.Len(t, notifier.errors, 1)
	assert.Contains(t, notifier.errors[0], "2024-03-01")
	assert.Empty(t, notifier.successes)
}

func TestCollectDataForDate_NoActivity(t *testing.T) {
	repo := setupRepo(t)
	service, _, notifier := setupCollector(t, repo)

	// The mock returns an empty payload for unregistered dates.
	ok := service.CollectDataForDate(context.Background(), "2024-03-01")
	assert.False(t, ok)

	// No activity is not an error: neither channel gets a message.
	assert.Empty(t, notifier.errors)
	assert.Empty(t, notifier.successes)
}

func TestCollectDataForDate_InvalidDate(t *testing.T) {
	repo := setupRepo(t)
	service, client, notifier := setupCollector(t, repo)

	ok := service.CollectDataForDate(context.Background(), "not-a-date")
	assert.False(t, ok)
	assert.Empty(t, client.calls, "invalid dates must not reach the remote API")
	assert.Len(t, notifier.errors, 1)
}

func TestCollectDataForDate_MalformedProjectIsolated(t *testing.T) {
	repo := setupRepo(t)
	service, client, notifier := setupCollector(t, repo)
	ctx := context.Background()

	seconds := float64(100)
	client.respond("2024-03-01",
		projectPayload("repo-a", 3600),
		wakatime.ProjectPayload{Name: "", TotalSeconds: &seconds}, // malformed
		projectPayload("repo-b", 1800),
	)

	ok := service.CollectDataForDate(ctx, "2024-03-01")
	assert.True(t, ok, "one malformed entry must not fail the whole date")

	rows, err := repo.QueryRange(ctx, "2024-03-01", "2024-03-01", nil)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	require.Len(t, notifier.successes, 1)
	assert.Contains(t, notifier.successes[0], "2 projects")
}

func TestCollectDataForDate_StorageFaultAborts(t *testing.T) {
	repo := setupRepo(t)
	service, client, notifier := setupCollector(t, &failingRepository{Repository: repo})

	client.respond("2024-03-01", projectPayload("repo-a", 3600))

	ok := service.CollectDataForDate(context.Background(), "2024-03-01")
	assert.False(t, ok)

	require.Len(t, notifier.errors, 1)
	assert.Contains(t, notifier.errors[0], "database")
	assert.Empty(t, notifier.successes)
}

func TestCollectHistoricalData_ContinuesPastFailures(t *testing.T) {
	repo := setupRepo(t)
	service, client, notifier := setupCollector(t, repo)
	ctx := context.Background()

	// Days 1, 3, 4, 5 have data; day 2 fails at the transport level.
	for _, date := range []string{"2024-03-01", "2024-03-03", "2024-03-04", "2024-03-05"} {
		client.respond(date, projectPayload("repo-a", 3600))
	}
	client.failDates["2024-03-02"] = true

	result, err := service.CollectHistoricalData(ctx, "2024-03-01", "2024-03-05")
	require.NoError(t, err)

	assert.Equal(t, 5, result.TotalDays)
	assert.Equal(t, 4, result.Successes)
	assert.Equal(t, []string{"2024-03-01", "2024-03-02", "2024-03-03", "2024-03-04", "2024-03-05"}, client.calls,
		"every day must be attempted despite the failure")

	// Final summary notification on top of the per-day successes.
	require.NotEmpty(t, notifier.successes)
	assert.Contains(t, notifier.successes[len(notifier.successes)-1], "4/5 days")
}

func TestCollectHistoricalData_RateLimitPause(t *testing.T) {
	repo := setupRepo(t)
	service, client, _ := setupCollector(t, repo)

	var pauses int
	service.sleep = func(d time.Duration) {
		assert.Equal(t, time.Second, d)
		pauses++
	}

	client.respond("2024-03-01", projectPayload("repo-a", 100))
	client.respond("2024-03-02", projectPayload("repo-a", 200))

	_, err := service.CollectHistoricalData(context.Background(), "2024-03-01", "2024-03-02")
	require.NoError(t, err)
	assert.Equal(t, 2, pauses)
}

func TestCollectHistoricalData_InvalidRange(t *testing.T) {
	repo := setupRepo(t)
	service, client, _ := setupCollector(t, repo)

	tests := []struct {
		name  string
		start string
		end   string
	}{
		{
			name:  "inverted range",
			start: "2024-03-05",
			end:   "2024-03-01",
		},
		{
			name:  "malformed start",
			start: "05-03-2024",
			end:   "2024-03-05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.CollectHistoricalData(context.Background(), tt.start, tt.end)
			assert.Error(t, err)
			assert.Nil(t, result)
		})
	}

	assert.Empty(t, client.calls)
}

func TestCollectHistoricalData_OverlapWithExistingRowsUpdatesInPlace(t *testing.T) {
	repo := setupRepo(t)
	service, client, _ := setupCollector(t, repo)
	ctx := context.Background()

	client.respond("2024-03-01", projectPayload("repo-a", 3600))
	require.True(t, service.CollectDataForDate(ctx, "2024-03-01"))

	// Re-collect the same day with a corrected total.
	client.respond("2024-03-01", projectPayload("repo-a", 5400))
	_, err := service.CollectHistoricalData(ctx, "2024-03-01", "2024-03-01")
	require.NoError(t, err)

	rows, err := repo.QueryRange(ctx, "2024-03-01", "2024-03-01", nil)
	require.NoError(t, err)
	require.Len(t, rows, 1, "overlapping backfill must update, not duplicate")
	assert.Equal(t, float64(5400), rows[0].TotalSeconds)
}

func TestCollectYesterdayData(t *testing.T) {
	repo := setupRepo(t)
	service, client, _ := setupCollector(t, repo)

	// Fix "now" to 2024-03-02 10:00 UTC; yesterday is 2024-03-01.
	service.now = func() time.Time {
		return time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	}
	client.respond("2024-03-01", projectPayload("repo-a", 3600))

	ok := service.CollectYesterdayData(context.Background())
	assert.True(t, ok)
	assert.Equal(t, []string{"2024-03-01"}, client.calls)
}

func TestCollectYesterdayData_UTCAnchored(t *testing.T) {
	repo := setupRepo(t)
	service, client, _ := setupCollector(t, repo)

	// 2024-03-02 00:30 in UTC+2 is still 2024-03-01 22:30 UTC, so
	// "yesterday" must resolve against the UTC calendar: 2024-02-29.
	zone := time.FixedZone("UTC+2", 2*60*60)
	service.now = func() time.Time {
		return time.Date(2024, 3, 2, 0, 30, 0, 0, zone)
	}

	service.CollectYesterdayData(context.Background())
	assert.Equal(t, []string{"2024-02-29"}, client.calls)
}
