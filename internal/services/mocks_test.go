package services

import (
	"context"
	"fmt"
	"sync"

	"wakatime-tracker/internal/errors"
	"wakatime-tracker/internal/repository/sqlite"
	"wakatime-tracker/internal/wakatime"
)

// mockClient implements wakatime.Client for testing. Responses are keyed by
// start date; dates without an entry return a transport error.
type mockClient struct {
	responses map[string]*wakatime.SummariesResponse
	failDates map[string]bool
	calls     []string
}

func newMockClient() *mockClient {
	return &mockClient{
		responses: make(map[string]*wakatime.SummariesResponse),
		failDates: make(map[string]bool),
	}
}

func (m *mockClient) GetSummaries(ctx context.Context, startDate, endDate string) (*wakatime.SummariesResponse, error) {
	m.calls = append(m.calls, startDate)

	if m.failDates[startDate] {
		return nil, errors.NewTransportError("get summaries", fmt.Errorf("connection refused"))
	}
	if resp, ok := m.responses[startDate]; ok {
		return resp, nil
	}
	return &wakatime.SummariesResponse{}, nil
}

// respond registers a single-day payload with the given projects.
func (m *mockClient) respond(date string, projects ...wakatime.ProjectPayload) {
	m.responses[date] = &wakatime.SummariesResponse{
		Data: []wakatime.DaySummary{
			{
				Range:    wakatime.SummaryRange{Date: date},
				Projects: projects,
			},
		},
	}
}

// mockNotifier implements notify.Notifier, recording every message.
type mockNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{}
}

func (m *mockNotifier) SendSuccess(ctx context.Context, action, details string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.successes = append(m.successes, action+": "+details)
	return true
}

func (m *mockNotifier) SendError(ctx context.Context, message, errContext string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, message+" ("+errContext+")")
	return true
}

// failingRepository wraps a real repository and fails every upsert with a
// database error. Used to exercise the abort-on-storage-fault path.
type failingRepository struct {
	sqlite.Repository
}

func (f *failingRepository) UpsertProjectSummary(ctx context.Context, summary *sqlite.ProjectSummary) error {
	return errors.NewDatabaseError("upsert project summary", fmt.Errorf("disk I/O error"))
}

func projectPayload(name string, seconds float64) wakatime.ProjectPayload {
	return wakatime.ProjectPayload{
		Name:         name,
		TotalSeconds: &seconds,
		Digital:      "1:00",
		Text:         "1 hr",
		Percent:      50,
	}
}
