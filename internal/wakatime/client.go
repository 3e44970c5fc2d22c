package wakatime

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"wakatime-tracker/internal/config"
	"wakatime-tracker/internal/errors"
	"wakatime-tracker/internal/logging"
)

// SummariesResponse is the raw payload returned by GET /users/{id}/summaries.
type SummariesResponse struct {
	Data []DaySummary `json:"data"`
}

// DaySummary holds one day's worth of per-project aggregates.
type DaySummary struct {
	Range    SummaryRange     `json:"range"`
	Projects []ProjectPayload `json:"projects"`
}

// SummaryRange identifies the calendar day a DaySummary covers.
type SummaryRange struct {
	Date string `json:"date"`
}

// ProjectPayload is one project's raw aggregate within a day.
// TotalSeconds is a pointer so a missing field can be told apart from zero.
type ProjectPayload struct {
	Name         string   `json:"name"`
	TotalSeconds *float64 `json:"total_seconds"`
	Digital      string   `json:"digital"`
	Text         string   `json:"text"`
	Percent      float64  `json:"percent"`
}

// Client fetches activity summaries from the remote API.
type Client interface {
	// GetSummaries issues one request for the inclusive date range.
	// Timeouts, connection failures and non-2xx statuses surface as
	// transport errors; retry policy belongs to the caller.
	GetSummaries(ctx context.Context, startDate, endDate string) (*SummariesResponse, error)
}

// httpClient implements Client against the WakaTime HTTP API.
type httpClient struct {
	cfg  config.WakaTimeConfig
	http *http.Client
}

// NewClient creates a Client for the configured WakaTime account.
func NewClient(cfg config.WakaTimeConfig) Client {
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}
}

func (c *httpClient) GetSummaries(ctx context.Context, startDate, endDate string) (*SummariesResponse, error) {
	endpoint := fmt.Sprintf("%s/users/%s/summaries", c.cfg.BaseURL, c.cfg.UserID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.NewTransportError("build summaries request", err)
	}

	query := url.Values{}
	query.Set("start", startDate)
	query.Set("end", endDate)
	req.URL.RawQuery = query.Encode()
	req.Header.Set("Authorization", "Basic "+c.cfg.APIKey)

	logging.Debugf("fetching summaries %s..%s\n", startDate, endDate)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.NewTransportError("get summaries", err).
			WithContext("start_date", startDate).
			WithContext("end_date", endDate)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, errors.NewTransportError(
			fmt.Sprintf("get summaries: unexpected status %d", resp.StatusCode), nil).
			WithContext("status", resp.StatusCode).
			WithContext("body", string(body))
	}

	var summaries SummariesResponse
	if err := json.NewDecoder(resp.Body).Decode(&summaries); err != nil {
		return nil, errors.NewTransportError("decode summaries response", err)
	}

	return &summaries, nil
}
