package wakatime

import (
	"encoding/json"
	"testing"

	"wakatime-tracker/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func TestExtractProjectData(t *testing.T) {
	tests := []struct {
		name        string
		summaries   *SummariesResponse
		wantRecords int
		wantErrors  int
	}{
		{
			name: "single day single project",
			summaries: &SummariesResponse{
				Data: []DaySummary{
					{
						Range: SummaryRange{Date: "2024-03-01"},
						Projects: []ProjectPayload{
							{Name: "repo-a", TotalSeconds: floatPtr(3600), Percent: 50},
						},
					},
				},
			},
			wantRecords: 1,
		},
		{
			name: "multiple days multiple projects",
			summaries: &SummariesResponse{
				Data: []DaySummary{
					{
						Range: SummaryRange{Date: "2024-03-01"},
						Projects: []ProjectPayload{
							{Name: "repo-a", TotalSeconds: floatPtr(3600), Digital: "1:00", Text: "1 hr", Percent: 60},
							{Name: "repo-b", TotalSeconds: floatPtr(2400), Digital: "0:40", Text: "40 mins", Percent: 40},
						},
					},
					{
						Range: SummaryRange{Date: "2024-03-02"},
						Projects: []ProjectPayload{
							{Name: "repo-a", TotalSeconds: floatPtr(1800), Percent: 100},
						},
					},
				},
			},
			wantRecords: 3,
		},
		{
			name:      "nil payload",
			summaries: nil,
		},
		{
			name:      "empty data list",
			summaries: &SummariesResponse{},
		},
		{
			name: "day with no projects",
			summaries: &SummariesResponse{
				Data: []DaySummary{
					{Range: SummaryRange{Date: "2024-03-01"}},
				},
			},
		},
		{
			name: "malformed project isolated from valid siblings",
			summaries: &SummariesResponse{
				Data: []DaySummary{
					{
						Range: SummaryRange{Date: "2024-03-01"},
						Projects: []ProjectPayload{
							{Name: "repo-a", TotalSeconds: floatPtr(3600)},
							{Name: "", TotalSeconds: floatPtr(100)},
							{Name: "repo-c"}, // missing total_seconds
							{Name: "repo-d", TotalSeconds: floatPtr(200)},
						},
					},
				},
			},
			wantRecords: 2,
			wantErrors:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, errs := ExtractProjectData(tt.summaries)

			assert.Len(t, records, tt.wantRecords)
			assert.Len(t, errs, tt.wantErrors)
			for _, err := range errs {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNormalization))
			}
		})
	}
}

// Mirrors a raw API payload end to end: decode then extract.
func TestExtractProjectData_FromRawJSON(t *testing.T) {
	raw := `{"data":[{"range":{"date":"2024-03-01"},"projects":[{"name":"repo-a","total_seconds":3600,"percent":50}]}]}`

	var summaries SummariesResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &summaries))

	records, errs := ExtractProjectData(&summaries)
	require.Empty(t, errs)
	require.Len(t, records, 1)

	assert.Equal(t, "2024-03-01", records[0].Date)
	assert.Equal(t, "repo-a", records[0].Name)
	assert.Equal(t, float64(3600), records[0].TotalSeconds)
	assert.Equal(t, "", records[0].Digital)
	assert.Equal(t, "", records[0].Text)
	assert.Equal(t, float64(50), records[0].Percent)
}

func TestExtractProjectData_ZeroSecondsIsNotMissing(t *testing.T) {
	raw := `{"data":[{"range":{"date":"2024-03-01"},"projects":[{"name":"idle-repo","total_seconds":0}]}]}`

	var summaries SummariesResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &summaries))

	records, errs := ExtractProjectData(&summaries)
	assert.Empty(t, errs)
	require.Len(t, records, 1)
	assert.Equal(t, float64(0), records[0].TotalSeconds)
}

func TestHasData(t *testing.T) {
	assert.False(t, HasData(nil))
	assert.False(t, HasData(&SummariesResponse{}))
	assert.True(t, HasData(&SummariesResponse{Data: []DaySummary{{}}}))
}
