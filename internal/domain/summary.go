package domain

import "time"

// DateFormat is the canonical YYYY-MM-DD form used for all summary dates.
const DateFormat = "2006-01-02"

// ProjectDaySummary represents one project's aggregated activity for one
// calendar day. This is a pure domain model without database-specific
// concerns.
type ProjectDaySummary struct {
	ID           int64
	Date         string // YYYY-MM-DD
	ProjectName  string
	TotalSeconds float64
	DigitalTime  string // derived display form, e.g. "1:30"
	TextTime     string // derived display form, e.g. "1 hr 30 mins"
	Percent      float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsValid checks if the summary has valid data.
func (s ProjectDaySummary) IsValid() bool {
	return s.Date != "" && s.ProjectName != "" && s.TotalSeconds >= 0
}

// ProjectRecord is a normalized per-project record extracted from a remote
// payload or an import bundle, before persistence.
type ProjectRecord struct {
	Date         string
	Name         string
	TotalSeconds float64
	Digital      string
	Text         string
	Percent      float64
}

// DailyTotal is the summed activity across all projects for one date.
type DailyTotal struct {
	Date         string
	TotalSeconds float64
}

// ImportResult summarizes the outcome of a bundle import.
type ImportResult struct {
	ImportedCount int
	ErrorCount    int
	TotalDays     int
}

// BackfillResult summarizes a historical collection run.
type BackfillResult struct {
	Successes int
	TotalDays int
}
