package sqlite

import "time"

// ProjectSummary represents one row of the project_summaries table:
// a single project's aggregated activity for a single calendar day.
// The pair (Date, ProjectName) is unique.
type ProjectSummary struct {
	ID           int64
	Date         string // YYYY-MM-DD
	ProjectName  string
	TotalSeconds float64
	DigitalTime  string
	TextTime     string
	Percent      float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DailyTotal represents the summed total_seconds across all projects for
// one date.
type DailyTotal struct {
	Date         string
	TotalSeconds float64
}
