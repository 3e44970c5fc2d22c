package domain

import (
	"wakatime-tracker/internal/repository/sqlite"
)

// SummaryMapper handles conversion between domain and database summary models.
type SummaryMapper struct{}

// NewSummaryMapper creates a new SummaryMapper instance.
func NewSummaryMapper() *SummaryMapper {
	return &SummaryMapper{}
}

// ToDatabase converts a domain ProjectDaySummary to a database ProjectSummary.
func (m *SummaryMapper) ToDatabase(s ProjectDaySummary) sqlite.ProjectSummary {
	return sqlite.ProjectSummary{
		ID:           s.ID,
		Date:         s.Date,
		ProjectName:  s.ProjectName,
		TotalSeconds: s.TotalSeconds,
		DigitalTime:  s.DigitalTime,
		TextTime:     s.TextTime,
		Percent:      s.Percent,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// FromDatabase converts a database ProjectSummary to a domain ProjectDaySummary.
func (m *SummaryMapper) FromDatabase(row sqlite.ProjectSummary) ProjectDaySummary {
	return ProjectDaySummary{
		ID:           row.ID,
		Date:         row.Date,
		ProjectName:  row.ProjectName,
		TotalSeconds: row.TotalSeconds,
		DigitalTime:  row.DigitalTime,
		TextTime:     row.TextTime,
		Percent:      row.Percent,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

// FromDatabaseSlice converts a slice of database rows to domain summaries.
func (m *SummaryMapper) FromDatabaseSlice(rows []*sqlite.ProjectSummary) []ProjectDaySummary {
	summaries := make([]ProjectDaySummary, len(rows))
	for i, row := range rows {
		summaries[i] = m.FromDatabase(*row)
	}
	return summaries
}

// RecordToDatabase converts a normalized ProjectRecord to a database row
// ready for upsert.
func (m *SummaryMapper) RecordToDatabase(r ProjectRecord) sqlite.ProjectSummary {
	return sqlite.ProjectSummary{
		Date:         r.Date,
		ProjectName:  r.Name,
		TotalSeconds: r.TotalSeconds,
		DigitalTime:  r.Digital,
		TextTime:     r.Text,
		Percent:      r.Percent,
	}
}
