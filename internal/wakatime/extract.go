package wakatime

import (
	"wakatime-tracker/internal/domain"
	"wakatime-tracker/internal/errors"
)

// ExtractProjectData flattens a raw summaries payload into one record per
// (day, project) pair. Optional fields default to empty string / zero. A
// project entry missing its name or total_seconds produces a normalization
// error for that entry only; the rest of the batch is unaffected.
func ExtractProjectData(summaries *SummariesResponse) ([]*domain.ProjectRecord, []error) {
	var records []*domain.ProjectRecord
	var errs []error

	if summaries == nil {
		return records, errs
	}

	for _, day := range summaries.Data {
		date := day.Range.Date

		for _, project := range day.Projects {
			if project.Name == "" {
				errs = append(errs, errors.NewNormalizationError("name", "missing required field").
					WithContext("date", date))
				continue
			}
			if project.TotalSeconds == nil {
				errs = append(errs, errors.NewNormalizationError("total_seconds", "missing required field").
					WithContext("date", date).
					WithContext("project", project.Name))
				continue
			}

			records = append(records, &domain.ProjectRecord{
				Date:         date,
				Name:         project.Name,
				TotalSeconds: *project.TotalSeconds,
				Digital:      project.Digital,
				Text:         project.Text,
				Percent:      project.Percent,
			})
		}
	}

	return records, errs
}

// HasData reports whether the payload carries at least one day entry.
// An empty or absent data list means "no activity", which callers must
// distinguish from a transport failure.
func HasData(summaries *SummariesResponse) bool {
	return summaries != nil && len(summaries.Data) > 0
}
