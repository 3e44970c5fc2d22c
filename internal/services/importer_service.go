package services

import (
	"context"
	"encoding/json"
	"os"

	"wakatime-tracker/internal/domain"
	"wakatime-tracker/internal/errors"
	"wakatime-tracker/internal/logging"
	"wakatime-tracker/internal/repository/sqlite"
	"wakatime-tracker/internal/validation"
)

// bundle mirrors the layout of a pre-exported WakaTime data file.
type bundle struct {
	Days []bundleDay `json:"days"`
}

type bundleDay struct {
	Date     string          `json:"date"`
	Projects []bundleProject `json:"projects"`
}

type bundleProject struct {
	Name       string            `json:"name"`
	GrandTotal *bundleGrandTotal `json:"grand_total"`
}

type bundleGrandTotal struct {
	TotalSeconds *float64 `json:"total_seconds"`
	Digital      string   `json:"digital"`
	Text         string   `json:"text"`
	Percent      float64  `json:"percent"`
}

// importerServiceImpl implements the ImporterService interface
type importerServiceImpl struct {
	repo      sqlite.Repository
	validator *validation.SummaryValidator
	mapper    *domain.SummaryMapper
}

// NewImporterService creates a new ImporterService instance
func NewImporterService(repo sqlite.Repository) ImporterService {
	return &importerServiceImpl{
		repo:      repo,
		validator: validation.NewSummaryValidator(),
		mapper:    domain.NewSummaryMapper(),
	}
}

// ImportFromFile reads the bundle at path and feeds every (day, project)
// pair through the same upsert path used by live collection. Individual
// malformed entries are counted and skipped; a missing file is a zero
// result, not an error.
func (s *importerServiceImpl) ImportFromFile(ctx context.Context, path string) (*domain.ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Infof("bundle file not found at %s, nothing to import", path)
			return &domain.ImportResult{}, nil
		}
		return nil, errors.NewValidationError("failed to read bundle file", err).WithContext("path", path)
	}

	var b bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, errors.NewValidationError("failed to parse bundle file", err).WithContext("path", path)
	}

	result := &domain.ImportResult{
		TotalDays: len(b.Days),
	}

	for _, day := range b.Days {
		for _, project := range day.Projects {
			record, err := extractBundleProject(day.Date, project)
			if err != nil {
				logging.Errorf("error importing project %q for %s: %v", project.Name, day.Date, err)
				result.ErrorCount++
				continue
			}

			if err := s.validator.ValidateProjectRecord(record); err != nil {
				logging.Errorf("error importing project %q for %s: %v", project.Name, day.Date, err)
				result.ErrorCount++
				continue
			}

			row := s.mapper.RecordToDatabase(*record)
			if err := s.repo.UpsertProjectSummary(ctx, &row); err != nil {
				logging.Errorf("error importing project %q for %s: %v", project.Name, day.Date, err)
				result.ErrorCount++
				continue
			}

			result.ImportedCount++
		}
	}

	logging.Infof("bundle import completed: %d projects imported, %d errors", result.ImportedCount, result.ErrorCount)
	return result, nil
}

// ImportInitialData seeds an empty store from the bundle at path. When the
// store already holds data the import is skipped entirely.
func (s *importerServiceImpl) ImportInitialData(ctx context.Context, path string) (*domain.ImportResult, error) {
	hasData, err := s.repo.HasAnyData(ctx)
	if err != nil {
		return nil, err
	}
	if hasData {
		logging.Infof("store already contains data, skipping initial import")
		return &domain.ImportResult{}, nil
	}

	return s.ImportFromFile(ctx, path)
}

func extractBundleProject(date string, project bundleProject) (*domain.ProjectRecord, error) {
	if project.Name == "" {
		return nil, errors.NewNormalizationError("name", "missing required field").WithContext("date", date)
	}
	if project.GrandTotal == nil {
		return nil, errors.NewNormalizationError("grand_total", "missing required field").
			WithContext("date", date).
			WithContext("project", project.Name)
	}
	if project.GrandTotal.TotalSeconds == nil {
		return nil, errors.NewNormalizationError("total_seconds", "missing required field").
			WithContext("date", date).
			WithContext("project", project.Name)
	}

	return &domain.ProjectRecord{
		Date:         date,
		Name:         project.Name,
		TotalSeconds: *project.GrandTotal.TotalSeconds,
		Digital:      project.GrandTotal.Digital,
		Text:         project.GrandTotal.Text,
		Percent:      project.GrandTotal.Percent,
	}, nil
}
