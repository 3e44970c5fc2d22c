package validation

import (
	"wakatime-tracker/internal/domain"
)

// SummaryValidator provides validation for collection and import inputs
type SummaryValidator struct {
	validator *Validator
}

// NewSummaryValidator creates a new summary validator
func NewSummaryValidator() *SummaryValidator {
	return &SummaryValidator{
		validator: NewValidator(),
	}
}

// ValidateDate validates a single collection date
func (sv *SummaryValidator) ValidateDate(date string) error {
	validationError := NewValidationError()

	if !sv.validator.IsNonEmptyString(date) {
		validationError.AddRequiredError("date")
		return validationError
	}

	if !sv.validator.IsValidDate(date) {
		validationError.AddInvalidFormatError("date", date, DateFormat)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateDateRange validates an inclusive backfill or query range
func (sv *SummaryValidator) ValidateDateRange(start, end string) error {
	validationError := NewValidationError()

	if dateErr := sv.ValidateDate(start); dateErr != nil {
		validationError.AddInvalidFormatError("start_date", start, DateFormat)
	}
	if dateErr := sv.ValidateDate(end); dateErr != nil {
		validationError.AddInvalidFormatError("end_date", end, DateFormat)
	}

	if !validationError.HasErrors() && start > end {
		validationError.AddInvalidRangeError("date_range", start+".."+end, "start date must not be after end date")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateProjectRecord validates a normalized record before persistence
func (sv *SummaryValidator) ValidateProjectRecord(record *domain.ProjectRecord) error {
	validationError := NewValidationError()

	if !sv.validator.IsNonEmptyString(record.Name) {
		validationError.AddRequiredError("name")
	}

	if !sv.validator.IsValidDate(record.Date) {
		validationError.AddInvalidFormatError("date", record.Date, DateFormat)
	}

	if !sv.validator.IsNonNegative(record.TotalSeconds) {
		validationError.AddInvalidValueError("total_seconds", record.TotalSeconds, "must not be negative")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}
