package validation

import (
	"strings"
	"time"
)

// DateFormat is the YYYY-MM-DD layout every summary date must use.
const DateFormat = "2006-01-02"

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidDate checks if a string is a real calendar date in YYYY-MM-DD form
func (v *Validator) IsValidDate(s string) bool {
	parsed, err := time.Parse(DateFormat, s)
	if err != nil {
		return false
	}
	// time.Parse normalizes some malformed inputs; round-trip to be strict.
	return parsed.Format(DateFormat) == s
}

// IsValidDateRange checks that both bounds are valid and start <= end.
// Dates in YYYY-MM-DD form compare correctly as strings.
func (v *Validator) IsValidDateRange(start, end string) bool {
	return v.IsValidDate(start) && v.IsValidDate(end) && start <= end
}

// IsNonNegative checks that a duration or percentage value is not negative
func (v *Validator) IsNonNegative(value float64) bool {
	return value >= 0
}
