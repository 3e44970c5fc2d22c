package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanProjectSummary scans a single project summary from a database row
func ScanProjectSummary(scanner Scanner) (*ProjectSummary, error) {
	summary := &ProjectSummary{}
	var digital, text sql.NullString
	var percent sql.NullFloat64
	var createdAt, updatedAt string

	err := scanner.Scan(
		&summary.ID,
		&summary.Date,
		&summary.ProjectName,
		&summary.TotalSeconds,
		&digital,
		&text,
		&percent,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	summary.DigitalTime = digital.String
	summary.TextTime = text.String
	summary.Percent = percent.Float64

	if summary.CreatedAt, err = ParseTimeFromDB(createdAt); err != nil {
		return nil, err
	}
	if summary.UpdatedAt, err = ParseTimeFromDB(updatedAt); err != nil {
		return nil, err
	}

	return summary, nil
}

// ScanProjectSummaries scans multiple project summaries from database rows
func ScanProjectSummaries(rows Rows) ([]*ProjectSummary, error) {
	var summaries []*ProjectSummary
	for rows.Next() {
		summary, err := ScanProjectSummary(rows)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

// ScanDailyTotal scans a single daily total from a database row
func ScanDailyTotal(scanner Scanner) (*DailyTotal, error) {
	total := &DailyTotal{}
	err := scanner.Scan(&total.Date, &total.TotalSeconds)
	if err != nil {
		return nil, err
	}
	return total, nil
}

// ScanDailyTotals scans multiple daily totals from database rows
func ScanDailyTotals(rows Rows) ([]*DailyTotal, error) {
	var totals []*DailyTotal
	for rows.Next() {
		total, err := ScanDailyTotal(rows)
		if err != nil {
			return nil, err
		}
		totals = append(totals, total)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return totals, nil
}
