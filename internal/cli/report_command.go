package cli

import (
	"context"
	"fmt"

	"wakatime-tracker/internal/api"
	"wakatime-tracker/internal/domain"
	"wakatime-tracker/internal/errors"
)

// ReportCommand handles the report command
type ReportCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewReportCommand creates a new report command handler
func NewReportCommand(app *App) *ReportCommand {
	return &ReportCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the report command. projectName narrows the report to a
// single project when non-empty.
func (c *ReportCommand) Execute(ctx context.Context, args []string, projectName string) error {
	if len(args) < 2 {
		return errors.NewValidationError("usage: wakatrack report <start-date> <end-date> [--project name]", nil)
	}

	startDate, endDate := args[0], args[1]

	var filter *string
	if projectName != "" {
		filter = &projectName
	}

	summaries, err := c.api.QueryRange(ctx, startDate, endDate, filter)
	if err != nil {
		return c.errorHandler.Handle("build report", err)
	}

	if len(summaries) == 0 {
		fmt.Printf("No activity recorded between %s and %s\n", startDate, endDate)
		return nil
	}

	fmt.Printf("%-12s  %-30s  %10s  %7s\n", "DATE", "PROJECT", "TIME", "SHARE")
	var total float64
	for _, s := range summaries {
		fmt.Printf("%-12s  %-30s  %10s  %6.1f%%\n", s.Date, s.ProjectName, displayTime(s), s.Percent)
		total += s.TotalSeconds
	}
	fmt.Printf("\nTotal: %s across %d entries\n", formatSeconds(total), len(summaries))
	return nil
}

// displayTime prefers the stored human-readable form and falls back to a
// derived one for rows imported without it.
func displayTime(s domain.ProjectDaySummary) string {
	if s.TextTime != "" {
		return s.TextTime
	}
	return formatSeconds(s.TotalSeconds)
}

// formatSeconds renders a duration in seconds as "Xh Ym".
func formatSeconds(seconds float64) string {
	totalMinutes := int(seconds / 60)
	hours := totalMinutes / 60
	minutes := totalMinutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
