package cli

import (
	"context"
	"fmt"

	"wakatime-tracker/internal/api"
	"wakatime-tracker/internal/errors"
)

// BackfillCommand handles the backfill command
type BackfillCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewBackfillCommand creates a new backfill command handler
func NewBackfillCommand(app *App) *BackfillCommand {
	return &BackfillCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the backfill command over an inclusive date range
func (c *BackfillCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewValidationError("usage: wakatrack backfill <start-date> <end-date>", nil)
	}

	startDate, endDate := args[0], args[1]
	result, err := c.api.CollectHistoricalData(ctx, startDate, endDate)
	if err != nil {
		return c.errorHandler.Handle("backfill historical data", err)
	}

	fmt.Printf("Backfill complete: %d/%d days collected\n", result.Successes, result.TotalDays)
	if result.Successes < result.TotalDays {
		fmt.Printf("%d days failed; rerun the same range to retry them\n", result.TotalDays-result.Successes)
	}
	return nil
}
