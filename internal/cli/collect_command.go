package cli

import (
	"context"
	"fmt"

	"wakatime-tracker/internal/api"
)

// CollectCommand handles the collect command
type CollectCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewCollectCommand creates a new collect command handler
func NewCollectCommand(app *App) *CollectCommand {
	return &CollectCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the collect command. With no arguments it collects
// yesterday's data; with one argument it collects the given date.
func (c *CollectCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		if !c.api.CollectYesterdayData(ctx) {
			return fmt.Errorf("data collection for yesterday failed")
		}
		fmt.Println("Collected yesterday's data")
		return nil
	}

	date := args[0]
	if !c.api.CollectDataForDate(ctx, date) {
		return fmt.Errorf("data collection for %s failed", date)
	}
	fmt.Printf("Collected data for %s\n", date)
	return nil
}
