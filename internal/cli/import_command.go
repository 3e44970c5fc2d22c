package cli

import (
	"context"
	"fmt"

	"wakatime-tracker/internal/api"
	"wakatime-tracker/internal/errors"
)

// ImportCommand handles the import command
type ImportCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewImportCommand creates a new import command handler
func NewImportCommand(app *App) *ImportCommand {
	return &ImportCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the import command for a bundle file
func (c *ImportCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewValidationError("usage: wakatrack import <bundle-file>", nil)
	}

	result, err := c.api.ImportFromFile(ctx, args[0])
	if err != nil {
		return c.errorHandler.Handle("import bundle", err)
	}

	if result.TotalDays == 0 {
		fmt.Println("No data imported (bundle missing or empty)")
		return nil
	}

	fmt.Printf("Imported %d project entries across %d days\n", result.ImportedCount, result.TotalDays)
	if result.ErrorCount > 0 {
		fmt.Printf("Skipped %d malformed entries\n", result.ErrorCount)
	}
	return nil
}
