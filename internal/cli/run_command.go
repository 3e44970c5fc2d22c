package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"wakatime-tracker/internal/scheduler"
)

// RunCommand handles the run command, the long-lived scheduling loop
type RunCommand struct {
	scheduler    *scheduler.Scheduler
	errorHandler *ErrorHandler
}

// NewRunCommand creates a new run command handler
func NewRunCommand(app *App) *RunCommand {
	return &RunCommand{
		scheduler:    app.scheduler,
		errorHandler: NewErrorHandler(),
	}
}

// Execute blocks on the scheduling loop until interrupted
func (c *RunCommand) Execute(ctx context.Context, args []string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println("Scheduler running, press Ctrl+C to stop")
	if err := c.scheduler.Run(ctx); err != nil {
		return c.errorHandler.Handle("run scheduler", err)
	}
	return nil
}
