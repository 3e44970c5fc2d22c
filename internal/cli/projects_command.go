package cli

import (
	"context"
	"fmt"

	"wakatime-tracker/internal/api"
)

// ProjectsCommand handles the projects command
type ProjectsCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewProjectsCommand creates a new projects command handler
func NewProjectsCommand(app *App) *ProjectsCommand {
	return &ProjectsCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the projects command
func (c *ProjectsCommand) Execute(ctx context.Context, args []string) error {
	names, err := c.api.ListProjects(ctx)
	if err != nil {
		return c.errorHandler.Handle("list projects", err)
	}

	if len(names) == 0 {
		fmt.Println("No projects recorded yet")
		return nil
	}

	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
