package cli

import (
	"context"
	"fmt"

	"task-tracker/internal/api"
	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
)

// ListCommand handles the list command
type ListCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(app.logger),
	}
}

// Execute prints every task in display order. An empty list prints nothing.
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.Usage("usage: task list")
	}

	tasks, err := c.api.ListTasks(ctx)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}
	if len(tasks) == 0 {
		return nil
	}

	fmt.Fprintln(c.app.out, domain.FormatList(tasks))
	return nil
}
