package cli

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"task-tracker/internal/api"
	"task-tracker/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(app.logger),
	}
}

// Execute runs the add command. All arguments form the task name.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.Usage("usage: task add NAME")
	}
	name := strings.Join(args, " ")

	task, err := c.api.AddTask(ctx, name)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	c.app.logger.Info("added task", zap.String("id", task.ID), zap.String("name", task.Name))
	fmt.Fprintln(c.app.out, task.ID)
	return nil
}
