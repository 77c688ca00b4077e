package cli

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"task-tracker/internal/errors"
)

// IDCommand handles the commands that act on a single task id: del, do and undo.
// The given id is echoed back on success, whether or not a task matched.
type IDCommand struct {
	app          *App
	name         string
	operation    string
	action       func(ctx context.Context, id string) error
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new del command handler
func NewDeleteCommand(app *App) *IDCommand {
	return newIDCommand(app, "del", "delete task", app.api.DeleteTask)
}

// NewDoCommand creates a new do command handler
func NewDoCommand(app *App) *IDCommand {
	return newIDCommand(app, "do", "complete task", app.api.CompleteTask)
}

// NewUndoCommand creates a new undo command handler
func NewUndoCommand(app *App) *IDCommand {
	return newIDCommand(app, "undo", "undo task", app.api.UndoTask)
}

func newIDCommand(app *App, name, operation string, action func(ctx context.Context, id string) error) *IDCommand {
	return &IDCommand{
		app:          app,
		name:         name,
		operation:    operation,
		action:       action,
		errorHandler: NewErrorHandler(app.logger),
	}
}

// Execute runs the command against exactly one id
func (c *IDCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.Usage("usage: task " + c.name + " ID")
	}
	id := args[0]

	if err := c.action(ctx, id); err != nil {
		return c.errorHandler.Handle(c.operation, err)
	}

	c.app.logger.Info(c.operation, zap.String("id", id))
	fmt.Fprintln(c.app.out, id)
	return nil
}
