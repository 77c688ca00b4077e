package cli

import (
	"context"
	"io"

	"go.uber.org/zap"

	"task-tracker/internal/api"
	"task-tracker/internal/config"
	"task-tracker/internal/errors"
)

// App represents the main CLI application
type App struct {
	api      api.API
	config   *config.Config
	out      io.Writer
	logger   *zap.Logger
	registry *CommandRegistry
}

// NewAppWithConfig creates a new CLI application with injected dependencies.
// out receives command output only; diagnostics go through logger.
func NewAppWithConfig(api api.API, cfg *config.Config, out io.Writer, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	app := &App{
		api:    api,
		config: cfg,
		out:    out,
		logger: logger,
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Run executes the CLI application with the given arguments
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.Usage(a.registry.GetUsage())
	}

	commandName := args[0]
	commandArgs := args[1:]

	a.logger.Debug("running command", zap.String("command", commandName), zap.Strings("args", commandArgs))
	return a.registry.Execute(ctx, commandName, commandArgs)
}
