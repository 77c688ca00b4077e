package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"task-tracker/internal/api"
	"task-tracker/internal/config"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
	"task-tracker/internal/repository/sqlite"
)

// taskCommandAnnotation marks the subcommands that need the task store.
// Built-ins such as help and completion run without it.
const taskCommandAnnotation = "task-command"

// StoreOpener opens the task store for a loaded configuration
type StoreOpener func(cfg *config.Config) (sqlite.Repository, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd       *cobra.Command
	openStore StoreOpener
	out       io.Writer

	config  *config.Config
	repo    sqlite.Repository
	app     *App
	logger  *zap.Logger
	restore func()
}

// RootOption customizes a RootCommand
type RootOption func(*RootCommand)

// WithStoreOpener replaces the function used to open the task store
func WithStoreOpener(open StoreOpener) RootOption {
	return func(r *RootCommand) {
		r.openStore = open
	}
}

// WithOutput redirects command output and cobra messages
func WithOutput(out, errOut io.Writer) RootOption {
	return func(r *RootCommand) {
		r.out = out
		r.cmd.SetOut(out)
		r.cmd.SetErr(errOut)
	}
}

// NewRootCommand creates the root cobra command with global flags.
// Configuration, logging and the store are set up once flags are parsed.
func NewRootCommand(opts ...RootOption) *RootCommand {
	root := &RootCommand{
		openStore: config.CreateRepository,
		out:       os.Stdout,
		logger:    zap.NewNop(),
	}

	root.cmd = &cobra.Command{
		Use:   "task",
		Short: "A command-line task list",
		Long: `task is a command-line application for keeping a simple list of tasks.

EXAMPLES:
  task add buy milk                        # Add a task, prints its id
  task list                                # List tasks, open tasks first
  task do 1a2b3c4d                         # Mark a task as done
  task undo 1a2b3c4d                       # Mark a task as not done
  task del 1a2b3c4d                        # Delete a task

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > .env file > config file > defaults

  Config file:
    TASK_CONFIG                            YAML config file (default: ~/.task/config.yaml)

  Database Configuration:
    TASK_DB                                Full database path (overrides dir and filename)
    TASK_DB_DIR                            Database directory (default: ~/.task)
    TASK_DB_FILENAME                       Database filename (default: task.db)
    TASK_DB_QUERY_TIMEOUT                  Query timeout (default: 10s)
    TASK_DB_WRITE_TIMEOUT                  Write timeout (default: 5s)

  Validation Configuration:
    TASK_VALIDATION_TASK_NAME_MIN          Min task name length (default: 1)
    TASK_VALIDATION_TASK_NAME_MAX          Max task name length (default: 255)

  Application Configuration:
    TASK_APP_TIMEOUT                       Application timeout (default: 30s)
    TASK_APP_VERBOSE                       Enable verbose logging (default: false)
    TASK_DEBUG                             Enable debug logging
    TASK_STRICT_IDS                        Fail on unknown task ids (default: false)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isTaskCommand(cmd) {
				return nil
			}
			return root.setup(cmd.Flags())
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	for _, opt := range opts {
		opt(root)
	}

	return root
}

// Execute runs the root command with os.Args
func (r *RootCommand) Execute(ctx context.Context) error {
	return r.ExecuteArgs(ctx, os.Args[1:])
}

// ExecuteArgs runs the root command with the given arguments and releases
// the store afterwards
func (r *RootCommand) ExecuteArgs(ctx context.Context, args []string) error {
	defer r.teardown()

	r.cmd.SetArgs(args)
	return r.cmd.ExecuteContext(ctx)
}

// Config returns the configuration resolved for the last run
func (r *RootCommand) Config() *config.Config {
	return r.config
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "YAML config file (overrides TASK_CONFIG)")

	// Database configuration
	flags.String("db", "", "Full database path (overrides TASK_DB)")
	flags.String("db-dir", "", "Database directory (overrides TASK_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TASK_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TASK_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides TASK_DB_WRITE_TIMEOUT)")

	// Validation configuration
	flags.Int("task-name-max-length", 0, "Maximum task name length (overrides TASK_VALIDATION_TASK_NAME_MAX)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Application timeout (overrides TASK_APP_TIMEOUT)")
	flags.BoolP("verbose", "v", false, "Enable verbose logging (overrides TASK_APP_VERBOSE)")

	// Commands configuration
	flags.Bool("strict", false, "Fail on unknown or malformed task ids (overrides TASK_STRICT_IDS)")
}

// addSubcommands builds one cobra command per registered command
func (r *RootCommand) addSubcommands() {
	for _, info := range Commands() {
		name := info.Name
		r.cmd.AddCommand(&cobra.Command{
			Use:   info.Use,
			Short: info.Short,
			Long:  info.Long,
			Args:  withUsage(info.Args),
			Annotations: map[string]string{
				taskCommandAnnotation: name,
			},
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
				defer cancel()

				return r.app.Run(ctx, append([]string{name}, args...))
			},
		})
	}
}

func isTaskCommand(cmd *cobra.Command) bool {
	_, ok := cmd.Annotations[taskCommandAnnotation]
	return ok
}

// withUsage prints the command usage to stderr when the arguments are wrong
func withUsage(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			cmd.PrintErrln(cmd.UsageString())
			return errors.Usage(err.Error())
		}
		return nil
	}
}

// setup loads configuration, starts logging and opens the store
func (r *RootCommand) setup(flags *pflag.FlagSet) error {
	configFile, _ := flags.GetString("config")

	cfg, err := config.NewLoader().
		WithConfigFile(configFile).
		LoadWithOverrides(overridesFromFlags(flags))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	r.config = cfg

	logger, restore, err := logging.Init(cfg.Application.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	r.logger = logger
	r.restore = restore

	logger.Debug("configuration loaded",
		zap.String("database", cfg.GetDatabasePath()),
		zap.Bool("strict_ids", cfg.Commands.StrictIDs),
	)

	repo, err := r.openStore(cfg)
	if err != nil {
		return err
	}
	r.repo = repo

	r.app = NewAppWithConfig(api.NewWithConfig(repo, cfg), cfg, r.out, logger)
	return nil
}

func (r *RootCommand) teardown() {
	if r.repo != nil {
		if err := r.repo.Close(); err != nil {
			r.logger.Warn("failed to close task store", zap.Error(err))
		}
		r.repo = nil
	}
	if r.restore != nil {
		_ = r.logger.Sync()
		r.restore()
		r.restore = nil
	}
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 30 * time.Second
}

// overridesFromFlags collects the flags the user actually set
func overridesFromFlags(flags *pflag.FlagSet) *config.ConfigOverrides {
	overrides := &config.ConfigOverrides{}

	if flags.Changed("db") {
		v, _ := flags.GetString("db")
		overrides.DBPath = &v
	}
	if flags.Changed("db-dir") {
		v, _ := flags.GetString("db-dir")
		overrides.DBDir = &v
	}
	if flags.Changed("db-filename") {
		v, _ := flags.GetString("db-filename")
		overrides.DBFilename = &v
	}
	if flags.Changed("db-query-timeout") {
		v, _ := flags.GetDuration("db-query-timeout")
		overrides.DBQueryTimeout = &v
	}
	if flags.Changed("db-write-timeout") {
		v, _ := flags.GetDuration("db-write-timeout")
		overrides.DBWriteTimeout = &v
	}
	if flags.Changed("task-name-max-length") {
		v, _ := flags.GetInt("task-name-max-length")
		overrides.TaskNameMaxLength = &v
	}
	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}
	if flags.Changed("strict") {
		v, _ := flags.GetBool("strict")
		overrides.StrictIDs = &v
	}

	return overrides
}
