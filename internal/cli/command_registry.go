package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"task-tracker/internal/errors"
)

// Command represents a CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// CommandInfo describes how a command is exposed on the command line
type CommandInfo struct {
	Name  string
	Use   string
	Short string
	Long  string
	Args  cobra.PositionalArgs
}

var commandInfos = []CommandInfo{
	{
		Name:  "add",
		Use:   "add NAME",
		Short: "Add a new task",
		Long: `Add a new task and print its generated id.

Multiple words are joined with single spaces, so quoting is optional:
  task add buy milk
  task add "buy milk"`,
		Args: cobra.MinimumNArgs(1),
	},
	{
		Name:  "del",
		Use:   "del ID",
		Short: "Delete a task",
		Long:  "Delete the task with the given id and print the id. Unknown ids are ignored unless --strict is set.",
		Args:  cobra.ExactArgs(1),
	},
	{
		Name:  "do",
		Use:   "do ID",
		Short: "Mark a task as done",
		Long:  "Mark the task with the given id as done and print the id. Unknown ids are ignored unless --strict is set.",
		Args:  cobra.ExactArgs(1),
	},
	{
		Name:  "undo",
		Use:   "undo ID",
		Short: "Mark a task as not done",
		Long:  "Mark the task with the given id as not done and print the id. Unknown ids are ignored unless --strict is set.",
		Args:  cobra.ExactArgs(1),
	},
	{
		Name:  "list",
		Use:   "list",
		Short: "List all tasks",
		Long: `List all tasks, open tasks first, then alphabetically by name.

Each line has the form "[ ] ID NAME", with an X marking done tasks.`,
		Args: cobra.NoArgs,
	},
}

// Commands returns the command descriptions in display order
func Commands() []CommandInfo {
	infos := make([]CommandInfo, len(commandInfos))
	copy(infos, commandInfos)
	return infos
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands map[string]Command
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
	}

	registry.Register("add", NewAddCommand(app))
	registry.Register("del", NewDeleteCommand(app))
	registry.Register("do", NewDoCommand(app))
	registry.Register("undo", NewUndoCommand(app))
	registry.Register("list", NewListCommand(app))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, command Command) {
	r.commands[name] = command
}

// Lookup returns the command registered under name
func (r *CommandRegistry) Lookup(name string) (Command, bool) {
	command, exists := r.commands[name]
	return command, exists
}

// Execute runs the specified command with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	command, exists := r.Lookup(commandName)
	if !exists {
		return errors.Usage(fmt.Sprintf("unknown command %q\n%s", commandName, r.GetUsage()))
	}
	return command.Execute(ctx, args)
}

// GetUsage returns the usage string for the CLI
func (r *CommandRegistry) GetUsage() string {
	uses := make([]string, 0, len(commandInfos))
	for _, info := range commandInfos {
		uses = append(uses, "task "+info.Use)
	}
	return "usage: " + strings.Join(uses, " or ")
}
