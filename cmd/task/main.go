package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"task-tracker/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Configuration, logging and the task store are set up by the root
	// command once flags are parsed; each subcommand runs under the
	// configured application timeout.
	root := cli.NewRootCommand()

	if err := root.Execute(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
