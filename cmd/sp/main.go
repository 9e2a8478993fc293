package main

import (
	"context"
	"fmt"
	"os"

	"study-planner/internal/api"
	"study-planner/internal/cli"
	"study-planner/internal/clock"
	"study-planner/internal/config"
	"study-planner/internal/logging"
)

func main() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// The store is opened lazily, after global flags have been applied,
	// so 'sp --help' never touches the backing store. The logger is built
	// here too, so --verbose and SP_APP_VERBOSE reach it. Startup rolls
	// past weeks into summaries and rolls the day over before any command
	// reads the collections.
	newApp := func(ctx context.Context, cfg *config.Config) (*api.App, error) {
		logger := logging.NewLogger(cfg.Application.Verbose)
		st, err := NewStoreFactory(cfg).CreateStore()
		if err != nil {
			return nil, err
		}
		app := api.New(ctx, cfg, st, clock.System(), logger)
		app.Startup(ctx)
		return app, nil
	}

	root := cli.NewRootCommand(cfg, newApp)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
