package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"study-planner/internal/api"
	"study-planner/internal/config"
)

// AppFactory builds the api facade once the effective configuration is
// known. It must return an App whose Startup has already run.
type AppFactory func(ctx context.Context, cfg *config.Config) (*api.App, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	config  *config.Config
	factory AppFactory
	app     *App
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(cfg *config.Config, factory AppFactory) *RootCommand {
	root := &RootCommand{
		config:  cfg,
		factory: factory,
	}

	root.cmd = &cobra.Command{
		Use:   "sp",
		Short: "A command-line study planner",
		Long: `Study Planner (sp) tracks daily study tasks, turns completed tasks into
timestamped activity logs, and rolls past weeks into aggregate summaries.

Every session starts the same way: log entries from past weeks are rolled
into weekly summaries, and unfinished tasks are carried into today's list.
A task can only be marked done once a logged time interval exists for it,
so every completed task has an auditable time record.

EXAMPLES:
  sp today                                 # Show today's task list and classes
  sp add "Revise optics" --subject physics # Add a task for today
  sp done 2                                # Mark task 2 done (asks for the interval)
  sp done 2 --start 10:00 --end 11:30      # Mark done with an explicit interval
  sp timer 2 --minutes 25                  # Run a focus timer, then log the session
  sp logbook                               # Recent activity grouped by category
  sp weekly                                # Past weeks' aggregate summaries
  sp progress physics                      # Syllabus completion for a subject
  sp suggest "prepare for the mechanics paper"

CONFIGURATION:
  Priority order: command-line flags > environment variables > config file > defaults

  Store:
    SP_STORE_BACKEND                       sqlite | remote | memory (default: sqlite)
    SP_STORE_DIR                           Store directory (default: ~/.sp)
    SP_STORE_FILENAME                      Store filename (default: sp.db)
    SP_REMOTE_URL                          Remote blob store URL (for backend=remote)
    SP_REMOTE_TIMEOUT                      Remote request timeout (default: 15s)

  Insight:
    SP_INSIGHT_URL                         Text-generation endpoint (unset disables sp suggest)
    SP_INSIGHT_MODEL                       Model name (default: llama3.2)
    SP_INSIGHT_TIMEOUT                     Generation timeout (default: 30s)

  Other:
    SP_CONFIG_PATH                         Optional YAML config file
    SP_APP_TIMEOUT                         Per-command timeout (default: 60s)
    SP_DISPLAY_COLOR                       Colored output (default: true)
    SP_DEBUG                               Verbose debug logging

GETTING HELP:
  sp [command] --help                      # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	defer r.closeApp()
	return r.cmd.Execute()
}

// ensureApp builds the api facade on first use, so help and completion
// never touch the backing store.
func (r *RootCommand) ensureApp(ctx context.Context) (*App, error) {
	if r.app != nil {
		return r.app, nil
	}
	apiInstance, err := r.factory(ctx, r.config)
	if err != nil {
		return nil, err
	}
	r.app = NewApp(apiInstance, r.config, os.Stdout)
	return r.app, nil
}

func (r *RootCommand) closeApp() {
	if r.app != nil {
		r.app.api.Close()
	}
}

// commandContext returns the per-command timeout context.
func (r *RootCommand) commandContext() (context.Context, context.CancelFunc) {
	timeout := r.config.Application.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("store-backend", "", "Store backend: sqlite, remote or memory (overrides SP_STORE_BACKEND)")
	flags.String("store-dir", "", "Store directory (overrides SP_STORE_DIR)")
	flags.String("store-filename", "", "Store filename (overrides SP_STORE_FILENAME)")
	flags.String("remote-url", "", "Remote blob store URL (overrides SP_REMOTE_URL)")
	flags.String("insight-url", "", "Insight endpoint URL (overrides SP_INSIGHT_URL)")
	flags.String("insight-model", "", "Insight model name (overrides SP_INSIGHT_MODEL)")
	flags.Duration("app-timeout", 0, "Per-command timeout (overrides SP_APP_TIMEOUT)")
	flags.Bool("no-color", false, "Disable colored output (overrides SP_DISPLAY_COLOR)")
	flags.Bool("verbose", false, "Enable verbose output (overrides SP_APP_VERBOSE)")
}

// getConfigFromFlags applies flag overrides on top of the loaded config
func (r *RootCommand) getConfigFromFlags() error {
	flags := r.cmd.PersistentFlags()

	if s, _ := flags.GetString("store-backend"); s != "" {
		r.config.Store.Backend = config.StoreBackend(s)
	}
	if s, _ := flags.GetString("store-dir"); s != "" {
		r.config.Store.Dir = s
	}
	if s, _ := flags.GetString("store-filename"); s != "" {
		r.config.Store.Filename = s
	}
	if s, _ := flags.GetString("remote-url"); s != "" {
		r.config.Remote.URL = s
	}
	if s, _ := flags.GetString("insight-url"); s != "" {
		r.config.Insight.URL = s
	}
	if s, _ := flags.GetString("insight-model"); s != "" {
		r.config.Insight.Model = s
	}
	if d, _ := flags.GetDuration("app-timeout"); d > 0 {
		r.config.Application.Timeout = d
	}
	if noColor, _ := flags.GetBool("no-color"); noColor {
		r.config.Display.Color = false
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = true
	}

	return r.config.Validate()
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(
		r.newTodayCommand(),
		r.newAddCommand(),
		r.newDoneCommand(),
		r.newLogCommand(),
		r.newLogbookCommand(),
		r.newWeeklyCommand(),
		r.newProgressCommand(),
		r.newTimerCommand(),
		r.newSuggestCommand(),
		r.newClassesCommand(),
		r.newTestsCommand(),
	)
}

// run wraps a handler with lazy app construction and the command timeout.
func (r *RootCommand) run(handler func(ctx context.Context, app *App, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, cancel := r.commandContext()
		defer cancel()

		app, err := r.ensureApp(ctx)
		if err != nil {
			return err
		}
		return handler(ctx, app, args)
	}
}
