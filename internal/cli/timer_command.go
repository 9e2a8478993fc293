package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"study-planner/internal/errors"
)

func (r *RootCommand) newTimerCommand() *cobra.Command {
	var minutes int

	cmd := &cobra.Command{
		Use:   "timer <task>",
		Short: "Run a focus timer for a task",
		Long: `Run a countdown focus timer for a task.

When the timer finishes, or is stopped early with 's', the session is
logged against the task and the task is marked done. Quitting with 'q'
discards the session and leaves the task untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: r.run(func(ctx context.Context, app *App, args []string) error {
			return NewTimerCommand(app).Execute(ctx, args[0], minutes)
		}),
	}

	cmd.Flags().IntVarP(&minutes, "minutes", "m", 25, "Timer length in minutes")
	return cmd
}

// TimerCommand handles the timer command
type TimerCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewTimerCommand creates a new timer command handler
func NewTimerCommand(app *App) *TimerCommand {
	return &TimerCommand{app: app, errorHandler: app.errorHandler}
}

// Execute runs the timer command
func (c *TimerCommand) Execute(ctx context.Context, ref string, minutes int) error {
	if minutes < 1 {
		return errors.NewInvalidInputError("minutes", minutes, "timer length must be at least one minute")
	}
	if !c.app.isInteractive() {
		return errors.NewInvalidInputError("timer", ref, "the timer needs an interactive terminal")
	}

	task, err := c.app.resolveTask(ref)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	startedAt := c.app.api.Clock().Now()
	model := newTimerModel(*task, time.Duration(minutes)*time.Minute, c.app.styles)

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("running timer: %w", err)
	}

	result := final.(timerModel)
	if result.outcome == timerAborted {
		fmt.Fprintln(c.app.out, c.app.styles.Muted.Render("Session discarded."))
		return nil
	}

	endedAt := c.app.api.Clock().Now()
	entry, err := c.app.api.Completion().LogTimedSession(ctx, task.ID, startedAt, endedAt)
	if err != nil {
		return c.errorHandler.Handle("log session", err)
	}

	fmt.Fprintf(c.app.out, "Done: %s (%d min logged)\n", task.Title, entry.DurationMinutes)
	return nil
}
