package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (r *RootCommand) newLogCommand() *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "log <task> --start HH:MM --end HH:MM",
		Short: "Log a time interval against a task",
		Long: `Log a time interval against a task and mark it done.

This is the explicit form of 'sp done': the interval comes from the flags,
the entry is created immediately, and the task flips to done.`,
		Args: cobra.ExactArgs(1),
		RunE: r.run(func(ctx context.Context, app *App, args []string) error {
			return NewLogCommand(app).Execute(ctx, args[0], start, end)
		}),
	}

	cmd.Flags().StringVar(&start, "start", "", "Interval start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "Interval end time (HH:MM)")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")
	return cmd
}

// LogCommand handles the log command
type LogCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewLogCommand creates a new log command handler
func NewLogCommand(app *App) *LogCommand {
	return &LogCommand{app: app, errorHandler: app.errorHandler}
}

// Execute runs the log command
func (c *LogCommand) Execute(ctx context.Context, ref, start, end string) error {
	task, err := c.app.resolveTask(ref)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	entry, err := c.app.api.Completion().CompleteWithInterval(ctx, task.ID, start, end)
	if err != nil {
		return c.errorHandler.Handle("log interval", err)
	}

	fmt.Fprintf(c.app.out, "Logged %d min against %s (%s-%s)\n",
		entry.DurationMinutes, task.Title, entry.StartTime, entry.EndTime)
	return nil
}
