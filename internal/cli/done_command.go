package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"study-planner/internal/domain"
	"study-planner/internal/errors"
	"study-planner/internal/services"
	"study-planner/internal/validation"
)

func (r *RootCommand) newDoneCommand() *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "done <task>",
		Short: "Toggle a task between done and not-done",
		Long: `Toggle a task between done and not-done.

A task can only become done once a logged time interval exists for it today.
If none exists yet, the interval is asked for interactively, or taken from
--start and --end. Toggling a done task back to not-done never deletes the
logged history.

The task is referenced by its number in 'sp today', or by its id.`,
		Args: cobra.ExactArgs(1),
		RunE: r.run(func(ctx context.Context, app *App, args []string) error {
			return NewDoneCommand(app).Execute(ctx, args[0], start, end)
		}),
	}

	cmd.Flags().StringVar(&start, "start", "", "Interval start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "Interval end time (HH:MM)")
	return cmd
}

// DoneCommand handles the done command
type DoneCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewDoneCommand creates a new done command handler
func NewDoneCommand(app *App) *DoneCommand {
	return &DoneCommand{app: app, errorHandler: app.errorHandler}
}

// Execute runs the done command
func (c *DoneCommand) Execute(ctx context.Context, ref, start, end string) error {
	task, err := c.app.resolveTask(ref)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	// An explicit interval skips the toggle and logs directly.
	if start != "" || end != "" {
		return c.completeWithInterval(ctx, task, start, end)
	}

	result, err := c.app.api.Completion().Toggle(ctx, task.ID)
	if err != nil {
		return c.errorHandler.Handle("toggle task", err)
	}

	switch result.Outcome {
	case services.ToggleReopened:
		fmt.Fprintf(c.app.out, "Reopened: %s\n", result.Task.Title)
		return nil
	case services.ToggleCompleted:
		fmt.Fprintf(c.app.out, "Done: %s\n", result.Task.Title)
		return nil
	}

	// No log entry for today yet; the interval decides whether the task
	// flips at all.
	if !c.app.isInteractive() {
		return errors.NewInvalidInputError("interval", nil,
			fmt.Sprintf("%q has no logged time today; rerun with --start and --end", task.Title))
	}
	start, end, err = c.promptForInterval(task)
	if err != nil {
		fmt.Fprintln(c.app.out, c.app.styles.Muted.Render("Cancelled, task left as not done."))
		return nil
	}
	return c.completeWithInterval(ctx, task, start, end)
}

func (c *DoneCommand) completeWithInterval(ctx context.Context, task *domain.TaskItem, start, end string) error {
	entry, err := c.app.api.Completion().CompleteWithInterval(ctx, task.ID, start, end)
	if err != nil {
		return c.errorHandler.Handle("complete task", err)
	}
	fmt.Fprintf(c.app.out, "Done: %s (%s-%s, %d min logged)\n",
		task.Title, entry.StartTime, entry.EndTime, entry.DurationMinutes)
	return nil
}

// promptForInterval collects the start/end interval with inline validation.
// Cancelling abandons the pending toggle.
func (c *DoneCommand) promptForInterval(task *domain.TaskItem) (string, string, error) {
	var start, end string
	validator := validation.NewValidator()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("When did you work on %q?", task.Title)).
				Description("Start time").
				Placeholder("10:00").
				Value(&start).
				Validate(func(s string) error {
					if !validator.IsValidClockTime(s) {
						return fmt.Errorf("use HH:MM, e.g. 10:00")
					}
					return nil
				}),
			huh.NewInput().
				Description("End time").
				Placeholder("11:30").
				Value(&end).
				Validate(func(s string) error {
					if !validator.IsValidClockTime(s) {
						return fmt.Errorf("use HH:MM, e.g. 11:30")
					}
					return nil
				}),
		),
	)
	if err := form.Run(); err != nil {
		return "", "", err
	}
	return start, end, nil
}
