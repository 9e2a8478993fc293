package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"study-planner/internal/insight"
	"study-planner/internal/services"
)

func (r *RootCommand) newSuggestCommand() *cobra.Command {
	var add bool

	cmd := &cobra.Command{
		Use:   "suggest <free text>",
		Short: "Turn free text into proposed tasks",
		Long: `Ask the insight endpoint to turn a free-form description into proposed
tasks. With --add, the proposals are appended to today's list.

Requires SP_INSIGHT_URL to point at a text-generation endpoint; without it
the command prints a warning and does nothing.`,
		Args: cobra.MinimumNArgs(1),
		RunE: r.run(func(ctx context.Context, app *App, args []string) error {
			return NewSuggestCommand(app).Execute(ctx, strings.Join(args, " "), add)
		}),
	}

	cmd.Flags().BoolVar(&add, "add", false, "Add the suggested tasks to today's list")
	return cmd
}

// SuggestCommand handles the suggest command
type SuggestCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewSuggestCommand creates a new suggest command handler
func NewSuggestCommand(app *App) *SuggestCommand {
	return &SuggestCommand{app: app, errorHandler: app.errorHandler}
}

// Execute runs the suggest command
func (c *SuggestCommand) Execute(ctx context.Context, text string, add bool) error {
	suggestions, err := insight.SuggestTasks(ctx, c.app.api.Insight(), text)
	if err != nil {
		// A missing or failing endpoint is a warning, never a crash.
		if c.errorHandler.IsInsightError(err) {
			fmt.Fprintln(c.app.out, c.app.styles.Warning.Render(
				c.errorHandler.HandleSimple(err).Error()))
			return nil
		}
		return c.errorHandler.Handle("suggest tasks", err)
	}

	if len(suggestions) == 0 {
		fmt.Fprintln(c.app.out, "No tasks suggested.")
		return nil
	}

	for i, s := range suggestions {
		fmt.Fprintf(c.app.out, "%2d. %s  %s\n", i+1, s.Title, c.app.styles.Subject(s.SubjectID))
	}

	if !add {
		fmt.Fprintln(c.app.out, c.app.styles.Muted.Render("Rerun with --add to put these on today's list."))
		return nil
	}

	tasks := make([]services.NewTask, 0, len(suggestions))
	for _, s := range suggestions {
		tasks = append(tasks, services.NewTask{Title: s.Title, SubjectID: s.SubjectID})
	}
	added, err := c.app.api.Completion().AddTasks(ctx, tasks)
	if err != nil {
		return c.errorHandler.Handle("add suggested tasks", err)
	}
	fmt.Fprintf(c.app.out, "Added %d tasks to today's list.\n", len(added))
	return nil
}
