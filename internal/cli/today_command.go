package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"study-planner/internal/domain"
)

func (r *RootCommand) newTodayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's task list",
		Long: `Show today's task list and remaining classes.

Unfinished tasks from the previous day are carried forward automatically,
and any log entries from past weeks are rolled into weekly summaries first.`,
		Args: cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, app *App, args []string) error {
			return NewTodayCommand(app).Execute(ctx)
		}),
	}
}

// TodayCommand handles the today command
type TodayCommand struct {
	app *App
}

// NewTodayCommand creates a new today command handler
func NewTodayCommand(app *App) *TodayCommand {
	return &TodayCommand{app: app}
}

// Execute runs the today command
func (c *TodayCommand) Execute(ctx context.Context) error {
	day := c.app.api.CurrentDay()
	styles := c.app.styles

	fmt.Fprintln(c.app.out, styles.Title.Render("Today · "+day.Date))

	if rollup := c.app.api.LastRollup(); rollup.WeeksSummarized > 0 {
		fmt.Fprintln(c.app.out, styles.Muted.Render(fmt.Sprintf(
			"rolled %d log entries into %d weekly summaries",
			rollup.EntriesRetired, rollup.WeeksSummarized)))
	}

	c.printTasks(day)
	c.printClasses()
	return nil
}

func (c *TodayCommand) printTasks(day *domain.Day) {
	if len(day.Items) == 0 {
		fmt.Fprintln(c.app.out, "No tasks yet. Add one with: sp add \"task title\" --subject physics")
		return
	}

	styles := c.app.styles
	for i, item := range day.Items {
		marker := "[ ]"
		title := styles.Pending.Render(item.Title)
		if item.Done {
			marker = "[x]"
			title = styles.Done.Render(item.Title)
		}
		line := fmt.Sprintf("%2d. %s %s  %s", i+1, marker, title, styles.Subject(item.SubjectID))
		if item.Note != "" {
			line += "  " + styles.Muted.Render("("+item.Note+")")
		}
		fmt.Fprintln(c.app.out, line)
	}
}

func (c *TodayCommand) printClasses() {
	classes := c.app.api.Schedule().TodayClasses()
	if len(classes) == 0 {
		return
	}

	fmt.Fprintln(c.app.out)
	fmt.Fprintln(c.app.out, c.app.styles.Header.Render("Classes today"))
	for _, class := range classes {
		fmt.Fprintf(c.app.out, "  %s-%s  %s\n", class.Start, class.End, class.Name)
	}
}
