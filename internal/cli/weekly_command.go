package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"study-planner/internal/insight"
)

func (r *RootCommand) newWeeklyCommand() *cobra.Command {
	var withInsight bool

	cmd := &cobra.Command{
		Use:   "weekly",
		Short: "Show weekly study summaries",
		Long: `Show the rolled-up weekly summaries, newest week first.

Each summary covers one Sunday-to-Saturday week: total minutes, the per-day
average (always divided by seven days), and per-subject averages.`,
		Args: cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, app *App, args []string) error {
			return NewWeeklyCommand(app).Execute(ctx, withInsight)
		}),
	}

	cmd.Flags().BoolVar(&withInsight, "insight", false, "Ask the insight endpoint for an observation about the data")
	return cmd
}

// WeeklyCommand handles the weekly command
type WeeklyCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewWeeklyCommand creates a new weekly command handler
func NewWeeklyCommand(app *App) *WeeklyCommand {
	return &WeeklyCommand{app: app, errorHandler: app.errorHandler}
}

// Execute runs the weekly command
func (c *WeeklyCommand) Execute(ctx context.Context, withInsight bool) error {
	rows := c.app.api.Reporting().WeeklyReport()
	if max := c.app.config.Display.LogbookWeeks; max > 0 && len(rows) > max {
		rows = rows[:max]
	}
	styles := c.app.styles

	if len(rows) == 0 {
		fmt.Fprintln(c.app.out, "No weekly summaries yet. They appear once a week's logs roll over.")
		return nil
	}

	for i, row := range rows {
		if i > 0 {
			fmt.Fprintln(c.app.out)
		}
		summary := row.Summary
		fmt.Fprintln(c.app.out, styles.Title.Render("Week of "+summary.WeekOf))
		fmt.Fprintf(c.app.out, "  total %s, %s/day\n",
			formatMinutes(summary.TotalMinutes), formatMinutes(summary.AverageMinutesPerDay))
		for _, avg := range row.SubjectAverages {
			fmt.Fprintf(c.app.out, "  %-14s %s/day\n", styles.Subject(avg.SubjectID), formatMinutes(avg.MinutesPerDay))
		}
	}

	if withInsight {
		c.printInsight(ctx, rows)
	}
	return nil
}

// printInsight degrades to a warning when the endpoint is missing or
// failing; the summaries above have already been shown.
func (c *WeeklyCommand) printInsight(ctx context.Context, data any) {
	text, err := insight.StudyInsight(ctx, c.app.api.Insight(), data)
	if err != nil {
		fmt.Fprintln(c.app.out, c.app.styles.Warning.Render(
			"insight unavailable: "+c.errorHandler.HandleSimple(err).Error()))
		return
	}
	fmt.Fprintln(c.app.out)
	fmt.Fprintln(c.app.out, text)
}
