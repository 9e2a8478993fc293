package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (r *RootCommand) newLogbookCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logbook",
		Short: "Show recent activity grouped by category",
		Long: `Show the current week's log entries, newest day first, grouped into the
fixed categories: study, exercise, entertainment, personal.

Older activity has already been rolled into weekly summaries; see 'sp weekly'.`,
		Args: cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, app *App, args []string) error {
			return NewLogbookCommand(app).Execute(ctx)
		}),
	}
}

// LogbookCommand handles the logbook command
type LogbookCommand struct {
	app *App
}

// NewLogbookCommand creates a new logbook command handler
func NewLogbookCommand(app *App) *LogbookCommand {
	return &LogbookCommand{app: app}
}

// Execute runs the logbook command
func (c *LogbookCommand) Execute(ctx context.Context) error {
	days := c.app.api.Reporting().Logbook()
	styles := c.app.styles

	if len(days) == 0 {
		fmt.Fprintln(c.app.out, "Nothing logged this week yet.")
		return nil
	}

	for i, day := range days {
		if i > 0 {
			fmt.Fprintln(c.app.out)
		}
		fmt.Fprintln(c.app.out, styles.Title.Render(
			fmt.Sprintf("%s · %s", day.Date, formatMinutes(day.TotalMinutes))))

		for _, group := range day.Groups {
			label := strings.ToUpper(string(group.Category))
			fmt.Fprintf(c.app.out, "  %s (%s)\n",
				styles.Category.Render(label), formatMinutes(group.TotalMinutes))
			for _, entry := range group.Entries {
				fmt.Fprintf(c.app.out, "    %s-%s  %-30s %s\n",
					entry.StartTime, entry.EndTime, entry.TaskTitle,
					styles.Subject(entry.SubjectID))
			}
		}
	}
	return nil
}

// formatMinutes renders minutes as "2h 15m" or "45m".
func formatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}
