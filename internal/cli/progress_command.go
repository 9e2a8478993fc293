package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (r *RootCommand) newProgressCommand() *cobra.Command {
	var unitID, subunitID string
	var tute, past bool

	cmd := &cobra.Command{
		Use:   "progress <subject>",
		Short: "Show syllabus progress for a subject",
		Long: `Show per-unit syllabus progress for an academic subject.

A subunit counts as complete once both its tutorial and its past-paper work
are done. Use --unit and --subunit together with --tute or --past to tick
those flags off.`,
		Args: cobra.ExactArgs(1),
	}
	cmd.RunE = func(cobraCmd *cobra.Command, args []string) error {
		ctx, cancel := r.commandContext()
		defer cancel()

		app, err := r.ensureApp(ctx)
		if err != nil {
			return err
		}

		// Only flags the user actually passed are applied, so ticking
		// --tute never silently clears the past-paper flag.
		var tutePtr, pastPtr *bool
		if cobraCmd.Flags().Changed("tute") {
			tutePtr = &tute
		}
		if cobraCmd.Flags().Changed("past") {
			pastPtr = &past
		}
		return NewProgressCommand(app).Execute(ctx, args[0], unitID, subunitID, tutePtr, pastPtr)
	}

	cmd.Flags().StringVar(&unitID, "unit", "", "Unit id to update")
	cmd.Flags().StringVar(&subunitID, "subunit", "", "Subunit id to update")
	cmd.Flags().BoolVar(&tute, "tute", false, "Mark the subunit's tutorial work done")
	cmd.Flags().BoolVar(&past, "past", false, "Mark the subunit's past-paper work done")
	return cmd
}

// ProgressCommand handles the progress command
type ProgressCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewProgressCommand creates a new progress command handler
func NewProgressCommand(app *App) *ProgressCommand {
	return &ProgressCommand{app: app, errorHandler: app.errorHandler}
}

// Execute runs the progress command
func (c *ProgressCommand) Execute(ctx context.Context, subjectID, unitID, subunitID string, tute, past *bool) error {
	if tute != nil || past != nil {
		if unitID == "" || subunitID == "" {
			return c.errorHandler.HandleSimple(fmt.Errorf("--unit and --subunit are both required to update flags"))
		}
		if err := c.app.api.Syllabus().SetSubunitFlags(ctx, subjectID, unitID, subunitID, tute, past); err != nil {
			return c.errorHandler.Handle("update syllabus", err)
		}
	}

	progress, err := c.app.api.Syllabus().Progress(subjectID)
	if err != nil {
		return c.errorHandler.Handle("load syllabus", err)
	}

	styles := c.app.styles
	fmt.Fprintln(c.app.out, styles.Title.Render(fmt.Sprintf(
		"%s · %d%% (%d/%d subunits)",
		styles.Subject(subjectID), progress.Percent, progress.Completed, progress.Total)))

	for _, unit := range progress.Units {
		fmt.Fprintf(c.app.out, "  %s %-28s %3d%%  %s\n",
			progressBar(unit.Percent), unit.Unit.Name, unit.Percent, styles.Muted.Render(string(unit.Status)))
	}
	return nil
}

// progressBar renders a ten-segment completion bar.
func progressBar(percent int) string {
	filled := percent / 10
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", 10-filled) + "]"
}
