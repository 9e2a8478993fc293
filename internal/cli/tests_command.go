package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (r *RootCommand) newTestsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tests",
		Short: "Show recorded test results",
		Args:  cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, app *App, args []string) error {
			return NewTestsCommand(app).Execute(ctx)
		}),
	}

	var name, subject, date string
	var score, total float64
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a test result",
		Args:  cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, app *App, args []string) error {
			return NewTestsCommand(app).Add(ctx, name, subject, date, score, total)
		}),
	}
	addCmd.Flags().StringVar(&name, "name", "", "Test name")
	addCmd.Flags().StringVar(&subject, "subject", "", "Academic subject (physics, chemistry, combined)")
	addCmd.Flags().StringVar(&date, "date", "", "Test date (YYYY-MM-DD)")
	addCmd.Flags().Float64Var(&score, "score", 0, "Marks scored")
	addCmd.Flags().Float64Var(&total, "total", 100, "Maximum marks")
	addCmd.MarkFlagRequired("name")
	addCmd.MarkFlagRequired("subject")
	addCmd.MarkFlagRequired("date")
	addCmd.MarkFlagRequired("score")

	cmd.AddCommand(addCmd)
	return cmd
}

// TestsCommand handles the tests commands
type TestsCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewTestsCommand creates a new tests command handler
func NewTestsCommand(app *App) *TestsCommand {
	return &TestsCommand{app: app, errorHandler: app.errorHandler}
}

// Execute lists recorded tests
func (c *TestsCommand) Execute(ctx context.Context) error {
	tests := c.app.api.Tests().Tests()
	if len(tests) == 0 {
		fmt.Fprintln(c.app.out, "No test results recorded yet.")
		return nil
	}

	for _, test := range tests {
		percent := test.Score / test.Total * 100
		fmt.Fprintf(c.app.out, "%s  %-24s %-12s %5.1f%%  (%.0f/%.0f)\n",
			test.Date, test.Name, c.app.styles.Subject(test.SubjectID), percent, test.Score, test.Total)
	}
	return nil
}

// Add records a test result
func (c *TestsCommand) Add(ctx context.Context, name, subject, date string, score, total float64) error {
	test, err := c.app.api.Tests().AddTest(ctx, name, subject, date, score, total)
	if err != nil {
		return c.errorHandler.Handle("record test", err)
	}
	fmt.Fprintf(c.app.out, "Recorded %s: %.0f/%.0f\n", test.Name, test.Score, test.Total)
	return nil
}
