package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func (r *RootCommand) newClassesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classes",
		Short: "Show the weekly class timetable",
		Args:  cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, app *App, args []string) error {
			return NewClassesCommand(app).Execute(ctx)
		}),
	}

	var name, start, end string
	var weekday int
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a class to the timetable",
		Args:  cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, app *App, args []string) error {
			return NewClassesCommand(app).Add(ctx, name, weekday, start, end)
		}),
	}
	addCmd.Flags().StringVar(&name, "name", "", "Class name")
	addCmd.Flags().IntVar(&weekday, "weekday", 0, "Weekday, 0 (Sunday) to 6 (Saturday)")
	addCmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	addCmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	addCmd.MarkFlagRequired("name")
	addCmd.MarkFlagRequired("weekday")
	addCmd.MarkFlagRequired("start")
	addCmd.MarkFlagRequired("end")

	cmd.AddCommand(addCmd)
	return cmd
}

// ClassesCommand handles the classes commands
type ClassesCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewClassesCommand creates a new classes command handler
func NewClassesCommand(app *App) *ClassesCommand {
	return &ClassesCommand{app: app, errorHandler: app.errorHandler}
}

// Execute lists the timetable
func (c *ClassesCommand) Execute(ctx context.Context) error {
	classes := c.app.api.Schedule().Classes()
	if len(classes) == 0 {
		fmt.Fprintln(c.app.out, "No classes yet. Add one with: sp classes add --name \"Physics theory\" --weekday 3 --start 16:00 --end 18:00")
		return nil
	}

	lastWeekday := -1
	for _, class := range classes {
		if class.Weekday != lastWeekday {
			fmt.Fprintln(c.app.out, c.app.styles.Header.Render(time.Weekday(class.Weekday).String()))
			lastWeekday = class.Weekday
		}
		fmt.Fprintf(c.app.out, "  %s-%s  %s\n", class.Start, class.End, class.Name)
	}
	return nil
}

// Add appends a class
func (c *ClassesCommand) Add(ctx context.Context, name string, weekday int, start, end string) error {
	class, err := c.app.api.Schedule().AddClass(ctx, name, weekday, start, end)
	if err != nil {
		return c.errorHandler.Handle("add class", err)
	}
	fmt.Fprintf(c.app.out, "Added %s on %s, %s-%s\n",
		class.Name, time.Weekday(class.Weekday), class.Start, class.End)
	return nil
}
