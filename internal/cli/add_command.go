package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"study-planner/internal/domain"
	"study-planner/internal/errors"
	"study-planner/internal/services"
)

func (r *RootCommand) newAddCommand() *cobra.Command {
	var subject, note string

	cmd := &cobra.Command{
		Use:   "add [task title]",
		Short: "Add a task to today's list",
		Long: `Add a task to today's list.

With no arguments and an interactive terminal, opens a form. Otherwise the
title is taken from the arguments and the subject from --subject.`,
		RunE: r.run(func(ctx context.Context, app *App, args []string) error {
			return NewAddCommand(app).Execute(ctx, strings.Join(args, " "), subject, note)
		}),
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "personal", "Subject for the task (physics, chemistry, combined, exercise, entertainment, personal)")
	cmd.Flags().StringVarP(&note, "note", "n", "", "Optional note attached to the task")
	return cmd
}

// AddCommand handles the add command
type AddCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app, errorHandler: app.errorHandler}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, title, subjectID, note string) error {
	if title == "" {
		if !c.app.isInteractive() {
			return errors.NewInvalidInputError("title", title, "usage: sp add \"task title\" --subject physics")
		}
		var err error
		title, subjectID, note, err = c.promptForTask(title, subjectID)
		if err != nil {
			return err
		}
	}

	added, err := c.app.api.Completion().AddTasks(ctx, []services.NewTask{
		{Title: title, SubjectID: subjectID, Note: note},
	})
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	task := added[0]
	fmt.Fprintf(c.app.out, "Added task %d: %s (%s)\n",
		len(c.app.api.CurrentDay().Items), task.Title, c.app.styles.Subject(task.SubjectID))
	return nil
}

// promptForTask collects the task interactively.
func (c *AddCommand) promptForTask(title, subjectID string) (string, string, string, error) {
	var note string
	options := make([]huh.Option[string], 0)
	for _, subject := range domain.BaselineSubjects() {
		options = append(options, huh.NewOption(subject.Name, subject.ID))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Placeholder("Revise optics").
				Value(&title),
			huh.NewSelect[string]().
				Title("Subject").
				Options(options...).
				Value(&subjectID),
			huh.NewInput().
				Title("Note (optional)").
				Value(&note),
		),
	)
	if err := form.Run(); err != nil {
		return "", "", "", errors.NewInvalidInputError("task", nil, "task entry cancelled")
	}
	return title, subjectID, note, nil
}
