package cli

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"study-planner/internal/api"
	"study-planner/internal/config"
	"study-planner/internal/domain"
	"study-planner/internal/errors"
)

// App bundles what every command handler needs: the api facade, the
// effective configuration, and the writer output goes to.
type App struct {
	api          *api.App
	config       *config.Config
	out          io.Writer
	styles       *Styles
	errorHandler *ErrorHandler
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance *api.App, cfg *config.Config, out io.Writer) *App {
	return &App{
		api:          apiInstance,
		config:       cfg,
		out:          out,
		styles:       NewStyles(cfg.Display.Color),
		errorHandler: NewErrorHandler(),
	}
}

// isInteractive reports whether stdin is a terminal, which decides between
// interactive forms and flag-only input.
func (a *App) isInteractive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// resolveTask finds a task on the current day by 1-based list position or by
// ID. A unique ID prefix is accepted too.
func (a *App) resolveTask(ref string) (*domain.TaskItem, error) {
	day := a.api.CurrentDay()
	if day == nil || len(day.Items) == 0 {
		return nil, errors.NewNotFoundError("task", ref)
	}

	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(day.Items) {
			return nil, errors.NewInvalidInputError("task", ref,
				"task number must be between 1 and "+strconv.Itoa(len(day.Items)))
		}
		return &day.Items[n-1], nil
	}

	if task := day.FindItem(ref); task != nil {
		return task, nil
	}

	var match *domain.TaskItem
	for i := range day.Items {
		if strings.HasPrefix(day.Items[i].ID, ref) {
			if match != nil {
				return nil, errors.NewInvalidInputError("task", ref, "task reference is ambiguous")
			}
			match = &day.Items[i]
		}
	}
	if match == nil {
		return nil, errors.NewNotFoundError("task", ref)
	}
	return match, nil
}
