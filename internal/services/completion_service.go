package services

import (
	"context"
	"log/slog"
	"math"
	"time"

	"study-planner/internal/clock"
	"study-planner/internal/collections"
	"study-planner/internal/config"
	"study-planner/internal/domain"
	"study-planner/internal/errors"
	"study-planner/internal/validation"
)

// completionServiceImpl implements the CompletionService interface
type completionServiceImpl struct {
	stores            *collections.Stores
	clock             clock.Clock
	logger            *slog.Logger
	intervalValidator *validation.IntervalValidator
	taskValidator     *validation.TaskValidator
}

// NewCompletionService creates a new CompletionService instance. Task title
// limits come from the validation configuration.
func NewCompletionService(stores *collections.Stores, cfg *config.Config, clk clock.Clock, logger *slog.Logger) CompletionService {
	return &completionServiceImpl{
		stores:            stores,
		clock:             clk,
		logger:            logger,
		intervalValidator: validation.NewIntervalValidator(),
		taskValidator: validation.NewTaskValidatorWithLimits(
			cfg.Validation.TitleMinLength, cfg.Validation.TitleMaxLength),
	}
}

// currentTask resolves a task on the current day.
func (c *completionServiceImpl) currentTask(taskID string) (*domain.Day, *domain.TaskItem, error) {
	day := c.stores.Day.Current()
	if day == nil {
		return nil, nil, errors.NewNotFoundError("day", "current")
	}
	task := day.FindItem(taskID)
	if task == nil {
		return nil, nil, errors.NewNotFoundError("task", taskID)
	}
	return day, task, nil
}

// saveDay persists the current day, logging instead of propagating write
// failures. The in-memory day stays authoritative for the session.
func (c *completionServiceImpl) saveDay(ctx context.Context) {
	if err := c.stores.Day.Save(ctx); err != nil {
		c.logger.Error("persisting day failed", "error", err)
	}
}

// Toggle flips a done task back to not-done, or completes a not-done task
// that already has a log entry for today. A not-done task with no log entry
// is left untouched and the caller is asked for an interval.
func (c *completionServiceImpl) Toggle(ctx context.Context, taskID string) (*ToggleResult, error) {
	day, task, err := c.currentTask(taskID)
	if err != nil {
		return nil, err
	}

	if task.Done {
		task.Done = false
		c.saveDay(ctx)
		return &ToggleResult{Outcome: ToggleReopened, Task: *task}, nil
	}

	if c.stores.Logs.HasEntryFor(taskID, day.Date) {
		task.Done = true
		c.saveDay(ctx)
		return &ToggleResult{Outcome: ToggleCompleted, Task: *task}, nil
	}

	return &ToggleResult{Outcome: ToggleNeedsInterval, Task: *task}, nil
}

// CompleteWithInterval creates a log entry for the supplied interval and
// marks the task done. An invalid interval rejects the call before any
// mutation; the task stays not-done and no log is created.
func (c *completionServiceImpl) CompleteWithInterval(ctx context.Context, taskID, startTime, endTime string) (*domain.LogEntry, error) {
	day, task, err := c.currentTask(taskID)
	if err != nil {
		return nil, err
	}

	if err := c.intervalValidator.ValidateInterval(startTime, endTime); err != nil {
		return nil, errors.NewValidationError("invalid time interval", err)
	}
	minutes, err := clock.MinutesBetween(startTime, endTime)
	if err != nil {
		return nil, errors.NewValidationError("invalid time interval", err)
	}

	entry := c.newEntry(day.Date, *task, startTime, endTime, minutes)
	c.appendEntry(ctx, entry)

	task.Done = true
	c.saveDay(ctx)
	return &entry, nil
}

// LogTimedSession records a finished timed session against a task and marks
// it done. Sub-minute sessions are clamped to one minute so the entry is
// never empty.
func (c *completionServiceImpl) LogTimedSession(ctx context.Context, taskID string, startedAt, endedAt time.Time) (*domain.LogEntry, error) {
	_, task, err := c.currentTask(taskID)
	if err != nil {
		return nil, err
	}
	if endedAt.Before(startedAt) {
		return nil, errors.NewValidationError("session ended before it started", nil)
	}

	minutes := int(math.Round(endedAt.Sub(startedAt).Minutes()))
	if minutes < 1 {
		minutes = 1
	}

	entry := c.newEntry(clock.FormatDate(startedAt), *task,
		clock.FormatClockTime(startedAt), clock.FormatClockTime(endedAt), minutes)
	c.appendEntry(ctx, entry)

	task.Done = true
	c.saveDay(ctx)
	return &entry, nil
}

// AddTasks validates and appends new not-done tasks to the current day.
func (c *completionServiceImpl) AddTasks(ctx context.Context, tasks []NewTask) ([]domain.TaskItem, error) {
	day := c.stores.Day.Current()
	if day == nil {
		return nil, errors.NewNotFoundError("day", "current")
	}

	added := make([]domain.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		title := c.taskValidator.GetValidTaskTitle(task.Title)
		if err := c.taskValidator.ValidateTaskForCreation(title, task.SubjectID); err != nil {
			return nil, errors.NewValidationError("invalid task", err)
		}
		added = append(added, domain.TaskItem{
			ID:        domain.NewID(),
			Title:     title,
			SubjectID: task.SubjectID,
			Note:      task.Note,
		})
	}

	day.Items = append(day.Items, added...)
	c.saveDay(ctx)
	return added, nil
}

func (c *completionServiceImpl) newEntry(date string, task domain.TaskItem, start, end string, minutes int) domain.LogEntry {
	return domain.LogEntry{
		ID:              domain.NewID(),
		Date:            date,
		TaskID:          task.ID,
		TaskTitle:       task.Title,
		SubjectID:       task.SubjectID,
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: minutes,
	}
}

func (c *completionServiceImpl) appendEntry(ctx context.Context, entry domain.LogEntry) {
	if err := c.stores.Logs.Append(ctx, entry); err != nil {
		c.logger.Error("persisting log entry failed", "error", err)
	}
}
