package api

import (
	"context"
	"log/slog"

	"study-planner/internal/clock"
	"study-planner/internal/collections"
	"study-planner/internal/config"
	"study-planner/internal/domain"
	"study-planner/internal/insight"
	"study-planner/internal/services"
	"study-planner/internal/store"
)

// App is the single entry point the CLI talks to. It owns the loaded
// collections, the service container, and the insight client.
type App struct {
	cfg      *config.Config
	store    store.Store
	stores   *collections.Stores
	services *services.ServiceContainer
	insight  insight.Client
	clock    clock.Clock
	logger   *slog.Logger

	rollup services.RollupResult
}

// New loads every collection from the backing store and wires the services.
// The returned App is not ready for task operations until Startup has run.
func New(ctx context.Context, cfg *config.Config, st store.Store, clk clock.Clock, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	stores := collections.Open(ctx, st, logger)
	return &App{
		cfg:      cfg,
		store:    st,
		stores:   stores,
		services: services.NewServiceContainer(stores, cfg, clk, logger),
		insight:  insight.NewClient(cfg.Insight),
		clock:    clk,
		logger:   logger,
	}
}

// Startup runs the once-per-session maintenance: stale log entries are
// rolled into weekly summaries, then the day record is rolled over to
// today. Nothing else may read the log or summary stores before this.
func (a *App) Startup(ctx context.Context) *domain.Day {
	a.rollup = a.services.Rollup.Run(ctx)
	return a.services.Day.EnsureCurrentDay(ctx)
}

// LastRollup reports what the startup rollup did.
func (a *App) LastRollup() services.RollupResult {
	return a.rollup
}

// CurrentDay returns the in-memory day record.
func (a *App) CurrentDay() *domain.Day {
	return a.stores.Day.Current()
}

// Completion exposes task completion operations.
func (a *App) Completion() services.CompletionService {
	return a.services.Completion
}

// Reporting exposes the logbook and weekly report views.
func (a *App) Reporting() services.ReportingService {
	return a.services.Reporting
}

// Syllabus exposes syllabus progress operations.
func (a *App) Syllabus() services.SyllabusService {
	return a.services.Syllabus
}

// Schedule exposes the class timetable.
func (a *App) Schedule() services.ScheduleService {
	return a.services.Schedule
}

// Tests exposes recorded assessments.
func (a *App) Tests() services.TestService {
	return a.services.Tests
}

// Insight exposes the text-generation collaborator.
func (a *App) Insight() insight.Client {
	return a.insight
}

// Config returns the effective configuration.
func (a *App) Config() *config.Config {
	return a.cfg
}

// Clock returns the session clock.
func (a *App) Clock() clock.Clock {
	return a.clock
}

// Close releases the backing store.
func (a *App) Close() error {
	return a.store.Close()
}
