package services

import (
	"log/slog"

	"study-planner/internal/clock"
	"study-planner/internal/collections"
	"study-planner/internal/config"
)

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	Rollup     RollupService
	Day        DayService
	Completion CompletionService
	Reporting  ReportingService
	Syllabus   SyllabusService
	Schedule   ScheduleService
	Tests      TestService
}

// NewServiceContainer wires every service against one shared set of typed
// stores, the loaded configuration, and one clock.
func NewServiceContainer(stores *collections.Stores, cfg *config.Config, clk clock.Clock, logger *slog.Logger) *ServiceContainer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &ServiceContainer{
		Rollup:     NewRollupService(stores, clk, logger),
		Day:        NewDayService(stores, clk, logger),
		Completion: NewCompletionService(stores, cfg, clk, logger),
		Reporting:  NewReportingService(stores, logger),
		Syllabus:   NewSyllabusService(stores, logger),
		Schedule:   NewScheduleService(stores, clk, logger),
		Tests:      NewTestService(stores, logger),
	}
}
