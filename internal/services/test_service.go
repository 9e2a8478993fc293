package services

import (
	"context"
	"log/slog"
	"sort"

	"study-planner/internal/collections"
	"study-planner/internal/domain"
	"study-planner/internal/errors"
	"study-planner/internal/validation"
)

// testServiceImpl implements the TestService interface
type testServiceImpl struct {
	stores    *collections.Stores
	logger    *slog.Logger
	validator *validation.Validator
}

// NewTestService creates a new TestService instance
func NewTestService(stores *collections.Stores, logger *slog.Logger) TestService {
	return &testServiceImpl{
		stores:    stores,
		logger:    logger,
		validator: validation.NewValidator(),
	}
}

// Tests returns recorded tests, most recent date first.
func (t *testServiceImpl) Tests() []domain.Test {
	tests := t.stores.Tests.All()
	sort.Slice(tests, func(i, j int) bool {
		return tests[i].Date > tests[j].Date
	})
	return tests
}

// AddTest validates and records a scored assessment.
func (t *testServiceImpl) AddTest(ctx context.Context, name, subjectID, date string, score, total float64) (*domain.Test, error) {
	ve := validation.NewValidationError()
	name = t.validator.TrimAndValidateString(name)
	if !t.validator.IsNonEmptyString(name) {
		ve.AddRequiredError("name")
	}
	if !domain.IsAcademicSubject(subjectID) {
		ve.AddInvalidValueError("subjectId", subjectID, "tests can only be recorded for academic subjects")
	}
	if !t.validator.IsValidDate(date) {
		ve.AddInvalidFormatError("date", date, "YYYY-MM-DD")
	}
	if total <= 0 {
		ve.AddInvalidRangeError("total", total, "total must be positive")
	}
	if score < 0 || score > total {
		ve.AddInvalidRangeError("score", score, "score must be between 0 and the total")
	}
	if ve.HasErrors() {
		return nil, errors.NewValidationError("invalid test", ve)
	}

	test := domain.Test{
		ID:        domain.NewID(),
		Name:      name,
		SubjectID: subjectID,
		Date:      date,
		Score:     score,
		Total:     total,
	}
	if err := t.stores.Tests.Append(ctx, test); err != nil {
		t.logger.Error("persisting test failed", "error", err)
	}
	return &test, nil
}
