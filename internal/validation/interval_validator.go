package validation

import (
	"study-planner/internal/clock"
)

// IntervalValidator validates the manually entered start/end intervals that
// back log entries. Rejection here guarantees no log entry is ever created
// with a non-positive duration.
type IntervalValidator struct {
	validator *Validator
}

// NewIntervalValidator creates a new interval validator
func NewIntervalValidator() *IntervalValidator {
	return &IntervalValidator{
		validator: NewValidator(),
	}
}

// ValidateInterval validates a start/end pair for log entry creation.
// Both fields are required, must be HH:MM, and end must be strictly after
// start within the same day.
func (iv *IntervalValidator) ValidateInterval(startTime, endTime string) error {
	validationError := NewValidationError()

	if !iv.validator.IsNonEmptyString(startTime) {
		validationError.AddRequiredError("start_time")
	} else if !iv.validator.IsValidClockTime(startTime) {
		validationError.AddInvalidFormatError("start_time", startTime, "HH:MM")
	}

	if !iv.validator.IsNonEmptyString(endTime) {
		validationError.AddRequiredError("end_time")
	} else if !iv.validator.IsValidClockTime(endTime) {
		validationError.AddInvalidFormatError("end_time", endTime, "HH:MM")
	}

	if validationError.HasErrors() {
		return validationError
	}

	minutes, err := clock.MinutesBetween(startTime, endTime)
	if err != nil {
		// Formats already checked above, so this should not happen.
		validationError.AddInvalidFormatError("time_range", map[string]string{"start": startTime, "end": endTime}, "HH:MM")
		return validationError
	}
	if minutes <= 0 {
		validationError.AddInvalidRangeError("time_range", map[string]string{
			"start": startTime,
			"end":   endTime,
		}, "end time must be after start time")
		return validationError
	}

	return nil
}
