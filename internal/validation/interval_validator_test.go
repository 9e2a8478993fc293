package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalValidator_ValidateInterval(t *testing.T) {
	validator := NewIntervalValidator()

	tests := []struct {
		name        string
		startTime   string
		endTime     string
		expectError bool
		fieldName   string
	}{
		{name: "valid interval", startTime: "10:00", endTime: "11:30"},
		{name: "one minute interval", startTime: "10:00", endTime: "10:01"},
		{name: "end before start rejected", startTime: "10:00", endTime: "09:00", expectError: true, fieldName: "time_range"},
		{name: "equal start and end rejected", startTime: "10:00", endTime: "10:00", expectError: true, fieldName: "time_range"},
		{name: "missing start", startTime: "", endTime: "11:00", expectError: true, fieldName: "start_time"},
		{name: "missing end", startTime: "10:00", endTime: "", expectError: true, fieldName: "end_time"},
		{name: "unpadded hour rejected", startTime: "9:00", endTime: "10:00", expectError: true, fieldName: "start_time"},
		{name: "out of range hour rejected", startTime: "10:00", endTime: "24:30", expectError: true, fieldName: "end_time"},
		{name: "garbage rejected", startTime: "morning", endTime: "night", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateInterval(tt.startTime, tt.endTime)
			if !tt.expectError {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			validationErr, ok := err.(*ValidationError)
			require.True(t, ok, "expected *ValidationError, got %T", err)
			assert.True(t, validationErr.HasErrors())
			if tt.fieldName != "" {
				assert.NotEmpty(t, validationErr.GetFieldErrors(tt.fieldName))
			}
		})
	}
}

func TestTaskValidator_ValidateTaskForCreation(t *testing.T) {
	validator := NewTaskValidator()

	assert.NoError(t, validator.ValidateTaskForCreation("Revise waves", "physics"))

	err := validator.ValidateTaskForCreation("", "physics")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	err = validator.ValidateTaskForCreation("   ", "physics")
	require.Error(t, err)

	err = validator.ValidateTaskForCreation("Revise waves", "")
	require.Error(t, err)
}

func TestTaskValidator_TitleLimits(t *testing.T) {
	validator := NewTaskValidatorWithLimits(1, 10)

	assert.NoError(t, validator.ValidateTaskForCreation("short", "physics"))

	err := validator.ValidateTaskForCreation("a title well over the limit", "physics")
	require.Error(t, err)
	validationErr := err.(*ValidationError)
	assert.NotEmpty(t, validationErr.GetFieldErrors("title"))
}

func TestGetValidTaskTitle(t *testing.T) {
	validator := NewTaskValidator()
	assert.Equal(t, "Revise waves", validator.GetValidTaskTitle("  Revise waves  "))
}

func TestValidationErrorMessages(t *testing.T) {
	ve := NewValidationError()
	assert.False(t, ve.HasErrors())

	ve.AddRequiredError("start_time")
	ve.AddInvalidFormatError("end_time", "25:00", "HH:MM")

	assert.True(t, ve.HasErrors())
	assert.Contains(t, ve.Error(), "multiple validation errors")
	assert.Contains(t, ve.GetUserFriendlyMessage(), "start_time is required")
}
