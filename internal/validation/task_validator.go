package validation

// TaskValidator provides validation for task item operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator with default limits
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithLimits creates a task validator with configured limits
func NewTaskValidatorWithLimits(titleMin, titleMax int) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithLimits(titleMin, titleMax),
	}
}

// ValidateTaskForCreation validates a new task's title and subject
func (tv *TaskValidator) ValidateTaskForCreation(title, subjectID string) error {
	validationError := NewValidationError()

	if !tv.validator.IsNonEmptyString(title) {
		validationError.AddRequiredError("title")
	} else if !tv.validator.IsValidTitleLength(title) {
		min, max := tv.validator.TitleLimits()
		validationError.AddInvalidLengthError("title", title, min, max)
	}

	if !tv.validator.IsNonEmptyString(subjectID) {
		validationError.AddRequiredError("subject")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// GetValidTaskTitle returns the cleaned task title
func (tv *TaskValidator) GetValidTaskTitle(title string) string {
	return tv.validator.TrimAndValidateString(title)
}
