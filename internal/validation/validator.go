package validation

import (
	"regexp"
	"strings"

	"study-planner/internal/clock"
)

// Default task title length limits, overridable through configuration.
const (
	DefaultTitleMinLength = 1
	DefaultTitleMaxLength = 255
)

// Validator provides common validation utilities
type Validator struct {
	clockTimeRegex *regexp.Regexp
	titleMinLength int
	titleMaxLength int
}

// NewValidator creates a new validator instance with default limits
func NewValidator() *Validator {
	return NewValidatorWithLimits(DefaultTitleMinLength, DefaultTitleMaxLength)
}

// NewValidatorWithLimits creates a validator with configured title limits
func NewValidatorWithLimits(titleMin, titleMax int) *Validator {
	return &Validator{
		clockTimeRegex: regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`),
		titleMinLength: titleMin,
		titleMaxLength: titleMax,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidTitleLength checks if a task title length is within configured limits
func (v *Validator) IsValidTitleLength(title string) bool {
	length := len(strings.TrimSpace(title))
	return length >= v.titleMinLength && length <= v.titleMaxLength
}

// TitleLimits returns the configured title length bounds
func (v *Validator) TitleLimits() (min, max int) {
	return v.titleMinLength, v.titleMaxLength
}

// IsValidClockTime checks that a string is a zero-padded HH:MM wall time
func (v *Validator) IsValidClockTime(s string) bool {
	return v.clockTimeRegex.MatchString(s)
}

// IsValidDate checks that a string is a parseable YYYY-MM-DD date
func (v *Validator) IsValidDate(s string) bool {
	_, err := clock.ParseDate(s)
	return err == nil
}

// IsValidWeekday checks a weekday index against time.Weekday numbering
func (v *Validator) IsValidWeekday(weekday int) bool {
	return weekday >= 0 && weekday <= 6
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
