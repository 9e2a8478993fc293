package domain

import "github.com/google/uuid"

// NewID mints a unique identifier for tasks, logs, tests and classes.
func NewID() string {
	return uuid.NewString()
}
