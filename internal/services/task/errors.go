package task

import "errors"

// Task-related errors
var (
	// Validation errors
	ErrEmptyName       = errors.New("task name cannot be empty")
	ErrInvalidPriority = errors.New("invalid priority (must be: high, medium, low)")

	// Business logic errors
	ErrTaskNotFound = errors.New("task not found")
)
