package tasklist

import "errors"

// Task list errors
var (
	// ErrDeleteCancelled is returned when the user declines the delete confirmation
	ErrDeleteCancelled = errors.New("delete cancelled")

	// ErrInvalidTaskID is returned for non-positive task IDs
	ErrInvalidTaskID = errors.New("invalid task ID")
)
