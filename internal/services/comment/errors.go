package comment

import "errors"

// Comment thread errors
var (
	// ErrNoActiveThread is returned when posting without an open thread
	ErrNoActiveThread = errors.New("no comment thread is open")

	// ErrInvalidTaskID is returned for non-positive task IDs
	ErrInvalidTaskID = errors.New("invalid task ID")
)
