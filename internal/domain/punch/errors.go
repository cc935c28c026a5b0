package punch

import "errors"

// Punch domain errors
var (
	// ErrDayComplete means all four checkpoints are already filled for the
	// date; the punch sequence is terminal.
	ErrDayComplete = errors.New("all punches already recorded for today")

	// ErrNoActiveSession means the caller's identity could not be resolved
	// from the request context.
	ErrNoActiveSession = errors.New("no active session")

	// ErrPunchConflict is the store's at-most-once-fill guard firing: a
	// concurrent punch filled the same field first.
	ErrPunchConflict = errors.New("punch record was modified concurrently")

	ErrRecordNotFound = errors.New("punch record not found")
)
