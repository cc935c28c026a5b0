package delay

import "errors"

// Delay domain errors
var (
	ErrDelayNotFound = errors.New("delay record not found")

	// ErrDelayAlreadyRecorded fires on the (employee, date) uniqueness
	// constraint; a delay is created at most once per day.
	ErrDelayAlreadyRecorded = errors.New("delay already recorded for this date")

	ErrDelayAlreadyProcessed = errors.New("delay record has already been approved or rejected")
)
