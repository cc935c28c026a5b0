package punch

import (
	"time"

	"github.com/cendana-hr/attendance-backend-go/internal/pkg/timeutil"
)

// Checkpoint is one of the four daily punches, in the order they must be
// recorded.
type Checkpoint string

const (
	CheckpointMorningIn  Checkpoint = "morning_in"
	CheckpointLunchOut   Checkpoint = "lunch_out"
	CheckpointLunchIn    Checkpoint = "lunch_in"
	CheckpointEveningOut Checkpoint = "evening_out"
)

// checkpointOrder is the fixed punch sequence. The record's filled fields
// always form a prefix of this slice.
var checkpointOrder = [...]Checkpoint{
	CheckpointMorningIn,
	CheckpointLunchOut,
	CheckpointLunchIn,
	CheckpointEveningOut,
}

// State names how far through the day's punch sequence a record is.
type State int

const (
	StateEmpty State = iota
	StateHasMorningIn
	StateHasLunchOut
	StateHasLunchIn
	StateDayComplete
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateHasMorningIn:
		return "has_morning_in"
	case StateHasLunchOut:
		return "has_lunch_out"
	case StateHasLunchIn:
		return "has_lunch_in"
	case StateDayComplete:
		return "day_complete"
	}
	return "unknown"
}

// NextCheckpoint is the single transition function of the punch state
// machine: it returns the checkpoint the next punch fills, or ok=false when
// the state is terminal.
func (s State) NextCheckpoint() (Checkpoint, bool) {
	if s == StateDayComplete {
		return "", false
	}
	return checkpointOrder[int(s)], true
}

// DailyPunchRecord is the single row per (employee, calendar date) holding
// the day's punches. Fields are filled strictly in declaration order.
type DailyPunchRecord struct {
	ID         string
	EmployeeID string
	Date       time.Time
	MorningIn  *timeutil.TimeOfDay
	LunchOut   *timeutil.TimeOfDay
	LunchIn    *timeutil.TimeOfDay
	EveningOut *timeutil.TimeOfDay
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// State derives the record's position in the punch sequence from its filled
// fields. A nil record is StateEmpty.
func (r *DailyPunchRecord) State() State {
	if r == nil {
		return StateEmpty
	}
	switch {
	case r.MorningIn == nil:
		return StateEmpty
	case r.LunchOut == nil:
		return StateHasMorningIn
	case r.LunchIn == nil:
		return StateHasLunchOut
	case r.EveningOut == nil:
		return StateHasLunchIn
	}
	return StateDayComplete
}

// Get returns the time recorded for a checkpoint, nil when unset.
func (r *DailyPunchRecord) Get(cp Checkpoint) *timeutil.TimeOfDay {
	switch cp {
	case CheckpointMorningIn:
		return r.MorningIn
	case CheckpointLunchOut:
		return r.LunchOut
	case CheckpointLunchIn:
		return r.LunchIn
	case CheckpointEveningOut:
		return r.EveningOut
	}
	return nil
}

// Set fills a checkpoint on the in-memory record. Persistence enforces the
// at-most-once-fill invariant separately.
func (r *DailyPunchRecord) Set(cp Checkpoint, t timeutil.TimeOfDay) {
	switch cp {
	case CheckpointMorningIn:
		r.MorningIn = &t
	case CheckpointLunchOut:
		r.LunchOut = &t
	case CheckpointLunchIn:
		r.LunchIn = &t
	case CheckpointEveningOut:
		r.EveningOut = &t
	}
}
