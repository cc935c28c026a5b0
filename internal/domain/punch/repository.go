package punch

import (
	"context"
	"time"

	"github.com/cendana-hr/attendance-backend-go/internal/pkg/timeutil"
)

// PunchRecordRepository defines data access for daily punch records. The
// store enforces two invariants the sequencer relies on: at most one record
// per (employee, date), and at-most-once fill per checkpoint field. Both
// Insert and FillCheckpoint return ErrPunchConflict when a concurrent write
// got there first.
type PunchRecordRepository interface {
	// GetByEmployeeAndDate retrieves the record for an employee on a date.
	// Returns nil (and no error) when no record exists yet.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*DailyPunchRecord, error)

	// Insert creates the day's record with its first checkpoint already set.
	Insert(ctx context.Context, record DailyPunchRecord) (DailyPunchRecord, error)

	// FillCheckpoint sets a single still-absent checkpoint field via a
	// conditional update.
	FillCheckpoint(ctx context.Context, recordID string, cp Checkpoint, t timeutil.TimeOfDay) (DailyPunchRecord, error)
}
