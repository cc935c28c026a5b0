package employee

import (
	"time"

	"github.com/cendana-hr/attendance-backend-go/internal/pkg/timeutil"
)

type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	Email        string
	Schedule     *WorkSchedule
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// WorkSchedule is the employee's configured daily schedule. It is owned by
// HR and read-only to the attendance core; an employee without one has no
// lateness concept at all.
type WorkSchedule struct {
	StartTime      timeutil.TimeOfDay
	EndTime        timeutil.TimeOfDay
	BreakStartTime timeutil.TimeOfDay
	BreakEndTime   timeutil.TimeOfDay
}
