package delay

import (
	"time"

	"github.com/cendana-hr/attendance-backend-go/internal/pkg/timeutil"
)

type DelayStatus string

const (
	DelayStatusPending  DelayStatus = "pending"
	DelayStatusApproved DelayStatus = "approved"
	DelayStatusRejected DelayStatus = "rejected"
)

// DelayReasonMorningCheckIn is the reason stamped on delays detected at the
// morning-in punch, the only point this core creates them.
const DelayReasonMorningCheckIn = "morning check-in"

// DelayRecord captures a late morning arrival. Created exactly once per
// (employee, date) by the detector; afterwards only its status moves, via
// the approval workflow.
type DelayRecord struct {
	ID              string
	EmployeeID      string
	Date            time.Time
	ScheduledTime   timeutil.TimeOfDay
	ActualTime      timeutil.TimeOfDay
	Duration        string // "HH:MM:00", always non-negative
	Reason          string
	Status          DelayStatus
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO
	EmployeeName *string
}
