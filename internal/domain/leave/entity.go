package leave

import "time"

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

type LeaveDayType string

const (
	LeaveDayTypeFull LeaveDayType = "full"
	LeaveDayTypeHalf LeaveDayType = "half"
)

// LeavePeriod designates which half of the work day a half-day leave
// covers. Meaningful only when DayType is half.
type LeavePeriod string

const (
	LeavePeriodMorning   LeavePeriod = "morning"
	LeavePeriodAfternoon LeavePeriod = "afternoon"
)

// LeaveRequest is owned and mutated by the leave-approval workflow; the
// attendance core only reads approved rows to suppress false delays.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	DayType    LeaveDayType
	Period     *LeavePeriod
	Status     LeaveRequestStatus
	Reason     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Coverage says which halves of a work day are covered by approved leave.
type Coverage struct {
	Morning   bool
	Afternoon bool
}
