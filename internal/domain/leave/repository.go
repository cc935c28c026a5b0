package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository - read access to the leave_requests table
type LeaveRequestRepository interface {
	// GetApprovedForDate retrieves the employee's approved leave requests
	// whose [start_date, end_date] range contains the given date. Pending
	// and rejected rows are filtered out by the query itself.
	GetApprovedForDate(ctx context.Context, employeeID string, date time.Time) ([]LeaveRequest, error)
}
