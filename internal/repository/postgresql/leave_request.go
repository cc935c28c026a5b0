package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cendana-hr/attendance-backend-go/internal/domain/leave"
	"github.com/cendana-hr/attendance-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

// GetApprovedForDate implements leave.LeaveRequestRepository. Status
// filtering happens in the query: pending and rejected rows never leave
// the database.
func (l *leaveRequestRepositoryImpl) GetApprovedForDate(ctx context.Context, employeeID string, date time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, employee_id, start_date, end_date, day_type, period, status, reason,
		       created_at, updated_at
		FROM leave_requests
		WHERE employee_id = $1
		  AND status = 'approved'
		  AND $2::date BETWEEN start_date AND end_date
	`

	rows, err := q.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query approved leaves: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		var period *string
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.StartDate, &req.EndDate,
			&req.DayType, &period, &req.Status, &req.Reason,
			&req.CreatedAt, &req.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		if period != nil {
			p := leave.LeavePeriod(*period)
			req.Period = &p
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leave requests: %w", err)
	}

	return requests, nil
}
