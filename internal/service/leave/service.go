package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/cendana-hr/attendance-backend-go/internal/domain/leave"
)

type coverageResolverImpl struct {
	leaveRequestRepo leave.LeaveRequestRepository
}

func NewCoverageResolver(leaveRequestRepo leave.LeaveRequestRepository) leave.CoverageResolver {
	return &coverageResolverImpl{leaveRequestRepo: leaveRequestRepo}
}

// ResolveCoverage implements leave.CoverageResolver. The repository already
// filters to approved requests overlapping the date; pending or rejected
// leave never reaches this loop and so can never suppress delay detection.
func (r *coverageResolverImpl) ResolveCoverage(ctx context.Context, employeeID string, date time.Time) (leave.Coverage, error) {
	requests, err := r.leaveRequestRepo.GetApprovedForDate(ctx, employeeID, date)
	if err != nil {
		return leave.Coverage{}, fmt.Errorf("failed to get approved leaves: %w", err)
	}

	var coverage leave.Coverage
	for _, req := range requests {
		switch req.DayType {
		case leave.LeaveDayTypeFull:
			coverage.Morning = true
			coverage.Afternoon = true
		case leave.LeaveDayTypeHalf:
			if req.Period == nil {
				continue
			}
			switch *req.Period {
			case leave.LeavePeriodMorning:
				coverage.Morning = true
			case leave.LeavePeriodAfternoon:
				coverage.Afternoon = true
			}
		}
	}

	return coverage, nil
}
