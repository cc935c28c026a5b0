package delay

import (
	"github.com/cendana-hr/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// DELAY DTOs
// ========================================

type DelayFilter struct {
	Status *DelayStatus
	Page   int
	Limit  int
}

func (f *DelayFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

type RejectDelayRequest struct {
	ID     string `json:"-"`
	Reason string `json:"reason"`
}

func (r *RejectDelayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "rejection reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DelayResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	Date            string  `json:"date"`
	ScheduledTime   string  `json:"scheduled_time"`
	ActualTime      string  `json:"actual_time"`
	Duration        string  `json:"duration"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

type ListDelaysResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
	Delays     []DelayResponse `json:"delays"`
}

// MapDelayToResponse converts a DelayRecord entity to DelayResponse
func MapDelayToResponse(d DelayRecord) DelayResponse {
	return DelayResponse{
		ID:              d.ID,
		EmployeeID:      d.EmployeeID,
		EmployeeName:    d.EmployeeName,
		Date:            d.Date.Format("2006-01-02"),
		ScheduledTime:   d.ScheduledTime.String(),
		ActualTime:      d.ActualTime.String(),
		Duration:        d.Duration,
		Reason:          d.Reason,
		Status:          string(d.Status),
		RejectionReason: d.RejectionReason,
		CreatedAt:       d.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
