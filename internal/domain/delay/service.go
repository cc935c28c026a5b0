package delay

import (
	"context"
	"time"

	"github.com/cendana-hr/attendance-backend-go/internal/pkg/timeutil"
)

// DelayService defines business logic for delay detection and the delay
// approval workflow
type DelayService interface {
	// EvaluateMorningArrival decides whether the first punch of the day was
	// late and, if so, inserts a pending DelayRecord. Triggered only from
	// the morning-in transition; its failure must never fail the punch.
	EvaluateMorningArrival(ctx context.Context, employeeID string, date time.Time, actualTime timeutil.TimeOfDay) error

	// GetMyDelays retrieves delay records for the authenticated employee
	GetMyDelays(ctx context.Context, filter DelayFilter) (ListDelaysResponse, error)

	// ListDelays retrieves delay records across employees
	ListDelays(ctx context.Context, filter DelayFilter) (ListDelaysResponse, error)

	// ApproveDelay approves a pending delay record
	ApproveDelay(ctx context.Context, id string) (DelayResponse, error)

	// RejectDelay rejects a pending delay record with a reason
	RejectDelay(ctx context.Context, req RejectDelayRequest) (DelayResponse, error)
}
