package notification

import (
	"context"

	"github.com/cendana-hr/attendance-backend-go/internal/domain/delay"
)

// Notifier is the outbound event sink for attendance events. The real
// dispatch (mail, push) lives outside this service; implementations here
// must be fire-and-forget from the caller's point of view.
type Notifier interface {
	NotifyDelayRecorded(ctx context.Context, record delay.DelayRecord) error
}
