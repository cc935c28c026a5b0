package notification

import (
	"context"
	"log/slog"

	"github.com/cendana-hr/attendance-backend-go/internal/domain/delay"
	"github.com/cendana-hr/attendance-backend-go/internal/domain/notification"
)

// logNotifier writes attendance events to the structured log. The hosted
// portal replaces this with its mail/event dispatcher.
type logNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) notification.Notifier {
	return &logNotifier{logger: logger}
}

// NotifyDelayRecorded implements notification.Notifier.
func (n *logNotifier) NotifyDelayRecorded(ctx context.Context, record delay.DelayRecord) error {
	n.logger.InfoContext(ctx, "delay recorded",
		"delay_id", record.ID,
		"employee_id", record.EmployeeID,
		"date", record.Date.Format("2006-01-02"),
		"scheduled_time", record.ScheduledTime.String(),
		"actual_time", record.ActualTime.String(),
		"duration", record.Duration,
	)
	return nil
}
