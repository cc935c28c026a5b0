package punch

import (
	"context"
	"time"
)

// PunchService defines business logic for the daily punch sequence
type PunchService interface {
	// RecordPunch records a punch for the authenticated employee at the
	// given wall-clock time. The sequencer decides which checkpoint the
	// punch fills; the caller never chooses.
	RecordPunch(ctx context.Context, now time.Time) (PunchRecordResponse, error)

	// GetMyRecord retrieves the authenticated employee's punch record for
	// the given wall-clock time's date (an empty-day view when absent).
	GetMyRecord(ctx context.Context, now time.Time) (PunchRecordResponse, error)
}
