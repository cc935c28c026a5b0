package delay

import "context"

// DelayRecordRepository defines data access for delay records.
type DelayRecordRepository interface {
	// Insert creates a new delay record. Returns ErrDelayAlreadyRecorded
	// when one already exists for the (employee, date).
	Insert(ctx context.Context, record DelayRecord) (DelayRecord, error)

	// GetByID retrieves a delay record by ID
	GetByID(ctx context.Context, id string) (DelayRecord, error)

	// ListByEmployee retrieves an employee's delay records, newest first
	ListByEmployee(ctx context.Context, employeeID string, filter DelayFilter) ([]DelayRecord, int64, error)

	// List retrieves delay records across employees with filters
	List(ctx context.Context, filter DelayFilter) ([]DelayRecord, int64, error)

	// Update persists status and approval metadata changes of a still-pending
	// record. Returns ErrDelayAlreadyProcessed when a concurrent approval got
	// there first, ErrDelayNotFound when the record is absent.
	Update(ctx context.Context, record DelayRecord) error
}
