package employee

import "context"

// EmployeeRepository defines data access for employee master data. The
// attendance core only ever reads it.
type EmployeeRepository interface {
	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetWorkSchedule retrieves the employee's configured schedule.
	// Returns nil (and no error) when no schedule is configured.
	GetWorkSchedule(ctx context.Context, employeeID string) (*WorkSchedule, error)
}
