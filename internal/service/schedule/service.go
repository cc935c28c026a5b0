package schedule

import (
	"context"
	"fmt"

	"github.com/cendana-hr/attendance-backend-go/internal/domain/employee"
)

// Resolver looks up an employee's configured daily schedule. A nil result
// with no error means the employee has no schedule, and therefore no
// lateness concept.
type Resolver interface {
	ResolveSchedule(ctx context.Context, employeeID string) (*employee.WorkSchedule, error)
}

type resolverImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewResolver(employeeRepo employee.EmployeeRepository) Resolver {
	return &resolverImpl{employeeRepo: employeeRepo}
}

// ResolveSchedule implements Resolver.
func (r *resolverImpl) ResolveSchedule(ctx context.Context, employeeID string) (*employee.WorkSchedule, error) {
	sched, err := r.employeeRepo.GetWorkSchedule(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get work schedule: %w", err)
	}
	return sched, nil
}
