package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cendana-hr/attendance-backend-go/internal/domain/employee"
	"github.com/cendana-hr/attendance-backend-go/internal/pkg/database"
	"github.com/cendana-hr/attendance-backend-go/internal/pkg/timeutil"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employee_code, full_name, email,
		       schedule_start_time, schedule_end_time, break_start_time, break_end_time,
		       created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	var startStr, endStr, breakStartStr, breakEndStr *string
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.EmployeeCode, &emp.FullName, &emp.Email,
		&startStr, &endStr, &breakStartStr, &breakEndStr,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	sched, err := scanWorkSchedule(startStr, endStr, breakStartStr, breakEndStr)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to parse employee schedule: %w", err)
	}
	emp.Schedule = sched

	return emp, nil
}

// GetWorkSchedule implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetWorkSchedule(ctx context.Context, employeeID string) (*employee.WorkSchedule, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT schedule_start_time, schedule_end_time, break_start_time, break_end_time
		FROM employees
		WHERE id = $1
	`

	var startStr, endStr, breakStartStr, breakEndStr *string
	err := q.QueryRow(ctx, query, employeeID).Scan(&startStr, &endStr, &breakStartStr, &breakEndStr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get work schedule: %w", err)
	}

	sched, err := scanWorkSchedule(startStr, endStr, breakStartStr, breakEndStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse work schedule: %w", err)
	}

	return sched, nil
}

// scanWorkSchedule builds the schedule value object from its HH:MM columns.
// A NULL column means no schedule is configured at all.
func scanWorkSchedule(start, end, breakStart, breakEnd *string) (*employee.WorkSchedule, error) {
	if start == nil || end == nil || breakStart == nil || breakEnd == nil {
		return nil, nil
	}

	startTime, err := timeutil.ParseTimeOfDay(*start)
	if err != nil {
		return nil, err
	}
	endTime, err := timeutil.ParseTimeOfDay(*end)
	if err != nil {
		return nil, err
	}
	breakStartTime, err := timeutil.ParseTimeOfDay(*breakStart)
	if err != nil {
		return nil, err
	}
	breakEndTime, err := timeutil.ParseTimeOfDay(*breakEnd)
	if err != nil {
		return nil, err
	}

	return &employee.WorkSchedule{
		StartTime:      startTime,
		EndTime:        endTime,
		BreakStartTime: breakStartTime,
		BreakEndTime:   breakEndTime,
	}, nil
}
