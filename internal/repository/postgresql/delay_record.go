package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cendana-hr/attendance-backend-go/internal/domain/delay"
	"github.com/cendana-hr/attendance-backend-go/internal/pkg/database"
	"github.com/cendana-hr/attendance-backend-go/internal/pkg/timeutil"
	"github.com/jackc/pgx/v5"
)

type delayRecordRepository struct {
	db *database.DB
}

func NewDelayRecordRepository(db *database.DB) delay.DelayRecordRepository {
	return &delayRecordRepository{db: db}
}

// Insert implements delay.DelayRecordRepository.
func (d *delayRecordRepository) Insert(ctx context.Context, record delay.DelayRecord) (delay.DelayRecord, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		INSERT INTO delay_records (
			id, employee_id, date, scheduled_time, actual_time, duration, reason, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.Date,
		record.ScheduledTime.String(),
		record.ActualTime.String(),
		record.Duration,
		record.Reason,
		record.Status,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return delay.DelayRecord{}, delay.ErrDelayAlreadyRecorded
		}
		return delay.DelayRecord{}, fmt.Errorf("failed to insert delay record: %w", err)
	}

	return record, nil
}

// GetByID implements delay.DelayRecordRepository.
func (d *delayRecordRepository) GetByID(ctx context.Context, id string) (delay.DelayRecord, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT d.id, d.employee_id, d.date, d.scheduled_time, d.actual_time, d.duration,
		       d.reason, d.status, d.approved_by, d.approved_at, d.rejection_reason,
		       d.created_at, d.updated_at,
		       e.full_name
		FROM delay_records d
		JOIN employees e ON e.id = d.employee_id
		WHERE d.id = $1
	`

	record, err := scanDelayRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return delay.DelayRecord{}, delay.ErrDelayNotFound
		}
		return delay.DelayRecord{}, fmt.Errorf("failed to get delay record: %w", err)
	}

	return record, nil
}

// ListByEmployee implements delay.DelayRecordRepository.
func (d *delayRecordRepository) ListByEmployee(ctx context.Context, employeeID string, filter delay.DelayFilter) ([]delay.DelayRecord, int64, error) {
	conditions := []string{"d.employee_id = $1"}
	args := []interface{}{employeeID}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("d.status = $%d", len(args)))
	}

	return d.list(ctx, conditions, args, filter)
}

// List implements delay.DelayRecordRepository.
func (d *delayRecordRepository) List(ctx context.Context, filter delay.DelayFilter) ([]delay.DelayRecord, int64, error) {
	conditions := []string{"TRUE"}
	args := []interface{}{}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("d.status = $%d", len(args)))
	}

	return d.list(ctx, conditions, args, filter)
}

func (d *delayRecordRepository) list(ctx context.Context, conditions []string, args []interface{}, filter delay.DelayFilter) ([]delay.DelayRecord, int64, error) {
	q := GetQuerier(ctx, d.db)
	where := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM delay_records d WHERE %s`, where)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count delay records: %w", err)
	}

	limitArgs := append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	listQuery := fmt.Sprintf(`
		SELECT d.id, d.employee_id, d.date, d.scheduled_time, d.actual_time, d.duration,
		       d.reason, d.status, d.approved_by, d.approved_at, d.rejection_reason,
		       d.created_at, d.updated_at,
		       e.full_name
		FROM delay_records d
		JOIN employees e ON e.id = d.employee_id
		WHERE %s
		ORDER BY d.date DESC, d.created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)

	rows, err := q.Query(ctx, listQuery, limitArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list delay records: %w", err)
	}
	defer rows.Close()

	var records []delay.DelayRecord
	for rows.Next() {
		record, err := scanDelayRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan delay record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read delay records: %w", err)
	}

	return records, total, nil
}

// Update implements delay.DelayRecordRepository. Only status and approval
// metadata ever change after creation, and only while the record is still
// pending: the status guard in the UPDATE makes the transition atomic, so
// of two concurrent approvals exactly one matches. The diagnostic re-read
// distinguishing an absent record from an already-processed one runs in the
// same transaction.
func (d *delayRecordRepository) Update(ctx context.Context, record delay.DelayRecord) error {
	return WithTransaction(ctx, d.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		q := GetQuerier(txCtx, d.db)

		query := `
			UPDATE delay_records
			SET status = $1, approved_by = $2, approved_at = $3, rejection_reason = $4,
			    updated_at = NOW()
			WHERE id = $5
			  AND status = 'pending'
		`

		tag, err := q.Exec(txCtx, query,
			record.Status, record.ApprovedBy, record.ApprovedAt, record.RejectionReason,
			record.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update delay record: %w", err)
		}
		if tag.RowsAffected() == 0 {
			var status delay.DelayStatus
			err := q.QueryRow(txCtx, `SELECT status FROM delay_records WHERE id = $1`, record.ID).Scan(&status)
			if errors.Is(err, pgx.ErrNoRows) {
				return delay.ErrDelayNotFound
			}
			if err != nil {
				return fmt.Errorf("failed to check delay record status: %w", err)
			}
			return delay.ErrDelayAlreadyProcessed
		}

		return nil
	})
}

func scanDelayRecord(row pgx.Row) (delay.DelayRecord, error) {
	var record delay.DelayRecord
	var scheduledStr, actualStr string

	err := row.Scan(
		&record.ID, &record.EmployeeID, &record.Date, &scheduledStr, &actualStr, &record.Duration,
		&record.Reason, &record.Status, &record.ApprovedBy, &record.ApprovedAt, &record.RejectionReason,
		&record.CreatedAt, &record.UpdatedAt,
		&record.EmployeeName,
	)
	if err != nil {
		return delay.DelayRecord{}, err
	}

	if record.ScheduledTime, err = timeutil.ParseTimeOfDay(scheduledStr); err != nil {
		return delay.DelayRecord{}, err
	}
	if record.ActualTime, err = timeutil.ParseTimeOfDay(actualStr); err != nil {
		return delay.DelayRecord{}, err
	}

	return record, nil
}
