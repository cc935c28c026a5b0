package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cendana-hr/attendance-backend-go/internal/domain/punch"
	"github.com/cendana-hr/attendance-backend-go/internal/pkg/database"
	"github.com/cendana-hr/attendance-backend-go/internal/pkg/timeutil"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type punchRecordRepository struct {
	db *database.DB
}

func NewPunchRecordRepository(db *database.DB) punch.PunchRecordRepository {
	return &punchRecordRepository{db: db}
}

// checkpointColumn maps a checkpoint to its column. The column name is
// interpolated into SQL, so only values from this map may ever be used.
var checkpointColumn = map[punch.Checkpoint]string{
	punch.CheckpointMorningIn:  "morning_in",
	punch.CheckpointLunchOut:   "lunch_out",
	punch.CheckpointLunchIn:    "lunch_in",
	punch.CheckpointEveningOut: "evening_out",
}

// GetByEmployeeAndDate implements punch.PunchRecordRepository.
func (p *punchRecordRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*punch.DailyPunchRecord, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, employee_id, date, morning_in, lunch_out, lunch_in, evening_out,
		       created_at, updated_at
		FROM daily_punch_records
		WHERE employee_id = $1
		  AND date = $2
		LIMIT 1
	`

	record, err := scanPunchRecord(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no record yet for this date
		}
		return nil, fmt.Errorf("failed to get punch record by employee and date: %w", err)
	}

	return record, nil
}

// Insert implements punch.PunchRecordRepository. The unique index on
// (employee_id, date) turns a concurrent first-punch race into
// ErrPunchConflict instead of a second row.
func (p *punchRecordRepository) Insert(ctx context.Context, record punch.DailyPunchRecord) (punch.DailyPunchRecord, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO daily_punch_records (
			id, employee_id, date, morning_in, lunch_out, lunch_in, evening_out
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
		ON CONFLICT (employee_id, date) DO NOTHING
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.Date,
		timeOfDayPtrToString(record.MorningIn),
		timeOfDayPtrToString(record.LunchOut),
		timeOfDayPtrToString(record.LunchIn),
		timeOfDayPtrToString(record.EveningOut),
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		// DO NOTHING suppresses the RETURNING row on conflict
		if errors.Is(err, pgx.ErrNoRows) {
			return punch.DailyPunchRecord{}, punch.ErrPunchConflict
		}
		return punch.DailyPunchRecord{}, fmt.Errorf("failed to insert punch record: %w", err)
	}

	return record, nil
}

// FillCheckpoint implements punch.PunchRecordRepository. The IS NULL guard
// gives the field its at-most-once-fill semantics: of two concurrent
// punches for the same field, exactly one update matches.
func (p *punchRecordRepository) FillCheckpoint(ctx context.Context, recordID string, cp punch.Checkpoint, t timeutil.TimeOfDay) (punch.DailyPunchRecord, error) {
	q := GetQuerier(ctx, p.db)

	column, ok := checkpointColumn[cp]
	if !ok {
		return punch.DailyPunchRecord{}, fmt.Errorf("unknown checkpoint %q", cp)
	}

	query := fmt.Sprintf(`
		UPDATE daily_punch_records
		SET %s = $1, updated_at = NOW()
		WHERE id = $2
		  AND %s IS NULL
		RETURNING id, employee_id, date, morning_in, lunch_out, lunch_in, evening_out,
		          created_at, updated_at
	`, column, column)

	record, err := scanPunchRecord(q.QueryRow(ctx, query, t.String(), recordID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return punch.DailyPunchRecord{}, punch.ErrPunchConflict
		}
		return punch.DailyPunchRecord{}, fmt.Errorf("failed to fill checkpoint %s: %w", cp, err)
	}

	return *record, nil
}

func scanPunchRecord(row pgx.Row) (*punch.DailyPunchRecord, error) {
	var record punch.DailyPunchRecord
	var morningIn, lunchOut, lunchIn, eveningOut *string

	err := row.Scan(
		&record.ID, &record.EmployeeID, &record.Date,
		&morningIn, &lunchOut, &lunchIn, &eveningOut,
		&record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if record.MorningIn, err = parseTimeOfDayPtr(morningIn); err != nil {
		return nil, err
	}
	if record.LunchOut, err = parseTimeOfDayPtr(lunchOut); err != nil {
		return nil, err
	}
	if record.LunchIn, err = parseTimeOfDayPtr(lunchIn); err != nil {
		return nil, err
	}
	if record.EveningOut, err = parseTimeOfDayPtr(eveningOut); err != nil {
		return nil, err
	}

	return &record, nil
}

func parseTimeOfDayPtr(s *string) (*timeutil.TimeOfDay, error) {
	if s == nil {
		return nil, nil
	}
	t, err := timeutil.ParseTimeOfDay(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func timeOfDayPtrToString(t *timeutil.TimeOfDay) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
