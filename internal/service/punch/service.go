package punch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cendana-hr/attendance-backend-go/internal/domain/delay"
	"github.com/cendana-hr/attendance-backend-go/internal/domain/employee"
	"github.com/cendana-hr/attendance-backend-go/internal/domain/punch"
	"github.com/cendana-hr/attendance-backend-go/internal/pkg/timeutil"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type PunchServiceImpl struct {
	punchRepo    punch.PunchRecordRepository
	employeeRepo employee.EmployeeRepository
	delayService delay.DelayService
}

func NewPunchService(
	punchRepo punch.PunchRecordRepository,
	employeeRepo employee.EmployeeRepository,
	delayService delay.DelayService,
) punch.PunchService {
	return &PunchServiceImpl{
		punchRepo:    punchRepo,
		employeeRepo: employeeRepo,
		delayService: delayService,
	}
}

// RecordPunch implements punch.PunchService. The timestamp is injected by
// the caller and used only for its calendar-date and HH:MM projections.
func (s *PunchServiceImpl) RecordPunch(ctx context.Context, now time.Time) (punch.PunchRecordResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return punch.PunchRecordResponse{}, err
	}

	date := timeutil.DateOf(now)
	punchTime := timeutil.FromTime(now)

	record, cp, err := s.recordPunchOnce(ctx, employeeID, date, punchTime)
	if errors.Is(err, punch.ErrPunchConflict) {
		// A concurrent punch won the write race. Re-read and try the next
		// checkpoint once; a second conflict surfaces to the caller.
		slog.Warn("punch conflict, retrying once", "employee_id", employeeID)
		record, cp, err = s.recordPunchOnce(ctx, employeeID, date, punchTime)
	}
	if err != nil {
		return punch.PunchRecordResponse{}, err
	}

	// The punch is committed at this point. Delay evaluation runs only for
	// the first punch of the day, and its failure is reported but never
	// rolls back or fails the punch.
	if cp == punch.CheckpointMorningIn {
		if err := s.delayService.EvaluateMorningArrival(ctx, employeeID, date, punchTime); err != nil {
			slog.Error("delay evaluation failed after morning-in punch",
				"error", err, "employee_id", employeeID, "date", date.Format("2006-01-02"))
		}
	}

	return punch.MapRecordToResponse(employeeID, date.Format("2006-01-02"), &record), nil
}

// recordPunchOnce runs one read-decide-write pass of the sequencer.
func (s *PunchServiceImpl) recordPunchOnce(ctx context.Context, employeeID string, date time.Time, punchTime timeutil.TimeOfDay) (punch.DailyPunchRecord, punch.Checkpoint, error) {
	existing, err := s.punchRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return punch.DailyPunchRecord{}, "", fmt.Errorf("failed to get punch record: %w", err)
	}

	cp, ok := existing.State().NextCheckpoint()
	if !ok {
		return punch.DailyPunchRecord{}, "", punch.ErrDayComplete
	}

	if existing == nil {
		// First punch of the day: the employee_id claim is only trusted as
		// far as the token signature; the row it creates must belong to a
		// real employee.
		if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
			return punch.DailyPunchRecord{}, "", err
		}

		newRecord := punch.DailyPunchRecord{
			ID:         uuid.NewString(),
			EmployeeID: employeeID,
			Date:       date,
		}
		newRecord.Set(cp, punchTime)

		created, err := s.punchRepo.Insert(ctx, newRecord)
		if err != nil {
			return punch.DailyPunchRecord{}, "", err
		}
		return created, cp, nil
	}

	updated, err := s.punchRepo.FillCheckpoint(ctx, existing.ID, cp, punchTime)
	if err != nil {
		return punch.DailyPunchRecord{}, "", err
	}
	return updated, cp, nil
}

// GetMyRecord implements punch.PunchService.
func (s *PunchServiceImpl) GetMyRecord(ctx context.Context, now time.Time) (punch.PunchRecordResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return punch.PunchRecordResponse{}, err
	}

	date := timeutil.DateOf(now)
	record, err := s.punchRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return punch.PunchRecordResponse{}, fmt.Errorf("failed to get punch record: %w", err)
	}

	return punch.MapRecordToResponse(employeeID, date.Format("2006-01-02"), record), nil
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", punch.ErrNoActiveSession
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", punch.ErrNoActiveSession
	}

	return employeeID, nil
}
