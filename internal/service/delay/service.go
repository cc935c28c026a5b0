package delay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/cendana-hr/attendance-backend-go/internal/domain/delay"
	"github.com/cendana-hr/attendance-backend-go/internal/domain/leave"
	"github.com/cendana-hr/attendance-backend-go/internal/domain/notification"
	"github.com/cendana-hr/attendance-backend-go/internal/domain/punch"
	"github.com/cendana-hr/attendance-backend-go/internal/pkg/timeutil"
	"github.com/cendana-hr/attendance-backend-go/internal/service/schedule"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

// gracePeriodMinutes is the fixed tolerance after scheduled start within
// which an arrival is not flagged as late.
const gracePeriodMinutes = 5

type DelayServiceImpl struct {
	delayRepo        delay.DelayRecordRepository
	scheduleResolver schedule.Resolver
	coverageResolver leave.CoverageResolver
	notifier         notification.Notifier
}

func NewDelayService(
	delayRepo delay.DelayRecordRepository,
	scheduleResolver schedule.Resolver,
	coverageResolver leave.CoverageResolver,
	notifier notification.Notifier,
) delay.DelayService {
	return &DelayServiceImpl{
		delayRepo:        delayRepo,
		scheduleResolver: scheduleResolver,
		coverageResolver: coverageResolver,
		notifier:         notifier,
	}
}

// EvaluateMorningArrival implements delay.DelayService.
func (s *DelayServiceImpl) EvaluateMorningArrival(ctx context.Context, employeeID string, date time.Time, actualTime timeutil.TimeOfDay) error {
	coverage, err := s.coverageResolver.ResolveCoverage(ctx, employeeID, date)
	if err != nil {
		return fmt.Errorf("failed to resolve leave coverage: %w", err)
	}

	// Approved leave over the morning means the employee was not expected
	// at start time. Afternoon-only leave changes nothing here.
	if coverage.Morning {
		return nil
	}

	sched, err := s.scheduleResolver.ResolveSchedule(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("failed to resolve schedule: %w", err)
	}

	// No schedule, no lateness concept.
	if sched == nil {
		return nil
	}

	scheduled := sched.StartTime
	graceLimit := scheduled.AddMinutes(gracePeriodMinutes)

	// Within grace is not late at all; a record is never written for it.
	if !actualTime.After(graceLimit) {
		return nil
	}

	// Duration counts from the original scheduled time, not the grace
	// limit: a 6-minute-late arrival records a 6-minute delay.
	lateMinutes := actualTime.Sub(scheduled)

	record := delay.DelayRecord{
		ID:            uuid.NewString(),
		EmployeeID:    employeeID,
		Date:          timeutil.DateOf(date),
		ScheduledTime: scheduled,
		ActualTime:    actualTime,
		Duration:      timeutil.FormatDuration(lateMinutes),
		Reason:        delay.DelayReasonMorningCheckIn,
		Status:        delay.DelayStatusPending,
	}

	created, err := s.delayRepo.Insert(ctx, record)
	if err != nil {
		// The morning-in transition fires once per day, but a replayed
		// request can still race the unique constraint.
		if errors.Is(err, delay.ErrDelayAlreadyRecorded) {
			slog.Warn("delay already recorded for date",
				"employee_id", employeeID, "date", record.Date.Format("2006-01-02"))
			return nil
		}
		return fmt.Errorf("failed to insert delay record: %w", err)
	}

	if err := s.notifier.NotifyDelayRecorded(ctx, created); err != nil {
		slog.Error("failed to notify delay recorded", "error", err, "delay_id", created.ID)
	}

	return nil
}

// GetMyDelays implements delay.DelayService.
func (s *DelayServiceImpl) GetMyDelays(ctx context.Context, filter delay.DelayFilter) (delay.ListDelaysResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return delay.ListDelaysResponse{}, err
	}

	filter.Normalize()
	records, total, err := s.delayRepo.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return delay.ListDelaysResponse{}, fmt.Errorf("failed to list my delays: %w", err)
	}

	return buildListResponse(records, total, filter), nil
}

// ListDelays implements delay.DelayService.
func (s *DelayServiceImpl) ListDelays(ctx context.Context, filter delay.DelayFilter) (delay.ListDelaysResponse, error) {
	filter.Normalize()
	records, total, err := s.delayRepo.List(ctx, filter)
	if err != nil {
		return delay.ListDelaysResponse{}, fmt.Errorf("failed to list delays: %w", err)
	}

	return buildListResponse(records, total, filter), nil
}

// ApproveDelay implements delay.DelayService.
func (s *DelayServiceImpl) ApproveDelay(ctx context.Context, id string) (delay.DelayResponse, error) {
	approverID, err := employeeIDFromContext(ctx)
	if err != nil {
		return delay.DelayResponse{}, err
	}

	record, err := s.delayRepo.GetByID(ctx, id)
	if err != nil {
		return delay.DelayResponse{}, fmt.Errorf("failed to get delay record: %w", err)
	}

	if record.Status != delay.DelayStatusPending {
		return delay.DelayResponse{}, delay.ErrDelayAlreadyProcessed
	}

	now := time.Now()
	record.Status = delay.DelayStatusApproved
	record.ApprovedBy = &approverID
	record.ApprovedAt = &now
	record.RejectionReason = nil

	if err := s.delayRepo.Update(ctx, record); err != nil {
		return delay.DelayResponse{}, fmt.Errorf("failed to approve delay record: %w", err)
	}

	return delay.MapDelayToResponse(record), nil
}

// RejectDelay implements delay.DelayService.
func (s *DelayServiceImpl) RejectDelay(ctx context.Context, req delay.RejectDelayRequest) (delay.DelayResponse, error) {
	if err := req.Validate(); err != nil {
		return delay.DelayResponse{}, err
	}

	approverID, err := employeeIDFromContext(ctx)
	if err != nil {
		return delay.DelayResponse{}, err
	}

	record, err := s.delayRepo.GetByID(ctx, req.ID)
	if err != nil {
		return delay.DelayResponse{}, fmt.Errorf("failed to get delay record: %w", err)
	}

	if record.Status != delay.DelayStatusPending {
		return delay.DelayResponse{}, delay.ErrDelayAlreadyProcessed
	}

	now := time.Now()
	record.Status = delay.DelayStatusRejected
	record.ApprovedBy = &approverID
	record.ApprovedAt = &now
	record.RejectionReason = &req.Reason

	if err := s.delayRepo.Update(ctx, record); err != nil {
		return delay.DelayResponse{}, fmt.Errorf("failed to reject delay record: %w", err)
	}

	return delay.MapDelayToResponse(record), nil
}

func buildListResponse(records []delay.DelayRecord, total int64, filter delay.DelayFilter) delay.ListDelaysResponse {
	responses := make([]delay.DelayResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, delay.MapDelayToResponse(r))
	}

	return delay.ListDelaysResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Delays:     responses,
	}
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
