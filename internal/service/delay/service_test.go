package delay

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cendana-hr/attendance-backend-go/internal/domain/delay"
	"github.com/cendana-hr/attendance-backend-go/internal/domain/employee"
	"github.com/cendana-hr/attendance-backend-go/internal/domain/leave"
	"github.com/cendana-hr/attendance-backend-go/internal/domain/punch"
	jwtpkg "github.com/cendana-hr/attendance-backend-go/internal/pkg/jwt"
	"github.com/cendana-hr/attendance-backend-go/internal/pkg/timeutil"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== test fakes =====

type fakeDelayRepo struct {
	records map[string]delay.DelayRecord // by ID
	updates int

	insertErr error

	// processBeforeUpdate marks the record approved just before the next
	// Update applies, simulating a concurrent approval winning the race
	// between the service's read and its write.
	processBeforeUpdate bool
}

func newFakeDelayRepo() *fakeDelayRepo {
	return &fakeDelayRepo{records: make(map[string]delay.DelayRecord)}
}

func (f *fakeDelayRepo) Insert(ctx context.Context, record delay.DelayRecord) (delay.DelayRecord, error) {
	if f.insertErr != nil {
		return delay.DelayRecord{}, f.insertErr
	}
	for _, existing := range f.records {
		if existing.EmployeeID == record.EmployeeID && existing.Date.Equal(record.Date) {
			return delay.DelayRecord{}, delay.ErrDelayAlreadyRecorded
		}
	}
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt
	f.records[record.ID] = record
	return record, nil
}

func (f *fakeDelayRepo) GetByID(ctx context.Context, id string) (delay.DelayRecord, error) {
	record, ok := f.records[id]
	if !ok {
		return delay.DelayRecord{}, delay.ErrDelayNotFound
	}
	return record, nil
}

func (f *fakeDelayRepo) ListByEmployee(ctx context.Context, employeeID string, filter delay.DelayFilter) ([]delay.DelayRecord, int64, error) {
	var out []delay.DelayRecord
	for _, r := range f.records {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeDelayRepo) List(ctx context.Context, filter delay.DelayFilter) ([]delay.DelayRecord, int64, error) {
	var out []delay.DelayRecord
	for _, r := range f.records {
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		out = append(out, r)
	}
	return out, int64(len(out)), nil
}

func (f *fakeDelayRepo) Update(ctx context.Context, record delay.DelayRecord) error {
	existing, ok := f.records[record.ID]
	if !ok {
		return delay.ErrDelayNotFound
	}
	if f.processBeforeUpdate {
		f.processBeforeUpdate = false
		existing.Status = delay.DelayStatusApproved
		f.records[record.ID] = existing
	}
	// The store's pending guard: a processed record is never written again.
	if f.records[record.ID].Status != delay.DelayStatusPending {
		return delay.ErrDelayAlreadyProcessed
	}
	f.updates++
	f.records[record.ID] = record
	return nil
}

func (f *fakeDelayRepo) all() []delay.DelayRecord {
	var out []delay.DelayRecord
	for _, r := range f.records {
		out = append(out, r)
	}
	return out
}

type fakeScheduleResolver struct {
	schedule *employee.WorkSchedule
	err      error
}

func (f *fakeScheduleResolver) ResolveSchedule(ctx context.Context, employeeID string) (*employee.WorkSchedule, error) {
	return f.schedule, f.err
}

type fakeCoverageResolver struct {
	coverage leave.Coverage
	err      error
}

func (f *fakeCoverageResolver) ResolveCoverage(ctx context.Context, employeeID string, date time.Time) (leave.Coverage, error) {
	return f.coverage, f.err
}

type fakeNotifier struct {
	notified []delay.DelayRecord
	err      error
}

func (f *fakeNotifier) NotifyDelayRecorded(ctx context.Context, record delay.DelayRecord) error {
	f.notified = append(f.notified, record)
	return f.err
}

func tod(t *testing.T, clock string) timeutil.TimeOfDay {
	t.Helper()
	v, err := timeutil.ParseTimeOfDay(clock)
	require.NoError(t, err)
	return v
}

// nineToFive is the schedule used throughout: work 09:00-17:00, break
// 12:00-13:00.
func nineToFive(t *testing.T) *employee.WorkSchedule {
	t.Helper()
	return &employee.WorkSchedule{
		StartTime:      tod(t, "09:00"),
		EndTime:        tod(t, "17:00"),
		BreakStartTime: tod(t, "12:00"),
		BreakEndTime:   tod(t, "13:00"),
	}
}

func authedContext(t *testing.T, employeeID string) context.Context {
	t.Helper()
	jwtService := jwtpkg.NewJWTService("test-secret-key")
	tokenStr, _, err := jwtService.GenerateAccessToken(employeeID, time.Hour)
	require.NoError(t, err)
	token, err := jwtService.JWTAuth().Decode(tokenStr)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type delayFixture struct {
	repo     *fakeDelayRepo
	sched    *fakeScheduleResolver
	cover    *fakeCoverageResolver
	notifier *fakeNotifier
	svc      delay.DelayService
}

func newDelayFixture(t *testing.T) *delayFixture {
	f := &delayFixture{
		repo:     newFakeDelayRepo(),
		sched:    &fakeScheduleResolver{schedule: nineToFive(t)},
		cover:    &fakeCoverageResolver{},
		notifier: &fakeNotifier{},
	}
	f.svc = NewDelayService(f.repo, f.sched, f.cover, f.notifier)
	return f
}

var testDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

// ===== GRACE PERIOD =====

func TestEvaluateMorningArrival_GraceBoundary(t *testing.T) {
	tests := []struct {
		name         string
		arrival      string
		wantDelay    bool
		wantDuration string
	}{
		{name: "on time", arrival: "09:00", wantDelay: false},
		{name: "within grace", arrival: "09:03", wantDelay: false},
		{name: "exactly at grace limit", arrival: "09:05", wantDelay: false},
		{name: "one minute past grace", arrival: "09:06", wantDelay: true, wantDuration: "00:06:00"},
		{name: "well past grace", arrival: "09:20", wantDelay: true, wantDuration: "00:20:00"},
		{name: "early arrival", arrival: "08:45", wantDelay: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDelayFixture(t)

			err := f.svc.EvaluateMorningArrival(context.Background(), "emp-1", testDate, tod(t, tt.arrival))
			require.NoError(t, err)

			if !tt.wantDelay {
				assert.Empty(t, f.repo.records, "no delay record may exist for a non-late arrival")
				assert.Empty(t, f.notifier.notified)
				return
			}

			records := f.repo.all()
			require.Len(t, records, 1)
			rec := records[0]
			// Duration counts from the scheduled time, not the grace limit.
			assert.Equal(t, tt.wantDuration, rec.Duration)
			assert.Equal(t, "09:00", rec.ScheduledTime.String())
			assert.Equal(t, tt.arrival, rec.ActualTime.String())
			assert.Equal(t, delay.DelayStatusPending, rec.Status)
			assert.Equal(t, delay.DelayReasonMorningCheckIn, rec.Reason)
			assert.Len(t, f.notifier.notified, 1)
		})
	}
}

// ===== LEAVE COVERAGE SUPPRESSION =====

func TestEvaluateMorningArrival_LeaveCoverage(t *testing.T) {
	tests := []struct {
		name      string
		coverage  leave.Coverage
		wantDelay bool
	}{
		{name: "full day leave suppresses", coverage: leave.Coverage{Morning: true, Afternoon: true}, wantDelay: false},
		{name: "morning half leave suppresses", coverage: leave.Coverage{Morning: true}, wantDelay: false},
		{name: "afternoon half leave does not suppress", coverage: leave.Coverage{Afternoon: true}, wantDelay: true},
		{name: "no leave does not suppress", coverage: leave.Coverage{}, wantDelay: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDelayFixture(t)
			f.cover.coverage = tt.coverage

			err := f.svc.EvaluateMorningArrival(context.Background(), "emp-1", testDate, tod(t, "09:20"))
			require.NoError(t, err)

			records := f.repo.all()
			if !tt.wantDelay {
				assert.Empty(t, records)
				return
			}
			require.Len(t, records, 1)
			assert.Equal(t, "00:20:00", records[0].Duration)
		})
	}
}

// ===== SKIP CONDITIONS AND FAILURES =====

func TestEvaluateMorningArrival_NoScheduleSkips(t *testing.T) {
	f := newDelayFixture(t)
	f.sched.schedule = nil

	err := f.svc.EvaluateMorningArrival(context.Background(), "emp-1", testDate, tod(t, "11:45"))
	require.NoError(t, err)
	assert.Empty(t, f.repo.records, "lateness is undefined without a schedule")
}

func TestEvaluateMorningArrival_CoverageLookupFailure(t *testing.T) {
	f := newDelayFixture(t)
	f.cover.err = errors.New("leave store down")

	err := f.svc.EvaluateMorningArrival(context.Background(), "emp-1", testDate, tod(t, "09:20"))
	assert.Error(t, err)
	assert.Empty(t, f.repo.records)
}

func TestEvaluateMorningArrival_AlreadyRecordedIsNotAnError(t *testing.T) {
	f := newDelayFixture(t)
	f.repo.insertErr = delay.ErrDelayAlreadyRecorded

	err := f.svc.EvaluateMorningArrival(context.Background(), "emp-1", testDate, tod(t, "09:20"))
	assert.NoError(t, err, "a lost insert race means the delay is already on record")
}

func TestEvaluateMorningArrival_NotifierFailureIsNonFatal(t *testing.T) {
	f := newDelayFixture(t)
	f.notifier.err = errors.New("notification channel down")

	err := f.svc.EvaluateMorningArrival(context.Background(), "emp-1", testDate, tod(t, "09:20"))
	require.NoError(t, err)
	assert.Len(t, f.repo.all(), 1, "delay record persists even when the notification fails")
}

// ===== APPROVAL WORKFLOW =====

func seedPendingDelay(t *testing.T, f *delayFixture, employeeID string) delay.DelayRecord {
	t.Helper()
	err := f.svc.EvaluateMorningArrival(context.Background(), employeeID, testDate, tod(t, "09:20"))
	require.NoError(t, err)
	records := f.repo.all()
	require.Len(t, records, 1)
	return records[0]
}

func TestApproveDelay(t *testing.T) {
	f := newDelayFixture(t)
	rec := seedPendingDelay(t, f, "emp-1")
	ctx := authedContext(t, "manager-1")

	resp, err := f.svc.ApproveDelay(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "approved", resp.Status)

	stored := f.repo.records[rec.ID]
	assert.Equal(t, delay.DelayStatusApproved, stored.Status)
	require.NotNil(t, stored.ApprovedBy)
	assert.Equal(t, "manager-1", *stored.ApprovedBy)
	assert.NotNil(t, stored.ApprovedAt)
	assert.Nil(t, stored.RejectionReason)
}

func TestApproveDelay_AlreadyProcessed(t *testing.T) {
	f := newDelayFixture(t)
	rec := seedPendingDelay(t, f, "emp-1")
	ctx := authedContext(t, "manager-1")

	_, err := f.svc.ApproveDelay(ctx, rec.ID)
	require.NoError(t, err)

	_, err = f.svc.ApproveDelay(ctx, rec.ID)
	assert.ErrorIs(t, err, delay.ErrDelayAlreadyProcessed)
	assert.Equal(t, 1, f.repo.updates, "a processed record is never written again")
}

func TestApproveDelay_LostRaceSurfacesConflict(t *testing.T) {
	f := newDelayFixture(t)
	rec := seedPendingDelay(t, f, "emp-1")
	ctx := authedContext(t, "manager-1")

	// A concurrent approval lands between this caller's read and write; the
	// store's pending guard rejects the second write.
	f.repo.processBeforeUpdate = true

	_, err := f.svc.RejectDelay(ctx, delay.RejectDelayRequest{ID: rec.ID, Reason: "no prior notice"})
	assert.ErrorIs(t, err, delay.ErrDelayAlreadyProcessed)
	assert.Equal(t, delay.DelayStatusApproved, f.repo.records[rec.ID].Status,
		"the winning approval's state stands")
}

func TestApproveDelay_NotFound(t *testing.T) {
	f := newDelayFixture(t)
	ctx := authedContext(t, "manager-1")

	_, err := f.svc.ApproveDelay(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, delay.ErrDelayNotFound)
}

func TestRejectDelay(t *testing.T) {
	f := newDelayFixture(t)
	rec := seedPendingDelay(t, f, "emp-1")
	ctx := authedContext(t, "manager-1")

	resp, err := f.svc.RejectDelay(ctx, delay.RejectDelayRequest{ID: rec.ID, Reason: "no prior notice"})
	require.NoError(t, err)
	assert.Equal(t, "rejected", resp.Status)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, "no prior notice", *resp.RejectionReason)

	stored := f.repo.records[rec.ID]
	assert.Equal(t, delay.DelayStatusRejected, stored.Status)
}

func TestRejectDelay_RequiresReason(t *testing.T) {
	f := newDelayFixture(t)
	rec := seedPendingDelay(t, f, "emp-1")
	ctx := authedContext(t, "manager-1")

	_, err := f.svc.RejectDelay(ctx, delay.RejectDelayRequest{ID: rec.ID})
	assert.Error(t, err)
	assert.Equal(t, delay.DelayStatusPending, f.repo.records[rec.ID].Status)
}

// ===== LISTING =====

func TestGetMyDelays(t *testing.T) {
	f := newDelayFixture(t)
	seedPendingDelay(t, f, "emp-1")
	ctx := authedContext(t, "emp-1")

	resp, err := f.svc.GetMyDelays(ctx, delay.DelayFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.TotalCount)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 20, resp.Limit)
	assert.Equal(t, 1, resp.TotalPages)
	require.Len(t, resp.Delays, 1)
	assert.Equal(t, "00:20:00", resp.Delays[0].Duration)
	assert.Equal(t, "2026-03-02", resp.Delays[0].Date)
}

func TestGetMyDelays_NoSession(t *testing.T) {
	f := newDelayFixture(t)

	_, err := f.svc.GetMyDelays(context.Background(), delay.DelayFilter{})
	assert.ErrorIs(t, err, punch.ErrNoActiveSession)
}

func TestApproveDelay_NoSession(t *testing.T) {
	f := newDelayFixture(t)
	rec := seedPendingDelay(t, f, "emp-1")

	_, err := f.svc.ApproveDelay(context.Background(), rec.ID)
	assert.ErrorIs(t, err, punch.ErrNoActiveSession)
	assert.Equal(t, delay.DelayStatusPending, f.repo.records[rec.ID].Status)
}

func TestListDelays_StatusFilter(t *testing.T) {
	f := newDelayFixture(t)
	rec := seedPendingDelay(t, f, "emp-1")
	ctx := authedContext(t, "manager-1")

	_, err := f.svc.ApproveDelay(ctx, rec.ID)
	require.NoError(t, err)

	pending := delay.DelayStatusPending
	resp, err := f.svc.ListDelays(ctx, delay.DelayFilter{Status: &pending})
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.TotalCount)

	approved := delay.DelayStatusApproved
	resp, err = f.svc.ListDelays(ctx, delay.DelayFilter{Status: &approved})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.TotalCount)
}
