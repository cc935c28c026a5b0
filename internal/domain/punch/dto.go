package punch

import "github.com/cendana-hr/attendance-backend-go/internal/pkg/timeutil"

// ========================================
// PUNCH DTOs
// ========================================

type PunchRecordResponse struct {
	ID         string  `json:"id,omitempty"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	MorningIn  *string `json:"morning_in"`
	LunchOut   *string `json:"lunch_out"`
	LunchIn    *string `json:"lunch_in"`
	EveningOut *string `json:"evening_out"`
	State      string  `json:"state"`
}

func timeOfDayPtrToString(t *timeutil.TimeOfDay) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}

// MapRecordToResponse converts a DailyPunchRecord entity to its response
// shape. Works on an absent (nil) record too, producing the empty-day view.
func MapRecordToResponse(employeeID string, date string, record *DailyPunchRecord) PunchRecordResponse {
	resp := PunchRecordResponse{
		EmployeeID: employeeID,
		Date:       date,
		State:      record.State().String(),
	}
	if record == nil {
		return resp
	}
	resp.ID = record.ID
	resp.EmployeeID = record.EmployeeID
	resp.Date = record.Date.Format("2006-01-02")
	resp.MorningIn = timeOfDayPtrToString(record.MorningIn)
	resp.LunchOut = timeOfDayPtrToString(record.LunchOut)
	resp.LunchIn = timeOfDayPtrToString(record.LunchIn)
	resp.EveningOut = timeOfDayPtrToString(record.EveningOut)
	return resp
}
