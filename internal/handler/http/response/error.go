package response

import (
	"errors"
	"net/http"

	"github.com/cendana-hr/attendance-backend-go/internal/domain/delay"
	"github.com/cendana-hr/attendance-backend-go/internal/domain/employee"
	"github.com/cendana-hr/attendance-backend-go/internal/domain/punch"
	"github.com/cendana-hr/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Punch domain errors
	case errors.Is(err, punch.ErrNoActiveSession):
		Unauthorized(w, "No active session")
	case errors.Is(err, punch.ErrDayComplete):
		Conflict(w, "All punches already recorded for today")
	case errors.Is(err, punch.ErrPunchConflict):
		Conflict(w, "Punch was recorded concurrently, please retry")
	case errors.Is(err, punch.ErrRecordNotFound):
		NotFound(w, "Punch record not found")

	// Delay domain errors
	case errors.Is(err, delay.ErrDelayNotFound):
		NotFound(w, "Delay record not found")
	case errors.Is(err, delay.ErrDelayAlreadyProcessed):
		Conflict(w, "Delay record already processed")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
