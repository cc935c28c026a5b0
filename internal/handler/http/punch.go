package http

import (
	"net/http"
	"time"

	"github.com/cendana-hr/attendance-backend-go/internal/domain/punch"
	"github.com/cendana-hr/attendance-backend-go/internal/handler/http/response"
)

type PunchHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
}

type punchHandlerImpl struct {
	punchService punch.PunchService
}

func NewPunchHandler(punchService punch.PunchService) PunchHandler {
	return &punchHandlerImpl{punchService: punchService}
}

// Record implements PunchHandler. The request carries no body: identity
// comes from the session token and the timestamp is server-side. Which
// checkpoint the punch fills is the sequencer's decision alone.
func (h *punchHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	result, err := h.punchService.RecordPunch(r.Context(), time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded", result)
}

// GetToday implements PunchHandler.
func (h *punchHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	result, err := h.punchService.GetMyRecord(r.Context(), time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
