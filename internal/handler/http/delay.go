package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cendana-hr/attendance-backend-go/internal/domain/delay"
	"github.com/cendana-hr/attendance-backend-go/internal/handler/http/response"
	"github.com/cendana-hr/attendance-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type DelayHandler interface {
	GetMyDelays(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type delayHandlerImpl struct {
	delayService delay.DelayService
}

func NewDelayHandler(delayService delay.DelayService) DelayHandler {
	return &delayHandlerImpl{delayService: delayService}
}

func parseDelayFilter(r *http.Request) delay.DelayFilter {
	filter := delay.DelayFilter{}

	if page := r.URL.Query().Get("page"); page != "" {
		if v, err := strconv.Atoi(page); err == nil {
			filter.Page = v
		}
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		if v, err := strconv.Atoi(limit); err == nil {
			filter.Limit = v
		}
	}
	if status := r.URL.Query().Get("status"); status != "" {
		s := delay.DelayStatus(status)
		switch s {
		case delay.DelayStatusPending, delay.DelayStatusApproved, delay.DelayStatusRejected:
			filter.Status = &s
		}
	}
	filter.Normalize()

	return filter
}

// GetMyDelays implements DelayHandler.
func (h *delayHandlerImpl) GetMyDelays(w http.ResponseWriter, r *http.Request) {
	result, err := h.delayService.GetMyDelays(r.Context(), parseDelayFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements DelayHandler.
func (h *delayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.delayService.ListDelays(r.Context(), parseDelayFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Approve implements DelayHandler.
func (h *delayHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.ValidationError(w, map[string]string{"id": "invalid delay record id"})
		return
	}

	result, err := h.delayService.ApproveDelay(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Delay approved", result)
}

// Reject implements DelayHandler.
func (h *delayHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.ValidationError(w, map[string]string{"id": "invalid delay record id"})
		return
	}

	var req delay.RejectDelayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode reject request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.delayService.RejectDelay(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Delay rejected", result)
}
