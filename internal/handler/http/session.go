package http

import (
	"encoding/json"
	"net/http"

	"github.com/genba-cloud/genba-attendance/internal/domain/session"
	"github.com/genba-cloud/genba-attendance/internal/handler/http/response"
	sessionService "github.com/genba-cloud/genba-attendance/internal/service/session"
)

type SessionHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	SetViewMode(w http.ResponseWriter, r *http.Request)
	ClearScannedSite(w http.ResponseWriter, r *http.Request)
	SetSelectedDate(w http.ResponseWriter, r *http.Request)
	SetFilters(w http.ResponseWriter, r *http.Request)
	SetCurrentUser(w http.ResponseWriter, r *http.Request)
}

type sessionHandlerImpl struct {
	sessionService sessionService.Service
}

func NewSessionHandler(svc sessionService.Service) SessionHandler {
	return &sessionHandlerImpl{sessionService: svc}
}

// Get implements SessionHandler.
func (h *sessionHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	snap, err := h.sessionService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, snap)
}

// SetViewMode implements SessionHandler.
func (h *sessionHandlerImpl) SetViewMode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ViewMode session.ViewMode `json:"viewMode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := h.sessionService.SetViewMode(r.Context(), req.ViewMode); err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, nil)
}

// ClearScannedSite implements SessionHandler.
func (h *sessionHandlerImpl) ClearScannedSite(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionService.ClearScannedSite(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, nil)
}

// SetSelectedDate implements SessionHandler.
func (h *sessionHandlerImpl) SetSelectedDate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := h.sessionService.SetSelectedDate(r.Context(), req.Date); err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, nil)
}

// SetFilters implements SessionHandler.
func (h *sessionHandlerImpl) SetFilters(w http.ResponseWriter, r *http.Request) {
	var req sessionService.UpdateFiltersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := h.sessionService.SetFilters(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, nil)
}

// SetCurrentUser implements SessionHandler.
func (h *sessionHandlerImpl) SetCurrentUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WorkerID string `json:"workerId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := h.sessionService.SetCurrentUser(r.Context(), req.WorkerID); err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, nil)
}
