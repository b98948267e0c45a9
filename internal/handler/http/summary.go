package http

import (
	"net/http"

	"github.com/genba-cloud/genba-attendance/internal/handler/http/response"
	summaryService "github.com/genba-cloud/genba-attendance/internal/service/summary"
)

type SummaryHandler interface {
	Companies(w http.ResponseWriter, r *http.Request)
	Sites(w http.ResponseWriter, r *http.Request)
	Daily(w http.ResponseWriter, r *http.Request)
	Workers(w http.ResponseWriter, r *http.Request)
}

type summaryHandlerImpl struct {
	summaryService summaryService.Service
}

func NewSummaryHandler(svc summaryService.Service) SummaryHandler {
	return &summaryHandlerImpl{summaryService: svc}
}

// Companies implements SummaryHandler.
func (h *summaryHandlerImpl) Companies(w http.ResponseWriter, r *http.Request) {
	stats, err := h.summaryService.Companies(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}

// Sites implements SummaryHandler.
func (h *summaryHandlerImpl) Sites(w http.ResponseWriter, r *http.Request) {
	stats, err := h.summaryService.Sites(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}

// Daily implements SummaryHandler.
func (h *summaryHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	stats, err := h.summaryService.Daily(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}

// Workers implements SummaryHandler.
func (h *summaryHandlerImpl) Workers(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.summaryService.Workers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, metrics)
}
