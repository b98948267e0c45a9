package http

import (
	"encoding/json"
	"net/http"

	"github.com/genba-cloud/genba-attendance/internal/domain/roster"
	"github.com/genba-cloud/genba-attendance/internal/handler/http/response"
	siteService "github.com/genba-cloud/genba-attendance/internal/service/site"
	"github.com/go-chi/chi/v5"
)

type RosterHandler interface {
	Workers(w http.ResponseWriter, r *http.Request)
	Sites(w http.ResponseWriter, r *http.Request)
	SiteQRCode(w http.ResponseWriter, r *http.Request)
	Scan(w http.ResponseWriter, r *http.Request)
}

type rosterHandlerImpl struct {
	roster      roster.Provider
	siteService siteService.Service
}

func NewRosterHandler(rosterProvider roster.Provider, siteSvc siteService.Service) RosterHandler {
	return &rosterHandlerImpl{
		roster:      rosterProvider,
		siteService: siteSvc,
	}
}

// Workers implements RosterHandler.
func (h *rosterHandlerImpl) Workers(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.roster.Workers())
}

// Sites implements RosterHandler.
func (h *rosterHandlerImpl) Sites(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.roster.Sites())
}

// SiteQRCode implements RosterHandler. Serves the printable gate QR code.
func (h *rosterHandlerImpl) SiteQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.siteService.QRCodePNG(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

// Scan implements RosterHandler.
func (h *rosterHandlerImpl) Scan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Payload string `json:"payload"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.Payload == "" {
		response.BadRequest(w, "payload is required", nil)
		return
	}

	result, err := h.siteService.ResolveScan(r.Context(), req.Payload)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
