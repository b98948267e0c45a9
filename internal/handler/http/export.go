package http

import (
	"fmt"
	"net/http"

	"github.com/genba-cloud/genba-attendance/internal/handler/http/response"
	exportService "github.com/genba-cloud/genba-attendance/internal/service/export"
)

type ExportHandler interface {
	ExportCSV(w http.ResponseWriter, r *http.Request)
}

type exportHandlerImpl struct {
	exportService exportService.Service
}

func NewExportHandler(svc exportService.Service) ExportHandler {
	return &exportHandlerImpl{exportService: svc}
}

// ExportCSV implements ExportHandler. Unlike the JSON endpoints this writes
// the raw CSV body so browsers treat it as a download.
func (h *exportHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	body, filename, err := h.exportService.ExportCSV(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}
