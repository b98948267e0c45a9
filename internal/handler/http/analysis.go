package http

import (
	"net/http"

	"github.com/genba-cloud/genba-attendance/internal/handler/http/response"
	analysisService "github.com/genba-cloud/genba-attendance/internal/service/analysis"
	sessionService "github.com/genba-cloud/genba-attendance/internal/service/session"
)

type AnalysisHandler interface {
	Run(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type analysisHandlerImpl struct {
	analysisService analysisService.Service
	sessionService  sessionService.Service
}

func NewAnalysisHandler(analysisSvc analysisService.Service, sessionSvc sessionService.Service) AnalysisHandler {
	return &analysisHandlerImpl{
		analysisService: analysisSvc,
		sessionService:  sessionSvc,
	}
}

type analysisPayload struct {
	AIAnalysis  string `json:"aiAnalysis"`
	IsAnalyzing bool   `json:"isAnalyzing"`
}

// Run implements AnalysisHandler. The call is synchronous; the analyzing flag
// in the session exists for clients polling Get while a run is in flight.
func (h *analysisHandlerImpl) Run(w http.ResponseWriter, r *http.Request) {
	text, err := h.analysisService.Run(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, analysisPayload{AIAnalysis: text})
}

// Get implements AnalysisHandler.
func (h *analysisHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	snap, err := h.sessionService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, analysisPayload{
		AIAnalysis:  snap.AIAnalysis,
		IsAnalyzing: snap.IsAnalyzing,
	})
}
