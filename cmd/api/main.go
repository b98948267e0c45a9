package main

import (
	"fmt"
	"net/http"

	"github.com/genba-cloud/genba-attendance/internal/config"
	"github.com/genba-cloud/genba-attendance/internal/fixtures"
	appHTTP "github.com/genba-cloud/genba-attendance/internal/handler/http"
	"github.com/genba-cloud/genba-attendance/internal/pkg/gemini"
	"github.com/genba-cloud/genba-attendance/internal/repository/memory"
	analysisService "github.com/genba-cloud/genba-attendance/internal/service/analysis"
	attendanceService "github.com/genba-cloud/genba-attendance/internal/service/attendance"
	exportService "github.com/genba-cloud/genba-attendance/internal/service/export"
	sessionService "github.com/genba-cloud/genba-attendance/internal/service/session"
	siteService "github.com/genba-cloud/genba-attendance/internal/service/site"
	summaryService "github.com/genba-cloud/genba-attendance/internal/service/summary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	store := memory.NewStore(fixtures.DefaultWorkers(), fixtures.DefaultSites(), cfg.Demo.CurrentWorkerID)
	geminiClient := gemini.NewClient(cfg.Gemini)

	sessionSvc := sessionService.NewSessionService(store, store)
	attendanceSvc := attendanceService.NewAttendanceService(store, store, store, geminiClient, cfg.Demo.ScanResetDelay)
	summarySvc := summaryService.NewSummaryService(store, store, store)
	analysisSvc := analysisService.NewAnalysisService(store, store, store, geminiClient)
	exportSvc := exportService.NewExportService(store, store, store)
	siteSvc := siteService.NewSiteService(store, store, cfg.Demo.QRFallbackFirstSite)

	sessionHandler := appHTTP.NewSessionHandler(sessionSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	summaryHandler := appHTTP.NewSummaryHandler(summarySvc)
	analysisHandler := appHTTP.NewAnalysisHandler(analysisSvc, sessionSvc)
	exportHandler := appHTTP.NewExportHandler(exportSvc)
	rosterHandler := appHTTP.NewRosterHandler(store, siteSvc)

	router := appHTTP.NewRouter(
		cfg,
		sessionHandler,
		attendanceHandler,
		summaryHandler,
		analysisHandler,
		exportHandler,
		rosterHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
