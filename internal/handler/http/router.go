package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/genba-cloud/genba-attendance/internal/config"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	cfg *config.Config,
	sessionHandler SessionHandler,
	attendanceHandler AttendanceHandler,
	summaryHandler SummaryHandler,
	analysisHandler AnalysisHandler,
	exportHandler ExportHandler,
	rosterHandler RosterHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "genba-attendance"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/session", func(r chi.Router) {
			r.Get("/", sessionHandler.Get)
			r.Put("/view-mode", sessionHandler.SetViewMode)
			r.Delete("/scanned-site", sessionHandler.ClearScannedSite)
			r.Put("/selected-date", sessionHandler.SetSelectedDate)
			r.Put("/filters", sessionHandler.SetFilters)
			r.Put("/current-user", sessionHandler.SetCurrentUser)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", attendanceHandler.List)
			r.Post("/check-in", attendanceHandler.CheckIn)
			r.Post("/check-out", attendanceHandler.CheckOut)
			r.Put("/records", attendanceHandler.Upsert)
			r.Delete("/records/{id}", attendanceHandler.Delete)
			r.Post("/load-month", attendanceHandler.LoadMonth)
		})

		r.Route("/summaries", func(r chi.Router) {
			r.Get("/companies", summaryHandler.Companies)
			r.Get("/sites", summaryHandler.Sites)
			r.Get("/daily", summaryHandler.Daily)
			r.Get("/workers", summaryHandler.Workers)
		})

		r.Route("/analysis", func(r chi.Router) {
			r.Get("/", analysisHandler.Get)
			r.Post("/", analysisHandler.Run)
		})

		r.Get("/export/csv", exportHandler.ExportCSV)

		r.Get("/workers", rosterHandler.Workers)

		r.Route("/sites", func(r chi.Router) {
			r.Get("/", rosterHandler.Sites)
			r.Get("/{id}/qrcode.png", rosterHandler.SiteQRCode)
			r.Post("/scan", rosterHandler.Scan)
		})
	})
	return r
}
