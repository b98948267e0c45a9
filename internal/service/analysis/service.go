package analysis

import (
	"context"
	"log/slog"

	"github.com/genba-cloud/genba-attendance/internal/domain/attendance"
	"github.com/genba-cloud/genba-attendance/internal/domain/roster"
	"github.com/genba-cloud/genba-attendance/internal/domain/session"
	"github.com/genba-cloud/genba-attendance/internal/pkg/gemini"
)

// User-facing fallback strings, verbatim from the dashboard.
const (
	emptyReportText  = "分析データを生成できませんでした。"
	failedReportText = "エラーが発生しました。もう一度お試しください。"
)

// maxReportEntries caps the sample handed to the model.
const maxReportEntries = 50

// Reporter turns an enriched attendance sample into a narrative report. The
// Gemini client implements it.
type Reporter interface {
	GenerateProductivityReport(ctx context.Context, entries []gemini.ReportEntry) (string, error)
}

// Service runs the AI productivity analysis over the selected month.
type Service interface {
	// Run analyzes the month containing the selected date and stores the
	// resulting text in the session. Failures degrade to a fixed fallback
	// string; Run itself never returns an error from the model call.
	Run(ctx context.Context) (string, error)
}

type AnalysisServiceImpl struct {
	roster   roster.Provider
	records  attendance.RecordStore
	session  session.Store
	reporter Reporter
}

func NewAnalysisService(rosterProvider roster.Provider, records attendance.RecordStore, sessionStore session.Store, reporter Reporter) Service {
	return &AnalysisServiceImpl{
		roster:   rosterProvider,
		records:  records,
		session:  sessionStore,
		reporter: reporter,
	}
}

// Run implements Service.
func (s *AnalysisServiceImpl) Run(ctx context.Context) (string, error) {
	s.session.SetAnalyzing(true)
	defer s.session.SetAnalyzing(false)

	snap := s.session.Snapshot()
	monthPrefix := attendance.MonthPrefix(snap.SelectedDate)

	occupationByID := make(map[string]string)
	for _, w := range s.roster.Workers() {
		occupationByID[w.ID] = w.Occupation
	}

	var entries []gemini.ReportEntry
	for _, r := range s.records.List() {
		if !r.InMonth(monthPrefix) {
			continue
		}
		entries = append(entries, gemini.ReportEntry{
			Date:  r.Date,
			Role:  occupationByID[r.WorkerID],
			Start: r.CheckInTime,
			End:   r.CheckOutTime,
		})
		if len(entries) == maxReportEntries {
			break
		}
	}

	text, err := s.reporter.GenerateProductivityReport(ctx, entries)
	if err != nil {
		slog.Error("productivity report generation failed", "month", monthPrefix, "error", err)
		text = failedReportText
	} else if text == "" {
		text = emptyReportText
	}

	s.session.SetAnalysis(text)
	return text, nil
}
