package analysis

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/genba-cloud/genba-attendance/internal/domain/attendance"
	"github.com/genba-cloud/genba-attendance/internal/domain/roster"
	"github.com/genba-cloud/genba-attendance/internal/pkg/gemini"
	"github.com/genba-cloud/genba-attendance/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReporter struct {
	text    string
	err     error
	entries []gemini.ReportEntry
}

func (r *stubReporter) GenerateProductivityReport(ctx context.Context, entries []gemini.ReportEntry) (string, error) {
	r.entries = entries
	return r.text, r.err
}

func newAnalysisTestStore() *memory.Store {
	workers := []roster.Worker{
		{ID: "w1", Name: "山田 太郎", Company: "山田建設", Occupation: "現場監督"},
	}
	sites := []roster.Site{{ID: "s1", Name: "渋谷桜丘プロジェクト A工区"}}
	store := memory.NewStore(workers, sites, "w1")
	store.SetSelectedDate("2024-05-15")
	return store
}

func TestAnalysisService_Run_StoresReport(t *testing.T) {
	store := newAnalysisTestStore()
	store.Put(attendance.Record{
		ID: "r1", WorkerID: "w1", SiteID: "s1", Date: "2024-05-01",
		CheckInTime: "2024-05-01T08:00:00Z", CheckOutTime: "2024-05-01T17:00:00Z",
		Status: attendance.StatusCheckedOut,
	})
	store.Put(attendance.Record{
		ID: "r2", WorkerID: "w1", SiteID: "s1", Date: "2024-06-01",
		CheckInTime: "2024-06-01T08:00:00Z", CheckOutTime: "2024-06-01T17:00:00Z",
		Status: attendance.StatusCheckedOut,
	})
	reporter := &stubReporter{text: "## 出面分析\n順調です。"}
	svc := NewAnalysisService(store, store, store, reporter)

	text, err := svc.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "## 出面分析\n順調です。", text)

	// Only the selected month is sampled, enriched with the role.
	require.Len(t, reporter.entries, 1)
	assert.Equal(t, "2024-05-01", reporter.entries[0].Date)
	assert.Equal(t, "現場監督", reporter.entries[0].Role)

	snap := store.Snapshot()
	assert.Equal(t, text, snap.AIAnalysis)
	assert.False(t, snap.IsAnalyzing)
}

func TestAnalysisService_Run_EmptyResponseFallback(t *testing.T) {
	store := newAnalysisTestStore()
	reporter := &stubReporter{text: ""}
	svc := NewAnalysisService(store, store, store, reporter)

	text, err := svc.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "分析データを生成できませんでした。", text)
	assert.Equal(t, text, store.Snapshot().AIAnalysis)
}

func TestAnalysisService_Run_ReporterErrorFallback(t *testing.T) {
	store := newAnalysisTestStore()
	reporter := &stubReporter{err: errors.New("quota exceeded")}
	svc := NewAnalysisService(store, store, store, reporter)

	text, err := svc.Run(context.Background())

	// Model failures degrade to a user-facing message, not an error.
	assert.NoError(t, err)
	assert.Equal(t, "エラーが発生しました。もう一度お試しください。", text)
	assert.Equal(t, text, store.Snapshot().AIAnalysis)
	assert.False(t, store.Snapshot().IsAnalyzing)
}

func TestAnalysisService_Run_CapsSampleSize(t *testing.T) {
	store := newAnalysisTestStore()
	for day := 1; day <= 28; day++ {
		for _, suffix := range []string{"a", "b", "c"} {
			date := fmt.Sprintf("2024-05-%02d", day)
			store.Put(attendance.Record{
				ID:       fmt.Sprintf("r%s-%02d", suffix, day),
				WorkerID: "w1", SiteID: "s1",
				Date:        date,
				CheckInTime: date + "T08:00:00Z",
				Status:      attendance.StatusCheckedIn,
			})
		}
	}
	reporter := &stubReporter{text: "ok"}
	svc := NewAnalysisService(store, store, store, reporter)

	_, err := svc.Run(context.Background())

	assert.NoError(t, err)
	assert.Len(t, reporter.entries, maxReportEntries)
}
