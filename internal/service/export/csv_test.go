package export

import (
	"strings"
	"testing"

	"github.com/genba-cloud/genba-attendance/internal/domain/attendance"
	"github.com/genba-cloud/genba-attendance/internal/domain/roster"
	"github.com/genba-cloud/genba-attendance/internal/domain/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exportTestWorkers = []roster.Worker{
	{ID: "w1", Name: "山田 太郎", Company: "山田建設", Occupation: "現場監督"},
	{ID: "w2", Name: "佐藤 健太", Company: "佐藤工業", Occupation: "鳶職"},
}

var exportTestSites = []roster.Site{
	{ID: "s1", Name: "渋谷桜丘プロジェクト A工区"},
}

func TestBuildCSV_RendersHeaderAndRow(t *testing.T) {
	records := []attendance.Record{{
		ID:           "r1",
		WorkerID:     "w1",
		SiteID:       "s1",
		Date:         "2024-05-01",
		CheckInTime:  "2024-05-01T08:00:00Z",
		CheckOutTime: "2024-05-01T17:00:00Z",
		Status:       attendance.StatusCheckedOut,
	}}

	body := BuildCSV(exportTestWorkers, exportTestSites, records, "2024-05-10", session.Filters{})

	require.True(t, strings.HasPrefix(body, "\uFEFF"))
	lines := strings.Split(strings.TrimPrefix(body, "\uFEFF"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"日付","現場名","会社名","作業員名","職種","入場時間","退場時間","状態"`, lines[0])
	assert.Equal(t, `"2024-05-01","渋谷桜丘プロジェクト A工区","山田建設","山田 太郎","現場監督","08:00","17:00","退場済"`, lines[1])
}

func TestBuildCSV_OpenRecordShowsWorkingStatus(t *testing.T) {
	records := []attendance.Record{{
		ID:          "r1",
		WorkerID:    "w1",
		SiteID:      "s1",
		Date:        "2024-05-01",
		CheckInTime: "2024-05-01T08:00:00Z",
		Status:      attendance.StatusCheckedIn,
	}}

	body := BuildCSV(exportTestWorkers, exportTestSites, records, "2024-05-10", session.Filters{})

	lines := strings.Split(body, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], `"08:00","","作業中"`)
}

func TestBuildCSV_FiltersAndMonthScope(t *testing.T) {
	records := []attendance.Record{
		{ID: "r1", WorkerID: "w1", SiteID: "s1", Date: "2024-05-01", Status: attendance.StatusCheckedOut},
		{ID: "r2", WorkerID: "w2", SiteID: "s1", Date: "2024-05-02", Status: attendance.StatusCheckedOut},
		{ID: "r3", WorkerID: "w1", SiteID: "s1", Date: "2024-06-01", Status: attendance.StatusCheckedOut},
	}

	body := BuildCSV(exportTestWorkers, exportTestSites, records, "2024-05-10", session.Filters{Company: "山田建設"})

	lines := strings.Split(body, "\n")
	// Header plus the single May record of the filtered company.
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "2024-05-01")
}

func TestBuildCSV_RowsSortedByDate(t *testing.T) {
	records := []attendance.Record{
		{ID: "r2", WorkerID: "w1", SiteID: "s1", Date: "2024-05-20", Status: attendance.StatusCheckedOut},
		{ID: "r1", WorkerID: "w1", SiteID: "s1", Date: "2024-05-03", Status: attendance.StatusCheckedOut},
	}

	body := BuildCSV(exportTestWorkers, exportTestSites, records, "2024-05-10", session.Filters{})

	lines := strings.Split(body, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "2024-05-03")
	assert.Contains(t, lines[2], "2024-05-20")
}

func TestBuildCSV_QuotesEmbeddedQuotes(t *testing.T) {
	workers := []roster.Worker{{ID: "w1", Name: `山田 "太郎"`, Company: "山田建設"}}
	records := []attendance.Record{
		{ID: "r1", WorkerID: "w1", SiteID: "s1", Date: "2024-05-01", Status: attendance.StatusCheckedOut},
	}

	body := BuildCSV(workers, exportTestSites, records, "2024-05-10", session.Filters{})

	assert.Contains(t, body, `"山田 ""太郎"""`)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "genba_export_2024-05.csv", Filename("2024-05-10"))
}
