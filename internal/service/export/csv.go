package export

import (
	"sort"
	"strings"

	"github.com/genba-cloud/genba-attendance/internal/domain/attendance"
	"github.com/genba-cloud/genba-attendance/internal/domain/roster"
	"github.com/genba-cloud/genba-attendance/internal/domain/session"
)

var csvHeader = []string{"日付", "現場名", "会社名", "作業員名", "職種", "入場時間", "退場時間", "状態"}

// BuildCSV renders the month of records matching the filters as CSV text:
// UTF-8 with a leading BOM so spreadsheet apps pick up the Japanese header,
// every field double-quoted, rows sorted by date ascending.
func BuildCSV(workers []roster.Worker, sites []roster.Site, records []attendance.Record, date string, filters session.Filters) string {
	monthPrefix := attendance.MonthPrefix(date)

	workerByID := make(map[string]roster.Worker, len(workers))
	for _, w := range workers {
		if filters.Company != "" && w.Company != filters.Company {
			continue
		}
		if filters.Name != "" && !strings.Contains(w.Name, filters.Name) {
			continue
		}
		workerByID[w.ID] = w
	}
	siteByID := make(map[string]roster.Site, len(sites))
	for _, s := range sites {
		siteByID[s.ID] = s
	}

	var rows []attendance.Record
	for _, r := range records {
		if filters.SiteID != "" && r.SiteID != filters.SiteID {
			continue
		}
		if !r.InMonth(monthPrefix) {
			continue
		}
		if _, ok := workerByID[r.WorkerID]; !ok {
			continue
		}
		rows = append(rows, r)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date < rows[j].Date
	})

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, quoteRow(csvHeader))
	for _, r := range rows {
		w := workerByID[r.WorkerID]
		site := siteByID[r.SiteID]
		lines = append(lines, quoteRow([]string{
			r.Date,
			site.Name,
			w.Company,
			w.Name,
			w.Occupation,
			clockLabel(r.CheckInTime),
			clockLabel(r.CheckOutTime),
			statusLabel(r.Status),
		}))
	}

	return "\uFEFF" + strings.Join(lines, "\n")
}

// Filename names the download after the exported month.
func Filename(date string) string {
	return "genba_export_" + attendance.MonthPrefix(date) + ".csv"
}

// clockLabel formats a timestamp as HH:MM in its own offset; unparseable or
// missing timestamps render empty.
func clockLabel(ts string) string {
	t, ok := attendance.ParseTime(ts)
	if !ok {
		return ""
	}
	return t.Format("15:04")
}

func statusLabel(s attendance.Status) string {
	if s == attendance.StatusCheckedIn {
		return "作業中"
	}
	return "退場済"
}

// quoteRow double-quotes every field, doubling embedded quotes.
func quoteRow(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}
