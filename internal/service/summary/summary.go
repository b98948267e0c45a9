package summary

import (
	"sort"
	"strings"
	"time"

	"github.com/genba-cloud/genba-attendance/internal/domain/attendance"
	"github.com/genba-cloud/genba-attendance/internal/domain/roster"
	"github.com/genba-cloud/genba-attendance/internal/domain/session"
)

// CompanyStat is one row of the monthly per-company aggregate. WorkerCount is
// the registered headcount, not the number of workers who attended; man-days
// count records regardless of hours.
type CompanyStat struct {
	Company      string  `json:"company"`
	WorkerCount  int     `json:"workerCount"`
	TotalManDays int     `json:"totalManDays"`
	TotalHours   float64 `json:"totalHours"`
}

// SiteStat is one row of the monthly per-site aggregate.
type SiteStat struct {
	SiteID            string  `json:"siteId"`
	SiteName          string  `json:"siteName"`
	Address           string  `json:"address"`
	UniqueWorkerCount int     `json:"uniqueWorkerCount"`
	TotalManDays      int     `json:"totalManDays"`
	TotalHours        float64 `json:"totalHours"`
}

// DailySiteStat is one site's attendance for a single day.
type DailySiteStat struct {
	SiteID        string  `json:"siteId"`
	SiteName      string  `json:"siteName"`
	AttendeeCount int     `json:"attendeeCount"`
	TotalHours    float64 `json:"totalHours"`
}

// WorkerMetric carries the per-worker columns of the attendance table:
// monthly days present and today's duration, with "now" standing in for a
// missing check-out.
type WorkerMetric struct {
	Worker      roster.Worker `json:"worker"`
	DaysPresent int           `json:"daysPresent"`
	WorkHours   float64       `json:"workHours"`
}

// CompanySummary aggregates records per company for the month containing
// date, optionally narrowed to one site. Rows are sorted by total hours
// descending; ties keep the companies' first-seen order.
func CompanySummary(workers []roster.Worker, records []attendance.Record, date, filterSiteID string) []CompanyStat {
	monthPrefix := attendance.MonthPrefix(date)

	workerCompany := make(map[string]string, len(workers))
	for _, w := range workers {
		workerCompany[w.ID] = w.Company
	}

	companies := roster.Companies(workers)
	stats := make([]CompanyStat, 0, len(companies))
	index := make(map[string]int, len(companies))
	for _, company := range companies {
		index[company] = len(stats)
		stat := CompanyStat{Company: company}
		for _, w := range workers {
			if w.Company == company {
				stat.WorkerCount++
			}
		}
		stats = append(stats, stat)
	}

	for _, r := range records {
		company, ok := workerCompany[r.WorkerID]
		if !ok || !r.InMonth(monthPrefix) {
			continue
		}
		if filterSiteID != "" && r.SiteID != filterSiteID {
			continue
		}
		i := index[company]
		stats[i].TotalManDays++
		stats[i].TotalHours += r.Hours()
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalHours > stats[j].TotalHours
	})
	return stats
}

// SiteSummary aggregates records per site for the month containing date,
// optionally narrowed to workers of one company. Rows are sorted by total
// hours descending; ties keep the sites' configured order.
func SiteSummary(sites []roster.Site, workers []roster.Worker, records []attendance.Record, date, filterCompany string) []SiteStat {
	monthPrefix := attendance.MonthPrefix(date)

	workerCompany := make(map[string]string, len(workers))
	for _, w := range workers {
		workerCompany[w.ID] = w.Company
	}

	stats := make([]SiteStat, 0, len(sites))
	for _, site := range sites {
		stat := SiteStat{SiteID: site.ID, SiteName: site.Name, Address: site.Address}
		attendees := make(map[string]bool)
		for _, r := range records {
			if r.SiteID != site.ID || !r.InMonth(monthPrefix) {
				continue
			}
			if filterCompany != "" && workerCompany[r.WorkerID] != filterCompany {
				continue
			}
			attendees[r.WorkerID] = true
			stat.TotalManDays++
			stat.TotalHours += r.Hours()
		}
		stat.UniqueWorkerCount = len(attendees)
		stats = append(stats, stat)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalHours > stats[j].TotalHours
	})
	return stats
}

// DailySiteStats aggregates records per site for one exact date, in site
// order.
func DailySiteStats(sites []roster.Site, records []attendance.Record, date string) []DailySiteStat {
	stats := make([]DailySiteStat, 0, len(sites))
	for _, site := range sites {
		stat := DailySiteStat{SiteID: site.ID, SiteName: site.Name}
		for _, r := range records {
			if r.SiteID != site.ID || r.Date != date {
				continue
			}
			stat.AttendeeCount++
			stat.TotalHours += r.Hours()
		}
		stats = append(stats, stat)
	}
	return stats
}

// WorkerMetrics computes the table columns for each worker passing the
// company/name filters. Records are narrowed by the site filter first; days
// present count the month containing date, work hours cover date itself.
func WorkerMetrics(workers []roster.Worker, records []attendance.Record, date string, filters session.Filters, now time.Time) []WorkerMetric {
	monthPrefix := attendance.MonthPrefix(date)

	var visible []attendance.Record
	if filters.SiteID == "" {
		visible = records
	} else {
		for _, r := range records {
			if r.SiteID == filters.SiteID {
				visible = append(visible, r)
			}
		}
	}

	var metrics []WorkerMetric
	for _, w := range workers {
		if filters.Company != "" && w.Company != filters.Company {
			continue
		}
		if filters.Name != "" && !strings.Contains(w.Name, filters.Name) {
			continue
		}

		metric := WorkerMetric{Worker: w}
		for _, r := range visible {
			if r.WorkerID != w.ID {
				continue
			}
			if r.InMonth(monthPrefix) {
				metric.DaysPresent++
			}
			if r.Date == date && metric.WorkHours == 0 {
				metric.WorkHours = r.HoursUntil(now)
			}
		}
		metrics = append(metrics, metric)
	}
	return metrics
}
