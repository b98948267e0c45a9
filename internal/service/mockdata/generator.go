package mockdata

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/genba-cloud/genba-attendance/internal/domain/attendance"
	"github.com/genba-cloud/genba-attendance/internal/domain/roster"
)

// GenerateMonth synthesizes a month of attendance history at one site:
// Sundays are skipped, Saturdays half the time, and each worker shows up on
// 80% of the remaining days, checking in between 07:00 and 08:00 and out
// between 17:00 and 18:00 local time.
//
// Record ids are deterministic per (date, worker), so regenerating the same
// month collides on id instead of duplicating rows.
func GenerateMonth(workers []roster.Worker, site roster.Site, year int, month time.Month, rnd *rand.Rand) []attendance.Record {
	var records []attendance.Record

	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
		switch date.Weekday() {
		case time.Sunday:
			continue
		case time.Saturday:
			if rnd.Float64() > 0.5 {
				continue
			}
		}
		dateStr := date.Format("2006-01-02")

		for _, w := range workers {
			if rnd.Float64() > 0.8 {
				continue
			}
			checkIn := clockTime(date, 7+rnd.Float64())
			checkOut := clockTime(date, 17+rnd.Float64())

			records = append(records, attendance.Record{
				ID:           fmt.Sprintf("static-%s-%s", dateStr, w.ID),
				WorkerID:     w.ID,
				SiteID:       site.ID,
				Date:         dateStr,
				CheckInTime:  checkIn.Format(time.RFC3339),
				CheckOutTime: checkOut.Format(time.RFC3339),
				Status:       attendance.StatusCheckedOut,
			})
		}
	}
	return records
}

// clockTime places a fractional hour-of-day onto the given calendar day.
func clockTime(day time.Time, hour float64) time.Time {
	h := int(hour)
	m := int((hour - float64(h)) * 60)
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location())
}
