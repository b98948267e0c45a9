package attendance

import (
	"strings"
	"time"
)

type Status string

const (
	StatusCheckedIn  Status = "CHECKED_IN"
	StatusCheckedOut Status = "CHECKED_OUT"
	StatusAbsent     Status = "ABSENT"
)

// Valid reports whether s is one of the known attendance statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusCheckedIn, StatusCheckedOut, StatusAbsent:
		return true
	}
	return false
}

// Record is one worker-day at one site. Timestamps are RFC 3339 strings; an
// empty CheckOutTime marks an open record (worker still on site). Date is the
// calendar day in YYYY-MM-DD form, without timezone.
type Record struct {
	ID           string `json:"id"`
	WorkerID     string `json:"workerId"`
	SiteID       string `json:"siteId"`
	Date         string `json:"date"`
	CheckInTime  string `json:"checkInTime"`
	CheckOutTime string `json:"checkOutTime,omitempty"`
	Status       Status `json:"status"`
}

// Open reports whether the worker checked in but has not checked out yet.
func (r Record) Open() bool {
	return r.CheckInTime != "" && r.CheckOutTime == ""
}

// InMonth matches the record's date against a YYYY-MM prefix. This is a pure
// string comparison: malformed dates simply never match.
func (r Record) InMonth(prefix string) bool {
	return strings.HasPrefix(r.Date, prefix)
}

// Hours returns the worked duration in fractional hours. Records missing
// either timestamp, or with an unparseable one, contribute zero.
func (r Record) Hours() float64 {
	in, ok := ParseTime(r.CheckInTime)
	if !ok {
		return 0
	}
	out, ok := ParseTime(r.CheckOutTime)
	if !ok {
		return 0
	}
	return out.Sub(in).Hours()
}

// HoursUntil returns the worked duration in fractional hours, substituting
// now for a missing check-out. Used for the "currently on site" metric.
func (r Record) HoursUntil(now time.Time) float64 {
	in, ok := ParseTime(r.CheckInTime)
	if !ok {
		return 0
	}
	out, ok := ParseTime(r.CheckOutTime)
	if !ok {
		out = now
	}
	return out.Sub(in).Hours()
}

// ParseTime parses an RFC 3339 timestamp string. Empty or malformed values
// return false rather than an error; callers treat them as "not set".
func ParseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// MonthPrefix returns the YYYY-MM portion of a YYYY-MM-DD date string. Short
// inputs are returned unchanged so they keep failing to match anything.
func MonthPrefix(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}
