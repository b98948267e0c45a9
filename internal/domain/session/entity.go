package session

import (
	"github.com/genba-cloud/genba-attendance/internal/domain/roster"
)

// ViewMode is the dashboard's active screen.
type ViewMode string

const (
	ViewScan           ViewMode = "SCAN"
	ViewDashboard      ViewMode = "DASHBOARD"
	ViewAnalysis       ViewMode = "ANALYSIS"
	ViewCompanySummary ViewMode = "COMPANY_SUMMARY"
	ViewSiteSummary    ViewMode = "SITE_SUMMARY"
)

func (m ViewMode) Valid() bool {
	switch m {
	case ViewScan, ViewDashboard, ViewAnalysis, ViewCompanySummary, ViewSiteSummary:
		return true
	}
	return false
}

// Filters narrow the dashboard tables and the CSV export. Empty fields match
// everything; no validation is applied, an unknown value just matches nothing.
type Filters struct {
	SiteID  string `json:"siteId"`
	Company string `json:"company"`
	Name    string `json:"name"`
}

// Snapshot is a point-in-time copy of the session state.
type Snapshot struct {
	CurrentUser       *roster.Worker `json:"currentUser"`
	ViewMode          ViewMode       `json:"viewMode"`
	ScannedSite       *roster.Site   `json:"scannedSite"`
	SelectedDate      string         `json:"selectedDate"`
	LastActionMessage string         `json:"lastActionMessage,omitempty"`
	Filters           Filters        `json:"filters"`
	AIAnalysis        string         `json:"aiAnalysis"`
	IsAnalyzing       bool           `json:"isAnalyzing"`
}
