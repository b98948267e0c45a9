package session

import (
	"time"

	"github.com/genba-cloud/genba-attendance/internal/domain/roster"
)

// Store holds the dashboard's UI and filter state. It is the session half of
// the in-memory state container; services are its only writers.
type Store interface {
	Snapshot() Snapshot

	// SetViewMode switches screens and cancels a pending scan reset.
	SetViewMode(mode ViewMode)

	// SetScannedSite replaces the scanned site, clears the last action
	// message and cancels a pending scan reset.
	SetScannedSite(site *roster.Site)

	SetSelectedDate(date string)
	SetFilterSiteID(id string)
	SetFilterCompany(company string)
	SetFilterName(name string)
	SetCurrentUser(worker *roster.Worker)
	SetLastActionMessage(msg string)
	SetAnalysis(text string)
	SetAnalyzing(analyzing bool)

	// ScheduleScanReset arms a timer that returns the view to the dashboard
	// and clears the scanned site after delay. Any intervening SetViewMode
	// or SetScannedSite cancels it, so a newer scan is never clobbered.
	ScheduleScanReset(delay time.Duration)
}
