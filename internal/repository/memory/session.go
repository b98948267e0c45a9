package memory

import (
	"time"

	"github.com/genba-cloud/genba-attendance/internal/domain/roster"
	"github.com/genba-cloud/genba-attendance/internal/domain/session"
)

// Snapshot implements session.Store.
func (s *Store) Snapshot() session.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := session.Snapshot{
		ViewMode:          s.viewMode,
		SelectedDate:      s.selectedDate,
		LastActionMessage: s.lastActionMessage,
		Filters:           s.filters,
		AIAnalysis:        s.aiAnalysis,
		IsAnalyzing:       s.isAnalyzing,
	}
	if s.currentUser != nil {
		w := *s.currentUser
		snap.CurrentUser = &w
	}
	if s.scannedSite != nil {
		site := *s.scannedSite
		snap.ScannedSite = &site
	}
	return snap
}

// SetViewMode implements session.Store.
func (s *Store) SetViewMode(mode session.ViewMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelScanResetLocked()
	s.viewMode = mode
}

// SetScannedSite implements session.Store.
func (s *Store) SetScannedSite(site *roster.Site) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelScanResetLocked()
	s.scannedSite = site
	s.lastActionMessage = ""
}

// SetSelectedDate implements session.Store. Any string is accepted; an
// invalid date just stops matching records downstream.
func (s *Store) SetSelectedDate(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedDate = date
}

// SetFilterSiteID implements session.Store.
func (s *Store) SetFilterSiteID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.SiteID = id
}

// SetFilterCompany implements session.Store.
func (s *Store) SetFilterCompany(company string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Company = company
}

// SetFilterName implements session.Store.
func (s *Store) SetFilterName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Name = name
}

// SetCurrentUser implements session.Store.
func (s *Store) SetCurrentUser(worker *roster.Worker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser = worker
}

// SetLastActionMessage implements session.Store.
func (s *Store) SetLastActionMessage(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActionMessage = msg
}

// SetAnalysis implements session.Store.
func (s *Store) SetAnalysis(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.aiAnalysis = text
}

// SetAnalyzing implements session.Store.
func (s *Store) SetAnalyzing(analyzing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isAnalyzing = analyzing
}

// ScheduleScanReset implements session.Store. The previous timer, if any, is
// replaced.
func (s *Store) ScheduleScanReset(delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelScanResetLocked()
	gen := s.resetGen
	s.resetTimer = time.AfterFunc(delay, func() {
		s.applyScanReset(gen)
	})
}

func (s *Store) applyScanReset(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.resetGen {
		// Cancelled or rescheduled after this timer was armed.
		return
	}
	s.resetTimer = nil
	s.viewMode = session.ViewDashboard
	s.scannedSite = nil
}

func (s *Store) cancelScanResetLocked() {
	if s.resetTimer != nil {
		s.resetTimer.Stop()
		s.resetTimer = nil
	}
	s.resetGen++
}
