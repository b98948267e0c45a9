package memory

import (
	"sync"
	"time"

	"github.com/genba-cloud/genba-attendance/internal/domain/attendance"
	"github.com/genba-cloud/genba-attendance/internal/domain/roster"
	"github.com/genba-cloud/genba-attendance/internal/domain/session"
)

// Store is the single in-memory state container: the seeded rosters, the
// attendance record collection and the dashboard session state. Services are
// its only writers. A Store is safe for concurrent use; records live in a
// plain slice guarded by one RW mutex. Last write wins, no durability.
type Store struct {
	mu sync.RWMutex

	workers []roster.Worker
	sites   []roster.Site

	records []attendance.Record

	currentUser       *roster.Worker
	viewMode          session.ViewMode
	scannedSite       *roster.Site
	selectedDate      string
	lastActionMessage string
	filters           session.Filters
	aiAnalysis        string
	isAnalyzing       bool

	// Pending scan reset. The generation counter keeps a stale timer
	// callback from clobbering state set after it was cancelled.
	resetTimer *time.Timer
	resetGen   uint64
}

var (
	_ roster.Provider        = (*Store)(nil)
	_ attendance.RecordStore = (*Store)(nil)
	_ session.Store          = (*Store)(nil)
)

// NewStore seeds a store with the given rosters. The current user is looked
// up by id; an unknown id leaves the kiosk logged out. The selected date
// starts at today.
func NewStore(workers []roster.Worker, sites []roster.Site, currentWorkerID string) *Store {
	s := &Store{
		workers:      workers,
		sites:        sites,
		viewMode:     session.ViewDashboard,
		selectedDate: time.Now().Format("2006-01-02"),
	}
	for i := range workers {
		if workers[i].ID == currentWorkerID {
			w := workers[i]
			s.currentUser = &w
			break
		}
	}
	return s
}

// Workers implements roster.Provider.
func (s *Store) Workers() []roster.Worker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]roster.Worker, len(s.workers))
	copy(out, s.workers)
	return out
}

// Sites implements roster.Provider.
func (s *Store) Sites() []roster.Site {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]roster.Site, len(s.sites))
	copy(out, s.sites)
	return out
}

// WorkerByID implements roster.Provider.
func (s *Store) WorkerByID(id string) (roster.Worker, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, w := range s.workers {
		if w.ID == id {
			return w, true
		}
	}
	return roster.Worker{}, false
}

// SiteByID implements roster.Provider.
func (s *Store) SiteByID(id string) (roster.Site, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, site := range s.sites {
		if site.ID == id {
			return site, true
		}
	}
	return roster.Site{}, false
}

// SiteByQRCode implements roster.Provider.
func (s *Store) SiteByQRCode(value string) (roster.Site, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, site := range s.sites {
		if site.QRCodeValue == value {
			return site, true
		}
	}
	return roster.Site{}, false
}
