package session

import (
	"context"

	"github.com/genba-cloud/genba-attendance/internal/domain/roster"
	"github.com/genba-cloud/genba-attendance/internal/domain/session"
	"github.com/genba-cloud/genba-attendance/internal/pkg/validator"
)

// Service exposes the session state and its setters to the presentation
// layer. The setters are deliberately forgiving: dates and filter values are
// stored as-is, an invalid value just matches nothing downstream.
type Service interface {
	Get(ctx context.Context) (session.Snapshot, error)
	SetViewMode(ctx context.Context, mode session.ViewMode) error
	ClearScannedSite(ctx context.Context) error
	SetSelectedDate(ctx context.Context, date string) error
	SetFilters(ctx context.Context, req UpdateFiltersRequest) error
	SetCurrentUser(ctx context.Context, workerID string) error
}

// UpdateFiltersRequest carries partial filter updates; absent fields keep
// their current value.
type UpdateFiltersRequest struct {
	SiteID  *string `json:"siteId,omitempty"`
	Company *string `json:"company,omitempty"`
	Name    *string `json:"name,omitempty"`
}

type SessionServiceImpl struct {
	roster  roster.Provider
	session session.Store
}

func NewSessionService(rosterProvider roster.Provider, sessionStore session.Store) Service {
	return &SessionServiceImpl{
		roster:  rosterProvider,
		session: sessionStore,
	}
}

// Get implements Service.
func (s *SessionServiceImpl) Get(ctx context.Context) (session.Snapshot, error) {
	return s.session.Snapshot(), nil
}

// SetViewMode implements Service.
func (s *SessionServiceImpl) SetViewMode(ctx context.Context, mode session.ViewMode) error {
	if !mode.Valid() {
		return validator.ValidationErrors{{
			Field:   "viewMode",
			Message: "viewMode must be one of SCAN, DASHBOARD, ANALYSIS, COMPANY_SUMMARY, SITE_SUMMARY",
		}}
	}
	s.session.SetViewMode(mode)
	return nil
}

// ClearScannedSite implements Service. Scanning itself goes through the site
// service; the presentation layer only ever clears the scanned site.
func (s *SessionServiceImpl) ClearScannedSite(ctx context.Context) error {
	s.session.SetScannedSite(nil)
	return nil
}

// SetSelectedDate implements Service.
func (s *SessionServiceImpl) SetSelectedDate(ctx context.Context, date string) error {
	s.session.SetSelectedDate(date)
	return nil
}

// SetFilters implements Service.
func (s *SessionServiceImpl) SetFilters(ctx context.Context, req UpdateFiltersRequest) error {
	if req.SiteID != nil {
		s.session.SetFilterSiteID(*req.SiteID)
	}
	if req.Company != nil {
		s.session.SetFilterCompany(*req.Company)
	}
	if req.Name != nil {
		s.session.SetFilterName(*req.Name)
	}
	return nil
}

// SetCurrentUser implements Service. An empty worker id logs the kiosk out.
func (s *SessionServiceImpl) SetCurrentUser(ctx context.Context, workerID string) error {
	if workerID == "" {
		s.session.SetCurrentUser(nil)
		return nil
	}
	worker, ok := s.roster.WorkerByID(workerID)
	if !ok {
		return roster.ErrWorkerNotFound
	}
	s.session.SetCurrentUser(&worker)
	return nil
}
