package summary

import (
	"context"
	"time"

	"github.com/genba-cloud/genba-attendance/internal/domain/attendance"
	"github.com/genba-cloud/genba-attendance/internal/domain/roster"
	"github.com/genba-cloud/genba-attendance/internal/domain/session"
)

// Service binds the pure aggregation passes to the live store state.
type Service interface {
	Companies(ctx context.Context) ([]CompanyStat, error)
	Sites(ctx context.Context) ([]SiteStat, error)
	Daily(ctx context.Context) ([]DailySiteStat, error)
	Workers(ctx context.Context) ([]WorkerMetric, error)
}

type SummaryServiceImpl struct {
	roster  roster.Provider
	records attendance.RecordStore
	session session.Store

	now func() time.Time
}

func NewSummaryService(rosterProvider roster.Provider, records attendance.RecordStore, sessionStore session.Store) Service {
	return &SummaryServiceImpl{
		roster:  rosterProvider,
		records: records,
		session: sessionStore,
		now:     time.Now,
	}
}

// Companies implements Service.
func (s *SummaryServiceImpl) Companies(ctx context.Context) ([]CompanyStat, error) {
	snap := s.session.Snapshot()
	return CompanySummary(s.roster.Workers(), s.records.List(), snap.SelectedDate, snap.Filters.SiteID), nil
}

// Sites implements Service.
func (s *SummaryServiceImpl) Sites(ctx context.Context) ([]SiteStat, error) {
	snap := s.session.Snapshot()
	return SiteSummary(s.roster.Sites(), s.roster.Workers(), s.records.List(), snap.SelectedDate, snap.Filters.Company), nil
}

// Daily implements Service.
func (s *SummaryServiceImpl) Daily(ctx context.Context) ([]DailySiteStat, error) {
	snap := s.session.Snapshot()
	return DailySiteStats(s.roster.Sites(), s.records.List(), snap.SelectedDate), nil
}

// Workers implements Service.
func (s *SummaryServiceImpl) Workers(ctx context.Context) ([]WorkerMetric, error) {
	snap := s.session.Snapshot()
	return WorkerMetrics(s.roster.Workers(), s.records.List(), snap.SelectedDate, snap.Filters, s.now()), nil
}
