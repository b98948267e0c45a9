package export

import (
	"context"

	"github.com/genba-cloud/genba-attendance/internal/domain/attendance"
	"github.com/genba-cloud/genba-attendance/internal/domain/roster"
	"github.com/genba-cloud/genba-attendance/internal/domain/session"
)

// Service renders the CSV download for the current session's month and
// filters.
type Service interface {
	// ExportCSV returns the CSV body and the suggested download filename.
	ExportCSV(ctx context.Context) (body string, filename string, err error)
}

type ExportServiceImpl struct {
	roster  roster.Provider
	records attendance.RecordStore
	session session.Store
}

func NewExportService(rosterProvider roster.Provider, records attendance.RecordStore, sessionStore session.Store) Service {
	return &ExportServiceImpl{
		roster:  rosterProvider,
		records: records,
		session: sessionStore,
	}
}

// ExportCSV implements Service.
func (s *ExportServiceImpl) ExportCSV(ctx context.Context) (string, string, error) {
	snap := s.session.Snapshot()
	body := BuildCSV(s.roster.Workers(), s.roster.Sites(), s.records.List(), snap.SelectedDate, snap.Filters)
	return body, Filename(snap.SelectedDate), nil
}
