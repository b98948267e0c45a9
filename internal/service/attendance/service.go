package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/genba-cloud/genba-attendance/internal/domain/attendance"
	"github.com/genba-cloud/genba-attendance/internal/domain/roster"
	"github.com/genba-cloud/genba-attendance/internal/domain/session"
	"github.com/genba-cloud/genba-attendance/internal/service/mockdata"
	"github.com/google/uuid"
)

// DayGenerator produces one day of externally generated attendance records.
// The Gemini client implements it.
type DayGenerator interface {
	GenerateDailyRecords(ctx context.Context, workers []roster.Worker, site roster.Site, date string) ([]attendance.Record, error)
}

type AttendanceServiceImpl struct {
	roster     roster.Provider
	records    attendance.RecordStore
	session    session.Store
	dayGen     DayGenerator
	resetDelay time.Duration

	now  func() time.Time
	seed func() int64
}

func NewAttendanceService(
	rosterProvider roster.Provider,
	records attendance.RecordStore,
	sessionStore session.Store,
	dayGen DayGenerator,
	resetDelay time.Duration,
) attendance.Service {
	return &AttendanceServiceImpl{
		roster:     rosterProvider,
		records:    records,
		session:    sessionStore,
		dayGen:     dayGen,
		resetDelay: resetDelay,
		now:        time.Now,
		seed:       func() int64 { return time.Now().UnixNano() },
	}
}

func ignored(reason string) attendance.ActionResult {
	return attendance.ActionResult{Outcome: attendance.OutcomeIgnored, Reason: reason}
}

// CheckIn implements attendance.Service. Any earlier record for the same
// worker and date is replaced, keeping (workerId, date) unique for the day.
// The dedup is per date only: an open record on another date stays open.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context) (attendance.ActionResult, error) {
	snap := s.session.Snapshot()
	if snap.ScannedSite == nil {
		return ignored(attendance.ReasonNoScannedSite), nil
	}
	if snap.CurrentUser == nil {
		return ignored(attendance.ReasonNoCurrentUser), nil
	}

	s.records.DeleteByWorkerDate(snap.CurrentUser.ID, snap.SelectedDate)

	rec := attendance.Record{
		ID:          uuid.NewString(),
		WorkerID:    snap.CurrentUser.ID,
		SiteID:      snap.ScannedSite.ID,
		Date:        snap.SelectedDate,
		CheckInTime: s.now().Format(time.RFC3339),
		Status:      attendance.StatusCheckedIn,
	}
	s.records.Put(rec)

	msg := fmt.Sprintf("「%s」に入場しました。", snap.ScannedSite.Name)
	s.session.SetLastActionMessage(msg)
	s.session.ScheduleScanReset(s.resetDelay)

	return attendance.ActionResult{
		Outcome: attendance.OutcomeOK,
		Record:  &rec,
		Message: msg,
	}, nil
}

// CheckOut implements attendance.Service. Without an open record for the
// selected date nothing changes, but the confirmation message and the scan
// reset still fire, matching the kiosk behavior.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context) (attendance.ActionResult, error) {
	snap := s.session.Snapshot()
	if snap.ScannedSite == nil {
		return ignored(attendance.ReasonNoScannedSite), nil
	}
	if snap.CurrentUser == nil {
		return ignored(attendance.ReasonNoCurrentUser), nil
	}

	msg := fmt.Sprintf("「%s」から退場しました。", snap.ScannedSite.Name)
	s.session.SetLastActionMessage(msg)
	s.session.ScheduleScanReset(s.resetDelay)

	rec, ok := s.records.FindOpenByWorkerDate(snap.CurrentUser.ID, snap.SelectedDate)
	if !ok {
		result := ignored(attendance.ReasonNoOpenRecord)
		result.Message = msg
		return result, nil
	}

	rec.CheckOutTime = s.now().Format(time.RFC3339)
	rec.Status = attendance.StatusCheckedOut
	s.records.Update(rec)

	return attendance.ActionResult{
		Outcome: attendance.OutcomeOK,
		Record:  &rec,
		Message: msg,
	}, nil
}

// List implements attendance.Service.
func (s *AttendanceServiceImpl) List(ctx context.Context) ([]attendance.Record, error) {
	siteID := s.session.Snapshot().Filters.SiteID
	records := s.records.List()
	if siteID == "" {
		return records, nil
	}
	filtered := make([]attendance.Record, 0, len(records))
	for _, r := range records {
		if r.SiteID == siteID {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// Upsert implements attendance.Service.
func (s *AttendanceServiceImpl) Upsert(ctx context.Context, req attendance.UpsertRecordRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}

	rec, found := attendance.Record{}, false
	if req.ID != "" {
		rec, found = s.records.Get(req.ID)
	}
	if !found {
		rec, found = s.records.FindByWorkerDate(req.WorkerID, req.Date)
	}

	if found {
		rec.WorkerID = req.WorkerID
		rec.Date = req.Date
		if req.SiteID != nil {
			rec.SiteID = *req.SiteID
		}
		if req.CheckInTime != nil {
			rec.CheckInTime = *req.CheckInTime
		}
		if req.CheckOutTime != nil {
			rec.CheckOutTime = *req.CheckOutTime
		}
		if req.Status != nil {
			rec.Status = *req.Status
		}
		s.records.Update(rec)
		return rec, nil
	}

	rec = attendance.Record{
		ID:       req.ID,
		WorkerID: req.WorkerID,
		Date:     req.Date,
		SiteID:   s.defaultSiteID(),
		Status:   attendance.StatusCheckedIn,
	}
	if rec.ID == "" {
		rec.ID = "manual-" + uuid.NewString()
	}
	if req.SiteID != nil {
		rec.SiteID = *req.SiteID
	}
	if req.CheckInTime != nil {
		rec.CheckInTime = *req.CheckInTime
	}
	if req.CheckOutTime != nil {
		rec.CheckOutTime = *req.CheckOutTime
	}
	if req.Status != nil {
		rec.Status = *req.Status
	}
	s.records.Put(rec)
	return rec, nil
}

// Delete implements attendance.Service.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) (attendance.ActionResult, error) {
	if !s.records.Delete(id) {
		return ignored(attendance.ReasonNotFound), nil
	}
	return attendance.ActionResult{Outcome: attendance.OutcomeOK}, nil
}

// LoadMonthlyData implements attendance.Service. The AI day is fail-open: a
// failed generation call seeds the month without that day instead of
// erroring.
func (s *AttendanceServiceImpl) LoadMonthlyData(ctx context.Context, targetDate string) (attendance.LoadMonthResult, error) {
	day, err := time.Parse("2006-01-02", targetDate)
	if err != nil {
		return attendance.LoadMonthResult{}, fmt.Errorf("invalid target date %q: %w", targetDate, err)
	}

	sites := s.roster.Sites()
	if len(sites) == 0 {
		return attendance.LoadMonthResult{}, nil
	}
	if s.records.HasMonth(attendance.MonthPrefix(targetDate)) {
		return attendance.LoadMonthResult{}, nil
	}

	workers := s.roster.Workers()
	rnd := rand.New(rand.NewSource(s.seed()))
	month := mockdata.GenerateMonth(workers, sites[0], day.Year(), day.Month(), rnd)

	// The target day comes from the generator service instead.
	static := month[:0]
	for _, r := range month {
		if r.Date != targetDate {
			static = append(static, r)
		}
	}

	generated, err := s.dayGen.GenerateDailyRecords(ctx, workers, sites[0], targetDate)
	if err != nil {
		slog.Warn("daily record generation failed, seeding month without target day",
			"date", targetDate, "error", err)
		generated = nil
	}

	inserted := s.records.Append(append(static, generated...))
	slog.Info("monthly data loaded",
		"month", attendance.MonthPrefix(targetDate),
		"static", len(static),
		"generated", len(generated),
		"inserted", inserted)

	return attendance.LoadMonthResult{
		Loaded:         true,
		StaticCount:    len(static),
		GeneratedCount: len(generated),
	}, nil
}

func (s *AttendanceServiceImpl) defaultSiteID() string {
	sites := s.roster.Sites()
	if len(sites) == 0 {
		return "unknown"
	}
	return sites[0].ID
}
