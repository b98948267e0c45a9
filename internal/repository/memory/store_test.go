package memory

import (
	"testing"
	"time"

	"github.com/genba-cloud/genba-attendance/internal/domain/attendance"
	"github.com/genba-cloud/genba-attendance/internal/domain/roster"
	"github.com/genba-cloud/genba-attendance/internal/domain/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreForTest() *Store {
	workers := []roster.Worker{
		{ID: "w1", Name: "山田 太郎", Company: "山田建設"},
		{ID: "w2", Name: "佐藤 健太", Company: "佐藤工業"},
	}
	sites := []roster.Site{
		{ID: "s1", Name: "渋谷桜丘プロジェクト A工区", QRCodeValue: "site-shibuya-a"},
		{ID: "s2", Name: "新宿駅西口再開発 B工区", QRCodeValue: "site-shinjuku-b"},
	}
	return NewStore(workers, sites, "w2")
}

func TestNewStore_InitialSession(t *testing.T) {
	store := newStoreForTest()
	snap := store.Snapshot()

	require.NotNil(t, snap.CurrentUser)
	assert.Equal(t, "w2", snap.CurrentUser.ID)
	assert.Equal(t, session.ViewDashboard, snap.ViewMode)
	assert.Equal(t, time.Now().Format("2006-01-02"), snap.SelectedDate)
	assert.Nil(t, snap.ScannedSite)
}

func TestNewStore_UnknownWorkerStaysLoggedOut(t *testing.T) {
	store := NewStore(nil, nil, "nobody")
	assert.Nil(t, store.Snapshot().CurrentUser)
}

func TestStore_RosterLookups(t *testing.T) {
	store := newStoreForTest()

	w, ok := store.WorkerByID("w1")
	require.True(t, ok)
	assert.Equal(t, "山田 太郎", w.Name)

	_, ok = store.WorkerByID("w9")
	assert.False(t, ok)

	site, ok := store.SiteByQRCode("site-shinjuku-b")
	require.True(t, ok)
	assert.Equal(t, "s2", site.ID)

	_, ok = store.SiteByQRCode("bogus")
	assert.False(t, ok)
}

func TestStore_PutUpdatesExistingID(t *testing.T) {
	store := newStoreForTest()
	store.Put(attendance.Record{ID: "r1", WorkerID: "w1", Date: "2024-05-01"})
	store.Put(attendance.Record{ID: "r1", WorkerID: "w1", Date: "2024-05-01", Status: attendance.StatusCheckedOut})

	records := store.List()
	require.Len(t, records, 1)
	assert.Equal(t, attendance.StatusCheckedOut, records[0].Status)
}

func TestStore_AppendSkipsExistingIDs(t *testing.T) {
	store := newStoreForTest()
	store.Put(attendance.Record{ID: "r1", WorkerID: "w1", Date: "2024-05-01"})

	inserted := store.Append([]attendance.Record{
		{ID: "r1", WorkerID: "w1", Date: "2024-05-01", Status: attendance.StatusCheckedOut},
		{ID: "r2", WorkerID: "w2", Date: "2024-05-01"},
	})

	assert.Equal(t, 1, inserted)
	records := store.List()
	require.Len(t, records, 2)
	// The existing record was not overwritten.
	existing, _ := store.Get("r1")
	assert.NotEqual(t, attendance.StatusCheckedOut, existing.Status)
}

func TestStore_DeleteByWorkerDate(t *testing.T) {
	store := newStoreForTest()
	store.Put(attendance.Record{ID: "r1", WorkerID: "w1", Date: "2024-05-01"})
	store.Put(attendance.Record{ID: "r2", WorkerID: "w1", Date: "2024-05-02"})
	store.Put(attendance.Record{ID: "r3", WorkerID: "w2", Date: "2024-05-01"})

	removed := store.DeleteByWorkerDate("w1", "2024-05-01")

	assert.Equal(t, 1, removed)
	assert.Len(t, store.List(), 2)
}

func TestStore_FindOpenByWorkerDate(t *testing.T) {
	store := newStoreForTest()
	store.Put(attendance.Record{
		ID: "r1", WorkerID: "w1", Date: "2024-05-01",
		CheckInTime: "2024-05-01T08:00:00Z", CheckOutTime: "2024-05-01T17:00:00Z",
	})
	store.Put(attendance.Record{
		ID: "r2", WorkerID: "w1", Date: "2024-05-02",
		CheckInTime: "2024-05-02T08:00:00Z",
	})

	_, ok := store.FindOpenByWorkerDate("w1", "2024-05-01")
	assert.False(t, ok)

	rec, ok := store.FindOpenByWorkerDate("w1", "2024-05-02")
	require.True(t, ok)
	assert.Equal(t, "r2", rec.ID)
}

func TestStore_HasMonth(t *testing.T) {
	store := newStoreForTest()
	store.Put(attendance.Record{ID: "r1", WorkerID: "w1", Date: "2024-05-01"})

	assert.True(t, store.HasMonth("2024-05"))
	assert.False(t, store.HasMonth("2024-06"))
}

func TestStore_SetScannedSiteClearsMessage(t *testing.T) {
	store := newStoreForTest()
	store.SetLastActionMessage("something happened")

	site, _ := store.SiteByID("s1")
	store.SetScannedSite(&site)

	snap := store.Snapshot()
	require.NotNil(t, snap.ScannedSite)
	assert.Equal(t, "s1", snap.ScannedSite.ID)
	assert.Empty(t, snap.LastActionMessage)
}

func TestStore_ScanResetFires(t *testing.T) {
	store := newStoreForTest()
	site, _ := store.SiteByID("s1")
	store.SetScannedSite(&site)
	store.SetViewMode(session.ViewScan)

	store.ScheduleScanReset(10 * time.Millisecond)

	assert.Eventually(t, func() bool {
		snap := store.Snapshot()
		return snap.ViewMode == session.ViewDashboard && snap.ScannedSite == nil
	}, time.Second, 5*time.Millisecond)
}

func TestStore_ScanResetCancelledByNewScan(t *testing.T) {
	store := newStoreForTest()
	s1, _ := store.SiteByID("s1")
	store.SetScannedSite(&s1)
	store.ScheduleScanReset(10 * time.Millisecond)

	// A new scan arrives before the reset fires; the pending timer must not
	// clear it.
	s2, _ := store.SiteByID("s2")
	store.SetScannedSite(&s2)

	time.Sleep(50 * time.Millisecond)
	snap := store.Snapshot()
	require.NotNil(t, snap.ScannedSite)
	assert.Equal(t, "s2", snap.ScannedSite.ID)
}

func TestStore_ScanResetCancelledByViewChange(t *testing.T) {
	store := newStoreForTest()
	store.SetViewMode(session.ViewScan)
	store.ScheduleScanReset(10 * time.Millisecond)

	store.SetViewMode(session.ViewAnalysis)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, session.ViewAnalysis, store.Snapshot().ViewMode)
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	store := newStoreForTest()
	snap := store.Snapshot()
	require.NotNil(t, snap.CurrentUser)
	snap.CurrentUser.Name = "changed"

	assert.Equal(t, "佐藤 健太", store.Snapshot().CurrentUser.Name)
}
