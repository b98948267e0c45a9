package memory

import (
	"github.com/genba-cloud/genba-attendance/internal/domain/attendance"
)

// List implements attendance.RecordStore.
func (s *Store) List() []attendance.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]attendance.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Get implements attendance.RecordStore.
func (s *Store) Get(id string) (attendance.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return attendance.Record{}, false
}

// Put implements attendance.RecordStore.
func (s *Store) Put(rec attendance.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == rec.ID {
			s.records[i] = rec
			return
		}
	}
	s.records = append(s.records, rec)
}

// Append implements attendance.RecordStore. Records whose id already exists
// are skipped, never overwritten; that is the only dedup the monthly merge
// gets.
func (s *Store) Append(recs []attendance.Record) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing := make(map[string]bool, len(s.records))
	for _, r := range s.records {
		existing[r.ID] = true
	}
	inserted := 0
	for _, rec := range recs {
		if existing[rec.ID] {
			continue
		}
		existing[rec.ID] = true
		s.records = append(s.records, rec)
		inserted++
	}
	return inserted
}

// DeleteByWorkerDate implements attendance.RecordStore.
func (s *Store) DeleteByWorkerDate(workerID, date string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.records[:0]
	removed := 0
	for _, r := range s.records {
		if r.WorkerID == workerID && r.Date == date {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	s.records = kept
	return removed
}

// FindByWorkerDate implements attendance.RecordStore.
func (s *Store) FindByWorkerDate(workerID, date string) (attendance.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.WorkerID == workerID && r.Date == date {
			return r, true
		}
	}
	return attendance.Record{}, false
}

// FindOpenByWorkerDate implements attendance.RecordStore.
func (s *Store) FindOpenByWorkerDate(workerID, date string) (attendance.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.WorkerID == workerID && r.Date == date && r.Open() {
			return r, true
		}
	}
	return attendance.Record{}, false
}

// Update implements attendance.RecordStore.
func (s *Store) Update(rec attendance.Record) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == rec.ID {
			s.records[i] = rec
			return true
		}
	}
	return false
}

// Delete implements attendance.RecordStore.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true
		}
	}
	return false
}

// HasMonth implements attendance.RecordStore.
func (s *Store) HasMonth(prefix string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.InMonth(prefix) {
			return true
		}
	}
	return false
}
