package attendance

// RecordStore is the record collection of the in-memory state container. The
// attendance service is its only writer; every method is safe for use from
// HTTP handler goroutines.
type RecordStore interface {
	// List returns a copy of all records in insertion order.
	List() []Record

	Get(id string) (Record, bool)

	// Put inserts a record, replacing any existing record with the same id.
	Put(rec Record)

	// Append bulk-inserts records, skipping any whose id already exists.
	// Returns the number of records actually inserted.
	Append(recs []Record) int

	// DeleteByWorkerDate removes every record for the worker on the given
	// date and returns how many were removed. Check-in uses this as the
	// same-date replace that keeps (workerId, date) a soft uniqueness key.
	DeleteByWorkerDate(workerID, date string) int

	// FindByWorkerDate returns the first record for the worker on the date.
	FindByWorkerDate(workerID, date string) (Record, bool)

	// FindOpenByWorkerDate returns the worker's open record on the date,
	// if any.
	FindOpenByWorkerDate(workerID, date string) (Record, bool)

	// Update replaces the record with the same id. Returns false when no
	// such record exists.
	Update(rec Record) bool

	// Delete removes the record with the given id. Returns false when no
	// such record exists.
	Delete(id string) bool

	// HasMonth reports whether any record's date starts with the YYYY-MM
	// prefix.
	HasMonth(prefix string) bool
}
