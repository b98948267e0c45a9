package attendance

import "context"

// Service defines the business logic around attendance records.
type Service interface {
	// CheckIn records the current user entering the scanned site. Requires
	// a scanned site and a current user; otherwise the action is ignored.
	CheckIn(ctx context.Context) (ActionResult, error)

	// CheckOut stamps the check-out time on the current user's open record
	// for the selected date.
	CheckOut(ctx context.Context) (ActionResult, error)

	// List returns records visible under the current session's site filter.
	List(ctx context.Context) ([]Record, error)

	// Upsert is the manual-edit write path: merge into the record matched
	// by id or (workerId, date), or insert a new one.
	Upsert(ctx context.Context, req UpsertRecordRequest) (Record, error)

	// Delete removes a record by id. Missing ids are reported as ignored.
	Delete(ctx context.Context, id string) (ActionResult, error)

	// LoadMonthlyData populates the month containing targetDate with a
	// synthetic month of history plus one AI-generated day. Idempotent per
	// month.
	LoadMonthlyData(ctx context.Context, targetDate string) (LoadMonthResult, error)
}
