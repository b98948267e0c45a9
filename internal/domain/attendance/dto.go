package attendance

import (
	"github.com/genba-cloud/genba-attendance/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// Outcome classifies the result of a state-changing action. Precondition
// failures degrade to Ignored with a machine-readable reason instead of an
// error, so callers can observe no-ops without breaking the silent UX.
type Outcome string

const (
	OutcomeOK      Outcome = "ok"
	OutcomeIgnored Outcome = "ignored"
)

// Ignore reasons.
const (
	ReasonNoScannedSite = "no_scanned_site"
	ReasonNoCurrentUser = "no_current_user"
	ReasonNoOpenRecord  = "no_open_record"
	ReasonNotFound      = "not_found"
)

// ActionResult reports what a check-in, check-out or delete actually did.
type ActionResult struct {
	Outcome Outcome `json:"outcome"`
	Reason  string  `json:"reason,omitempty"`
	Record  *Record `json:"record,omitempty"`
	Message string  `json:"message,omitempty"`
}

// LoadMonthResult reports what loading a month of data did. Loaded is false
// when the month already had records and the call was a no-op.
type LoadMonthResult struct {
	Loaded         bool `json:"loaded"`
	StaticCount    int  `json:"staticCount"`
	GeneratedCount int  `json:"generatedCount"`
}

// UpsertRecordRequest is the manual-edit write path. Optional fields are
// pointers so an absent field is distinguishable from an explicit empty value
// (an explicit empty checkOutTime reopens a record).
type UpsertRecordRequest struct {
	ID           string  `json:"id,omitempty"`
	WorkerID     string  `json:"workerId"`
	Date         string  `json:"date"`
	SiteID       *string `json:"siteId,omitempty"`
	CheckInTime  *string `json:"checkInTime,omitempty"`
	CheckOutTime *string `json:"checkOutTime,omitempty"`
	Status       *Status `json:"status,omitempty"`
}

func (r *UpsertRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "workerId",
			Message: "workerId is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.Status != nil && !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be CHECKED_IN, CHECKED_OUT or ABSENT",
		})
	}

	// Check-out before check-in is a data-entry error, not a negative shift.
	if r.CheckInTime != nil && r.CheckOutTime != nil {
		in, inOK := ParseTime(*r.CheckInTime)
		out, outOK := ParseTime(*r.CheckOutTime)
		if inOK && outOK && out.Before(in) {
			errs = append(errs, validator.ValidationError{
				Field:   "checkOutTime",
				Message: "checkOutTime must not be before checkInTime",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
