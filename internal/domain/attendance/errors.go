package attendance

import "errors"

// ErrRecordNotFound reports a lookup by id that matched nothing. Precondition
// failures on the kiosk actions are not errors; they surface as ignored
// action results with a reason instead.
var ErrRecordNotFound = errors.New("attendance record not found")
