package roster

import "errors"

var (
	ErrSiteNotFound   = errors.New("site not found")
	ErrWorkerNotFound = errors.New("worker not found")
)
