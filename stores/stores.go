package stores

import "errors"

// Sentinel errors shared by the stores. Handlers translate these into HTTP
// statuses at the boundary.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already exists")
)
