package batch

import "errors"

// Batch driver errors.
//
// Design decision: We use package-level sentinel errors so the CLI can
// distinguish "the input path does not exist" (reported to the user,
// exit stays zero) from real processing failures via errors.Is().
var (
	// ErrPathNotFound is returned when the input path does not exist.
	ErrPathNotFound = errors.New("input path does not exist")
)
