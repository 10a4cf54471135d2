package directory

import "errors"

var (
	// ErrNotFound indicates an identifier matched no directory entry.
	ErrNotFound = errors.New("no matching directory entry")

	// ErrAmbiguous indicates a group identifier matched more than one group.
	// User lookups never return this; the directory guarantees mailbox
	// lookups are unique.
	ErrAmbiguous = errors.New("identifier matched more than one group")

	// ErrSessionRequired indicates a call was rejected for authentication
	// reasons. No further directory call can succeed, so callers should
	// stop instead of retrying.
	ErrSessionRequired = errors.New("session required: run 'rollcall login' to authenticate")
)
