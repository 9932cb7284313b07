package migration

import "errors"

// Migration-specific errors.
var (
	// ErrMissingCreatedAt marks an issue whose creation timestamp is
	// absent or unparseable; the chronological sort cannot proceed
	// safely, so the run aborts before any mutation.
	ErrMissingCreatedAt = errors.New("issue has no usable creation timestamp")
)
