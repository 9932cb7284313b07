package tracker

import "errors"

// Tracker-specific errors. Every remote-call failure is terminal for the
// run; there are no retries.
var (
	// ErrAuthentication covers 401 and 403 responses. GitHub returns 403
	// instead of 401 in some abuse-prevention paths, same root cause.
	ErrAuthentication = errors.New("authentication failed: double check that your credentials are correct " +
		"and that you have permission to read from or write to the specified repositories")

	ErrNotFound = errors.New("repository or issue not found: double check the spelling of the source and " +
		"target repositories; if a repository is private, make sure the specified user is allowed access to it")

	ErrRequestRejected = errors.New("request rejected by the tracker")

	ErrInvalidRepository = errors.New("invalid repository identity")
)
