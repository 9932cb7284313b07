package config

import "errors"

// Configuration-specific errors. All are fatal before any network activity.
var (
	ErrConfigNotFound       = errors.New("config file not found")
	ErrNoSources            = errors.New("no source repositories specified in the config file or as a command-line argument")
	ErrNoTarget             = errors.New("no target repository specified in the config file or as a command-line argument")
	ErrInvalidRepository    = errors.New("invalid repository identity")
	ErrUnknownRepository    = errors.New("repository is not part of this migration")
	ErrNoSelection          = errors.New("no issue selection specified, use --all, --open, --closed or --issues")
	ErrInvalidSelection     = errors.New("invalid issue selection")
	ErrConflictingSelection = errors.New("an issue state filter and an explicit issue list cannot be combined")
)
