// Package base provides common functionality for issues-migrate components.
package base

import (
	"fmt"

	"github.com/lerenn/issues-migrate/pkg/config"
	"github.com/lerenn/issues-migrate/pkg/logger"
	"github.com/lerenn/issues-migrate/pkg/prompt"
)

// Base provides common functionality for issues-migrate components.
type Base struct {
	Config  *config.Resolved
	Logger  logger.Logger
	Prompt  prompt.Prompter
	verbose bool
}

// NewBaseParams contains parameters for creating a new Base instance.
type NewBaseParams struct {
	Config  *config.Resolved
	Logger  logger.Logger
	Prompt  prompt.Prompter
	Verbose bool
}

// NewBase creates a new Base instance.
func NewBase(params NewBaseParams) *Base {
	return &Base{
		Config:  params.Config,
		Logger:  params.Logger,
		Prompt:  params.Prompt,
		verbose: params.Verbose,
	}
}

// VerbosePrint prints a formatted message only in verbose mode.
func (b *Base) VerbosePrint(msg string, args ...interface{}) {
	if b.verbose {
		b.Logger.Logf(fmt.Sprintf(msg, args...))
	}
}

// IsVerbose returns whether verbose mode is enabled.
func (b *Base) IsVerbose() bool {
	return b.verbose
}
