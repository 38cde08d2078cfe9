// Package base provides common functionality for create-branch components.
package base

import (
	"github.com/lerenn/create-branch/pkg/logger"
)

// Base provides common functionality for create-branch components.
type Base struct {
	Logger  logger.Logger
	verbose bool
}

// NewBaseParams contains parameters for creating a new Base instance.
type NewBaseParams struct {
	Logger  logger.Logger
	Verbose bool
}

// NewBase creates a new Base instance.
func NewBase(params NewBaseParams) *Base {
	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}

	return &Base{
		Logger:  l,
		verbose: params.Verbose,
	}
}

// Printf prints a formatted message.
func (b *Base) Printf(msg string, args ...interface{}) {
	b.Logger.Logf(msg, args...)
}

// VerbosePrint prints a formatted message only in verbose mode.
func (b *Base) VerbosePrint(msg string, args ...interface{}) {
	if b.verbose {
		b.Logger.Logf(msg, args...)
	}
}

// IsVerbose returns whether verbose mode is enabled.
func (b *Base) IsVerbose() bool {
	return b.verbose
}
