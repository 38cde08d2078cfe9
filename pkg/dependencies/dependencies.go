// Package dependencies provides a centralized dependency container for the create-branch application.
// This package follows Go idioms for dependency injection by grouping related dependencies
// together and providing a fluent API for configuration.
package dependencies

import (
	"errors"

	"github.com/lerenn/create-branch/pkg/config"
	"github.com/lerenn/create-branch/pkg/forge"
	"github.com/lerenn/create-branch/pkg/logger"
)

// Validation errors for missing dependencies.
var (
	ErrConfigMissing        = errors.New("config dependency is required but not set")
	ErrLoggerMissing        = errors.New("logger dependency is required but not set")
	ErrForgeProviderMissing = errors.New("forge provider dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	Config        config.Manager
	Logger        logger.Logger
	ForgeProvider forge.Provider
}

// New creates a new Dependencies instance with sensible defaults.
func New() *Dependencies {
	return &Dependencies{
		Logger: logger.NewNoopLogger(),
		// Config and ForgeProvider depend on the settings file and are set via With* methods
	}
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithForgeProvider sets the forge provider and returns the instance for chaining.
func (d *Dependencies) WithForgeProvider(provider forge.Provider) *Dependencies {
	d.ForgeProvider = provider
	return d
}

// WithForgeClient sets a provider always returning client, whatever the token.
func (d *Dependencies) WithForgeClient(client forge.BranchClient) *Dependencies {
	d.ForgeProvider = func(_ string) (forge.BranchClient, error) {
		return client, nil
	}
	return d
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	switch {
	case d.Config == nil:
		return ErrConfigMissing
	case d.Logger == nil:
		return ErrLoggerMissing
	case d.ForgeProvider == nil:
		return ErrForgeProviderMissing
	}
	return nil
}
