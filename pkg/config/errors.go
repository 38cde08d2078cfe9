package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigNotFound  = errors.New("configuration file not found")
	ErrConfigFileParse = errors.New("failed to parse config file")
	// Configuration validation errors.
	ErrUnsupportedForge   = errors.New("unsupported forge")
	ErrInvalidTimeout     = errors.New("timeout must be positive")
	ErrInvalidAPIURL      = errors.New("api_url must be an absolute URL")
	ErrInvalidLogRotation = errors.New("log rotation settings cannot be negative")
)
