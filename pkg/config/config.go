// Package config provides configuration management functionality for the create-branch application.
package config

import (
	"fmt"
	"net/url"
	"time"
)

// SupportedForges lists the forge names accepted in the configuration.
var SupportedForges = []string{"github"}

// Config represents the application configuration.
type Config struct {
	Forge         string        `yaml:"forge"`
	APIURL        string        `yaml:"api_url"`
	UserAgent     string        `yaml:"user_agent"`
	Timeout       time.Duration `yaml:"timeout"`
	LogFile       string        `yaml:"log_file"`
	LogMaxSize    int           `yaml:"log_max_size"`
	LogMaxBackups int           `yaml:"log_max_backups"`
	LogMaxAge     int           `yaml:"log_max_age"`
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	if !isSupportedForge(c.Forge) {
		return fmt.Errorf("%w: %q", ErrUnsupportedForge, c.Forge)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, c.Timeout)
	}

	if c.APIURL != "" {
		u, err := url.Parse(c.APIURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: %q", ErrInvalidAPIURL, c.APIURL)
		}
	}

	if c.LogMaxSize < 0 || c.LogMaxBackups < 0 || c.LogMaxAge < 0 {
		return ErrInvalidLogRotation
	}

	return nil
}

// WithAPIURL returns a copy of the configuration pointing at another API root.
// An empty value keeps the current one.
func (c Config) WithAPIURL(apiURL string) Config {
	if apiURL != "" {
		c.APIURL = apiURL
	}
	return c
}

// WithLogFile returns a copy of the configuration logging to another file.
// An empty value keeps the current one.
func (c Config) WithLogFile(path string) Config {
	if path != "" {
		c.LogFile = path
	}
	return c
}

func isSupportedForge(name string) bool {
	for _, f := range SupportedForges {
		if f == name {
			return true
		}
	}
	return false
}
