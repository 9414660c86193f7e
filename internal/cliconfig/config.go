package cliconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/bft-labs/urlfreezer/internal/codec"
	"github.com/bft-labs/urlfreezer/internal/domain"
	"github.com/bft-labs/urlfreezer/pkg/client"
)

// DefaultHost is the production urlfreezer service.
const DefaultHost = client.DefaultHost

// Config holds CLI configuration for urlfreezer.
type Config struct {
	UserID string
	Host   string

	InputFile  string
	OutputFile string

	HTTPTimeout time.Duration

	Strict  bool
	Verbose bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Host:        DefaultHost,
		HTTPTimeout: 30 * time.Second,
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.UserID == "" {
		return fmt.Errorf("user-id is required")
	}

	if c.Host == "" {
		c.Host = DefaultHost
	}
	c.Host = strings.TrimRight(c.Host, "/")
	if _, err := codec.ParseAbsolute(c.Host); err != nil {
		return domain.Wrap(domain.ErrInvalidHost, "host", err)
	}

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

// configSetter applies values only for flags that were not set explicitly.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
