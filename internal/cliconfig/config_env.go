package cliconfig

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

// EnvConfig holds the raw URLFREEZER_* environment variables.
type EnvConfig struct {
	UserID      string `env:"URLFREEZER_USER_ID"`
	Host        string `env:"URLFREEZER_HOST"`
	InputFile   string `env:"URLFREEZER_INPUT_FILE"`
	OutputFile  string `env:"URLFREEZER_OUTPUT_FILE"`
	HTTPTimeout string `env:"URLFREEZER_HTTP_TIMEOUT"`
	Strict      string `env:"URLFREEZER_STRICT"`
	Verbose     string `env:"URLFREEZER_VERBOSE"`
}

// LoadEnvConfig reads URLFREEZER_* variables from the process environment.
func LoadEnvConfig() (EnvConfig, error) {
	var ec EnvConfig
	if err := env.Parse(&ec); err != nil {
		return ec, fmt.Errorf("parse environment: %w", err)
	}
	return ec, nil
}

// ApplyEnvConfig applies environment configuration to cfg.
// Environment overrides the config file; explicitly set flags win over both.
func ApplyEnvConfig(cfg *Config, ec EnvConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("user-id", ec.UserID, &cfg.UserID)
	s.setString("host", ec.Host, &cfg.Host)
	s.setString("input-file", ec.InputFile, &cfg.InputFile)
	s.setString("output-file", ec.OutputFile, &cfg.OutputFile)

	if err := s.setDuration("timeout", ec.HTTPTimeout, &cfg.HTTPTimeout); err != nil {
		return err
	}

	s.setBoolFromString("strict", ec.Strict, &cfg.Strict)
	s.setBoolFromString("verbose", ec.Verbose, &cfg.Verbose)

	return nil
}
