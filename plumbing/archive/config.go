package main

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// ErrInvalidPageSize is returned for a page size below one
var ErrInvalidPageSize = errors.New("page size must be positive")

// EnvConfig holds defaults read from the environment. Command-line flags
// override them per invocation.
type EnvConfig struct {
	Dir        string `envconfig:"ARCHIVE_DIR" default:"."`
	OutputDir  string `envconfig:"ARCHIVE_OUTPUT_DIR"` // Defaults to Dir
	PageSize   int    `envconfig:"ARCHIVE_PAGE_SIZE" default:"100"`
	Collection string `envconfig:"ARCHIVE_COLLECTION" default:"statuses"`
	Sanitize   bool   `envconfig:"ARCHIVE_SANITIZE" default:"false"`
	LogLevel   string `envconfig:"ARCHIVE_LOG_LEVEL" default:"info"`
	LogFile    string `envconfig:"ARCHIVE_LOG_FILE"`
}

// LoadEnvConfig reads EnvConfig from the environment
func LoadEnvConfig() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("loading configuration from environment: %w", err)
	}
	return cfg, nil
}

// Validate checks values that can't be defaulted away
func (c EnvConfig) Validate() error {
	if c.PageSize < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidPageSize, c.PageSize)
	}
	if !IsCollection(c.Collection) {
		return fmt.Errorf("unknown collection %q (expected one of %v)", c.Collection, Collections)
	}
	return nil
}

// Output returns the directory documents are written to
func (c EnvConfig) Output() string {
	if c.OutputDir != "" {
		return c.OutputDir
	}
	return c.Dir
}
