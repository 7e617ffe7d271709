package types

import "fmt"

// Config holds runtime configuration combining flags and defaults
type Config struct {
	// Input
	SearchPath string // Root path for source discovery

	// Execution
	Parallelism int // Max concurrent file scans (1 = sequential)

	// Scan data
	ScanFile string // Scan result path

	// Output
	Format  string // Report format (text, json, or html)
	Output  string // Report destination path, "-" for stdout
	Verbose bool   // Enable debug logging
}

// ConfigError reports an invalid configuration value
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Message)
}

// Validate checks the configuration for values no command can work with
func (c *Config) Validate() error {
	if c.ScanFile == "" {
		return &ConfigError{Field: "scan-file", Message: "must not be empty"}
	}
	if c.Output == "" {
		return &ConfigError{Field: "output", Message: "must not be empty"}
	}
	if c.Parallelism < 0 {
		return &ConfigError{Field: "parallel", Message: "must not be negative"}
	}
	return nil
}
