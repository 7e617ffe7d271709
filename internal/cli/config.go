package cli

import (
	"github.com/healang/healex/pkg/types"
)

// Config is an alias for the shared Config type
type Config = types.Config

// ConfigError is an alias for the shared ConfigError type
type ConfigError = types.ConfigError

// DefaultConfig provides default configuration values
var DefaultConfig = Config{
	Parallelism: 1,
	ScanFile:    ".healex/scan.json",
	Format:      "text",
	Output:      "-",
	Verbose:     false,
}

// ApplyFlagsToConfig applies command-line flag values to configuration
func ApplyFlagsToConfig(c *Config, scanFile, format, output string, parallel int, verbose bool) {
	if scanFile != "" {
		c.ScanFile = scanFile
	}
	if format != "" {
		c.Format = format
	}
	if output != "" {
		c.Output = output
	}
	if parallel != 0 {
		c.Parallelism = parallel
	}
	c.Verbose = verbose
}
