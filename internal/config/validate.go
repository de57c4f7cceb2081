package config

import (
	"fmt"
	"strings"
)

var validVerbosities = map[string]bool{
	"error":   true,
	"warn":    true,
	"info":    true,
	"all":     true,
	"verbose": true,
}

var validFormats = map[string]bool{
	"console": true,
	"json":    true,
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if v := strings.ToLower(strings.TrimSpace(c.Verbosity)); !validVerbosities[v] {
		return fmt.Errorf("verbosity must be one of error, warn, info, all (got %q)", c.Verbosity)
	}
	if f := strings.ToLower(strings.TrimSpace(c.Structured.Format)); !validFormats[f] {
		return fmt.Errorf("structured.format must be console or json (got %q)", c.Structured.Format)
	}
	if strings.TrimSpace(c.Structured.Path) == "" {
		return fmt.Errorf("structured.path must be set")
	}
	if f := strings.ToLower(strings.TrimSpace(c.Logging.Format)); !validFormats[f] {
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	return nil
}
