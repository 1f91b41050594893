package config

import (
	"errors"
	"fmt"
	"path"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateOrganize(); err != nil {
		return err
	}
	if err := c.validateCleanup(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateScan() error {
	if c.Scan.SimilarityThreshold <= 0 || c.Scan.SimilarityThreshold > 1 {
		return errors.New("scan.similarity_threshold must be in (0, 1]")
	}
	if len(c.Scan.Extensions) == 0 {
		return errors.New("scan.extensions must list at least one media extension")
	}
	return nil
}

func (c *Config) validateOrganize() error {
	if c.Organize.DefaultSubdir == "" {
		return errors.New("organize.default_subdir must be set")
	}
	return nil
}

func (c *Config) validateCleanup() error {
	for _, pattern := range c.Cleanup.JunkPatterns {
		if _, err := path.Match(pattern, "probe"); err != nil {
			return fmt.Errorf("cleanup.junk_patterns: invalid pattern %q: %w", pattern, err)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
