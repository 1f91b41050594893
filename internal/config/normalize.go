package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeScan()
	c.normalizeOrganize()
	c.normalizeCleanup()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeScan() {
	c.Scan.Extensions = normalizeExtensions(c.Scan.Extensions)
	c.Scan.ProtectedMarker = strings.ToLower(strings.TrimSpace(c.Scan.ProtectedMarker))
	if c.Scan.ProtectedMarker == "" {
		c.Scan.ProtectedMarker = defaultProtectedMarker
	}
	if c.Scan.SimilarityThreshold == 0 {
		c.Scan.SimilarityThreshold = defaultSimilarityThreshold
	}
}

func (c *Config) normalizeOrganize() {
	c.Organize.RawExtensions = normalizeExtensions(c.Organize.RawExtensions)
	c.Organize.CompanionExtensions = normalizeExtensions(c.Organize.CompanionExtensions)
	c.Organize.DefaultSubdir = strings.TrimSpace(c.Organize.DefaultSubdir)
	if c.Organize.DefaultSubdir == "" {
		c.Organize.DefaultSubdir = defaultOrganizeSubdir
	}
}

func (c *Config) normalizeCleanup() {
	patterns := make([]string, 0, len(c.Cleanup.JunkPatterns))
	for _, pattern := range c.Cleanup.JunkPatterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		patterns = append(patterns, pattern)
	}
	c.Cleanup.JunkPatterns = patterns
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	seen := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext == "" {
			continue
		}
		if _, ok := seen[ext]; ok {
			continue
		}
		seen[ext] = struct{}{}
		out = append(out, ext)
	}
	return out
}
