package cleanup

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jdlocklin-backyard/photo-organizing/internal/logging"
	"github.com/jdlocklin-backyard/photo-organizing/internal/services"
)

// Options describes one cleanup run.
type Options struct {
	Folder   string
	Excluded string // subtree left untouched, may be empty
	DryRun   bool
}

// Stats summarizes a cleanup run.
type Stats struct {
	JunkFiles    []string // matched junk files (deleted unless dry run)
	EmptyFolders []string // removed folders (would-remove on dry run)
	Errors       []string
}

// Cleaner deletes junk files and empty folders.
type Cleaner struct {
	patterns []string
	logger   *slog.Logger
}

// New constructs a Cleaner with the given junk glob patterns.
func New(patterns []string, logger *slog.Logger) *Cleaner {
	return &Cleaner{
		patterns: patterns,
		logger:   logging.NewComponentLogger(logger, "cleanup"),
	}
}

// Run deletes junk files under opts.Folder, then removes empty folders
// bottom-up until a pass removes nothing. Per-entry failures are collected
// into Stats.Errors; only folder-level access failures abort the run.
func (c *Cleaner) Run(opts Options) (*Stats, error) {
	folder := filepath.Clean(opts.Folder)
	info, err := os.Stat(folder)
	if err != nil {
		return nil, services.Wrap(services.ErrNotFound, "cleanup", "open folder", fmt.Sprintf("folder %q does not exist", folder), err)
	}
	if !info.IsDir() {
		return nil, services.Wrap(services.ErrNotFound, "cleanup", "open folder", fmt.Sprintf("%q is not a directory", folder), nil)
	}

	excluded := ""
	if strings.TrimSpace(opts.Excluded) != "" {
		excluded = filepath.Clean(opts.Excluded)
	}

	stats := &Stats{}

	junk, err := c.FindJunk(folder, excluded)
	if err != nil {
		return nil, err
	}
	stats.JunkFiles = junk
	if !opts.DryRun {
		for _, file := range junk {
			if err := os.Remove(file); err != nil {
				stats.Errors = append(stats.Errors, fmt.Sprintf("%s: %v", file, err))
				continue
			}
			c.logger.Debug("deleted junk file", logging.String("path", file))
		}
	}

	if opts.DryRun {
		empty, err := findEmptyFolders(folder, excluded)
		if err != nil {
			return stats, err
		}
		stats.EmptyFolders = empty
		return stats, nil
	}

	// Deleting a folder can empty its parent, so repeat until a pass
	// removes nothing.
	for {
		empty, err := findEmptyFolders(folder, excluded)
		if err != nil {
			return stats, err
		}
		if len(empty) == 0 {
			break
		}
		removedAny := false
		for _, dir := range empty {
			if err := os.Remove(dir); err != nil {
				stats.Errors = append(stats.Errors, fmt.Sprintf("%s: %v", dir, err))
				continue
			}
			removedAny = true
			stats.EmptyFolders = append(stats.EmptyFolders, dir)
			c.logger.Debug("deleted empty folder", logging.String("path", dir))
		}
		if !removedAny {
			break
		}
	}

	return stats, nil
}

// FindJunk returns the junk files under folder (recursive), excluding the
// given subtree, sorted for reproducible output.
func (c *Cleaner) FindJunk(folder, excluded string) ([]string, error) {
	var junk []string
	err := filepath.WalkDir(folder, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if excluded != "" && isUnder(p, excluded) {
				return filepath.SkipDir
			}
			return nil
		}
		if c.isJunk(d.Name()) {
			junk = append(junk, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(junk)
	return junk, nil
}

func (c *Cleaner) isJunk(name string) bool {
	lowered := strings.ToLower(name)
	for _, pattern := range c.patterns {
		if ok, err := path.Match(strings.ToLower(pattern), lowered); err == nil && ok {
			return true
		}
	}
	return false
}

// findEmptyFolders returns the folders under root (excluding root itself and
// the excluded subtree) that contain no entries, deepest first.
func findEmptyFolders(root, excluded string) ([]string, error) {
	var empty []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if excluded != "" && isUnder(p, excluded) {
			return filepath.SkipDir
		}
		if p == root {
			return nil
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil
		}
		if len(entries) == 0 {
			empty = append(empty, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Deepest first so nested hierarchies collapse in fewer passes.
	sort.Slice(empty, func(i, j int) bool { return len(empty[i]) > len(empty[j]) })
	return empty, nil
}

func isUnder(p, base string) bool {
	if p == base {
		return true
	}
	return strings.HasPrefix(p, base+string(filepath.Separator))
}
