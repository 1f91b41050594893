package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jdlocklin-backyard/photo-organizing/internal/services"
)

// Record describes one regular file inside the scanned folder. Records are
// immutable once built.
type Record struct {
	Path string
	Name string
	Stem string
	Ext  string
	Size int64
}

// Snapshot is the ordered catalog of eligible files in one folder, frozen at
// scan time. Skipped counts entries that could not be stat'd.
type Snapshot struct {
	Folder  string
	Records []Record
	Skipped int
}

// ExtensionSet is a lowercase extension allowlist (without leading dots).
// A nil set admits every file.
type ExtensionSet map[string]struct{}

// NewExtensionSet builds an ExtensionSet from a list of extensions, accepting
// entries with or without a leading dot and in any case.
func NewExtensionSet(exts []string) ExtensionSet {
	if len(exts) == 0 {
		return nil
	}
	set := make(ExtensionSet, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext == "" {
			continue
		}
		set[ext] = struct{}{}
	}
	return set
}

// Contains reports whether ext belongs to the set. A nil set contains
// everything.
func (s ExtensionSet) Contains(ext string) bool {
	if s == nil {
		return true
	}
	_, ok := s[ext]
	return ok
}

// Build scans folder (shallow, no recursion) and returns the snapshot of
// eligible regular files, ordered by name. It fails when folder does not
// exist or is not a directory; entries that cannot be stat'd are skipped and
// counted on the snapshot.
func Build(folder string, eligible ExtensionSet) (*Snapshot, error) {
	folder = filepath.Clean(folder)

	info, err := os.Stat(folder)
	if err != nil {
		return nil, services.Wrap(services.ErrNotFound, "catalog", "open folder", fmt.Sprintf("folder %q does not exist", folder), err)
	}
	if !info.IsDir() {
		return nil, services.Wrap(services.ErrNotFound, "catalog", "open folder", fmt.Sprintf("%q is not a directory", folder), nil)
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, services.Wrap(services.ErrPermission, "catalog", "read folder", fmt.Sprintf("cannot list %q", folder), err)
	}

	snap := &Snapshot{Folder: folder, Records: make([]Record, 0, len(entries))}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			snap.Skipped++
			continue
		}
		if !fi.Mode().IsRegular() {
			continue
		}

		name := entry.Name()
		stem, ext := SplitName(name)
		if !eligible.Contains(ext) {
			continue
		}
		snap.Records = append(snap.Records, Record{
			Path: filepath.Join(folder, name),
			Name: name,
			Stem: stem,
			Ext:  ext,
			Size: fi.Size(),
		})
	}

	sort.Slice(snap.Records, func(i, j int) bool { return snap.Records[i].Name < snap.Records[j].Name })
	return snap, nil
}

// SplitName splits a filename into its stem and lowercase extension. The
// extension is the suffix after the last dot, without the dot; names with no
// dot yield an empty extension and keep the full name as stem.
func SplitName(name string) (stem, ext string) {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return name, ""
	}
	return name[:idx], strings.ToLower(name[idx+1:])
}
