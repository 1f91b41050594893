package cleanup_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jdlocklin-backyard/photo-organizing/internal/cleanup"
	"github.com/jdlocklin-backyard/photo-organizing/internal/config"
	"github.com/jdlocklin-backyard/photo-organizing/internal/services"
)

func newCleaner() *cleanup.Cleaner {
	return cleanup.New(config.Default().Cleanup.JunkPatterns, nil)
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRunMissingFolder(t *testing.T) {
	_, err := newCleaner().Run(cleanup.Options{Folder: filepath.Join(t.TempDir(), "nope")})
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found marker, got %v", err)
	}
}

func TestRunDeletesJunkFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, ".BridgeCache"))
	touch(t, filepath.Join(dir, "sub", ".picasa.ini"))
	touch(t, filepath.Join(dir, "sub", ".bak2024"))
	touch(t, filepath.Join(dir, "sub", "keeper.jpg"))

	stats, err := newCleaner().Run(cleanup.Options{Folder: dir})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(stats.JunkFiles) != 3 {
		t.Fatalf("expected 3 junk files, got %v", stats.JunkFiles)
	}
	if _, err := os.Stat(filepath.Join(dir, "sub", "keeper.jpg")); err != nil {
		t.Fatalf("keeper.jpg must survive: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".BridgeCache")); !os.IsNotExist(err) {
		t.Fatal("junk file should be deleted")
	}
}

func TestRunJunkPatternsCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, ".bridgecache"))
	touch(t, filepath.Join(dir, ".PICASA.INI"))

	stats, err := newCleaner().Run(cleanup.Options{Folder: dir, DryRun: true})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(stats.JunkFiles) != 2 {
		t.Fatalf("expected case-insensitive matches, got %v", stats.JunkFiles)
	}
}

func TestRunCollapsesNestedEmptyFolders(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "a", "b", "c"), 0o755); err != nil {
		t.Fatal(err)
	}
	touch(t, filepath.Join(dir, "full", "img.jpg"))

	stats, err := newCleaner().Run(cleanup.Options{Folder: dir})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(stats.EmptyFolders) != 3 {
		t.Fatalf("expected a/b/c all removed, got %v", stats.EmptyFolders)
	}
	if _, err := os.Stat(filepath.Join(dir, "a")); !os.IsNotExist(err) {
		t.Fatal("nested empty hierarchy should collapse entirely")
	}
	if _, err := os.Stat(filepath.Join(dir, "full")); err != nil {
		t.Fatalf("non-empty folder must survive: %v", err)
	}
}

func TestRunFolderEmptiedByJunkDeletion(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "cache", ".BridgeCacheT"))

	stats, err := newCleaner().Run(cleanup.Options{Folder: dir})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(stats.JunkFiles) != 1 {
		t.Fatalf("expected junk file, got %v", stats.JunkFiles)
	}
	// The folder only held junk, so it should be gone too.
	if _, err := os.Stat(filepath.Join(dir, "cache")); !os.IsNotExist(err) {
		t.Fatal("folder emptied by junk deletion should be removed")
	}
}

func TestRunExcludedSubtreeUntouched(t *testing.T) {
	dir := t.TempDir()
	keep := filepath.Join(dir, "keep")
	touch(t, filepath.Join(keep, ".BridgeCache"))
	if err := os.MkdirAll(filepath.Join(keep, "empty"), 0o755); err != nil {
		t.Fatal(err)
	}

	stats, err := newCleaner().Run(cleanup.Options{Folder: dir, Excluded: keep})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(stats.JunkFiles) != 0 || len(stats.EmptyFolders) != 0 {
		t.Fatalf("excluded subtree was touched: %+v", stats)
	}
	if _, err := os.Stat(filepath.Join(keep, ".BridgeCache")); err != nil {
		t.Fatalf("excluded junk file should survive: %v", err)
	}
}

func TestRunDryRunDeletesNothing(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, ".BridgeCache"))
	if err := os.MkdirAll(filepath.Join(dir, "empty"), 0o755); err != nil {
		t.Fatal(err)
	}

	stats, err := newCleaner().Run(cleanup.Options{Folder: dir, DryRun: true})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(stats.JunkFiles) != 1 || len(stats.EmptyFolders) != 1 {
		t.Fatalf("unexpected dry-run stats: %+v", stats)
	}
	if _, err := os.Stat(filepath.Join(dir, ".BridgeCache")); err != nil {
		t.Fatalf("dry run must not delete files: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "empty")); err != nil {
		t.Fatalf("dry run must not delete folders: %v", err)
	}
}

func TestRunNoJunkNoEmpty(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "img.jpg"))

	stats, err := newCleaner().Run(cleanup.Options{Folder: dir})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(stats.JunkFiles) != 0 || len(stats.EmptyFolders) != 0 || len(stats.Errors) != 0 {
		t.Fatalf("expected clean stats, got %+v", stats)
	}
}
