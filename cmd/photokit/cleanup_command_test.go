package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCleanupCommandDeletesJunkAndEmptyFolders(t *testing.T) {
	env := setupCLITestEnv(t)
	folder := filepath.Join(env.baseDir, "photos")

	junk := filepath.Join(folder, ".bak2024")
	writeFile(t, junk, "scratch")
	writeFile(t, filepath.Join(folder, "keep.jpg"), "x")
	empty := filepath.Join(folder, "old-trip")
	if err := os.MkdirAll(empty, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	out, _, err := runCLI(t, []string{"cleanup", folder, "--yes"}, env.configPath)
	if err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	requireContains(t, out, "Deleted 1 junk file and 1 empty folder.")

	if _, err := os.Stat(junk); !os.IsNotExist(err) {
		t.Fatalf("junk file should be gone, stat err = %v", err)
	}
	if _, err := os.Stat(empty); !os.IsNotExist(err) {
		t.Fatalf("empty folder should be gone, stat err = %v", err)
	}
	if _, err := os.Stat(filepath.Join(folder, "keep.jpg")); err != nil {
		t.Fatalf("regular file should survive: %v", err)
	}
}

func TestCleanupCommandDryRun(t *testing.T) {
	env := setupCLITestEnv(t)
	folder := filepath.Join(env.baseDir, "photos")

	junk := filepath.Join(folder, ".picasa.ini")
	writeFile(t, junk, "scratch")

	out, _, err := runCLI(t, []string{"cleanup", folder, "--dry-run"}, env.configPath)
	if err != nil {
		t.Fatalf("cleanup --dry-run: %v", err)
	}
	requireContains(t, out, "Would delete 1 junk file and 0 empty folders.")
	requireContains(t, out, junk)

	if _, err := os.Stat(junk); err != nil {
		t.Fatalf("dry run should not delete anything: %v", err)
	}
}

func TestCleanupCommandExcludedSubtree(t *testing.T) {
	env := setupCLITestEnv(t)
	folder := filepath.Join(env.baseDir, "photos")
	keepZone := filepath.Join(folder, "archive")

	protected := filepath.Join(keepZone, ".bak2020")
	writeFile(t, protected, "scratch")

	out, _, err := runCLI(t, []string{"cleanup", folder, "--exclude", keepZone, "--yes"}, env.configPath)
	if err != nil {
		t.Fatalf("cleanup --exclude: %v", err)
	}
	requireContains(t, out, "Deleted 0 junk files and 0 empty folders.")

	if _, err := os.Stat(protected); err != nil {
		t.Fatalf("excluded subtree should be untouched: %v", err)
	}
}

func TestCleanupCommandMissingFolder(t *testing.T) {
	env := setupCLITestEnv(t)
	missing := filepath.Join(env.baseDir, "no-such-folder")

	_, _, err := runCLI(t, []string{"cleanup", missing, "--yes"}, env.configPath)
	if err == nil {
		t.Fatal("expected missing-folder error")
	}
}
