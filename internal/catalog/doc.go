// Package catalog builds immutable snapshots of the media files directly
// inside one folder.
//
// A snapshot is taken once at scan start and never mutated afterwards: the
// dedupe pipeline operates on it as a pure function. Entries that cannot be
// stat'd are skipped and counted so callers can surface the loss instead of
// silently swallowing it.
package catalog
