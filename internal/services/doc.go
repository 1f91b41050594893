// Package services defines shared error-handling utilities consumed by the
// photokit tools.
//
// It owns the structured error markers plus the Wrap helper that tag failures
// for later classification: fatal folder-access problems versus recoverable
// per-file issues. Use these helpers when wiring new tool logic so error
// messages stay uniform across the toolkit.
package services
