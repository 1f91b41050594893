// Package dedupe implements the duplicate-candidate grouping engine.
//
// The pipeline is a pure function over an immutable catalog snapshot:
// exclusion filtering (protected names and an optional exclude-folder
// subtraction), exact bucketing by (extension, size), then fuzzy stem
// similarity inside each bucket. Mutually-or-transitively similar files form
// one group via connected components, so duplicate-naming chains like
// "IMG_001", "IMG_001_copy", "IMG_001_copy_copy" are reported together even
// when the chain ends drift below the pairwise threshold.
//
// Grouping is advisory only: nothing in this package touches the filesystem
// beyond the reads performed by the catalog package.
package dedupe
