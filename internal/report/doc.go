// Package report renders duplicate-candidate groups for human review.
//
// Rendering is side-effect free: the reporter never deletes or touches the
// filesystem. Member names appear in lexicographic order so output is
// reproducible across runs on unchanged input. Shared sizes are formatted
// with the decimal (SI) convention, 1 kB = 1000 bytes.
package report
