// Package textutil provides text comparison helpers for filename matching.
//
// The primary use case is scoring how alike two filename stems are so that
// near-identical names (trailing "_copy", "_1", "(1)" and similar duplicate
// suffixes) can be recognized without hand-written pattern rules. The score
// is a character-level sequence-matching ratio in the style of diff tools:
// 2*M/T where M is the total length of the matching blocks and T the
// combined length of both inputs.
package textutil
