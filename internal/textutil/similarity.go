package textutil

import "strings"

// NormalizeStem prepares a filename stem for comparison: surrounding
// whitespace is trimmed and the result is lowercased.
func NormalizeStem(stem string) string {
	return strings.ToLower(strings.TrimSpace(stem))
}

// Ratio returns the sequence-matching similarity of two strings in [0, 1].
// It is computed as 2*M/T, where T is the combined length of both inputs and
// M is the total size of the matching blocks found by a greedy
// longest-matching-block search (the classic diff "ratio" measure).
//
// Two empty strings are considered identical (ratio 1). The arguments are
// ordered canonically before matching, so Ratio(a, b) == Ratio(b, a) always
// holds. Callers are expected to normalize case and whitespace first; see
// NormalizeStem.
func Ratio(a, b string) float64 {
	if a > b {
		a, b = b, a
	}
	ar := []rune(a)
	br := []rune(b)
	total := len(ar) + len(br)
	if total == 0 {
		return 1
	}
	return 2 * float64(matchedRunes(ar, br)) / float64(total)
}

// matchedRunes sums the sizes of the matching blocks between a and b: it
// finds the longest common contiguous block, then recurses on the pieces to
// its left and right.
func matchedRunes(a, b []rune) int {
	positions := make(map[rune][]int, len(b))
	for j, r := range b {
		positions[r] = append(positions[r], j)
	}

	var match func(alo, ahi, blo, bhi int) int
	match = func(alo, ahi, blo, bhi int) int {
		besti, bestj, bestsize := alo, blo, 0
		// lengths[j] is the size of the longest block ending at a[i], b[j].
		lengths := make(map[int]int)
		for i := alo; i < ahi; i++ {
			next := make(map[int]int)
			for _, j := range positions[a[i]] {
				if j < blo {
					continue
				}
				if j >= bhi {
					break
				}
				k := lengths[j-1] + 1
				next[j] = k
				if k > bestsize {
					besti, bestj, bestsize = i-k+1, j-k+1, k
				}
			}
			lengths = next
		}
		if bestsize == 0 {
			return 0
		}
		return bestsize +
			match(alo, besti, blo, bestj) +
			match(besti+bestsize, ahi, bestj+bestsize, bhi)
	}

	return match(0, len(a), 0, len(b))
}
