package match

// Levenshtein returns the edit distance between a and b counted in runes:
// the minimum number of insertions, deletions and substitutions turning
// one into the other.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	// Two rows over the shorter string.
	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j, cb := range rb {
		curr[0] = j + 1

		for i, ca := range ra {
			cost := 1
			if ca == cb {
				cost = 0
			}

			curr[i+1] = min(prev[i+1]+1, curr[i]+1, prev[i]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Similarity maps the edit distance into [0, 1], 1 meaning equal strings.
func Similarity(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Levenshtein(a, b))/float64(longest)
}
