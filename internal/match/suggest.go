package match

import (
	"cmp"
	"slices"
)

// DefaultThreshold is the lowest score Suggest reports.
const DefaultThreshold = 0.6

// Candidate is a known name scored against a query.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is sorted by descending score, then by name.
type CandidateList []Candidate

// Rank scores every name against query and sorts the result.
//
// The score is the best of the similarity of the whole normalized names
// and the similarity of their unqualified parts.
func Rank(query string, names []string) CandidateList {
	q, qShort := Normalize(query), Normalize(Unqualified(query))

	out := make(CandidateList, 0, len(names))
	for _, name := range names {
		score := max(
			Similarity(q, Normalize(name)),
			Similarity(qShort, Normalize(Unqualified(name))),
		)
		out = append(out, Candidate{Name: name, Score: score})
	}

	slices.SortStableFunc(out, func(a, b Candidate) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})

	return out
}

// Above keeps the candidates scoring at least threshold.
func (l CandidateList) Above(threshold float64) CandidateList {
	i := slices.IndexFunc(l, func(c Candidate) bool { return c.Score < threshold })
	if i < 0 {
		return l
	}

	return l[:i]
}

// Names returns at most n candidate names, all of them when n <= 0.
func (l CandidateList) Names(n int) []string {
	if n > 0 && len(l) > n {
		l = l[:n]
	}

	names := make([]string, len(l))
	for i, c := range l {
		names[i] = c.Name
	}

	return names
}

// Suggest returns up to n names close enough to query to be offered
// as a correction. An exact match is never suggested.
func Suggest(query string, names []string, n int) []string {
	filtered := slices.DeleteFunc(slices.Clone(names), func(s string) bool { return s == query })

	return Rank(query, filtered).Above(DefaultThreshold).Names(n)
}
