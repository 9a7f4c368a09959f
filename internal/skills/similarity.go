package skills

import "math"

// FuzzyMatchThreshold is the minimum similarity ratio for two skills to count as the same
const FuzzyMatchThreshold = 0.85

// AreSimilarSkills reports whether two skills are equivalent: equal after normalization
// (which resolves known synonyms) or close enough by edit distance.
func AreSimilarSkills(a, b string) bool {
	na := NormalizeSkill(a)
	nb := NormalizeSkill(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}
	return SimilarityRatio(na, nb) >= FuzzyMatchThreshold
}

// SimilarityRatio returns 1 - levenshtein(a, b) / max(len(a), len(b)) over runes
func SimilarityRatio(a, b string) float64 {
	if a == b {
		return 1
	}
	ar, br := []rune(a), []rune(b)
	denom := max(len(ar), len(br))
	if denom == 0 {
		return 1
	}
	if len(ar) == 0 || len(br) == 0 {
		return 0
	}
	dist := levenshteinDistance(ar, br)
	return math.Max(0, 1-float64(dist)/float64(denom))
}

// levenshteinDistance computes edit distance with two rolling rows
func levenshteinDistance(a, b []rune) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i, ca := range a {
		curr[0] = i + 1
		for j, cb := range b {
			cost := 1
			if ca == cb {
				cost = 0
			}
			curr[j+1] = min(curr[j]+1, prev[j+1]+1, prev[j]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
