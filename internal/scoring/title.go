package scoring

import (
	"regexp"
	"strings"

	"github.com/jonathan/job-fit-scorer/internal/types"
)

const partialTitleCap = 0.5

//nolint:gochecknoglobals // lookup table
var titleStopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "the": {}, "of": {}, "for": {}, "in": {}, "to": {},
	"with": {}, "at": {}, "on": {}, "i": {}, "ii": {}, "iii": {}, "iv": {},
}

var titleNoise = regexp.MustCompile(`[^a-z0-9+#./ ]+`)

// normalizeTitle lowercases, strips punctuation and collapses whitespace
func normalizeTitle(title string) string {
	t := titleNoise.ReplaceAllString(strings.ToLower(title), " ")
	return strings.Join(strings.Fields(t), " ")
}

func significantWords(title string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, w := range strings.Fields(normalizeTitle(title)) {
		if _, stop := titleStopWords[w]; stop {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// TitleScore is 1.0 when any held title equals the job title after normalization, else the best
// fraction of the job title's significant words found in a held title, capped at 0.5
func TitleScore(jobTitle string, entries []types.WorkExperienceEntry) float64 {
	target := normalizeTitle(jobTitle)
	if target == "" || len(entries) == 0 {
		return 0
	}

	jobWords := significantWords(jobTitle)
	best := 0.0
	for _, e := range entries {
		if normalizeTitle(e.Title) == target {
			return 1.0
		}
		if len(jobWords) == 0 {
			continue
		}

		held := make(map[string]struct{})
		for _, w := range significantWords(e.Title) {
			held[w] = struct{}{}
		}
		shared := 0
		for _, w := range jobWords {
			if _, ok := held[w]; ok {
				shared++
			}
		}
		if frac := float64(shared) / float64(len(jobWords)); frac > best {
			best = frac
		}
	}

	if best > partialTitleCap {
		return partialTitleCap
	}
	return best
}

// TitleBonus is the additive final-score bonus: a full point for an exact title match,
// otherwise the partial title score
func TitleBonus(titleScore float64) float64 {
	return clamp01(titleScore)
}
