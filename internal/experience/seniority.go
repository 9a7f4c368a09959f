package experience

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/job-fit-scorer/internal/types"
)

const (
	defaultSeniorityConfidence = 0.6
	maxSeniorityConfidence     = 0.95
)

//nolint:gochecknoglobals // indicator tables, most senior first
var seniorityIndicators = []struct {
	level types.SeniorityLevel
	words []string
}{
	{types.SeniorityExpert, []string{"principal", "distinguished", "chief", "cto", "vp", "fellow", "director"}},
	{types.SenioritySenior, []string{"senior", "sr", "lead", "staff", "architect", "head"}},
	{types.SeniorityJunior, []string{"junior", "jr", "intern", "internship", "entry-level", "graduate", "trainee", "apprentice"}},
}

var wordSplit = regexp.MustCompile(`[^a-z0-9\-]+`)

// InferSeniority classifies text by counting seniority indicator words.
// Confidence grows with indicator density; without indicators the result is MID at 0.6.
func InferSeniority(text string) (types.SeniorityLevel, float64) {
	words := splitWords(text)
	if len(words) == 0 {
		return types.SeniorityMid, defaultSeniorityConfidence
	}

	counts := make(map[types.SeniorityLevel]int, len(seniorityIndicators))
	for _, w := range words {
		for _, group := range seniorityIndicators {
			for _, indicator := range group.words {
				if w == indicator {
					counts[group.level]++
				}
			}
		}
	}

	best := types.SeniorityMid
	bestCount := 0
	for _, group := range seniorityIndicators {
		if counts[group.level] > bestCount {
			best = group.level
			bestCount = counts[group.level]
		}
	}
	if bestCount == 0 {
		return types.SeniorityMid, defaultSeniorityConfidence
	}

	density := float64(bestCount) / float64(len(words))
	return best, math.Min(maxSeniorityConfidence, 0.5+density*5)
}

// SeniorityRank orders levels from 0 (junior) to 3 (expert)
func SeniorityRank(level types.SeniorityLevel) int {
	switch level {
	case types.SeniorityJunior:
		return 0
	case types.SenioritySenior:
		return 2
	case types.SeniorityExpert:
		return 3
	default:
		return 1
	}
}

// SeniorityAlignment scores how close two levels are: same 1.0, adjacent 0.6, otherwise 0.2
func SeniorityAlignment(candidate, required types.SeniorityLevel) float64 {
	diff := SeniorityRank(candidate) - SeniorityRank(required)
	if diff < 0 {
		diff = -diff
	}
	switch diff {
	case 0:
		return 1.0
	case 1:
		return 0.6
	default:
		return 0.2
	}
}

func splitWords(text string) []string {
	var words []string
	for _, w := range wordSplit.Split(strings.ToLower(text), -1) {
		w = strings.Trim(w, "-")
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}
