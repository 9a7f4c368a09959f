package experience

import (
	"regexp"
	"strconv"
	"strings"
)

// Years inferred from seniority wording when no explicit requirement is stated
const (
	inferredSeniorYears = 4.0
	inferredLeadYears   = 3.0
	inferredJuniorYears = 1.0
)

//nolint:gochecknoglobals // lookup table
var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "fifteen": 15,
}

const numberPattern = `(\d{1,2}|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve|fifteen)`

var (
	rangeYears   = regexp.MustCompile(numberPattern + `\s*(?:-|–|to)\s*` + numberPattern + `\+?\s*(?:years?|yrs?)\b`)
	minimumYears = regexp.MustCompile(`(?:at least|minimum(?: of)?|min\.?)\s+` + numberPattern + `\+?\s*(?:years?|yrs?)\b`)
	plusYears    = regexp.MustCompile(numberPattern + `\s*\+?\s*(?:years?|yrs?)\b(?:\s+of)?(?:\s+[a-z0-9/#+.\-]+){0,4}?\s+(?:experience|exp)\b`)
	leadingYears = regexp.MustCompile(`experience[^.\n]{0,20}?` + numberPattern + `\s*\+?\s*(?:years?|yrs?)\b`)

	seniorWords = regexp.MustCompile(`\b(?:senior|sr\.?)\b`)
	leadWords   = regexp.MustCompile(`\blead\b`)
	juniorWords = regexp.MustCompile(`\b(?:junior|jr\.?|entry[- ]level)\b`)
)

// ExtractRequiredYears reads the years of experience a job text asks for.
// Explicit phrasing ("5+ years of experience", "at least 3 years", "3-5 years") wins and the
// largest stated requirement is returned; ranges count their lower bound. Otherwise the value is
// inferred from seniority words: senior 4, lead 3, junior 1. Returns false when nothing applies.
func ExtractRequiredYears(text string) (float64, bool) {
	lower := strings.ToLower(text)

	best := -1
	consider := func(v int) {
		if v > best {
			best = v
		}
	}

	rangeSpans := rangeYears.FindAllStringSubmatchIndex(lower, -1)
	for _, m := range rangeSpans {
		consider(parseNumber(lower[m[2]:m[3]]))
	}
	for _, re := range []*regexp.Regexp{minimumYears, plusYears, leadingYears} {
		for _, m := range re.FindAllStringSubmatchIndex(lower, -1) {
			if insideAny(m[2], rangeSpans) {
				// upper bound of a range already counted by its lower bound
				continue
			}
			consider(parseNumber(lower[m[2]:m[3]]))
		}
	}
	if best > 0 {
		return float64(best), true
	}

	switch {
	case seniorWords.MatchString(lower):
		return inferredSeniorYears, true
	case leadWords.MatchString(lower):
		return inferredLeadYears, true
	case juniorWords.MatchString(lower):
		return inferredJuniorYears, true
	}
	return 0, false
}

func parseNumber(s string) int {
	if n, ok := numberWords[s]; ok {
		return n
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n
}

func insideAny(pos int, spans [][]int) bool {
	for _, s := range spans {
		if pos >= s[0] && pos < s[1] {
			return true
		}
	}
	return false
}
