package skills

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/jonathan/job-fit-scorer/internal/catalog"
)

// emphasisWords mark a sentence as stating hard requirements
//
//nolint:gochecknoglobals // lookup table
var emphasisWords = []string{
	"required", "require", "requires", "requirement", "requirements",
	"must", "must-have", "essential", "mandatory", "critical",
}

var sentenceBreak = regexp.MustCompile(`[.!?]\s+|\n+`)

// surface is a spelling of a skill as it may appear in free text
type surface struct {
	text      string
	canonical string
}

// Matcher extracts and matches skills against a technology catalog
type Matcher struct {
	catalog  *catalog.Catalog
	surfaces []surface
}

// NewMatcher creates a matcher bound to the given catalog
func NewMatcher(c *catalog.Catalog) (*Matcher, error) {
	if c == nil {
		return nil, &MatchError{Message: "catalog is nil"}
	}

	m := &Matcher{catalog: c}
	seen := make(map[string]struct{})
	add := func(text, canonical string) {
		if text == "" {
			return
		}
		if _, ok := seen[text]; ok {
			return
		}
		seen[text] = struct{}{}
		m.surfaces = append(m.surfaces, surface{text: text, canonical: canonical})
	}

	for _, token := range c.Tokens() {
		add(token, token)
	}
	for alias, canonical := range skillNormalizations {
		if c.Contains(canonical) {
			add(alias, canonical)
		}
	}

	sort.SliceStable(m.surfaces, func(i, j int) bool {
		a, b := m.surfaces[i].text, m.surfaces[j].text
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})

	return m, nil
}

var (
	defaultMatcherOnce sync.Once
	defaultMatcher     *Matcher
)

// DefaultMatcher returns a matcher over the built-in catalog
func DefaultMatcher() *Matcher {
	defaultMatcherOnce.Do(func() {
		// catalog.Default is never nil
		defaultMatcher, _ = NewMatcher(catalog.Default())
	})
	return defaultMatcher
}

// Catalog returns the catalog the matcher uses
func (m *Matcher) Catalog() *catalog.Catalog {
	return m.catalog
}

// ExtractSkills returns every known skill mentioned in text, canonicalized, in order of first appearance.
// Longer spellings win over the shorter tokens they contain ("spring boot" over "spring").
func (m *Matcher) ExtractSkills(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	buf := []byte(strings.ToLower(text))
	firstSeen := make(map[string]int)

	for _, s := range m.surfaces {
		positions := findToken(buf, s.text)
		if len(positions) == 0 {
			continue
		}
		if prev, ok := firstSeen[s.canonical]; !ok || positions[0] < prev {
			firstSeen[s.canonical] = positions[0]
		}
		mask(buf, positions, len(s.text))
	}

	found := make([]string, 0, len(firstSeen))
	for skill := range firstSeen {
		found = append(found, skill)
	}
	sort.Slice(found, func(i, j int) bool {
		if firstSeen[found[i]] != firstSeen[found[j]] {
			return firstSeen[found[i]] < firstSeen[found[j]]
		}
		return found[i] < found[j]
	})

	return found
}

// CountMentions counts whole-word mentions of a skill, including its known synonyms
func (m *Matcher) CountMentions(text, skill string) int {
	canonical := NormalizeSkill(skill)
	if canonical == "" || text == "" {
		return 0
	}

	spellings := []string{canonical}
	for alias, target := range skillNormalizations {
		if target == canonical {
			spellings = append(spellings, alias)
		}
	}
	sort.SliceStable(spellings, func(i, j int) bool {
		if len(spellings[i]) != len(spellings[j]) {
			return len(spellings[i]) > len(spellings[j])
		}
		return spellings[i] < spellings[j]
	})

	buf := []byte(strings.ToLower(text))
	count := 0
	for _, sp := range spellings {
		positions := findToken(buf, sp)
		count += len(positions)
		mask(buf, positions, len(sp))
	}
	return count
}

// CoreSkills returns the required skills the job text emphasizes: those named in a sentence
// containing requirement language, plus those mentioned at least twice. Order follows required.
func (m *Matcher) CoreSkills(jobText string, required []string) []string {
	if strings.TrimSpace(jobText) == "" || len(required) == 0 {
		return nil
	}

	var emphasized []string
	for _, sentence := range sentenceBreak.Split(jobText, -1) {
		if hasEmphasis(sentence) {
			emphasized = append(emphasized, sentence)
		}
	}

	var core []string
	for _, skill := range NormalizeSkills(required) {
		if m.CountMentions(jobText, skill) >= 2 {
			core = append(core, skill)
			continue
		}
		for _, sentence := range emphasized {
			if m.CountMentions(sentence, skill) > 0 {
				core = append(core, skill)
				break
			}
		}
	}
	return core
}

// ContainsWord reports whether text contains the phrase as a whole word, case-insensitively
func ContainsWord(text, phrase string) bool {
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	if phrase == "" {
		return false
	}
	return len(findToken([]byte(strings.ToLower(text)), phrase)) > 0
}

func hasEmphasis(sentence string) bool {
	lower := []byte(strings.ToLower(sentence))
	for _, w := range emphasisWords {
		if len(findToken(lower, w)) > 0 {
			return true
		}
	}
	return false
}

// findToken returns the start offsets of non-overlapping whole-word occurrences of token in text.
// text and token must already be lowercase.
func findToken(text []byte, token string) []int {
	if token == "" || len(token) > len(text) {
		return nil
	}

	var positions []int
	s := string(text)
	start := 0
	for start <= len(s)-len(token) {
		idx := strings.Index(s[start:], token)
		if idx < 0 {
			break
		}
		pos := start + idx
		end := pos + len(token)
		if boundaryBefore(text, pos) && boundaryAfter(text, end) {
			positions = append(positions, pos)
			start = end
			continue
		}
		start = pos + 1
	}
	return positions
}

func boundaryBefore(text []byte, pos int) bool {
	if pos == 0 {
		return true
	}
	prev := text[pos-1]
	// "node.js" must not yield "js"
	return !isWordByte(prev) && prev != '.'
}

func boundaryAfter(text []byte, end int) bool {
	if end >= len(text) {
		return true
	}
	next := text[end]
	if next == '.' {
		// sentence-ending period is fine, "react.js" is not "react"
		return end+1 >= len(text) || !isAlnum(text[end+1])
	}
	return !isWordByte(next)
}

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}

func isWordByte(b byte) bool {
	return isAlnum(b) || b == '+' || b == '#' || b == '-' || b == '_' || b >= 0x80
}

func mask(buf []byte, positions []int, length int) {
	for _, pos := range positions {
		for i := pos; i < pos+length && i < len(buf); i++ {
			buf[i] = ' '
		}
	}
}
