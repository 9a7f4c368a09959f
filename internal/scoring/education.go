package scoring

import (
	"strings"
	"time"

	"github.com/jonathan/job-fit-scorer/internal/experience"
	"github.com/jonathan/job-fit-scorer/internal/skills"
	"github.com/jonathan/job-fit-scorer/internal/types"
)

const (
	educationRecencyBonus = 0.2
	educationRecencyYears = 5
	unrelatedFieldScore   = 0.2
	relatedFieldScore     = 0.7
)

// degreeRank maps degree types to numeric ranks for comparison
//
//nolint:gochecknoglobals // lookup table
var degreeRank = map[string]int{
	"associate": 1,
	"bachelor":  2,
	"master":    3,
	"phd":       4,
}

type degreeAlias struct {
	alias string
	level string
}

// degreeAliases are matched as whole words against a candidate's degree
//
//nolint:gochecknoglobals // lookup table
var degreeAliases = []degreeAlias{
	{"ph.d", "phd"},
	{"phd", "phd"},
	{"doctorate", "phd"},
	{"master", "master"},
	{"masters", "master"},
	{"msc", "master"},
	{"m.s.", "master"},
	{"mba", "master"},
	{"bachelor", "bachelor"},
	{"bachelors", "bachelor"},
	{"bsc", "bachelor"},
	{"b.s.", "bachelor"},
	{"b.a.", "bachelor"},
	{"b.tech", "bachelor"},
	{"associate", "associate"},
	{"associates", "associate"},
}

// jobDegreeAliases are matched as whole words in job text. Bare "master" and "associate"
// are left out: "scrum master" and "associate engineer" are not degree requirements.
//
//nolint:gochecknoglobals // lookup table
var jobDegreeAliases = []degreeAlias{
	{"ph.d", "phd"},
	{"phd", "phd"},
	{"doctorate", "phd"},
	{"master's", "master"},
	{"master’s", "master"},
	{"masters", "master"},
	{"master of", "master"},
	{"master degree", "master"},
	{"msc", "master"},
	{"m.s.", "master"},
	{"mba", "master"},
	{"bachelor", "bachelor"},
	{"bachelors", "bachelor"},
	{"bachelor’s", "bachelor"},
	{"bsc", "bachelor"},
	{"b.s.", "bachelor"},
	{"b.a.", "bachelor"},
	{"b.tech", "bachelor"},
	{"associate's", "associate"},
	{"associate’s", "associate"},
	{"associate degree", "associate"},
	{"associates degree", "associate"},
	{"associate of", "associate"},
}

// relatedFields lists fields that partially satisfy a preferred field
//
//nolint:gochecknoglobals // lookup table
var relatedFields = map[string][]string{
	"computer science":        {"software engineering", "computer engineering", "information technology", "cs"},
	"software engineering":    {"computer science", "computer engineering", "cs"},
	"computer engineering":    {"computer science", "electrical engineering", "software engineering"},
	"data science":            {"statistics", "mathematics", "computer science", "machine learning"},
	"statistics":              {"mathematics", "data science", "economics"},
	"mathematics":             {"statistics", "physics", "computer science"},
	"electrical engineering":  {"computer engineering", "electronics"},
	"information technology":  {"computer science", "information systems"},
	"business administration": {"business", "economics", "finance", "management"},
}

// knownFields are the fields of study recognized in job text, longest first
//
//nolint:gochecknoglobals // lookup table
var knownFields = []string{
	"human-computer interaction", "business administration", "electrical engineering",
	"information technology", "software engineering", "computer engineering",
	"information systems", "computer science", "data science", "mathematics", "statistics",
	"economics", "physics",
}

// EducationScore is the best field relevance across education entries (degree level weighted
// in when the job states one) plus a flat bonus for graduation within five years, capped at 1
func EducationScore(edu []types.Education, job *types.JobDetails, now time.Time) float64 {
	if len(edu) == 0 {
		return 0
	}

	jobText := strings.ToLower(job.FullText())
	preferred := fieldsIn(jobText)
	minDegree := degreeIn(jobText, jobDegreeAliases)

	best := 0.0
	for _, e := range edu {
		score := educationEntryScore(e, preferred, minDegree)
		if recentGraduate(e.GraduationDate, now) {
			score += educationRecencyBonus
		}
		if score > best {
			best = score
		}
	}
	return clamp01(best)
}

func educationEntryScore(e types.Education, preferred []string, minDegree string) float64 {
	fieldScore := neutralScore
	if len(preferred) > 0 {
		fieldScore = computeFieldMatchScore(e.Field, preferred)
	}
	if minDegree == "" {
		return fieldScore
	}

	// Degree level 60%, field 40%
	reqRank := degreeRank[minDegree]
	eduRank := degreeRank[degreeIn(e.Degree, degreeAliases)]
	degreeScore := 0.0
	switch {
	case eduRank >= reqRank:
		degreeScore = 1.0
	case eduRank == reqRank-1:
		degreeScore = 0.5
	}
	return 0.6*degreeScore + 0.4*fieldScore
}

// computeFieldMatchScore computes how well the education field matches preferred fields.
// Fields match on whole words: "Computer Science and Mathematics" names computer science,
// "Science" alone does not.
func computeFieldMatchScore(field string, preferredFields []string) float64 {
	fieldLower := strings.ToLower(strings.TrimSpace(field))
	if fieldLower == "" {
		return unrelatedFieldScore
	}

	for _, preferred := range preferredFields {
		if skills.ContainsWord(fieldLower, preferred) {
			return 1.0
		}
	}

	for _, preferred := range preferredFields {
		for _, r := range relatedFields[preferred] {
			if skills.ContainsWord(fieldLower, r) {
				return relatedFieldScore
			}
		}
	}

	return unrelatedFieldScore
}

func fieldsIn(lower string) []string {
	var out []string
	for _, f := range knownFields {
		if skills.ContainsWord(lower, f) {
			out = append(out, f)
			lower = strings.ReplaceAll(lower, f, " ")
		}
	}
	return out
}

// degreeIn returns the lowest degree level named in text, or ""
func degreeIn(text string, aliases []degreeAlias) string {
	level := ""
	for _, d := range aliases {
		if skills.ContainsWord(text, d.alias) {
			if level == "" || degreeRank[d.level] < degreeRank[level] {
				level = d.level
			}
		}
	}
	return level
}

func recentGraduate(date string, now time.Time) bool {
	if date == "" {
		return false
	}
	grad, err := experience.ParseDate(date)
	if err != nil {
		return false
	}
	return !grad.After(now) && experience.MonthsBetween(grad, now) <= educationRecencyYears*12
}
