// Package density scores free text for concentration of technical keywords.
package density

import (
	"sort"
	"strings"
	"unicode"
)

// Category names, in reporting order
const (
	CategoryLanguages   = "languages"
	CategoryFrameworks  = "frameworks"
	CategoryDatabases   = "databases"
	CategoryCloudDevOps = "cloud_devops"
	CategoryConcepts    = "concepts"
	CategoryRoles       = "roles"
)

// CategoryScore is the coverage of one keyword category
type CategoryScore struct {
	Score   float64  `json:"score"`
	Matches []string `json:"matches"`
}

// Result is the density analysis of a text
type Result struct {
	Score          float64                  `json:"score"`
	Matches        []string                 `json:"matches"`
	CategoryScores map[string]CategoryScore `json:"category_scores"`
}

// MatchCount returns the number of distinct keywords found
func (r *Result) MatchCount() int {
	return len(r.Matches)
}

type category struct {
	name     string
	keywords []string
}

//nolint:gochecknoglobals // keyword tables
var categories = []category{
	{CategoryLanguages, []string{
		"python", "java", "javascript", "typescript", "go", "golang", "rust", "c++", "c#",
		"ruby", "php", "kotlin", "swift", "scala", "sql", "bash",
	}},
	{CategoryFrameworks, []string{
		"react", "angular", "vue", "django", "flask", "fastapi", "spring", "express",
		"node.js", "next.js", "rails", "laravel", ".net", "tensorflow", "pytorch",
	}},
	{CategoryDatabases, []string{
		"postgresql", "postgres", "mysql", "mongodb", "redis", "elasticsearch", "cassandra",
		"dynamodb", "sqlite", "oracle", "database",
	}},
	{CategoryCloudDevOps, []string{
		"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "ansible", "jenkins",
		"ci/cd", "github actions", "linux", "helm", "devops",
	}},
	{CategoryConcepts, []string{
		"api", "rest", "graphql", "grpc", "microservices", "distributed systems", "algorithms",
		"data structures", "machine learning", "testing", "scalability", "architecture",
		"backend", "frontend", "full stack",
	}},
	{CategoryRoles, []string{
		"engineer", "developer", "programmer", "architect", "sre", "devops engineer",
		"data scientist", "software", "technical lead", "tech lead",
	}},
}

//nolint:gochecknoglobals // derived from categories
var globalKeywordCount = func() int {
	seen := make(map[string]struct{})
	for _, c := range categories {
		for _, k := range c.keywords {
			seen[k] = struct{}{}
		}
	}
	return len(seen)
}()

// Categories returns the category names in reporting order
func Categories() []string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.name
	}
	return names
}

// Analyze scores text for technical keyword density.
// Per-category score is matched/total keywords of that category; the overall score is
// distinct matches over the global keyword set.
func Analyze(text string) Result {
	result := Result{
		Matches:        []string{},
		CategoryScores: make(map[string]CategoryScore, len(categories)),
	}

	lower := strings.ToLower(text)
	words := tokenize(lower)
	union := make(map[string]struct{})

	for _, c := range categories {
		matches := []string{}
		for _, keyword := range c.keywords {
			if containsKeyword(lower, words, keyword) {
				matches = append(matches, keyword)
				union[keyword] = struct{}{}
			}
		}
		result.CategoryScores[c.name] = CategoryScore{
			Score:   float64(len(matches)) / float64(len(c.keywords)),
			Matches: matches,
		}
	}

	for keyword := range union {
		result.Matches = append(result.Matches, keyword)
	}
	sort.Strings(result.Matches)

	if globalKeywordCount > 0 {
		result.Score = float64(len(union)) / float64(globalKeywordCount)
	}
	return result
}

// containsKeyword tests single words against the token set and phrases by substring
func containsKeyword(lower string, words map[string]struct{}, keyword string) bool {
	if isPhrase(keyword) {
		return strings.Contains(lower, keyword)
	}
	_, ok := words[keyword]
	return ok
}

func isPhrase(keyword string) bool {
	return strings.ContainsAny(keyword, " ./")
}

func tokenize(lower string) map[string]struct{} {
	fields := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#'
	})
	words := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		words[f] = struct{}{}
	}
	return words
}
