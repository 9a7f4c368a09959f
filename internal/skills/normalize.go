// Package skills provides skill normalization, extraction and matching against the technology catalog.
package skills

import (
	"regexp"
	"strings"
)

// skillNormalizations maps common skill name variants to canonical lowercase names
//
//nolint:gochecknoglobals // lookup table
var skillNormalizations = map[string]string{
	"golang":                 "go",
	"go lang":                "go",
	"js":                     "javascript",
	"ecmascript":             "javascript",
	"es6":                    "javascript",
	"ts":                     "typescript",
	"k8s":                    "kubernetes",
	"react.js":               "react",
	"reactjs":                "react",
	"vue.js":                 "vue",
	"vuejs":                  "vue",
	"angularjs":              "angular",
	"angular.js":             "angular",
	"nextjs":                 "next.js",
	"node":                   "node.js",
	"nodejs":                 "node.js",
	"expressjs":              "express",
	"express.js":             "express",
	"nest.js":                "nestjs",
	"postgres":               "postgresql",
	"psql":                   "postgresql",
	"mongo":                  "mongodb",
	"mssql":                  "sql server",
	"ms sql":                 "sql server",
	"elastic search":         "elasticsearch",
	"csharp":                 "c#",
	"c sharp":                "c#",
	"cpp":                    "c++",
	"dotnet":                 ".net",
	"ruby on rails":          "rails",
	"ror":                    "rails",
	"springboot":             "spring boot",
	"amazon web services":    "aws",
	"google cloud":           "gcp",
	"google cloud platform":  "gcp",
	"microsoft azure":        "azure",
	"ml":                     "machine learning",
	"sklearn":                "scikit-learn",
	"scikit learn":           "scikit-learn",
	"cicd":                   "ci/cd",
	"ci cd":                  "ci/cd",
	"continuous integration": "ci/cd",
	"gh actions":             "github actions",
	"restful":                "rest",
	"rest api":               "rest",
	"restful api":            "rest",
	"restful apis":           "rest",
	"rest apis":              "rest",
	"micro-services":         "microservices",
	"microservice":           "microservices",
	"shell":                  "bash",
	"objc":                   "objective-c",
}

var (
	versionSuffix  = regexp.MustCompile(`\s+v?\d+(\.\d+)*$`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
	listSeparators = regexp.MustCompile(`[,;|\n\r•·]+`)
)

// NormalizeSkill normalizes a skill name to its canonical lowercase form
func NormalizeSkill(skillName string) string {
	if skillName == "" {
		return ""
	}

	normalized := strings.ToLower(strings.TrimSpace(skillName))
	normalized = strings.Trim(normalized, "\"'()[]{}*-")
	normalized = strings.TrimRight(normalized, ".,;:!?")
	normalized = whitespaceRun.ReplaceAllString(normalized, " ")
	normalized = strings.TrimSpace(normalized)
	if normalized == "" {
		return ""
	}

	if canonical, ok := skillNormalizations[normalized]; ok {
		return canonical
	}

	// "Python 3", "Java 17"
	stripped := versionSuffix.ReplaceAllString(normalized, "")
	if stripped != normalized && stripped != "" {
		if canonical, ok := skillNormalizations[stripped]; ok {
			return canonical
		}
		return stripped
	}

	return normalized
}

// NormalizeSkills normalizes and deduplicates a list, preserving first-seen order
func NormalizeSkills(skillNames []string) []string {
	normalized := make([]string, 0, len(skillNames))
	seen := make(map[string]struct{}, len(skillNames))

	for _, skill := range skillNames {
		n := NormalizeSkill(skill)
		if n == "" {
			continue
		}
		if _, exists := seen[n]; exists {
			continue
		}
		seen[n] = struct{}{}
		normalized = append(normalized, n)
	}

	return normalized
}

// ParseSkillList splits a free-form skills string into normalized skills.
// Section labels such as "Languages: Go, Python" are dropped.
func ParseSkillList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var parts []string
	for _, line := range strings.Split(raw, "\n") {
		if idx := strings.Index(line, ":"); idx >= 0 && idx < len(line)-1 {
			line = line[idx+1:]
		}
		parts = append(parts, listSeparators.Split(line, -1)...)
	}

	return NormalizeSkills(parts)
}
