package density

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_Categories(t *testing.T) {
	result := Analyze("Backend engineer: Go and Python microservices on AWS with PostgreSQL and Docker.")

	require.Len(t, result.CategoryScores, len(Categories()))

	assert.ElementsMatch(t, []string{"python", "go"}, result.CategoryScores[CategoryLanguages].Matches)
	assert.ElementsMatch(t, []string{"postgresql"}, result.CategoryScores[CategoryDatabases].Matches)
	assert.ElementsMatch(t, []string{"aws", "docker"}, result.CategoryScores[CategoryCloudDevOps].Matches)
	assert.ElementsMatch(t, []string{"microservices", "backend"}, result.CategoryScores[CategoryConcepts].Matches)
	assert.ElementsMatch(t, []string{"engineer"}, result.CategoryScores[CategoryRoles].Matches)

	langs := result.CategoryScores[CategoryLanguages]
	assert.InDelta(t, 2.0/16.0, langs.Score, 0.0001)
}

func TestAnalyze_OverallScoreUsesDistinctMatches(t *testing.T) {
	result := Analyze("docker docker docker")

	assert.Equal(t, []string{"docker"}, result.Matches)
	assert.Equal(t, 1, result.MatchCount())
	assert.InDelta(t, 1.0/float64(globalKeywordCount), result.Score, 0.0001)
}

func TestAnalyze_WholeWordsOnly(t *testing.T) {
	result := Analyze("Going to the javascripting gallery")

	assert.Empty(t, result.Matches)
	assert.Equal(t, 0.0, result.Score)
}

func TestAnalyze_PhrasesBySubstring(t *testing.T) {
	result := Analyze("Experience with distributed systems and Node.js, CI/CD pipelines")

	assert.Contains(t, result.Matches, "distributed systems")
	assert.Contains(t, result.Matches, "node.js")
	assert.Contains(t, result.Matches, "ci/cd")
}

func TestAnalyze_Deterministic(t *testing.T) {
	text := "Senior software engineer with React, TypeScript, Kubernetes and Terraform"
	assert.Equal(t, Analyze(text), Analyze(text))
}

func TestAnalyze_NonTechnicalText(t *testing.T) {
	result := Analyze("Managed payroll, onboarding and employee relations")
	assert.Equal(t, 0.0, result.Score)
	for _, name := range Categories() {
		assert.Equal(t, 0.0, result.CategoryScores[name].Score)
	}
}

func TestAnalyze_Empty(t *testing.T) {
	result := Analyze("")
	assert.Equal(t, 0.0, result.Score)
	assert.NotNil(t, result.Matches)
}
