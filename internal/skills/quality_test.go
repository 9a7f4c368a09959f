package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompensationPowerFor(t *testing.T) {
	tests := []struct {
		match    float64
		expected float64
	}{
		{1.0, 0.7},
		{0.95, 0.7},
		{0.92, 0.5},
		{0.9, 0.5},
		{0.85, 0.3},
		{0.8, 0.3},
		{0.79, 0},
		{0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CompensationPowerFor(tt.match), "match=%.2f", tt.match)
	}
}

func TestAssessMatchQuality(t *testing.T) {
	result, err := DefaultMatcher().MatchSkills(
		[]string{"python", "react", "kubernetes"},
		[]string{"python", "vue"},
		nil,
	)
	require.NoError(t, err)

	quality := AssessMatchQuality(result, []string{"python", "kubernetes"})

	assert.Equal(t, []string{"python"}, quality.MatchedCoreSkills)
	assert.Equal(t, []string{"kubernetes"}, quality.MissingCoreSkills)
	assert.Equal(t, []string{"react"}, quality.MatchedPeripheralSkills)
	assert.InDelta(t, 0.5, quality.CoreSkillMatch, 0.0001)
	assert.InDelta(t, result.Score, quality.OverallMatch, 0.0001)
	assert.Equal(t, 0.0, quality.CompensationPower)
}

func TestAssessMatchQuality_NoCoreUsesOverall(t *testing.T) {
	result, err := DefaultMatcher().MatchSkills([]string{"go", "docker"}, []string{"go", "docker"}, nil)
	require.NoError(t, err)

	quality := AssessMatchQuality(result, nil)

	assert.Equal(t, 1.0, quality.CoreSkillMatch)
	assert.Equal(t, 0.7, quality.CompensationPower)
	assert.Equal(t, []string{"go", "docker"}, quality.MatchedPeripheralSkills)
}

func TestAssessMatchQuality_PotentialIsNotMatched(t *testing.T) {
	opts := DefaultMatchOptions()
	opts.EvidenceText = "Deployed with docker"
	result, err := DefaultMatcher().MatchSkills([]string{"docker"}, nil, &opts)
	require.NoError(t, err)

	quality := AssessMatchQuality(result, []string{"docker"})

	assert.Empty(t, quality.MatchedCoreSkills)
	assert.Equal(t, []string{"docker"}, quality.MissingCoreSkills)
	assert.Equal(t, 0.0, quality.CoreSkillMatch)
}

func TestAssessMatchQuality_NilResult(t *testing.T) {
	quality := AssessMatchQuality(nil, []string{"go"})
	assert.Equal(t, 0.0, quality.OverallMatch)
	assert.Empty(t, quality.MatchedCoreSkills)
}
