package skills

import (
	"testing"

	"github.com/jonathan/job-fit-scorer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchSkills_ExactSetIsFullScore(t *testing.T) {
	result, err := DefaultMatcher().MatchSkills(
		[]string{"python", "django"},
		[]string{"Python", "Django"},
		nil,
	)
	require.NoError(t, err)

	assert.Equal(t, 1.0, result.Score)
	assert.Empty(t, result.MissingCritical)
	assert.Equal(t, 2, result.DirectCount())
	assert.Equal(t, 0, result.RelatedCount())
}

func TestMatchSkills_SynonymIsDirect(t *testing.T) {
	result, err := DefaultMatcher().MatchSkills([]string{"Golang"}, []string{"go"}, nil)
	require.NoError(t, err)

	require.Len(t, result.Matches, 1)
	assert.Equal(t, types.MatchDirect, result.Matches[0].MatchType)
	assert.Equal(t, 1.0, result.Score)
}

func TestMatchSkills_RelatedUsesGroupFactor(t *testing.T) {
	result, err := DefaultMatcher().MatchSkills([]string{"react"}, []string{"vue"}, nil)
	require.NoError(t, err)

	require.Len(t, result.Matches, 1)
	match := result.Matches[0]
	assert.Equal(t, types.MatchRelated, match.MatchType)
	assert.Equal(t, "vue", match.MatchedWith)
	assert.InDelta(t, 0.75, match.Confidence, 0.0001)
	assert.InDelta(t, 0.75, result.Score, 0.0001)

	require.Len(t, result.Compensations, 1)
	assert.Equal(t, "vue", result.Compensations[0].CompensatedBy)
	assert.Empty(t, result.MissingCritical)
}

func TestMatchSkills_MissingSuggestsAlternatives(t *testing.T) {
	result, err := DefaultMatcher().MatchSkills([]string{"kubernetes"}, []string{"python"}, nil)
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, []string{"kubernetes"}, result.MissingCritical)
	require.Len(t, result.Suggestions, 1)
	assert.Contains(t, result.Suggestions[0], "openshift, helm, nomad")
}

func TestMatchSkills_MixedScore(t *testing.T) {
	result, err := DefaultMatcher().MatchSkills(
		[]string{"python", "react", "kubernetes"},
		[]string{"python", "vue"},
		nil,
	)
	require.NoError(t, err)

	assert.InDelta(t, (1.0+0.75)/3.0, result.Score, 0.0001)
	assert.Equal(t, []string{"kubernetes"}, result.MissingCritical)
}

func TestMatchSkills_PotentialFromEvidence(t *testing.T) {
	opts := DefaultMatchOptions()
	opts.EvidenceText = "Containerized services with Docker"

	result, err := DefaultMatcher().MatchSkills([]string{"docker"}, []string{"python"}, &opts)
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, []string{"docker"}, result.MissingCritical)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, types.MatchPotential, result.Matches[0].MatchType)
	assert.Contains(t, result.Suggestions[0], "List docker explicitly")
}

func TestMatchSkills_Options(t *testing.T) {
	t.Run("compensation factor override", func(t *testing.T) {
		opts := DefaultMatchOptions()
		opts.CompensationFactor = 0.5

		result, err := DefaultMatcher().MatchSkills([]string{"react"}, []string{"vue"}, &opts)
		require.NoError(t, err)
		assert.InDelta(t, 0.5, result.Score, 0.0001)
	})

	t.Run("threshold drops weak related match", func(t *testing.T) {
		opts := DefaultMatchOptions()
		opts.MinimumThreshold = 0.8

		result, err := DefaultMatcher().MatchSkills([]string{"react"}, []string{"vue"}, &opts)
		require.NoError(t, err)
		assert.Equal(t, 0.0, result.Score)
		assert.Equal(t, []string{"react"}, result.MissingCritical)
	})

	t.Run("context multiplier scales confidence", func(t *testing.T) {
		opts := DefaultMatchOptions()
		opts.ContextMultiplier = 0.5

		result, err := DefaultMatcher().MatchSkills([]string{"go"}, []string{"go"}, &opts)
		require.NoError(t, err)
		assert.InDelta(t, 0.5, result.Score, 0.0001)
	})
}

func TestMatchSkills_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts MatchOptions
	}{
		{"zero base weight", MatchOptions{BaseWeight: 0, ContextMultiplier: 1}},
		{"negative multiplier", MatchOptions{BaseWeight: 1, ContextMultiplier: -1}},
		{"factor above one", MatchOptions{BaseWeight: 1, ContextMultiplier: 1, CompensationFactor: 1.5}},
		{"threshold above one", MatchOptions{BaseWeight: 1, ContextMultiplier: 1, MinimumThreshold: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DefaultMatcher().MatchSkills([]string{"go"}, []string{"go"}, &tt.opts)
			require.Error(t, err)
			var matchErr *MatchError
			assert.ErrorAs(t, err, &matchErr)
		})
	}
}

func TestMatchSkills_EmptyRequired(t *testing.T) {
	result, err := DefaultMatcher().MatchSkills(nil, []string{"go"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Score)
	assert.Empty(t, result.Matches)
}

func TestMatchSkills_UnknownSkillsDoNotError(t *testing.T) {
	result, err := DefaultMatcher().MatchSkills([]string{"cobol"}, []string{"fortran"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"cobol"}, result.MissingCritical)
	assert.Equal(t, "Consider gaining experience with cobol", result.Suggestions[0])
}
