package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsSingleton(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestGroup_PrimaryAndRelatedMembership(t *testing.T) {
	c := Default()

	group, ok := c.Group("React")
	require.True(t, ok)
	assert.Equal(t, "react", group.PrimaryName)

	relatedGroup, ok := c.Group("vue")
	require.True(t, ok)
	assert.Equal(t, "react", relatedGroup.PrimaryName)
	assert.Equal(t, CategoryFramework, relatedGroup.Category)
}

func TestGroup_ReturnsCopy(t *testing.T) {
	c := Default()

	group, ok := c.Group("react")
	require.True(t, ok)
	group.PrimaryName = "changed"
	group.RelatedNames[0] = "changed"
	group.CompensationFactor = 0

	again, ok := c.Group("react")
	require.True(t, ok)
	assert.Equal(t, "react", again.PrimaryName)
	assert.NotContains(t, again.RelatedNames, "changed")
	assert.InDelta(t, 0.75, c.CompensationFactor("angular"), 0.0001)
	assert.Contains(t, c.Related("react"), "vue")
}

func TestGroup_Unknown(t *testing.T) {
	group, ok := Default().Group("cobol-85")
	assert.False(t, ok)
	assert.Empty(t, group.PrimaryName)
	assert.False(t, Default().Contains("cobol-85"))
	assert.True(t, Default().Contains(" Vue "))
}

func TestRelated_ExcludesToken(t *testing.T) {
	related := Default().Related("vue")

	assert.Contains(t, related, "react")
	assert.Contains(t, related, "angular")
	assert.NotContains(t, related, "vue")
}

func TestRelated_UnknownToken(t *testing.T) {
	assert.Empty(t, Default().Related("cobol-85"))
}

func TestAreRelated(t *testing.T) {
	c := Default()
	assert.True(t, c.AreRelated("postgresql", "mysql"))
	assert.True(t, c.AreRelated("sql", "postgresql"))
	assert.False(t, c.AreRelated("postgresql", "react"))
	assert.False(t, c.AreRelated("unknown", "react"))
}

func TestCompensationFactor(t *testing.T) {
	c := Default()
	assert.InDelta(t, 0.75, c.CompensationFactor("angular"), 0.0001)
	assert.InDelta(t, DefaultCompensationFactor, c.CompensationFactor("not-a-tech"), 0.0001)
}

func TestFactor_FallsBackWhenUnset(t *testing.T) {
	c := New([]TechnologyGroup{{PrimaryName: "Foo", RelatedNames: []string{"Bar"}}})
	assert.InDelta(t, DefaultCompensationFactor, c.CompensationFactor("bar"), 0.0001)
}

func TestRelevance_DefaultsForUnknown(t *testing.T) {
	c := Default()
	assert.Equal(t, 1.0, c.Relevance("go"))
	assert.Equal(t, DefaultRelevance, c.Relevance("basket weaving"))
}

func TestNew_FirstGroupWins(t *testing.T) {
	c := New([]TechnologyGroup{
		{PrimaryName: "alpha", RelatedNames: []string{"shared"}, Category: "one"},
		{PrimaryName: "beta", RelatedNames: []string{"shared"}, Category: "two"},
	})

	assert.Equal(t, "one", c.Category("shared"))
	assert.Len(t, c.Tokens(), 3)
}

func TestTokens_LongestFirst(t *testing.T) {
	tokens := Default().Tokens()
	require.NotEmpty(t, tokens)
	for i := 1; i < len(tokens); i++ {
		assert.GreaterOrEqual(t, len(tokens[i-1]), len(tokens[i]))
	}
}
