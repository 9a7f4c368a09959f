package gate

import (
	"testing"
	"time"

	"github.com/jonathan/job-fit-scorer/internal/scoring"
	"github.com/jonathan/job-fit-scorer/internal/skills"
	"github.com/jonathan/job-fit-scorer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

func evaluate(t *testing.T, cfg Config, resume *types.Resume, job *types.JobDetails) *types.AssessmentResult {
	t.Helper()
	g, err := New(cfg, skills.DefaultMatcher())
	require.NoError(t, err)
	f, err := scoring.Extract(skills.DefaultMatcher(), resume, job, fixedNow)
	require.NoError(t, err)
	return g.Evaluate(f)
}

func suggestionTypes(result *types.AssessmentResult) []string {
	out := make([]string, 0, len(result.Suggestions))
	for _, s := range result.Suggestions {
		out = append(out, s.Type)
	}
	return out
}

func TestEvaluate_MissingEmphasizedSkillBlocks(t *testing.T) {
	resume := &types.Resume{Skills: "javascript"}
	job := &types.JobDetails{
		JobTitle:       "Frontend Developer",
		JobDescription: "We build frontends. React experience is required. Some JavaScript helps.",
		RequiredSkills: []string{"javascript", "react"},
	}

	result := evaluate(t, DefaultConfig(), resume, job)

	assert.False(t, result.IsCompatible)
	assert.Equal(t, 0.0, result.CompatibilityScore)
	assert.Equal(t, []string{"react"}, result.Metadata.MissingCriticalSkills)
	assert.Equal(t, CheckCriticalSkills, result.Metadata.BlockedBy)
	require.Len(t, result.Suggestions, 1)
	assert.Equal(t, types.SuggestionCriticalSkills, result.Suggestions[0].Type)
	assert.Equal(t, types.SeverityBlocking, result.Suggestions[0].Severity)
	assert.Equal(t, []string{"react"}, result.Suggestions[0].Skills)
}

func TestEvaluate_CriticalBlockStopsLaterChecks(t *testing.T) {
	resume := &types.Resume{Skills: "javascript"}
	job := &types.JobDetails{
		JobTitle:       "Barista",
		JobDescription: "React is required. 10+ years of experience required.",
		RequiredSkills: []string{"react"},
	}

	result := evaluate(t, DefaultConfig(), resume, job)

	assert.Equal(t, []string{CheckCriticalSkills}, result.Metadata.ChecksRun)
	assert.NotContains(t, suggestionTypes(result), types.SuggestionRoleType)
	assert.NotContains(t, suggestionTypes(result), types.SuggestionExperience)
	assert.Empty(t, result.Metadata.JobRoleType)
	assert.Zero(t, result.Metadata.RequiredYears)
}

func TestEvaluate_LargeExperienceGapBlocks(t *testing.T) {
	resume := &types.Resume{
		Skills: "Go",
		WorkExperience: []types.WorkExperienceEntry{
			{Title: "Software Engineer", Description: "Built Go services", StartDate: "2023-06"},
		},
	}
	job := &types.JobDetails{
		JobTitle:       "Backend Engineer",
		JobDescription: "5+ years of experience required. Go services.",
		RequiredSkills: []string{"go"},
	}

	result := evaluate(t, DefaultConfig(), resume, job)

	assert.False(t, result.IsCompatible)
	assert.Equal(t, CheckExperienceLevel, result.Metadata.BlockedBy)
	assert.InDelta(t, 0.2, result.Metadata.ExperienceRatio, 1e-9)
	assert.Equal(t, 5.0, result.Metadata.RequiredYears)
	require.Len(t, result.Suggestions, 1)
	assert.Equal(t, types.SuggestionExperience, result.Suggestions[0].Type)
	assert.Contains(t, result.Suggestions[0].Message, "requires 5 years")
	assert.Contains(t, result.Suggestions[0].Message, "you have 1.0")
}

func TestEvaluate_ExactSkillsPass(t *testing.T) {
	resume := &types.Resume{Skills: "python, django"}
	job := &types.JobDetails{
		JobTitle:       "Python Developer",
		JobDescription: "Build Django apps in Python.",
		RequiredSkills: []string{"python", "django"},
	}

	result := evaluate(t, DefaultConfig(), resume, job)

	assert.True(t, result.IsCompatible)
	assert.Empty(t, result.Metadata.MissingCriticalSkills)
	assert.Equal(t, 1.0, result.Metadata.SkillsScore)
	assert.Equal(t, 1.0, result.CompatibilityScore)
	assert.Equal(t, []string{CheckCriticalSkills, CheckRoleType, CheckExperienceLevel, CheckSkillsMatch},
		result.Metadata.ChecksRun)
	assert.Empty(t, result.Blockers())
}

func TestEvaluate_PartialExperienceWarns(t *testing.T) {
	resume := &types.Resume{
		Skills: "Go",
		WorkExperience: []types.WorkExperienceEntry{
			{Title: "Backend Engineer", Description: "Go APIs", StartDate: "2021-06"},
		},
	}
	job := &types.JobDetails{
		JobTitle:       "Backend Engineer",
		JobDescription: "5+ years of experience with Go.",
		RequiredSkills: []string{"go"},
	}

	result := evaluate(t, DefaultConfig(), resume, job)

	assert.True(t, result.IsCompatible)
	assert.True(t, result.Metadata.HasWarnings)
	assert.InDelta(t, 0.6, result.Metadata.ExperienceRatio, 1e-9)
	require.Len(t, result.Suggestions, 1)
	assert.Equal(t, types.SeverityWarning, result.Suggestions[0].Severity)
}

func TestEvaluate_FiveYearsAlwaysPasses(t *testing.T) {
	resume := &types.Resume{
		Skills: "Go",
		WorkExperience: []types.WorkExperienceEntry{
			{Title: "Backend Engineer", Description: "Go APIs", StartDate: "2019-06"},
		},
	}
	job := &types.JobDetails{
		JobTitle:       "Backend Engineer",
		JobDescription: "10+ years of experience with Go.",
		RequiredSkills: []string{"go"},
	}

	result := evaluate(t, DefaultConfig(), resume, job)

	assert.True(t, result.IsCompatible)
	assert.False(t, result.Metadata.HasWarnings)
	assert.InDelta(t, 0.5, result.Metadata.ExperienceRatio, 1e-9)
}

func TestEvaluate_RoleType(t *testing.T) {
	engineer := &types.Resume{
		Skills: "Go",
		WorkExperience: []types.WorkExperienceEntry{
			{Title: "Backend Engineer", Description: "Built Go services", StartDate: "2020-01"},
		},
	}

	tests := []struct {
		name     string
		resume   *types.Resume
		job      *types.JobDetails
		blocked  bool
		jobRole  string
		contains string
	}{
		{
			name:     "mismatched category",
			resume:   engineer,
			job:      &types.JobDetails{JobTitle: "Recruiter", JobDescription: "Source and hire candidates"},
			blocked:  true,
			jobRole:  RoleHR,
			contains: "hr role",
		},
		{
			name:     "undetermined job",
			resume:   engineer,
			job:      &types.JobDetails{JobTitle: "Barista", JobDescription: "Make coffee"},
			blocked:  true,
			jobRole:  "",
			contains: "Could not determine the role type",
		},
		{
			name: "candidate without any role",
			resume: &types.Resume{WorkExperience: []types.WorkExperienceEntry{
				{Title: "Cashier", Description: "Handled register", StartDate: "2020-01"},
			}},
			job:      &types.JobDetails{JobTitle: "Software Engineer"},
			blocked:  true,
			jobRole:  RoleTechnical,
			contains: "Could not determine a role type",
		},
		{
			name: "technical job without technical evidence",
			resume: &types.Resume{WorkExperience: []types.WorkExperienceEntry{
				{Title: "Sales Associate", Description: "Sold products", StartDate: "2020-01"},
			}},
			job:      &types.JobDetails{JobTitle: "Software Engineer"},
			blocked:  true,
			jobRole:  RoleTechnical,
			contains: "no technical skills",
		},
		{
			name: "technical evidence from work descriptions",
			resume: &types.Resume{WorkExperience: []types.WorkExperienceEntry{
				{Title: "Operations Specialist", Description: "Automated reports with Python and SQL", StartDate: "2020-01"},
			}},
			job:     &types.JobDetails{JobTitle: "Software Engineer"},
			blocked: false,
			jobRole: RoleTechnical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := evaluate(t, DefaultConfig(), tt.resume, tt.job)

			assert.Equal(t, tt.jobRole, result.Metadata.JobRoleType)
			if !tt.blocked {
				assert.NotEqual(t, CheckRoleType, result.Metadata.BlockedBy)
				return
			}
			assert.Equal(t, CheckRoleType, result.Metadata.BlockedBy)
			require.NotEmpty(t, result.Suggestions)
			last := result.Suggestions[len(result.Suggestions)-1]
			assert.Equal(t, types.SuggestionRoleType, last.Type)
			assert.Contains(t, last.Message, tt.contains)
			assert.NotContains(t, result.Metadata.ChecksRun, CheckExperienceLevel)
		})
	}
}

func TestEvaluate_LowSkillsMatchBlocks(t *testing.T) {
	resume := &types.Resume{
		Skills: "python",
		WorkExperience: []types.WorkExperienceEntry{
			{Title: "Software Engineer", StartDate: "2020-01"},
		},
	}
	job := &types.JobDetails{
		JobTitle:       "Backend Engineer",
		RequiredSkills: []string{"go", "kubernetes", "terraform", "kafka"},
	}

	result := evaluate(t, DefaultConfig(), resume, job)

	assert.False(t, result.IsCompatible)
	assert.Equal(t, CheckSkillsMatch, result.Metadata.BlockedBy)
	assert.Equal(t, 0.0, result.Metadata.SkillsScore)
	assert.Len(t, result.Metadata.ChecksRun, 4)
	assert.Equal(t, types.SuggestionSkillsMatch, result.Suggestions[0].Type)
}

func TestEvaluate_MaxMissingCriticalAllowsGap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxMissingCritical = 1

	resume := &types.Resume{Skills: "javascript"}
	job := &types.JobDetails{
		JobTitle:       "Frontend Developer",
		JobDescription: "React experience is required.",
		RequiredSkills: []string{"javascript", "react"},
	}

	result := evaluate(t, cfg, resume, job)

	assert.True(t, result.IsCompatible)
	assert.Equal(t, []string{"react"}, result.Metadata.MissingCriticalSkills)
	assert.InDelta(t, 0.5, result.Metadata.SkillsScore, 1e-9)
}

func TestSkillsMatchScore(t *testing.T) {
	match := &types.SkillMatchResult{Matches: []types.SkillMatch{
		{Skill: "go", MatchType: types.MatchDirect},
		{Skill: "react", MatchType: types.MatchRelated},
		{Skill: "docker", MatchType: types.MatchPotential},
	}}

	assert.InDelta(t, 0.7*(1.0/3)+0.3*(2.0/3), SkillsMatchScore(match, 3), 1e-9)
	assert.Equal(t, 1.0, SkillsMatchScore(match, 0))
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	for _, cfg := range []Config{
		{MaxMissingCritical: -1, MinExperienceRatio: 0.7, MinSkillScore: 0.3},
		{MinExperienceRatio: 1.5, MinSkillScore: 0.3},
		{MinExperienceRatio: 0.7, MinSkillScore: -0.1},
	} {
		err := cfg.Validate()
		require.Error(t, err)
		var cfgErr *ConfigError
		assert.ErrorAs(t, err, &cfgErr)
	}
}

func TestNew_NilMatcher(t *testing.T) {
	_, err := New(DefaultConfig(), nil)
	assert.Error(t, err)
}

func TestClassifyRole(t *testing.T) {
	tests := []struct {
		title, description string
		expected           string
	}{
		{"Senior Backend Engineer", "", RoleTechnical},
		{"Product Designer", "Own the UX of our app", RoleDesign},
		{"Account Executive", "Close new sales", RoleSales},
		{"Marketing Lead", "Run campaigns", RoleMarketing},
		{"Office Assistant", "", RoleAdministrative},
		{"Director of Operations", "", RoleManagement},
		{"Barista", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyRole(tt.title, tt.description))
		})
	}
}

func TestRoleScores_TitleOutweighsDescription(t *testing.T) {
	scores := RoleScores("Recruiter", "Partner with engineers")
	assert.Equal(t, 3, scores[RoleHR])
	assert.Equal(t, 1, scores[RoleTechnical])
}
