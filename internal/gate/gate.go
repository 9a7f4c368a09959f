// Package gate runs the blocking compatibility checks that precede full scoring.
package gate

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-fit-scorer/internal/density"
	"github.com/jonathan/job-fit-scorer/internal/scoring"
	"github.com/jonathan/job-fit-scorer/internal/skills"
	"github.com/jonathan/job-fit-scorer/internal/types"
)

// Check names, in evaluation order
const (
	CheckCriticalSkills  = "critical_skills"
	CheckRoleType        = "role_type"
	CheckExperienceLevel = "experience_level"
	CheckSkillsMatch     = "skills_match"
)

const (
	blockingExperienceRatio = 0.5
	seniorCandidateYears    = 5.0
	exactSkillWeight        = 0.7
	coverageSkillWeight     = 0.3
	minTechnicalDensityHits = 2
)

// Config holds the gate thresholds
type Config struct {
	MaxMissingCritical int     `json:"max_missing_critical" mapstructure:"max_missing_critical"`
	MinExperienceRatio float64 `json:"min_experience_ratio" mapstructure:"min_experience_ratio"`
	MinSkillScore      float64 `json:"min_skill_score" mapstructure:"min_skill_score"`
}

// DefaultConfig returns the default gate thresholds
func DefaultConfig() Config {
	return Config{
		MaxMissingCritical: 0,
		MinExperienceRatio: 0.7,
		MinSkillScore:      0.3,
	}
}

// Validate checks the threshold ranges
func (c Config) Validate() error {
	if c.MaxMissingCritical < 0 {
		return &ConfigError{Message: fmt.Sprintf("max_missing_critical must be >= 0, got %d", c.MaxMissingCritical)}
	}
	if c.MinExperienceRatio < 0 || c.MinExperienceRatio > 1 {
		return &ConfigError{Message: fmt.Sprintf("min_experience_ratio must be in [0,1], got %.2f", c.MinExperienceRatio)}
	}
	if c.MinSkillScore < 0 || c.MinSkillScore > 1 {
		return &ConfigError{Message: fmt.Sprintf("min_skill_score must be in [0,1], got %.2f", c.MinSkillScore)}
	}
	return nil
}

// Gate evaluates the compatibility checks strictly in order, stopping at the first block
type Gate struct {
	cfg     Config
	matcher *skills.Matcher
}

// New creates a gate
func New(cfg Config, m *skills.Matcher) (*Gate, error) {
	if m == nil {
		return nil, &ConfigError{Message: "matcher is nil"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Gate{cfg: cfg, matcher: m}, nil
}

// Config returns the gate thresholds
func (g *Gate) Config() Config {
	return g.cfg
}

type check struct {
	name string
	run  func(*scoring.Features, *types.AssessmentResult) bool
}

// Evaluate runs critical skills, role type, experience level and skills match checks.
// A failing check records a blocking suggestion and no later check runs.
func (g *Gate) Evaluate(f *scoring.Features) *types.AssessmentResult {
	result := &types.AssessmentResult{
		Suggestions: []types.Suggestion{},
		Metadata: types.AssessmentMetadata{
			ChecksRun: []string{},
		},
	}

	checks := []check{
		{CheckCriticalSkills, g.checkCriticalSkills},
		{CheckRoleType, g.checkRoleType},
		{CheckExperienceLevel, g.checkExperienceLevel},
		{CheckSkillsMatch, g.checkSkillsMatch},
	}

	for _, c := range checks {
		result.Metadata.ChecksRun = append(result.Metadata.ChecksRun, c.name)
		if !c.run(f, result) {
			result.IsCompatible = false
			result.CompatibilityScore = 0
			result.Metadata.BlockedBy = c.name
			return result
		}
	}

	result.IsCompatible = true
	result.CompatibilityScore = result.Metadata.SkillsScore
	return result
}

func (g *Gate) checkCriticalSkills(f *scoring.Features, result *types.AssessmentResult) bool {
	present := make(map[string]struct{})
	for _, m := range f.SkillMatch.Matches {
		if m.MatchType == types.MatchDirect || m.MatchType == types.MatchPotential {
			present[m.Skill] = struct{}{}
		}
	}

	missing := []string{}
	for _, skill := range f.CoreSkills {
		if _, ok := present[skill]; !ok {
			missing = append(missing, skill)
		}
	}
	result.Metadata.MissingCriticalSkills = missing

	if len(missing) <= g.cfg.MaxMissingCritical {
		return true
	}

	result.Suggestions = append(result.Suggestions, types.Suggestion{
		Type:     types.SuggestionCriticalSkills,
		Severity: types.SeverityBlocking,
		Message:  fmt.Sprintf("Missing critical skills required by this job: %s", strings.Join(missing, ", ")),
		Skills:   missing,
	})
	return false
}

func (g *Gate) checkRoleType(f *scoring.Features, result *types.AssessmentResult) bool {
	jobRole := ClassifyRole(f.Job.JobTitle, f.Job.JobDescription)
	result.Metadata.JobRoleType = jobRole

	candidateRoles := g.candidateRoles(f)
	result.Metadata.CandidateRoleTypes = candidateRoles

	block := func(msg string) bool {
		result.Suggestions = append(result.Suggestions, types.Suggestion{
			Type:     types.SuggestionRoleType,
			Severity: types.SeverityBlocking,
			Message:  msg,
		})
		return false
	}

	if jobRole == "" {
		return block("Could not determine the role type of this job")
	}
	if len(candidateRoles) == 0 {
		return block("Could not determine a role type from your experience, skills or projects")
	}
	for _, r := range candidateRoles {
		if r == jobRole {
			return true
		}
	}
	if jobRole == RoleTechnical {
		return block("This is a technical role and your resume shows no technical skills, projects or work")
	}
	return block(fmt.Sprintf("This is a %s role; your background is %s", jobRole, strings.Join(candidateRoles, ", ")))
}

// candidateRoles collects each position's primary role, plus technical when the resume shows
// technical evidence regardless of title
func (g *Gate) candidateRoles(f *scoring.Features) []string {
	seen := make(map[string]struct{})
	var roles []string
	add := func(r string) {
		if r == "" {
			return
		}
		if _, ok := seen[r]; ok {
			return
		}
		seen[r] = struct{}{}
		roles = append(roles, r)
	}

	for _, e := range f.Resume.WorkExperience {
		add(ClassifyRole(e.Title, e.Description))
	}
	if g.hasTechnicalEvidence(f) {
		add(RoleTechnical)
	}
	return roles
}

func (g *Gate) hasTechnicalEvidence(f *scoring.Features) bool {
	for _, s := range f.CandidateSkills {
		if g.matcher.Catalog().Contains(s) {
			return true
		}
	}
	for _, p := range f.Resume.Projects {
		if len(p.Technologies) > 0 {
			return true
		}
	}
	var work strings.Builder
	for _, e := range f.Resume.WorkExperience {
		work.WriteString(e.Description)
		work.WriteString("\n")
	}
	d := density.Analyze(work.String())
	return d.MatchCount() >= minTechnicalDensityHits
}

func (g *Gate) checkExperienceLevel(f *scoring.Features, result *types.AssessmentResult) bool {
	actual := f.Experience.TotalYears
	result.Metadata.ActualYears = actual
	if !f.HasRequiredYears || f.RequiredYears <= 0 {
		return true
	}

	required := f.RequiredYears
	ratio := actual / required
	result.Metadata.RequiredYears = required
	result.Metadata.ExperienceRatio = ratio

	if actual >= seniorCandidateYears || ratio >= g.cfg.MinExperienceRatio {
		return true
	}

	if ratio < blockingExperienceRatio {
		result.Suggestions = append(result.Suggestions, types.Suggestion{
			Type:     types.SuggestionExperience,
			Severity: types.SeverityBlocking,
			Message: fmt.Sprintf("This job requires %.0f years of experience; you have %.1f (%.0f%% of the requirement)",
				required, actual, ratio*100),
		})
		return false
	}

	result.Metadata.HasWarnings = true
	result.Suggestions = append(result.Suggestions, types.Suggestion{
		Type:     types.SuggestionExperience,
		Severity: types.SeverityWarning,
		Message: fmt.Sprintf("You have %.1f of the %.0f years of experience requested; highlight your most relevant work",
			actual, required),
	})
	return true
}

func (g *Gate) checkSkillsMatch(f *scoring.Features, result *types.AssessmentResult) bool {
	score := SkillsMatchScore(f.SkillMatch, len(f.RequiredSkills))
	result.Metadata.SkillsScore = score

	if score >= g.cfg.MinSkillScore {
		return true
	}

	result.Suggestions = append(result.Suggestions, types.Suggestion{
		Type:     types.SuggestionSkillsMatch,
		Severity: types.SeverityBlocking,
		Message: fmt.Sprintf("Your skills cover %.0f%% of this job's requirements; at least %.0f%% is needed",
			score*100, g.cfg.MinSkillScore*100),
		Skills: f.SkillMatch.MissingCritical,
	})
	return false
}

// SkillsMatchScore weighs exact coverage at 70% and direct-or-related coverage at 30%.
// A job without required skills scores 1.0.
func SkillsMatchScore(match *types.SkillMatchResult, required int) float64 {
	if required == 0 || match == nil {
		return 1.0
	}
	direct := float64(match.DirectCount())
	related := float64(match.RelatedCount())
	n := float64(required)
	return exactSkillWeight*(direct/n) + coverageSkillWeight*((direct+related)/n)
}
