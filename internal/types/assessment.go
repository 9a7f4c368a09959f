// Package types provides type definitions for structured data used throughout the job-fit-scorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Severity of a compatibility suggestion
type Severity string

const (
	SeverityBlocking Severity = "blocking"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Suggestion types emitted by the compatibility gate
const (
	SuggestionCriticalSkills = "critical_skills"
	SuggestionRoleType       = "role_type"
	SuggestionExperience     = "experience"
	SuggestionSkillsMatch    = "skills_match"
)

// Suggestion represents a single gate finding
type Suggestion struct {
	Type     string   `json:"type"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Skills   []string `json:"skills,omitempty"`
}

// AssessmentMetadata collects what the gate measured before it finished or blocked
type AssessmentMetadata struct {
	ChecksRun             []string `json:"checks_run"`
	BlockedBy             string   `json:"blocked_by,omitempty"`
	HasWarnings           bool     `json:"has_warnings"`
	MissingCriticalSkills []string `json:"missing_critical_skills,omitempty"`
	JobRoleType           string   `json:"job_role_type,omitempty"`
	CandidateRoleTypes    []string `json:"candidate_role_types,omitempty"`
	RequiredYears         float64  `json:"required_years,omitempty"`
	ActualYears           float64  `json:"actual_years,omitempty"`
	ExperienceRatio       float64  `json:"experience_ratio,omitempty"`
	SkillsScore           float64  `json:"skills_score,omitempty"`
}

// AssessmentResult is the terminal output of the compatibility gate
type AssessmentResult struct {
	IsCompatible       bool               `json:"is_compatible"`
	CompatibilityScore float64            `json:"compatibility_score"`
	Suggestions        []Suggestion       `json:"suggestions"`
	Metadata           AssessmentMetadata `json:"metadata"`
}

// Blockers returns the blocking suggestions
func (a *AssessmentResult) Blockers() []Suggestion {
	var out []Suggestion
	for _, s := range a.Suggestions {
		if s.Severity == SeverityBlocking {
			out = append(out, s)
		}
	}
	return out
}
