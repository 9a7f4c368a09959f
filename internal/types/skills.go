// Package types provides type definitions for structured data used throughout the job-fit-scorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MatchType classifies how a required skill was satisfied
type MatchType string

const (
	MatchDirect    MatchType = "direct"
	MatchRelated   MatchType = "related"
	MatchPotential MatchType = "potential"
)

// SkillMatch records the match found for one required skill
type SkillMatch struct {
	Skill       string    `json:"skill"`
	MatchedWith string    `json:"matched_with"`
	Confidence  float64   `json:"confidence"` // 0-1
	MatchType   MatchType `json:"match_type"`
	Context     string    `json:"context,omitempty"`
}

// SkillCompensation records a related skill standing in for a required one
type SkillCompensation struct {
	Skill         string  `json:"skill"`
	CompensatedBy string  `json:"compensated_by"`
	Factor        float64 `json:"factor"`
}

// SkillMatchResult is the output of matching a required skill list against a candidate skill list
type SkillMatchResult struct {
	Score           float64             `json:"score"` // 0-1
	Matches         []SkillMatch        `json:"matches"`
	Compensations   []SkillCompensation `json:"compensations"`
	MissingCritical []string            `json:"missing_critical"`
	Suggestions     []string            `json:"suggestions"`
}

// DirectCount returns the number of direct matches
func (r *SkillMatchResult) DirectCount() int {
	return r.countType(MatchDirect)
}

// RelatedCount returns the number of related matches
func (r *SkillMatchResult) RelatedCount() int {
	return r.countType(MatchRelated)
}

func (r *SkillMatchResult) countType(t MatchType) int {
	n := 0
	for _, m := range r.Matches {
		if m.MatchType == t {
			n++
		}
	}
	return n
}

// SkillMatchQuality aggregates skill coverage against a job's core and peripheral skills
type SkillMatchQuality struct {
	OverallMatch            float64  `json:"overall_match"`
	CoreSkillMatch          float64  `json:"core_skill_match"`
	MatchedCoreSkills       []string `json:"matched_core_skills"`
	MissingCoreSkills       []string `json:"missing_core_skills"`
	MatchedPeripheralSkills []string `json:"matched_peripheral_skills"`
	CompensationPower       float64  `json:"compensation_power"` // 0-1
}
