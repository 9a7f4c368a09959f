// Package types provides type definitions for structured data used throughout the job-fit-scorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SeniorityLevel is the inferred career level of a candidate or job
type SeniorityLevel string

const (
	SeniorityJunior SeniorityLevel = "JUNIOR"
	SeniorityMid    SeniorityLevel = "MID"
	SenioritySenior SeniorityLevel = "SENIOR"
	SeniorityExpert SeniorityLevel = "EXPERT"
)

// EntryAnalysis is the per-entry breakdown of an experience profile
type EntryAnalysis struct {
	Title   string  `json:"title"`
	Company string  `json:"company"`
	Months  int     `json:"months"`
	Recency float64 `json:"recency"` // exp(-monthsSinceEnd/24)
	Valid   bool    `json:"valid"`   // false when dates could not be parsed
}

// ExperienceProfile is derived from dated work history
type ExperienceProfile struct {
	TotalYears          float64         `json:"total_years"`
	Entries             []EntryAnalysis `json:"entries"`
	Seniority           SeniorityLevel  `json:"seniority"`
	SeniorityConfidence float64         `json:"seniority_confidence"`
}

// ComponentScores holds the five raw, pre-penalty sub-scores (each 0-1)
type ComponentScores struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Projects   float64 `json:"projects"`
	JobTitle   float64 `json:"job_title"`
}

// Penalty category names
const (
	PenaltySkills     = "skills"
	PenaltyTechnical  = "technical"
	PenaltyExperience = "experience"
	PenaltySeniority  = "seniority"
	PenaltyLeadership = "leadership"
	PenaltyEducation  = "education"
	PenaltyProjects   = "projects"
	PenaltyJobTitle   = "job_title"
)

// PenaltySet maps a penalty category to a score reduction fraction (0-1)
type PenaltySet map[string]float64

// Clone returns an independent copy of the set
func (p PenaltySet) Clone() PenaltySet {
	out := make(PenaltySet, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// CompensationAnalysis explains how penalties were adjusted
type CompensationAnalysis struct {
	ExperienceYears      float64  `json:"experience_years"`
	ExperienceTier       string   `json:"experience_tier"`
	HighlyRelevantCount  int      `json:"highly_relevant_projects"`
	RelevantProjectCount int      `json:"relevant_projects"`
	SynergyApplied       bool     `json:"synergy_applied"`
	Rescaled             bool     `json:"rescaled"`
	FloorsApplied        []string `json:"floors_applied,omitempty"`
	Notes                []string `json:"notes,omitempty"`
}

// CompensationResult is the immutable snapshot of one compensation run
type CompensationResult struct {
	SkillMatchLevel      string               `json:"skill_match_level"`
	CompensationPower    float64              `json:"compensation_power"`
	OriginalPenalties    PenaltySet           `json:"original_penalties"`
	CompensatedPenalties PenaltySet           `json:"compensated_penalties"`
	AdjustedPenalties    PenaltySet           `json:"adjusted_penalties"`
	Reductions           map[string]float64   `json:"reductions"`
	Analysis             CompensationAnalysis `json:"analysis"`
}

// ProjectRelevance scores one project against the job requirements
type ProjectRelevance struct {
	Name                string   `json:"name"`
	RelevanceScore      float64  `json:"relevance_score"`
	MatchedTechnologies []string `json:"matched_technologies"`
}

// Analytics carries the structured breakdown behind a final score
type Analytics struct {
	ComponentScores  ComponentScores     `json:"component_scores"`
	WeightedScores   ComponentScores     `json:"weighted_scores"`
	SkillMatch       SkillMatchQuality   `json:"skill_match"`
	Compensation     *CompensationResult `json:"compensation,omitempty"`
	ProjectRelevance []ProjectRelevance  `json:"project_relevance,omitempty"`
	Experience       *ExperienceProfile  `json:"experience,omitempty"`
	TechnicalDensity float64             `json:"technical_density"`
	TitleBonus       float64             `json:"title_bonus"`
	Policy           string              `json:"policy"`
}

// ScoringResult is the terminal pipeline output
type ScoringResult struct {
	RunID       string            `json:"run_id"`
	ResumeID    string            `json:"resume_id,omitempty"`
	Compatible  bool              `json:"compatible"`
	FinalScore  float64           `json:"final_score"` // 0-10
	Reason      string            `json:"reason,omitempty"`
	Analytics   Analytics         `json:"analytics"`
	Explanation string            `json:"explanation"`
	Assessment  *AssessmentResult `json:"assessment,omitempty"`
}
