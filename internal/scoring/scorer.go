package scoring

import (
	"time"

	"github.com/jonathan/job-fit-scorer/internal/skills"
	"github.com/jonathan/job-fit-scorer/internal/types"
)

// Result is the pre-penalty component breakdown of one resume against one job
type Result struct {
	Score            float64                  `json:"score"` // weighted sum, 0-1
	Components       types.ComponentScores    `json:"component_scores"`
	Weighted         types.ComponentScores    `json:"weighted_scores"`
	ProjectRelevance []types.ProjectRelevance `json:"project_relevance"`
	TitleBonus       float64                  `json:"title_bonus"`
}

// Scorer computes component scores with a fixed set of weights
type Scorer struct {
	matcher *skills.Matcher
	weights Weights
}

// NewScorer creates a scorer. Weights must sum to 1.0.
func NewScorer(m *skills.Matcher, w Weights) (*Scorer, error) {
	if m == nil {
		return nil, &InputError{Message: "matcher is nil"}
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{matcher: m, weights: w}, nil
}

// Weights returns the scorer's component weights
func (s *Scorer) Weights() Weights {
	return s.weights
}

// Matcher returns the skill matcher the scorer uses
func (s *Scorer) Matcher() *skills.Matcher {
	return s.matcher
}

// Score computes the five component scores from extracted features
func (s *Scorer) Score(f *Features, now time.Time) *Result {
	projects := ProjectRelevances(s.matcher, f)
	title := TitleScore(f.Job.JobTitle, f.Resume.WorkExperience)

	components := types.ComponentScores{
		Skills:     SkillsScore(f),
		Experience: ExperienceScore(s.matcher, f),
		Projects:   ProjectsScore(projects),
		Education:  EducationScore(f.Resume.Education, f.Job, now),
		JobTitle:   title,
	}

	return &Result{
		Score:            clamp01(s.weights.Total(components)),
		Components:       components,
		Weighted:         s.weights.Apply(components),
		ProjectRelevance: projects,
		TitleBonus:       TitleBonus(title),
	}
}
