package pipeline

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-fit-scorer/internal/scoring"
	"github.com/jonathan/job-fit-scorer/internal/types"
)

const (
	strengthThreshold    = 0.75
	improvementThreshold = 0.5
	maxSkillSuggestions  = 3
)

type componentNote struct {
	name        string
	value       float64
	strength    string
	improvement string
}

func componentNotes(c types.ComponentScores) []componentNote {
	return []componentNote{
		{"skills", c.Skills, "strong coverage of the required skills", "close gaps in the required skills"},
		{"experience", c.Experience, "relevant, recent work experience", "highlight experience that uses the job's technologies"},
		{"projects", c.Projects, "projects built with the job's technologies", "add projects that use the job's core technologies"},
		{"education", c.Education, "education aligned with the role", "list degrees or certifications related to the role's field"},
		{"job_title", c.JobTitle, "previous titles match this role", "describe prior roles in terms closer to this job title"},
	}
}

// explain renders strengths, improvements and gate warnings for a compatible result
func explain(final float64, f *scoring.Features, base *scoring.Result, comp *types.CompensationResult, a *types.AssessmentResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Score %.1f/10 (%s skill match).", final, comp.SkillMatchLevel)

	var strengths, improvements []string
	for _, n := range componentNotes(base.Components) {
		if n.value >= strengthThreshold {
			strengths = append(strengths, n.strength)
		} else if n.value < improvementThreshold {
			improvements = append(improvements, n.improvement)
		}
	}

	if missing := f.Quality.MissingCoreSkills; len(missing) > 0 {
		improvements = append([]string{"gain experience with core skills: " + strings.Join(missing, ", ")}, improvements...)
	}
	for i, s := range f.SkillMatch.Suggestions {
		if i == maxSkillSuggestions {
			break
		}
		improvements = append(improvements, s)
	}

	if len(strengths) > 0 {
		b.WriteString("\nStrengths: " + strings.Join(strengths, "; ") + ".")
	}
	if len(improvements) > 0 {
		b.WriteString("\nImprovements: " + strings.Join(improvements, "; ") + ".")
	}

	var warnings []string
	for _, s := range a.Suggestions {
		if s.Severity == types.SeverityWarning {
			warnings = append(warnings, s.Message)
		}
	}
	if len(warnings) > 0 {
		b.WriteString("\nWarnings: " + strings.Join(warnings, "; ") + ".")
	}

	return b.String()
}

func blockedExplanation(a *types.AssessmentResult) string {
	blockers := a.Blockers()
	messages := make([]string, 0, len(blockers))
	for _, s := range blockers {
		messages = append(messages, s.Message)
	}
	return "Not compatible: " + strings.Join(messages, "; ") + "."
}
