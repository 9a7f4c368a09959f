// Package penalty converts component gaps into penalties and reduces them through experience,
// skill, project and synergy compensation, subject to caps and minimum floors.
package penalty

import (
	"fmt"
	"math"
	"sort"

	"github.com/jonathan/job-fit-scorer/internal/types"
)

// MinimumPenaltyThreshold is the fraction of an original penalty that reductions cannot remove
const MinimumPenaltyThreshold = 0.1

const (
	highlyRelevantProject = 0.7
	relevantProject       = 0.4

	projectExperienceReduction = 0.2
	projectEducationReduction  = 0.15
	synergyReduction           = 0.1
	synergyMinOverallMatch     = 0.7

	seniorityGapPenalty = 0.2
	leadershipPenalty   = 0.3

	overallReductionCap = 0.85
)

// category caps on the stacked reduction
//
//nolint:gochecknoglobals // lookup table
var reductionCaps = map[string]float64{
	types.PenaltyEducation:  0.8,
	types.PenaltyExperience: 0.7,
	types.PenaltySeniority:  0.7,
	types.PenaltyLeadership: 0.7,
	types.PenaltyTechnical:  0.6,
	types.PenaltySkills:     0.6,
}

// experienceFamily are the categories skill-match compensation reduces
//
//nolint:gochecknoglobals // lookup table
var experienceFamily = []string{types.PenaltyExperience, types.PenaltySeniority, types.PenaltyLeadership}

// Categories lists every penalty category in reporting order
func Categories() []string {
	return []string{
		types.PenaltySkills, types.PenaltyTechnical,
		types.PenaltyExperience, types.PenaltySeniority, types.PenaltyLeadership,
		types.PenaltyEducation, types.PenaltyProjects, types.PenaltyJobTitle,
	}
}

// Input is everything compensation needs to know about one resume/job pair
type Input struct {
	Components      types.ComponentScores
	Quality         types.SkillMatchQuality
	ExperienceYears float64
	RequiredYears   float64
	Projects        []types.ProjectRelevance
	TechnicalRole   bool
	SeniorityGap    int
	LeadershipGap   bool
}

// RawPenalties converts component scores and gaps into per-category penalties (1 - score)
func RawPenalties(in Input) types.PenaltySet {
	p := types.PenaltySet{
		types.PenaltySkills:     clamp01(1 - in.Components.Skills),
		types.PenaltyTechnical:  0,
		types.PenaltyExperience: clamp01(1 - in.Components.Experience),
		types.PenaltySeniority:  clamp01(seniorityGapPenalty * float64(in.SeniorityGap)),
		types.PenaltyLeadership: 0,
		types.PenaltyEducation:  clamp01(1 - in.Components.Education),
		types.PenaltyProjects:   clamp01(1 - in.Components.Projects),
		types.PenaltyJobTitle:   clamp01(1 - in.Components.JobTitle),
	}
	if in.TechnicalRole {
		p[types.PenaltyTechnical] = clamp01(1 - in.Quality.CoreSkillMatch)
	}
	if in.LeadershipGap {
		p[types.PenaltyLeadership] = leadershipPenalty
	}
	return p
}

// ExperienceTier returns the years-of-experience compensation tier label
func ExperienceTier(years float64) string {
	switch {
	case years >= 7:
		return "7+"
	case years >= 5:
		return "5+"
	case years >= 3:
		return "3+"
	case years >= 1:
		return "1+"
	default:
		return "none"
	}
}

// compensateForYears applies experience-based compensation to a copy of the penalties:
// 7+ years eliminates education and halves the rest, 5+ eliminates education and cuts the
// rest by 25%, 3+ eliminates education, 1+ halves education
func compensateForYears(original types.PenaltySet, years float64) types.PenaltySet {
	out := original.Clone()
	others := 1.0
	education := 1.0

	switch ExperienceTier(years) {
	case "7+":
		education, others = 0, 0.5
	case "5+":
		education, others = 0, 0.75
	case "3+":
		education = 0
	case "1+":
		education = 0.5
	}

	for k, v := range out {
		if k == types.PenaltyEducation {
			out[k] = v * education
		} else {
			out[k] = v * others
		}
	}
	return out
}

// Stack combines reductions multiplicatively: 1 - (1-r1)(1-r2)...
func Stack(reductions ...float64) float64 {
	remaining := 1.0
	for _, r := range reductions {
		remaining *= 1 - clamp01(r)
	}
	return 1 - remaining
}

// capReductions rescales every reduction when the largest exceeds the overall cap, then
// applies the per-category caps
func capReductions(stacked map[string]float64) (map[string]float64, bool) {
	largest := 0.0
	for _, r := range stacked {
		largest = math.Max(largest, r)
	}

	rescaled := largest > overallReductionCap
	scale := 1.0
	if rescaled {
		scale = overallReductionCap / largest
	}

	out := make(map[string]float64, len(stacked))
	for k, r := range stacked {
		r *= scale
		limit, ok := reductionCaps[k]
		if !ok {
			limit = overallReductionCap
		}
		out[k] = math.Min(r, limit)
	}
	return out, rescaled
}

// SkillMatchLevel labels overall skill match
func SkillMatchLevel(overall float64) string {
	switch {
	case overall >= 0.9:
		return "excellent"
	case overall >= 0.75:
		return "strong"
	case overall >= 0.6:
		return "good"
	case overall >= 0.4:
		return "fair"
	default:
		return "weak"
	}
}

// compute runs the full compensation sequence: raw penalties, years compensation, stacked and
// capped reductions, then floors
func compute(in Input) *types.CompensationResult {
	original := RawPenalties(in)
	compensated := compensateForYears(original, in.ExperienceYears)

	analysis := types.CompensationAnalysis{
		ExperienceYears: in.ExperienceYears,
		ExperienceTier:  ExperienceTier(in.ExperienceYears),
		FloorsApplied:   []string{},
		Notes:           []string{},
	}

	sources := make(map[string][]float64)
	add := func(category string, r float64) {
		if r > 0 {
			sources[category] = append(sources[category], r)
		}
	}

	power := in.Quality.CompensationPower
	for _, c := range experienceFamily {
		add(c, power)
	}
	if power > 0 {
		analysis.Notes = append(analysis.Notes, fmt.Sprintf("skill match reduces experience penalties by %.0f%%", power*100))
	}

	projectReduction := 0.0
	for _, p := range in.Projects {
		if p.RelevanceScore >= highlyRelevantProject {
			analysis.HighlyRelevantCount++
		}
		if p.RelevanceScore >= relevantProject {
			analysis.RelevantProjectCount++
		}
	}
	if analysis.HighlyRelevantCount >= 1 {
		projectReduction = projectExperienceReduction
		add(types.PenaltyExperience, projectReduction)
		analysis.Notes = append(analysis.Notes, "highly relevant project reduces experience penalty")
	}
	if analysis.RelevantProjectCount >= 2 {
		add(types.PenaltyEducation, math.Min(projectEducationReduction, math.Max(power, projectReduction)))
	}

	if in.Quality.OverallMatch >= synergyMinOverallMatch && hasSynergy(in.Projects, in.Quality.MatchedCoreSkills) {
		analysis.SynergyApplied = true
		add(types.PenaltyExperience, synergyReduction)
		add(types.PenaltyTechnical, synergyReduction)
		analysis.Notes = append(analysis.Notes, "project technologies overlap matched core skills")
	}

	stacked := make(map[string]float64, len(sources))
	for category, rs := range sources {
		stacked[category] = Stack(rs...)
	}
	reductions, rescaled := capReductions(stacked)
	analysis.Rescaled = rescaled

	adjusted := make(types.PenaltySet, len(compensated))
	for category, value := range compensated {
		r := reductions[category]
		reduced := value * (1 - r)
		minimum := math.Min(value, original[category]*MinimumPenaltyThreshold)
		adjusted[category] = math.Max(reduced, minimum)
	}

	for _, f := range floorsFor(in) {
		if adjusted[f.category] < f.value {
			adjusted[f.category] = f.value
			analysis.FloorsApplied = append(analysis.FloorsApplied, f.category)
		}
	}
	sort.Strings(analysis.FloorsApplied)

	return &types.CompensationResult{
		SkillMatchLevel:      SkillMatchLevel(in.Quality.OverallMatch),
		CompensationPower:    power,
		OriginalPenalties:    original,
		CompensatedPenalties: compensated,
		AdjustedPenalties:    adjusted,
		Reductions:           reductions,
		Analysis:             analysis,
	}
}

func hasSynergy(projects []types.ProjectRelevance, matchedCore []string) bool {
	if len(matchedCore) == 0 {
		return false
	}
	core := make(map[string]struct{}, len(matchedCore))
	for _, s := range matchedCore {
		core[s] = struct{}{}
	}
	for _, p := range projects {
		for _, tech := range p.MatchedTechnologies {
			if _, ok := core[tech]; ok {
				return true
			}
		}
	}
	return false
}

// ComponentPenalties folds category penalties onto the five components: skills takes the larger
// of skills and technical, experience the largest of its family
func ComponentPenalties(p types.PenaltySet) types.ComponentScores {
	return types.ComponentScores{
		Skills:     math.Max(p[types.PenaltySkills], p[types.PenaltyTechnical]),
		Experience: math.Max(p[types.PenaltyExperience], math.Max(p[types.PenaltySeniority], p[types.PenaltyLeadership])),
		Projects:   p[types.PenaltyProjects],
		Education:  p[types.PenaltyEducation],
		JobTitle:   p[types.PenaltyJobTitle],
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
