package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/job-fit-scorer/internal/experience"
	"github.com/jonathan/job-fit-scorer/internal/skills"
	"github.com/jonathan/job-fit-scorer/internal/types"
)

const (
	// neutralScore is used when the job gives nothing to compare against
	neutralScore = 0.5

	missingCoreSkillPenalty = 0.1

	entrySkillWeight     = 0.4
	entryIndustryWeight  = 0.3
	entrySeniorityWeight = 0.2
	entryRecencyWeight   = 0.1

	maxExperienceBonus   = 0.2
	defaultExpectedYears = 5.0

	projectTechWeight    = 0.85
	projectKeywordWeight = 0.15
)

// SkillsScore is sqrt(skill match) reduced by 0.1 per missing core skill, floored at 0.
// Jobs without required skills score neutral.
func SkillsScore(f *Features) float64 {
	if len(f.RequiredSkills) == 0 {
		return neutralScore
	}
	score := math.Sqrt(f.SkillMatch.Score) - missingCoreSkillPenalty*float64(len(f.Quality.MissingCoreSkills))
	return clamp01(score)
}

// ExperienceScore blends per-entry relevance (skill overlap, industry, seniority alignment,
// recency), averages valid entries, applies sqrt and scales by up to 1.2 for years of experience.
func ExperienceScore(m *skills.Matcher, f *Features) float64 {
	if f.Experience == nil || len(f.Experience.Entries) == 0 {
		return 0
	}

	jobIndustries := DetectIndustries(f.Job.FullText())

	total := 0.0
	counted := 0
	for i, entry := range f.Resume.WorkExperience {
		if i >= len(f.Experience.Entries) || !f.Experience.Entries[i].Valid {
			continue
		}
		text := entry.Title + "\n" + entry.Company + "\n" + entry.Description

		overlap := entrySkillOverlap(m, text, f.RequiredSkills)
		industry := industryMatch(jobIndustries, DetectIndustries(text))
		level, _ := experience.InferSeniority(entry.Title)
		alignment := experience.SeniorityAlignment(level, f.JobSeniority)
		recency := f.Experience.Entries[i].Recency

		relevance := entrySkillWeight*overlap +
			entryIndustryWeight*industry +
			entrySeniorityWeight*alignment +
			entryRecencyWeight*recency
		total += relevance
		counted++
	}
	if counted == 0 {
		return 0
	}

	base := math.Sqrt(total / float64(counted))

	expected := defaultExpectedYears
	if f.HasRequiredYears && f.RequiredYears > 0 {
		expected = f.RequiredYears
	}
	yearsFactor := math.Min(1, f.Experience.TotalYears/expected)

	return clamp01(base * (1 + maxExperienceBonus*yearsFactor))
}

// entrySkillOverlap is the share of required skills mentioned in text, each weighted by its
// catalog relevance so skills the catalog does not know count half
func entrySkillOverlap(m *skills.Matcher, text string, required []string) float64 {
	if len(required) == 0 {
		return neutralScore
	}
	c := m.Catalog()
	hits, total := 0.0, 0.0
	for _, skill := range required {
		w := c.Relevance(skill)
		total += w
		if m.CountMentions(text, skill) > 0 {
			hits += w
		}
	}
	return hits / total
}

// ProjectRelevances scores each project: 85% technology overlap with the required skills
// (over the smaller of the two sets), 15% required skills named in its description
func ProjectRelevances(m *skills.Matcher, f *Features) []types.ProjectRelevance {
	out := make([]types.ProjectRelevance, 0, len(f.Resume.Projects))
	for _, p := range f.Resume.Projects {
		out = append(out, projectRelevance(m, p, f.RequiredSkills))
	}
	return out
}

func projectRelevance(m *skills.Matcher, p types.Project, required []string) types.ProjectRelevance {
	rel := types.ProjectRelevance{Name: p.Name, MatchedTechnologies: []string{}}
	if len(required) == 0 {
		rel.RelevanceScore = neutralScore
		return rel
	}

	techs := skills.NormalizeSkills(p.Technologies)
	for _, req := range required {
		for _, tech := range techs {
			if skills.AreSimilarSkills(req, tech) {
				rel.MatchedTechnologies = append(rel.MatchedTechnologies, req)
				break
			}
		}
	}

	techScore := 0.0
	if denom := min(len(required), len(techs)); denom > 0 {
		techScore = math.Min(1, float64(len(rel.MatchedTechnologies))/float64(denom))
	}

	text := p.Name + "\n" + p.Description
	keywordScore := 0.0
	if strings.TrimSpace(text) != "" {
		keywordScore = entrySkillOverlap(m, text, required)
	}

	rel.RelevanceScore = clamp01(projectTechWeight*techScore + projectKeywordWeight*keywordScore)
	return rel
}

// ProjectsScore is sqrt of the mean project relevance
func ProjectsScore(relevances []types.ProjectRelevance) float64 {
	if len(relevances) == 0 {
		return 0
	}
	total := 0.0
	for _, r := range relevances {
		total += r.RelevanceScore
	}
	return clamp01(math.Sqrt(total / float64(len(relevances))))
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
