package skills

import (
	"github.com/jonathan/job-fit-scorer/internal/types"
)

// CompensationPowerFor maps overall skill match to the fraction by which experience-family
// penalties may be reduced
func CompensationPowerFor(overallMatch float64) float64 {
	switch {
	case overallMatch >= 0.95:
		return 0.7
	case overallMatch >= 0.9:
		return 0.5
	case overallMatch >= 0.8:
		return 0.3
	default:
		return 0
	}
}

// AssessMatchQuality splits a match result into core and peripheral coverage.
// Potential matches do not count as matched. Without core skills, core match equals overall match.
func AssessMatchQuality(result *types.SkillMatchResult, coreSkills []string) types.SkillMatchQuality {
	quality := types.SkillMatchQuality{
		MatchedCoreSkills:       []string{},
		MissingCoreSkills:       []string{},
		MatchedPeripheralSkills: []string{},
	}
	if result == nil {
		return quality
	}

	quality.OverallMatch = result.Score
	quality.CompensationPower = CompensationPowerFor(result.Score)

	matched := make(map[string]struct{}, len(result.Matches))
	for _, match := range result.Matches {
		if match.MatchType == types.MatchPotential {
			continue
		}
		matched[match.Skill] = struct{}{}
	}

	core := NormalizeSkills(coreSkills)
	coreSet := make(map[string]struct{}, len(core))
	for _, skill := range core {
		coreSet[skill] = struct{}{}
		if _, ok := matched[skill]; ok {
			quality.MatchedCoreSkills = append(quality.MatchedCoreSkills, skill)
		} else {
			quality.MissingCoreSkills = append(quality.MissingCoreSkills, skill)
		}
	}

	for _, match := range result.Matches {
		if match.MatchType == types.MatchPotential {
			continue
		}
		if _, isCore := coreSet[match.Skill]; !isCore {
			quality.MatchedPeripheralSkills = append(quality.MatchedPeripheralSkills, match.Skill)
		}
	}

	if len(core) == 0 {
		quality.CoreSkillMatch = quality.OverallMatch
	} else {
		quality.CoreSkillMatch = float64(len(quality.MatchedCoreSkills)) / float64(len(core))
	}

	return quality
}
