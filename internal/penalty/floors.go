package penalty

import "github.com/jonathan/job-fit-scorer/internal/types"

const (
	severeSkillMismatch   = 0.2
	severeSkillFloor      = 0.3
	technicalCoreMismatch = 0.3
	technicalFloor        = 0.4
	criticalRequiredYears = 5.0
	criticalActualYears   = 2.0
	experienceGapFloor    = 0.25
)

type floor struct {
	category string
	value    float64
}

// floorsFor returns the minimum penalties that hold regardless of compensation
func floorsFor(in Input) []floor {
	var floors []floor
	if in.Quality.OverallMatch < severeSkillMismatch {
		floors = append(floors, floor{types.PenaltySkills, severeSkillFloor})
	}
	if in.TechnicalRole && in.Quality.CoreSkillMatch < technicalCoreMismatch {
		floors = append(floors, floor{types.PenaltyTechnical, technicalFloor})
	}
	if in.RequiredYears >= criticalRequiredYears && in.ExperienceYears < criticalActualYears {
		floors = append(floors, floor{types.PenaltyExperience, experienceGapFloor})
	}
	return floors
}
