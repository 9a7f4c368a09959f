package experience

import (
	"strings"
	"time"

	"github.com/jonathan/job-fit-scorer/internal/types"
)

// Analyze builds an experience profile from work history evaluated at now.
// Entries with unparsable or inverted dates are marked invalid and contribute nothing.
func Analyze(entries []types.WorkExperienceEntry, now time.Time) *types.ExperienceProfile {
	profile := &types.ExperienceProfile{
		Entries:             make([]types.EntryAnalysis, 0, len(entries)),
		Seniority:           types.SeniorityMid,
		SeniorityConfidence: defaultSeniorityConfidence,
	}

	totalMonths := 0
	latest := -1
	var latestEnd time.Time

	for i, entry := range entries {
		analysis := types.EntryAnalysis{
			Title:   entry.Title,
			Company: entry.Company,
		}

		_, end, months, err := Span(entry.StartDate, entry.EndDate, now)
		if err == nil {
			analysis.Valid = true
			analysis.Months = months
			analysis.Recency = Recency(end, now)
			totalMonths += months

			if latest < 0 || end.After(latestEnd) {
				latest = i
				latestEnd = end
			}
		}

		profile.Entries = append(profile.Entries, analysis)
	}

	profile.TotalYears = float64(totalMonths) / 12.0
	profile.Seniority, profile.SeniorityConfidence = inferProfileSeniority(entries, latest)

	return profile
}

// inferProfileSeniority reads the most recent title, then its description, then every title
// when no dates parse
func inferProfileSeniority(entries []types.WorkExperienceEntry, latest int) (types.SeniorityLevel, float64) {
	if latest >= 0 {
		if level, conf, ok := inferIfIndicated(entries[latest].Title); ok {
			return level, conf
		}
		if level, conf, ok := inferIfIndicated(entries[latest].Description); ok {
			return level, conf
		}
		return types.SeniorityMid, defaultSeniorityConfidence
	}

	titles := make([]string, 0, len(entries))
	for _, e := range entries {
		titles = append(titles, e.Title)
	}
	return InferSeniority(strings.Join(titles, " "))
}

func inferIfIndicated(text string) (types.SeniorityLevel, float64, bool) {
	level, conf := InferSeniority(text)
	if level == types.SeniorityMid {
		return level, conf, false
	}
	return level, conf, true
}
