package gate

import (
	"regexp"
	"strings"
)

// Role categories, in tie-break order
const (
	RoleTechnical      = "technical"
	RoleManagement     = "management"
	RoleHR             = "hr"
	RoleDesign         = "design"
	RoleAdministrative = "administrative"
	RoleMarketing      = "marketing"
	RoleSales          = "sales"
)

const (
	titleWeight       = 3
	descriptionWeight = 1
	// keywords up to this length must match a whole word; longer ones match word prefixes
	shortKeywordLen = 3
)

//nolint:gochecknoglobals // keyword tables
var roleKeywords = []struct {
	role     string
	keywords []string
}{
	{RoleTechnical, []string{
		"engineer", "develop", "programm", "software", "devops", "sre", "architect",
		"data scien", "machine learning", "backend", "back-end", "frontend", "front-end",
		"full stack", "fullstack", "full-stack", "qa", "tester", "technical", "system administrator",
		"information technology", "coder",
	}},
	{RoleManagement, []string{
		"manag", "director", "head of", "vp", "chief", "executive", "supervis", "team lead",
	}},
	{RoleHR, []string{
		"recruit", "talent", "human resources", "hr", "people operations", "payroll", "hiring",
	}},
	{RoleDesign, []string{
		"design", "ux", "ui", "graphic", "illustrat", "creative",
	}},
	{RoleAdministrative, []string{
		"administrative", "assistant", "receptionist", "clerk", "office", "secretary",
		"data entry", "coordinator",
	}},
	{RoleMarketing, []string{
		"marketing", "seo", "content", "brand", "social media", "campaign", "growth",
	}},
	{RoleSales, []string{
		"sales", "account executive", "business development", "account manager", "sdr", "bdr",
		"customer success",
	}},
}

var roleNoise = regexp.MustCompile(`[^a-z0-9+#\-]+`)

// RoleScores counts keyword hits per role, weighting the title above the description
func RoleScores(title, description string) map[string]int {
	scores := make(map[string]int, len(roleKeywords))
	titleText := normalizeRoleText(title)
	descText := normalizeRoleText(description)

	for _, group := range roleKeywords {
		for _, kw := range group.keywords {
			scores[group.role] += titleWeight * countKeyword(titleText, kw)
			scores[group.role] += descriptionWeight * countKeyword(descText, kw)
		}
	}
	return scores
}

// ClassifyRole returns the highest scoring role, or "" when nothing matches
func ClassifyRole(title, description string) string {
	scores := RoleScores(title, description)
	best, bestScore := "", 0
	for _, group := range roleKeywords {
		if scores[group.role] > bestScore {
			best, bestScore = group.role, scores[group.role]
		}
	}
	return best
}

// normalizeRoleText lowercases and pads the text with single spaces between words
func normalizeRoleText(s string) string {
	return " " + strings.Join(strings.Fields(roleNoise.ReplaceAllString(strings.ToLower(s), " ")), " ") + " "
}

func countKeyword(text, keyword string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	if len(keyword) <= shortKeywordLen {
		return strings.Count(text, " "+keyword+" ")
	}
	// prefix of a word or phrase
	return strings.Count(text, " "+keyword)
}
