package scoring

import (
	"github.com/jonathan/job-fit-scorer/internal/skills"
)

//nolint:gochecknoglobals // keyword table, reporting order
var industryKeywords = []struct {
	name     string
	keywords []string
}{
	{"fintech", []string{"fintech", "banking", "bank", "payments", "financial", "trading", "insurance", "lending"}},
	{"healthcare", []string{"healthcare", "health", "medical", "clinical", "hospital", "patient", "pharma"}},
	{"e-commerce", []string{"e-commerce", "ecommerce", "retail", "marketplace", "shopping", "checkout"}},
	{"saas", []string{"saas", "b2b", "subscription"}},
	{"gaming", []string{"gaming", "game", "games", "esports"}},
	{"education", []string{"edtech", "education", "learning platform", "students", "university"}},
	{"logistics", []string{"logistics", "supply chain", "shipping", "fleet", "warehouse"}},
	{"media", []string{"media", "streaming", "publishing", "advertising", "adtech"}},
	{"government", []string{"government", "public sector", "federal", "municipal"}},
	{"security", []string{"cybersecurity", "infosec", "threat detection", "security operations"}},
}

// DetectIndustries returns the industries text refers to, in table order
func DetectIndustries(text string) []string {
	var found []string
	for _, industry := range industryKeywords {
		for _, keyword := range industry.keywords {
			if skills.ContainsWord(text, keyword) {
				found = append(found, industry.name)
				break
			}
		}
	}
	return found
}

// industryMatch scores an entry's industries against the job's.
// No job industry is neutral (0.5); an entry without one is 0.3; any overlap is 1.0.
func industryMatch(jobIndustries, entryIndustries []string) float64 {
	if len(jobIndustries) == 0 {
		return 0.5
	}
	if len(entryIndustries) == 0 {
		return 0.3
	}
	for _, j := range jobIndustries {
		for _, e := range entryIndustries {
			if j == e {
				return 1.0
			}
		}
	}
	return 0
}
