package skills

import (
	"github.com/jonathan/job-fit-scorer/internal/types"
)

// RequiredSkills returns the job's required skills. An explicit list wins; otherwise every
// catalog skill mentioned in the title and description is required.
func (m *Matcher) RequiredSkills(job *types.JobDetails) []string {
	if job == nil {
		return nil
	}
	if len(job.RequiredSkills) > 0 {
		return NormalizeSkills(job.RequiredSkills)
	}
	return m.ExtractSkills(job.FullText())
}

// CandidateSkills returns the resume's declared skills merged with its project technologies
func CandidateSkills(resume *types.Resume) []string {
	if resume == nil {
		return nil
	}

	all := ParseSkillList(resume.Skills)
	for _, p := range resume.Projects {
		all = append(all, p.Technologies...)
	}
	return NormalizeSkills(all)
}

// EvidenceText concatenates the free-text parts of a resume where skills may be mentioned
// without being listed
func EvidenceText(resume *types.Resume) string {
	if resume == nil {
		return ""
	}

	var text []byte
	appendLine := func(s string) {
		if s == "" {
			return
		}
		text = append(text, s...)
		text = append(text, '\n')
	}
	for _, w := range resume.WorkExperience {
		appendLine(w.Title)
		appendLine(w.Description)
	}
	for _, p := range resume.Projects {
		appendLine(p.Name)
		appendLine(p.Description)
	}
	return string(text)
}
