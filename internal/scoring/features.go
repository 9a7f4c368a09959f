package scoring

import (
	"strings"
	"time"

	"github.com/jonathan/job-fit-scorer/internal/experience"
	"github.com/jonathan/job-fit-scorer/internal/skills"
	"github.com/jonathan/job-fit-scorer/internal/types"
)

//nolint:gochecknoglobals // lookup table
var leadershipWords = []string{
	"lead", "leadership", "led", "manage", "managed", "manager", "mentor", "mentored", "mentoring",
	"head", "director", "supervise", "supervised",
}

// Features are the normalized inputs shared by the gate, the component scorer and compensation
type Features struct {
	Resume *types.Resume
	Job    *types.JobDetails

	RequiredSkills  []string
	CandidateSkills []string
	CoreSkills      []string
	SkillMatch      *types.SkillMatchResult
	Quality         types.SkillMatchQuality

	Experience       *types.ExperienceProfile
	RequiredYears    float64
	HasRequiredYears bool
	JobSeniority     types.SeniorityLevel

	JobWantsLeadership       bool
	CandidateShowsLeadership bool
}

// SeniorityGap is how many levels the candidate sits below the job (0 when at or above)
func (f *Features) SeniorityGap() int {
	gap := experience.SeniorityRank(f.JobSeniority) - experience.SeniorityRank(f.Experience.Seniority)
	if gap < 0 {
		return 0
	}
	return gap
}

// LeadershipGap reports whether the job asks for leadership the candidate does not show
func (f *Features) LeadershipGap() bool {
	return f.JobWantsLeadership && !f.CandidateShowsLeadership
}

// Extract derives the shared features of a resume and job evaluated at now
func Extract(m *skills.Matcher, resume *types.Resume, job *types.JobDetails, now time.Time) (*Features, error) {
	if m == nil {
		return nil, &InputError{Message: "matcher is nil"}
	}
	if resume == nil {
		return nil, &InputError{Message: "resume is nil"}
	}
	if job == nil {
		return nil, &InputError{Message: "job is nil"}
	}

	f := &Features{
		Resume:          resume,
		Job:             job,
		RequiredSkills:  m.RequiredSkills(job),
		CandidateSkills: skills.CandidateSkills(resume),
	}
	f.CoreSkills = m.CoreSkills(job.FullText(), f.RequiredSkills)

	opts := skills.DefaultMatchOptions()
	opts.EvidenceText = skills.EvidenceText(resume)
	match, err := m.MatchSkills(f.RequiredSkills, f.CandidateSkills, &opts)
	if err != nil {
		return nil, &InputError{Message: "skill matching failed", Cause: err}
	}
	f.SkillMatch = match
	f.Quality = skills.AssessMatchQuality(match, f.CoreSkills)

	f.Experience = experience.Analyze(resume.WorkExperience, now)
	f.RequiredYears, f.HasRequiredYears = experience.ExtractRequiredYears(job.FullText())
	f.JobSeniority, _ = experience.InferSeniority(job.JobTitle)

	f.JobWantsLeadership = mentionsAny(job.FullText(), leadershipWords)
	f.CandidateShowsLeadership = mentionsAny(skills.EvidenceText(resume), leadershipWords)

	return f, nil
}

func mentionsAny(text string, words []string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	for _, w := range words {
		if skills.ContainsWord(text, w) {
			return true
		}
	}
	return false
}
