// Package types provides type definitions for structured data used throughout the job-fit-scorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// JobDetails is the job descriptor a resume is scored against
type JobDetails struct {
	Company        string `json:"company" mapstructure:"company"`
	JobTitle       string `json:"job_title" mapstructure:"job_title" validate:"required"`
	JobDescription string `json:"job_description" mapstructure:"job_description"`
	// RequiredSkills is optional; when empty the skills are extracted from the description
	RequiredSkills []string `json:"required_skills,omitempty" mapstructure:"required_skills"`
}

// Validate validates the JobDetails using the validator.
func (j *JobDetails) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}

// FullText returns the title and description joined for keyword scanning
func (j *JobDetails) FullText() string {
	if j.JobDescription == "" {
		return j.JobTitle
	}
	return j.JobTitle + "\n" + j.JobDescription
}
