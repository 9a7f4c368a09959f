// Package types provides type definitions for structured data used throughout the job-fit-scorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// PersonalDetails holds the candidate contact block of a resume
type PersonalDetails struct {
	Name     string `json:"name" mapstructure:"name"`
	Email    string `json:"email,omitempty" mapstructure:"email" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty" mapstructure:"phone"`
	Location string `json:"location,omitempty" mapstructure:"location"`
}

// Resume is the normalized resume record consumed by the scoring engine
type Resume struct {
	ID              string                `json:"id" mapstructure:"id"`
	PersonalDetails PersonalDetails       `json:"personal_details" mapstructure:"personal_details"`
	Skills          string                `json:"skills" mapstructure:"skills"` // Free-form skills string, comma or line separated
	WorkExperience  []WorkExperienceEntry `json:"work_experience" mapstructure:"work_experience" validate:"dive"`
	Education       []Education           `json:"education" mapstructure:"education" validate:"dive"`
	Projects        []Project             `json:"projects" mapstructure:"projects" validate:"dive"`
}

// WorkExperienceEntry represents a single dated position.
// An empty EndDate (or "present") means the position is current.
type WorkExperienceEntry struct {
	Title       string `json:"title" mapstructure:"title" validate:"required"`
	Company     string `json:"company" mapstructure:"company"`
	Description string `json:"description" mapstructure:"description"`
	StartDate   string `json:"start_date" mapstructure:"start_date"`
	EndDate     string `json:"end_date,omitempty" mapstructure:"end_date"`
}

// Education represents a single education entry
type Education struct {
	Institution    string `json:"institution" mapstructure:"institution"`
	Degree         string `json:"degree" mapstructure:"degree"`
	Field          string `json:"field" mapstructure:"field"`
	GraduationDate string `json:"graduation_date,omitempty" mapstructure:"graduation_date"`
}

// Project represents a portfolio project listed on a resume
type Project struct {
	Name         string   `json:"name" mapstructure:"name" validate:"required"`
	Description  string   `json:"description" mapstructure:"description"`
	Technologies []string `json:"technologies,omitempty" mapstructure:"technologies"`
}

// Validate validates the Resume using the validator.
func (r *Resume) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
