package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeResume_LooseRecord(t *testing.T) {
	record := map[string]any{
		"id": "r-1",
		"personalDetails": map[string]any{
			"name":  "Ada",
			"email": "ada@example.com",
		},
		"skills": []any{"Go", "PostgreSQL", " "},
		"workExperience": []any{
			map[string]any{
				"title":     "Software Engineer",
				"company":   "Acme",
				"startDate": 2019,
				"endDate":   "present",
			},
		},
		"education": []any{
			map[string]any{"degree": "BS", "field": "Computer Science", "graduationDate": "2018-05"},
		},
		"projects": []any{
			map[string]any{"name": "api", "technologies": "Go, Docker"},
		},
	}

	resume, err := DecodeResume(record)
	require.NoError(t, err)

	assert.Equal(t, "r-1", resume.ID)
	assert.Equal(t, "Ada", resume.PersonalDetails.Name)
	assert.Equal(t, "Go, PostgreSQL", resume.Skills)
	require.Len(t, resume.WorkExperience, 1)
	assert.Equal(t, "2019", resume.WorkExperience[0].StartDate)
	assert.Equal(t, "present", resume.WorkExperience[0].EndDate)
	assert.Equal(t, "2018-05", resume.Education[0].GraduationDate)
	assert.Equal(t, []string{"go", "docker"}, resume.Projects[0].Technologies)
}

func TestDecodeResume_ValidationErrors(t *testing.T) {
	record := map[string]any{
		"personal_details": map[string]any{"email": "not-an-email"},
		"work_experience":  []any{map[string]any{"company": "Acme"}},
	}

	_, err := DecodeResume(record)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "resume", ve.Record)

	fields := make([]string, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "Resume.PersonalDetails.Email")
	assert.Contains(t, fields, "Resume.WorkExperience[0].Title")
	assert.Contains(t, ve.Error(), "required")
}

func TestDecodeResume_Nil(t *testing.T) {
	_, err := DecodeResume(nil)
	var de *DecodeError
	assert.ErrorAs(t, err, &de)
}

func TestDecodeResume_WrongShape(t *testing.T) {
	_, err := DecodeResume(map[string]any{"work_experience": "five years"})
	var de *DecodeError
	assert.ErrorAs(t, err, &de)
}

func TestDecodeJob(t *testing.T) {
	job, err := DecodeJob(map[string]any{
		"jobTitle":       "  Backend Engineer ",
		"company":        "Acme",
		"jobDescription": "<p>We need <b>Go</b>.</p><ul><li>Docker</li></ul>",
		"requiredSkills": "Go, Docker",
	})
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer", job.JobTitle)
	assert.Equal(t, "Acme", job.Company)
	assert.Contains(t, job.JobDescription, "We need Go.")
	assert.Contains(t, job.JobDescription, "- Docker")
	assert.NotContains(t, job.JobDescription, "<p>")
	assert.Equal(t, []string{"go", "docker"}, job.RequiredSkills)
}

func TestDecodeJob_MissingTitle(t *testing.T) {
	_, err := DecodeJob(map[string]any{"job_description": "Go"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "JobDetails.JobTitle", ve.Errors[0].Field)
}

func TestToSnake(t *testing.T) {
	tests := map[string]string{
		"jobTitle":        "job_title",
		"work_experience": "work_experience",
		"ID":              "id",
		"startDate":       "start_date",
		"skills":          "skills",
	}
	for in, want := range tests {
		assert.Equal(t, want, toSnake(in), in)
	}
}
