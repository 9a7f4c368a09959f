package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/job-fit-scorer/internal/ingestion"
	"github.com/jonathan/job-fit-scorer/internal/types"
)

// -----------------------------------------------------------------------------
// Job Description Methods
// -----------------------------------------------------------------------------

// GetJob loads a job description by id. Returns nil, nil when not found.
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*types.JobDetails, error) {
	var rec JobRecord
	var skillsJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, company, job_title, job_description, required_skills, created_at
		 FROM job_descriptions WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.Company, &rec.JobTitle, &rec.JobDescription, &skillsJSON, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job %s: %w", id, err)
	}

	if skillsJSON != nil {
		if err := json.Unmarshal(skillsJSON, &rec.RequiredSkills); err != nil {
			return nil, fmt.Errorf("failed to parse required skills for job %s: %w", id, err)
		}
	}

	return rec.toJobDetails()
}

// CreateJob stores a job description and returns its id
func (db *DB) CreateJob(ctx context.Context, job *types.JobDetails) (uuid.UUID, error) {
	if job == nil {
		return uuid.Nil, fmt.Errorf("job is nil")
	}

	var skillsJSON []byte
	if len(job.RequiredSkills) > 0 {
		var err error
		skillsJSON, err = json.Marshal(job.RequiredSkills)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to marshal required skills: %w", err)
		}
	}

	id := uuid.New()
	_, err := db.pool.Exec(ctx,
		`INSERT INTO job_descriptions (id, company, job_title, job_description, required_skills)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, job.Company, job.JobTitle, job.JobDescription, skillsJSON,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create job: %w", err)
	}
	return id, nil
}

// toJobDetails runs the stored columns through the ingestion adapter so HTML
// descriptions and untrimmed titles are normalized the same way as file input
func (r *JobRecord) toJobDetails() (*types.JobDetails, error) {
	record := map[string]any{
		"company":         r.Company,
		"job_title":       r.JobTitle,
		"job_description": r.JobDescription,
	}
	if len(r.RequiredSkills) > 0 {
		skills := make([]any, len(r.RequiredSkills))
		for i, s := range r.RequiredSkills {
			skills[i] = s
		}
		record["required_skills"] = skills
	}
	return ingestion.DecodeJob(record)
}
