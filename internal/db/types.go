package db

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrUnscoredResult is returned when saving a result that carries no score (unusable input)
var ErrUnscoredResult = errors.New("result has no score to persist")

// JobRecord is a stored job description
type JobRecord struct {
	ID             uuid.UUID `json:"id"`
	Company        string    `json:"company"`
	JobTitle       string    `json:"job_title"`
	JobDescription string    `json:"job_description"`
	RequiredSkills []string  `json:"required_skills,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ScoreRecord is a persisted scoring result summary
type ScoreRecord struct {
	ID          uuid.UUID  `json:"id"`
	RunID       string     `json:"run_id"`
	ResumeID    string     `json:"resume_id"`
	JobID       *uuid.UUID `json:"job_id,omitempty"`
	JobTitle    string     `json:"job_title"`
	Company     string     `json:"company"`
	Compatible  bool       `json:"compatible"`
	FinalScore  float64    `json:"final_score"`
	Explanation string     `json:"explanation"`
	CreatedAt   time.Time  `json:"created_at"`
}
