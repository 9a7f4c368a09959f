package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/job-fit-scorer/internal/types"
)

// -----------------------------------------------------------------------------
// Score Result Methods
// -----------------------------------------------------------------------------

type scoreRow struct {
	id         uuid.UUID
	record     ScoreRecord
	analytics  []byte
	assessment []byte
}

func newScoreRow(job *types.JobDetails, jobID *uuid.UUID, result *types.ScoringResult) (*scoreRow, error) {
	if job == nil || result == nil {
		return nil, fmt.Errorf("job and result are required")
	}
	if result.Reason != "" {
		return nil, fmt.Errorf("%w: %s", ErrUnscoredResult, result.Reason)
	}

	analytics, err := json.Marshal(result.Analytics)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analytics: %w", err)
	}
	var assessment []byte
	if result.Assessment != nil {
		assessment, err = json.Marshal(result.Assessment)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal assessment: %w", err)
		}
	}

	// run ids are uuids unless the engine was given a custom generator
	id, err := uuid.Parse(result.RunID)
	if err != nil {
		id = uuid.New()
	}

	return &scoreRow{
		id: id,
		record: ScoreRecord{
			ID:          id,
			RunID:       result.RunID,
			ResumeID:    result.ResumeID,
			JobID:       jobID,
			JobTitle:    job.JobTitle,
			Company:     job.Company,
			Compatible:  result.Compatible,
			FinalScore:  result.FinalScore,
			Explanation: result.Explanation,
		},
		analytics:  analytics,
		assessment: assessment,
	}, nil
}

// SaveScoringResult persists a scored result. jobID may be nil for jobs that were not loaded
// from the database. Results for unusable input (Reason set) are rejected.
func (db *DB) SaveScoringResult(ctx context.Context, job *types.JobDetails, jobID *uuid.UUID, result *types.ScoringResult) (uuid.UUID, error) {
	row, err := newScoreRow(job, jobID, result)
	if err != nil {
		return uuid.Nil, err
	}

	r := row.record
	_, err = db.pool.Exec(ctx,
		`INSERT INTO score_results (id, run_id, resume_id, job_id, job_title, company,
		                            compatible, final_score, explanation, analytics, assessment)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (id) DO UPDATE SET final_score = $8, explanation = $9, analytics = $10,
		                                assessment = $11, created_at = NOW()`,
		row.id, r.RunID, r.ResumeID, r.JobID, r.JobTitle, r.Company,
		r.Compatible, r.FinalScore, r.Explanation, row.analytics, row.assessment,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save scoring result: %w", err)
	}
	return row.id, nil
}

// ListScoreResults returns the most recent results for a resume, newest first
func (db *DB) ListScoreResults(ctx context.Context, resumeID string, limit int) ([]ScoreRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, run_id, resume_id, job_id, job_title, company, compatible,
		        final_score, explanation, created_at
		 FROM score_results WHERE resume_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		resumeID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list score results: %w", err)
	}
	defer rows.Close()

	var out []ScoreRecord
	for rows.Next() {
		var r ScoreRecord
		if err := rows.Scan(&r.ID, &r.RunID, &r.ResumeID, &r.JobID, &r.JobTitle, &r.Company,
			&r.Compatible, &r.FinalScore, &r.Explanation, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan score result: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate score results: %w", err)
	}
	return out, nil
}
