package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/job-fit-scorer/internal/ingestion"
	"github.com/jonathan/job-fit-scorer/internal/types"
)

// -----------------------------------------------------------------------------
// Resume Methods
// -----------------------------------------------------------------------------

// GetResume loads a resume record by id and runs it through the ingestion adapter.
// Returns nil, nil when no resume has that id.
func (db *DB) GetResume(ctx context.Context, id string) (*types.Resume, error) {
	var data []byte
	err := db.pool.QueryRow(ctx,
		`SELECT data FROM resumes WHERE id = $1`,
		id,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume %s: %w", id, err)
	}

	return decodeResume(id, data)
}

// UpsertResume stores a resume document under its id
func (db *DB) UpsertResume(ctx context.Context, resume *types.Resume) error {
	if resume == nil || resume.ID == "" {
		return fmt.Errorf("resume id is required")
	}

	data, err := json.Marshal(resume)
	if err != nil {
		return fmt.Errorf("failed to marshal resume: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO resumes (id, data)
		 VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET data = $2, updated_at = NOW()`,
		resume.ID, data,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert resume %s: %w", resume.ID, err)
	}
	return nil
}

// decodeResume turns a stored JSONB document into a validated resume
func decodeResume(id string, data []byte) (*types.Resume, error) {
	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse resume %s: %w", id, err)
	}

	resume, err := ingestion.DecodeResume(record)
	if err != nil {
		return nil, err
	}
	resume.ID = id
	return resume, nil
}
