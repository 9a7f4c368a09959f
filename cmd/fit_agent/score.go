package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/job-fit-scorer/internal/db"
	"github.com/jonathan/job-fit-scorer/internal/ingestion"
	"github.com/jonathan/job-fit-scorer/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one resume against one job",
	Long: `Scores a resume against a job description and prints the ScoringResult as JSON.

Inputs come from files (--resume, --job) or from the database (--resume-id, --job-id).
Job files may be JSON job records, plain text, Markdown or HTML. An incompatible candidate
is not an error: the result has compatible=false, score 0 and the blocking reasons.`,
	RunE: runScore,
}

var (
	scoreResume   string
	scoreJob      string
	scoreTitle    string
	scoreCompany  string
	scoreResumeID string
	scoreJobID    string
	scoreSave     bool
	scoreOutput   string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to resume JSON file")
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to job file (JSON, text, Markdown or HTML)")
	scoreCmd.Flags().StringVar(&scoreTitle, "title", "", "Job title (overrides the job file)")
	scoreCmd.Flags().StringVar(&scoreCompany, "company", "", "Company name (overrides the job file)")
	scoreCmd.Flags().StringVar(&scoreResumeID, "resume-id", "", "Load the resume from the database by id")
	scoreCmd.Flags().StringVar(&scoreJobID, "job-id", "", "Load the job from the database by id")
	scoreCmd.Flags().BoolVar(&scoreSave, "save", false, "Persist the result to the database")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output JSON file (default stdout)")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()
	ctx := cmd.Context()

	resume, err := a.loadResume(ctx, scoreResume, scoreResumeID)
	if err != nil {
		return err
	}
	job, jobID, err := a.loadJob(ctx, scoreJob, scoreJobID, scoreTitle, scoreCompany)
	if err != nil {
		return err
	}

	result, err := a.engine.Score(ctx, resume, job)
	if err != nil {
		return fmt.Errorf("failed to score resume: %w", err)
	}

	if p := printer(cmd); p != nil {
		if result.Assessment != nil {
			p.PrintAssessment(result.Assessment)
		}
		p.PrintScoringResult(result)
	}

	if scoreSave {
		store, err := a.db(ctx)
		if err != nil {
			return err
		}
		id, err := store.SaveScoringResult(ctx, job, jobID, result)
		switch {
		case errors.Is(err, db.ErrUnscoredResult):
			a.log.Warn("result not saved", zap.Error(err))
		case err != nil:
			return err
		default:
			a.log.Info("result saved", zap.String("id", id.String()))
		}
	}

	return writeJSON(cmd, scoreOutput, result)
}

// loadResume reads the resume from a file, or from the database when id is set
func (a *app) loadResume(ctx context.Context, path, id string) (*types.Resume, error) {
	switch {
	case id != "":
		store, err := a.db(ctx)
		if err != nil {
			return nil, err
		}
		resume, err := store.GetResume(ctx, id)
		if err != nil {
			return nil, err
		}
		if resume == nil {
			return nil, fmt.Errorf("resume %s not found", id)
		}
		return resume, nil
	case path != "":
		resume, err := ingestion.LoadResumeFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load resume: %w", err)
		}
		return resume, nil
	default:
		return nil, fmt.Errorf("either --resume or --resume-id is required")
	}
}

// loadJob reads the job from a file, or from the database when id is set. The returned id is
// nil for file jobs.
func (a *app) loadJob(ctx context.Context, path, id, title, company string) (*types.JobDetails, *uuid.UUID, error) {
	switch {
	case id != "":
		jobID, err := uuid.Parse(id)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --job-id %q: %w", id, err)
		}
		store, err := a.db(ctx)
		if err != nil {
			return nil, nil, err
		}
		job, err := store.GetJob(ctx, jobID)
		if err != nil {
			return nil, nil, err
		}
		if job == nil {
			return nil, nil, fmt.Errorf("job %s not found", id)
		}
		if title != "" {
			job.JobTitle = title
		}
		if company != "" {
			job.Company = company
		}
		return job, &jobID, nil
	case path != "":
		job, err := ingestion.LoadJobFile(path, title, company)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load job: %w", err)
		}
		return job, nil, nil
	default:
		return nil, nil, fmt.Errorf("either --job or --job-id is required")
	}
}
