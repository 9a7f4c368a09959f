package pipeline

import (
	"context"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-fit-scorer/internal/types"
)

// BatchItem is the outcome of scoring one resume in a batch
type BatchItem struct {
	ResumeID string               `json:"resume_id"`
	Result   *types.ScoringResult `json:"result,omitempty"`
	Error    string               `json:"error,omitempty"`
}

// ScoreBatch scores many resumes against one job with at most MaxConcurrent runs in flight.
// Per-resume failures are recorded on the item; only context cancellation fails the batch.
// Items keep the input order.
func (e *Engine) ScoreBatch(ctx context.Context, job *types.JobDetails, resumes []*types.Resume) ([]BatchItem, error) {
	if job == nil {
		return nil, &InputError{Message: "job is nil"}
	}

	items := make([]BatchItem, len(resumes))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.limit)

	for i, resume := range resumes {
		if resume != nil {
			items[i].ResumeID = resume.ID
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			result, err := e.Score(gCtx, resume, job)
			if err != nil {
				if gCtx.Err() != nil {
					return gCtx.Err()
				}
				items[i].Error = err.Error()
				return nil
			}
			items[i].Result = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		e.log.Warn("batch scoring interrupted", zap.Error(err))
		return nil, err
	}
	return items, nil
}

// RankBatch returns the successful items ordered by final score, highest first.
// Ties keep input order.
func RankBatch(items []BatchItem) []BatchItem {
	ranked := make([]BatchItem, 0, len(items))
	for _, it := range items {
		if it.Result != nil {
			ranked = append(ranked, it)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Result.FinalScore > ranked[j].Result.FinalScore
	})
	return ranked
}
