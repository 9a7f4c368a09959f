package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/job-fit-scorer/internal/density"
	"github.com/jonathan/job-fit-scorer/internal/ingestion"
	"github.com/jonathan/job-fit-scorer/internal/logger"
	"github.com/jonathan/job-fit-scorer/internal/pipeline"
	"github.com/jonathan/job-fit-scorer/internal/types"
)

// ScoreRequest is the body for score, stream and assess requests. Records are decoded through
// the ingestion adapter, so camelCase keys and skill lists are accepted.
type ScoreRequest struct {
	Resume map[string]any `json:"resume"`
	Job    map[string]any `json:"job"`
	Save   bool           `json:"save,omitempty"`
}

// ScoreResponse wraps a scoring result and the persisted row id, if saved
type ScoreResponse struct {
	Result   *types.ScoringResult `json:"result"`
	ResultID *uuid.UUID           `json:"result_id,omitempty"`
}

// BatchRequest scores many resumes against one job
type BatchRequest struct {
	Job     map[string]any   `json:"job"`
	Resumes []map[string]any `json:"resumes"`
}

// BatchResponse lists items in input order and the ranked successes
type BatchResponse struct {
	Items  []pipeline.BatchItem `json:"items"`
	Ranked []pipeline.BatchItem `json:"ranked"`
}

// DensityRequest is the body for technical density analysis
type DensityRequest struct {
	Text string `json:"text"`
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	return nil
}

// decodeScoreRequest parses the body and converts both records to engine types
func decodeScoreRequest(w http.ResponseWriter, r *http.Request) (*ScoreRequest, *types.Resume, *types.JobDetails, error) {
	var req ScoreRequest
	if err := decodeBody(w, r, &req); err != nil {
		return nil, nil, nil, err
	}
	if req.Resume == nil {
		return nil, nil, nil, &ErrValidation{Field: "resume", Message: "is required"}
	}
	if req.Job == nil {
		return nil, nil, nil, &ErrValidation{Field: "job", Message: "is required"}
	}

	resume, err := ingestion.DecodeResume(req.Resume)
	if err != nil {
		return nil, nil, nil, err
	}
	job, err := ingestion.DecodeJob(req.Job)
	if err != nil {
		return nil, nil, nil, err
	}
	return &req, resume, job, nil
}

// handleScore scores one resume against one job. Incompatible candidates are a normal 200
// response carrying the assessment blockers.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	req, resume, job, err := decodeScoreRequest(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if req.Save && s.store == nil {
		s.writeError(w, &ErrValidation{Field: "save", Message: "persistence is not configured"})
		return
	}

	result, err := s.engine.Score(r.Context(), resume, job)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := ScoreResponse{Result: result}
	if req.Save && result.Reason == "" {
		id, err := s.store.SaveScoringResult(r.Context(), job, nil, result)
		if err != nil {
			s.log.Error("failed to save scoring result",
				append(logger.JobFields(resume.ID, job.JobTitle, job.Company), zap.Error(err))...)
			s.errorResponse(w, http.StatusInternalServerError, "failed to save result")
			return
		}
		resp.ResultID = &id
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleScoreStream scores one pair and streams stage progress as server-sent events
func (s *Server) handleScoreStream(w http.ResponseWriter, r *http.Request) {
	_, resume, job, err := decodeScoreRequest(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	ctx := pipeline.WithProgress(r.Context(), func(event pipeline.ProgressEvent) {
		if err := sse.WriteEvent("step", event); err != nil {
			s.log.Warn("failed to write SSE event", zap.Error(err))
		}
	})

	result, err := s.engine.Score(ctx, resume, job)
	if err != nil {
		sse.WriteError(errorBody(err, HTTPStatus(err)).Error)
		return
	}

	sse.WriteEvent("result", result) //nolint:errcheck
	sse.WriteComplete(result.RunID, result.FinalScore)
}

// handleAssess runs the compatibility gate only
func (s *Server) handleAssess(w http.ResponseWriter, r *http.Request) {
	_, resume, job, err := decodeScoreRequest(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	assessment, err := s.engine.Assess(r.Context(), resume, job)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, assessment)
}

// handleBatch scores every resume against the job. Invalid resume records are reported on
// their item rather than failing the request.
func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if req.Job == nil {
		s.writeError(w, &ErrValidation{Field: "job", Message: "is required"})
		return
	}
	if len(req.Resumes) == 0 {
		s.writeError(w, &ErrValidation{Field: "resumes", Message: "at least one resume is required"})
		return
	}

	job, err := ingestion.DecodeJob(req.Job)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resumes := make([]*types.Resume, len(req.Resumes))
	decodeErrs := make(map[int]string)
	for i, record := range req.Resumes {
		resume, err := ingestion.DecodeResume(record)
		if err != nil {
			decodeErrs[i] = err.Error()
			continue
		}
		resumes[i] = resume
	}

	items, err := s.engine.ScoreBatch(r.Context(), job, resumes)
	if err != nil {
		s.writeError(w, err)
		return
	}
	for i, msg := range decodeErrs {
		items[i].Error = msg
		if id, ok := req.Resumes[i]["id"].(string); ok {
			items[i].ResumeID = id
		}
	}

	s.jsonResponse(w, http.StatusOK, BatchResponse{Items: items, Ranked: pipeline.RankBatch(items)})
}

// handleDensity returns the technical keyword density of arbitrary text
func (s *Server) handleDensity(w http.ResponseWriter, r *http.Request) {
	var req DensityRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		s.writeError(w, &ErrValidation{Field: "text", Message: "is required"})
		return
	}
	s.jsonResponse(w, http.StatusOK, density.Analyze(req.Text))
}

// handleListResults lists persisted results for a resume
func (s *Server) handleListResults(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusNotFound, "persistence is not configured")
		return
	}

	resumeID := r.URL.Query().Get("resume_id")
	if resumeID == "" {
		s.writeError(w, &ErrValidation{Field: "resume_id", Message: "is required"})
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > 100 {
			s.writeError(w, &ErrValidation{Field: "limit", Message: "must be between 1 and 100"})
			return
		}
		limit = n
	}

	records, err := s.store.ListScoreResults(r.Context(), resumeID, limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"results": records, "count": len(records)})
}
