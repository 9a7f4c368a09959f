package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-fit-scorer/internal/db"
	"github.com/jonathan/job-fit-scorer/internal/gate"
	"github.com/jonathan/job-fit-scorer/internal/ingestion"
	"github.com/jonathan/job-fit-scorer/internal/pipeline"
	"github.com/jonathan/job-fit-scorer/internal/types"
)

var fixedNow = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

// mockStore records saved results in memory
type mockStore struct {
	mu    sync.Mutex
	saved []*types.ScoringResult
}

func (m *mockStore) SaveScoringResult(_ context.Context, _ *types.JobDetails, _ *uuid.UUID, result *types.ScoringResult) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = append(m.saved, result)
	return uuid.New(), nil
}

func (m *mockStore) ListScoreResults(_ context.Context, resumeID string, _ int) ([]db.ScoreRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []db.ScoreRecord
	for _, r := range m.saved {
		if r.ResumeID == resumeID {
			out = append(out, db.ScoreRecord{ResumeID: r.ResumeID, FinalScore: r.FinalScore})
		}
	}
	return out, nil
}

func (m *mockStore) Close() {}

func newTestServer(t *testing.T, store ResultStore, maxConcurrent int) *Server {
	t.Helper()
	engine, err := pipeline.New(pipeline.Options{
		Gate:  gate.DefaultConfig(),
		Clock: func() time.Time { return fixedNow },
	})
	require.NoError(t, err)

	s, err := New(Config{Port: 0, MaxConcurrent: maxConcurrent, Engine: engine, Store: store})
	require.NoError(t, err)
	return s
}

func resumeRecord(id string) map[string]any {
	return map[string]any{
		"id":     id,
		"skills": []any{"Go", "PostgreSQL", "Docker", "Kubernetes"},
		"workExperience": []any{
			map[string]any{
				"title":       "Software Engineer",
				"company":     "Beta",
				"description": "Built Go services on PostgreSQL",
				"startDate":   "2019-01",
				"endDate":     "present",
			},
		},
		"education": []any{
			map[string]any{"degree": "BS", "field": "Computer Science", "graduationDate": "2018-05"},
		},
		"projects": []any{
			map[string]any{"name": "api", "description": "REST API in Go", "technologies": "go, docker"},
		},
	}
}

func jobRecord() map[string]any {
	return map[string]any{
		"company":  "Acme",
		"jobTitle": "Backend Engineer",
		"jobDescription": "We build Go services on PostgreSQL and Docker. Go experience is required. " +
			"3+ years of experience required.",
		"requiredSkills": []any{"go", "postgresql", "docker"},
	}
}

func do(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestNew_RequiresEngine(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, nil, 0)
	rec := do(t, s, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "standard", body["policy"])
}

func TestScore_Compatible(t *testing.T) {
	s := newTestServer(t, nil, 0)
	rec := do(t, s, http.MethodPost, "/v1/score", ScoreRequest{Resume: resumeRecord("r-1"), Job: jobRecord()})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp ScoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Result)
	assert.True(t, resp.Result.Compatible)
	assert.Greater(t, resp.Result.FinalScore, 0.0)
	assert.LessOrEqual(t, resp.Result.FinalScore, 10.0)
	assert.Equal(t, "r-1", resp.Result.ResumeID)
	assert.Nil(t, resp.ResultID)
}

func TestScore_IncompatibleIsOK(t *testing.T) {
	s := newTestServer(t, nil, 0)
	job := map[string]any{
		"job_title":       "Frontend Developer",
		"job_description": "We build frontends. React experience is required. Some JavaScript helps.",
		"required_skills": []any{"javascript", "react"},
	}
	rec := do(t, s, http.MethodPost, "/v1/score", ScoreRequest{Resume: map[string]any{"skills": "javascript"}, Job: job})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ScoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Result.Compatible)
	assert.Equal(t, 0.0, resp.Result.FinalScore)
	require.NotNil(t, resp.Result.Assessment)
	assert.NotEmpty(t, resp.Result.Assessment.Blockers())
}

func TestScore_BadRequests(t *testing.T) {
	s := newTestServer(t, nil, 0)

	tests := []struct {
		name    string
		body    any
		wantErr string
	}{
		{"invalid json", "{not json", "invalid JSON"},
		{"missing resume", ScoreRequest{Job: jobRecord()}, "resume"},
		{"missing job", ScoreRequest{Resume: resumeRecord("r")}, "job"},
		{"job without title", ScoreRequest{Resume: resumeRecord("r"), Job: map[string]any{"job_description": "Go"}}, "invalid job"},
		{"save without store", ScoreRequest{Resume: resumeRecord("r"), Job: jobRecord(), Save: true}, "persistence"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/v1/score", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Contains(t, body.Error, tt.wantErr)
		})
	}
}

func TestScore_ValidationFieldsReported(t *testing.T) {
	s := newTestServer(t, nil, 0)
	resume := map[string]any{
		"skills":          "Go",
		"work_experience": []any{map[string]any{"company": "Acme"}},
	}
	rec := do(t, s, http.MethodPost, "/v1/score", ScoreRequest{Resume: resume, Job: jobRecord()})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Fields, 1)
	assert.Equal(t, "Resume.WorkExperience[0].Title", body.Fields[0].Field)
}

func TestScore_SavesWhenRequested(t *testing.T) {
	store := &mockStore{}
	s := newTestServer(t, store, 0)

	rec := do(t, s, http.MethodPost, "/v1/score", ScoreRequest{Resume: resumeRecord("r-9"), Job: jobRecord(), Save: true})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ScoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.ResultID)
	require.Len(t, store.saved, 1)
	assert.Equal(t, "r-9", store.saved[0].ResumeID)

	rec = do(t, s, http.MethodGet, "/v1/results?resume_id=r-9", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":1`)
}

func TestListResults(t *testing.T) {
	s := newTestServer(t, nil, 0)
	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodGet, "/v1/results?resume_id=r", nil).Code)

	s = newTestServer(t, &mockStore{}, 0)
	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodGet, "/v1/results", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodGet, "/v1/results?resume_id=r&limit=0", nil).Code)
	assert.Equal(t, http.StatusOK, do(t, s, http.MethodGet, "/v1/results?resume_id=r&limit=5", nil).Code)
}

func TestAssess(t *testing.T) {
	s := newTestServer(t, nil, 0)
	rec := do(t, s, http.MethodPost, "/v1/assess", ScoreRequest{Resume: resumeRecord("r-1"), Job: jobRecord()})
	require.Equal(t, http.StatusOK, rec.Code)

	var assessment types.AssessmentResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &assessment))
	assert.True(t, assessment.IsCompatible)
}

func TestDensity(t *testing.T) {
	s := newTestServer(t, nil, 0)

	rec := do(t, s, http.MethodPost, "/v1/density", DensityRequest{Text: "Go microservices on Kubernetes with PostgreSQL"})
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Score   float64  `json:"score"`
		Matches []string `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Greater(t, body.Score, 0.0)
	assert.NotEmpty(t, body.Matches)

	rec = do(t, s, http.MethodPost, "/v1/density", DensityRequest{Text: "  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBatch(t *testing.T) {
	s := newTestServer(t, nil, 2)
	weak := map[string]any{"id": "weak", "skills": "Excel"}
	invalid := map[string]any{"id": "bad", "projects": []any{map[string]any{"description": "no name"}}}

	rec := do(t, s, http.MethodPost, "/v1/batch", BatchRequest{
		Job:     jobRecord(),
		Resumes: []map[string]any{weak, resumeRecord("strong"), invalid},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp BatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 3)
	assert.Equal(t, "weak", resp.Items[0].ResumeID)
	assert.Equal(t, "strong", resp.Items[1].ResumeID)
	assert.Equal(t, "bad", resp.Items[2].ResumeID)
	assert.Contains(t, resp.Items[2].Error, "invalid resume")

	require.Len(t, resp.Ranked, 2)
	assert.Equal(t, "strong", resp.Ranked[0].ResumeID)
}

func TestBatch_BadRequests(t *testing.T) {
	s := newTestServer(t, nil, 0)
	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodPost, "/v1/batch", BatchRequest{Job: jobRecord()}).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodPost, "/v1/batch",
		BatchRequest{Resumes: []map[string]any{resumeRecord("r")}}).Code)
}

func TestScoreStream(t *testing.T) {
	s := newTestServer(t, nil, 0)
	rec := do(t, s, http.MethodPost, "/v1/score/stream", ScoreRequest{Resume: resumeRecord(""), Job: jobRecord()})

	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "event: step\n")
	assert.Contains(t, body, "event: result\n")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(body), "}"))
	assert.Less(t, strings.Index(body, "event: step"), strings.Index(body, "event: complete"))
}

func TestConcurrencyLimit(t *testing.T) {
	s := newTestServer(t, nil, 1)
	require.NoError(t, s.sem.Acquire(context.Background(), 1))
	defer s.sem.Release(1)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(ScoreRequest{Resume: resumeRecord("r"), Job: jobRecord()}))
	req := httptest.NewRequest(http.MethodPost, "/v1/score", &buf).WithContext(ctx)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	// density is not limited
	assert.Equal(t, http.StatusOK, do(t, s, http.MethodPost, "/v1/density", DensityRequest{Text: "go"}).Code)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"request validation", &ErrValidation{Field: "x", Message: "bad"}, http.StatusBadRequest},
		{"record validation", &ingestion.ValidationError{Record: "resume"}, http.StatusBadRequest},
		{"decode", &ingestion.DecodeError{Record: "job", Cause: errors.New("x")}, http.StatusBadRequest},
		{"engine input", &pipeline.InputError{Message: "resume is nil"}, http.StatusBadRequest},
		{"canceled", context.Canceled, http.StatusServiceUnavailable},
		{"scoring failure", &pipeline.ScoringError{Stage: pipeline.StageGate, Cause: errors.New("x")}, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorBody_HidesInternalErrors(t *testing.T) {
	err := &pipeline.ScoringError{Stage: pipeline.StageGate, Cause: errors.New("nil map deref")}
	assert.Equal(t, "scoring failed", errorBody(err, http.StatusInternalServerError).Error)
	assert.Equal(t, "internal error", errorBody(errors.New("x"), http.StatusInternalServerError).Error)
}
