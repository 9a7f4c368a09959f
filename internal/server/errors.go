package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/job-fit-scorer/internal/ingestion"
	"github.com/jonathan/job-fit-scorer/internal/pipeline"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrorBody is the JSON error envelope
type ErrorBody struct {
	Error  string                 `json:"error"`
	Fields []ingestion.FieldError `json:"fields,omitempty"`
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		reqErr    *ErrValidation
		recordErr *ingestion.ValidationError
		decodeErr *ingestion.DecodeError
		inputErr  *pipeline.InputError
	)
	switch {
	case errors.As(err, &reqErr), errors.As(err, &recordErr), errors.As(err, &decodeErr), errors.As(err, &inputErr):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorBody builds the response body for err. Internal failures are not echoed to clients.
func errorBody(err error, status int) ErrorBody {
	if status == http.StatusInternalServerError {
		if errors.Is(err, pipeline.ErrScoringFailed) {
			return ErrorBody{Error: "scoring failed"}
		}
		return ErrorBody{Error: "internal error"}
	}
	body := ErrorBody{Error: err.Error()}
	var recordErr *ingestion.ValidationError
	if errors.As(err, &recordErr) {
		body.Fields = recordErr.Errors
	}
	return body
}

// writeError maps err to a status and writes the JSON envelope
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.log.Error("request failed", zap.Error(err))
	}
	s.jsonResponse(w, status, errorBody(err, status))
}
