// Package ingestion converts loosely-shaped resume and job records (maps, JSON files, HTML text)
// into validated engine types.
package ingestion

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var errNilRecord = errors.New("record is nil")

// FieldError is one failed field constraint
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every field that failed validation
type ValidationError struct {
	Record string
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Record, strings.Join(parts, "; "))
}

// DecodeError represents a record that could not be decoded at all
type DecodeError struct {
	Record string
	Cause  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Record, e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// fromValidator converts validator errors into a ValidationError; other errors pass through
func fromValidator(record string, err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Record: record, Errors: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		msg := fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		out.Errors = append(out.Errors, FieldError{Field: fe.Namespace(), Message: msg})
	}
	return out
}
