package pipeline

import (
	"errors"
	"fmt"
)

// ErrScoringFailed is matched by every failure raised inside a scoring run
var ErrScoringFailed = errors.New("scoring failed")

// ScoringError wraps an unexpected failure in a pipeline stage
type ScoringError struct {
	Stage string
	Cause error
}

func (e *ScoringError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("scoring failed at %s: %v", e.Stage, e.Cause)
	}
	return fmt.Sprintf("scoring failed at %s", e.Stage)
}

func (e *ScoringError) Unwrap() error {
	return e.Cause
}

// Is reports ErrScoringFailed as matching
func (e *ScoringError) Is(target error) bool {
	return target == ErrScoringFailed
}

// InputError represents a nil or malformed resume or job passed to the engine
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Message)
}
