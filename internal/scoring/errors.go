// Package scoring computes the five weighted component scores of a resume against a job.
package scoring

import "fmt"

// WeightsError represents an invalid component weight configuration
type WeightsError struct {
	Message string
}

func (e *WeightsError) Error() string {
	return fmt.Sprintf("weights error: %s", e.Message)
}

// InputError represents missing or unusable scoring input
type InputError struct {
	Message string
	Cause   error
}

func (e *InputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("input error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("input error: %s", e.Message)
}

func (e *InputError) Unwrap() error {
	return e.Cause
}
