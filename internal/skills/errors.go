package skills

import "fmt"

// MatchError represents invalid input to the skill matcher
type MatchError struct {
	Message string
	Cause   error
}

func (e *MatchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("skill match error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("skill match error: %s", e.Message)
}

func (e *MatchError) Unwrap() error {
	return e.Cause
}
