// Package experience analyzes dated work history: durations, recency, seniority and required years.
package experience

import "fmt"

// DateParseError represents a date string that matches none of the accepted layouts
type DateParseError struct {
	Value string
	Cause error
}

func (e *DateParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("date parse error: %q: %v", e.Value, e.Cause)
	}
	return fmt.Sprintf("date parse error: %q", e.Value)
}

func (e *DateParseError) Unwrap() error {
	return e.Cause
}

// RangeError represents an entry whose end precedes its start
type RangeError struct {
	Message string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("date range error: %s", e.Message)
}
