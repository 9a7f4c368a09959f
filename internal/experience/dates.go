package experience

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// recencyHalfScale is the decay constant in months for recency scoring
const recencyHalfScale = 24.0

//nolint:gochecknoglobals // accepted layouts, tried in order
var dateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006/01",
	"01/2006",
	"1/2006",
	"Jan 2006",
	"January 2006",
	"Jan. 2006",
	"2006",
}

//nolint:gochecknoglobals // lookup table
var currentMarkers = map[string]struct{}{
	"":        {},
	"present": {},
	"current": {},
	"now":     {},
	"ongoing": {},
	"today":   {},
}

// IsCurrent reports whether an end date denotes an ongoing position
func IsCurrent(end string) bool {
	_, ok := currentMarkers[strings.ToLower(strings.TrimSpace(end))]
	return ok
}

// ParseDate parses a resume date in any of the accepted layouts
func ParseDate(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, &DateParseError{Value: value}
	}

	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, &DateParseError{Value: value, Cause: lastErr}
}

// MonthsBetween returns the whole calendar months from start to end
func MonthsBetween(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}

// Span resolves an entry's dates against now and returns its length in months.
// An empty or "present" end date resolves to now.
func Span(startDate, endDate string, now time.Time) (start, end time.Time, months int, err error) {
	start, err = ParseDate(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, 0, err
	}

	if IsCurrent(endDate) {
		end = now
	} else {
		end, err = ParseDate(endDate)
		if err != nil {
			return time.Time{}, time.Time{}, 0, err
		}
	}

	if end.After(now) {
		end = now
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, 0, &RangeError{
			Message: fmt.Sprintf("end %s precedes start %s", end.Format("2006-01"), start.Format("2006-01")),
		}
	}

	return start, end, MonthsBetween(start, end), nil
}

// Recency scores how recently a period ended: exp(-monthsSinceEnd/24)
func Recency(end, now time.Time) float64 {
	since := MonthsBetween(end, now)
	if since <= 0 {
		return 1
	}
	return math.Exp(-float64(since) / recencyHalfScale)
}
