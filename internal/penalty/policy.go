package penalty

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-fit-scorer/internal/types"
)

// Scoring modes
const (
	ModeStandard = "standard"
	ModeLenient  = "lenient"
)

// Policy decides how penalties are adjusted and the lowest final score a compatible
// candidate can receive
type Policy interface {
	Name() string
	Adjust(in Input) *types.CompensationResult
	ScoreFloor() float64
}

// Standard applies compensation, caps and floors and lets compatible candidates score down to 0
type Standard struct{}

// Name returns the policy name
func (Standard) Name() string { return ModeStandard }

// Adjust runs the compensation sequence
func (Standard) Adjust(in Input) *types.CompensationResult { return compute(in) }

// ScoreFloor returns 0
func (Standard) ScoreFloor() float64 { return 0 }

// Lenient is Standard with a final score floor of 1.0 for compatible candidates
type Lenient struct {
	Standard
}

// Name returns the policy name
func (Lenient) Name() string { return ModeLenient }

// ScoreFloor returns 1.0
func (Lenient) ScoreFloor() float64 { return 1.0 }

// ForMode returns the policy for a scoring mode; "" selects standard
func ForMode(mode string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModeStandard:
		return Standard{}, nil
	case ModeLenient:
		return Lenient{}, nil
	default:
		return nil, fmt.Errorf("unknown scoring mode %q (expected %s or %s)", mode, ModeStandard, ModeLenient)
	}
}
