package scoring

import (
	"fmt"
	"math"

	"github.com/jonathan/job-fit-scorer/internal/types"
)

const weightTolerance = 1e-9

// Weights are the component weights of the final score
type Weights struct {
	Skills     float64 `json:"skills" mapstructure:"skills"`
	Experience float64 `json:"experience" mapstructure:"experience"`
	Projects   float64 `json:"projects" mapstructure:"projects"`
	Education  float64 `json:"education" mapstructure:"education"`
	JobTitle   float64 `json:"job_title" mapstructure:"job_title"`
}

// DefaultWeights returns skills 30%, experience 25%, projects 20%, education 15%, title 10%
func DefaultWeights() Weights {
	return Weights{
		Skills:     0.30,
		Experience: 0.25,
		Projects:   0.20,
		Education:  0.15,
		JobTitle:   0.10,
	}
}

// Sum returns the total of all weights
func (w Weights) Sum() float64 {
	return w.Skills + w.Experience + w.Projects + w.Education + w.JobTitle
}

// Validate checks that every weight is non-negative and that they sum to 1.0
func (w Weights) Validate() error {
	for _, c := range []struct {
		name  string
		value float64
	}{
		{"skills", w.Skills},
		{"experience", w.Experience},
		{"projects", w.Projects},
		{"education", w.Education},
		{"job_title", w.JobTitle},
	} {
		if c.value < 0 {
			return &WeightsError{Message: fmt.Sprintf("%s weight must be non-negative, got %.2f", c.name, c.value)}
		}
	}
	if sum := w.Sum(); math.Abs(sum-1.0) > weightTolerance {
		return &WeightsError{Message: fmt.Sprintf("weights must sum to 1.0, got %.4f", sum)}
	}
	return nil
}

// Apply multiplies each component by its weight
func (w Weights) Apply(c types.ComponentScores) types.ComponentScores {
	return types.ComponentScores{
		Skills:     c.Skills * w.Skills,
		Experience: c.Experience * w.Experience,
		Projects:   c.Projects * w.Projects,
		Education:  c.Education * w.Education,
		JobTitle:   c.JobTitle * w.JobTitle,
	}
}

// Total returns the weighted sum of the components
func (w Weights) Total(c types.ComponentScores) float64 {
	weighted := w.Apply(c)
	return weighted.Skills + weighted.Experience + weighted.Projects + weighted.Education + weighted.JobTitle
}
