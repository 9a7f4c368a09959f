package skills

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-fit-scorer/internal/types"
)

const (
	// potentialConfidence is assigned to skills only found in free-text evidence
	potentialConfidence = 0.5
	// maxSuggestedAlternatives bounds the related technologies named in a suggestion
	maxSuggestedAlternatives = 3
)

// MatchOptions tunes a single matching run. The zero value is not valid; use DefaultMatchOptions.
type MatchOptions struct {
	// BaseWeight scales the confidence of every match
	BaseWeight float64
	// ContextMultiplier further scales confidence for the surrounding context
	ContextMultiplier float64
	// CompensationFactor overrides the catalog factor for related matches when > 0
	CompensationFactor float64
	// MinimumThreshold discards matches whose confidence falls below it
	MinimumThreshold float64
	// EvidenceText is searched for required skills that matched nothing in the skill list
	EvidenceText string
}

// DefaultMatchOptions returns neutral options
func DefaultMatchOptions() MatchOptions {
	return MatchOptions{
		BaseWeight:        1.0,
		ContextMultiplier: 1.0,
	}
}

// Validate checks the option ranges
func (o *MatchOptions) Validate() error {
	if o.BaseWeight <= 0 {
		return &MatchError{Message: fmt.Sprintf("base weight must be positive, got %.2f", o.BaseWeight)}
	}
	if o.ContextMultiplier <= 0 {
		return &MatchError{Message: fmt.Sprintf("context multiplier must be positive, got %.2f", o.ContextMultiplier)}
	}
	if o.CompensationFactor < 0 || o.CompensationFactor > 1 {
		return &MatchError{Message: fmt.Sprintf("compensation factor must be in [0,1], got %.2f", o.CompensationFactor)}
	}
	if o.MinimumThreshold < 0 || o.MinimumThreshold > 1 {
		return &MatchError{Message: fmt.Sprintf("minimum threshold must be in [0,1], got %.2f", o.MinimumThreshold)}
	}
	return nil
}

// MatchSkills matches each required skill against the candidate skills.
// A required skill is matched directly (equal, synonym, or fuzzy equal), else through a
// related technology in the same catalog group at the group's compensation factor, else
// it is reported missing. Score is the mean confidence over required skills.
func (m *Matcher) MatchSkills(required, candidate []string, opts *MatchOptions) (*types.SkillMatchResult, error) {
	o := DefaultMatchOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	reqs := NormalizeSkills(required)
	cands := NormalizeSkills(candidate)
	candSet := make(map[string]struct{}, len(cands))
	for _, c := range cands {
		candSet[c] = struct{}{}
	}

	result := &types.SkillMatchResult{
		Matches:         []types.SkillMatch{},
		Compensations:   []types.SkillCompensation{},
		MissingCritical: []string{},
		Suggestions:     []string{},
	}
	if len(reqs) == 0 {
		return result, nil
	}

	scale := o.BaseWeight * o.ContextMultiplier
	total := 0.0

	for _, req := range reqs {
		if with, ok := m.directMatch(req, cands, candSet); ok {
			conf := clamp01(scale)
			if conf >= o.MinimumThreshold {
				total += conf
				result.Matches = append(result.Matches, types.SkillMatch{
					Skill:       req,
					MatchedWith: with,
					Confidence:  conf,
					MatchType:   types.MatchDirect,
				})
				continue
			}
		}

		if with, ok := m.relatedMatch(req, cands); ok {
			factor := o.CompensationFactor
			if factor == 0 {
				factor = m.catalog.CompensationFactor(req)
			}
			conf := clamp01(scale * factor)
			if conf >= o.MinimumThreshold {
				total += conf
				result.Matches = append(result.Matches, types.SkillMatch{
					Skill:       req,
					MatchedWith: with,
					Confidence:  conf,
					MatchType:   types.MatchRelated,
					Context:     m.catalog.Category(req),
				})
				result.Compensations = append(result.Compensations, types.SkillCompensation{
					Skill:         req,
					CompensatedBy: with,
					Factor:        factor,
				})
				continue
			}
		}

		result.MissingCritical = append(result.MissingCritical, req)

		if o.EvidenceText != "" && m.CountMentions(o.EvidenceText, req) > 0 {
			result.Matches = append(result.Matches, types.SkillMatch{
				Skill:       req,
				MatchedWith: req,
				Confidence:  potentialConfidence,
				MatchType:   types.MatchPotential,
				Context:     "mentioned in experience or projects",
			})
			result.Suggestions = append(result.Suggestions,
				fmt.Sprintf("List %s explicitly in your skills; it only appears in your experience descriptions", req))
			continue
		}

		result.Suggestions = append(result.Suggestions, m.missingSuggestion(req))
	}

	result.Score = clamp01(total / float64(len(reqs)))
	return result, nil
}

func (m *Matcher) directMatch(req string, cands []string, candSet map[string]struct{}) (string, bool) {
	if _, ok := candSet[req]; ok {
		return req, true
	}
	for _, c := range cands {
		if AreSimilarSkills(req, c) {
			return c, true
		}
	}
	return "", false
}

func (m *Matcher) relatedMatch(req string, cands []string) (string, bool) {
	for _, c := range cands {
		if m.catalog.AreRelated(req, c) {
			return c, true
		}
	}
	return "", false
}

func (m *Matcher) missingSuggestion(skill string) string {
	related := m.catalog.Related(skill)
	if len(related) == 0 {
		return fmt.Sprintf("Consider gaining experience with %s", skill)
	}
	if len(related) > maxSuggestedAlternatives {
		related = related[:maxSuggestedAlternatives]
	}
	return fmt.Sprintf("Consider gaining experience with %s or related technologies (%s)",
		skill, strings.Join(related, ", "))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
