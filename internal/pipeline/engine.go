// Package pipeline orchestrates a scoring run: feature extraction, the compatibility gate,
// component scoring, penalty compensation and the final explained score.
package pipeline

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/job-fit-scorer/internal/cache"
	"github.com/jonathan/job-fit-scorer/internal/density"
	"github.com/jonathan/job-fit-scorer/internal/gate"
	"github.com/jonathan/job-fit-scorer/internal/logger"
	"github.com/jonathan/job-fit-scorer/internal/penalty"
	"github.com/jonathan/job-fit-scorer/internal/scoring"
	"github.com/jonathan/job-fit-scorer/internal/skills"
	"github.com/jonathan/job-fit-scorer/internal/types"
)

// MaxScore is the top of the final score range
const MaxScore = 10.0

// Stage names reported through progress events and ScoringError
const (
	StageFeatures     = "features"
	StageGate         = "gate"
	StageComponents   = "components"
	StageCompensation = "compensation"
	StageFinalize     = "finalize"
)

// Reasons for zero scores on unusable input
const (
	ReasonNoSkills         = "resume lists no skills"
	ReasonEmptyDescription = "job description is empty"
)

// ProgressEvent represents a progress update during a scoring run
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Options holds configuration for an Engine
type Options struct {
	Mode          string // standard or lenient
	Gate          gate.Config
	Weights       scoring.Weights // zero value selects scoring.DefaultWeights
	Matcher       *skills.Matcher // nil selects skills.DefaultMatcher
	Cache         cache.Cache     // nil disables caching
	CacheTTL      time.Duration
	MaxConcurrent int // batch scoring concurrency, defaults to 4
	Logger        *zap.Logger
	Clock         func() time.Time
	NewRunID      func() string
	OnProgress    ProgressCallback
}

// Engine scores resumes against jobs. It is safe for concurrent use.
type Engine struct {
	gate     *gate.Gate
	scorer   *scoring.Scorer
	policy   penalty.Policy
	matcher  *skills.Matcher
	cache    cache.Cache
	cacheTTL time.Duration
	limit    int
	log      *zap.Logger
	now      func() time.Time
	newRunID func() string
	progress ProgressCallback
}

// DefaultMaxConcurrent bounds batch scoring when Options.MaxConcurrent is unset
const DefaultMaxConcurrent = 4

// New builds an engine; the penalty policy is chosen here from opts.Mode
func New(opts Options) (*Engine, error) {
	policy, err := penalty.ForMode(opts.Mode)
	if err != nil {
		return nil, err
	}

	m := opts.Matcher
	if m == nil {
		m = skills.DefaultMatcher()
	}

	w := opts.Weights
	if w == (scoring.Weights{}) {
		w = scoring.DefaultWeights()
	}
	scorer, err := scoring.NewScorer(m, w)
	if err != nil {
		return nil, fmt.Errorf("invalid weights: %w", err)
	}

	g, err := gate.New(opts.Gate, m)
	if err != nil {
		return nil, fmt.Errorf("invalid gate config: %w", err)
	}

	c := opts.Cache
	if c == nil {
		c = cache.Noop{}
	}
	limit := opts.MaxConcurrent
	if limit <= 0 {
		limit = DefaultMaxConcurrent
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	newRunID := opts.NewRunID
	if newRunID == nil {
		newRunID = uuid.NewString
	}

	return &Engine{
		gate:     g,
		scorer:   scorer,
		policy:   policy,
		matcher:  m,
		cache:    c,
		cacheTTL: opts.CacheTTL,
		limit:    limit,
		log:      logger.OrNop(opts.Logger),
		now:      clock,
		newRunID: newRunID,
		progress: opts.OnProgress,
	}, nil
}

// Policy returns the name of the engine's penalty policy
func (e *Engine) Policy() string {
	return e.policy.Name()
}

type progressKey struct{}

// WithProgress attaches a per-call progress callback to ctx. It is called after the
// engine-wide OnProgress callback, from the scoring goroutine.
func WithProgress(ctx context.Context, cb ProgressCallback) context.Context {
	return context.WithValue(ctx, progressKey{}, cb)
}

func (e *Engine) emit(ctx context.Context, runID, step, message string, content any) {
	event := ProgressEvent{Step: step, Message: message, RunID: runID, Content: content}
	if e.progress != nil {
		e.progress(event)
	}
	if cb, ok := ctx.Value(progressKey{}).(ProgressCallback); ok && cb != nil {
		cb(event)
	}
}

func validateInput(resume *types.Resume, job *types.JobDetails) error {
	if resume == nil {
		return &InputError{Message: "resume is nil"}
	}
	if job == nil {
		return &InputError{Message: "job is nil"}
	}
	return nil
}

// Assess runs only the compatibility gate
func (e *Engine) Assess(ctx context.Context, resume *types.Resume, job *types.JobDetails) (assessment *types.AssessmentResult, err error) {
	if err := validateInput(resume, job); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	defer e.recoverStage(StageGate, &err)

	f, err := scoring.Extract(e.matcher, resume, job, e.now())
	if err != nil {
		return nil, &ScoringError{Stage: StageFeatures, Cause: err}
	}
	return e.gate.Evaluate(f), nil
}

// Score runs the full pipeline for one resume and job. Unusable input (no skills, empty
// description) yields a zero score with a Reason. A blocked gate yields score 0 with the
// assessment attached. Unexpected failures are returned as *ScoringError.
func (e *Engine) Score(ctx context.Context, resume *types.Resume, job *types.JobDetails) (*types.ScoringResult, error) {
	if err := validateInput(resume, job); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fields := logger.JobFields(resume.ID, job.JobTitle, job.Company)

	var key string
	if resume.ID != "" {
		key = cache.Key(resume.ID, job.JobTitle, job.Company)
		cached, ok, err := e.cache.Get(ctx, key)
		if err != nil {
			e.log.Warn("cache read failed", append(fields, zap.Error(err))...)
		}
		if ok {
			e.log.Debug("cache hit", fields...)
			return cached, nil
		}
	}

	result, err := e.run(ctx, resume, job)
	if err != nil {
		e.log.Error("scoring failed", append(fields, zap.Error(err))...)
		return nil, err
	}

	if key != "" && result.Reason == "" {
		if err := e.cache.Set(ctx, key, result, e.cacheTTL); err != nil {
			e.log.Warn("cache write failed", append(fields, zap.Error(err))...)
		}
	}
	return result, nil
}

func (e *Engine) recoverStage(stage string, err *error) {
	if r := recover(); r != nil {
		*err = &ScoringError{Stage: stage, Cause: fmt.Errorf("panic: %v", r)}
	}
}

func (e *Engine) run(ctx context.Context, resume *types.Resume, job *types.JobDetails) (result *types.ScoringResult, err error) {
	runID := e.newRunID()
	stage := StageFeatures
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &ScoringError{Stage: stage, Cause: fmt.Errorf("panic: %v", r)}
		}
	}()

	log := e.log.With(zap.String(logger.FieldRunID, runID), zap.String(logger.FieldMode, e.policy.Name()))

	if reason := unusableInput(resume, job); reason != "" {
		log.Info("input cannot be scored", zap.String("reason", reason))
		return &types.ScoringResult{
			RunID:       runID,
			ResumeID:    resume.ID,
			Reason:      reason,
			Explanation: "Cannot score: " + reason + ".",
			Analytics:   types.Analytics{Policy: e.policy.Name()},
		}, nil
	}

	now := e.now()
	f, err := scoring.Extract(e.matcher, resume, job, now)
	if err != nil {
		return nil, &ScoringError{Stage: stage, Cause: err}
	}
	log.Debug("features extracted",
		zap.Int("required_skills", len(f.RequiredSkills)),
		zap.Int("core_skills", len(f.CoreSkills)),
		zap.Float64("experience_years", f.Experience.TotalYears))
	e.emit(ctx, runID, stage, fmt.Sprintf("Matched %d of %d required skills", len(f.SkillMatch.Matches), len(f.RequiredSkills)), f.Quality)

	stage = StageGate
	assessment := e.gate.Evaluate(f)
	e.emit(ctx, runID, stage, gateMessage(assessment), assessment)

	analytics := types.Analytics{
		SkillMatch:       f.Quality,
		Experience:       f.Experience,
		TechnicalDensity: density.Analyze(skills.EvidenceText(resume) + resume.Skills).Score,
		Policy:           e.policy.Name(),
	}

	if !assessment.IsCompatible {
		log.Info("gate blocked", zap.String("blocked_by", assessment.Metadata.BlockedBy))
		return &types.ScoringResult{
			RunID:       runID,
			ResumeID:    resume.ID,
			Compatible:  false,
			FinalScore:  0,
			Analytics:   analytics,
			Explanation: blockedExplanation(assessment),
			Assessment:  assessment,
		}, nil
	}

	stage = StageComponents
	base := e.scorer.Score(f, now)
	analytics.ComponentScores = base.Components
	analytics.ProjectRelevance = base.ProjectRelevance
	analytics.TitleBonus = base.TitleBonus
	log.Debug("components scored", zap.Float64("weighted", base.Score))
	e.emit(ctx, runID, stage, fmt.Sprintf("Base weighted score %.2f", base.Score), base.Components)

	stage = StageCompensation
	comp := e.policy.Adjust(penalty.Input{
		Components:      base.Components,
		Quality:         f.Quality,
		ExperienceYears: f.Experience.TotalYears,
		RequiredYears:   f.RequiredYears,
		Projects:        base.ProjectRelevance,
		TechnicalRole:   assessment.Metadata.JobRoleType == gate.RoleTechnical,
		SeniorityGap:    f.SeniorityGap(),
		LeadershipGap:   f.LeadershipGap(),
	})
	analytics.Compensation = comp
	e.emit(ctx, runID, stage, fmt.Sprintf("Skill match %s, experience tier %s", comp.SkillMatchLevel, comp.Analysis.ExperienceTier), comp)

	stage = StageFinalize
	penalties := penalty.ComponentPenalties(comp.AdjustedPenalties)
	weighted := penalize(base.Components, penalties, e.scorer.Weights())
	analytics.WeightedScores = weighted

	final := finalScore(weighted, base.TitleBonus, e.policy.ScoreFloor())
	log.Info("scored", zap.Float64("final_score", final))

	result = &types.ScoringResult{
		RunID:       runID,
		ResumeID:    resume.ID,
		Compatible:  true,
		FinalScore:  final,
		Analytics:   analytics,
		Explanation: explain(final, f, base, comp, assessment),
		Assessment:  assessment,
	}
	e.emit(ctx, runID, stage, fmt.Sprintf("Final score %.2f/10", final), nil)
	return result, nil
}

// unusableInput returns a reason when the pair cannot be meaningfully scored
func unusableInput(resume *types.Resume, job *types.JobDetails) string {
	if len(skills.CandidateSkills(resume)) == 0 {
		return ReasonNoSkills
	}
	if strings.TrimSpace(job.JobDescription) == "" {
		return ReasonEmptyDescription
	}
	return ""
}

// penalize returns component × (1 - penalty) × weight for each component
func penalize(c, p types.ComponentScores, w scoring.Weights) types.ComponentScores {
	return types.ComponentScores{
		Skills:     c.Skills * (1 - p.Skills) * w.Skills,
		Experience: c.Experience * (1 - p.Experience) * w.Experience,
		Projects:   c.Projects * (1 - p.Projects) * w.Projects,
		Education:  c.Education * (1 - p.Education) * w.Education,
		JobTitle:   c.JobTitle * (1 - p.JobTitle) * w.JobTitle,
	}
}

// finalScore scales the weighted sum to 0-10, adds the title bonus and clamps to [floor, 10]
func finalScore(weighted types.ComponentScores, titleBonus, floor float64) float64 {
	sum := weighted.Skills + weighted.Experience + weighted.Projects + weighted.Education + weighted.JobTitle
	score := sum*MaxScore + titleBonus
	score = math.Max(floor, math.Min(MaxScore, score))
	return math.Round(score*100) / 100
}

func gateMessage(a *types.AssessmentResult) string {
	if a.IsCompatible {
		return fmt.Sprintf("Passed %d compatibility checks", len(a.Metadata.ChecksRun))
	}
	return fmt.Sprintf("Blocked by %s", a.Metadata.BlockedBy)
}
