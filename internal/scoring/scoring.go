// Package scoring compares the keywords of a resume against those of a job
// description.
package scoring

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/sukenderreddy/resume-word-suggestor/internal/keywords"
)

// Precision is the number of decimals kept in Result.Score.
const Precision = 2

// ErrScoring wraps unexpected failures inside the scorer.
var ErrScoring = errors.New("scoring failed")

// Result is the outcome of comparing two keyword sets.
// Score is the share of job keywords found in the resume, in percent.
type Result struct {
	Score   float64  `json:"ats_score" mapstructure:"ats_score"`
	Matched []string `json:"matched_keywords" mapstructure:"matched_keywords"`
	Missing []string `json:"missing_keywords" mapstructure:"missing_keywords"`
}

// Empty is the result for a job description without keywords and the
// fallback for failures.
func Empty() Result {
	return Result{Score: 0, Matched: []string{}, Missing: []string{}}
}

type Scorer struct {
	logger *zap.Logger
}

func NewScorer(logger *zap.Logger) *Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scorer{logger: logger}
}

// Score measures how much of job is covered by resume. Resume keywords absent
// from the job description do not affect the result. It never fails: on error
// the problem is logged and Empty is returned.
func (s *Scorer) Score(resume, job keywords.Set) Result {
	res, err := s.TryScore(resume, job)
	if err != nil {
		s.logger.Warn("scoring degraded to an empty result", zap.Error(err))
		return Empty()
	}
	return res
}

// TryScore is Score with the failure reported to the caller.
func (s *Scorer) TryScore(resume, job keywords.Set) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = Empty(), fmt.Errorf("%w: %v", ErrScoring, r)
		}
	}()

	if job.Len() == 0 {
		s.logger.Debug("job description has no keywords")
		return Empty(), nil
	}

	matched := job.Intersect(resume)
	missing := job.Difference(resume)

	raw := float64(matched.Len()) / float64(job.Len()) * 100
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return Empty(), fmt.Errorf("%w: score is not a number", ErrScoring)
	}

	res = Result{
		Score:   Round(raw, Precision),
		Matched: matched.Sorted(),
		Missing: missing.Sorted(),
	}

	s.logger.Debug("keywords scored",
		zap.Float64("score", raw),
		zap.Int("job_keywords", job.Len()),
		zap.Int("resume_keywords", resume.Len()),
		zap.Int("matched", len(res.Matched)),
		zap.Int("missing", len(res.Missing)),
	)

	return res, nil
}

// Round rounds v half to even to the given number of decimals.
func Round(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.RoundToEven(v*p) / p
}
