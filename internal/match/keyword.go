package match

import (
	"context"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sukenderreddy/resume-word-suggestor/internal/keywords"
	"github.com/sukenderreddy/resume-word-suggestor/internal/logger"
	"github.com/sukenderreddy/resume-word-suggestor/internal/scoring"
	"github.com/sukenderreddy/resume-word-suggestor/internal/utils"
)

const defaultMaxLogLength = 200

// KeywordMatcher scores a resume by the job description keywords it covers.
type KeywordMatcher struct {
	extractor *keywords.Extractor
	scorer    *scoring.Scorer
	minScore  float64
	maxLogLen int
	logger    *zap.Logger
}

// NewKeywordMatcher builds a matcher. A positive minScore marks every analysis
// scoring below it as not fit.
func NewKeywordMatcher(extractor *keywords.Extractor, scorer *scoring.Scorer, log *zap.Logger, minScore float64, maxLogLength int) *KeywordMatcher {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if minScore < 0 {
		minScore = 0
	}
	return &KeywordMatcher{
		extractor: extractor,
		scorer:    scorer,
		minScore:  minScore,
		maxLogLen: maxLogLength,
		logger:    logger.OrNop(log),
	}
}

func (m *KeywordMatcher) Evaluate(ctx context.Context, resumeText, jobText string) (*Assessment, error) {
	id := uuid.NewString()
	log := logger.WithAnalysis(m.logger, id, SourceFrom(ctx))

	log.Debug("analysis request",
		zap.Int("resume_length", utf8.RuneCountInString(resumeText)),
		zap.String("resume_preview", utils.Preview(resumeText, m.maxLogLen)),
		zap.Int("job_length", utf8.RuneCountInString(jobText)),
		zap.String("job_preview", utils.Preview(jobText, m.maxLogLen)),
	)

	var resume, job keywords.Set

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		resume = m.extractor.Extract(resumeText)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		job = m.extractor.Extract(jobText)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := m.scorer.Score(resume, job)

	assessment := &Assessment{
		ID:             id,
		Fit:            true,
		Result:         result,
		ResumeKeywords: resume.Sorted(),
		JobKeywords:    job.Sorted(),
	}

	if m.minScore > 0 && result.Score < m.minScore {
		log.Debug("set fit to false by score threshold",
			zap.Float64("score", result.Score),
			zap.Float64("threshold", m.minScore),
		)
		assessment.Fit = false
	}

	log.Info("analysis complete",
		zap.Float64("ats_score", result.Score),
		zap.Int("resume_keywords", len(assessment.ResumeKeywords)),
		zap.Int("job_keywords", len(assessment.JobKeywords)),
		zap.Int("matched", len(result.Matched)),
		zap.Int("missing", len(result.Missing)),
		zap.Bool("fit", assessment.Fit),
	)

	return assessment, nil
}
