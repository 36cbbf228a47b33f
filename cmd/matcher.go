package cmd

import (
	"go.uber.org/zap"

	"github.com/sukenderreddy/resume-word-suggestor/internal/keywords"
	"github.com/sukenderreddy/resume-word-suggestor/internal/match"
	"github.com/sukenderreddy/resume-word-suggestor/internal/scoring"
	"github.com/sukenderreddy/resume-word-suggestor/internal/stopwords"
)

func newMatcher(config *Config, logger *zap.Logger) *match.KeywordMatcher {
	kw := config.Keywords

	words := stopwords.Load(
		stopwords.SourceFor(kw.StopwordsFile),
		kw.Language,
		kw.ExtraStopwords,
		logger.With(zap.String("component", "stopwords")),
	)

	extractor := keywords.NewExtractor(words,
		keywords.WithMinLength(kw.MinLength),
		keywords.WithLogger(logger.With(zap.String("component", "keywords"))),
	)

	minScore := config.Scoring.MinimumFitScore

	matcherLogger := logger.With(
		zap.String("language", kw.Language),
		zap.Int("stopwords", extractor.Stopwords()),
		zap.Int("min_length", extractor.MinLength()),
		zap.Float64("minimum_fit_score", minScore),
	)

	return match.NewKeywordMatcher(
		extractor,
		scoring.NewScorer(logger.With(zap.String("component", "scoring"))),
		matcherLogger,
		minScore,
		config.Document.MaxLogLength,
	)
}
