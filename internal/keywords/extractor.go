// Package keywords reduces raw document text to the set of significant terms
// used for resume to job description matching.
package keywords

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// DefaultMinLength is the shortest token, in runes, kept as a keyword.
const DefaultMinLength = 3

var (
	// ErrMalformedText is returned when the text cannot be tokenized.
	ErrMalformedText = errors.New("malformed text")
	// ErrExtraction wraps unexpected failures inside the extractor.
	ErrExtraction = errors.New("keyword extraction failed")
)

// expansions turns split-off clitics into the words a reader hears. They only
// vanish from the keywords because every expansion is an English stopword; with
// no stopwords loaded "don't" yields "not". "'d" and "'s" are ambiguous and stay
// as they are; both are too short to be keywords.
var expansions = map[string]string{
	"n't": "not",
	"'re": "are",
	"'ve": "have",
	"'ll": "will",
	"'m":  "am",
}

// Extractor turns raw text into a keyword Set. It holds no mutable state and is
// safe for concurrent use.
type Extractor struct {
	stopwords  Set
	minLength  int
	normalizer Normalizer
	tokenize   func(string) ([]string, error)
	logger     *zap.Logger
}

type Option func(*Extractor)

// WithMinLength overrides DefaultMinLength. Values below 1 are ignored.
func WithMinLength(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.minLength = n
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewExtractor creates an extractor that drops the given stopwords.
func NewExtractor(stopwords []string, opts ...Option) *Extractor {
	e := &Extractor{
		minLength:  DefaultMinLength,
		normalizer: NewNormalizer(),
		tokenize:   Tokenize,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.stopwords = make(Set, len(stopwords))
	for _, w := range stopwords {
		if w = strings.TrimSpace(e.normalizer.Normalize(w)); w != "" {
			e.stopwords.Add(w)
		}
	}

	return e
}

// Extract returns the keywords of text. It never fails: on error the problem is
// logged and an empty set is returned.
func (e *Extractor) Extract(text string) Set {
	kw, err := e.TryExtract(text)
	if err != nil {
		e.logger.Warn("keyword extraction degraded to an empty set",
			zap.Int("text_length", len(text)),
			zap.Error(err),
		)
		return Set{}
	}
	return kw
}

// TryExtract is Extract with the failure reported to the caller.
func (e *Extractor) TryExtract(text string) (kw Set, err error) {
	defer func() {
		if r := recover(); r != nil {
			kw, err = nil, fmt.Errorf("%w: %v", ErrExtraction, r)
		}
	}()

	if !utf8.ValidString(text) {
		e.logger.Debug("replacing invalid utf-8 sequences", zap.Int("text_length", len(text)))
		text = strings.ToValidUTF8(text, string(utf8.RuneError))
	}

	tokens, err := e.tokenize(e.normalizer.Normalize(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedText, err)
	}

	kw = make(Set)
	for _, token := range tokens {
		if expanded, ok := expansions[apostrophes.Replace(token)]; ok {
			token = expanded
		}
		if e.keep(token) {
			kw.Add(token)
		}
	}

	e.logger.Debug("keywords extracted",
		zap.Int("tokens", len(tokens)),
		zap.Int("keywords", kw.Len()),
	)

	return kw, nil
}

// Stopwords returns the number of stopwords in use.
func (e *Extractor) Stopwords() int {
	return e.stopwords.Len()
}

func (e *Extractor) MinLength() int {
	return e.minLength
}

func (e *Extractor) keep(token string) bool {
	if utf8.RuneCountInString(token) < e.minLength {
		return false
	}
	if isPunctuation(token) {
		return false
	}
	return !e.stopwords.Has(token)
}
