package keywords

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"testing/quick"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sukenderreddy/resume-word-suggestor/internal/stopwords"
)

func englishExtractor(t *testing.T, opts ...Option) *Extractor {
	t.Helper()

	words, err := stopwords.Embedded{}.Words("english")
	require.NoError(t, err)

	return NewExtractor(words, opts...)
}

var samples = []string{
	"",
	"Experienced Python developer with AWS and Docker skills.",
	"Looking for a Python developer with Docker and Kubernetes experience.",
	"We're a fast-growing START-UP; you'll own CI/CD, Node.js & C++ services!!!",
	"Don't apply if you can't relocate... Salary: 120,000 USD (negotiable).",
	"Café Zürich — naïve Bayes, résumé parsing, O'Reilly books",
	"  \n\t  ",
	"a an the of to I'm it's ... ?! -- ##",
	"ΟΔΟΣ ΚΑΙ ΘΑΛΑΣΣΑ, Οδυσσέας",
	"İstanbul ofisi, IĞDIR şubesi",
	"Straße GROSSE ǅungla",
}

func TestExtractEndToEndExample(t *testing.T) {
	t.Parallel()

	e := englishExtractor(t)

	resume := e.Extract("Experienced Python developer with AWS and Docker skills.")
	job := e.Extract("Looking for a Python developer with Docker and Kubernetes experience.")

	assert.Equal(t, []string{"aws", "developer", "docker", "experienced", "python", "skills"}, resume.Sorted())
	assert.Equal(t, []string{"developer", "docker", "experience", "kubernetes", "looking", "python"}, job.Sorted())
}

func TestExtractEmpty(t *testing.T) {
	t.Parallel()

	kw := englishExtractor(t).Extract("")
	assert.NotNil(t, kw)
	assert.Zero(t, kw.Len())
}

func TestExtractFilters(t *testing.T) {
	t.Parallel()

	e := englishExtractor(t)
	kw := e.Extract("We're hiring: a Go/Rust dev; C++ or C# is OK... Don't worry!")

	assert.Equal(t, []string{"c++", "dev", "go/rust", "hiring", "worry"}, kw.Sorted())
}

func TestExtractContractions(t *testing.T) {
	t.Parallel()

	kw := englishExtractor(t).Extract("You'll love it, we've shipped and we won't stop. I'd say it isn't hard")
	assert.Equal(t, []string{"hard", "love", "say", "shipped", "stop"}, kw.Sorted())
}

func TestExtractInvariants(t *testing.T) {
	t.Parallel()

	words, err := stopwords.Embedded{}.Words("english")
	require.NoError(t, err)
	stop := NewSet(words...)
	e := NewExtractor(words)

	check := func(text string) bool {
		for kw := range e.Extract(text) {
			if stop.Has(kw) || utf8.RuneCountInString(kw) <= 2 || isPunctuation(kw) {
				t.Logf("invalid keyword %q from %q", kw, text)
				return false
			}
		}
		return true
	}

	for _, s := range samples {
		assert.True(t, check(s), s)
	}
	require.NoError(t, quick.Check(check, &quick.Config{MaxCount: 500}))
}

func TestExtractCaseInvariance(t *testing.T) {
	t.Parallel()

	e := englishExtractor(t)
	for _, s := range samples {
		assert.Equal(t, e.Extract(s), e.Extract(strings.ToLower(s)), s)
	}

	assert.Equal(t, e.Extract(samples[1]), e.Extract(strings.ToUpper(samples[1])))

	check := func(text string) bool {
		return reflect.DeepEqual(e.Extract(text), e.Extract(strings.ToLower(text)))
	}
	require.NoError(t, quick.Check(check, &quick.Config{MaxCount: 500}))
}

func TestExtractNonASCIICase(t *testing.T) {
	t.Parallel()

	e := englishExtractor(t)

	assert.Equal(t, []string{"και", "οδοσ"}, e.Extract("ΟΔΟΣ ΚΑΙ").Sorted())
	assert.Equal(t, e.Extract("ΟΔΟΣ ΚΑΙ"), e.Extract("οδοσ και"))
	assert.Equal(t, []string{"istanbul"}, e.Extract("İstanbul").Sorted())
}

func TestExtractMinLength(t *testing.T) {
	t.Parallel()

	text := "go api sdk kafka"

	assert.Equal(t, []string{"api", "kafka", "sdk"}, NewExtractor(nil).Extract(text).Sorted())
	assert.Equal(t, []string{"api", "go", "kafka", "sdk"}, NewExtractor(nil, WithMinLength(2)).Extract(text).Sorted())
	assert.Equal(t, []string{"kafka"}, NewExtractor(nil, WithMinLength(4)).Extract(text).Sorted())
	assert.Equal(t, DefaultMinLength, NewExtractor(nil, WithMinLength(0)).MinLength())
}

func TestExtractCustomStopwords(t *testing.T) {
	t.Parallel()

	e := NewExtractor([]string{" Team ", "ROLE", ""})
	assert.Equal(t, 2, e.Stopwords())
	assert.Equal(t, []string{"join", "platform", "the", "this"}, e.Extract("Join the platform TEAM in this role").Sorted())
}

func TestExtractWithoutStopwords(t *testing.T) {
	t.Parallel()

	kw := NewExtractor(nil).Extract("the and Python")
	assert.Equal(t, []string{"and", "python", "the"}, kw.Sorted())
}

func TestExtractInvalidUTF8(t *testing.T) {
	t.Parallel()

	kw, err := englishExtractor(t).TryExtract("kube\xffrnetes golang")
	require.NoError(t, err)
	assert.Equal(t, []string{"golang", "kube", "rnetes"}, kw.Sorted())
}

func TestExtractLongToken(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 70*1024)

	kw, err := englishExtractor(t).TryExtract("python " + long + " docker " + strings.Repeat("=", 70*1024))
	require.NoError(t, err)
	assert.Equal(t, []string{long, "docker", "python"}, kw.Sorted())
}

func TestExtractDegradesOnTokenizerPanic(t *testing.T) {
	core, observed := observer.New(zapcore.WarnLevel)
	e := englishExtractor(t, WithLogger(zap.New(core)))
	e.tokenize = func(string) ([]string, error) { panic("index out of range") }

	_, err := e.TryExtract("python")
	require.ErrorIs(t, err, ErrExtraction)

	kw := e.Extract("python")
	assert.NotNil(t, kw)
	assert.Zero(t, kw.Len())
	assert.Equal(t, 1, observed.FilterMessage("keyword extraction degraded to an empty set").Len())
}

func TestExtractDegradesOnTokenizerError(t *testing.T) {
	t.Parallel()

	e := englishExtractor(t)
	e.tokenize = func(string) ([]string, error) { return nil, errors.New("unexpected input") }

	_, err := e.TryExtract("python")
	require.ErrorIs(t, err, ErrMalformedText)
	assert.Zero(t, e.Extract("python").Len())
}

func TestExtractExpansionsWithoutStopwords(t *testing.T) {
	t.Parallel()

	kw := NewExtractor(nil).Extract("don't say we're late")
	assert.Equal(t, []string{"are", "late", "not", "say"}, kw.Sorted())
}

func TestExtractConcurrent(t *testing.T) {
	t.Parallel()

	e := englishExtractor(t)
	want := e.Extract(samples[3])

	done := make(chan Set)
	for range 8 {
		go func() { done <- e.Extract(samples[3]) }()
	}
	for range 8 {
		assert.Equal(t, want, <-done)
	}
}
