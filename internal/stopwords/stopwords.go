// Package stopwords provides the stopword lists excluded from keyword matching.
package stopwords

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// DefaultLanguage is the language used when none is configured.
const DefaultLanguage = "english"

// ErrUnsupportedLanguage is returned when a source has no list for the requested language.
var ErrUnsupportedLanguage = errors.New("stopwords: unsupported language")

//go:embed english.txt
var englishData string

// Source resolves a language identifier into a list of stopwords.
type Source interface {
	Words(language string) ([]string, error)
}

// Embedded serves the lists compiled into the binary.
type Embedded struct{}

// Words accepts "english" as well as any BCP 47 or ISO 639 identifier whose
// base language is English ("en", "eng", "en-GB").
func (Embedded) Words(lang string) ([]string, error) {
	if !isEnglish(lang) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	return parse(strings.NewReader(englishData))
}

// File reads a newline separated list from Path regardless of the language.
// Blank lines and lines starting with '#' are ignored.
type File struct {
	Path string
}

func (f File) Words(_ string) ([]string, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open stopwords file %q: %w", f.Path, err)
	}
	defer file.Close()

	words, err := parse(file)
	if err != nil {
		return nil, fmt.Errorf("read stopwords file %q: %w", f.Path, err)
	}
	return words, nil
}

// Static is a fixed in-memory list, mostly useful in tests.
type Static []string

func (s Static) Words(_ string) ([]string, error) {
	return append([]string(nil), s...), nil
}

// Load returns the stopwords for language from src, followed by extra.
// A failing source is not fatal: the failure is logged and only extra is returned,
// so keyword extraction keeps working with a degraded list.
func Load(src Source, language string, extra []string, logger *zap.Logger) []string {
	if logger == nil {
		logger = zap.NewNop()
	}
	if strings.TrimSpace(language) == "" {
		language = DefaultLanguage
	}

	words, err := src.Words(language)
	if err != nil {
		logger.Warn("stopwords are unavailable, continuing without them",
			zap.String("language", language),
			zap.Error(err),
		)
		words = nil
	}

	for _, w := range extra {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			words = append(words, w)
		}
	}

	logger.Debug("stopwords loaded",
		zap.String("language", language),
		zap.Int("count", len(words)),
	)

	return words
}

// SourceFor picks the file source when path is set and the embedded lists otherwise.
func SourceFor(path string) Source {
	if path = strings.TrimSpace(path); path != "" {
		return File{Path: path}
	}
	return Embedded{}
}

func parse(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	words := make([]string, 0, 256)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words = append(words, word)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return words, nil
}

func isEnglish(lang string) bool {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "english" {
		return true
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return false
	}

	base, _ := tag.Base()
	return base == englishBase
}

var englishBase, _ = language.English.Base()
