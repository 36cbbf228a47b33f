package keywords

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalizer brings text into the form the tokenizer expects: lowercased,
// NFC composed, straight apostrophes.
//
// Lowercasing is the simple per-rune mapping of strings.ToLower, not the
// context-sensitive one from golang.org/x/text/cases: the latter turns a word
// final Σ into ς and İ into i plus a combining dot, so text lowercased by the
// caller beforehand would yield different keywords.
type Normalizer struct{}

func NewNormalizer() Normalizer {
	return Normalizer{}
}

var apostrophes = strings.NewReplacer("’", "'", "ʼ", "'")

// Normalize is idempotent and Normalize(strings.ToLower(s)) == Normalize(s).
func (Normalizer) Normalize(text string) string {
	text = norm.NFC.String(strings.ToLower(text))
	return apostrophes.Replace(text)
}
