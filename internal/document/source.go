package document

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmpty is returned when a source yields no text at all.
var ErrEmpty = errors.New("document is empty")

// Source describes where a document comes from.
type Source struct {
	// Name is used in error messages to give more context about the document.
	Name string
	// Text is inline document content provided via flags.
	Text string
	// File points to a document on disk. When set it takes precedence over Text.
	File string
	// AllowEmpty accepts a blank document instead of returning ErrEmpty.
	AllowEmpty bool
}

// Load returns the text of the document described by src. Unless AllowEmpty is
// set, an error is returned when neither File nor Text contain anything but
// whitespace.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "document"
	}

	file := strings.TrimSpace(src.File)
	if file != "" {
		text, err := ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("loading %s: %w", name, err)
		}
		src.Text = text
	}

	if strings.TrimSpace(src.Text) == "" && !src.AllowEmpty {
		if file != "" {
			return "", fmt.Errorf("%s file %q: %w", name, file, ErrEmpty)
		}
		return "", fmt.Errorf("%s is not provided: %w", name, ErrEmpty)
	}

	return src.Text, nil
}
