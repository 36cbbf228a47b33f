// Package document turns uploaded or local files into plain text.
package document

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const (
	TypePlain    = "text/plain"
	TypeMarkdown = "text/markdown"
	TypeHTML     = "text/html"
	TypePDF      = "application/pdf"
	TypeDocx     = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var (
	// ErrUnsupportedType is returned for media types without an extractor.
	ErrUnsupportedType = errors.New("unsupported file type")
	// ErrParse is returned when a document of a supported type cannot be read.
	ErrParse = errors.New("failed to parse document")
)

// Extract returns the text content of data. mediaType may carry parameters
// such as a charset; they are ignored.
func Extract(mediaType string, data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: %v", ErrParse, r)
		}
	}()

	switch base := baseType(mediaType); base {
	case TypePlain, TypeMarkdown:
		return string(data), nil
	case TypeHTML:
		return extractHTML(data)
	case TypePDF:
		return extractPDF(data)
	case TypeDocx:
		return extractDocx(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, mediaType)
	}
}

// Detect sniffs the media type of data and returns it without parameters.
func Detect(data []byte) string {
	return baseType(mimetype.Detect(data).String())
}

// ReadFile reads path, detects its type and extracts the text.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", path, err)
	}

	kind := Detect(data)
	if kind == TypePlain && (strings.HasSuffix(path, ".html") || strings.HasSuffix(path, ".htm")) {
		kind = TypeHTML
	}

	text, err := Extract(kind, data)
	if err != nil {
		return "", fmt.Errorf("extracting %q: %w", path, err)
	}

	return text, nil
}

func baseType(mediaType string) string {
	if parsed, _, err := mime.ParseMediaType(mediaType); err == nil {
		return parsed
	}
	base, _, _ := strings.Cut(mediaType, ";")
	return strings.ToLower(strings.TrimSpace(base))
}
