// Package match runs a full resume to job description analysis.
package match

import (
	"context"

	"github.com/sukenderreddy/resume-word-suggestor/internal/scoring"
)

type Assessment struct {
	ID             string         `json:"id"`
	Fit            bool           `json:"fit"`
	Result         scoring.Result `json:"result"`
	ResumeKeywords []string       `json:"resume_keywords"`
	JobKeywords    []string       `json:"job_keywords"`
}

type Matcher interface {
	Evaluate(ctx context.Context, resumeText, jobText string) (*Assessment, error)
}

type sourceKey struct{}

// WithSource records where the resume came from, for logging.
func WithSource(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, sourceKey{}, source)
}

// SourceFrom returns the source stored by WithSource, or "".
func SourceFrom(ctx context.Context) string {
	source, _ := ctx.Value(sourceKey{}).(string)
	return source
}
