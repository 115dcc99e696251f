// Package aigen talks to an external text-generation service that
// produces free-form Q&A pairs from passages of extracted text. The
// service is treated as a fallible black box: callers log failures
// and continue without its output.
package aigen

import (
	"context"
)

// Pair is one question/answer produced by the generation service.
type Pair struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	QAType     string `json:"qa_type"`
	Difficulty string `json:"difficulty"`
}

// Client generates Q&A pairs from a passage of source text.
type Client interface {
	// Model identifies the backing model, recorded in output metadata.
	Model() string

	// GeneratePairs asks for up to n pairs grounded in text. A service
	// failure returns an error and no pairs.
	GeneratePairs(ctx context.Context, text string, n int) ([]Pair, error)
}
