// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summarize asks a hosted generative model for a one-paragraph
// strengths/weaknesses summary of a paper's text.
package summarize

import "context"

// Placeholder is the fixed summary recorded for papers that could not be
// summarized. A single paper's failure never aborts the batch.
const Placeholder = "Paper not available"

// Summarizer produces a summary of one paper's full text. Implementations
// handle a single paper per call and return the model's free-text
// response. Tests supply a mock.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}
