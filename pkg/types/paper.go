// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Paper is one entry in the digest: discovered from the trending listing,
// filled in by the summarization stage, rendered at the end of the run.
type Paper struct {
	// Title is the display title from the listing heading.
	Title string `json:"title" yaml:"title"`

	// ListingHref is the relative link the listing page carried for this
	// paper (e.g. "/papers/2301.07041").
	ListingHref string `json:"listing_href,omitempty" yaml:"listing_href,omitempty"`

	// PDFURL is the absolute PDF location derived from ListingHref.
	PDFURL string `json:"pdf_url" yaml:"pdf_url"`

	// Summary is the model-generated one-paragraph summary. When the paper
	// could not be summarized it holds the fixed placeholder text.
	Summary string `json:"summary" yaml:"summary"`

	// FailureReason records why summarization failed; empty on success.
	FailureReason string `json:"failure_reason,omitempty" yaml:"failure_reason,omitempty"`
}

// Failed reports whether this paper carries a placeholder instead of a
// real summary.
func (p Paper) Failed() bool {
	return p.FailureReason != ""
}
