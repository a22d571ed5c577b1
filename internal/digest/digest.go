// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package digest drives the per-paper pipeline: extract each paper's text,
// summarize it, and record the outcome on the Paper. Papers whose
// extraction or summarization fails receive the fixed placeholder summary
// and the batch continues.
package digest

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/paper-digest/internal/extract"
	"github.com/pdiddy/paper-digest/internal/summarize"
	"github.com/pdiddy/paper-digest/pkg/types"
)

// Result holds the outcome of a digest run.
type Result struct {
	Papers     []types.Paper
	Summarized int
	Failed     int
}

// Total returns the number of papers processed.
func (r Result) Total() int {
	return r.Summarized + r.Failed
}

// HasFailures reports whether any papers received a placeholder.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// Run processes the discovered papers to completion in discovery order,
// printing per-item status to w and returning a summary. cfg.Workers > 1
// selects a bounded worker pool; the result order is still discovery
// order. A single paper's failure never aborts the batch.
func Run(ctx context.Context, in []types.Paper, ext extract.Extractor, sum summarize.Summarizer, cfg types.DigestConfig, w io.Writer) Result {
	papers := append([]types.Paper(nil), in...)

	if cfg.Workers > 1 {
		runPool(ctx, papers, ext, sum, cfg.Workers, w)
	} else {
		runSequential(ctx, papers, ext, sum, cfg.Delay, w)
	}

	result := Result{Papers: papers}
	for _, p := range papers {
		if p.Failed() {
			result.Failed++
		} else {
			result.Summarized++
		}
	}

	fmt.Fprintf(w, "\nDigest summary: %d summarized, %d failed (total: %d)\n",
		result.Summarized, result.Failed, result.Total())
	return result
}

// runSequential processes each paper to completion before the next begins,
// with an optional delay between consecutive papers.
func runSequential(ctx context.Context, papers []types.Paper, ext extract.Extractor, sum summarize.Summarizer, delay time.Duration, w io.Writer) {
	for i := range papers {
		if i > 0 && delay > 0 {
			time.Sleep(delay)
		}
		processPaper(ctx, &papers[i], ext, sum, w)
	}
}

// syncWriter serializes Write calls from concurrent pool workers.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// runPool processes papers through a bounded worker pool. Results are
// written by index, so discovery order is preserved; status lines may
// interleave.
func runPool(ctx context.Context, papers []types.Paper, ext extract.Extractor, sum summarize.Summarizer, workers int, w io.Writer) {
	sw := &syncWriter{w: w}

	var g errgroup.Group
	g.SetLimit(workers)

	for i := range papers {
		i := i
		g.Go(func() error {
			processPaper(ctx, &papers[i], ext, sum, sw)
			return nil
		})
	}
	g.Wait()
}

// processPaper fills in p.Summary, or the placeholder and failure reason
// when extraction or summarization fails.
func processPaper(ctx context.Context, p *types.Paper, ext extract.Extractor, sum summarize.Summarizer, w io.Writer) {
	fmt.Fprintf(w, "summarizing: %s\n", p.Title)

	text, err := ext.Extract(ctx, p.PDFURL)
	if err == nil {
		var s string
		s, err = sum.Summarize(ctx, text)
		if err == nil {
			p.Summary = s
			fmt.Fprintf(w, "summarized: %s\n", p.Title)
			return
		}
	}

	p.Summary = summarize.Placeholder
	p.FailureReason = err.Error()
	fmt.Fprintf(w, "failed: %s (%v)\n", p.Title, err)
}
