// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render serializes the finished paper records into
// human-consumable documents: an HTML digest file, inline markdown, and an
// optional machine-readable YAML export. All sinks are order-preserving
// projections of the same sequence.
package render

import (
	"fmt"
	"html"
	"os"
	"time"

	"github.com/pdiddy/paper-digest/pkg/types"
)

// digestTitle is the fixed heading of the HTML digest.
const digestTitle = "Trending Papers"

// HTMLRenderer writes the digest as an HTML file. Each block is written
// with a separate open-append-close so a partially rendered file survives
// an interrupted run.
type HTMLRenderer struct {
	// Path is the output file in the working directory.
	Path string

	// Model is the model identifier noted in the header.
	Model string
}

// WriteAll renders the header, one block per paper in sequence order, and
// the closing tags.
func (r *HTMLRenderer) WriteAll(papers []types.Paper, generated time.Time) error {
	if err := r.WriteHeader(generated); err != nil {
		return err
	}
	for _, p := range papers {
		if err := r.WritePaper(p); err != nil {
			return err
		}
	}
	return r.WriteFooter()
}

// WriteHeader truncates the output file and writes the document opening:
// fixed title, generation date, and the model that produced the summaries.
func (r *HTMLRenderer) WriteHeader(generated time.Time) error {
	block := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>%s</title></head>
<body>
<h1>%s</h1>
<p>Generated on %s. Summaries by %s.</p>
`, html.EscapeString(digestTitle), html.EscapeString(digestTitle),
		generated.Format("2006-01-02"), html.EscapeString(r.Model))

	return r.write(block, os.O_TRUNC)
}

// WritePaper appends one heading+link+paragraph block.
func (r *HTMLRenderer) WritePaper(p types.Paper) error {
	block := fmt.Sprintf("<h2><a href=\"%s\">%s</a></h2>\n<p>%s</p>\n",
		html.EscapeString(p.PDFURL), html.EscapeString(p.Title), html.EscapeString(p.Summary))
	return r.write(block, os.O_APPEND)
}

// WriteFooter appends the closing tags.
func (r *HTMLRenderer) WriteFooter() error {
	return r.write("</body>\n</html>\n", os.O_APPEND)
}

func (r *HTMLRenderer) write(block string, mode int) error {
	f, err := os.OpenFile(r.Path, os.O_WRONLY|os.O_CREATE|mode, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", r.Path, err)
	}
	_, writeErr := f.WriteString(block)
	closeErr := f.Close()
	if writeErr != nil {
		return fmt.Errorf("writing %s: %w", r.Path, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("closing %s: %w", r.Path, closeErr)
	}
	return nil
}
