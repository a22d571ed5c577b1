// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract converts downloaded documents (PDF or HTML) into plain
// text. Extractors are pure transforms: URL in, text out. Errors propagate
// to the caller; extraction performs no retry.
package extract

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/paper-digest/pkg/types"
)

// Extractor turns the document at a URL into plain text. The PDF and HTML
// paths each implement this interface.
type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// PDFExtractor downloads a PDF to a transient local file and extracts the
// text of every page.
type PDFExtractor struct {
	Client *http.Client
	Config types.ExtractionConfig
}

// Extract downloads url and returns the concatenated page texts, each page
// followed by a single newline.
func (e *PDFExtractor) Extract(ctx context.Context, url string) (string, error) {
	path, err := download(ctx, e.Client, url, e.Config.UserAgent, "application/pdf")
	if err != nil {
		return "", fmt.Errorf("downloading %s: %w", url, err)
	}
	defer os.Remove(path)

	text, err := pdfText(path)
	if err != nil {
		return "", fmt.Errorf("extracting %s: %w", url, err)
	}
	return text, nil
}

// pdfText opens a PDF and concatenates the plain text of every page.
func pdfText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		pages = append(pages, text)
	}

	return joinPages(pages), nil
}

// joinPages concatenates page texts with a newline after each page, so P
// pages yield P separators.
func joinPages(pages []string) string {
	var b strings.Builder
	for _, p := range pages {
		b.WriteString(p)
		b.WriteByte('\n')
	}
	return b.String()
}

// download fetches url to a temporary file and returns its path. The
// caller removes the file when done.
func download(ctx context.Context, client *http.Client, url, userAgent, accept string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", accept)

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	tmpFile, err := os.CreateTemp("", "paper-digest-*.pdf")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("closing temp file: %w", closeErr)
	}

	return tmpPath, nil
}
