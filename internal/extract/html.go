// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/paper-digest/pkg/types"
)

// HTMLExtractor fetches a page and flattens its visible text. It is the
// fallback path for papers published as web pages rather than PDFs.
type HTMLExtractor struct {
	Client *http.Client
	Config types.ExtractionConfig
}

// Extract fetches url, strips script and style elements, and returns the
// remaining text with one non-empty trimmed phrase per line.
func (e *HTMLExtractor) Extract(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", e.Config.UserAgent)

	resp, err := e.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", url, err)
	}

	return flattenText(doc), nil
}

// flattenText removes script/style nodes and rejoins the document text as
// non-empty trimmed phrases, one per line. Phrases are split on line breaks
// and on runs of two or more spaces.
func flattenText(doc *goquery.Document) string {
	doc.Find("script, style").Remove()
	text := doc.Text()

	var phrases []string
	for _, line := range strings.Split(text, "\n") {
		for _, phrase := range strings.Split(line, "  ") {
			phrase = strings.TrimSpace(phrase)
			if phrase != "" {
				phrases = append(phrases, phrase)
			}
		}
	}
	return strings.Join(phrases, "\n")
}
