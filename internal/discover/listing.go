// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package discover locates candidate papers on the trending listing page
// and derives their PDF source URLs.
package discover

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/paper-digest/pkg/types"
)

// listingBase is the trending-papers listing page. Declared as a var so
// tests can substitute an httptest server.
var listingBase = "https://huggingface.co/papers"

// listingPathPrefix is the path segment the listing uses for paper links.
const listingPathPrefix = "/papers"

// arxivPDFBase is the PDF host the listing links resolve against. The
// listing href suffix is appended directly: /papers/2301.07041 becomes
// https://arxiv.org/pdf/2301.07041.
var arxivPDFBase = "https://arxiv.org/pdf"

// Trending fetches the listing page and returns one Paper per well-formed
// heading/anchor entry, in document order. A network error, non-200 status,
// or unparsable document aborts the run; a malformed entry (empty title or
// href outside the listing path) is skipped and the rest continue.
func Trending(ctx context.Context, client *http.Client, cfg types.DiscoveryConfig) ([]types.Paper, error) {
	base := cfg.ListingURL
	if base == "" {
		base = listingBase
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching listing: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing returned HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing listing: %w", err)
	}

	var papers []types.Paper
	doc.Find("h3 a").Each(func(_ int, s *goquery.Selection) {
		title := strings.TrimSpace(s.Text())
		href, _ := s.Attr("href")

		url := PDFURL(href)
		if title == "" || url == "" {
			return
		}

		papers = append(papers, types.Paper{
			Title:       title,
			ListingHref: href,
			PDFURL:      url,
		})
	})

	if cfg.MaxPapers > 0 && len(papers) > cfg.MaxPapers {
		papers = papers[:cfg.MaxPapers]
	}
	return papers, nil
}

// PDFURL derives the absolute PDF location from a listing href by
// substituting the listing path prefix with the PDF base. It returns ""
// for hrefs outside the listing path.
func PDFURL(href string) string {
	if !strings.HasPrefix(href, listingPathPrefix+"/") {
		return ""
	}
	return arxivPDFBase + strings.TrimPrefix(href, listingPathPrefix)
}
