package discover

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/paper-digest/pkg/types"
)

// FormatTable writes discovered papers as a human-readable table to w.
func FormatTable(papers []types.Paper, w io.Writer) {
	if len(papers) == 0 {
		fmt.Fprintln(w, "No papers found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %s\n", "Rank", "Title", "PDF URL")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for i, p := range papers {
		title := p.Title
		if r := []rune(title); len(r) > 60 {
			title = string(r[:57]) + "..."
		}
		fmt.Fprintf(w, "%-4d  %-60s  %s\n", i+1, title, p.PDFURL)
	}

	fmt.Fprintf(w, "\n%d papers\n", len(papers))
}

// FormatJSON writes discovered papers as indented JSON to w.
func FormatJSON(papers []types.Paper, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(papers)
}
