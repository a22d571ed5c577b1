// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"io"

	"github.com/pdiddy/paper-digest/pkg/types"
)

// WriteMarkdown writes each paper as a bolded titled link followed by its
// summary, for direct display rather than file persistence.
func WriteMarkdown(papers []types.Paper, w io.Writer) {
	for _, p := range papers {
		fmt.Fprintf(w, "**[%s](%s)**\n\n%s\n\n", p.Title, p.PDFURL, p.Summary)
	}
}
