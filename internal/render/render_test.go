// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-digest/pkg/types"
)

func samplePapers() []types.Paper {
	return []types.Paper{
		{Title: "Paper A", PDFURL: "https://arxiv.org/pdf/1", Summary: "Strong results, weak baselines."},
		{Title: "Paper B", PDFURL: "https://arxiv.org/pdf/2", Summary: "Paper not available", FailureReason: "quota exceeded"},
		{Title: "Paper C", PDFURL: "https://arxiv.org/pdf/3", Summary: "Elegant proof."},
	}
}

func TestHTMLRendererWriteAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "digest.html")
	r := &HTMLRenderer{Path: path, Model: "gemini-1.5-flash"}

	generated := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	if err := r.WriteAll(samplePapers(), generated); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	out := string(data)

	if n := strings.Count(out, "<h2>"); n != 3 {
		t.Errorf("per-paper block count = %d, want 3", n)
	}
	for _, want := range []string{
		"<title>Trending Papers</title>",
		"<h1>Trending Papers</h1>",
		"Generated on 2026-08-23.",
		"Summaries by gemini-1.5-flash.",
		`<h2><a href="https://arxiv.org/pdf/1">Paper A</a></h2>`,
		"<p>Strong results, weak baselines.</p>",
		"<p>Paper not available</p>",
		"</html>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Blocks appear in sequence order.
	idxA := strings.Index(out, "Paper A")
	idxB := strings.Index(out, "Paper B")
	idxC := strings.Index(out, "Paper C")
	if !(idxA < idxB && idxB < idxC) {
		t.Errorf("papers out of order: A=%d B=%d C=%d", idxA, idxB, idxC)
	}
}

func TestHTMLRendererEscapes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "digest.html")
	r := &HTMLRenderer{Path: path, Model: "m"}

	papers := []types.Paper{{
		Title:   "Bounds for <k> & Friends",
		PDFURL:  "https://arxiv.org/pdf/9",
		Summary: "Uses <script> tags in figures.",
	}}
	if err := r.WriteAll(papers, time.Now()); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}

	data, _ := os.ReadFile(path)
	out := string(data)
	if strings.Contains(out, "<script>") {
		t.Errorf("unescaped markup in output:\n%s", out)
	}
	if !strings.Contains(out, "Bounds for &lt;k&gt; &amp; Friends") {
		t.Errorf("title not escaped:\n%s", out)
	}
}

func TestHTMLRendererHeaderTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "digest.html")
	if err := os.WriteFile(path, []byte("stale content"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := &HTMLRenderer{Path: path, Model: "m"}
	if err := r.WriteHeader(time.Now()); err != nil {
		t.Fatalf("WriteHeader() error = %v", err)
	}

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "stale content") {
		t.Error("header did not truncate previous run's output")
	}
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	WriteMarkdown(samplePapers(), &buf)

	out := buf.String()
	if !strings.Contains(out, "**[Paper A](https://arxiv.org/pdf/1)**\n\nStrong results, weak baselines.\n\n") {
		t.Errorf("markdown output malformed:\n%s", out)
	}
	if strings.Index(out, "Paper A") > strings.Index(out, "Paper B") {
		t.Error("markdown papers out of order")
	}
}

func TestWriteYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "digest.yaml")
	papers := samplePapers()

	if err := WriteYAML(papers, path); err != nil {
		t.Fatalf("WriteYAML() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	var decoded []types.Paper
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if len(decoded) != 3 {
		t.Fatalf("decoded %d papers, want 3", len(decoded))
	}
	if decoded[1].FailureReason != "quota exceeded" {
		t.Errorf("failure reason lost: %+v", decoded[1])
	}
}
