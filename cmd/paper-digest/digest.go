package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-digest/internal/digest"
	"github.com/pdiddy/paper-digest/internal/discover"
	"github.com/pdiddy/paper-digest/internal/extract"
	"github.com/pdiddy/paper-digest/internal/render"
	"github.com/pdiddy/paper-digest/internal/summarize"
	"github.com/pdiddy/paper-digest/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultOutput    = "papers.html"
	defaultUserAgent = "paper-digest/0.1"
)

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Run the full pipeline and write the HTML digest",
	Long: `Digest discovers the trending papers, extracts each paper's PDF text,
summarizes it with the configured model, and writes the HTML digest file.
A paper whose extraction or summarization fails is rendered with a
placeholder; the batch continues.`,
	RunE: runDigest,
}

func init() {
	digestCmd.Flags().String("out", defaultOutput, "HTML digest output file")
	digestCmd.Flags().String("model", summarize.DefaultModel, "generative model identifier")
	digestCmd.Flags().String("prompt", "", "custom summary instruction (default: built-in instruction)")
	digestCmd.Flags().String("api-key", "", "generative API key (default: GEMINI_API_KEY or .secrets/gemini-api-key)")
	digestCmd.Flags().String("listing-url", "", "override the trending listing page")
	digestCmd.Flags().Int("max-papers", 0, "cap the number of papers taken from the listing (0 = all)")
	digestCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	digestCmd.Flags().Duration("delay", 0, "delay between consecutive papers in sequential mode")
	digestCmd.Flags().Int("workers", 1, "papers processed concurrently (1 = sequential)")
	digestCmd.Flags().String("yaml-out", "", "also export the run's records as YAML to this file")
	digestCmd.Flags().Bool("markdown", false, "print the digest as markdown to stdout after the run")

	rootCmd.AddCommand(digestCmd)
}

func runDigest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	client := &http.Client{Timeout: timeout}

	listingURL, _ := cmd.Flags().GetString("listing-url")
	maxPapers, _ := cmd.Flags().GetInt("max-papers")

	discoveryCfg := types.DiscoveryConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		ListingURL: listingURL,
		MaxPapers:  maxPapers,
	}

	papers, err := discover.Trending(ctx, client, discoveryCfg)
	if err != nil {
		return fmt.Errorf("discovering papers: %w", err)
	}
	if len(papers) == 0 {
		fmt.Fprintln(os.Stdout, "No papers found.")
		return nil
	}
	fmt.Fprintf(os.Stdout, "Discovered %d papers.\n\n", len(papers))

	model, _ := cmd.Flags().GetString("model")
	prompt, _ := cmd.Flags().GetString("prompt")
	apiKey, _ := cmd.Flags().GetString("api-key")
	apiKey = resolveAPIKey(apiKey)
	if apiKey == "" {
		return fmt.Errorf("no API key: set --api-key, GEMINI_API_KEY, or .secrets/gemini-api-key")
	}

	backend, err := summarize.NewGeminiBackend(ctx, types.SummaryConfig{
		Model:       model,
		APIKey:      apiKey,
		Instruction: prompt,
	})
	if err != nil {
		return fmt.Errorf("creating summarizer: %w", err)
	}
	defer backend.Close()

	extractor := &extract.PDFExtractor{
		Client: client,
		Config: types.ExtractionConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   timeout,
				UserAgent: defaultUserAgent,
			},
		},
	}

	delay, _ := cmd.Flags().GetDuration("delay")
	workers, _ := cmd.Flags().GetInt("workers")

	result := digest.Run(ctx, papers, extractor, backend, types.DigestConfig{
		Delay:   delay,
		Workers: workers,
	}, os.Stdout)

	out, _ := cmd.Flags().GetString("out")
	renderer := &render.HTMLRenderer{Path: out, Model: backend.Model()}
	if err := renderer.WriteAll(result.Papers, time.Now()); err != nil {
		return fmt.Errorf("rendering digest: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Digest written to %s\n", out)

	if yamlOut, _ := cmd.Flags().GetString("yaml-out"); yamlOut != "" {
		if err := render.WriteYAML(result.Papers, yamlOut); err != nil {
			return fmt.Errorf("exporting records: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Records exported to %s\n", yamlOut)
	}

	if markdown, _ := cmd.Flags().GetBool("markdown"); markdown {
		fmt.Fprintln(os.Stdout)
		render.WriteMarkdown(result.Papers, os.Stdout)
	}

	return nil
}

// resolveAPIKey picks the key from the flag, the GEMINI_API_KEY
// environment variable, or .secrets/gemini-api-key, in that order.
func resolveAPIKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		return v
	}
	return secretDefault("gemini-api-key", "")
}
