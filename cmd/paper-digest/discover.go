package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-digest/internal/discover"
	"github.com/pdiddy/paper-digest/pkg/types"
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "List the currently trending papers",
	Long: `Discover fetches the trending listing page, extracts one entry per
heading, and prints the candidate papers with their derived PDF URLs in
document order.`,
	RunE: runDiscover,
}

func init() {
	discoverCmd.Flags().String("listing-url", "", "override the trending listing page")
	discoverCmd.Flags().Int("max-papers", 0, "cap the number of papers (0 = all)")
	discoverCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	discoverCmd.Flags().Bool("json", false, "output papers as JSON")

	rootCmd.AddCommand(discoverCmd)
}

func runDiscover(cmd *cobra.Command, args []string) error {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	listingURL, _ := cmd.Flags().GetString("listing-url")
	maxPapers, _ := cmd.Flags().GetInt("max-papers")

	cfg := types.DiscoveryConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		ListingURL: listingURL,
		MaxPapers:  maxPapers,
	}

	client := &http.Client{Timeout: timeout}
	papers, err := discover.Trending(cmd.Context(), client, cfg)
	if err != nil {
		return fmt.Errorf("discovering papers: %w", err)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return discover.FormatJSON(papers, os.Stdout)
	}
	discover.FormatTable(papers, os.Stdout)
	return nil
}
