package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-digest/internal/extract"
	"github.com/pdiddy/paper-digest/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [urls...]",
	Short: "Download documents and print their extracted text",
	Long: `Extract downloads each URL and prints its plain text. PDFs are the
default; --html selects the HTML text-extraction path instead. Errors
propagate and abort the command.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().Bool("html", false, "treat the URLs as HTML pages instead of PDFs")
	extractCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more document URLs")
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}

	cfg := types.ExtractionConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
	}
	client := &http.Client{Timeout: timeout}

	var extractor extract.Extractor = &extract.PDFExtractor{Client: client, Config: cfg}
	if asHTML, _ := cmd.Flags().GetBool("html"); asHTML {
		extractor = &extract.HTMLExtractor{Client: client, Config: cfg}
	}

	for _, url := range args {
		text, err := extractor.Extract(cmd.Context(), url)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, text)
	}
	return nil
}
