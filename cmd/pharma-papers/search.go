package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pharma-papers/internal/eutils"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search PubMed and print matching PMIDs",
	Long: `Search resolves a free-text query to PubMed identifiers without fetching
the article records. Useful for checking what a query matches before running
the full pipeline.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("query", "", "PubMed search query (required)")
	searchCmd.Flags().Int("max-results", defaultMaxResults, "maximum number of PMIDs to return")
	searchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	searchCmd.Flags().String("api-key", "", "NCBI API key (default: .secrets/ncbi-api-key)")
	searchCmd.Flags().String("email", "", "contact email for E-utilities (default: .secrets/ncbi-email)")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query, _ := cmd.Flags().GetString("query")
	if query == "" {
		return fmt.Errorf("provide a search query with --query")
	}

	cfg := searchConfigFromFlags(cmd)
	client := &eutils.Client{
		HTTP:   &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
	}

	pmids, err := client.ESearch(cmd.Context(), query)
	if err != nil {
		return err
	}

	if len(pmids) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No papers found.")
		return nil
	}
	for _, id := range pmids {
		fmt.Fprintln(cmd.OutOrStdout(), id)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%d paper(s)\n", len(pmids))
	return nil
}
