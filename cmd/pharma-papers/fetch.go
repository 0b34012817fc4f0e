package main

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pharma-papers/internal/classify"
	"github.com/pdiddy/pharma-papers/internal/eutils"
	"github.com/pdiddy/pharma-papers/internal/pipeline"
	"github.com/pdiddy/pharma-papers/internal/report"
	"github.com/pdiddy/pharma-papers/internal/store"
	"github.com/pdiddy/pharma-papers/pkg/types"
)

const (
	defaultTimeout    = 60 * time.Second
	defaultDelay      = 350 * time.Millisecond
	defaultMaxResults = 100
	defaultUserAgent  = "pharma-papers/0.1"
	defaultOutputFile = "pubmed_results.csv"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Search PubMed, classify affiliations, and write the report",
	Long: `Fetch runs the full pipeline: it searches PubMed for the query, retrieves
the matching article records, keeps those with at least one pharma/biotech
company-affiliated author, and writes the CSV report. With --save the run is
also archived in the local store.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("query", "", "PubMed search query (required)")
	fetchCmd.Flags().Int("max-results", defaultMaxResults, "maximum number of papers to retrieve")
	fetchCmd.Flags().StringP("file", "f", defaultOutputFile, "CSV output filename")
	fetchCmd.Flags().Bool("json", false, "print results as JSON instead of writing the CSV")
	fetchCmd.Flags().BoolP("debug", "d", false, "print per-article classification detail")
	fetchCmd.Flags().Bool("save", false, "archive the run in the local store")
	fetchCmd.Flags().String("run-file", "", "also save the run as a YAML file")
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	fetchCmd.Flags().Duration("delay", 0, "delay between EFetch requests (default 350ms)")
	fetchCmd.Flags().String("data-dir", "data", "base directory for the run archive")
	fetchCmd.Flags().String("api-key", "", "NCBI API key (default: .secrets/ncbi-api-key)")
	fetchCmd.Flags().String("email", "", "contact email for E-utilities (default: .secrets/ncbi-email)")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	query, _ := cmd.Flags().GetString("query")
	if query == "" {
		return fmt.Errorf("provide a search query with --query")
	}

	cfg := searchConfigFromFlags(cmd)

	client := &eutils.Client{
		HTTP:   &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
	}

	debugOut := io.Discard
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		debugOut = cmd.ErrOrStderr()
	}

	rules := classify.NewRuleset()
	res, err := pipeline.Run(cmd.Context(), client, query, rules, cmd.ErrOrStderr(), debugOut)
	if err != nil {
		return err
	}

	if runFile, _ := cmd.Flags().GetString("run-file"); runFile != "" {
		if err := pipeline.WriteRunFile(runFile, query, cfg, res); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "run saved to %s\n", runFile)
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		dataDir, _ := cmd.Flags().GetString("data-dir")
		st, err := store.NewStore(types.StoreConfig{DataDir: dataDir})
		if err != nil {
			return err
		}
		defer st.Close()

		runID, err := st.SaveRun(cmd.Context(), query, len(res.PMIDs), res.Excluded, res.Papers)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "run archived as %s\n", runID)
	}

	if len(res.Papers) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No relevant papers found.")
		return nil
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return report.FormatJSON(res.Papers, cmd.OutOrStdout())
	}

	file, _ := cmd.Flags().GetString("file")
	if err := report.WriteCSV(res.Papers, file); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "saved %d paper(s) to %s\n", len(res.Papers), file)

	report.FormatTable(res.Papers, cmd.OutOrStdout())
	return nil
}

// searchConfigFromFlags builds the search configuration from command
// flags, falling back to loaded secrets for credentials.
func searchConfigFromFlags(cmd *cobra.Command) types.SearchConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	delay, _ := cmd.Flags().GetDuration("delay")
	if delay == 0 {
		delay = defaultDelay
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")
	apiKey, _ := cmd.Flags().GetString("api-key")
	email, _ := cmd.Flags().GetString("email")

	return types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		MaxResults:   maxResults,
		RequestDelay: delay,
		APIKey:       secretDefault("ncbi-api-key", apiKey),
		Email:        secretDefault("ncbi-email", email),
	}
}
