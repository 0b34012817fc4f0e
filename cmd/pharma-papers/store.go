package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pharma-papers/internal/report"
	"github.com/pdiddy/pharma-papers/internal/store"
	"github.com/pdiddy/pharma-papers/pkg/types"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Query the archive of past classification runs",
	Long: `Store queries runs archived with "fetch --save". It supports full-text
search over titles and company names, filtering by company or run, listing
runs, and exporting the archive to YAML and JSON files.`,
	RunE: runStore,
}

func init() {
	storeCmd.Flags().String("data-dir", "data", "base directory for the run archive")
	storeCmd.Flags().Int("max-results", 20, "maximum number of query results")
	storeCmd.Flags().String("query", "", "full-text search over titles and companies")
	storeCmd.Flags().String("company", "", "filter by company name substring")
	storeCmd.Flags().String("run", "", "filter by run ID")
	storeCmd.Flags().Bool("list-runs", false, "list archived runs")
	storeCmd.Flags().Bool("json", false, "output results as JSON")
	storeCmd.Flags().Bool("export", false, "export the archive to YAML and JSON files")

	rootCmd.AddCommand(storeCmd)
}

func runStore(cmd *cobra.Command, args []string) error {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	maxResults, _ := cmd.Flags().GetInt("max-results")

	st, err := store.NewStore(types.StoreConfig{DataDir: dataDir, MaxResults: maxResults})
	if err != nil {
		return err
	}
	defer st.Close()

	if listRuns, _ := cmd.Flags().GetBool("list-runs"); listRuns {
		runs, err := st.ListRuns(cmd.Context())
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No archived runs.")
			return nil
		}
		for _, r := range runs {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %q  found=%d relevant=%d excluded=%d\n",
				r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.Query,
				r.Found, r.Relevant, r.Excluded)
		}
		return nil
	}

	opts := store.QueryOptions{MaxResults: maxResults}
	opts.Query, _ = cmd.Flags().GetString("query")
	opts.Company, _ = cmd.Flags().GetString("company")
	opts.RunID, _ = cmd.Flags().GetString("run")

	if export, _ := cmd.Flags().GetBool("export"); export {
		if err := st.ExportYAML(cmd.Context(), opts); err != nil {
			return err
		}
		if err := st.ExportJSON(cmd.Context(), opts); err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "archive exported")
		return nil
	}

	results, err := st.Retrieve(cmd.Context(), opts)
	if err != nil {
		return err
	}

	papers := make([]types.ClassifiedPaper, len(results))
	for i, r := range results {
		papers[i] = r.ClassifiedPaper
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return report.FormatJSON(papers, cmd.OutOrStdout())
	}
	report.FormatTable(papers, cmd.OutOrStdout())
	return nil
}
