package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	searchQuery     string
	searchThreshold float64
)

// NewSearchCmd creates the search command: concept-expanding search across
// local text files.
func NewSearchCmd(opts *RootOptions, deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [files...]",
		Short: "Search documents with concept expansion",
		Long:  "Scores every paragraph of the given files against the query, expanding the\nquery with registered concept variations before matching.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, opts, deps, args)
		},
	}

	cmd.Flags().StringVarP(&searchQuery, "query", "q", "", "Search query (required)")
	cmd.Flags().Float64Var(&searchThreshold, "threshold", 0, "Minimum score to report (default from config)")
	_ = cmd.MarkFlagRequired("query")
	return cmd
}

func runSearch(cmd *cobra.Command, opts *RootOptions, deps *Deps, paths []string) error {
	if _, err := loadFiles(deps.Store, paths); err != nil {
		return err
	}

	threshold := searchThreshold
	if threshold <= 0 {
		threshold = deps.Config.Analysis.DefaultSearchThreshold
	}

	results := deps.Engine.Search(searchQuery, deps.Store.TextMap(), threshold)

	if opts.OutputFormat == "json" {
		return printJSON(cmd.OutOrStdout(), results)
	}

	out := cmd.OutOrStdout()
	if len(results) == 0 {
		fmt.Fprintln(out, "no results")
		return nil
	}
	headingColor.Fprintf(out, "%d result(s) for %q (threshold %.2f)\n\n", len(results), searchQuery, threshold)
	for i, r := range results {
		accentColor.Fprintf(out, "%d. %s  para %d  score %.3f\n", i+1, r.DocID, r.Paragraph.Index, r.Score)
		if len(r.Paragraph.Concepts) > 0 {
			fmt.Fprintf(out, "   concepts: %v\n", r.Paragraph.Concepts)
		}
		fmt.Fprintf(out, "   %s\n\n", r.Paragraph.Text)
	}
	return nil
}
