package cli

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/veritaslex/arbilens/pkg/types/analysis"
)

var (
	compareFocus bool
	compareView  string
)

// NewCompareCmd creates the compare command: paragraph-pair diffing between
// two local files.
func NewCompareCmd(opts *RootOptions, deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <file1> <file2>",
		Short: "Find substantive differences between two documents",
		Long:  "Pairs similar paragraphs across the two files and classifies each pair's\ndivergence: citation, concept, numeric, or negation changes.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, opts, deps, args)
		},
	}

	cmd.Flags().BoolVar(&compareFocus, "focus-substance", false, "Drop purely stylistic pairs")
	cmd.Flags().StringVar(&compareView, "view", "all", "Record filter: all|citation|concept")
	return cmd
}

func runCompare(cmd *cobra.Command, opts *RootOptions, deps *Deps, paths []string) error {
	ids, err := loadFiles(deps.Store, paths)
	if err != nil {
		return err
	}

	records := deps.Comparator.Compare(ids[0], ids[1], compareFocus)
	switch compareView {
	case "all":
	case "citation":
		records = keepFlagged(records, func(r analysis.ComparisonRecord) bool { return r.Flags.CitationDiff })
	case "concept":
		records = keepFlagged(records, func(r analysis.ComparisonRecord) bool { return r.Flags.ConceptDiff })
	default:
		return fmt.Errorf("view must be one of all, citation, concept; got %q", compareView)
	}

	if opts.OutputFormat == "json" {
		return printJSON(cmd.OutOrStdout(), records)
	}

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "no paragraph pairs above the pairing threshold")
		return nil
	}

	headingColor.Fprintf(out, "%d paired paragraph(s), most different first\n\n", len(records))
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Para 1", "Para 2", "Similarity", "Flags", "Substantial"})
	for _, r := range records {
		table.Append([]string{
			fmt.Sprintf("%d", r.Para1.Index),
			fmt.Sprintf("%d", r.Para2.Index),
			fmt.Sprintf("%.3f", r.Similarity),
			flagSummary(r.Flags),
			fmt.Sprintf("%t", r.IsSubstantial),
		})
	}
	table.Render()
	return nil
}

func keepFlagged(records []analysis.ComparisonRecord, keep func(analysis.ComparisonRecord) bool) []analysis.ComparisonRecord {
	out := make([]analysis.ComparisonRecord, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func flagSummary(f analysis.DiffFlags) string {
	parts := make([]string, 0, 4)
	if f.CitationDiff {
		parts = append(parts, "citation")
	}
	if f.ConceptDiff {
		parts = append(parts, "concept")
	}
	if f.NumberDiff {
		parts = append(parts, "number")
	}
	if f.NegationDiff {
		parts = append(parts, "negation")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ",")
}
