package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/veritaslex/arbilens/internal/application/argument"
	"github.com/veritaslex/arbilens/pkg/types/analysis"
)

var (
	argsClaimantFiles   []string
	argsRespondentFiles []string
)

// NewArgumentsCmd creates the arguments command group: extraction of
// rhetorical arguments and the claimant/respondent comparative table.
func NewArgumentsCmd(opts *RootOptions, deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arguments",
		Short: "Mine rhetorical arguments from documents",
	}

	extractCmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Extract arguments from one document with provenance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArgumentsExtract(cmd, opts, deps, args[0])
		},
	}

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "Build the claimant-versus-respondent argument table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArgumentsTable(cmd, opts, deps)
		},
	}
	tableCmd.Flags().StringSliceVar(&argsClaimantFiles, "claimant", nil, "Claimant-side files (required)")
	tableCmd.Flags().StringSliceVar(&argsRespondentFiles, "respondent", nil, "Respondent-side files (required)")
	_ = tableCmd.MarkFlagRequired("claimant")
	_ = tableCmd.MarkFlagRequired("respondent")

	cmd.AddCommand(extractCmd, tableCmd)
	return cmd
}

func runArgumentsExtract(cmd *cobra.Command, opts *RootOptions, deps *Deps, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	id := docID(path)
	summary := argument.Summarize(id, deps.Miner.Extract(string(raw), id))

	if opts.OutputFormat == "json" {
		return printJSON(cmd.OutOrStdout(), summary)
	}

	out := cmd.OutOrStdout()
	headingColor.Fprintf(out, "%d argument(s) in %s\n\n", summary.Count, id)
	for _, a := range summary.Arguments {
		accentColor.Fprintf(out, "[%s] %s\n", a.PatternUsed, a.Provenance)
		fmt.Fprintf(out, "   %s\n", a.Text)
		if len(a.Concepts) > 0 {
			fmt.Fprintf(out, "   concepts: %s\n", strings.Join(a.Concepts, ", "))
		}
		fmt.Fprintln(out)
	}
	return nil
}

func runArgumentsTable(cmd *cobra.Command, opts *RootOptions, deps *Deps) error {
	claimant, err := mineFiles(deps, "claimant", argsClaimantFiles)
	if err != nil {
		return err
	}
	respondent, err := mineFiles(deps, "respondent", argsRespondentFiles)
	if err != nil {
		return err
	}
	rows := argument.BuildComparativeTable(claimant, respondent)

	if opts.OutputFormat == "json" {
		return printJSON(cmd.OutOrStdout(), rows)
	}

	out := cmd.OutOrStdout()
	if len(rows) == 0 {
		fmt.Fprintln(out, "no arguments touch any registered concept")
		return nil
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Concept", "Claimant", "Respondent"})
	table.SetRowLine(true)
	for _, row := range rows {
		table.Append([]string{
			row.Concept,
			joinArguments(row.ClaimantArguments),
			joinArguments(row.RespondentArguments),
		})
	}
	table.Render()
	return nil
}

// mineFiles reads each file directly, without the shared store: the same
// file may legitimately appear on both sides.
func mineFiles(deps *Deps, side string, paths []string) (analysis.ArgumentSummary, error) {
	all := make([]analysis.Argument, 0)
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return analysis.ArgumentSummary{}, fmt.Errorf("read %s: %w", path, err)
		}
		all = append(all, deps.Miner.Extract(string(raw), docID(path))...)
	}
	return argument.Summarize(side, all), nil
}

func joinArguments(args []analysis.Argument) string {
	if len(args) == 0 {
		return "-"
	}
	lines := make([]string, 0, len(args))
	for _, a := range args {
		lines = append(lines, fmt.Sprintf("%s (%s)", a.Text, a.Provenance))
	}
	return strings.Join(lines, "\n")
}
