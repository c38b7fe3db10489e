package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var conceptsMatchText string

// NewConceptsCmd creates the concepts command group for inspecting the
// active concept registry.
func NewConceptsCmd(opts *RootOptions, deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "concepts",
		Short: "Inspect the concept registry",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered concepts and their variations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConceptsList(cmd, opts, deps)
		},
	}

	matchCmd := &cobra.Command{
		Use:   "match [file]",
		Short: "Show which concepts a document touches",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runConceptsMatch(cmd, opts, deps, path)
		},
	}
	matchCmd.Flags().StringVar(&conceptsMatchText, "text", "", "Match against literal text instead of a file")

	cmd.AddCommand(listCmd, matchCmd)
	return cmd
}

func runConceptsList(cmd *cobra.Command, opts *RootOptions, deps *Deps) error {
	concepts := deps.Registry.List()

	if opts.OutputFormat == "json" {
		return printJSON(cmd.OutOrStdout(), concepts)
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Concept", "Variations"})
	for _, c := range concepts {
		table.Append([]string{c.Name, strings.Join(c.Variations, ", ")})
	}
	table.Render()
	return nil
}

func runConceptsMatch(cmd *cobra.Command, opts *RootOptions, deps *Deps, path string) error {
	text := conceptsMatchText
	if text == "" {
		if path == "" {
			return fmt.Errorf("provide a file argument or --text")
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		text = string(raw)
	}

	matched := deps.Registry.ConceptsIn(text)
	if opts.OutputFormat == "json" {
		return printJSON(cmd.OutOrStdout(), matched)
	}

	out := cmd.OutOrStdout()
	if len(matched) == 0 {
		fmt.Fprintln(out, "no registered concept matches")
		return nil
	}
	for _, name := range matched {
		fmt.Fprintln(out, name)
	}
	return nil
}
