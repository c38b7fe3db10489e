// Package cli implements the arbilens command-line interface.  Commands
// operate on local plain-text files, building a fresh in-memory engine per
// invocation; the HTTP API is the surface for long-lived sessions.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/veritaslex/arbilens/internal/application/argument"
	"github.com/veritaslex/arbilens/internal/application/comparison"
	"github.com/veritaslex/arbilens/internal/application/search"
	"github.com/veritaslex/arbilens/internal/config"
	"github.com/veritaslex/arbilens/internal/domain/citation"
	"github.com/veritaslex/arbilens/internal/domain/concept"
	"github.com/veritaslex/arbilens/internal/domain/document"
	"github.com/veritaslex/arbilens/internal/infrastructure/monitoring/logging"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// RootOptions holds global CLI flags.
type RootOptions struct {
	ConfigPath   string
	LogLevel     string
	OutputFormat string
	ConceptsFile string
	NoColor      bool
}

// Deps carries the engine components shared by all subcommands.  It is
// populated once flags are parsed, before any subcommand runs.
type Deps struct {
	Config     *config.Config
	Logger     logging.Logger
	Registry   *concept.Registry
	Store      *document.Store
	Segmenter  *document.Segmenter
	Engine     *search.Engine
	Comparator *comparison.Comparator
	Miner      *argument.Miner
}

// NewRootCommand creates the root command with all global flags and
// subcommands mounted.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	deps := &Deps{}

	cmd := &cobra.Command{
		Use:           "arbilens",
		Short:         "Document intelligence for arbitration texts",
		Long:          "ArbiLens analyzes legal and arbitration documents: concept-aware search,\nsubstantive difference detection, and argument mining with provenance.",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initDeps(opts, deps)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.ConfigPath, "config", "", "Path to config file (YAML)")
	pf.StringVar(&opts.LogLevel, "log-level", "warn", "Log level: debug|info|warn|error")
	pf.StringVarP(&opts.OutputFormat, "output", "o", "text", "Output format: text|json")
	pf.StringVar(&opts.ConceptsFile, "concepts", "", "YAML concept seed file (defaults to built-in concepts)")
	pf.BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(
		NewSearchCmd(opts, deps),
		NewCompareCmd(opts, deps),
		NewArgumentsCmd(opts, deps),
		NewConceptsCmd(opts, deps),
	)
	return cmd
}

// initDeps builds the engine component graph from flags and configuration.
func initDeps(opts *RootOptions, deps *Deps) error {
	if opts.NoColor {
		color.NoColor = true
	}

	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = config.Load(opts.ConfigPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}
	deps.Config = cfg

	logger, err := logging.NewLogger(logging.Config{
		Level:       opts.LogLevel,
		Format:      "console",
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	deps.Logger = logger

	registry := concept.NewRegistry()
	seedFile := opts.ConceptsFile
	if seedFile == "" {
		seedFile = cfg.Concepts.File
	}
	if seedFile != "" {
		if err := concept.SeedFromFile(registry, seedFile); err != nil {
			return err
		}
	}
	deps.Registry = registry

	deps.Store = document.NewStore()
	deps.Segmenter = document.NewSegmenter(registry,
		citation.NewExtractor(cfg.Analysis.CitationContext), cfg.Analysis.MinParagraphChars)
	deps.Engine = search.NewEngine(registry, deps.Segmenter, logger, nil)
	deps.Comparator = comparison.NewComparator(deps.Store, deps.Segmenter,
		cfg.Analysis.PairingThreshold, logger, nil)
	deps.Miner = argument.NewMiner(registry, logger, nil)
	return nil
}

// loadFiles reads each path into the store, using the file's base name
// without extension as the document id.  The returned ids preserve argument
// order.
func loadFiles(store *document.Store, paths []string) ([]string, error) {
	ids := make([]string, 0, len(paths))
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		id := docID(path)
		if _, err := store.Put(document.Document{ID: id, Text: string(raw)}); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func docID(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	accentColor  = color.New(color.FgYellow)
)

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
