// Package config defines all configuration structures for the ArbiLens
// engine.  No I/O or parsing logic lives here — only plain data types and
// validation; loading is in loader.go.
package config

import (
	"fmt"
	"time"
)

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	MaxBodySize     int64         `mapstructure:"max_body_size"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level       string   `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format      string   `mapstructure:"format"` // "json" | "console"
	OutputPaths []string `mapstructure:"output_paths"`
}

// AnalysisConfig holds the tunables of the text-analysis core.  The defaults
// reproduce the engine's documented heuristics; changing them changes what
// counts as a paragraph, a related pair, or a relevant search hit.
type AnalysisConfig struct {
	// MinParagraphChars drops trimmed paragraphs shorter than this many
	// characters during segmentation.
	MinParagraphChars int `mapstructure:"min_paragraph_chars"`

	// PairingThreshold is the minimum similarity ratio before two paragraphs
	// are considered related enough to diff in detail.
	PairingThreshold float64 `mapstructure:"pairing_threshold"`

	// DefaultSearchThreshold is used when a search request supplies none.
	DefaultSearchThreshold float64 `mapstructure:"default_search_threshold"`

	// CitationContext is the number of characters kept on each side of a
	// citation match.
	CitationContext int `mapstructure:"citation_context"`

	// ArgumentContext is the number of characters kept on each side of an
	// argument match.
	ArgumentContext int `mapstructure:"argument_context"`

	// SearchContext is the number of characters kept on each side of a
	// search hit's paragraph in the raw document.
	SearchContext int `mapstructure:"search_context"`
}

// ConceptsConfig controls seeding of the concept registry.
type ConceptsConfig struct {
	// File is an optional YAML seed file; when empty the built-in defaults
	// are used.
	File string `mapstructure:"file"`

	// Watch reloads the registry when File changes on disk.
	Watch bool `mapstructure:"watch"`
}

// Config is the root configuration structure for the engine.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Concepts ConceptsConfig `mapstructure:"concepts"`
}

// Validate performs semantic validation of the fully-populated Config.
// It returns the first error encountered; callers should treat any error as
// fatal and refuse to start the application.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d is out of range [1, 65535]", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: server.mode %q is invalid; expected debug|release|test", c.Server.Mode)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	if c.Analysis.MinParagraphChars < 0 {
		return fmt.Errorf("config: analysis.min_paragraph_chars must be ≥ 0, got %d", c.Analysis.MinParagraphChars)
	}
	if c.Analysis.PairingThreshold < 0 || c.Analysis.PairingThreshold > 1 {
		return fmt.Errorf("config: analysis.pairing_threshold %v is out of range [0, 1]", c.Analysis.PairingThreshold)
	}
	if c.Analysis.DefaultSearchThreshold < 0 {
		return fmt.Errorf("config: analysis.default_search_threshold must be ≥ 0, got %v", c.Analysis.DefaultSearchThreshold)
	}
	if c.Analysis.CitationContext < 0 || c.Analysis.ArgumentContext < 0 || c.Analysis.SearchContext < 0 {
		return fmt.Errorf("config: analysis context windows must be ≥ 0")
	}

	return nil
}
