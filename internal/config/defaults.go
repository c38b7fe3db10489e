// Package config provides configuration loading, defaults, and validation
// for the ArbiLens engine.
package config

import "time"

// ─────────────────────────────────────────────────────────────────────────────
// Default value constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	DefaultServerPort      = 8080
	DefaultServerMode      = "release"
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultMaxBodySize     = 16 << 20 // 16 MiB of plain text per upload
	DefaultShutdownTimeout = 10 * time.Second

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultMinParagraphChars      = 20
	DefaultPairingThreshold       = 0.5
	DefaultSearchScoreThreshold   = 0.3
	DefaultCitationContextChars   = 50
	DefaultArgumentContextChars   = 100
	DefaultSearchContextChars     = 100
)

// ApplyDefaults fills every zero-value field in cfg with the engine default.
// Fields already set by the caller are left unchanged so that explicit
// configuration always wins.  It must be called after unmarshalling and
// before Validate() so optional-but-defaulted fields are never seen as
// missing.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	// ── Server ────────────────────────────────────────────────────────────────
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.MaxBodySize == 0 {
		cfg.Server.MaxBodySize = DefaultMaxBodySize
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	// ── Log ───────────────────────────────────────────────────────────────────
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if len(cfg.Log.OutputPaths) == 0 {
		cfg.Log.OutputPaths = []string{"stdout"}
	}

	// ── Analysis ──────────────────────────────────────────────────────────────
	if cfg.Analysis.MinParagraphChars == 0 {
		cfg.Analysis.MinParagraphChars = DefaultMinParagraphChars
	}
	if cfg.Analysis.PairingThreshold == 0 {
		cfg.Analysis.PairingThreshold = DefaultPairingThreshold
	}
	if cfg.Analysis.DefaultSearchThreshold == 0 {
		cfg.Analysis.DefaultSearchThreshold = DefaultSearchScoreThreshold
	}
	if cfg.Analysis.CitationContext == 0 {
		cfg.Analysis.CitationContext = DefaultCitationContextChars
	}
	if cfg.Analysis.ArgumentContext == 0 {
		cfg.Analysis.ArgumentContext = DefaultArgumentContextChars
	}
	if cfg.Analysis.SearchContext == 0 {
		cfg.Analysis.SearchContext = DefaultSearchContextChars
	}
}
