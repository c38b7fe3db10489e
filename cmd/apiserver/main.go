// API server entry point for ArbiLens.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/veritaslex/arbilens/internal/application/argument"
	"github.com/veritaslex/arbilens/internal/application/comparison"
	"github.com/veritaslex/arbilens/internal/application/search"
	"github.com/veritaslex/arbilens/internal/config"
	"github.com/veritaslex/arbilens/internal/domain/citation"
	"github.com/veritaslex/arbilens/internal/domain/concept"
	"github.com/veritaslex/arbilens/internal/domain/document"
	"github.com/veritaslex/arbilens/internal/infrastructure/monitoring/logging"
	"github.com/veritaslex/arbilens/internal/infrastructure/monitoring/prometheus"
	httpserver "github.com/veritaslex/arbilens/internal/interfaces/http"
	"github.com/veritaslex/arbilens/internal/interfaces/http/handlers"
)

// Version is injected via ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to configuration file (YAML)")
	httpPort := flag.Int("port", 0, "HTTP server port (overrides config)")
	flag.Parse()

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *httpPort > 0 {
		cfg.Server.Port = *httpPort
	}

	logger, err := logging.NewLogger(logging.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		OutputPaths: cfg.Log.OutputPaths,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger.Info("starting arbilens api server",
		logging.String("version", Version),
		logging.Int("port", cfg.Server.Port))

	metrics := prometheus.NewMetrics()

	registry := concept.NewRegistry()
	if cfg.Concepts.File != "" {
		if err := concept.SeedFromFile(registry, cfg.Concepts.File); err != nil {
			logger.Fatal("failed to seed concept registry", logging.Err(err),
				logging.String("file", cfg.Concepts.File))
		}
		if cfg.Concepts.Watch {
			watcher, werr := concept.NewWatcher(registry, cfg.Concepts.File, logger)
			if werr != nil {
				logger.Fatal("failed to watch concept file", logging.Err(werr))
			}
			defer watcher.Close()
		}
	}
	metrics.ConceptsTotal.Set(float64(registry.Len()))

	store := document.NewStore()
	segmenter := document.NewSegmenter(registry,
		citation.NewExtractor(cfg.Analysis.CitationContext), cfg.Analysis.MinParagraphChars)

	router := httpserver.NewRouter(httpserver.RouterConfig{
		DocumentHandler: handlers.NewDocumentHandler(store, segmenter, metrics),
		ConceptHandler:  handlers.NewConceptHandler(registry, metrics),
		SearchHandler: handlers.NewSearchHandler(
			search.NewEngine(registry, segmenter, logger, metrics),
			store, cfg.Analysis.DefaultSearchThreshold),
		CompareHandler: handlers.NewCompareHandler(
			comparison.NewComparator(store, segmenter, cfg.Analysis.PairingThreshold, logger, metrics)),
		ArgumentHandler: handlers.NewArgumentHandler(
			argument.NewMiner(registry, logger, metrics), store),
		HealthHandler: handlers.NewHealthHandler(Version, registryChecker{registry}),
		Logger:        logger,
		Metrics:       metrics,
		Mode:          ginMode(cfg.Server.Mode),
	})

	srv := httpserver.NewServer(cfg.Server.Port, router, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("http server failed", logging.Err(err))
		}
	case sig := <-sigCh:
		logger.Info("shutdown signal received", logging.String("signal", sig.String()))
		if err := srv.Stop(context.Background()); err != nil {
			logger.Error("shutdown failed", logging.Err(err))
			os.Exit(1)
		}
	}
}

func ginMode(mode string) string {
	if mode == "" {
		return "release"
	}
	return mode
}

// registryChecker reports readiness of the concept registry.
type registryChecker struct {
	registry *concept.Registry
}

func (r registryChecker) Name() string { return "concept-registry" }

func (r registryChecker) Check() error {
	if r.registry.Len() == 0 {
		return fmt.Errorf("concept registry is empty")
	}
	return nil
}
