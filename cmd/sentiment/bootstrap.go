package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"ticker-sentiment/internal/analyze"
	"ticker-sentiment/internal/analyze/analyzeobs"
	"ticker-sentiment/internal/api"
	"ticker-sentiment/internal/collect"
	"ticker-sentiment/internal/interfaces"
	"ticker-sentiment/internal/logger"
	"ticker-sentiment/internal/sentiment"
	"ticker-sentiment/internal/store"
	"ticker-sentiment/internal/trace"
	"ticker-sentiment/internal/vocab"
)

// initializeSystem initializes environment, logger, and tracer
func initializeSystem() error {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	return nil
}

// loadConfig loads the configuration file, falling back to defaults when
// it does not exist.
func loadConfig(ctx context.Context, path string) (*store.Config, error) {
	cfg, err := store.LoadConfig(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info(ctx, "No config file, using defaults", "path", path)
			return store.DefaultConfig(), nil
		}
		logger.ErrorWithErr(ctx, "Failed to load config", err, "path", path)
		return nil, err
	}
	return cfg, nil
}

// buildService wires the vocabulary, collector, scorer, and aggregation
// service together with observability.
func buildService(ctx context.Context, cfg *store.Config) (interfaces.TickerService, error) {
	vocabClient := api.NewClient(
		api.WithTimeout(time.Duration(cfg.Collector.TimeoutSeconds)*time.Second),
		api.WithHeader("User-Agent", "Mozilla/5.0"),
	)
	provider := vocab.NewProvider(cfg.Vocabulary.File, cfg.Vocabulary.ScrapeFallback, vocabClient)

	tickers, err := provider.Load(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "Ticker vocabulary loaded", "count", len(tickers))

	collector := collect.NewRedditCollector(collect.Config{
		BaseURL:         cfg.Collector.BaseURL,
		UserAgent:       cfg.Collector.UserAgent,
		Timeout:         time.Duration(cfg.Collector.TimeoutSeconds) * time.Second,
		RequestsPerSec:  cfg.Collector.RequestsPerSec,
		CommentsPerPost: cfg.Collector.CommentsPerPost,
	})

	analyzer := analyze.NewAnalyzer(tickers, sentiment.NewLexiconScorer(), cfg.Extract.Window)

	var svc interfaces.TickerService = analyze.NewService(collector, analyzer, &analyze.ServiceConfig{
		Sources:        cfg.Sources,
		PostsPerSource: cfg.PostsPerSource,
		TickerTopN:     cfg.Aggregate.TickerTopN,
		BatchTopN:      cfg.Aggregate.BatchTopN,
		CacheTTL:       time.Duration(cfg.Aggregate.CacheTTLSeconds) * time.Second,
	}, nil)

	if trace.Enabled() {
		svc = analyzeobs.Wrap(svc)
	}
	return svc, nil
}
