package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ticker-sentiment/internal/logger"
	"ticker-sentiment/internal/trace"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "path to configuration file")
		ticker     = flag.String("ticker", "", "analyze a single ticker across all configured sources")
		report     = flag.Bool("report", false, "batch report over one source, ordered by mention count")
		source     = flag.String("source", "stocks", "source for -report mode")
		limit      = flag.Int("limit", 0, "documents to fetch in -report mode (0 = config default)")
	)
	flag.Parse()

	if err := initializeSystem(); err != nil {
		fmt.Fprintf(os.Stderr, "initialization failed: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigc
		logger.Warn(ctx, "Shutting down...")
		cancel()
	}()

	if err := run(ctx, *configPath, *ticker, *report, *source, *limit); err != nil {
		logger.ErrorWithErr(ctx, "Analysis failed", err)
		shutdownTracer()
		os.Exit(1)
	}

	shutdownTracer()
}

func run(ctx context.Context, configPath, ticker string, report bool, source string, limit int) error {
	cfg, err := loadConfig(ctx, configPath)
	if err != nil {
		return err
	}

	svc, err := buildService(ctx, cfg)
	if err != nil {
		return err
	}

	switch {
	case ticker != "":
		record, err := svc.AnalyzeTicker(ctx, ticker)
		if err != nil {
			return err
		}
		return printJSON(record)

	case report:
		records, err := svc.AnalyzeSubreddit(ctx, source, limit)
		if err != nil {
			return err
		}
		return printJSON(records)

	default:
		return fmt.Errorf("nothing to do: pass -ticker SYMBOL or -report")
	}
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func shutdownTracer() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = trace.Shutdown(ctx)
}
