package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"ticker-sentiment/internal/api"
	"ticker-sentiment/internal/logger"
	"ticker-sentiment/internal/vocab"
)

func main() {
	var (
		file    = flag.String("file", "tickers.txt", "vocabulary file to write")
		timeout = flag.Duration("timeout", 60*time.Second, "overall refresh timeout")
	)
	flag.Parse()

	_ = godotenv.Load()
	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := api.NewClient(
		api.WithTimeout(30*time.Second),
		api.WithHeader("User-Agent", "Mozilla/5.0"),
	)

	provider := vocab.NewProvider(*file, true, client)
	tickers, err := provider.Refresh(ctx)
	if err != nil {
		logger.ErrorWithErr(ctx, "Vocabulary refresh failed", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %d tickers to %s\n", len(tickers), *file)
}
