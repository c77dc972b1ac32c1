package analyzeobs

import (
	"context"
	"time"

	"ticker-sentiment/internal/interfaces"
	"ticker-sentiment/internal/logger"
	"ticker-sentiment/internal/trace"
	"ticker-sentiment/internal/types"
)

type observableService struct {
	service interfaces.TickerService
}

var _ interfaces.TickerService = (*observableService)(nil)

func Wrap(svc interfaces.TickerService) interfaces.TickerService {
	return &observableService{
		service: svc,
	}
}

func (os *observableService) AnalyzeTicker(ctx context.Context, ticker string) (*types.AggregateRecord, error) {
	ctx, span := trace.StartSpan(ctx, "analyze.AnalyzeTicker")
	defer span.End()

	start := time.Now()

	logger.Info(ctx, "Starting ticker analysis",
		"ticker", ticker,
	)

	record, err := os.service.AnalyzeTicker(ctx, ticker)
	if err != nil {
		logger.ErrorWithErr(ctx, "Ticker analysis failed", err,
			"ticker", ticker,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	logger.Info(ctx, "Ticker analysis completed",
		"ticker", record.Ticker,
		"signal", record.Signal,
		"avg_sentiment", record.AvgSentiment,
		"mention_count", record.MentionCount,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return record, nil
}

func (os *observableService) AnalyzeSubreddit(ctx context.Context, source string, limit int) ([]types.AggregateRecord, error) {
	ctx, span := trace.StartSpan(ctx, "analyze.AnalyzeSubreddit")
	defer span.End()

	start := time.Now()

	logger.Info(ctx, "Starting batch analysis",
		"source", source,
		"limit", limit,
	)

	records, err := os.service.AnalyzeSubreddit(ctx, source, limit)
	if err != nil {
		logger.ErrorWithErr(ctx, "Batch analysis failed", err,
			"source", source,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	logger.Info(ctx, "Batch analysis completed",
		"source", source,
		"tickers", len(records),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return records, nil
}
