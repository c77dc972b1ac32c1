package interfaces

import (
	"context"

	"ticker-sentiment/internal/types"
)

// TickerService is the aggregation surface consumed by the presentation
// layer: a detail record for one requested ticker, or a ranked report over
// a batch from a single source.
type TickerService interface {
	AnalyzeTicker(ctx context.Context, ticker string) (*types.AggregateRecord, error)
	AnalyzeSubreddit(ctx context.Context, source string, limit int) ([]types.AggregateRecord, error)
}
