package analyze

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"ticker-sentiment/internal/interfaces"
	"ticker-sentiment/internal/logger"
	"ticker-sentiment/internal/types"
)

// Service aggregates per-document analyses into one classified record per
// ticker, backed by the result cache.
type Service struct {
	collector interfaces.Collector
	analyzer  *Analyzer
	cache     *Cache
	cfg       *ServiceConfig
	now       func() time.Time
}

// ServiceConfig configures the aggregation service.
type ServiceConfig struct {
	Sources        []string      // Collections polled in single-ticker mode, in fixed order
	PostsPerSource int           // Documents fetched per source
	TickerTopN     int           // Ranked mentions kept in single-ticker mode (detail view)
	BatchTopN      int           // Ranked mentions kept per ticker in batch mode (summary table)
	CacheTTL       time.Duration // How long aggregate records are served from cache
}

// DefaultServiceConfig returns the default aggregation configuration.
func DefaultServiceConfig() *ServiceConfig {
	return &ServiceConfig{
		Sources:        []string{"stocks", "wallstreetbets", "investing", "StockMarket"},
		PostsPerSource: 30,
		TickerTopN:     10,
		BatchTopN:      3,
		CacheTTL:       DefaultCacheTTL,
	}
}

// NewService creates an aggregation service. now may be nil for the wall
// clock.
func NewService(collector interfaces.Collector, analyzer *Analyzer, cfg *ServiceConfig, now func() time.Time) *Service {
	if cfg == nil {
		cfg = DefaultServiceConfig()
	}
	if now == nil {
		now = time.Now
	}
	return &Service{
		collector: collector,
		analyzer:  analyzer,
		cache:     NewCache(cfg.CacheTTL, now),
		cfg:       cfg,
		now:       now,
	}
}

// AnalyzeTicker aggregates mentions of one requested ticker across all
// configured sources. Results are cached; within the TTL the stored
// record is returned verbatim. A ticker with zero contributing mentions
// yields a NO_DATA record, not an error.
func (s *Service) AnalyzeTicker(ctx context.Context, ticker string) (*types.AggregateRecord, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if err := ValidateTicker(ticker); err != nil {
		return nil, err
	}

	return s.cache.GetOrCompute(ticker, func() (*types.AggregateRecord, error) {
		return s.computeTicker(ctx, ticker)
	})
}

// computeTicker runs the fetch-and-analyze pass for one ticker.
func (s *Service) computeTicker(ctx context.Context, ticker string) (*types.AggregateRecord, error) {
	logger.Info(ctx, "Computing ticker sentiment", "ticker", ticker, "sources", len(s.cfg.Sources))

	var mentions []types.Mention
	for _, res := range s.fetchAll(ctx, s.cfg.Sources) {
		if res.Err != nil {
			// A failing source contributes nothing; the others still count.
			logger.ErrorWithErr(ctx, "Source fetch failed", res.Err, "source", res.Source)
			continue
		}

		for _, doc := range res.Documents {
			analysis := s.analyzer.Analyze(ctx, doc)
			detail, ok := analysis.TickerDetails[ticker]
			if !ok {
				continue
			}
			for _, ex := range detail.Excerpts {
				m := types.Mention{
					Text:      ex.Text,
					Sentiment: ex.Sentiment,
					Source:    res.Source,
					Title:     doc.Title,
					Score:     doc.Score,
				}
				if doc.Permalink != "" {
					m.URL = "https://reddit.com" + doc.Permalink
				}
				mentions = append(mentions, m)
			}
		}
	}

	record := s.finalize(ticker, mentions, s.cfg.TickerTopN)
	logger.Signal(ctx, record.Ticker, string(record.Signal), record.AvgSentiment, record.MentionCount)
	return &record, nil
}

// AnalyzeSubreddit aggregates every ticker seen across a fixed document
// batch from one source. Records are ordered by descending mention
// count, ties broken by ticker for determinism.
func (s *Service) AnalyzeSubreddit(ctx context.Context, source string, limit int) ([]types.AggregateRecord, error) {
	if limit <= 0 {
		limit = s.cfg.PostsPerSource
	}

	docs, err := s.collector.Fetch(ctx, source, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch source %s: %w", source, err)
	}

	accum := make(map[string][]types.Mention)
	for _, doc := range docs {
		analysis := s.analyzer.Analyze(ctx, doc)
		for _, ticker := range analysis.Tickers {
			for _, ex := range analysis.TickerDetails[ticker].Excerpts {
				accum[ticker] = append(accum[ticker], types.Mention{
					Text:      ex.Text,
					Sentiment: ex.Sentiment,
					Source:    source,
					Title:     doc.Title,
					Score:     doc.Score,
				})
			}
		}
	}

	tickers := make([]string, 0, len(accum))
	for ticker := range accum {
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)

	records := make([]types.AggregateRecord, 0, len(tickers))
	for _, ticker := range tickers {
		records = append(records, s.finalize(ticker, accum[ticker], s.cfg.BatchTopN))
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].MentionCount != records[j].MentionCount {
			return records[i].MentionCount > records[j].MentionCount
		}
		return records[i].Ticker < records[j].Ticker
	})

	logger.Info(ctx, "Batch aggregation completed", "source", source,
		"documents", len(docs), "tickers", len(records))
	return records, nil
}

// fetchAll fetches every source concurrently and returns per-source
// outcomes in configuration order, so the merge never depends on which
// source finishes first.
func (s *Service) fetchAll(ctx context.Context, sources []string) []types.SourceResult {
	results := make([]types.SourceResult, len(sources))

	var wg sync.WaitGroup
	for i, source := range sources {
		wg.Add(1)
		go func(i int, source string) {
			defer wg.Done()
			docs, err := s.collector.Fetch(ctx, source, s.cfg.PostsPerSource)
			results[i] = types.SourceResult{Source: source, Documents: docs, Err: err}
		}(i, source)
	}
	wg.Wait()

	return results
}

// finalize turns the contributing mentions for one ticker into a
// classified record. An empty contributing set yields NO_DATA; the
// ticker is never silently omitted.
func (s *Service) finalize(ticker string, mentions []types.Mention, topN int) types.AggregateRecord {
	now := s.now()

	if len(mentions) == 0 {
		return types.AggregateRecord{
			Ticker:       ticker,
			AvgSentiment: 0,
			Signal:       types.SignalNoData,
			MentionCount: 0,
			Mentions:     []types.Mention{},
			Timestamp:    now,
		}
	}

	sum := 0.0
	for _, m := range mentions {
		sum += m.Sentiment
	}
	avg := round3(sum / float64(len(mentions)))

	ranked := make([]types.Mention, len(mentions))
	copy(ranked, mentions)
	sort.SliceStable(ranked, func(i, j int) bool {
		return abs(ranked[i].Sentiment) > abs(ranked[j].Sentiment)
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	return types.AggregateRecord{
		Ticker:       ticker,
		AvgSentiment: avg,
		Signal:       types.ClassifySignal(avg),
		MentionCount: len(mentions),
		Mentions:     ranked,
		Timestamp:    now,
	}
}

// ClearCache drops all cached aggregate records.
func (s *Service) ClearCache() {
	s.cache.Clear()
}

// CachedTickers returns the tickers with a cached record.
func (s *Service) CachedTickers() []string {
	return s.cache.Tickers()
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
