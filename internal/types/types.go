package types

import "time"

// Document is one collected post together with its top comments.
// Read-only once produced by a collector.
type Document struct {
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	Comments  []string `json:"comments"`
	Score     int      `json:"score"`
	Permalink string   `json:"permalink,omitempty"`
	Source    string   `json:"source"`
}

// Excerpt is a bounded text window around one ticker mention with the
// compound sentiment of that window.
type Excerpt struct {
	Text      string  `json:"text"`
	Sentiment float64 `json:"sentiment"`
}

// TickerAnalysis holds the per-document result for one ticker. Excerpts
// keeps only the top 3 by absolute sentiment; AvgSentiment is computed
// over the full excerpt set before truncation.
type TickerAnalysis struct {
	Excerpts     []Excerpt `json:"excerpts"`
	AvgSentiment float64   `json:"avg_sentiment"`
}

// DocumentAnalysis is the full analysis of a single document.
type DocumentAnalysis struct {
	Tickers       []string                  `json:"tickers"`
	TickerDetails map[string]TickerAnalysis `json:"ticker_details"`
	PostSentiment float64                   `json:"post_sentiment"`
	PostScore     int                       `json:"post_score"`
}

// Mention is one aggregated excerpt row carrying its provenance.
type Mention struct {
	Text      string  `json:"excerpt"`
	Sentiment float64 `json:"sentiment"`
	Source    string  `json:"source"`
	Title     string  `json:"title"`
	Score     int     `json:"post_score"`
	URL       string  `json:"url,omitempty"`
}

// Signal is the classified market-sentiment verdict for a ticker.
type Signal string

const (
	SignalBullish Signal = "BULLISH"
	SignalBearish Signal = "BEARISH"
	SignalNeutral Signal = "NEUTRAL"
	SignalNoData  Signal = "NO_DATA"
)

// ClassifySignal maps an averaged (already rounded) compound sentiment to
// a signal. Exactly 0.3 and -0.3 are NEUTRAL.
func ClassifySignal(avgSentiment float64) Signal {
	switch {
	case avgSentiment > 0.3:
		return SignalBullish
	case avgSentiment < -0.3:
		return SignalBearish
	default:
		return SignalNeutral
	}
}

// AggregateRecord is the final cross-document result for one ticker.
// MentionCount counts contributing excerpts, not documents.
type AggregateRecord struct {
	Ticker       string    `json:"ticker"`
	AvgSentiment float64   `json:"avg_sentiment"`
	Signal       Signal    `json:"signal"`
	MentionCount int       `json:"mention_count"`
	Mentions     []Mention `json:"mentions"`
	Timestamp    time.Time `json:"timestamp"`
}

// SourceResult is the explicit outcome of fetching one source: either a
// document batch or a failure. A failed source never aborts the others.
type SourceResult struct {
	Source    string
	Documents []Document
	Err       error
}
