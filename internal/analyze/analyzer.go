package analyze

import (
	"context"
	"sort"
	"strings"

	"ticker-sentiment/internal/interfaces"
	"ticker-sentiment/internal/logger"
	"ticker-sentiment/internal/mention"
	"ticker-sentiment/internal/types"
)

// docTopExcerpts is how many excerpts a single document contributes per
// ticker, keeping only the most sentiment-heavy ones.
const docTopExcerpts = 3

// Analyzer runs the recognize-extract-score pipeline for one document.
type Analyzer struct {
	recognizer *mention.Recognizer
	scorer     interfaces.Scorer
	window     int
}

// NewAnalyzer creates a document analyzer over the given valid-ticker
// vocabulary. window is the context window character budget; zero means
// the default.
func NewAnalyzer(vocab map[string]struct{}, scorer interfaces.Scorer, window int) *Analyzer {
	if window <= 0 {
		window = mention.DefaultWindow
	}
	return &Analyzer{
		recognizer: mention.NewRecognizer(vocab),
		scorer:     scorer,
		window:     window,
	}
}

// Analyze produces the per-ticker excerpt and sentiment bundles for one
// document plus an overall post sentiment. The input document is not
// mutated.
func (a *Analyzer) Analyze(ctx context.Context, doc types.Document) types.DocumentAnalysis {
	postText := doc.Title + " " + doc.Body
	fullText := postText
	if len(doc.Comments) > 0 {
		fullText = postText + " " + strings.Join(doc.Comments, " ")
	}

	tickers := a.recognizer.FindMentions(fullText)

	details := make(map[string]types.TickerAnalysis, len(tickers))
	for _, ticker := range tickers {
		details[ticker] = a.analyzeTicker(ctx, fullText, ticker)
	}

	// The post sentiment is a coarser signal over title+body only,
	// separate from the per-ticker excerpt sentiments.
	postSentiment, err := a.scorer.Score(postText)
	if err != nil {
		logger.Warn(ctx, "Post sentiment scoring failed", "title", doc.Title, "error", err)
		postSentiment = 0
	}

	return types.DocumentAnalysis{
		Tickers:       tickers,
		TickerDetails: details,
		PostSentiment: postSentiment,
		PostScore:     doc.Score,
	}
}

// analyzeTicker extracts and scores every excerpt for one ticker. A
// scoring failure drops that excerpt rather than aborting the document.
func (a *Analyzer) analyzeTicker(ctx context.Context, text, ticker string) types.TickerAnalysis {
	contexts := mention.ExtractContext(text, ticker, a.window)

	excerpts := make([]types.Excerpt, 0, len(contexts))
	for _, c := range contexts {
		score, err := a.scorer.Score(c)
		if err != nil {
			logger.Warn(ctx, "Excerpt scoring failed", "ticker", ticker, "error", err)
			continue
		}
		excerpts = append(excerpts, types.Excerpt{Text: c, Sentiment: score})
	}

	// Average over the complete scored list, before truncation.
	avg := 0.0
	if len(excerpts) > 0 {
		sum := 0.0
		for _, e := range excerpts {
			sum += e.Sentiment
		}
		avg = sum / float64(len(excerpts))
	}

	sort.SliceStable(excerpts, func(i, j int) bool {
		return abs(excerpts[i].Sentiment) > abs(excerpts[j].Sentiment)
	})
	if len(excerpts) > docTopExcerpts {
		excerpts = excerpts[:docTopExcerpts]
	}

	return types.TickerAnalysis{
		Excerpts:     excerpts,
		AvgSentiment: avg,
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
