package vocab

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"ticker-sentiment/internal/api"
	"ticker-sentiment/internal/logger"
)

// ErrUnavailable is returned when no ticker vocabulary can be produced.
// Nothing can be validated without it, so callers must propagate.
var ErrUnavailable = errors.New("ticker vocabulary unavailable")

// popularAdditions are symbols heavily discussed on social platforms that
// the exchange listings may lag behind on, plus common index ETFs.
var popularAdditions = []string{
	"GME", "AMC", "BB", "NOK", "BBBY", "PLTR", "NIO", "LCID",
	"RIVN", "SOFI", "WISH", "CLOV", "SPCE", "DKNG", "PENN",
	"COIN", "HOOD", "RBLX", "ABNB", "DASH", "SNOW", "U", "AI",
	"QQQ", "SPY", "IWM", "DIA", "VTI", "VOO", "AAPL", "T", "TSLA",
}

// Provider loads the set of valid ticker symbols from a local file, with
// an optional scraped fallback that also rewrites the file for reuse.
type Provider struct {
	file           string
	scrapeFallback bool
	client         *api.Client
}

// NewProvider creates a vocabulary provider. client is only used when the
// scraped fallback is enabled.
func NewProvider(file string, scrapeFallback bool, client *api.Client) *Provider {
	return &Provider{
		file:           file,
		scrapeFallback: scrapeFallback,
		client:         client,
	}
}

// Load returns the valid-ticker set from the file, falling back to a
// fresh scrape when the file is missing or empty.
func (p *Provider) Load(ctx context.Context) (map[string]struct{}, error) {
	set, err := p.loadFile()
	if err == nil && len(set) > 0 {
		logger.Debug(ctx, "Loaded ticker vocabulary from file", "file", p.file, "count", len(set))
		return set, nil
	}

	if !p.scrapeFallback {
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return nil, fmt.Errorf("%w: %s is empty", ErrUnavailable, p.file)
	}

	return p.Refresh(ctx)
}

// Refresh scrapes the exchange listings, unions in the static additions,
// writes the result to the vocabulary file, and returns it.
func (p *Provider) Refresh(ctx context.Context) (map[string]struct{}, error) {
	set := make(map[string]struct{})

	nasdaq, err := p.fetchNasdaqListings(ctx)
	if err != nil {
		logger.ErrorWithErr(ctx, "NASDAQ listing fetch failed", err)
	}
	for _, sym := range nasdaq {
		set[sym] = struct{}{}
	}

	sp500, err := p.scrapeSP500(ctx)
	if err != nil {
		logger.ErrorWithErr(ctx, "S&P 500 constituents scrape failed", err)
	}
	for _, sym := range sp500 {
		set[sym] = struct{}{}
	}

	for _, sym := range popularAdditions {
		set[sym] = struct{}{}
	}

	if err := p.save(set); err != nil {
		logger.Warn(ctx, "Failed to write vocabulary file", "file", p.file, "error", err)
	}

	logger.Info(ctx, "Ticker vocabulary refreshed", "count", len(set))
	return set, nil
}

// loadFile reads the vocabulary file, one symbol per line.
func (p *Provider) loadFile() (map[string]struct{}, error) {
	b, err := os.ReadFile(p.file)
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{})
	for _, line := range strings.Split(string(b), "\n") {
		sym := strings.ToUpper(strings.TrimSpace(line))
		if sym != "" {
			set[sym] = struct{}{}
		}
	}
	return set, nil
}

// save writes the vocabulary file sorted, one symbol per line.
func (p *Provider) save(set map[string]struct{}) error {
	symbols := make([]string, 0, len(set))
	for sym := range set {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	return os.WriteFile(p.file, []byte(strings.Join(symbols, "\n")+"\n"), 0644)
}

// validSymbol reports whether sym looks like a listed ticker: letters
// only, at most 5 characters.
func validSymbol(sym string) bool {
	if sym == "" || len(sym) > 5 {
		return false
	}
	for _, r := range sym {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
