package vocab

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
)

const (
	nasdaqScreenerURL = "https://api.nasdaq.com/api/screener/stocks?tableonly=true&limit=5000"
	sp500WikiURL      = "https://en.wikipedia.org/wiki/List_of_S%26P_500_companies"
)

// fetchNasdaqListings pulls the NASDAQ screener, which covers most listed
// US symbols.
func (p *Provider) fetchNasdaqListings(ctx context.Context) ([]string, error) {
	var screener struct {
		Data struct {
			Rows []struct {
				Symbol string `json:"symbol"`
			} `json:"rows"`
		} `json:"data"`
	}

	if err := p.client.GetJSON(ctx, nasdaqScreenerURL, &screener); err != nil {
		return nil, err
	}

	var symbols []string
	for _, row := range screener.Data.Rows {
		sym := strings.ToUpper(strings.TrimSpace(row.Symbol))
		if validSymbol(sym) {
			symbols = append(symbols, sym)
		}
	}

	if len(symbols) == 0 {
		return nil, fmt.Errorf("screener returned no usable symbols")
	}
	return symbols, nil
}

// scrapeSP500 scrapes the S&P 500 constituents table from Wikipedia.
// Class-share symbols use a dot there (BRK.B); normalized to the dashed
// form used by most data vendors.
func (p *Provider) scrapeSP500(ctx context.Context) ([]string, error) {
	var symbols []string

	c := colly.NewCollector(
		colly.AllowedDomains("en.wikipedia.org"),
		colly.MaxDepth(1),
	)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	})

	c.OnHTML("table#constituents > tbody > tr", func(e *colly.HTMLElement) {
		if sym := symbolFromRow(e.DOM); sym != "" {
			symbols = append(symbols, sym)
		}
	})

	if err := c.Visit(sp500WikiURL); err != nil {
		return nil, fmt.Errorf("failed to visit %s: %w", sp500WikiURL, err)
	}
	c.Wait()

	if len(symbols) == 0 {
		return nil, fmt.Errorf("constituents table yielded no symbols")
	}
	return symbols, nil
}

// symbolFromRow extracts the ticker from the first cell of a constituents
// table row.
func symbolFromRow(row *goquery.Selection) string {
	sym := strings.TrimSpace(row.ChildrenFiltered("td").First().Text())
	sym = strings.ToUpper(strings.ReplaceAll(sym, ".", "-"))
	if sym == "" || len(sym) > 6 {
		return ""
	}
	return sym
}
