package store

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Sources        []string `yaml:"sources"`
	PostsPerSource int      `yaml:"posts_per_source"`

	Collector struct {
		BaseURL         string  `yaml:"base_url"`
		UserAgent       string  `yaml:"user_agent"`
		TimeoutSeconds  int     `yaml:"timeout_seconds"`
		RequestsPerSec  float64 `yaml:"requests_per_sec"`
		CommentsPerPost int     `yaml:"comments_per_post"`
	} `yaml:"collector"`

	Vocabulary struct {
		File           string `yaml:"file"`
		ScrapeFallback bool   `yaml:"scrape_fallback"`
	} `yaml:"vocabulary"`

	Extract struct {
		Window int `yaml:"window"`
	} `yaml:"extract"`

	Aggregate struct {
		CacheTTLSeconds int `yaml:"cache_ttl_seconds"`
		TickerTopN      int `yaml:"ticker_top_n"`
		BatchTopN       int `yaml:"batch_top_n"`
	} `yaml:"aggregate"`
}

func (c *Config) Validate() error {
	if len(c.Sources) == 0 {
		return errors.New("sources cannot be empty")
	}
	if c.PostsPerSource <= 0 {
		return fmt.Errorf("posts_per_source must be positive, got %d", c.PostsPerSource)
	}
	if c.Extract.Window <= 0 {
		return fmt.Errorf("extract.window must be positive, got %d", c.Extract.Window)
	}
	if c.Aggregate.TickerTopN <= 0 || c.Aggregate.BatchTopN <= 0 {
		return fmt.Errorf("aggregate top-n values must be positive, got %d/%d",
			c.Aggregate.TickerTopN, c.Aggregate.BatchTopN)
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}

// DefaultConfig returns a configuration usable without a config file.
func DefaultConfig() *Config {
	var c Config
	applyDefaults(&c)
	return &c
}

func applyDefaults(c *Config) {
	if len(c.Sources) == 0 {
		c.Sources = []string{"stocks", "wallstreetbets", "investing", "StockMarket"}
	}
	if c.PostsPerSource == 0 {
		c.PostsPerSource = 30
	}
	if c.Collector.BaseURL == "" {
		c.Collector.BaseURL = "https://www.reddit.com"
	}
	if c.Collector.UserAgent == "" {
		c.Collector.UserAgent = "ticker-sentiment/1.0 (market sentiment research)"
	}
	if c.Collector.TimeoutSeconds == 0 {
		c.Collector.TimeoutSeconds = 30
	}
	if c.Collector.RequestsPerSec == 0 {
		c.Collector.RequestsPerSec = 1
	}
	if c.Collector.CommentsPerPost == 0 {
		c.Collector.CommentsPerPost = 5
	}
	if c.Vocabulary.File == "" {
		c.Vocabulary.File = "tickers.txt"
	}
	if c.Extract.Window == 0 {
		c.Extract.Window = 200
	}
	if c.Aggregate.CacheTTLSeconds == 0 {
		c.Aggregate.CacheTTLSeconds = 300
	}
	if c.Aggregate.TickerTopN == 0 {
		c.Aggregate.TickerTopN = 10
	}
	if c.Aggregate.BatchTopN == 0 {
		c.Aggregate.BatchTopN = 3
	}
}
