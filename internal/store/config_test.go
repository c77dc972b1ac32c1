package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()

	if err := c.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
	if len(c.Sources) != 4 || c.Sources[0] != "stocks" {
		t.Errorf("unexpected default sources %v", c.Sources)
	}
	if c.PostsPerSource != 30 {
		t.Errorf("expected 30 posts per source, got %d", c.PostsPerSource)
	}
	if c.Extract.Window != 200 {
		t.Errorf("expected window 200, got %d", c.Extract.Window)
	}
	if c.Aggregate.CacheTTLSeconds != 300 {
		t.Errorf("expected 300s cache TTL, got %d", c.Aggregate.CacheTTLSeconds)
	}
	if c.Aggregate.TickerTopN != 10 || c.Aggregate.BatchTopN != 3 {
		t.Errorf("unexpected top-n defaults %d/%d", c.Aggregate.TickerTopN, c.Aggregate.BatchTopN)
	}
}

func TestLoadConfigOverridesAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
sources:
  - wallstreetbets
posts_per_source: 5
extract:
  window: 120
collector:
  requests_per_sec: 0.5
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(c.Sources) != 1 || c.Sources[0] != "wallstreetbets" {
		t.Errorf("expected sources override, got %v", c.Sources)
	}
	if c.PostsPerSource != 5 {
		t.Errorf("expected posts_per_source 5, got %d", c.PostsPerSource)
	}
	if c.Extract.Window != 120 {
		t.Errorf("expected window 120, got %d", c.Extract.Window)
	}
	if c.Collector.RequestsPerSec != 0.5 {
		t.Errorf("expected rate override, got %f", c.Collector.RequestsPerSec)
	}

	// Untouched fields still get defaults.
	if c.Collector.BaseURL != "https://www.reddit.com" {
		t.Errorf("expected default base URL, got %q", c.Collector.BaseURL)
	}
	if c.Aggregate.TickerTopN != 10 {
		t.Errorf("expected default ticker top-n, got %d", c.Aggregate.TickerTopN)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("posts_per_source: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected validation error for negative posts_per_source")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
