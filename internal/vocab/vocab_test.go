package vocab

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tickers.txt")
	if err := os.WriteFile(path, []byte("AAPL\ntsla\n\n  GME  \n"), 0644); err != nil {
		t.Fatal(err)
	}

	p := NewProvider(path, false, nil)
	set, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(set) != 3 {
		t.Fatalf("expected 3 symbols, got %d", len(set))
	}
	for _, sym := range []string{"AAPL", "TSLA", "GME"} {
		if _, ok := set[sym]; !ok {
			t.Errorf("expected %s in vocabulary", sym)
		}
	}
}

func TestLoadMissingFileNoFallback(t *testing.T) {
	p := NewProvider(filepath.Join(t.TempDir(), "nope.txt"), false, nil)

	_, err := p.Load(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestLoadEmptyFileNoFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tickers.txt")
	if err := os.WriteFile(path, []byte("\n\n"), 0644); err != nil {
		t.Fatal(err)
	}

	p := NewProvider(path, false, nil)
	if _, err := p.Load(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable for empty file, got %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tickers.txt")
	p := NewProvider(path, false, nil)

	if err := p.save(map[string]struct{}{"TSLA": {}, "AAPL": {}}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "AAPL\nTSLA\n" {
		t.Errorf("expected sorted one-per-line output, got %q", string(b))
	}

	set, err := p.loadFile()
	if err != nil {
		t.Fatal(err)
	}
	if len(set) != 2 {
		t.Errorf("expected 2 symbols back, got %d", len(set))
	}
}

func TestValidSymbol(t *testing.T) {
	cases := []struct {
		sym string
		ok  bool
	}{
		{"AAPL", true},
		{"T", true},
		{"GOOGL", true},
		{"BRK.B", false},
		{"TOOLONG", false},
		{"aapl", false},
		{"A1", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := validSymbol(tc.sym); got != tc.ok {
			t.Errorf("validSymbol(%q) = %v, want %v", tc.sym, got, tc.ok)
		}
	}
}
