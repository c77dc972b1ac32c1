package mention

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExtractContextShortText(t *testing.T) {
	text := "AAPL is doing great today!"

	excerpts := ExtractContext(text, "AAPL", 200)
	if len(excerpts) != 1 {
		t.Fatalf("expected 1 excerpt, got %d", len(excerpts))
	}

	got := excerpts[0]
	if got != text {
		t.Errorf("expected whole text, got %q", got)
	}
	if strings.Contains(got, "...") {
		t.Errorf("no ellipsis expected when text fits, got %q", got)
	}
}

func TestExtractContextMiddleOfLongText(t *testing.T) {
	pad := strings.Repeat("lorem ipsum ", 50)
	text := pad + "everyone says AAPL will rally hard " + pad

	excerpts := ExtractContext(text, "AAPL", 200)
	if len(excerpts) != 1 {
		t.Fatalf("expected 1 excerpt, got %d", len(excerpts))
	}

	got := excerpts[0]
	if !strings.HasPrefix(got, "...") {
		t.Errorf("expected leading ellipsis, got %q", got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected trailing ellipsis, got %q", got)
	}
	if !strings.Contains(strings.ToUpper(got), "AAPL") {
		t.Errorf("excerpt must contain the ticker, got %q", got)
	}

	maxLen := 200 + len("$AAPL") + 2*len("...")
	if len(got) > maxLen {
		t.Errorf("excerpt length %d exceeds %d: %q", len(got), maxLen, got)
	}
}

func TestExtractContextLeftEdge(t *testing.T) {
	text := "AAPL just announced earnings and the market reaction was " +
		strings.Repeat("very ", 60) + "strong"

	excerpts := ExtractContext(text, "AAPL", 200)
	if len(excerpts) != 1 {
		t.Fatalf("expected 1 excerpt, got %d", len(excerpts))
	}

	got := excerpts[0]
	if strings.HasPrefix(got, "...") {
		t.Errorf("no leading ellipsis expected at text start, got %q", got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected trailing ellipsis, got %q", got)
	}
	// Clipped left windows shift the whole budget rightward.
	if len(got) < 150 {
		t.Errorf("expected the budget shifted right, got only %d chars", len(got))
	}
}

func TestExtractContextRightEdge(t *testing.T) {
	text := strings.Repeat("filler words here ", 30) + "finally they mentioned AAPL"

	excerpts := ExtractContext(text, "AAPL", 200)
	if len(excerpts) != 1 {
		t.Fatalf("expected 1 excerpt, got %d", len(excerpts))
	}

	got := excerpts[0]
	if !strings.HasPrefix(got, "...") {
		t.Errorf("expected leading ellipsis, got %q", got)
	}
	if strings.HasSuffix(got, "...") {
		t.Errorf("no trailing ellipsis expected at text end, got %q", got)
	}
	if !strings.Contains(got, "AAPL") {
		t.Errorf("excerpt must contain the ticker, got %q", got)
	}
}

func TestExtractContextDollarMarker(t *testing.T) {
	text := "going all in on $tsla tomorrow"

	excerpts := ExtractContext(text, "TSLA", 200)
	if len(excerpts) != 1 {
		t.Fatalf("expected exactly 1 excerpt for one occurrence, got %d", len(excerpts))
	}
	if !strings.Contains(strings.ToUpper(excerpts[0]), "TSLA") {
		t.Errorf("excerpt must contain the ticker, got %q", excerpts[0])
	}
}

func TestExtractContextEveryOccurrence(t *testing.T) {
	pad := strings.Repeat("x ", 150)
	text := "GME to the moon " + pad + " holding GME forever " + pad + " $GME yolo"

	excerpts := ExtractContext(text, "GME", 200)
	if len(excerpts) != 3 {
		t.Fatalf("expected 3 excerpts for 3 occurrences, got %d", len(excerpts))
	}
	for i, e := range excerpts {
		if !strings.Contains(strings.ToUpper(e), "GME") {
			t.Errorf("excerpt %d missing ticker: %q", i, e)
		}
	}
}

func TestExtractContextWholeWordBoundary(t *testing.T) {
	// GMEX is a different token; no boundary match for GME inside it.
	excerpts := ExtractContext("GMEX is not the same symbol", "GME", 200)
	if len(excerpts) != 0 {
		t.Errorf("expected no excerpts, got %v", excerpts)
	}
}

func TestExtractContextMultiByteRuneBoundaries(t *testing.T) {
	// A 4-byte rune on both sides of the window edge; the byte-offset
	// window must never cut a rune in half.
	text := strings.Repeat("🚀", 60) + " AAPL to the moon " + strings.Repeat("🚀", 60)

	excerpts := ExtractContext(text, "AAPL", 200)
	if len(excerpts) != 1 {
		t.Fatalf("expected 1 excerpt, got %d", len(excerpts))
	}

	got := excerpts[0]
	if !utf8.ValidString(got) {
		t.Fatalf("excerpt is not valid UTF-8: %q", got)
	}
	if !strings.Contains(got, "AAPL") {
		t.Errorf("excerpt must contain the ticker, got %q", got)
	}
	if !strings.HasPrefix(got, "...") || !strings.HasSuffix(got, "...") {
		t.Errorf("expected ellipses on both clipped sides, got %q", got)
	}
}

func TestExtractContextMultiByteEdges(t *testing.T) {
	// Ticker at the very start and end of emoji-heavy text exercises the
	// edge-shift paths over multi-byte runes.
	for _, text := range []string{
		"TSLA going up " + strings.Repeat("📈", 100),
		strings.Repeat("📉", 100) + " down goes TSLA",
	} {
		for _, e := range ExtractContext(text, "TSLA", 200) {
			if !utf8.ValidString(e) {
				t.Errorf("excerpt is not valid UTF-8: %q", e)
			}
			if !strings.Contains(e, "TSLA") {
				t.Errorf("excerpt must contain the ticker, got %q", e)
			}
		}
	}
}

func TestExtractContextCollapsesWhitespace(t *testing.T) {
	text := "AAPL    has\n\nwild   spacing"

	excerpts := ExtractContext(text, "AAPL", 200)
	if len(excerpts) != 1 {
		t.Fatalf("expected 1 excerpt, got %d", len(excerpts))
	}
	if excerpts[0] != "AAPL has wild spacing" {
		t.Errorf("whitespace not collapsed: %q", excerpts[0])
	}
}
