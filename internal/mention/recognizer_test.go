package mention

import (
	"reflect"
	"testing"
)

func testVocab(symbols ...string) map[string]struct{} {
	vocab := make(map[string]struct{})
	for _, s := range symbols {
		vocab[s] = struct{}{}
	}
	return vocab
}

func TestFindMentions(t *testing.T) {
	r := NewRecognizer(testVocab("AAPL", "TSLA", "NVDA", "GME", "T", "A"))

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"plain ticker", "AAPL is doing great today!", []string{"AAPL"}},
		{"dollar marker", "I bought some $TSLA calls", []string{"TSLA"}},
		{"question", "What do you think about NVDA?", []string{"NVDA"}},
		{"single letter in vocabulary", "T seems overvalued", []string{"T"}},
		{"lowercase text", "tsla to the moon", []string{"TSLA"}},
		{"multiple sorted", "TSLA and AAPL both moved", []string{"AAPL", "TSLA"}},
		{"unknown symbol ignored", "HODL forever", nil},
		{"no tickers", "nothing to see here", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.FindMentions(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindMentions(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestFindMentionsDeduplicates(t *testing.T) {
	r := NewRecognizer(testVocab("GME"))

	got := r.FindMentions("GME GME gme $GME")
	if len(got) != 1 || got[0] != "GME" {
		t.Errorf("expected single GME, got %v", got)
	}
}

func TestFindMentionsStopwords(t *testing.T) {
	// "A" is a listed symbol but sits on the static exclusion list,
	// so it is never recognized.
	r := NewRecognizer(testVocab("A", "AAPL"))

	got := r.FindMentions("A good day for AAPL")
	if !reflect.DeepEqual(got, []string{"AAPL"}) {
		t.Errorf("expected stopword A filtered, got %v", got)
	}
}
