package mention

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultWindow is the context window character budget around a mention.
const DefaultWindow = 200

// fallbackMargin is the fixed number of characters kept before the match
// when the first windowing pass loses the ticker at a clipped boundary.
const fallbackMargin = 20

// ExtractContext produces one human-readable excerpt per occurrence of
// ticker in text. Occurrences are matched case-insensitively, with or
// without a leading $ marker, on whole-word boundaries. Excerpts are not
// deduplicated even when two occurrences produce identical text.
func ExtractContext(text, ticker string, window int) []string {
	if window <= 0 {
		window = DefaultWindow
	}

	re, err := occurrencePattern(ticker)
	if err != nil {
		return nil
	}

	var excerpts []string
	half := window / 2

	for _, loc := range re.FindAllStringIndex(text, -1) {
		matchStart, matchEnd := loc[0], loc[1]

		// Symmetric window around the match, clipped to text bounds.
		start := max(0, matchStart-half)
		end := min(len(text), matchEnd+half)

		// Clipped at the left edge: shift the full budget rightward.
		if start == 0 {
			end = min(len(text), matchEnd+window)
		}
		// Clipped at the right edge: shift the full budget leftward.
		if end == len(text) {
			start = max(0, matchStart-window)
		}

		excerpt := buildExcerpt(text, start, end)

		// The whitespace collapsing can exclude the ticker when the match
		// sits exactly at a clipped boundary. Recompute once with a fixed
		// narrow margin and accept unconditionally.
		if !containsFold(excerpt, ticker) {
			start = max(0, matchStart-fallbackMargin)
			end = min(len(text), matchEnd+(window-fallbackMargin))
			excerpt = buildExcerpt(text, start, end)
		}

		excerpts = append(excerpts, excerpt)
	}

	return excerpts
}

// occurrencePattern builds the regexp matching one ticker occurrence.
func occurrencePattern(ticker string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?i)\$?\b` + regexp.QuoteMeta(ticker) + `\b`)
}

// buildExcerpt slices, trims, applies ellipsis markers, and collapses
// internal whitespace runs to single spaces. The window offsets are byte
// positions and may land inside a multi-byte rune; snap start forward and
// end backward to rune boundaries so the slice is always valid UTF-8.
func buildExcerpt(text string, start, end int) string {
	for start < len(text) && !utf8.RuneStart(text[start]) {
		start++
	}
	for end > start && end < len(text) && !utf8.RuneStart(text[end]) {
		end--
	}

	excerpt := strings.TrimSpace(text[start:end])

	if start > 0 {
		excerpt = "..." + excerpt
	}
	if end < len(text) {
		excerpt = excerpt + "..."
	}

	return strings.Join(strings.Fields(excerpt), " ")
}

func containsFold(text, ticker string) bool {
	return strings.Contains(strings.ToUpper(text), strings.ToUpper(ticker))
}
