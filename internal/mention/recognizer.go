package mention

import (
	"regexp"
	"sort"
	"strings"
)

// candidatePattern matches an optional $ marker followed by 1-5 uppercase
// letters. Applied to uppercased text so lowercase ticker-like words are
// also caught.
var candidatePattern = regexp.MustCompile(`\$?[A-Z]{1,5}\b`)

// stopwords are common English words excluded from candidate tokens even
// when a matching symbol exists. Single ambiguous letters outside this
// list (e.g. T, U) are accepted whenever the vocabulary contains them;
// that is an accepted source of false positives.
var stopwords = map[string]bool{
	"I": true, "A": true, "THE": true, "IS": true, "IT": true,
	"TO": true, "IN": true, "OF": true, "AND": true, "OR": true,
	"FOR": true, "ON": true, "AT": true, "BE": true, "ARE": true,
	"DO": true, "SO": true, "BY": true, "MY": true, "UP": true,
	"ALL": true, "CAN": true, "NOW": true, "NEW": true, "ANY": true,
}

// Recognizer scans text for valid ticker symbols.
type Recognizer struct {
	vocab map[string]struct{}
}

// NewRecognizer creates a recognizer over the given valid-ticker set.
func NewRecognizer(vocab map[string]struct{}) *Recognizer {
	return &Recognizer{vocab: vocab}
}

// FindMentions returns the deduplicated set of valid tickers mentioned in
// text, in sorted order. Occurrence positions are not carried forward;
// the context extractor recovers them with its own scan.
func (r *Recognizer) FindMentions(text string) []string {
	upper := strings.ToUpper(text)

	seen := make(map[string]bool)
	var found []string

	for _, token := range candidatePattern.FindAllString(upper, -1) {
		token = strings.TrimPrefix(token, "$")
		if stopwords[token] {
			continue
		}
		if _, ok := r.vocab[token]; !ok {
			continue
		}
		if !seen[token] {
			seen[token] = true
			found = append(found, token)
		}
	}

	sort.Strings(found)
	return found
}
