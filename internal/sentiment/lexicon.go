package sentiment

import (
	"strings"
	"unicode"
)

// LexiconScorer is a deterministic keyword-based compound sentiment
// scorer. It satisfies the engine's Scorer contract without any external
// service; a different implementation can be substituted wherever a
// finer model is available.
type LexiconScorer struct {
	positiveWords    map[string]bool
	negativeWords    map[string]bool
	uncertaintyWords map[string]bool
}

// NewLexiconScorer creates a scorer backed by financial sentiment word
// lists.
func NewLexiconScorer() *LexiconScorer {
	return &LexiconScorer{
		positiveWords:    loadPositiveWords(),
		negativeWords:    loadNegativeWords(),
		uncertaintyWords: loadUncertaintyWords(),
	}
}

// Score returns a compound polarity estimate for text in [-1, 1].
func (s *LexiconScorer) Score(text string) (float64, error) {
	words := tokenize(strings.ToLower(text))
	if len(words) == 0 {
		return 0, nil
	}

	var positive, negative, uncertain int
	for _, word := range words {
		if s.positiveWords[word] {
			positive++
		}
		if s.negativeWords[word] {
			negative++
		}
		if s.uncertaintyWords[word] {
			uncertain++
		}
	}

	total := float64(len(words))
	netRatio := (float64(positive) - float64(negative)) / total

	// Amplify the net ratio; sentiment words are a small fraction of
	// typical text. Hedging language reduces the magnitude.
	compound := netRatio * 10
	uncertainty := clamp(float64(uncertain)/total*20, 0, 1)
	compound *= 1.0 - uncertainty*0.5

	return clamp(compound, -1.0, 1.0), nil
}

// tokenize splits text into alphanumeric words
func tokenize(text string) []string {
	var words []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			current.WriteRune(r)
		} else if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Word lists based on financial sentiment dictionaries
// (Loughran-McDonald financial sentiment word lists)

func loadPositiveWords() map[string]bool {
	words := []string{
		"achieve", "attain", "beat", "beats", "benefit", "better", "breakout",
		"bullish", "buy", "calls", "competitive", "delight", "enhance",
		"excellent", "exceptional", "extraordinary", "favorable", "gain",
		"gains", "good", "great", "grew", "growth", "improve", "improved",
		"improvement", "increasing", "innovation", "innovative", "leader",
		"leading", "moon", "opportunity", "optimal", "optimistic",
		"outperform", "positive", "profit", "profitable", "progress",
		"prosper", "rally", "record", "recovery", "remarkable", "robust",
		"solid", "strength", "strong", "succeed", "success", "successful",
		"superior", "surge", "surpass", "tremendous", "undervalued",
		"upbeat", "upgrade", "upside", "valuable", "winning",
	}
	m := make(map[string]bool)
	for _, w := range words {
		m[w] = true
	}
	return m
}

func loadNegativeWords() map[string]bool {
	words := []string{
		"abandon", "adverse", "bagholder", "bearish", "challenge",
		"challenging", "concern", "concerns", "crash", "crisis", "damage",
		"debt", "decline", "decrease", "deficit", "deteriorate", "difficult",
		"difficulty", "disappoint", "disappointing", "disadvantage",
		"downgrade", "downturn", "drop", "dump", "erode", "fail", "failure",
		"falling", "fear", "fraud", "headwind", "impair", "impairment",
		"inability", "inadequate", "ineffective", "loss", "losses",
		"miss", "missed", "negative", "obstacle", "overvalued", "plunge",
		"poor", "problem", "puts", "recession", "restructuring", "risk",
		"risks", "sell", "selloff", "short", "slow", "slowdown", "slump",
		"tank", "tanked", "underperform", "unfavorable", "unprofitable",
		"volatile", "volatility", "warning", "weak", "weakness", "worse",
		"worsen", "worst",
	}
	m := make(map[string]bool)
	for _, w := range words {
		m[w] = true
	}
	return m
}

func loadUncertaintyWords() map[string]bool {
	words := []string{
		"almost", "anticipate", "anticipates", "appear", "appears",
		"approximately", "assume", "assumes", "believe", "believes",
		"could", "depend", "depending", "estimate", "estimates", "expect",
		"expects", "forecast", "forecasts", "if", "intend", "intends",
		"likely", "may", "maybe", "might", "outlook", "pending", "perhaps",
		"plan", "plans", "possible", "possibly", "potential", "predict",
		"predicts", "project", "projects", "should", "somewhat", "suggest",
		"suggests", "uncertain", "uncertainty", "unclear", "unlikely",
		"variable", "would",
	}
	m := make(map[string]bool)
	for _, w := range words {
		m[w] = true
	}
	return m
}
