package interfaces

// Scorer maps a text span to a compound polarity score in [-1, 1].
// The engine treats scoring as a black box; any implementation satisfying
// this contract is substitutable.
type Scorer interface {
	Score(text string) (float64, error)
}
