package analyze

import (
	"errors"
	"fmt"
)

// ErrInvalidTicker rejects a requested ticker before any collaborator
// call is made.
var ErrInvalidTicker = errors.New("invalid ticker symbol")

// maxTickerLen is the longest symbol length accepted in a request.
const maxTickerLen = 5

// ValidateTicker rejects empty or over-long ticker requests.
func ValidateTicker(ticker string) error {
	if ticker == "" {
		return fmt.Errorf("%w: empty", ErrInvalidTicker)
	}
	if len(ticker) > maxTickerLen {
		return fmt.Errorf("%w: %q exceeds %d characters", ErrInvalidTicker, ticker, maxTickerLen)
	}
	return nil
}
