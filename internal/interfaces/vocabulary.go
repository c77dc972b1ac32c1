package interfaces

import "context"

// Vocabulary supplies the set of valid ticker symbols, queryable by exact
// string membership.
type Vocabulary interface {
	Load(ctx context.Context) (map[string]struct{}, error)
}
