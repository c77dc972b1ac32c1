package interfaces

import (
	"context"

	"ticker-sentiment/internal/types"
)

// Collector fetches documents from one originating collection, e.g. a
// subreddit. Implementations may be slow and may fail; callers fold
// failures into per-source results rather than aborting.
type Collector interface {
	Fetch(ctx context.Context, source string, limit int) ([]types.Document, error)
}
