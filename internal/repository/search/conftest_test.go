package search

import (
	"context"

	"github.com/kailas-cloud/posedex/internal/db"
)

// knnFunc adapts a function to the store interface.
type knnFunc func(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)

func (f knnFunc) SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error) {
	return f(ctx, q)
}
