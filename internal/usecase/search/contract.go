package search

import (
	"context"

	"github.com/kailas-cloud/posedex/internal/domain"
	"github.com/kailas-cloud/posedex/internal/domain/search/filter"
	"github.com/kailas-cloud/posedex/internal/domain/search/result"
)

// Repository returns up to topK poses of a collection nearest to vector,
// nearest first, restricted by filters.
type Repository interface {
	SearchKNN(
		ctx context.Context, collection string,
		vector []float32, filters filter.Expression, topK int,
	) ([]result.Result, error)
}

// Embedder turns the user's prompt into a query vector.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
