// Package search answers natural-language pose queries: embed, KNN, project.
package search

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/posedex/internal/domain"
	"github.com/kailas-cloud/posedex/internal/domain/search/request"
	"github.com/kailas-cloud/posedex/internal/domain/search/result"
)

// Service handles pose search over one collection.
type Service struct {
	repo       Repository
	embed      Embedder
	collection string
	dims       int
}

// New creates a search service. dims is the expected query embedding length (0 skips the check).
func New(repo Repository, embed Embedder, collection string, dims int) *Service {
	return &Service{repo: repo, embed: embed, collection: collection, dims: dims}
}

// Search embeds the query and returns at most req.TopK() poses, nearest first.
func (s *Service) Search(ctx context.Context, req *request.Request) ([]result.Result, error) {
	emb, err := s.embed.Embed(ctx, req.Query())
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if s.dims > 0 && len(emb.Embedding) != s.dims {
		return nil, fmt.Errorf("query embedding: %w: got %d, want %d",
			domain.ErrVectorDimMismatch, len(emb.Embedding), s.dims)
	}

	results, err := s.repo.SearchKNN(ctx, s.collection, emb.Embedding, req.Filters(), req.TopK())
	if err != nil {
		return nil, fmt.Errorf("knn search: %w", err)
	}

	if len(results) > req.TopK() {
		results = results[:req.TopK()]
	}
	return results, nil
}
