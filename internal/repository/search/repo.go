// Package search runs KNN queries against the pose index and hydrates hits into results.
package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kailas-cloud/posedex/internal/db"
	"github.com/kailas-cloud/posedex/internal/domain/pose"
	"github.com/kailas-cloud/posedex/internal/domain/search/filter"
	"github.com/kailas-cloud/posedex/internal/domain/search/result"
)

const fieldMetadata = "metadata"

// store is the consumer interface for search operations (ISP).
type store interface {
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
}

// Repo implements usecase/search.Repository.
type Repo struct {
	store     store
	namespace string
}

// New creates a search repository reading under the given key namespace.
func New(s store, namespace string) *Repo {
	return &Repo{store: s, namespace: namespace}
}

// SearchKNN returns up to topK poses closest to vector, nearest first.
func (r *Repo) SearchKNN(
	ctx context.Context, collection string,
	vector []float32, filters filter.Expression, topK int,
) ([]result.Result, error) {
	q := &db.KNNQuery{
		IndexName:    fmt.Sprintf("%s:%s:idx", r.namespace, collection),
		Filters:      filters,
		Vector:       vector,
		K:            topK,
		ReturnFields: []string{fieldMetadata},
	}

	sr, err := r.store.SearchKNN(ctx, q)
	if errors.Is(err, db.ErrIndexNotFound) {
		// Nothing ingested yet.
		return []result.Result{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("search knn %s: %w", collection, err)
	}

	return parseKNNResults(sr, topK), nil
}

// parseKNNResults keeps store order. Entries whose metadata cannot be decoded are dropped.
func parseKNNResults(sr *db.SearchResult, topK int) []result.Result {
	if sr == nil || len(sr.Entries) == 0 {
		return []result.Result{}
	}

	results := make([]result.Result, 0, min(len(sr.Entries), topK))
	for _, entry := range sr.Entries {
		if len(results) == topK {
			break
		}
		var p pose.Pose
		if err := json.Unmarshal([]byte(entry.Fields[fieldMetadata]), &p); err != nil {
			continue
		}
		results = append(results, result.FromPose(p, entry.Distance))
	}
	return results
}
