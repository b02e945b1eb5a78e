// Package document stores pose documents as hashes behind an FT vector index.
package document

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kailas-cloud/posedex/internal/db"
	"github.com/kailas-cloud/posedex/internal/domain"
	domdoc "github.com/kailas-cloud/posedex/internal/domain/document"
)

// store is the consumer interface for documents (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	CreateIndex(ctx context.Context, schema *db.Schema) error
	IndexExists(ctx context.Context, name string) (bool, error)
	SearchCount(ctx context.Context, index string) (int, error)
}

// Repo implements usecase/ingest.Repository.
type Repo struct {
	store     store
	namespace string
	vectorDim int
	hnsw      HNSWConfig
	newID     func() string
}

// New creates a document repository writing under the given key namespace.
func New(s store, namespace string, vectorDim int) *Repo {
	return &Repo{
		store:     s,
		namespace: namespace,
		vectorDim: vectorDim,
		hnsw:      HNSWConfig{M: 16, EFConstruct: 200},
		newID:     uuid.NewString,
	}
}

// WithHNSW configures HNSW index parameters.
func (r *Repo) WithHNSW(cfg HNSWConfig) *Repo {
	if cfg.M > 0 {
		r.hnsw.M = cfg.M
	}
	if cfg.EFConstruct > 0 {
		r.hnsw.EFConstruct = cfg.EFConstruct
	}
	return r
}

// EnsureIndex creates the collection index unless it already exists.
func (r *Repo) EnsureIndex(ctx context.Context, collection string) error {
	name := indexName(r.namespace, collection)
	exists, err := r.store.IndexExists(ctx, name)
	if err != nil {
		return fmt.Errorf("check index %s: %w", name, err)
	}
	if exists {
		return nil
	}

	schema := poseSchema(r.namespace, collection, r.vectorDim, r.hnsw)
	if err := r.store.CreateIndex(ctx, schema); err != nil && !errors.Is(err, db.ErrIndexExists) {
		return fmt.Errorf("create index %s: %w", name, err)
	}
	return nil
}

// Insert stores the document under a fresh UUID and returns that id.
// There is no uniqueness check: inserting the same pose twice yields two documents.
func (r *Repo) Insert(ctx context.Context, collection string, doc *domdoc.Document) (string, error) {
	if r.vectorDim > 0 && len(doc.Embedding()) != r.vectorDim {
		return "", fmt.Errorf("%w: got %d, want %d", domain.ErrVectorDimMismatch, len(doc.Embedding()), r.vectorDim)
	}

	fields, err := buildHashFields(doc)
	if err != nil {
		return "", err
	}

	id := r.newID()
	key := docKey(r.namespace, collection, id)
	if err := r.store.HSet(ctx, key, fields); err != nil {
		return "", fmt.Errorf("hset %s: %w", key, err)
	}
	return id, nil
}

// Count returns the number of documents stored in the collection.
func (r *Repo) Count(ctx context.Context, collection string) (int, error) {
	n, err := r.store.SearchCount(ctx, indexName(r.namespace, collection))
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}
