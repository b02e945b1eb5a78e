package ingest

import (
	"context"

	"github.com/kailas-cloud/posedex/internal/domain"
	domdoc "github.com/kailas-cloud/posedex/internal/domain/document"
)

// Repository defines the storage contract for ingestion.
type Repository interface {
	EnsureIndex(ctx context.Context, collection string) error
	Insert(ctx context.Context, collection string, doc *domdoc.Document) (string, error)
	Count(ctx context.Context, collection string) (int, error)
}

// Embedder vectorizes text into embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
