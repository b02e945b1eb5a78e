package domain

import "context"

// DefaultEmbeddingDimensions is the output size of text-embedding-004 and -005.
const DefaultEmbeddingDimensions = 768

// Embedder maps text into the vector space poses are indexed in.
// Ingestion and search must use the same model.
type Embedder interface {
	Embed(ctx context.Context, text string) (EmbeddingResult, error)
}

// EmbeddingResult is one vector plus the tokens billed for it.
// Token counts are zero when the vector came from a cache.
type EmbeddingResult struct {
	Embedding    []float32
	PromptTokens int
	TotalTokens  int
}

// HealthChecker is implemented by providers that can be probed cheaply.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Generator writes free text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Speaker renders text as WAV audio.
type Speaker interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
