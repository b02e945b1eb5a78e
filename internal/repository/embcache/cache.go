// Package embcache memoizes query embeddings in the key-value store so a
// repeated search prompt skips the provider round trip.
package embcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/posedex/internal/db"
	"github.com/kailas-cloud/posedex/internal/domain"
)

type kv interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Options configures the cache.
type Options struct {
	// Namespace is the key namespace; entries live under <Namespace>:emb_cache:<sha256>.
	Namespace string
	// Model and Dimensions are hashed into the key so a model switch never serves old vectors.
	Model      string
	Dimensions int
	// TTL of one entry. Zero keeps entries forever.
	TTL time.Duration
	// Lookups counts hits and misses by a "result" label. Optional.
	Lookups *prometheus.CounterVec
}

// Embedder wraps another domain.Embedder. Cache failures are logged and never fail a call.
type Embedder struct {
	next   domain.Embedder
	kv     kv
	opts   Options
	logger *zap.Logger
}

var _ domain.Embedder = (*Embedder)(nil)

// New wraps next with a cache backed by store.
func New(next domain.Embedder, store kv, opts Options, logger *zap.Logger) *Embedder {
	return &Embedder{next: next, kv: store, opts: opts, logger: logger}
}

// Embed serves text from the cache when possible. A hit carries no token counts.
func (e *Embedder) Embed(ctx context.Context, text string) (domain.EmbeddingResult, error) {
	key := e.key(text)

	if vec := e.lookup(ctx, key); vec != nil {
		e.count("hit")
		return domain.EmbeddingResult{Embedding: vec}, nil
	}
	e.count("miss")

	res, err := e.next.Embed(ctx, text)
	if err != nil {
		return domain.EmbeddingResult{}, fmt.Errorf("embed text: %w", err)
	}
	if err := e.kv.SetWithTTL(ctx, key, db.EncodeVector(res.Embedding), e.opts.TTL); err != nil {
		e.logger.Warn("Embedding cache write failed", zap.String("key", key), zap.Error(err))
	}
	return res, nil
}

func (e *Embedder) key(text string) string {
	sum := sha256.Sum256([]byte(e.opts.Model + "\x00" + strconv.Itoa(e.opts.Dimensions) + "\x00" + text))
	return e.opts.Namespace + ":emb_cache:" + hex.EncodeToString(sum[:])
}

// lookup returns nil on a miss, an unreadable entry, or a store error.
func (e *Embedder) lookup(ctx context.Context, key string) []float32 {
	raw, err := e.kv.Get(ctx, key)
	switch {
	case errors.Is(err, db.ErrKeyNotFound):
		return nil
	case err != nil:
		e.logger.Warn("Embedding cache read failed", zap.String("key", key), zap.Error(err))
		return nil
	case len(raw) == 0:
		return nil
	}

	vec, err := db.DecodeVector(raw)
	if err != nil {
		e.logger.Warn("Discarding corrupt cached embedding", zap.String("key", key), zap.Error(err))
		return nil
	}
	return vec
}

func (e *Embedder) count(result string) {
	if e.opts.Lookups != nil {
		e.opts.Lookups.WithLabelValues(result).Inc()
	}
}
