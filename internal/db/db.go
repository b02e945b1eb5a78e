// Package db holds the storage contracts posedex repositories consume:
// pose hashes, the embedding cache and the FT vector index over them.
// The redis and valkey subpackages provide the drivers.
package db

import (
	"context"
	"time"
)

// Store is everything a driver offers. Repositories depend on
// narrower slices of it.
type Store interface {
	Pinger
	HashStore
	KVStore
	IndexManager
	Searcher
	WaitForReady(ctx context.Context, timeout time.Duration) error
	Close()
}

// Pinger is used by the health check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HashStore writes pose hashes and walks keys by pattern.
type HashStore interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// KVStore backs the embedding cache.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// IndexManager creates the per-collection FT index.
type IndexManager interface {
	CreateIndex(ctx context.Context, schema *Schema) error
	IndexExists(ctx context.Context, name string) (bool, error)
}

// Searcher answers KNN and count queries against an FT index.
type Searcher interface {
	SearchKNN(ctx context.Context, q *KNNQuery) (*SearchResult, error)
	SearchCount(ctx context.Context, index string) (int, error)
}
