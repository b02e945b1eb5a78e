// Package valkey implements db.Store on Valkey with the valkey-search module.
// It reuses the Redis driver and overrides the operations valkey-search does not support.
package valkey

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/posedex/internal/db"
	"github.com/kailas-cloud/posedex/internal/db/redis"
)

var _ db.Store = (*Store)(nil)

// Config holds connection parameters for a Valkey store.
type Config = redis.Config

// Store implements db.Store for Valkey.
type Store struct {
	*redis.Store
}

// NewStore creates a Valkey store via rueidis.
func NewStore(cfg Config) (*Store, error) {
	s, err := redis.NewStore(cfg)
	if err != nil {
		return nil, err
	}
	return &Store{Store: s}, nil
}

// Wrap builds a Store around an existing client.
func Wrap(c rueidis.Client) *Store {
	return &Store{Store: redis.Wrap(c)}
}

// SearchCount counts documents via SCAN over the index key prefix,
// because valkey-search rejects FT.SEARCH without a KNN clause.
func (s *Store) SearchCount(ctx context.Context, index string) (int, error) {
	keys, err := s.Scan(ctx, indexToKeyPrefix(index)+"*")
	if err != nil {
		return 0, fmt.Errorf("scan for count: %w", err)
	}
	return len(keys), nil
}

// indexToKeyPrefix converts an index name to its key prefix.
// "yoga:poses:idx" -> "yoga:poses:"
func indexToKeyPrefix(index string) string {
	if strings.HasSuffix(index, ":idx") {
		return strings.TrimSuffix(index, "idx")
	}
	return index + ":"
}
