package document

import (
	"context"

	"github.com/kailas-cloud/posedex/internal/db"
)

// fakeStore keeps written hashes in memory. A non-nil on* hook replaces the default behavior.
type fakeStore struct {
	hashes map[string]map[string]string

	onHSet        func(ctx context.Context, key string, fields map[string]string) error
	onCreateIndex func(ctx context.Context, schema *db.Schema) error
	onIndexExists func(ctx context.Context, name string) (bool, error)
	onCount       func(ctx context.Context, index string) (int, error)
}

func (f *fakeStore) HSet(ctx context.Context, key string, fields map[string]string) error {
	if f.onHSet != nil {
		return f.onHSet(ctx, key, fields)
	}
	if f.hashes == nil {
		f.hashes = make(map[string]map[string]string)
	}
	f.hashes[key] = fields
	return nil
}

func (f *fakeStore) CreateIndex(ctx context.Context, schema *db.Schema) error {
	if f.onCreateIndex == nil {
		return nil
	}
	return f.onCreateIndex(ctx, schema)
}

func (f *fakeStore) IndexExists(ctx context.Context, name string) (bool, error) {
	if f.onIndexExists == nil {
		return false, nil
	}
	return f.onIndexExists(ctx, name)
}

func (f *fakeStore) SearchCount(ctx context.Context, index string) (int, error) {
	if f.onCount != nil {
		return f.onCount(ctx, index)
	}
	return len(f.hashes), nil
}
