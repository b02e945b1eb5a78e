package redis

import (
	"context"

	"github.com/kailas-cloud/posedex/internal/db"
)

// CreateIndex issues FT.CREATE for schema.
// A concurrent creator surfaces as db.ErrIndexExists.
func (s *Store) CreateIndex(ctx context.Context, schema *db.Schema) error {
	if err := schema.Validate(); err != nil {
		return err
	}
	cmd := s.client.B().Arbitrary(db.CmdCreate).Args(schema.CreateArgs()...).Build()
	err := s.client.Do(ctx, cmd).Error()
	switch {
	case err == nil:
		return nil
	case serverErrContains(err, "index already exists"):
		return db.ErrIndexExists
	default:
		return &db.Error{Cmd: db.CmdCreate, Target: schema.Index, Err: err}
	}
}

// IndexExists asks FT.INFO about name. An unknown index is (false, nil).
func (s *Store) IndexExists(ctx context.Context, name string) (bool, error) {
	err := s.client.Do(ctx, s.client.B().Arbitrary(db.CmdInfo).Args(name).Build()).Error()
	switch {
	case err == nil:
		return true, nil
	case indexMissing(err):
		return false, nil
	default:
		return false, &db.Error{Cmd: db.CmdInfo, Target: name, Err: err}
	}
}
