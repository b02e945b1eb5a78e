// Package ingest loads the pose dataset into the vector store, one document per pose.
package ingest

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/posedex/internal/dataset"
	domdoc "github.com/kailas-cloud/posedex/internal/domain/document"
	"github.com/kailas-cloud/posedex/internal/domain/pose"
	"github.com/kailas-cloud/posedex/internal/metrics"
)

// Report summarizes an ingestion run.
type Report struct {
	Total  int `json:"total"`
	Stored int `json:"stored"`
	Failed int `json:"failed"`
	// Indexed is the collection size after the run, -1 when it could not be read.
	Indexed int `json:"indexed"`
}

// Service embeds poses and stores them as documents.
type Service struct {
	repo       Repository
	embed      Embedder
	collection string
	dims       int
	logger     *zap.Logger
}

// New creates an ingestion service. dims is the expected embedding length (0 skips the check).
func New(repo Repository, embed Embedder, collection string, dims int, logger *zap.Logger) *Service {
	return &Service{repo: repo, embed: embed, collection: collection, dims: dims, logger: logger}
}

// IngestFile loads the dataset at path and ingests it. A dataset that cannot be read
// aborts the run before anything is written.
func (s *Service) IngestFile(ctx context.Context, path string) (Report, error) {
	poses, err := dataset.Load(path)
	if err != nil {
		return Report{}, err
	}
	s.logger.Info("Dataset loaded", zap.String("path", path), zap.Int("records", len(poses)))
	return s.Ingest(ctx, poses)
}

// Ingest stores every pose sequentially. A record that fails to embed or store is logged
// and skipped. Context cancellation stops the loop and returns the partial report.
func (s *Service) Ingest(ctx context.Context, poses []pose.Pose) (Report, error) {
	rep := Report{Total: len(poses), Indexed: -1}

	if err := s.repo.EnsureIndex(ctx, s.collection); err != nil {
		return rep, fmt.Errorf("ensure index: %w", err)
	}

	for i := range poses {
		if err := ctx.Err(); err != nil {
			return rep, fmt.Errorf("ingest interrupted after %d records: %w", i, err)
		}

		p := &poses[i]
		id, err := s.ingestOne(ctx, p)
		if err != nil {
			rep.Failed++
			metrics.IngestRecordsTotal.WithLabelValues("failed").Inc()
			s.logger.Error("Failed to ingest pose",
				zap.Int("index", i),
				zap.String("name", p.Name),
				zap.Error(err),
			)
			continue
		}

		rep.Stored++
		metrics.IngestRecordsTotal.WithLabelValues("stored").Inc()
		s.logger.Debug("Pose stored", zap.Int("index", i), zap.String("name", p.Name), zap.String("id", id))
	}

	if n, err := s.repo.Count(ctx, s.collection); err != nil {
		s.logger.Warn("Failed to count collection", zap.String("collection", s.collection), zap.Error(err))
	} else {
		rep.Indexed = n
	}

	s.logger.Info("Ingestion finished",
		zap.Int("total", rep.Total),
		zap.Int("stored", rep.Stored),
		zap.Int("failed", rep.Failed),
		zap.Int("indexed", rep.Indexed),
	)
	return rep, nil
}

func (s *Service) ingestOne(ctx context.Context, p *pose.Pose) (string, error) {
	content := p.Content()

	emb, err := s.embed.Embed(ctx, content)
	if err != nil {
		return "", fmt.Errorf("embed: %w", err)
	}

	doc, err := domdoc.New(content, *p, emb.Embedding, s.dims)
	if err != nil {
		return "", fmt.Errorf("build document: %w", err)
	}

	id, err := s.repo.Insert(ctx, s.collection, &doc)
	if err != nil {
		return "", fmt.Errorf("insert: %w", err)
	}
	return id, nil
}
