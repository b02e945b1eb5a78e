package document

import (
	"github.com/kailas-cloud/posedex/internal/db"
	"github.com/kailas-cloud/posedex/internal/domain/search/filter"
)

// HNSWConfig tunes the vector graph built over a collection.
type HNSWConfig struct {
	M           int
	EFConstruct int
}

// poseSchema lays an index over one collection: expertise level and pose types
// as prefilter tags, the embedding as an HNSW cosine vector queried under "vector".
func poseSchema(namespace, collection string, dim int, hnsw HNSWConfig) *db.Schema {
	return &db.Schema{
		Index:  indexName(namespace, collection),
		Prefix: collectionPrefix(namespace, collection),
		Tags: []db.TagAttr{
			{Field: filter.FieldExpertiseLevel},
			{Field: filter.FieldPoseType, Separator: tagSeparator},
		},
		Vector: db.VectorAttr{
			Field:       fieldEmbedding,
			Alias:       "vector",
			Dim:         dim,
			Metric:      db.MetricCosine,
			M:           hnsw.M,
			EFConstruct: hnsw.EFConstruct,
		},
	}
}
