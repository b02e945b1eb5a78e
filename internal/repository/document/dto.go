package document

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kailas-cloud/posedex/internal/db"
	domdoc "github.com/kailas-cloud/posedex/internal/domain/document"
	"github.com/kailas-cloud/posedex/internal/domain/search/filter"
)

// Hash field names of a stored pose document.
const (
	fieldContent   = "content"
	fieldMetadata  = "metadata"
	fieldEmbedding = "embedding"
)

const tagSeparator = ","

func buildHashFields(doc *domdoc.Document) (map[string]string, error) {
	meta, err := json.Marshal(doc.Metadata())
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}

	fields := map[string]string{
		fieldContent:   doc.Content(),
		fieldMetadata:  string(meta),
		fieldEmbedding: string(db.EncodeVector(doc.Embedding())),
	}

	p := doc.Metadata()
	if p.ExpertiseLevel != "" {
		fields[filter.FieldExpertiseLevel] = p.ExpertiseLevel
	}
	if len(p.PoseType) > 0 {
		fields[filter.FieldPoseType] = strings.Join(p.PoseType, tagSeparator)
	}
	return fields, nil
}
