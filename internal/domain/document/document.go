package document

import (
	"fmt"
	"slices"

	"github.com/kailas-cloud/posedex/internal/domain"
	"github.com/kailas-cloud/posedex/internal/domain/pose"
)

// Document is a stored pose: its rendered content, the pose itself as metadata and the embedding.
// Documents are immutable once built.
type Document struct {
	content   string
	metadata  pose.Pose
	embedding []float32
}

// New validates and creates a Document ready to be stored. Storage assigns its id on insert.
// dims is the expected embedding dimensionality (0 skips the check).
func New(content string, metadata pose.Pose, embedding []float32, dims int) (Document, error) {
	if content == "" {
		return Document{}, fmt.Errorf("content is required")
	}
	if len(embedding) == 0 {
		return Document{}, fmt.Errorf("embedding is required")
	}
	if dims > 0 && len(embedding) != dims {
		return Document{}, fmt.Errorf("%w: got %d, want %d", domain.ErrVectorDimMismatch, len(embedding), dims)
	}

	return Document{
		content:   content,
		metadata:  clonePose(metadata),
		embedding: append([]float32(nil), embedding...),
	}, nil
}

// Content returns the document text content.
func (d *Document) Content() string { return d.content }

// Metadata returns the pose record the document was built from.
func (d *Document) Metadata() pose.Pose { return d.metadata }

// Embedding returns the embedding vector.
func (d *Document) Embedding() []float32 { return d.embedding }

func clonePose(p pose.Pose) pose.Pose {
	p.PoseType = slices.Clone(p.PoseType)
	return p
}
