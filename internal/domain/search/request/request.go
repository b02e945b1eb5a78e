package request

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/posedex/internal/domain"
	"github.com/kailas-cloud/posedex/internal/domain/search/filter"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length.
	MaxQueryLength = 4096
	DefaultTopK    = 3
	MaxTopK        = 100
)

// Request is a validated search query.
type Request struct {
	query   string
	filters filter.Expression
	topK    int
}

// New validates and normalizes search parameters.
// A blank query fails with domain.ErrMissingInput. topK <= 0 falls back to DefaultTopK
// and is clamped to MaxTopK.
func New(query string, filters filter.Expression, topK int) (Request, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Request{}, fmt.Errorf("prompt is required: %w", domain.ErrMissingInput)
	}
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("prompt too long (max %d chars): %w", MaxQueryLength, domain.ErrInvalidInput)
	}
	if topK <= 0 {
		topK = DefaultTopK
	}
	if topK > MaxTopK {
		topK = MaxTopK
	}

	return Request{query: query, filters: filters, topK: topK}, nil
}

// Query returns the search query text.
func (r *Request) Query() string { return r.query }

// Filters returns the pre-filter expression.
func (r *Request) Filters() filter.Expression { return r.filters }

// TopK returns the number of nearest neighbors to retrieve.
func (r *Request) TopK() int { return r.topK }
