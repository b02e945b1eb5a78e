package db

import "github.com/kailas-cloud/posedex/internal/domain/search/filter"

// KNNQuery asks an index for the K nearest documents to Vector,
// restricted to those matching every condition in Filters.
type KNNQuery struct {
	IndexName    string
	Filters      filter.Expression
	Vector       []float32
	K            int
	ReturnFields []string // empty returns every stored field
}

// SearchResult holds hits nearest first.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is one hit. Distance is the cosine distance, so 0 means identical direction.
type SearchEntry struct {
	Key      string
	Distance float64
	Fields   map[string]string
}
