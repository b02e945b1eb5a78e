package db

import (
	"errors"
	"fmt"
	"strconv"
)

// MetricCosine is the only distance metric posedex indexes with.
const MetricCosine = "COSINE"

// Schema is the FT index laid over one collection of pose hashes:
// a few TAG attributes for prefilters plus one HNSW vector attribute.
type Schema struct {
	Index  string
	Prefix string
	Tags   []TagAttr
	Vector VectorAttr
}

// TagAttr is a TAG attribute. An empty Separator keeps the server default.
type TagAttr struct {
	Field     string
	Separator string
}

// VectorAttr is the FLOAT32 HNSW attribute targeted by KNN queries.
// Zero M or EFConstruct leaves the server default in place.
type VectorAttr struct {
	Field       string
	Alias       string
	Dim         int
	Metric      string
	M           int
	EFConstruct int
}

func (v VectorAttr) name() string {
	if v.Alias != "" {
		return v.Alias
	}
	return v.Field
}

// Validate rejects schemas the server would refuse or misinterpret.
func (s *Schema) Validate() error {
	if !validName(s.Index) {
		return fmt.Errorf("schema: invalid index name %q", s.Index)
	}
	if s.Prefix == "" {
		return errors.New("schema: key prefix is required")
	}
	if s.Vector.Field == "" {
		return errors.New("schema: vector field is required")
	}
	if s.Vector.Dim <= 0 {
		return fmt.Errorf("schema: vector dimension must be positive, got %d", s.Vector.Dim)
	}

	taken := map[string]bool{s.Vector.name(): true}
	for _, t := range s.Tags {
		if t.Field == "" {
			return errors.New("schema: tag field is required")
		}
		if taken[t.Field] {
			return fmt.Errorf("schema: attribute %q declared twice", t.Field)
		}
		taken[t.Field] = true
	}
	return nil
}

// CreateArgs renders everything after the FT.CREATE keyword.
func (s *Schema) CreateArgs() []string {
	args := []string{s.Index, "ON", "HASH", "PREFIX", "1", s.Prefix, "SCHEMA"}
	for _, t := range s.Tags {
		args = append(args, t.Field, "TAG")
		if t.Separator != "" {
			args = append(args, "SEPARATOR", t.Separator)
		}
	}

	v := s.Vector
	args = append(args, v.Field)
	if v.Alias != "" {
		args = append(args, "AS", v.Alias)
	}
	metric := v.Metric
	if metric == "" {
		metric = MetricCosine
	}
	params := []string{"TYPE", "FLOAT32", "DIM", strconv.Itoa(v.Dim), "DISTANCE_METRIC", metric}
	if v.M > 0 {
		params = append(params, "M", strconv.Itoa(v.M))
	}
	if v.EFConstruct > 0 {
		params = append(params, "EF_CONSTRUCTION", strconv.Itoa(v.EFConstruct))
	}
	args = append(args, "VECTOR", "HNSW", strconv.Itoa(len(params)))
	return append(args, params...)
}

// validName accepts [A-Za-z0-9_:-]+, the alphabet used for keys and index names.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '_', r == ':', r == '-':
		default:
			return false
		}
	}
	return true
}
