package db

import (
	"strings"
	"testing"
)

func poseSchema() *Schema {
	return &Schema{
		Index:  "yoga:poses:idx",
		Prefix: "yoga:poses:",
		Tags: []TagAttr{
			{Field: "expertise_level"},
			{Field: "pose_type", Separator: ","},
		},
		Vector: VectorAttr{Field: "embedding", Alias: "vector", Dim: 768, M: 16, EFConstruct: 200},
	}
}

func TestSchema_CreateArgs(t *testing.T) {
	got := strings.Join(poseSchema().CreateArgs(), " ")
	want := "yoga:poses:idx ON HASH PREFIX 1 yoga:poses: SCHEMA " +
		"expertise_level TAG pose_type TAG SEPARATOR , " +
		"embedding AS vector VECTOR HNSW 10 TYPE FLOAT32 DIM 768 DISTANCE_METRIC COSINE M 16 EF_CONSTRUCTION 200"
	if got != want {
		t.Errorf("args mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestSchema_CreateArgsServerDefaults(t *testing.T) {
	s := poseSchema()
	s.Vector.M, s.Vector.EFConstruct = 0, 0
	got := strings.Join(s.CreateArgs(), " ")
	if !strings.HasSuffix(got, "VECTOR HNSW 6 TYPE FLOAT32 DIM 768 DISTANCE_METRIC COSINE") {
		t.Errorf("unexpected vector args: %s", got)
	}
}

func TestSchema_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *Schema)
		wantErr string
	}{
		{"valid", func(*Schema) {}, ""},
		{"empty index", func(s *Schema) { s.Index = "" }, "invalid index name"},
		{"bad index", func(s *Schema) { s.Index = "bad name!" }, "invalid index name"},
		{"no prefix", func(s *Schema) { s.Prefix = "" }, "key prefix"},
		{"no vector field", func(s *Schema) { s.Vector.Field = "" }, "vector field"},
		{"zero dim", func(s *Schema) { s.Vector.Dim = 0 }, "must be positive"},
		{"empty tag", func(s *Schema) { s.Tags = append(s.Tags, TagAttr{}) }, "tag field"},
		{"duplicate tag", func(s *Schema) { s.Tags = append(s.Tags, TagAttr{Field: "pose_type"}) }, "declared twice"},
		{"tag shadows alias", func(s *Schema) { s.Tags = append(s.Tags, TagAttr{Field: "vector"}) }, "declared twice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := poseSchema()
			tt.mutate(s)
			err := s.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidName(t *testing.T) {
	for s, want := range map[string]bool{
		"yoga:poses:idx": true,
		"a-b_c":          true,
		"":               false,
		"with space":     false,
		"star*":          false,
	} {
		if got := validName(s); got != want {
			t.Errorf("validName(%q) = %v, want %v", s, got, want)
		}
	}
}
