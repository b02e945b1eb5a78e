package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kailas-cloud/posedex/internal/domain"
	"github.com/kailas-cloud/posedex/internal/domain/pose"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poses.json")
	raw := `[
  {"name":"Tree Pose","sanskrit_name":"Vrksasana","expertise_level":"Beginner",
   "pose_type":["Standing","Balancing"],"photo_url":"https://x/tree.jpg","extra":"ignored"},
  {"name":" Pose"}
]`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}

	poses, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(poses) != 2 {
		t.Fatalf("expected 2 poses, got %d", len(poses))
	}
	if poses[0].SanskritName != "Vrksasana" || len(poses[0].PoseType) != 2 {
		t.Errorf("unexpected first pose: %+v", poses[0])
	}
	if !poses[1].IsSentinel() {
		t.Errorf("second pose should be the sentinel: %+v", poses[1])
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"not":"an array"`), 0o600); err != nil {
		t.Fatal(err)
	}

	for name, path := range map[string]string{
		"missing": filepath.Join(dir, "nope.json"),
		"invalid": bad,
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(path); !errors.Is(err, domain.ErrDatasetInvalid) {
				t.Fatalf("expected ErrDatasetInvalid, got %v", err)
			}
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "poses.json")
	in := []pose.Pose{{Name: "Crow Pose", Description: "Arm balance.", PoseType: []string{"Arm Balance"}}}

	if err := Save(path, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 1 || out[0].Description != "Arm balance." {
		t.Errorf("round trip mismatch: %+v", out)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
}
