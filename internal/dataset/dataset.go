// Package dataset reads and writes the pose catalog JSON file.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kailas-cloud/posedex/internal/domain"
	"github.com/kailas-cloud/posedex/internal/domain/pose"
)

// Load reads a JSON array of poses. A missing file or malformed JSON wraps domain.ErrDatasetInvalid.
func Load(path string) ([]pose.Pose, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the operator
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w: %w", path, err, domain.ErrDatasetInvalid)
	}

	var poses []pose.Pose
	if err := json.Unmarshal(data, &poses); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w: %w", path, err, domain.ErrDatasetInvalid)
	}
	return poses, nil
}

// Save writes poses as indented JSON, creating parent directories as needed.
// The file is written to a temp sibling first and renamed into place.
func Save(path string, poses []pose.Pose) error {
	data, err := json.MarshalIndent(poses, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal dataset: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dataset dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".dataset-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after a successful rename

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write dataset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close dataset: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename dataset into %s: %w", path, err)
	}
	return nil
}
