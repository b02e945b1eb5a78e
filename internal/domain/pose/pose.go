// Package pose holds the yoga pose record and its text representation.
package pose

import "strings"

// SentinelName marks placeholder records in the raw dataset. They never get a generated description.
const SentinelName = " Pose"

// notAvailable is rendered for a missing expertise level or pose type.
const notAvailable = "N/A"

// Pose is a single catalog record. Field names follow the dataset JSON.
type Pose struct {
	Name           string   `json:"name"`
	SanskritName   string   `json:"sanskrit_name"`
	ExpertiseLevel string   `json:"expertise_level"`
	PoseType       []string `json:"pose_type"`
	Description    string   `json:"description"`
	PhotoURL       string   `json:"photo_url"`
}

// IsSentinel reports whether the record is a placeholder entry.
func (p *Pose) IsSentinel() bool {
	return p.Name == SentinelName
}

// Content renders the text that is embedded and stored alongside the record.
// Empty name, description and sanskrit name render as "", while an empty expertise level
// or a missing pose type renders as "N/A". A present but empty pose type list renders as "".
// Stored documents depend on this exact layout.
func (p *Pose) Content() string {
	lines := []string{
		"name: " + p.Name,
		"description: " + p.Description,
		"sanskrit_name: " + p.SanskritName,
		"expertise_level: " + orNotAvailable(p.ExpertiseLevel),
		"pose_type: " + p.poseTypeContent(),
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func (p *Pose) poseTypeContent() string {
	if p.PoseType == nil {
		return notAvailable
	}
	return strings.Join(p.PoseType, ",")
}

// PoseTypes returns the pose types joined for prompts and display.
func (p *Pose) PoseTypes() string {
	return strings.Join(p.PoseType, ", ")
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
