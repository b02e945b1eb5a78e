package pose

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestContent_AllFields(t *testing.T) {
	p := Pose{
		Name:           "Warrior I",
		SanskritName:   "Virabhadrasana I",
		ExpertiseLevel: "Beginner",
		PoseType:       []string{"Standing", "Balancing"},
		Description:    "Strong standing pose.",
	}

	want := "name: Warrior I\n" +
		"description: Strong standing pose.\n" +
		"sanskrit_name: Virabhadrasana I\n" +
		"expertise_level: Beginner\n" +
		"pose_type: Standing,Balancing"

	if got := p.Content(); got != want {
		t.Errorf("Content() mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestContent_MissingFields(t *testing.T) {
	p := Pose{Name: "Tree"}

	want := "name: Tree\n" +
		"description: \n" +
		"sanskrit_name: \n" +
		"expertise_level: N/A\n" +
		"pose_type: N/A"

	if got := p.Content(); got != want {
		t.Errorf("Content() mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestContent_EmptyPoseTypeSlice(t *testing.T) {
	p := Pose{Name: "Tree", ExpertiseLevel: "Advanced", PoseType: []string{}}

	got := p.Content()
	if want := "expertise_level: Advanced\npose_type:"; !strings.HasSuffix(got, want) {
		t.Errorf("expected content to end with %q, got %q", want, got)
	}
}

func TestContent_EmptyPoseTypeFromJSON(t *testing.T) {
	var p Pose
	if err := json.Unmarshal([]byte(`{"name":"Tree","pose_type":[]}`), &p); err != nil {
		t.Fatal(err)
	}
	if got := p.Content(); strings.Contains(got, "pose_type: N/A") {
		t.Errorf("empty list must not render N/A, got %q", got)
	}
}

func TestIsSentinel(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{" Pose", true},
		{"Pose", false},
		{"Tree Pose", false},
		{"", false},
	}
	for _, tc := range tests {
		p := Pose{Name: tc.name}
		if got := p.IsSentinel(); got != tc.want {
			t.Errorf("IsSentinel(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestPoseTypes(t *testing.T) {
	p := Pose{PoseType: []string{"Seated", "Twist"}}
	if got := p.PoseTypes(); got != "Seated, Twist" {
		t.Errorf("PoseTypes() = %q", got)
	}
}
