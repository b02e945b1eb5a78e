package result

import "github.com/kailas-cloud/posedex/internal/domain/pose"

// Result is a single search hit: the display projection of a stored pose.
type Result struct {
	name           string
	description    string
	expertiseLevel string
	photoURL       string
	poseType       []string
	distance       float64
}

// FromPose projects stored pose metadata into a search hit.
// distance is the cosine distance to the query (smaller is closer).
func FromPose(p pose.Pose, distance float64) Result {
	return Result{
		name:           p.Name,
		description:    p.Description,
		expertiseLevel: p.ExpertiseLevel,
		photoURL:       p.PhotoURL,
		poseType:       p.PoseType,
		distance:       distance,
	}
}

// Name returns the pose name.
func (r *Result) Name() string { return r.name }

// Description returns the pose description.
func (r *Result) Description() string { return r.description }

// ExpertiseLevel returns the pose expertise level.
func (r *Result) ExpertiseLevel() string { return r.expertiseLevel }

// PhotoURL returns the pose photo URL.
func (r *Result) PhotoURL() string { return r.photoURL }

// PoseType returns the pose types.
func (r *Result) PoseType() []string { return r.poseType }

// Distance returns the cosine distance to the query vector.
func (r *Result) Distance() float64 { return r.distance }
