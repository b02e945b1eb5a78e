// Package filter holds tag pre-filters applied before the KNN step.
package filter

import "fmt"

// MaxConditions is the maximum number of conditions in one expression.
const MaxConditions = 8

// Filterable tag fields of a pose document.
const (
	FieldExpertiseLevel = "expertise_level"
	FieldPoseType       = "pose_type"
)

var allowedFields = map[string]bool{
	FieldExpertiseLevel: true,
	FieldPoseType:       true,
}

// Expression is a conjunction of tag match conditions.
type Expression struct {
	must []Condition
}

// NewExpression validates and creates a filter Expression.
func NewExpression(must ...Condition) (Expression, error) {
	if len(must) > MaxConditions {
		return Expression{}, fmt.Errorf("too many filter conditions (max %d)", MaxConditions)
	}
	return Expression{must: must}, nil
}

// ForPose builds the expression for the optional expertise level and pose type
// selectors. Empty selectors are skipped, so no selectors yield an empty expression.
func ForPose(expertiseLevel, poseType string) (Expression, error) {
	var must []Condition
	for _, sel := range []struct{ key, value string }{
		{FieldExpertiseLevel, expertiseLevel},
		{FieldPoseType, poseType},
	} {
		if sel.value == "" {
			continue
		}
		cond, err := NewMatch(sel.key, sel.value)
		if err != nil {
			return Expression{}, err
		}
		must = append(must, cond)
	}
	return NewExpression(must...)
}

// Must returns the conditions that all have to hold.
func (e Expression) Must() []Condition { return e.must }

// IsEmpty reports whether the expression has no conditions.
func (e Expression) IsEmpty() bool { return len(e.must) == 0 }

// Condition is an exact tag match.
type Condition struct {
	key   string
	match string
}

// NewMatch creates an exact tag match condition on a filterable pose field.
func NewMatch(key, match string) (Condition, error) {
	if key == "" {
		return Condition{}, fmt.Errorf("filter key is required")
	}
	if !allowedFields[key] {
		return Condition{}, fmt.Errorf("unknown filter field %q", key)
	}
	if match == "" {
		return Condition{}, fmt.Errorf("match value is required for key %q", key)
	}
	return Condition{key: key, match: match}, nil
}

// Key returns the field name.
func (c Condition) Key() string { return c.key }

// Match returns the exact match value.
func (c Condition) Match() string { return c.match }
