package advanced

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Importance of a point is the area of the triangle it forms with its current
// neighbors. The ends of a line are protected, and are never eligible for
// removal.
type Importance struct {
	Area      float64
	Protected bool
}

var protected = Importance{Protected: true}

// Protected importances sort after every area.
func (i Importance) Less(other Importance) bool {
	if i.Protected {
		return false
	}
	if other.Protected {
		return true
	}
	return i.Area < other.Area
}

func (i Importance) String() string {
	if i.Protected {
		return "protected"
	}
	return fmt.Sprintf("%g", i.Area)
}

// Importance of every point in a fresh sequence, where each point's neighbors
// are the adjacent points.
func AllImportances(points Sequence) []Importance {
	importances := make([]Importance, len(points))
	for i := range points {
		importances[i] = PointImportance(points, i)
	}
	return importances
}

// Importance of the point at index within an unreduced sequence.
func PointImportance(points Sequence, index int) Importance {
	if index < 0 || index >= len(points) {
		fatalf("importance lookup at %d in a sequence of %d points", index, len(points))
	}
	if index == 0 || index == len(points)-1 {
		return protected
	}
	return Importance{Area: TriangleArea(points[index-1], points[index], points[index+1])}
}

// A supplied importance buffer has to be shaped like the one AllImportances
// would produce for the same points. The values themselves are trusted.
func validateImportances(points Sequence, importances []Importance) error {
	if len(importances) != len(points) {
		return errors.Wrapf(ErrInvalidShape, "%d importances supplied for %d points", len(importances), len(points))
	}
	for i, importance := range importances {
		end := i == 0 || i == len(points)-1
		switch {
		case end && !importance.Protected:
			return errors.Wrapf(ErrInvalidShape, "endpoint %d is not protected", i)
		case !end && importance.Protected:
			return errors.Wrapf(ErrInvalidShape, "interior point %d is protected", i)
		case !end && (math.IsNaN(importance.Area) || math.IsInf(importance.Area, 0) || importance.Area < 0):
			return errors.Wrapf(ErrInvalidShape, "importance %d has invalid area %g", i, importance.Area)
		}
	}
	return nil
}
