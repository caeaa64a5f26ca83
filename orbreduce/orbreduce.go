// Package orbreduce exposes reducers as an orb.Simplifier, so they can be
// dropped into code that already simplifies orb geometries, such as
// mvt.Layers.Simplify.
package orbreduce

import (
	"github.com/osuushi/datareduce/advanced"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

var _ orb.Simplifier = &Simplifier{}

// Simplifier reduces every line in a geometry to at most Target points.
// Lines that are already short enough are left alone. Rings keep at least
// four points so they stay closed and non-degenerate.
type Simplifier struct {
	Reducer advanced.Reducer
	Target  int
}

func New(reducer advanced.Reducer, target int) (*Simplifier, error) {
	if target <= 2 {
		return nil, errors.Wrapf(advanced.ErrInvalidTargetCount, "n must be greater than 2, got %d", target)
	}
	if reducer == nil {
		return nil, errors.New("nil reducer")
	}
	return &Simplifier{Reducer: reducer, Target: target}, nil
}

// Visvalingam-Whyatt reduction to target points.
func VisvalingamWhyatt(target int) (*Simplifier, error) {
	return New(advanced.VWReducer{}, target)
}

// Index downsampling to target points.
func Downsample(target int) (*Simplifier, error) {
	return New(advanced.Downsampler{}, target)
}

func (s *Simplifier) reduce(points []orb.Point, target int) []orb.Point {
	if len(points) <= target {
		return points
	}
	sequence := make(advanced.Sequence, len(points))
	for i, p := range points {
		sequence[i] = advanced.Point{X: p[0], Y: p[1]}
	}
	result, err := s.Reducer.Reduce(sequence, target)
	if err != nil {
		// orb simplifiers have no error path. Leave the line untouched rather
		// than drop it.
		return points
	}
	out := make([]orb.Point, len(result.Kept))
	for i, index := range result.Kept {
		out[i] = points[index]
	}
	return out
}

// Simplify will run the reduction for any geometry type.
func (s *Simplifier) Simplify(g orb.Geometry) orb.Geometry {
	if g == nil {
		return nil
	}

	switch g := g.(type) {
	case orb.Point, orb.MultiPoint, orb.Bound:
		return g
	case orb.LineString:
		return s.LineString(g)
	case orb.MultiLineString:
		return s.MultiLineString(g)
	case orb.Ring:
		return s.Ring(g)
	case orb.Polygon:
		return s.Polygon(g)
	case orb.MultiPolygon:
		return s.MultiPolygon(g)
	case orb.Collection:
		return s.Collection(g)
	}

	panic("unsupported type")
}

func (s *Simplifier) LineString(ls orb.LineString) orb.LineString {
	return orb.LineString(s.reduce(ls, s.Target))
}

func (s *Simplifier) MultiLineString(mls orb.MultiLineString) orb.MultiLineString {
	out := make(orb.MultiLineString, len(mls))
	for i := range mls {
		out[i] = s.LineString(mls[i])
	}
	return out
}

// The closing point is the last point, so both ends of the ring survive any
// reduction and it stays closed.
func (s *Simplifier) Ring(r orb.Ring) orb.Ring {
	return orb.Ring(s.reduce(r, max(s.Target, 4)))
}

func (s *Simplifier) Polygon(p orb.Polygon) orb.Polygon {
	out := make(orb.Polygon, len(p))
	for i := range p {
		out[i] = s.Ring(p[i])
	}
	return out
}

func (s *Simplifier) MultiPolygon(mp orb.MultiPolygon) orb.MultiPolygon {
	out := make(orb.MultiPolygon, len(mp))
	for i := range mp {
		out[i] = s.Polygon(mp[i])
	}
	return out
}

func (s *Simplifier) Collection(c orb.Collection) orb.Collection {
	out := make(orb.Collection, len(c))
	for i := range c {
		out[i] = s.Simplify(c[i])
	}
	return out
}
