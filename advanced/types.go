package advanced

import "math"

type Point struct {
	X float64
	Y float64
}

// Order is load bearing: adjacency in the sequence is what defines the
// triangles used for importance, so a Sequence must never be sorted by value.
type Sequence []Point

type Triangle struct {
	A, B, C Point
}

// Twice the signed area, positive for counterclockwise winding. Colinear
// points give exactly zero when their coordinates are exactly representable.
func (t Triangle) cross() float64 {
	return (t.B.X-t.A.X)*(t.C.Y-t.A.Y) - (t.C.X-t.A.X)*(t.B.Y-t.A.Y)
}

func (t Triangle) SignedArea() float64 {
	return t.cross() / 2
}

// Area is half the magnitude of the determinant
//
//	| ax ay 1 |
//	| bx by 1 |
//	| cx cy 1 |
func (t Triangle) Area() float64 {
	return math.Abs(t.cross()) / 2
}

func TriangleArea(a, b, c Point) float64 {
	return Triangle{a, b, c}.Area()
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Copy returns a sequence that shares no storage with s.
func (s Sequence) Copy() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// Pick the points at the given indexes, in the order given.
func (s Sequence) Pick(indexes []int) Sequence {
	out := make(Sequence, len(indexes))
	for i, index := range indexes {
		out[i] = s[index]
	}
	return out
}

// Bounds of the sequence. An empty sequence has inverted infinite bounds.
func (s Sequence) Bounds() (min, max Point) {
	min = Point{math.Inf(1), math.Inf(1)}
	max = Point{math.Inf(-1), math.Inf(-1)}
	for _, p := range s {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}
