// Package curves generates synthetic test curves to reduce.
package curves

import (
	"math"
	"math/rand"
	"sort"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/osuushi/datareduce/advanced"
	"github.com/pkg/errors"
)

type Curve struct {
	Name   string
	Points advanced.Sequence
}

// A Generator builds a curve of m points. Deterministic generators ignore rng.
type Generator func(rng *rand.Rand, m int) advanced.Sequence

var generators = map[string]Generator{
	"random": Random,
	"sine": func(_ *rand.Rand, m int) advanced.Sequence {
		return Sine(m, 3)
	},
	"walk": RandomWalk,
	"steps": func(_ *rand.Rand, m int) advanced.Sequence {
		return Steps(m, 6)
	},
}

var ErrUnknownKind = errors.New("unknown curve kind")

// Kinds of curve Generate accepts, sorted.
func Kinds() []string {
	kinds := make([]string, 0, len(generators))
	for kind := range generators {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Generate a named curve of the given kind. An empty name gets a readable
// random one.
func Generate(kind string, rng *rand.Rand, m int, name string) (Curve, error) {
	generator, ok := generators[strings.ToLower(kind)]
	if !ok {
		return Curve{}, errors.Wrapf(ErrUnknownKind, "%q (expected one of %s)", kind, strings.Join(Kinds(), ", "))
	}
	if m < 0 {
		return Curve{}, errors.Errorf("point count must not be negative, got %d", m)
	}
	if name == "" {
		name = Name()
	}
	return Curve{Name: name, Points: generator(rng, m)}, nil
}

// A readable name like "brave-otter".
func Name() string {
	return petname.Generate(2, "-")
}

// m evenly spaced values from start to stop inclusive.
func Linspace(start, stop float64, m int) []float64 {
	values := make([]float64, m)
	if m == 1 {
		values[0] = start
		return values
	}
	step := (stop - start) / float64(m-1)
	for i := range values {
		values[i] = start + float64(i)*step
	}
	if m > 1 {
		values[m-1] = stop
	}
	return values
}

// Random mixes a scaled sine, a cosine, a line and a parabola over
// x in [-20, 20], with about 5% multiplicative noise per point. Every call
// draws new coefficients, so each curve has a different shape.
func Random(rng *rand.Rand, m int) advanced.Sequence {
	uniform := func(lo, hi float64) float64 {
		return lo + rng.Float64()*(hi-lo)
	}
	sinScale := uniform(-2, 2)
	sinPeriod := uniform(1, 3)
	sinShift := uniform(-5, 5)
	cosScale := uniform(-5, 5)
	cosPeriod := uniform(1, 3)
	cosShift := uniform(-5, 5)
	linearScale := rng.NormFloat64()
	quadScale := rng.NormFloat64() * 0.05

	xs := Linspace(-20, 20, m)
	points := make(advanced.Sequence, m)
	for i, x := range xs {
		noise := 1 + rng.NormFloat64()*0.05
		y := x*sinScale*math.Sin((x-sinShift)/sinPeriod) +
			cosScale*math.Cos((x-cosShift)/cosPeriod) +
			x*linearScale +
			x*x*quadScale
		points[i] = advanced.Point{X: x, Y: y * noise}
	}
	return points
}

// Sine wave with the given number of full periods over x in [0, 2π·periods].
func Sine(m int, periods float64) advanced.Sequence {
	xs := Linspace(0, 2*math.Pi*periods, m)
	points := make(advanced.Sequence, m)
	for i, x := range xs {
		points[i] = advanced.Point{X: x, Y: math.Sin(x)}
	}
	return points
}

// Gaussian random walk with unit x spacing, starting at the origin.
func RandomWalk(rng *rand.Rand, m int) advanced.Sequence {
	points := make(advanced.Sequence, m)
	y := 0.0
	for i := range points {
		if i > 0 {
			y += rng.NormFloat64()
		}
		points[i] = advanced.Point{X: float64(i), Y: y}
	}
	return points
}

// Square wave alternating between 0 and 1, with the given number of flat
// steps. Most of its points are colinear with their neighbors, so it's a good
// check that reduction keeps the corners.
func Steps(m int, steps int) advanced.Sequence {
	if steps < 1 {
		steps = 1
	}
	points := make(advanced.Sequence, m)
	for i := range points {
		level := (i * steps / max(m, 1)) % 2
		points[i] = advanced.Point{X: float64(i), Y: float64(level)}
	}
	return points
}
