// Shape preserving point reduction for ordered 2D sequences.
//
// This package shrinks a sampled curve or time series to a caller chosen
// number of points. Visvalingam-Whyatt elimination keeps the geometrically
// salient points, while plain downsampling keeps points evenly spaced by
// index. Both keep the first and last point and preserve order.
package datareduce

import "github.com/osuushi/datareduce/advanced"

type Point = advanced.Point
type Sequence = advanced.Sequence
type Strategy = advanced.Strategy
type Reducer = advanced.Reducer
type Reduction = advanced.Reduction
type NoOpWarning = advanced.NoOpWarning

const (
	VisvalingamWhyatt = advanced.VisvalingamWhyatt
	Downsampling      = advanced.Downsampling
)

var (
	ErrInvalidShape       = advanced.ErrInvalidShape
	ErrInvalidTargetCount = advanced.ErrInvalidTargetCount
	ErrIndexOutOfRange    = advanced.ErrIndexOutOfRange
	ErrUnknownStrategy    = advanced.ErrUnknownStrategy
)

// Reduce points to n points with the given strategy.
//
// n must be greater than 2. If n is at least len(points), the result is an
// unchanged copy and its Warning is set; this is not an error.
func Reduce(strategy Strategy, points []Point, n int) (result *Reduction, err error) {
	defer func() {
		recoveredErr := advanced.HandleReducePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	reducer, err := advanced.NewReducer(strategy)
	if err != nil {
		return nil, err
	}
	return reducer.Reduce(Sequence(points), n)
}

// Same as Reduce, but for a pair of coordinate columns, which must be the
// same length.
func ReduceColumns(strategy Strategy, xs, ys []float64, n int) (rxs, rys []float64, warning *NoOpWarning, err error) {
	points, err := advanced.FromColumns(xs, ys)
	if err != nil {
		return nil, nil, nil, err
	}
	result, err := Reduce(strategy, points, n)
	if err != nil {
		return nil, nil, nil, err
	}
	rxs, rys = result.Points.Columns()
	return rxs, rys, result.Warning, nil
}

// NewReducer returns the reducer for a strategy.
func NewReducer(strategy Strategy) (Reducer, error) {
	return advanced.NewReducer(strategy)
}

// FromColumns pairs up coordinate columns into a Sequence.
func FromColumns(xs, ys []float64) (Sequence, error) {
	return advanced.FromColumns(xs, ys)
}

func ParseStrategy(name string) (Strategy, error) {
	return advanced.ParseStrategy(name)
}
