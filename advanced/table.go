package advanced

import "github.com/pkg/errors"

// Conversions between a Sequence and the two column numeric table used at the
// edges (CSV, JSON, request bodies).

func FromColumns(xs, ys []float64) (Sequence, error) {
	if len(xs) != len(ys) {
		return nil, errors.Wrapf(ErrInvalidShape, "x has %d values but y has %d", len(xs), len(ys))
	}
	points := make(Sequence, len(xs))
	for i := range xs {
		points[i] = Point{xs[i], ys[i]}
		if !points[i].IsFinite() {
			return nil, errors.Wrapf(ErrInvalidShape, "row %d is not numeric", i)
		}
	}
	return points, nil
}

func FromRows(rows [][]float64) (Sequence, error) {
	points := make(Sequence, len(rows))
	for i, row := range rows {
		if len(row) != 2 {
			return nil, errors.Wrapf(ErrInvalidShape, "row %d has %d columns, expected 2", i, len(row))
		}
		points[i] = Point{row[0], row[1]}
		if !points[i].IsFinite() {
			return nil, errors.Wrapf(ErrInvalidShape, "row %d is not numeric", i)
		}
	}
	return points, nil
}

func (s Sequence) Columns() (xs, ys []float64) {
	xs = make([]float64, len(s))
	ys = make([]float64, len(s))
	for i, p := range s {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return xs, ys
}

func (s Sequence) Rows() [][]float64 {
	rows := make([][]float64, len(s))
	for i, p := range s {
		rows[i] = []float64{p.X, p.Y}
	}
	return rows
}
