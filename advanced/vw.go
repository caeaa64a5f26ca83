package advanced

import "github.com/pkg/errors"

// Visvalingam-Whyatt line simplification, after "Line generalisation by
// repeated elimination of points" (Visvalingam and Whyatt, 1993).
//
// Each interior point is scored by the area of the triangle it makes with its
// surviving neighbors. The point with the smallest area is removed, its two
// neighbors are rescored, and this repeats until n points remain. Ties go to
// the lowest index. The first and last points are never removed.
type VWReducer struct{}

func (VWReducer) Strategy() Strategy {
	return VisvalingamWhyatt
}

func (r VWReducer) Reduce(points Sequence, n int) (*Reduction, error) {
	return r.reduce(points, n, nil)
}

// Like Reduce, but starts from importances the caller already has, usually
// from AllImportances on the same points. The buffer must have one entry per
// point with only the endpoints protected, and it is never modified.
func (r VWReducer) ReduceWithImportances(points Sequence, n int, importances []Importance) (*Reduction, error) {
	if importances == nil {
		return nil, errors.Wrap(ErrInvalidShape, "nil importances")
	}
	return r.reduce(points, n, importances)
}

// Rank returns the interior indexes of points in the order they would be
// eliminated. Reducing to n points removes exactly the first len(points)-n
// entries, so a single ranking answers every target size.
func (VWReducer) Rank(points Sequence) (order []int, err error) {
	defer func() {
		if recoveredErr := HandleReducePanicRecover(recover()); recoveredErr != nil {
			order = nil
			err = recoveredErr
		}
	}()
	if err := checkFinite(points); err != nil {
		return nil, err
	}
	if len(points) < 3 {
		return []int{}, nil
	}
	e := newEliminator(points, AllImportances(points))
	return e.eliminate(len(points) - 2), nil
}

func (VWReducer) reduce(points Sequence, n int, importances []Importance) (result *Reduction, err error) {
	defer func() {
		if recoveredErr := HandleReducePanicRecover(recover()); recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	if n <= 2 {
		return nil, invalidTargetCount(n)
	}
	if err := checkFinite(points); err != nil {
		return nil, err
	}
	if importances != nil {
		if err := validateImportances(points, importances); err != nil {
			return nil, err
		}
	}
	if n >= len(points) {
		return noOp(points, n), nil
	}

	if importances == nil {
		importances = AllImportances(points)
	} else {
		importances = append([]Importance(nil), importances...)
	}

	e := newEliminator(points, importances)
	e.eliminate(len(points) - n)
	kept := e.chain.survivors()
	return &Reduction{Points: points.Pick(kept), Kept: kept}, nil
}

func checkFinite(points Sequence) error {
	for i, p := range points {
		if !p.IsFinite() {
			return errors.Wrapf(ErrInvalidShape, "point %d (%g, %g) is not finite", i, p.X, p.Y)
		}
	}
	return nil
}

// Working state of one reduction. It owns its importances and is discarded
// when the call returns.
type eliminator struct {
	points      Sequence
	importances []Importance
	chain       *chain
	queue       *importanceQueue
}

func newEliminator(points Sequence, importances []Importance) *eliminator {
	return &eliminator{
		points:      points,
		importances: importances,
		chain:       newChain(len(points)),
		queue:       newImportanceQueue(importances),
	}
}

// Remove count points, returning them in the order they went.
func (e *eliminator) eliminate(count int) []int {
	removed := make([]int, 0, count)
	for len(removed) < count {
		i := e.queue.popMin()
		left, right := e.chain.remove(i)
		e.refresh(left)
		e.refresh(right)
		removed = append(removed, i)
	}
	return removed
}

// Importance of a surviving point given its current neighbors.
func (e *eliminator) importance(i int) Importance {
	left, right := e.chain.neighbors(i)
	if left == noNeighbor || right == noNeighbor {
		return protected
	}
	return Importance{Area: TriangleArea(e.points[left], e.points[i], e.points[right])}
}

func (e *eliminator) refresh(i int) {
	if i == noNeighbor {
		return
	}
	e.importances[i] = e.importance(i)
	e.queue.update(i)
}
