package advanced

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// Coordinate columns of different lengths, rows that aren't pairs, or
	// values that can't be ordered.
	ErrInvalidShape = errors.New("invalid shape")
	// A line can't be reduced to fewer than three points.
	ErrInvalidTargetCount = errors.New("invalid target count")
	// Importance lookup on a point that isn't in the surviving chain. This is
	// an internal invariant, and reaching it is a bug.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// NoOpWarning is attached to a Reduction when the target count is at least
// the length of the input, so nothing was removed. It is advisory and is
// never returned as an error.
type NoOpWarning struct {
	Target int
	Length int
}

func (w *NoOpWarning) Error() string {
	return fmt.Sprintf("target count %d is not less than the number of points %d, no reduction will be performed", w.Target, w.Length)
}

func invalidTargetCount(n int) error {
	return errors.Wrapf(ErrInvalidTargetCount, "n must be greater than 2, got %d", n)
}
