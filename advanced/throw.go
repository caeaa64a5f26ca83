package advanced

import "github.com/pkg/errors"

// Threading errors through the elimination loop's inner helpers would only
// ever carry invariant violations, which can't happen unless the loop is
// wrong. Instead, those helpers panic, and the public API recovers to convert
// to an error.

type ReduceError struct {
	error
}

func (e ReduceError) Unwrap() error {
	return e.error
}

// Panic with a ReduceError wrapping ErrIndexOutOfRange.
func fatalf(format string, args ...interface{}) {
	panic(ReduceError{errors.Wrapf(ErrIndexOutOfRange, format, args...)})
}

func HandleReducePanicRecover(r interface{}) error {
	if r != nil {
		if reduceError, ok := r.(ReduceError); ok {
			return reduceError.error
		}
		panic(r)
	}
	return nil
}
