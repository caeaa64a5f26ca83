package advanced

import (
	"strings"

	"github.com/pkg/errors"
)

type Strategy int

const (
	VisvalingamWhyatt Strategy = iota
	Downsampling
)

var strategyNames = map[Strategy]string{
	VisvalingamWhyatt: "Visvalingam-Whyatt",
	Downsampling:      "Downsampling",
}

var strategyAliases = map[string]Strategy{
	"visvalingam-whyatt": VisvalingamWhyatt,
	"vw":                 VisvalingamWhyatt,
	"downsampling":       Downsampling,
	"downsample":         Downsampling,
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Strategies in declaration order.
func Strategies() []Strategy {
	return []Strategy{VisvalingamWhyatt, Downsampling}
}

var ErrUnknownStrategy = errors.New("unknown strategy")

// Case insensitive; accepts either the display name or a short alias.
func ParseStrategy(name string) (Strategy, error) {
	if s, ok := strategyAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s, nil
	}
	return 0, errors.Wrapf(ErrUnknownStrategy, "%q", name)
}

// A Reducer maps a sequence to an order preserving subsequence of n points.
// When n is at least the length of the sequence, the result is an unchanged
// copy with a NoOpWarning attached.
type Reducer interface {
	Strategy() Strategy
	Reduce(points Sequence, n int) (*Reduction, error)
}

type Reduction struct {
	Points Sequence
	// Original index of each surviving point, ascending.
	Kept    []int
	Warning *NoOpWarning
}

func (r *Reduction) IsNoOp() bool {
	return r.Warning != nil
}

func NewReducer(strategy Strategy) (Reducer, error) {
	switch strategy {
	case VisvalingamWhyatt:
		return VWReducer{}, nil
	case Downsampling:
		return Downsampler{}, nil
	}
	return nil, errors.Wrapf(ErrUnknownStrategy, "%d", int(strategy))
}

func noOp(points Sequence, n int) *Reduction {
	kept := make([]int, len(points))
	for i := range kept {
		kept[i] = i
	}
	return &Reduction{
		Points:  points.Copy(),
		Kept:    kept,
		Warning: &NoOpWarning{Target: n, Length: len(points)},
	}
}
