package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrategy(t *testing.T) {
	cases := map[string]Strategy{
		"Visvalingam-Whyatt": VisvalingamWhyatt,
		"vw":                 VisvalingamWhyatt,
		" VW ":               VisvalingamWhyatt,
		"Downsampling":       Downsampling,
		"downsample":         Downsampling,
	}
	for name, expected := range cases {
		actual, err := ParseStrategy(name)
		require.NoError(t, err, name)
		assert.Equal(t, expected, actual)
	}

	_, err := ParseStrategy("rdp")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "Visvalingam-Whyatt", VisvalingamWhyatt.String())
	assert.Equal(t, "Downsampling", Downsampling.String())
	assert.Equal(t, "Unknown", Strategy(9).String())
}

func TestNewReducer(t *testing.T) {
	for _, strategy := range Strategies() {
		reducer, err := NewReducer(strategy)
		require.NoError(t, err)
		assert.Equal(t, strategy, reducer.Strategy())

		// Shared contract
		points := LoadFixture("coastline")
		result, err := reducer.Reduce(points, 8)
		require.NoError(t, err)
		assertValidReduction(t, points, 8, result)
		assert.Equal(t, points[0], result.Points[0])
		assert.Equal(t, points[len(points)-1], result.Points[7])

		_, err = reducer.Reduce(points, 2)
		assert.ErrorIs(t, err, ErrInvalidTargetCount)

		result, err = reducer.Reduce(points, len(points))
		require.NoError(t, err)
		assert.True(t, result.IsNoOp())
	}

	_, err := NewReducer(Strategy(-1))
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}
