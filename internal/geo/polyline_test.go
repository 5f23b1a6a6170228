package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/touchline/goalviz/pkg/core"
)

func TestToLineString(t *testing.T) {
	ls, err := ToLineString(core.Polyline{{X: 100.5, Y: 200.25}, {X: 300.75, Y: 400.5}, {X: 500, Y: 600}})
	require.NoError(t, err)

	seq := ls.Coordinates()
	require.Equal(t, 3, seq.Length())
	assert.Equal(t, 100.5, seq.GetXY(0).X)
	assert.Equal(t, 600.0, seq.GetXY(2).Y)
}

func TestToLineString_TooFewPoints(t *testing.T) {
	ls, err := ToLineString(core.Polyline{{X: 1, Y: 1}})
	require.NoError(t, err)
	assert.True(t, ls.IsEmpty())
}

func TestToLineString_CoincidentPoints(t *testing.T) {
	_, err := ToLineString(core.Polyline{{X: 5, Y: 5}, {X: 5, Y: 5}})
	assert.Error(t, err)
}

func TestToLineString_NonFinite(t *testing.T) {
	_, err := ToLineString(core.Polyline{{X: 0, Y: 0}, {X: math.Inf(1), Y: 5}})
	assert.Error(t, err)
}

func TestLength(t *testing.T) {
	assert.InDelta(t, 25.0, Length(core.Polyline{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 3, Y: 24}}), 1e-9)
	assert.Equal(t, 0.0, Length(nil))
	assert.Equal(t, 0.0, Length(core.Polyline{{X: 7, Y: 7}, {X: 7, Y: 7}, {X: 7, Y: 7}}))
}

func TestWithinCanvas(t *testing.T) {
	assert.True(t, WithinCanvas(core.Polyline{{X: 0, Y: 0}, {X: core.CanvasWidth, Y: core.CanvasHeight}}))
	assert.True(t, WithinCanvas(nil))
	assert.False(t, WithinCanvas(core.Polyline{{X: 10, Y: 10}, {X: 405, Y: 10}}))
	assert.False(t, WithinCanvas(core.Polyline{{X: -1, Y: 10}}))
	assert.False(t, PointWithinCanvas(core.Position2D{X: 10, Y: 679}))
}
