package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/touchline/goalviz/pkg/core"
)

func TestInterpolate_EmptyInput(t *testing.T) {
	c := Interpolate(nil, 0)

	assert.True(t, c.IsEmpty())
	assert.Equal(t, "", c.PathData())
}

func TestInterpolate_SinglePoint(t *testing.T) {
	c := Interpolate(core.Polyline{{X: 10, Y: 20}}, BallArcOffset)

	assert.True(t, c.IsEmpty())
	assert.Equal(t, "", c.PathData())
}

func TestInterpolate_TwoPoints_TrailStyle(t *testing.T) {
	c := TrailCurve(core.Polyline{{X: 0, Y: 0}, {X: 10, Y: 20}})

	require.Len(t, c.Segments, 1)
	assert.Equal(t, core.Position2D{X: 0, Y: 0}, c.Start)
	assert.Equal(t, core.Position2D{X: 5, Y: 10}, c.Segments[0].Control)
	assert.Equal(t, core.Position2D{X: 10, Y: 20}, c.Segments[0].End)
	assert.Equal(t, "M 0 0 Q 5 10 10 20", c.PathData())
}

func TestInterpolate_TwoPoints_BallStyle(t *testing.T) {
	c := BallCurve(core.Polyline{{X: 0, Y: 100}, {X: 10, Y: 50}})

	require.Len(t, c.Segments, 1)
	assert.Equal(t, core.Position2D{X: 5, Y: 75 + BallArcOffset}, c.Segments[0].Control)
	assert.Equal(t, core.Position2D{X: 10, Y: 50}, c.Segments[0].End)
	assert.Equal(t, "M 0 100 Q 5 55 10 50", c.PathData())
}

func TestInterpolate_BiasOnlyMovesSecondaryAxis(t *testing.T) {
	pts := core.Polyline{{X: 3, Y: 7}, {X: 9, Y: 1}, {X: 12, Y: 12}}
	plain := Interpolate(pts, 0)
	biased := Interpolate(pts, 4.5)

	require.Len(t, biased.Segments, len(plain.Segments))
	for i := range plain.Segments {
		assert.Equal(t, plain.Segments[i].Control.X, biased.Segments[i].Control.X)
		assert.Equal(t, plain.Segments[i].Control.Y+4.5, biased.Segments[i].Control.Y)
		assert.Equal(t, plain.Segments[i].End, biased.Segments[i].End)
	}
}

func TestInterpolate_NPoints_Continuity(t *testing.T) {
	pts := core.Polyline{{X: 0, Y: 0}, {X: 10, Y: 5}, {X: 20, Y: 30}, {X: 15, Y: 60}, {X: 40, Y: 61}}
	c := TrailCurve(pts)

	require.Len(t, c.Segments, len(pts)-1)
	prev := c.Start
	for i, seg := range c.Segments {
		assert.Equal(t, pts[i], prev, "segment %d must start where the previous ended", i)
		assert.Equal(t, pts[i+1], seg.End)
		assert.Equal(t, (pts[i].X+pts[i+1].X)/2, seg.Control.X)
		assert.Equal(t, (pts[i].Y+pts[i+1].Y)/2, seg.Control.Y)
		prev = seg.End
	}
}

func TestInterpolate_Deterministic(t *testing.T) {
	pts := core.Polyline{{X: 1.5, Y: 2.25}, {X: 7, Y: 3}, {X: 9.125, Y: 11}}
	before := pts.Clone()

	a := BallCurve(pts)
	b := BallCurve(pts)

	assert.Equal(t, a, b)
	assert.Equal(t, a.PathData(), b.PathData())
	assert.Equal(t, before, pts, "input must not be modified")
}

func TestPathData_FractionalMidpoints(t *testing.T) {
	c := TrailCurve(core.Polyline{{X: 1, Y: 1}, {X: 2, Y: 4}, {X: 5, Y: 5}})

	assert.Equal(t, "M 1 1 Q 1.5 2.5 2 4 Q 3.5 4.5 5 5", c.PathData())
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "0", FormatFloat(0))
	assert.Equal(t, "12", FormatFloat(12))
	assert.Equal(t, "-3.5", FormatFloat(-3.5))
	assert.Equal(t, "0.125", FormatFloat(0.125))
}
