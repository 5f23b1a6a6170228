package geo

import (
	"strconv"
	"strings"

	"github.com/touchline/goalviz/pkg/core"
)

// BallArcOffset is added to the Y of every ball-path control point so the
// trajectory arcs above the straight line between waypoints.
const BallArcOffset = -20.0

// QuadSegment is one quadratic Bézier segment. Its start is the end of the
// previous segment (or the curve start).
type QuadSegment struct {
	Control core.Position2D `json:"control"`
	End     core.Position2D `json:"end"`
}

// Curve is a smooth path through a list of waypoints
type Curve struct {
	Start    core.Position2D `json:"start"`
	Segments []QuadSegment   `json:"segments"`
}

// Interpolate builds a curve through points using one quadratic segment per
// consecutive pair. Each control point is the midpoint of its segment with
// bias added to Y. Fewer than two points give an empty curve.
func Interpolate(points core.Polyline, bias float64) Curve {
	if len(points) < 2 {
		return Curve{}
	}

	curve := Curve{
		Start:    points[0],
		Segments: make([]QuadSegment, 0, len(points)-1),
	}
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1], points[i]
		curve.Segments = append(curve.Segments, QuadSegment{
			Control: core.Position2D{
				X: (prev.X + cur.X) / 2,
				Y: (prev.Y+cur.Y)/2 + bias,
			},
			End: cur,
		})
	}
	return curve
}

// TrailCurve is the unbiased curve used for player movement trails.
func TrailCurve(points core.Polyline) Curve {
	return Interpolate(points, 0)
}

// BallCurve is the curve used for the ball trajectory.
func BallCurve(points core.Polyline) Curve {
	return Interpolate(points, BallArcOffset)
}

// IsEmpty reports whether there is nothing to draw.
func (c Curve) IsEmpty() bool {
	return len(c.Segments) == 0
}

// PathData returns the SVG path data for the curve, e.g. "M 0 0 Q 5 0 10 0".
// An empty curve yields "".
func (c Curve) PathData() string {
	if c.IsEmpty() {
		return ""
	}

	var b strings.Builder
	b.WriteString("M ")
	writePoint(&b, c.Start)
	for _, seg := range c.Segments {
		b.WriteString(" Q ")
		writePoint(&b, seg.Control)
		b.WriteByte(' ')
		writePoint(&b, seg.End)
	}
	return b.String()
}

// FormatFloat formats a coordinate with the shortest exact representation.
func FormatFloat(v float64) string {
	if v == 0 {
		// avoid "-0"
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writePoint(b *strings.Builder, p core.Position2D) {
	b.WriteString(FormatFloat(p.X))
	b.WriteByte(' ')
	b.WriteString(FormatFloat(p.Y))
}
