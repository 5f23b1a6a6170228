package geo

import (
	"fmt"

	"github.com/peterstace/simplefeatures/geom"
	"github.com/touchline/goalviz/pkg/core"
)

var canvasBox = mustEnvelope(geom.NewEnvelope([]geom.XY{
	{X: 0, Y: 0},
	{X: core.CanvasWidth, Y: core.CanvasHeight},
}))

func mustEnvelope(env geom.Envelope, err error) geom.Envelope {
	if err != nil {
		panic(fmt.Sprintf("canvas envelope: %v", err))
	}
	return env
}

// ToLineString converts a core.Polyline to a geom.LineString.
// Polylines with fewer than two points convert to an empty LineString.
// An error is returned when all points coincide or a coordinate is not finite.
func ToLineString(p core.Polyline) (geom.LineString, error) {
	if len(p) < 2 {
		return geom.LineString{}, nil
	}
	coords := make([]float64, 0, len(p)*2)
	for _, pt := range p {
		coords = append(coords, pt.X, pt.Y)
	}
	ls, err := geom.NewLineString(geom.NewSequence(coords, geom.DimXY))
	if err != nil {
		return geom.LineString{}, fmt.Errorf("invalid polyline: %w", err)
	}
	return ls, nil
}

// Length returns the straight-line length of the polyline. Polylines that
// cannot form a line string have length 0.
func Length(p core.Polyline) float64 {
	ls, err := ToLineString(p)
	if err != nil {
		return 0
	}
	return ls.Length()
}

// WithinCanvas reports whether every point lies inside the logical canvas,
// edges included.
func WithinCanvas(p core.Polyline) bool {
	for _, pt := range p {
		if !PointWithinCanvas(pt) {
			return false
		}
	}
	return true
}

// PointWithinCanvas reports whether a single point lies inside the canvas.
func PointWithinCanvas(pt core.Position2D) bool {
	return canvasBox.Contains(geom.XY{X: pt.X, Y: pt.Y})
}
