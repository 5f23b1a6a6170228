// Package pitch draws the fixed field markings on the logical canvas.
// The pitch is vertical: one goal at the top edge, one at the bottom.
package pitch

import (
	"fmt"
	"math"

	"github.com/touchline/goalviz/internal/geo"
	"github.com/touchline/goalviz/internal/scene"
	"github.com/touchline/goalviz/pkg/core"
)

// Field geometry in canvas units.
const (
	Margin = 12.0

	Left   = Margin
	Top    = Margin
	Right  = core.CanvasWidth - Margin
	Bottom = core.CanvasHeight - Margin
	MidX   = core.CanvasWidth / 2
	MidY   = core.CanvasHeight / 2

	CentreCircleRadius = 50.0
	SpotRadius         = 2.0

	PenaltyBoxWidth = 220.0
	PenaltyBoxDepth = 90.0
	GoalAreaWidth   = 100.0
	GoalAreaDepth   = 30.0
	PenaltySpotDist = 60.0
	PenaltyArcRad   = 50.0

	GoalWidth   = 44.0
	GoalDepth   = 8.0
	CornerArc   = 6.0
	LineWidth   = 1.5
	LineOpacity = 0.9
)

// Elements returns the pitch markings stroked with tint, all in the pitch
// layer and in a fixed order.
func Elements(tint string) []scene.Element {
	line := scene.Style{
		Stroke:        tint,
		StrokeWidth:   LineWidth,
		StrokeOpacity: LineOpacity,
		Fill:          "none",
	}
	spot := scene.Style{Fill: tint, FillOpacity: LineOpacity}

	els := []scene.Element{
		rect("pitch:outline", Left, Top, Right-Left, Bottom-Top, line),
		{
			Kind:  scene.KindLine,
			Layer: scene.LayerPitch,
			ID:    "pitch:halfway",
			From:  core.Position2D{X: Left, Y: MidY},
			To:    core.Position2D{X: Right, Y: MidY},
			Style: line,
		},
		circle("pitch:centre-circle", MidX, MidY, CentreCircleRadius, line),
		circle("pitch:centre-spot", MidX, MidY, SpotRadius, spot),
	}

	els = append(els, end("top", Top, 1, line, spot)...)
	els = append(els, end("bottom", Bottom, -1, line, spot)...)
	els = append(els, corners(line)...)
	return els
}

// end draws the markings at one goal line. dir is +1 when the field extends
// downward from goalLine, -1 when it extends upward.
func end(name string, goalLine, dir float64, line, spot scene.Style) []scene.Element {
	boxX := MidX - PenaltyBoxWidth/2
	areaX := MidX - GoalAreaWidth/2
	goalX := MidX - GoalWidth/2

	boxY, areaY, goalY := goalLine, goalLine, goalLine-GoalDepth
	if dir < 0 {
		boxY = goalLine - PenaltyBoxDepth
		areaY = goalLine - GoalAreaDepth
		goalY = goalLine
	}

	spotY := goalLine + dir*PenaltySpotDist
	boxEdge := goalLine + dir*PenaltyBoxDepth

	// The arc is the part of the penalty-spot circle outside the box.
	dy := (boxEdge - spotY) * dir
	dx := arcHalfChord(PenaltyArcRad, dy)
	sweep := 0
	if dir < 0 {
		sweep = 1
	}
	arc := fmt.Sprintf("M %s %s A %s %s 0 0 %d %s %s",
		geo.FormatFloat(MidX-dx), geo.FormatFloat(boxEdge),
		geo.FormatFloat(PenaltyArcRad), geo.FormatFloat(PenaltyArcRad),
		sweep,
		geo.FormatFloat(MidX+dx), geo.FormatFloat(boxEdge),
	)

	return []scene.Element{
		rect("pitch:"+name+"-penalty-box", boxX, boxY, PenaltyBoxWidth, PenaltyBoxDepth, line),
		rect("pitch:"+name+"-goal-area", areaX, areaY, GoalAreaWidth, GoalAreaDepth, line),
		circle("pitch:"+name+"-penalty-spot", MidX, spotY, SpotRadius, spot),
		{Kind: scene.KindPath, Layer: scene.LayerPitch, ID: "pitch:" + name + "-penalty-arc", Path: arc, Style: line},
		rect("pitch:"+name+"-goal", goalX, goalY, GoalWidth, GoalDepth, line),
	}
}

func corners(line scene.Style) []scene.Element {
	type corner struct {
		name   string
		x, y   float64
		dx, dy float64
		sweep  int
	}
	cs := []corner{
		{"top-left", Left, Top, 1, 1, 1},
		{"top-right", Right, Top, -1, 1, 0},
		{"bottom-right", Right, Bottom, -1, -1, 1},
		{"bottom-left", Left, Bottom, 1, -1, 0},
	}

	els := make([]scene.Element, 0, len(cs))
	for _, c := range cs {
		d := fmt.Sprintf("M %s %s A %s %s 0 0 %d %s %s",
			geo.FormatFloat(c.x+c.dx*CornerArc), geo.FormatFloat(c.y),
			geo.FormatFloat(CornerArc), geo.FormatFloat(CornerArc),
			c.sweep,
			geo.FormatFloat(c.x), geo.FormatFloat(c.y+c.dy*CornerArc),
		)
		els = append(els, scene.Element{
			Kind:  scene.KindPath,
			Layer: scene.LayerPitch,
			ID:    "pitch:corner-" + c.name,
			Path:  d,
			Style: line,
		})
	}
	return els
}

func rect(id string, x, y, w, h float64, st scene.Style) scene.Element {
	return scene.Element{
		Kind:   scene.KindRect,
		Layer:  scene.LayerPitch,
		ID:     id,
		Origin: core.Position2D{X: x, Y: y},
		Width:  w,
		Height: h,
		Style:  st,
	}
}

func circle(id string, x, y, r float64, st scene.Style) scene.Element {
	return scene.Element{
		Kind:   scene.KindCircle,
		Layer:  scene.LayerPitch,
		ID:     id,
		Center: core.Position2D{X: x, Y: y},
		Radius: r,
		Style:  st,
	}
}

func arcHalfChord(r, d float64) float64 {
	return math.Sqrt(r*r - d*d)
}
