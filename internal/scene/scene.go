// Package scene holds the draw-command model shared by the pitch, the goal
// visualization and the SVG encoder. A Scene is an ordered list of elements;
// later elements paint over earlier ones.
package scene

import (
	"github.com/touchline/goalviz/pkg/core"
)

// Layer is the z-order bucket an element is drawn in. Lower layers are drawn
// first.
type Layer int

const (
	LayerPitch Layer = iota
	LayerTrailsOffBall
	LayerTrailsOnBall
	LayerBallPath
	LayerPasses
	LayerTouches
	LayerPlayers

	layerCount
)

var layerNames = [...]string{
	LayerPitch:         "pitch",
	LayerTrailsOffBall: "trails-off-ball",
	LayerTrailsOnBall:  "trails-on-ball",
	LayerBallPath:      "ball-path",
	LayerPasses:        "passes",
	LayerTouches:       "touches",
	LayerPlayers:       "players",
}

// Layers returns every layer in drawing order.
func Layers() []Layer {
	out := make([]Layer, 0, layerCount)
	for l := LayerPitch; l < layerCount; l++ {
		out = append(out, l)
	}
	return out
}

func (l Layer) String() string {
	if l < 0 || l >= layerCount {
		return "unknown"
	}
	return layerNames[l]
}

// Kind selects which fields of an Element are meaningful
type Kind string

const (
	KindPath   Kind = "path"   // Path
	KindLine   Kind = "line"   // From, To
	KindCircle Kind = "circle" // Center, Radius
	KindRect   Kind = "rect"   // Origin, Width, Height, Radius (corner)
	KindText   Kind = "text"   // Origin, Text
	KindMarker Kind = "marker" // Center, Text (player glyph with label)
)

// Style carries presentation attributes. Zero values are omitted on output.
type Style struct {
	Stroke        string  `json:"stroke,omitempty"`
	StrokeWidth   float64 `json:"strokeWidth,omitempty"`
	StrokeOpacity float64 `json:"strokeOpacity,omitempty"`
	Fill          string  `json:"fill,omitempty"`
	FillOpacity   float64 `json:"fillOpacity,omitempty"`
	DashArray     string  `json:"dashArray,omitempty"`
	LineCap       string  `json:"lineCap,omitempty"`
	FontSize      float64 `json:"fontSize,omitempty"`
	FontWeight    string  `json:"fontWeight,omitempty"`
	TextAnchor    string  `json:"textAnchor,omitempty"`
	LabelFill     string  `json:"labelFill,omitempty"` // marker labels only
}

// Element is a single draw command
type Element struct {
	Kind  Kind   `json:"kind"`
	Layer Layer  `json:"layer"`
	ID    string `json:"id,omitempty"`

	Path   string          `json:"path,omitempty"`
	From   core.Position2D `json:"from,omitempty"`
	To     core.Position2D `json:"to,omitempty"`
	Center core.Position2D `json:"center,omitempty"`
	Origin core.Position2D `json:"origin,omitempty"`
	Width  float64         `json:"width,omitempty"`
	Height float64         `json:"height,omitempty"`
	Radius float64         `json:"radius,omitempty"`
	Text   string          `json:"text,omitempty"`

	Style Style `json:"style"`
}

// Scene is a z-ordered list of draw commands on a canvas of the given size
type Scene struct {
	Width    float64   `json:"width"`
	Height   float64   `json:"height"`
	Elements []Element `json:"elements"`
}

// Layer returns the elements drawn in layer l, in drawing order.
func (s Scene) Layer(l Layer) []Element {
	var out []Element
	for _, el := range s.Elements {
		if el.Layer == l {
			out = append(out, el)
		}
	}
	return out
}

// Count returns the number of elements of the given kind in layer l.
func (s Scene) Count(l Layer, k Kind) int {
	n := 0
	for _, el := range s.Elements {
		if el.Layer == l && el.Kind == k {
			n++
		}
	}
	return n
}

// IndexOf returns the drawing position of the first element with the given
// ID, or -1.
func (s Scene) IndexOf(id string) int {
	for i, el := range s.Elements {
		if el.ID == id {
			return i
		}
	}
	return -1
}
