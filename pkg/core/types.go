// pkg/core/types.go
package core

// Logical canvas size. All entity coordinates are expressed in this space.
const (
	CanvasWidth  = 404.0
	CanvasHeight = 678.0
)

// Position2D represents a point on the logical canvas
type Position2D struct {
	X float64 `json:"x"` // horizontal, left to right
	Y float64 `json:"y"` // vertical, top to bottom
}

// Polyline is an ordered list of waypoints
type Polyline []Position2D

// Clone returns an independent copy of the polyline.
func (p Polyline) Clone() Polyline {
	if p == nil {
		return nil
	}
	out := make(Polyline, len(p))
	copy(out, p)
	return out
}
